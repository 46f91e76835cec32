package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provreg/provreg/internal/config"
	"github.com/provreg/provreg/internal/usecase"
)

// stubService lets each test pin down just the engine calls it cares
// about; everything else returns zero values.
type stubService struct {
	createAsset   func(ctx context.Context, id usecase.AssetID) error
	transferAsset func(ctx context.Context, id usecase.AssetID, destination uuid.UUID) error
	getAssetOwner func(ctx context.Context, id usecase.AssetID) (uuid.UUID, bool, error)
	assetExists   func(ctx context.Context, id usecase.AssetID) (bool, error)
	setAttribute  func(ctx context.Context, id usecase.AssetID, kind usecase.AttributeKind, pointer string) error
	certifyAsset  func(ctx context.Context, id usecase.AssetID) error
	isVerified    func(ctx context.Context, id usecase.AssetID) (bool, error)
	grantRole     func(ctx context.Context, account uuid.UUID, role usecase.Role) error
}

func (s *stubService) Health() map[string]string { return map[string]string{"status": "up"} }
func (s *stubService) Close() error              { return nil }

func (s *stubService) CreateAsset(ctx context.Context, id usecase.AssetID) error {
	if s.createAsset != nil {
		return s.createAsset(ctx, id)
	}
	return nil
}

func (s *stubService) TransferAsset(ctx context.Context, id usecase.AssetID, destination uuid.UUID) error {
	if s.transferAsset != nil {
		return s.transferAsset(ctx, id, destination)
	}
	return nil
}

func (s *stubService) DeleteAsset(ctx context.Context, id usecase.AssetID) error { return nil }

func (s *stubService) GetAssetOwner(ctx context.Context, id usecase.AssetID) (uuid.UUID, bool, error) {
	if s.getAssetOwner != nil {
		return s.getAssetOwner(ctx, id)
	}
	return uuid.Nil, false, nil
}

func (s *stubService) AssetExists(ctx context.Context, id usecase.AssetID) (bool, error) {
	if s.assetExists != nil {
		return s.assetExists(ctx, id)
	}
	return false, nil
}

func (s *stubService) OwnedAssetsCount(ctx context.Context, account uuid.UUID) (uint32, error) {
	return 0, nil
}

func (s *stubService) SetAttribute(ctx context.Context, id usecase.AssetID, kind usecase.AttributeKind, pointer string) error {
	if s.setAttribute != nil {
		return s.setAttribute(ctx, id, kind, pointer)
	}
	return nil
}

func (s *stubService) ClearAttribute(ctx context.Context, id usecase.AssetID, kind usecase.AttributeKind) error {
	return nil
}

func (s *stubService) GetAttribute(ctx context.Context, id usecase.AssetID, kind usecase.AttributeKind) (string, bool, error) {
	return "", false, nil
}

func (s *stubService) HasAttribute(ctx context.Context, id usecase.AssetID, kind usecase.AttributeKind) (bool, error) {
	return false, nil
}

func (s *stubService) AssignCategory(ctx context.Context, id usecase.AssetID, code uint32) error {
	return nil
}
func (s *stubService) ClearCategory(ctx context.Context, id usecase.AssetID) error { return nil }
func (s *stubService) GetAssetCategory(ctx context.Context, id usecase.AssetID) (uint32, bool, error) {
	return 0, false, nil
}
func (s *stubService) HasAssetCategory(ctx context.Context, id usecase.AssetID) (bool, error) {
	return false, nil
}

func (s *stubService) DefineCategory(ctx context.Context, code uint32, pointer string) error {
	return nil
}
func (s *stubService) UndefineCategory(ctx context.Context, code uint32) error { return nil }
func (s *stubService) GetCategoryDescription(ctx context.Context, code uint32) (string, bool, error) {
	return "", false, nil
}
func (s *stubService) HasCategoryDescription(ctx context.Context, code uint32) (bool, error) {
	return false, nil
}

func (s *stubService) CertifyAsset(ctx context.Context, id usecase.AssetID) error {
	if s.certifyAsset != nil {
		return s.certifyAsset(ctx, id)
	}
	return nil
}

func (s *stubService) RevokeValidation(ctx context.Context, id usecase.AssetID) error { return nil }
func (s *stubService) GetValidation(ctx context.Context, id usecase.AssetID) (uuid.UUID, bool, error) {
	return uuid.Nil, false, nil
}

func (s *stubService) IsVerified(ctx context.Context, id usecase.AssetID) (bool, error) {
	if s.isVerified != nil {
		return s.isVerified(ctx, id)
	}
	return false, nil
}

func (s *stubService) GrantRole(ctx context.Context, account uuid.UUID, role usecase.Role) error {
	if s.grantRole != nil {
		return s.grantRole(ctx, account, role)
	}
	return nil
}

func (s *stubService) RevokeRole(ctx context.Context, account uuid.UUID) error { return nil }
func (s *stubService) GetRole(ctx context.Context, account uuid.UUID) (usecase.Role, bool, error) {
	return 0, false, nil
}
func (s *stubService) HasRole(ctx context.Context, account uuid.UUID) (bool, error) {
	return false, nil
}

func (s *stubService) SetOperatorApproval(ctx context.Context, operator uuid.UUID, approved bool) error {
	return nil
}
func (s *stubService) IsApprovedForAll(ctx context.Context, owner, operator uuid.UUID) (bool, error) {
	return false, nil
}
func (s *stubService) DelegateAsset(ctx context.Context, id usecase.AssetID, operator uuid.UUID) error {
	return nil
}
func (s *stubService) GetDelegate(ctx context.Context, id usecase.AssetID) (uuid.UUID, bool, error) {
	return uuid.Nil, false, nil
}

func (s *stubService) ListAuditLogs(ctx context.Context, opt usecase.ListAuditLogsOption) ([]usecase.AuditLog, int, error) {
	return nil, 0, nil
}

type stubEventSource struct{}

func (stubEventSource) Subscribe(ctx context.Context) (<-chan usecase.Event, func()) {
	ch := make(chan usecase.Event)
	return ch, func() {}
}

func newTestServer(svc Service) http.Handler {
	s := &Server{
		server:    svc,
		validator: validator.New(),
		events:    stubEventSource{},
	}
	return s.RegisterRoutes()
}

func TestCreateAssetHandler(t *testing.T) {
	caller := uuid.New()
	var gotCaller uuid.UUID
	var gotID usecase.AssetID

	h := newTestServer(&stubService{
		createAsset: func(ctx context.Context, id usecase.AssetID) error {
			gotCaller, _ = ctx.Value(config.CTX_KEY_CALLER_ID).(uuid.UUID)
			gotID = id
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assets", strings.NewReader(`{"id":42}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(config.HEADER_KEY_X_CALLER_ID, caller.String())
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, usecase.AssetID(42), gotID)
	assert.Equal(t, caller, gotCaller)
}

func TestCreateAssetHandlerMissingCaller(t *testing.T) {
	h := newTestServer(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assets", strings.NewReader(`{"id":42}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, 401, rec.Code)
}

func TestCreateAssetHandlerConflict(t *testing.T) {
	h := newTestServer(&stubService{
		createAsset: func(ctx context.Context, id usecase.AssetID) error {
			return usecase.AlreadyExistsError{Resource: "asset"}
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assets", strings.NewReader(`{"id":42}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(config.HEADER_KEY_X_CALLER_ID, uuid.NewString())
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, 409, rec.Code)
}

func TestTransferAssetHandlerRejectsBadDestination(t *testing.T) {
	h := newTestServer(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assets/1/transfer", strings.NewReader(`{"destination":"not-a-uuid"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(config.HEADER_KEY_X_CALLER_ID, uuid.NewString())
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, 422, rec.Code)
}

func TestGetAssetOwnerHandler(t *testing.T) {
	owner := uuid.New()
	h := newTestServer(&stubService{
		getAssetOwner: func(ctx context.Context, id usecase.AssetID) (uuid.UUID, bool, error) {
			return owner, true, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assets/1/owner", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), owner.String())
}

func TestGetAssetOwnerHandlerNotFound(t *testing.T) {
	h := newTestServer(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assets/1/owner", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, 404, rec.Code)
}

func TestSetAttributeHandlerRejectsBadPointer(t *testing.T) {
	h := newTestServer(&stubService{})

	for _, body := range []string{
		`{"pointer":"abc"}`,
		`{"pointer":"zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz"}`,
		`{}`,
	} {
		req := httptest.NewRequest(http.MethodPut, "/api/v1/assets/1/description", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(config.HEADER_KEY_X_CALLER_ID, uuid.NewString())
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, 422, rec.Code, "body %s", body)
	}
}

func TestSetAttributeHandlerRoutesKind(t *testing.T) {
	var gotKind usecase.AttributeKind
	h := newTestServer(&stubService{
		setAttribute: func(ctx context.Context, id usecase.AssetID, kind usecase.AttributeKind, pointer string) error {
			gotKind = kind
			return nil
		},
	})

	pointer := strings.Repeat("ab", 32)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/assets/1/location", strings.NewReader(`{"pointer":"`+pointer+`"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(config.HEADER_KEY_X_CALLER_ID, uuid.NewString())
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, usecase.AttributeLocation, gotKind)
}

func TestCertifyAssetHandlerForbidden(t *testing.T) {
	h := newTestServer(&stubService{
		certifyAsset: func(ctx context.Context, id usecase.AssetID) error {
			return usecase.NotAuthorizedError{Reason: "caller is not administrator"}
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/assets/1/validation", nil)
	req.Header.Set(config.HEADER_KEY_X_CALLER_ID, uuid.NewString())
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, 403, rec.Code)
}

func TestVerifyValidationHandler(t *testing.T) {
	h := newTestServer(&stubService{
		isVerified: func(ctx context.Context, id usecase.AssetID) (bool, error) {
			return true, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assets/1/validation/verify", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "true")
}

func TestGrantRoleHandler(t *testing.T) {
	account := uuid.New()
	var gotAccount uuid.UUID
	var gotRole usecase.Role

	h := newTestServer(&stubService{
		grantRole: func(ctx context.Context, acc uuid.UUID, role usecase.Role) error {
			gotAccount = acc
			gotRole = role
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/roles/"+account.String(), strings.NewReader(`{"role":4}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(config.HEADER_KEY_X_CALLER_ID, uuid.NewString())
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, account, gotAccount)
	assert.Equal(t, usecase.RoleShipper, gotRole)
}

func TestGetAssetQRNotFound(t *testing.T) {
	h := newTestServer(&stubService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assets/1/qr", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	assert.Equal(t, 404, rec.Code)
}

func TestGetAssetQR(t *testing.T) {
	h := newTestServer(&stubService{
		assetExists: func(ctx context.Context, id usecase.AssetID) (bool, error) {
			return true, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/assets/1/qr", nil)
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
}
