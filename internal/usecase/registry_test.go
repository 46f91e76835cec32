package usecase_test

import (
	"context"
	"fmt"
	"maps"
	"testing"

	"github.com/google/uuid"

	"github.com/provreg/provreg/internal/config"
	"github.com/provreg/provreg/internal/usecase"
)

type attrKey struct {
	id   usecase.AssetID
	kind usecase.AttributeKind
}

type approvalKey struct {
	owner    uuid.UUID
	operator uuid.UUID
}

// memRepo is an in-memory Repository for exercising the engine without a
// database. Atomic snapshots every map and restores it when fn fails, so
// the all-or-nothing contract holds in tests too.
type memRepo struct {
	assets      map[usecase.AssetID]usecase.Asset
	counts      map[uuid.UUID]uint32
	attrs       map[attrKey]string
	categories  map[usecase.AssetID]uint32
	catalogue   map[uint32]string
	validations map[usecase.AssetID]uuid.UUID
	roles       map[uuid.UUID]usecase.Role
	delegates   map[usecase.AssetID]uuid.UUID
	approvals   map[approvalKey]bool
	logs        []usecase.AuditLog
}

func newMemRepo() *memRepo {
	return &memRepo{
		assets:      map[usecase.AssetID]usecase.Asset{},
		counts:      map[uuid.UUID]uint32{},
		attrs:       map[attrKey]string{},
		categories:  map[usecase.AssetID]uint32{},
		catalogue:   map[uint32]string{},
		validations: map[usecase.AssetID]uuid.UUID{},
		roles:       map[uuid.UUID]usecase.Role{},
		delegates:   map[usecase.AssetID]uuid.UUID{},
		approvals:   map[approvalKey]bool{},
	}
}

func (m *memRepo) Health() map[string]string { return map[string]string{"status": "up"} }
func (m *memRepo) Close() error              { return nil }

func (m *memRepo) snapshot() memRepo {
	return memRepo{
		assets:      maps.Clone(m.assets),
		counts:      maps.Clone(m.counts),
		attrs:       maps.Clone(m.attrs),
		categories:  maps.Clone(m.categories),
		catalogue:   maps.Clone(m.catalogue),
		validations: maps.Clone(m.validations),
		roles:       maps.Clone(m.roles),
		delegates:   maps.Clone(m.delegates),
		approvals:   maps.Clone(m.approvals),
		logs:        append([]usecase.AuditLog(nil), m.logs...),
	}
}

func (m *memRepo) Atomic(ctx context.Context, fn func(usecase.Repository) error) error {
	snap := m.snapshot()
	if err := fn(m); err != nil {
		*m = snap
		return err
	}
	return nil
}

func (m *memRepo) GetAsset(_ context.Context, id usecase.AssetID) (usecase.Asset, bool, error) {
	a, ok := m.assets[id]
	return a, ok, nil
}

func (m *memRepo) CreateAsset(_ context.Context, asset usecase.Asset) error {
	m.assets[asset.ID] = asset
	return nil
}

func (m *memRepo) UpdateAssetOwner(_ context.Context, id usecase.AssetID, owner uuid.UUID) error {
	a, ok := m.assets[id]
	if !ok {
		return fmt.Errorf("asset %d missing", id)
	}
	a.Owner = owner
	m.assets[id] = a
	return nil
}

func (m *memRepo) DeleteAsset(_ context.Context, id usecase.AssetID) error {
	delete(m.assets, id)
	return nil
}

func (m *memRepo) GetOwnedCount(_ context.Context, account uuid.UUID) (uint32, error) {
	return m.counts[account], nil
}

func (m *memRepo) IncrementOwnedCount(_ context.Context, account uuid.UUID) error {
	m.counts[account]++
	return nil
}

func (m *memRepo) DecrementOwnedCount(_ context.Context, account uuid.UUID) error {
	if m.counts[account] == 0 {
		return fmt.Errorf("owned count underflow for %s", account)
	}
	m.counts[account]--
	return nil
}

func (m *memRepo) GetAttribute(_ context.Context, id usecase.AssetID, kind usecase.AttributeKind) (string, bool, error) {
	p, ok := m.attrs[attrKey{id, kind}]
	return p, ok, nil
}

func (m *memRepo) PutAttribute(_ context.Context, id usecase.AssetID, kind usecase.AttributeKind, pointer string) error {
	m.attrs[attrKey{id, kind}] = pointer
	return nil
}

func (m *memRepo) DeleteAttribute(_ context.Context, id usecase.AssetID, kind usecase.AttributeKind) error {
	delete(m.attrs, attrKey{id, kind})
	return nil
}

func (m *memRepo) DeleteAttributes(_ context.Context, id usecase.AssetID) error {
	for _, kind := range usecase.AttributeKinds {
		delete(m.attrs, attrKey{id, kind})
	}
	return nil
}

func (m *memRepo) GetAssetCategory(_ context.Context, id usecase.AssetID) (uint32, bool, error) {
	c, ok := m.categories[id]
	return c, ok, nil
}

func (m *memRepo) PutAssetCategory(_ context.Context, id usecase.AssetID, code uint32) error {
	m.categories[id] = code
	return nil
}

func (m *memRepo) DeleteAssetCategory(_ context.Context, id usecase.AssetID) error {
	delete(m.categories, id)
	return nil
}

func (m *memRepo) GetCategoryDescription(_ context.Context, code uint32) (string, bool, error) {
	p, ok := m.catalogue[code]
	return p, ok, nil
}

func (m *memRepo) CreateCategoryDescription(_ context.Context, code uint32, pointer string) error {
	m.catalogue[code] = pointer
	return nil
}

func (m *memRepo) DeleteCategoryDescription(_ context.Context, code uint32) error {
	delete(m.catalogue, code)
	return nil
}

func (m *memRepo) GetValidation(_ context.Context, id usecase.AssetID) (uuid.UUID, bool, error) {
	a, ok := m.validations[id]
	return a, ok, nil
}

func (m *memRepo) PutValidation(_ context.Context, id usecase.AssetID, admin uuid.UUID) error {
	m.validations[id] = admin
	return nil
}

func (m *memRepo) DeleteValidation(_ context.Context, id usecase.AssetID) error {
	delete(m.validations, id)
	return nil
}

func (m *memRepo) GetRole(_ context.Context, account uuid.UUID) (usecase.Role, bool, error) {
	r, ok := m.roles[account]
	return r, ok, nil
}

func (m *memRepo) PutRole(_ context.Context, account uuid.UUID, role usecase.Role) error {
	m.roles[account] = role
	return nil
}

func (m *memRepo) DeleteRole(_ context.Context, account uuid.UUID) error {
	delete(m.roles, account)
	return nil
}

func (m *memRepo) GetDelegate(_ context.Context, id usecase.AssetID) (uuid.UUID, bool, error) {
	d, ok := m.delegates[id]
	return d, ok, nil
}

func (m *memRepo) PutDelegate(_ context.Context, id usecase.AssetID, operator uuid.UUID) error {
	m.delegates[id] = operator
	return nil
}

func (m *memRepo) DeleteDelegate(_ context.Context, id usecase.AssetID) error {
	delete(m.delegates, id)
	return nil
}

func (m *memRepo) GetOperatorApproval(_ context.Context, owner, operator uuid.UUID) (bool, error) {
	return m.approvals[approvalKey{owner, operator}], nil
}

func (m *memRepo) PutOperatorApproval(_ context.Context, owner, operator uuid.UUID, approved bool) error {
	m.approvals[approvalKey{owner, operator}] = approved
	return nil
}

func (m *memRepo) CreateAuditLog(_ context.Context, l usecase.AuditLog) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	m.logs = append(m.logs, l)
	return nil
}

func (m *memRepo) ListAuditLogs(_ context.Context, opt usecase.ListAuditLogsOption) ([]usecase.AuditLog, int, error) {
	var all []usecase.AuditLog
	for _, l := range m.logs {
		if opt.Action != "" && l.Action != opt.Action {
			continue
		}
		if opt.AssetID != nil && (l.AssetID == nil || *l.AssetID != *opt.AssetID) {
			continue
		}
		all = append(all, l)
	}
	total := len(all)
	if opt.Skip > len(all) {
		return nil, total, nil
	}
	all = all[opt.Skip:]
	if opt.Limit > 0 && opt.Limit < len(all) {
		all = all[:opt.Limit]
	}
	return all, total, nil
}

// eventRecorder captures published events for assertions.
type eventRecorder struct {
	events []usecase.Event
}

func (r *eventRecorder) Publish(_ context.Context, ev usecase.Event) error {
	r.events = append(r.events, ev)
	return nil
}

func (r *eventRecorder) actions() []string {
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Action)
	}
	return out
}

func newEngine(t *testing.T) (usecase.Usecase, *memRepo, *eventRecorder, uuid.UUID) {
	t.Helper()
	repo := newMemRepo()
	rec := &eventRecorder{}
	superAdmin := uuid.New()
	return usecase.New(repo, superAdmin, rec), repo, rec, superAdmin
}

func as(account uuid.UUID) context.Context {
	return context.WithValue(context.Background(), config.CTX_KEY_CALLER_ID, account)
}
