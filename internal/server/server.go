package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	_ "github.com/joho/godotenv/autoload"

	"github.com/provreg/provreg/internal/config"
	"github.com/provreg/provreg/internal/database"
	"github.com/provreg/provreg/internal/events"
	"github.com/provreg/provreg/internal/queue"
	"github.com/provreg/provreg/internal/usecase"
)

// Service is the registry engine surface consumed by the HTTP handlers.
type Service interface {
	// Health returns a map of health status information.
	// The keys and values in the map are service-specific.
	Health() map[string]string

	// Close terminates the database connection.
	// It returns an error if the connection cannot be closed.
	Close() error

	CreateAsset(ctx context.Context, id usecase.AssetID) error
	TransferAsset(ctx context.Context, id usecase.AssetID, destination uuid.UUID) error
	DeleteAsset(ctx context.Context, id usecase.AssetID) error
	GetAssetOwner(ctx context.Context, id usecase.AssetID) (uuid.UUID, bool, error)
	AssetExists(ctx context.Context, id usecase.AssetID) (bool, error)
	OwnedAssetsCount(ctx context.Context, account uuid.UUID) (uint32, error)

	SetAttribute(ctx context.Context, id usecase.AssetID, kind usecase.AttributeKind, pointer string) error
	ClearAttribute(ctx context.Context, id usecase.AssetID, kind usecase.AttributeKind) error
	GetAttribute(ctx context.Context, id usecase.AssetID, kind usecase.AttributeKind) (string, bool, error)
	HasAttribute(ctx context.Context, id usecase.AssetID, kind usecase.AttributeKind) (bool, error)

	AssignCategory(ctx context.Context, id usecase.AssetID, code uint32) error
	ClearCategory(ctx context.Context, id usecase.AssetID) error
	GetAssetCategory(ctx context.Context, id usecase.AssetID) (uint32, bool, error)
	HasAssetCategory(ctx context.Context, id usecase.AssetID) (bool, error)

	DefineCategory(ctx context.Context, code uint32, pointer string) error
	UndefineCategory(ctx context.Context, code uint32) error
	GetCategoryDescription(ctx context.Context, code uint32) (string, bool, error)
	HasCategoryDescription(ctx context.Context, code uint32) (bool, error)

	CertifyAsset(ctx context.Context, id usecase.AssetID) error
	RevokeValidation(ctx context.Context, id usecase.AssetID) error
	GetValidation(ctx context.Context, id usecase.AssetID) (uuid.UUID, bool, error)
	IsVerified(ctx context.Context, id usecase.AssetID) (bool, error)

	GrantRole(ctx context.Context, account uuid.UUID, role usecase.Role) error
	RevokeRole(ctx context.Context, account uuid.UUID) error
	GetRole(ctx context.Context, account uuid.UUID) (usecase.Role, bool, error)
	HasRole(ctx context.Context, account uuid.UUID) (bool, error)

	SetOperatorApproval(ctx context.Context, operator uuid.UUID, approved bool) error
	IsApprovedForAll(ctx context.Context, owner, operator uuid.UUID) (bool, error)
	DelegateAsset(ctx context.Context, id usecase.AssetID, operator uuid.UUID) error
	GetDelegate(ctx context.Context, id usecase.AssetID) (uuid.UUID, bool, error)

	ListAuditLogs(ctx context.Context, opt usecase.ListAuditLogsOption) ([]usecase.AuditLog, int, error)
}

// EventSource streams committed registry events, for the websocket route.
type EventSource interface {
	Subscribe(ctx context.Context) (<-chan usecase.Event, func())
}

type Server struct {
	port int

	server    Service
	validator *validator.Validate
	events    EventSource
}

func NewServer() *http.Server {
	repo := database.New()

	superAdmin, err := uuid.Parse(os.Getenv(config.ENV_KEY_SUPER_ADMIN_ID))
	if err != nil {
		log.Fatalf("invalid %s: %v", config.ENV_KEY_SUPER_ADMIN_ID, err)
	}

	var (
		redisAddr     = os.Getenv(config.ENV_KEY_REDIS_ADDR)
		redisPassword = os.Getenv(config.ENV_KEY_REDIS_PASSWORD)
	)
	bus := events.NewBus(redisAddr, redisPassword)
	qc := queue.NewClient(redisAddr, redisPassword)

	sv := usecase.New(repo, superAdmin, events.Fanout(bus, qc))
	v := validator.New()

	port, _ := strconv.Atoi(os.Getenv(config.ENV_KEY_PORT))
	NewServer := &Server{
		port:      port,
		server:    sv,
		validator: v,
		events:    bus,
	}

	// Declare Server config
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", NewServer.port),
		Handler:      NewServer.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	return server
}
