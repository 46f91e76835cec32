package usecase

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the persistence boundary of the registry engine. All keyed
// mappings of the registry live behind it; Atomic scopes a group of reads
// and writes to a single all-or-nothing unit.
type Repository interface {
	Health() map[string]string
	Close() error

	// Atomic runs fn against a transaction-scoped Repository. If fn
	// returns an error, every write made through that Repository is
	// discarded.
	Atomic(ctx context.Context, fn func(Repository) error) error

	GetAsset(ctx context.Context, id AssetID) (Asset, bool, error)
	CreateAsset(ctx context.Context, asset Asset) error
	UpdateAssetOwner(ctx context.Context, id AssetID, owner uuid.UUID) error
	DeleteAsset(ctx context.Context, id AssetID) error

	GetOwnedCount(ctx context.Context, account uuid.UUID) (uint32, error)
	IncrementOwnedCount(ctx context.Context, account uuid.UUID) error
	DecrementOwnedCount(ctx context.Context, account uuid.UUID) error

	GetAttribute(ctx context.Context, id AssetID, kind AttributeKind) (string, bool, error)
	PutAttribute(ctx context.Context, id AssetID, kind AttributeKind, pointer string) error
	DeleteAttribute(ctx context.Context, id AssetID, kind AttributeKind) error
	DeleteAttributes(ctx context.Context, id AssetID) error

	GetAssetCategory(ctx context.Context, id AssetID) (uint32, bool, error)
	PutAssetCategory(ctx context.Context, id AssetID, code uint32) error
	DeleteAssetCategory(ctx context.Context, id AssetID) error

	GetCategoryDescription(ctx context.Context, code uint32) (string, bool, error)
	CreateCategoryDescription(ctx context.Context, code uint32, pointer string) error
	DeleteCategoryDescription(ctx context.Context, code uint32) error

	GetValidation(ctx context.Context, id AssetID) (uuid.UUID, bool, error)
	PutValidation(ctx context.Context, id AssetID, admin uuid.UUID) error
	DeleteValidation(ctx context.Context, id AssetID) error

	GetRole(ctx context.Context, account uuid.UUID) (Role, bool, error)
	PutRole(ctx context.Context, account uuid.UUID, role Role) error
	DeleteRole(ctx context.Context, account uuid.UUID) error

	GetDelegate(ctx context.Context, id AssetID) (uuid.UUID, bool, error)
	PutDelegate(ctx context.Context, id AssetID, operator uuid.UUID) error
	DeleteDelegate(ctx context.Context, id AssetID) error

	GetOperatorApproval(ctx context.Context, owner, operator uuid.UUID) (bool, error)
	PutOperatorApproval(ctx context.Context, owner, operator uuid.UUID, approved bool) error

	CreateAuditLog(ctx context.Context, l AuditLog) error
	ListAuditLogs(ctx context.Context, opt ListAuditLogsOption) ([]AuditLog, int, error)
}

func New(repo Repository, superAdmin uuid.UUID, events EventPublisher) Usecase {
	return Usecase{repo: repo, superAdmin: superAdmin, events: events}
}

type Usecase struct {
	repo       Repository
	superAdmin uuid.UUID
	events     EventPublisher
}

func (u Usecase) Health() map[string]string {
	return u.repo.Health()
}

func (u Usecase) Close() error {
	return u.repo.Close()
}
