package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/provreg/provreg/internal/usecase"
)

// AssetDelegation holds the exclusive per-asset delegate; cleared on
// transfer and on asset deletion.
type AssetDelegation struct {
	AssetID   uint32    `gorm:"column:asset_id;primaryKey;autoIncrement:false"`
	Operator  uuid.UUID `gorm:"column:operator;type:uuid"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (AssetDelegation) TableName() string {
	return "asset_delegations"
}

// OperatorApproval holds the (owner, operator) approve-for-all flags.
type OperatorApproval struct {
	Owner     uuid.UUID `gorm:"column:owner;primaryKey;type:uuid"`
	Operator  uuid.UUID `gorm:"column:operator;primaryKey;type:uuid"`
	Approved  bool      `gorm:"column:approved"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (OperatorApproval) TableName() string {
	return "operator_approvals"
}

func (s *service) GetDelegate(ctx context.Context, id usecase.AssetID) (uuid.UUID, bool, error) {
	var d AssetDelegation
	err := s.db.WithContext(ctx).
		Where("asset_id = ?", id).
		First(&d).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	return d.Operator, true, nil
}

func (s *service) PutDelegate(ctx context.Context, id usecase.AssetID, operator uuid.UUID) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "asset_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"operator":   operator,
				"updated_at": time.Now(),
			}),
		}).
		Create(&AssetDelegation{AssetID: id, Operator: operator}).
		Error
}

func (s *service) DeleteDelegate(ctx context.Context, id usecase.AssetID) error {
	return s.db.WithContext(ctx).
		Where("asset_id = ?", id).
		Delete(&AssetDelegation{}).
		Error
}

func (s *service) GetOperatorApproval(ctx context.Context, owner, operator uuid.UUID) (bool, error) {
	var a OperatorApproval
	err := s.db.WithContext(ctx).
		Where("owner = ? AND operator = ?", owner, operator).
		First(&a).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return a.Approved, nil
}

func (s *service) PutOperatorApproval(ctx context.Context, owner, operator uuid.UUID, approved bool) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "owner"}, {Name: "operator"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"approved":   approved,
				"updated_at": time.Now(),
			}),
		}).
		Create(&OperatorApproval{Owner: owner, Operator: operator, Approved: approved}).
		Error
}
