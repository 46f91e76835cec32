package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/provreg/provreg/internal/usecase"
)

// AssetValidation: presence = verified, absence = draft. The admin column
// names the certifying administrator.
type AssetValidation struct {
	AssetID   uint32    `gorm:"column:asset_id;primaryKey;autoIncrement:false"`
	Admin     uuid.UUID `gorm:"column:admin;type:uuid"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (AssetValidation) TableName() string {
	return "asset_validations"
}

func (s *service) GetValidation(ctx context.Context, id usecase.AssetID) (uuid.UUID, bool, error) {
	var v AssetValidation
	err := s.db.WithContext(ctx).
		Where("asset_id = ?", id).
		First(&v).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	return v.Admin, true, nil
}

func (s *service) PutValidation(ctx context.Context, id usecase.AssetID, admin uuid.UUID) error {
	return s.db.WithContext(ctx).
		Create(&AssetValidation{AssetID: id, Admin: admin}).
		Error
}

// DeleteValidation is idempotent: attribute writes invalidate without
// caring whether a validation record was present.
func (s *service) DeleteValidation(ctx context.Context, id usecase.AssetID) error {
	return s.db.WithContext(ctx).
		Where("asset_id = ?", id).
		Delete(&AssetValidation{}).
		Error
}
