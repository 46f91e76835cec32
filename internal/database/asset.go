package database

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/provreg/provreg/internal/usecase"
)

// Asset rows are hard-deleted: the registry's existence invariant is
// "record exists iff created and not deleted", and dependent records
// cascade inside the same transaction.
type Asset struct {
	ID        uint32    `gorm:"column:id;primaryKey;autoIncrement:false"`
	Owner     uuid.UUID `gorm:"column:owner;type:uuid;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (Asset) TableName() string {
	return "assets"
}

// Convert core model to Usecase
func (a Asset) ConvertToUsecase() usecase.Asset {
	return usecase.Asset{
		ID:        a.ID,
		Owner:     a.Owner,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (s *service) GetAsset(ctx context.Context, id usecase.AssetID) (usecase.Asset, bool, error) {
	var a Asset
	err := s.db.WithContext(ctx).
		Where("id = ?", id).
		First(&a).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usecase.Asset{}, false, nil
	}
	if err != nil {
		return usecase.Asset{}, false, err
	}
	return a.ConvertToUsecase(), true, nil
}

func (s *service) CreateAsset(ctx context.Context, asset usecase.Asset) error {
	a := Asset{
		ID:    asset.ID,
		Owner: asset.Owner,
	}
	return s.db.WithContext(ctx).Create(&a).Error
}

func (s *service) UpdateAssetOwner(ctx context.Context, id usecase.AssetID, owner uuid.UUID) error {
	return s.db.WithContext(ctx).
		Model(&Asset{}).
		Where("id = ?", id).
		Update("owner", owner).
		Error
}

func (s *service) DeleteAsset(ctx context.Context, id usecase.AssetID) error {
	return s.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&Asset{}).
		Error
}
