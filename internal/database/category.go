package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/provreg/provreg/internal/usecase"
)

type AssetCategory struct {
	AssetID   uint32    `gorm:"column:asset_id;primaryKey;autoIncrement:false"`
	Code      uint32    `gorm:"column:code"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (AssetCategory) TableName() string {
	return "asset_categories"
}

// CategoryDescription is shared reference data: it is not cascaded when
// an asset is deleted, and removing an entry leaves already-assigned
// codes in place.
type CategoryDescription struct {
	Code      uint32    `gorm:"column:code;primaryKey;autoIncrement:false"`
	Pointer   string    `gorm:"column:pointer;type:char(64)"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (CategoryDescription) TableName() string {
	return "category_descriptions"
}

func (s *service) GetAssetCategory(ctx context.Context, id usecase.AssetID) (uint32, bool, error) {
	var ac AssetCategory
	err := s.db.WithContext(ctx).
		Where("asset_id = ?", id).
		First(&ac).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return ac.Code, true, nil
}

func (s *service) PutAssetCategory(ctx context.Context, id usecase.AssetID, code uint32) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "asset_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"code":       code,
				"updated_at": time.Now(),
			}),
		}).
		Create(&AssetCategory{AssetID: id, Code: code}).
		Error
}

func (s *service) DeleteAssetCategory(ctx context.Context, id usecase.AssetID) error {
	return s.db.WithContext(ctx).
		Where("asset_id = ?", id).
		Delete(&AssetCategory{}).
		Error
}

func (s *service) GetCategoryDescription(ctx context.Context, code uint32) (string, bool, error) {
	var cd CategoryDescription
	err := s.db.WithContext(ctx).
		Where("code = ?", code).
		First(&cd).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return cd.Pointer, true, nil
}

func (s *service) CreateCategoryDescription(ctx context.Context, code uint32, pointer string) error {
	return s.db.WithContext(ctx).
		Create(&CategoryDescription{Code: code, Pointer: pointer}).
		Error
}

func (s *service) DeleteCategoryDescription(ctx context.Context, code uint32) error {
	return s.db.WithContext(ctx).
		Where("code = ?", code).
		Delete(&CategoryDescription{}).
		Error
}
