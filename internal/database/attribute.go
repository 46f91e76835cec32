package database

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/provreg/provreg/internal/usecase"
)

// AssetAttribute holds all four attribute sub-stores in one keyed table:
// (asset_id, kind) → content pointer. The pointer is an opaque 32-byte
// hash carried as hex.
type AssetAttribute struct {
	AssetID   uint32    `gorm:"column:asset_id;primaryKey;autoIncrement:false"`
	Kind      string    `gorm:"column:kind;primaryKey;type:varchar(16)"`
	Pointer   string    `gorm:"column:pointer;type:char(64)"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (AssetAttribute) TableName() string {
	return "asset_attributes"
}

func (s *service) GetAttribute(ctx context.Context, id usecase.AssetID, kind usecase.AttributeKind) (string, bool, error) {
	var attr AssetAttribute
	err := s.db.WithContext(ctx).
		Where("asset_id = ? AND kind = ?", id, string(kind)).
		First(&attr).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return attr.Pointer, true, nil
}

func (s *service) PutAttribute(ctx context.Context, id usecase.AssetID, kind usecase.AttributeKind, pointer string) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "asset_id"}, {Name: "kind"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"pointer":    pointer,
				"updated_at": time.Now(),
			}),
		}).
		Create(&AssetAttribute{AssetID: id, Kind: string(kind), Pointer: pointer}).
		Error
}

func (s *service) DeleteAttribute(ctx context.Context, id usecase.AssetID, kind usecase.AttributeKind) error {
	return s.db.WithContext(ctx).
		Where("asset_id = ? AND kind = ?", id, string(kind)).
		Delete(&AssetAttribute{}).
		Error
}

// DeleteAttributes clears every attribute sub-store entry for the asset;
// used by the asset delete cascade.
func (s *service) DeleteAttributes(ctx context.Context, id usecase.AssetID) error {
	return s.db.WithContext(ctx).
		Where("asset_id = ?", id).
		Delete(&AssetAttribute{}).
		Error
}
