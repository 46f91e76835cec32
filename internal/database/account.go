package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AccountStat keeps the per-account owned-asset counter, the registry's
// answer to accountAssetsNumber.
type AccountStat struct {
	Account     uuid.UUID `gorm:"column:account;primaryKey;type:uuid"`
	OwnedAssets uint32    `gorm:"column:owned_assets"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (AccountStat) TableName() string {
	return "account_stats"
}

func (s *service) GetOwnedCount(ctx context.Context, account uuid.UUID) (uint32, error) {
	var st AccountStat
	err := s.db.WithContext(ctx).
		Where("account = ?", account).
		First(&st).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return st.OwnedAssets, nil
}

func (s *service) IncrementOwnedCount(ctx context.Context, account uuid.UUID) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "account"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"owned_assets": gorm.Expr("account_stats.owned_assets + 1"),
				"updated_at":   time.Now(),
			}),
		}).
		Create(&AccountStat{Account: account, OwnedAssets: 1}).
		Error
}

func (s *service) DecrementOwnedCount(ctx context.Context, account uuid.UUID) error {
	res := s.db.WithContext(ctx).
		Model(&AccountStat{}).
		Where("account = ? AND owned_assets > 0", account).
		Update("owned_assets", gorm.Expr("owned_assets - 1"))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("no owned-asset counter for account %s", account)
	}
	return nil
}
