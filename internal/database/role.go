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

type AccountRole struct {
	Account   uuid.UUID `gorm:"column:account;primaryKey;type:uuid"`
	Role      uint32    `gorm:"column:role"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (AccountRole) TableName() string {
	return "account_roles"
}

func (s *service) GetRole(ctx context.Context, account uuid.UUID) (usecase.Role, bool, error) {
	var r AccountRole
	err := s.db.WithContext(ctx).
		Where("account = ?", account).
		First(&r).
		Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return usecase.Role(r.Role), true, nil
}

func (s *service) PutRole(ctx context.Context, account uuid.UUID, role usecase.Role) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "account"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"role":       uint32(role),
				"updated_at": time.Now(),
			}),
		}).
		Create(&AccountRole{Account: account, Role: uint32(role)}).
		Error
}

func (s *service) DeleteRole(ctx context.Context, account uuid.UUID) error {
	return s.db.WithContext(ctx).
		Where("account = ?", account).
		Delete(&AccountRole{}).
		Error
}
