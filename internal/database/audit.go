package database

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/provreg/provreg/internal/usecase"
)

type AuditLog struct {
	ID        uuid.UUID `gorm:"column:id;primaryKey;type:uuid;default:uuid_generate_v4()"`
	Action    string    `gorm:"column:action;type:varchar(64);index"`
	AssetID   *uint32   `gorm:"column:asset_id;index"`
	Actor     uuid.UUID `gorm:"column:actor;type:uuid"`
	Payload   string    `gorm:"column:payload;type:jsonb"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// Convert core model to Usecase
func (l AuditLog) ConvertToUsecase() usecase.AuditLog {
	return usecase.AuditLog{
		ID:        l.ID,
		Action:    l.Action,
		AssetID:   l.AssetID,
		Actor:     l.Actor,
		Payload:   l.Payload,
		CreatedAt: l.CreatedAt,
	}
}

func (s *service) CreateAuditLog(ctx context.Context, log usecase.AuditLog) error {
	l := AuditLog{
		Action:    log.Action,
		AssetID:   log.AssetID,
		Actor:     log.Actor,
		Payload:   log.Payload,
		CreatedAt: log.CreatedAt,
	}
	return s.db.WithContext(ctx).Create(&l).Error
}

func (s *service) ListAuditLogs(ctx context.Context, opt usecase.ListAuditLogsOption) ([]usecase.AuditLog, int, error) {
	var (
		logs  []AuditLog
		count int64
	)

	db := s.db.Model([]AuditLog{}).WithContext(ctx)

	if opt.AssetID != nil {
		db = db.Where("asset_id = ?", *opt.AssetID)
	}
	if opt.Action != "" {
		db = db.Where("action = ?", opt.Action)
	}

	if err := db.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := db.
		Limit(opt.Limit).
		Offset(opt.Skip).
		Order("created_at DESC").
		Find(&logs).
		Error; err != nil {

		return nil, 0, err
	}

	ulogs := make([]usecase.AuditLog, 0, len(logs))
	for _, l := range logs {
		ulogs = append(ulogs, l.ConvertToUsecase())
	}
	return ulogs, int(count), nil
}
