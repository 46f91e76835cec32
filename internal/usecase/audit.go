package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// AuditLog is one persisted registry event, appended by the worker.
type AuditLog struct {
	ID        uuid.UUID
	Action    string
	AssetID   *AssetID
	Actor     uuid.UUID
	Payload   string
	CreatedAt time.Time
}

type ListAuditLogsOption struct {
	Skip    int
	Limit   int
	AssetID *AssetID
	Action  string
}

// RecordEvent appends an event to the audit trail. Called from the queue
// worker, not from the public surface; no caller check applies.
func (u Usecase) RecordEvent(ctx context.Context, ev Event) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return u.repo.CreateAuditLog(ctx, AuditLog{
		Action:    ev.Action,
		AssetID:   ev.AssetID,
		Actor:     ev.Actor,
		Payload:   string(payload),
		CreatedAt: ev.At,
	})
}

// ListAuditLogs returns the persisted event trail. Administrator only.
func (u Usecase) ListAuditLogs(ctx context.Context, opt ListAuditLogsOption) ([]AuditLog, int, error) {
	caller, err := CallerFrom(ctx)
	if err != nil {
		return nil, 0, err
	}
	admin, err := u.IsAdministrator(ctx, caller)
	if err != nil {
		return nil, 0, err
	}
	if !admin {
		return nil, 0, NotAuthorizedError{Reason: "caller is not administrator"}
	}
	return u.repo.ListAuditLogs(ctx, opt)
}
