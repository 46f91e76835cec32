package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event actions, mirroring the registry's observable mutations.
const (
	ActionAssetCreated     = "asset.created"
	ActionAssetTransferred = "asset.transferred"
	ActionAssetDeleted     = "asset.deleted"

	ActionCategorySet     = "category.set"
	ActionCategoryCleared = "category.cleared"

	ActionValidationCertified = "validation.certified"
	ActionValidationRevoked   = "validation.revoked"

	ActionRoleGranted = "role.granted"
	ActionRoleRevoked = "role.revoked"

	ActionDelegateSet = "delegation.set"
	ActionApprovalSet = "approval.set"
)

// Event describes one successful registry mutation. Attribute writes use
// the "<kind>.set" / "<kind>.cleared" action form.
type Event struct {
	Action   string     `json:"action"`
	AssetID  *AssetID   `json:"asset_id,omitempty"`
	Actor    uuid.UUID  `json:"actor"`
	From     *uuid.UUID `json:"from,omitempty"`
	To       *uuid.UUID `json:"to,omitempty"`
	Account  *uuid.UUID `json:"account,omitempty"`
	Operator *uuid.UUID `json:"operator,omitempty"`
	Approved *bool      `json:"approved,omitempty"`
	At       time.Time  `json:"at"`
}

// EventPublisher receives events after a mutation committed. Publication
// is best-effort; failures never affect the call outcome.
type EventPublisher interface {
	Publish(ctx context.Context, ev Event) error
}

func (u Usecase) publish(ctx context.Context, ev Event) {
	if u.events == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	if err := u.events.Publish(ctx, ev); err != nil {
		fmt.Printf("[Events] failed to publish %s: %v\n", ev.Action, err)
	}
}
