package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/hibiken/asynq"

	"github.com/provreg/provreg/internal/usecase"
)

// HandleRegistryEvent appends the event to the audit trail and, for
// validation changes, notifies the operations inbox.
func (h *Handlers) HandleRegistryEvent(ctx context.Context, task *asynq.Task) error {
	var ev usecase.Event
	if err := json.Unmarshal(task.Payload(), &ev); err != nil {
		log.Printf("Error unmarshaling registry event: %v", err)
		return err
	}

	if err := h.usecase.RecordEvent(ctx, ev); err != nil {
		log.Printf("Error recording registry event: %v", err)
		return err
	}

	switch ev.Action {
	case usecase.ActionValidationCertified, usecase.ActionValidationRevoked:
		if err := h.notifyValidation(ctx, ev); err != nil {
			// Mail failures should not requeue an already-audited event.
			log.Printf("Error sending validation notification: %v", err)
		}
	}

	return nil
}

func (h *Handlers) notifyValidation(ctx context.Context, ev usecase.Event) error {
	if h.mailer == nil || h.notifyTo == "" {
		return nil
	}

	var assetID usecase.AssetID
	if ev.AssetID != nil {
		assetID = *ev.AssetID
	}

	verb := "certified"
	if ev.Action == usecase.ActionValidationRevoked {
		verb = "revoked"
	}

	return h.mailer.SendEmail(ctx, usecase.Email{
		From:    h.notifyFrom,
		To:      []string{h.notifyTo},
		Subject: fmt.Sprintf("Asset %d validation %s", assetID, verb),
		Body: fmt.Sprintf(
			"<p>Asset <b>%d</b>: validation %s by administrator %s at %s.</p>",
			assetID, verb, ev.Actor, ev.At.Format("2006-01-02 15:04:05 MST"),
		),
	})
}
