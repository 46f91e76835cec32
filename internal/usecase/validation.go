package usecase

import (
	"context"

	"github.com/google/uuid"
)

// CertifyAsset records that the calling administrator certified the
// asset's current attribute snapshot, moving it from draft to verified.
// Re-certifying a verified asset is rejected; revoke first.
func (u Usecase) CertifyAsset(ctx context.Context, id AssetID) error {
	caller, err := CallerFrom(ctx)
	if err != nil {
		return err
	}

	err = u.repo.Atomic(ctx, func(r Repository) error {
		admin, err := u.isAdministrator(ctx, r, caller)
		if err != nil {
			return err
		}
		if !admin {
			return NotAuthorizedError{Reason: "caller is not administrator"}
		}
		_, found, err := r.GetAsset(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return NotFoundError{Resource: "asset"}
		}
		_, verified, err := r.GetValidation(ctx, id)
		if err != nil {
			return err
		}
		if verified {
			return AlreadyExistsError{Resource: "validation"}
		}
		return r.PutValidation(ctx, id, caller)
	})
	if err != nil {
		return err
	}

	u.publish(ctx, Event{
		Action:  ActionValidationCertified,
		AssetID: &id,
		Actor:   caller,
	})
	return nil
}

// RevokeValidation clears the validation record, returning the asset to
// draft.
func (u Usecase) RevokeValidation(ctx context.Context, id AssetID) error {
	caller, err := CallerFrom(ctx)
	if err != nil {
		return err
	}

	err = u.repo.Atomic(ctx, func(r Repository) error {
		admin, err := u.isAdministrator(ctx, r, caller)
		if err != nil {
			return err
		}
		if !admin {
			return NotAuthorizedError{Reason: "caller is not administrator"}
		}
		_, found, err := r.GetAsset(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return NotFoundError{Resource: "asset"}
		}
		_, verified, err := r.GetValidation(ctx, id)
		if err != nil {
			return err
		}
		if !verified {
			return NotFoundError{Resource: "validation"}
		}
		return r.DeleteValidation(ctx, id)
	})
	if err != nil {
		return err
	}

	u.publish(ctx, Event{
		Action:  ActionValidationRevoked,
		AssetID: &id,
		Actor:   caller,
	})
	return nil
}

// GetValidation returns the administrator account that certified the
// asset, if any.
func (u Usecase) GetValidation(ctx context.Context, id AssetID) (uuid.UUID, bool, error) {
	return u.repo.GetValidation(ctx, id)
}

// IsVerified reports whether the asset's current attribute snapshot is
// administrator-certified.
func (u Usecase) IsVerified(ctx context.Context, id AssetID) (bool, error) {
	_, verified, err := u.repo.GetValidation(ctx, id)
	return verified, err
}
