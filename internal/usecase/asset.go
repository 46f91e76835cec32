package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AssetID is the caller-chosen unique key naming a physical asset record.
type AssetID = uint32

type Asset struct {
	ID        AssetID
	Owner     uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CreateAsset registers a new asset record owned by the caller. The record
// starts as a draft: no attributes, no validation.
func (u Usecase) CreateAsset(ctx context.Context, id AssetID) error {
	caller, err := CallerFrom(ctx)
	if err != nil {
		return err
	}

	err = u.repo.Atomic(ctx, func(r Repository) error {
		_, found, err := r.GetAsset(ctx, id)
		if err != nil {
			return err
		}
		if found {
			return AlreadyExistsError{Resource: "asset"}
		}
		if err := r.CreateAsset(ctx, Asset{ID: id, Owner: caller}); err != nil {
			return err
		}
		return r.IncrementOwnedCount(ctx, caller)
	})
	if err != nil {
		return err
	}

	u.publish(ctx, Event{
		Action:  ActionAssetCreated,
		AssetID: &id,
		Actor:   caller,
		To:      &caller,
	})
	return nil
}

// TransferAsset moves custody of the asset to the destination account.
// The single-asset delegation is cleared; the validation record is not,
// transfer is a custody event, not a data-content event.
func (u Usecase) TransferAsset(ctx context.Context, id AssetID, destination uuid.UUID) error {
	caller, err := CallerFrom(ctx)
	if err != nil {
		return err
	}
	if destination == uuid.Nil {
		return NotAuthorizedError{Reason: "destination account required"}
	}

	var from uuid.UUID
	err = u.repo.Atomic(ctx, func(r Repository) error {
		asset, found, err := r.GetAsset(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return NotFoundError{Resource: "asset"}
		}
		ok, err := u.canTransfer(ctx, r, caller, asset.Owner, id)
		if err != nil {
			return err
		}
		if !ok {
			return NotAuthorizedError{Reason: "caller is not owner, delegate or administrator"}
		}

		from = asset.Owner
		if err := r.DeleteDelegate(ctx, id); err != nil {
			return err
		}
		if err := r.UpdateAssetOwner(ctx, id, destination); err != nil {
			return err
		}
		if err := r.DecrementOwnedCount(ctx, asset.Owner); err != nil {
			return err
		}
		return r.IncrementOwnedCount(ctx, destination)
	})
	if err != nil {
		return err
	}

	u.publish(ctx, Event{
		Action:  ActionAssetTransferred,
		AssetID: &id,
		Actor:   caller,
		From:    &from,
		To:      &destination,
	})
	return nil
}

// DeleteAsset removes the asset record and cascades removal of every
// dependent attribute, category assignment, validation record and
// delegation keyed by the id.
func (u Usecase) DeleteAsset(ctx context.Context, id AssetID) error {
	caller, err := CallerFrom(ctx)
	if err != nil {
		return err
	}

	var from uuid.UUID
	err = u.repo.Atomic(ctx, func(r Repository) error {
		asset, found, err := r.GetAsset(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return NotFoundError{Resource: "asset"}
		}
		ok, err := u.canMutateAsset(ctx, r, caller, asset.Owner)
		if err != nil {
			return err
		}
		if !ok {
			return NotAuthorizedError{Reason: "caller is not owner or administrator"}
		}

		from = asset.Owner
		if err := r.DeleteAttributes(ctx, id); err != nil {
			return err
		}
		if err := r.DeleteAssetCategory(ctx, id); err != nil {
			return err
		}
		if err := r.DeleteValidation(ctx, id); err != nil {
			return err
		}
		if err := r.DeleteDelegate(ctx, id); err != nil {
			return err
		}
		if err := r.DeleteAsset(ctx, id); err != nil {
			return err
		}
		return r.DecrementOwnedCount(ctx, asset.Owner)
	})
	if err != nil {
		return err
	}

	u.publish(ctx, Event{
		Action:  ActionAssetDeleted,
		AssetID: &id,
		Actor:   caller,
		From:    &from,
	})
	return nil
}

func (u Usecase) GetAssetOwner(ctx context.Context, id AssetID) (uuid.UUID, bool, error) {
	asset, found, err := u.repo.GetAsset(ctx, id)
	if err != nil || !found {
		return uuid.Nil, false, err
	}
	return asset.Owner, true, nil
}

func (u Usecase) AssetExists(ctx context.Context, id AssetID) (bool, error) {
	_, found, err := u.repo.GetAsset(ctx, id)
	return found, err
}

// OwnedAssetsCount returns the number of assets currently owned by the
// account; zero for accounts that never owned one.
func (u Usecase) OwnedAssetsCount(ctx context.Context, account uuid.UUID) (uint32, error) {
	return u.repo.GetOwnedCount(ctx, account)
}
