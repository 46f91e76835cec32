package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SetOperatorApproval grants or withdraws an operator's transfer rights
// over every asset currently or subsequently owned by the caller. No
// ownership or role precondition applies; delegating to oneself is
// rejected as meaningless.
func (u Usecase) SetOperatorApproval(ctx context.Context, operator uuid.UUID, approved bool) error {
	caller, err := CallerFrom(ctx)
	if err != nil {
		return err
	}
	if operator == caller {
		return NotAuthorizedError{Reason: "cannot delegate to self"}
	}

	err = u.repo.Atomic(ctx, func(r Repository) error {
		return r.PutOperatorApproval(ctx, caller, operator, approved)
	})
	if err != nil {
		return err
	}

	u.publish(ctx, Event{
		Action:   ActionApprovalSet,
		Actor:    caller,
		Operator: &operator,
		Approved: &approved,
	})
	return nil
}

func (u Usecase) IsApprovedForAll(ctx context.Context, owner, operator uuid.UUID) (bool, error) {
	return u.repo.GetOperatorApproval(ctx, owner, operator)
}

// DelegateAsset grants the operator transfer rights over exactly this
// asset. The delegation is exclusive: a new delegate silently replaces the
// previous one.
func (u Usecase) DelegateAsset(ctx context.Context, id AssetID, operator uuid.UUID) error {
	caller, err := CallerFrom(ctx)
	if err != nil {
		return err
	}
	if operator == uuid.Nil {
		return NotAuthorizedError{Reason: "operator account required"}
	}

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
		return r.PutDelegate(ctx, id, operator)
	})
	if err != nil {
		return err
	}

	u.publish(ctx, Event{
		Action:   ActionDelegateSet,
		AssetID:  &id,
		Actor:    caller,
		Operator: &operator,
	})
	return nil
}

func (u Usecase) GetDelegate(ctx context.Context, id AssetID) (uuid.UUID, bool, error) {
	return u.repo.GetDelegate(ctx, id)
}
