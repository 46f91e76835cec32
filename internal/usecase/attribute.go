package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AttributeKind names one of the keyed attribute sub-stores. All four are
// structurally identical maps from asset id to a content pointer; only the
// location kind differs in authorization (shippers may write it).
type AttributeKind string

const (
	AttributeDescription AttributeKind = "description"
	AttributePhoto       AttributeKind = "photo"
	AttributeLocation    AttributeKind = "location"
	AttributeMetadata    AttributeKind = "metadata"
)

// AttributeKinds lists every attribute sub-store, in cascade order.
var AttributeKinds = []AttributeKind{
	AttributeDescription,
	AttributePhoto,
	AttributeLocation,
	AttributeMetadata,
}

func (k AttributeKind) Valid() bool {
	switch k {
	case AttributeDescription, AttributePhoto, AttributeLocation, AttributeMetadata:
		return true
	}
	return false
}

func (u Usecase) canMutateAttribute(ctx context.Context, r Repository, caller, owner uuid.UUID, kind AttributeKind) (bool, error) {
	ok, err := u.canMutateAsset(ctx, r, caller, owner)
	if err != nil || ok {
		return ok, err
	}
	// Location may be updated by a shipper without owning the asset.
	if kind == AttributeLocation {
		return u.holdsRole(ctx, r, caller, RoleShipper)
	}
	return false, nil
}

// SetAttribute writes or overwrites the content pointer stored for the
// asset under the given kind and demotes the asset back to draft.
func (u Usecase) SetAttribute(ctx context.Context, id AssetID, kind AttributeKind, pointer string) error {
	caller, err := CallerFrom(ctx)
	if err != nil {
		return err
	}

	err = u.repo.Atomic(ctx, func(r Repository) error {
		asset, found, err := r.GetAsset(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return NotFoundError{Resource: "asset"}
		}
		ok, err := u.canMutateAttribute(ctx, r, caller, asset.Owner, kind)
		if err != nil {
			return err
		}
		if !ok {
			return NotAuthorizedError{Reason: "caller may not write " + string(kind)}
		}
		if err := r.PutAttribute(ctx, id, kind, pointer); err != nil {
			return err
		}
		return r.DeleteValidation(ctx, id)
	})
	if err != nil {
		return err
	}

	u.publish(ctx, Event{
		Action:  attributeAction(kind, "set"),
		AssetID: &id,
		Actor:   caller,
	})
	return nil
}

// ClearAttribute removes the stored pointer for the asset under the given
// kind and demotes the asset back to draft.
func (u Usecase) ClearAttribute(ctx context.Context, id AssetID, kind AttributeKind) error {
	caller, err := CallerFrom(ctx)
	if err != nil {
		return err
	}

	err = u.repo.Atomic(ctx, func(r Repository) error {
		asset, found, err := r.GetAsset(ctx, id)
		if err != nil {
			return err
		}
		if !found {
			return NotFoundError{Resource: "asset"}
		}
		ok, err := u.canMutateAttribute(ctx, r, caller, asset.Owner, kind)
		if err != nil {
			return err
		}
		if !ok {
			return NotAuthorizedError{Reason: "caller may not clear " + string(kind)}
		}
		_, has, err := r.GetAttribute(ctx, id, kind)
		if err != nil {
			return err
		}
		if !has {
			return NotFoundError{Resource: string(kind)}
		}
		if err := r.DeleteAttribute(ctx, id, kind); err != nil {
			return err
		}
		return r.DeleteValidation(ctx, id)
	})
	if err != nil {
		return err
	}

	u.publish(ctx, Event{
		Action:  attributeAction(kind, "cleared"),
		AssetID: &id,
		Actor:   caller,
	})
	return nil
}

func (u Usecase) GetAttribute(ctx context.Context, id AssetID, kind AttributeKind) (string, bool, error) {
	return u.repo.GetAttribute(ctx, id, kind)
}

func (u Usecase) HasAttribute(ctx context.Context, id AssetID, kind AttributeKind) (bool, error) {
	_, has, err := u.repo.GetAttribute(ctx, id, kind)
	return has, err
}

func attributeAction(kind AttributeKind, verb string) string {
	return string(kind) + "." + verb
}
