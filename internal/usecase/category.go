package usecase

import "context"

// AssignCategory stores a category assignment for the asset. The code must
// already be defined in the catalogue; the assignment demotes the asset
// back to draft like any other attribute write.
func (u Usecase) AssignCategory(ctx context.Context, id AssetID, code uint32) error {
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
		_, defined, err := r.GetCategoryDescription(ctx, code)
		if err != nil {
			return err
		}
		if !defined {
			return CategoryNotFoundError{Code: code}
		}
		ok, err := u.canMutateAsset(ctx, r, caller, asset.Owner)
		if err != nil {
			return err
		}
		if !ok {
			return NotAuthorizedError{Reason: "caller is not owner or administrator"}
		}
		if err := r.PutAssetCategory(ctx, id, code); err != nil {
			return err
		}
		return r.DeleteValidation(ctx, id)
	})
	if err != nil {
		return err
	}

	u.publish(ctx, Event{
		Action:  ActionCategorySet,
		AssetID: &id,
		Actor:   caller,
	})
	return nil
}

func (u Usecase) ClearCategory(ctx context.Context, id AssetID) error {
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
		ok, err := u.canMutateAsset(ctx, r, caller, asset.Owner)
		if err != nil {
			return err
		}
		if !ok {
			return NotAuthorizedError{Reason: "caller is not owner or administrator"}
		}
		_, has, err := r.GetAssetCategory(ctx, id)
		if err != nil {
			return err
		}
		if !has {
			return NotFoundError{Resource: "category assignment"}
		}
		if err := r.DeleteAssetCategory(ctx, id); err != nil {
			return err
		}
		return r.DeleteValidation(ctx, id)
	})
	if err != nil {
		return err
	}

	u.publish(ctx, Event{
		Action:  ActionCategoryCleared,
		AssetID: &id,
		Actor:   caller,
	})
	return nil
}

func (u Usecase) GetAssetCategory(ctx context.Context, id AssetID) (uint32, bool, error) {
	return u.repo.GetAssetCategory(ctx, id)
}

func (u Usecase) HasAssetCategory(ctx context.Context, id AssetID) (bool, error) {
	_, has, err := u.repo.GetAssetCategory(ctx, id)
	return has, err
}

// DefineCategory adds an entry to the shared category catalogue.
// Administrator only.
func (u Usecase) DefineCategory(ctx context.Context, code uint32, pointer string) error {
	caller, err := CallerFrom(ctx)
	if err != nil {
		return err
	}

	return u.repo.Atomic(ctx, func(r Repository) error {
		admin, err := u.isAdministrator(ctx, r, caller)
		if err != nil {
			return err
		}
		if !admin {
			return NotAuthorizedError{Reason: "caller is not administrator"}
		}
		_, defined, err := r.GetCategoryDescription(ctx, code)
		if err != nil {
			return err
		}
		if defined {
			return AlreadyExistsError{Resource: "category"}
		}
		return r.CreateCategoryDescription(ctx, code, pointer)
	})
}

// UndefineCategory removes a catalogue entry. Assets already assigned the
// code keep it; the catalogue is reference data, not a foreign key after
// the fact.
func (u Usecase) UndefineCategory(ctx context.Context, code uint32) error {
	caller, err := CallerFrom(ctx)
	if err != nil {
		return err
	}

	return u.repo.Atomic(ctx, func(r Repository) error {
		admin, err := u.isAdministrator(ctx, r, caller)
		if err != nil {
			return err
		}
		if !admin {
			return NotAuthorizedError{Reason: "caller is not administrator"}
		}
		_, defined, err := r.GetCategoryDescription(ctx, code)
		if err != nil {
			return err
		}
		if !defined {
			return NotFoundError{Resource: "category"}
		}
		return r.DeleteCategoryDescription(ctx, code)
	})
}

func (u Usecase) GetCategoryDescription(ctx context.Context, code uint32) (string, bool, error) {
	return u.repo.GetCategoryDescription(ctx, code)
}

func (u Usecase) HasCategoryDescription(ctx context.Context, code uint32) (bool, error) {
	_, has, err := u.repo.GetCategoryDescription(ctx, code)
	return has, err
}
