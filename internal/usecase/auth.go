package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/provreg/provreg/internal/config"
)

// CallerFrom extracts the authenticated caller identity placed in the
// request context by the server middleware. The engine never verifies
// identity itself; it trusts the hosting layer.
func CallerFrom(ctx context.Context) (uuid.UUID, error) {
	caller, ok := ctx.Value(config.CTX_KEY_CALLER_ID).(uuid.UUID)
	if !ok || caller == uuid.Nil {
		return uuid.Nil, NotAuthorizedError{Reason: "caller identity missing"}
	}
	return caller, nil
}

// IsAdministrator reports whether the account is the configured
// super-administrator or holds the administrator role.
func (u Usecase) IsAdministrator(ctx context.Context, account uuid.UUID) (bool, error) {
	return u.isAdministrator(ctx, u.repo, account)
}

func (u Usecase) isAdministrator(ctx context.Context, repo Repository, account uuid.UUID) (bool, error) {
	if account != uuid.Nil && account == u.superAdmin {
		return true, nil
	}
	role, ok, err := repo.GetRole(ctx, account)
	if err != nil {
		return false, err
	}
	return ok && role == RoleAdministrator, nil
}

func (u Usecase) holdsRole(ctx context.Context, repo Repository, account uuid.UUID, want Role) (bool, error) {
	role, ok, err := repo.GetRole(ctx, account)
	if err != nil {
		return false, err
	}
	return ok && role == want, nil
}

// canTransfer is the authorization composition shared by asset transfer
// and every other owner-or-delegate check:
// caller == owner OR approved-for-all OR single delegate OR administrator.
func (u Usecase) canTransfer(ctx context.Context, repo Repository, caller, owner uuid.UUID, id AssetID) (bool, error) {
	if caller == owner {
		return true, nil
	}
	approved, err := repo.GetOperatorApproval(ctx, owner, caller)
	if err != nil {
		return false, err
	}
	if approved {
		return true, nil
	}
	delegate, ok, err := repo.GetDelegate(ctx, id)
	if err != nil {
		return false, err
	}
	if ok && delegate == caller {
		return true, nil
	}
	return u.isAdministrator(ctx, repo, caller)
}

// canMutateAsset gates owner-restricted attribute writes: the owner or an
// administrator may mutate.
func (u Usecase) canMutateAsset(ctx context.Context, repo Repository, caller, owner uuid.UUID) (bool, error) {
	if caller == owner {
		return true, nil
	}
	return u.isAdministrator(ctx, repo, caller)
}
