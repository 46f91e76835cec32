package usecase

import (
	"context"

	"github.com/google/uuid"
)

// Role is an operator role code.
type Role uint32

const (
	RoleProducer      Role = 0
	RoleWholesaler    Role = 1
	RoleRetailer      Role = 2
	RoleFinalBuyer    Role = 3
	RoleShipper       Role = 4
	RoleAdministrator Role = 5
)

// RoleMax is the highest assignable role code.
const RoleMax = RoleAdministrator

func (r Role) Valid() bool {
	return r <= RoleMax
}

// GrantRole writes or overwrites the account's role record, including
// granting administrator status to another account. Administrator only.
func (u Usecase) GrantRole(ctx context.Context, account uuid.UUID, role Role) error {
	caller, err := CallerFrom(ctx)
	if err != nil {
		return err
	}
	if !role.Valid() {
		return NotFoundError{Resource: "role"}
	}

	err = u.repo.Atomic(ctx, func(r Repository) error {
		admin, err := u.isAdministrator(ctx, r, caller)
		if err != nil {
			return err
		}
		if !admin {
			return NotAuthorizedError{Reason: "caller is not administrator"}
		}
		return r.PutRole(ctx, account, role)
	})
	if err != nil {
		return err
	}

	u.publish(ctx, Event{
		Action:  ActionRoleGranted,
		Actor:   caller,
		Account: &account,
	})
	return nil
}

// RevokeRole removes the account's role record. The super-administrator's
// built-in authority is not a record and cannot be revoked.
func (u Usecase) RevokeRole(ctx context.Context, account uuid.UUID) error {
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
		_, found, err := r.GetRole(ctx, account)
		if err != nil {
			return err
		}
		if !found {
			return NotFoundError{Resource: "role"}
		}
		return r.DeleteRole(ctx, account)
	})
	if err != nil {
		return err
	}

	u.publish(ctx, Event{
		Action:  ActionRoleRevoked,
		Actor:   caller,
		Account: &account,
	})
	return nil
}

func (u Usecase) GetRole(ctx context.Context, account uuid.UUID) (Role, bool, error) {
	return u.repo.GetRole(ctx, account)
}

func (u Usecase) HasRole(ctx context.Context, account uuid.UUID) (bool, error) {
	_, found, err := u.repo.GetRole(ctx, account)
	return found, err
}
