package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provreg/provreg/internal/usecase"
)

func TestGrantRole(t *testing.T) {
	uc, _, rec, superAdmin := newEngine(t)
	account := uuid.New()

	require.NoError(t, uc.GrantRole(as(superAdmin), account, usecase.RoleProducer))

	role, found, err := uc.GetRole(context.Background(), account)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, usecase.RoleProducer, role)

	assert.Contains(t, rec.actions(), usecase.ActionRoleGranted)
}

func TestGrantRoleOverwrites(t *testing.T) {
	uc, _, _, superAdmin := newEngine(t)
	account := uuid.New()

	require.NoError(t, uc.GrantRole(as(superAdmin), account, usecase.RoleProducer))
	require.NoError(t, uc.GrantRole(as(superAdmin), account, usecase.RoleRetailer))

	role, _, err := uc.GetRole(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, usecase.RoleRetailer, role)
}

func TestGrantRoleRequiresAdministrator(t *testing.T) {
	uc, _, _, _ := newEngine(t)

	err := uc.GrantRole(as(uuid.New()), uuid.New(), usecase.RoleProducer)
	assert.ErrorIs(t, err, usecase.ErrNotAuthorized)
}

func TestGrantRoleUnknownCode(t *testing.T) {
	uc, _, _, superAdmin := newEngine(t)

	err := uc.GrantRole(as(superAdmin), uuid.New(), usecase.Role(42))
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestGrantedAdministratorMayGrant(t *testing.T) {
	uc, _, _, superAdmin := newEngine(t)
	admin, account := uuid.New(), uuid.New()

	require.NoError(t, uc.GrantRole(as(superAdmin), admin, usecase.RoleAdministrator))
	require.NoError(t, uc.GrantRole(as(admin), account, usecase.RoleWholesaler))

	role, _, err := uc.GetRole(context.Background(), account)
	require.NoError(t, err)
	assert.Equal(t, usecase.RoleWholesaler, role)
}

func TestRevokeRole(t *testing.T) {
	uc, _, rec, superAdmin := newEngine(t)
	account := uuid.New()

	require.NoError(t, uc.GrantRole(as(superAdmin), account, usecase.RoleShipper))
	require.NoError(t, uc.RevokeRole(as(superAdmin), account))

	has, err := uc.HasRole(context.Background(), account)
	require.NoError(t, err)
	assert.False(t, has)

	assert.Contains(t, rec.actions(), usecase.ActionRoleRevoked)
}

func TestRevokeRoleNotGranted(t *testing.T) {
	uc, _, _, superAdmin := newEngine(t)

	err := uc.RevokeRole(as(superAdmin), uuid.New())
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestRevokedAdministratorLosesAuthority(t *testing.T) {
	uc, _, _, superAdmin := newEngine(t)
	admin := uuid.New()

	require.NoError(t, uc.GrantRole(as(superAdmin), admin, usecase.RoleAdministrator))
	require.NoError(t, uc.RevokeRole(as(superAdmin), admin))

	err := uc.GrantRole(as(admin), uuid.New(), usecase.RoleProducer)
	assert.ErrorIs(t, err, usecase.ErrNotAuthorized)
}

func TestSuperAdministratorNeedsNoRecord(t *testing.T) {
	uc, _, _, superAdmin := newEngine(t)

	has, err := uc.HasRole(context.Background(), superAdmin)
	require.NoError(t, err)
	assert.False(t, has)

	admin, err := uc.IsAdministrator(context.Background(), superAdmin)
	require.NoError(t, err)
	assert.True(t, admin)
}
