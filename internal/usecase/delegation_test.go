package usecase_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/provreg/provreg/internal/usecase"
)

func TestSetOperatorApproval(t *testing.T) {
	uc, _, rec, _ := newEngine(t)
	alice, operator := uuid.New(), uuid.New()

	require.NoError(t, uc.SetOperatorApproval(as(alice), operator, true))

	approved, err := uc.IsApprovedForAll(context.Background(), alice, operator)
	require.NoError(t, err)
	assert.True(t, approved)

	require.NoError(t, uc.SetOperatorApproval(as(alice), operator, false))

	approved, err = uc.IsApprovedForAll(context.Background(), alice, operator)
	require.NoError(t, err)
	assert.False(t, approved)

	assert.Contains(t, rec.actions(), usecase.ActionApprovalSet)
}

func TestSetOperatorApprovalToSelf(t *testing.T) {
	uc, _, _, _ := newEngine(t)
	alice := uuid.New()

	err := uc.SetOperatorApproval(as(alice), alice, true)
	assert.ErrorIs(t, err, usecase.ErrNotAuthorized)
}

func TestApprovedOperatorMayTransfer(t *testing.T) {
	uc, _, _, _ := newEngine(t)
	alice, operator, bob := uuid.New(), uuid.New(), uuid.New()

	require.NoError(t, uc.CreateAsset(as(alice), 1))
	require.NoError(t, uc.SetOperatorApproval(as(alice), operator, true))
	require.NoError(t, uc.TransferAsset(as(operator), 1, bob))

	owner, _, err := uc.GetAssetOwner(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, bob, owner)
}

func TestWithdrawnOperatorMayNotTransfer(t *testing.T) {
	uc, _, _, _ := newEngine(t)
	alice, operator := uuid.New(), uuid.New()

	require.NoError(t, uc.CreateAsset(as(alice), 1))
	require.NoError(t, uc.SetOperatorApproval(as(alice), operator, true))
	require.NoError(t, uc.SetOperatorApproval(as(alice), operator, false))

	err := uc.TransferAsset(as(operator), 1, operator)
	assert.ErrorIs(t, err, usecase.ErrNotAuthorized)
}

func TestApprovalScopedToGrantingOwner(t *testing.T) {
	uc, _, _, _ := newEngine(t)
	alice, bob, operator := uuid.New(), uuid.New(), uuid.New()

	require.NoError(t, uc.CreateAsset(as(bob), 2))
	require.NoError(t, uc.SetOperatorApproval(as(alice), operator, true))

	// Alice's approval says nothing about bob's assets.
	err := uc.TransferAsset(as(operator), 2, operator)
	assert.ErrorIs(t, err, usecase.ErrNotAuthorized)
}

func TestDelegateAsset(t *testing.T) {
	uc, _, rec, _ := newEngine(t)
	alice, operator := uuid.New(), uuid.New()

	require.NoError(t, uc.CreateAsset(as(alice), 1))
	require.NoError(t, uc.DelegateAsset(as(alice), 1, operator))

	got, found, err := uc.GetDelegate(context.Background(), 1)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, operator, got)

	assert.Contains(t, rec.actions(), usecase.ActionDelegateSet)
}

func TestDelegateAssetReplacesPrevious(t *testing.T) {
	uc, _, _, _ := newEngine(t)
	alice, first, second := uuid.New(), uuid.New(), uuid.New()

	require.NoError(t, uc.CreateAsset(as(alice), 1))
	require.NoError(t, uc.DelegateAsset(as(alice), 1, first))
	require.NoError(t, uc.DelegateAsset(as(alice), 1, second))

	got, _, err := uc.GetDelegate(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	// The replaced delegate lost its transfer right.
	err = uc.TransferAsset(as(first), 1, first)
	assert.ErrorIs(t, err, usecase.ErrNotAuthorized)
}

func TestDelegateAssetByStranger(t *testing.T) {
	uc, _, _, _ := newEngine(t)
	alice, mallory := uuid.New(), uuid.New()

	require.NoError(t, uc.CreateAsset(as(alice), 1))

	err := uc.DelegateAsset(as(mallory), 1, mallory)
	assert.ErrorIs(t, err, usecase.ErrNotAuthorized)
}

func TestDelegateAssetNotFound(t *testing.T) {
	uc, _, _, _ := newEngine(t)

	err := uc.DelegateAsset(as(uuid.New()), 404, uuid.New())
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestDelegateMayTransferOnce(t *testing.T) {
	uc, _, _, _ := newEngine(t)
	alice, operator, bob, carol := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	require.NoError(t, uc.CreateAsset(as(alice), 1))
	require.NoError(t, uc.DelegateAsset(as(alice), 1, operator))
	require.NoError(t, uc.TransferAsset(as(operator), 1, bob))

	// The transfer consumed the delegation.
	_, found, err := uc.GetDelegate(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, found)

	err = uc.TransferAsset(as(operator), 1, carol)
	assert.ErrorIs(t, err, usecase.ErrNotAuthorized)
}
