package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dutyroster/internal/app"
	"dutyroster/internal/domain"
)

func TestGuard_OpenWithoutAdmins(t *testing.T) {
	g := app.NewGuard(nil, "")
	assert.True(t, g.Open())
	assert.NoError(t, g.Check(0, ""))
}

func TestGuard_AdminList(t *testing.T) {
	g := app.NewGuard([]int64{2037697119}, "")

	assert.NoError(t, g.Check(2037697119, ""))
	require.ErrorIs(t, g.Check(42, ""), domain.ErrForbidden)
	require.ErrorIs(t, g.Check(0, ""), domain.ErrForbidden)
}

func TestGuard_Passphrase(t *testing.T) {
	hash, err := app.HashPassphrase("correct horse")
	require.NoError(t, err)
	g := app.NewGuard([]int64{7}, hash)

	assert.NoError(t, g.Check(7, "correct horse"))
	require.ErrorIs(t, g.Check(7, "battery staple"), domain.ErrForbidden)
	require.ErrorIs(t, g.Check(7, ""), domain.ErrForbidden)
	require.ErrorIs(t, g.Check(8, "correct horse"), domain.ErrForbidden)
}

func TestHashPassphrase_Empty(t *testing.T) {
	_, err := app.HashPassphrase("")
	assert.Error(t, err)
}
