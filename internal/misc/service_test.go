package misc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/docstore"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/models"
)

func newTestService(t *testing.T) (*Service, *docstore.Collection[models.Account]) {
	t.Helper()
	accounts, err := docstore.Open[models.Account](t.TempDir(), "accounts")
	require.NoError(t, err)
	return NewService(accounts), accounts
}

func TestOrderAndBlockChequeBook(t *testing.T) {
	svc, accounts := newTestService(t)
	require.NoError(t, accounts.Insert(models.Account{UserID: "u1", AccountNO: 100, IsActive: true}))

	require.NoError(t, svc.OrderChequeBook(100))
	acc, _ := accounts.FindByID("100")
	assert.True(t, acc.IsChecqueBookIssued)

	require.NoError(t, svc.BlockChequeBook(100))
	acc, _ = accounts.FindByID("100")
	assert.False(t, acc.IsChecqueBookIssued)
}

func TestChequeBookPreconditions(t *testing.T) {
	svc, accounts := newTestService(t)
	require.NoError(t, accounts.Insert(models.Account{UserID: "u1", AccountNO: 200, IsActive: false}))

	assert.ErrorIs(t, svc.OrderChequeBook(0), models.ErrInvalidArgument)
	assert.ErrorIs(t, svc.OrderChequeBook(999), models.ErrNotFound)
	assert.ErrorIs(t, svc.OrderChequeBook(200), models.ErrInactiveAccount)
	assert.ErrorIs(t, svc.BlockChequeBook(200), models.ErrInactiveAccount)
}
