package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/docstore"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/models"
)

func newTestService(t *testing.T) (*Service, *docstore.Collection[models.User]) {
	t.Helper()
	users, err := docstore.Open[models.User](t.TempDir(), "users")
	require.NoError(t, err)
	return NewService(users), users
}

func validUser() models.User {
	return models.User{
		UserID:      "u1",
		UserAddress: "12 High Street",
		UserEmail:   "u1@example.com",
	}
}

func TestRegisterAndLookup(t *testing.T) {
	svc, users := newTestService(t)

	require.NoError(t, svc.Register(validUser()))

	stored, ok := users.FindByID("u1")
	require.True(t, ok)
	assert.Equal(t, "u1@example.com", stored.UserEmail)
}

func TestRegisterDuplicateUser(t *testing.T) {
	svc, _ := newTestService(t)

	require.NoError(t, svc.Register(validUser()))
	err := svc.Register(validUser())
	assert.ErrorIs(t, err, models.ErrAlreadyExists)
}

func TestRegisterMissingFields(t *testing.T) {
	svc, _ := newTestService(t)

	u := validUser()
	u.UserEmail = ""
	err := svc.Register(u)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestRegisterBlankFieldsRejected(t *testing.T) {
	svc, users := newTestService(t)

	u := validUser()
	u.UserID = "   "
	err := svc.Register(u)
	assert.ErrorIs(t, err, models.ErrInvalidArgument)

	_, ok := users.FindByID("   ")
	assert.False(t, ok, "no record may be stored under a blank id")

	u = validUser()
	u.UserAddress = "\t"
	assert.ErrorIs(t, svc.Register(u), models.ErrInvalidArgument)
}

func TestUpdateUnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	err := svc.Update(validUser())
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateReplacesRecord(t *testing.T) {
	svc, users := newTestService(t)
	require.NoError(t, svc.Register(validUser()))

	u := validUser()
	u.UserAddress = "99 New Road"
	require.NoError(t, svc.Update(u))

	stored, _ := users.FindByID("u1")
	assert.Equal(t, "99 New Road", stored.UserAddress)
}

func TestAccountsListRequiresExistingListShape(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.Register(validUser()))

	// A user whose account list was never initialised reports not-found,
	// same as a missing user.
	_, err := svc.AccountsList("u1")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.AccountsList("ghost")
	assert.ErrorIs(t, err, models.ErrNotFound)

	_, err = svc.AccountsList("  ")
	assert.ErrorIs(t, err, models.ErrInvalidArgument)
}

func TestAddAndRemoveAccount(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.Register(validUser()))

	require.NoError(t, svc.AddAccount("u1", 100))
	require.NoError(t, svc.AddAccount("u1", 200))

	accounts, err := svc.AccountsList("u1")
	require.NoError(t, err)
	assert.Equal(t, []int64{100, 200}, accounts)

	require.NoError(t, svc.RemoveAccount("u1", 100))
	accounts, err = svc.AccountsList("u1")
	require.NoError(t, err)
	assert.Equal(t, []int64{200}, accounts)
}

func TestRemoveAccountNotListedIsNoError(t *testing.T) {
	svc, _ := newTestService(t)
	require.NoError(t, svc.Register(validUser()))
	require.NoError(t, svc.AddAccount("u1", 100))

	require.NoError(t, svc.RemoveAccount("u1", 999))

	accounts, err := svc.AccountsList("u1")
	require.NoError(t, err)
	assert.Equal(t, []int64{100}, accounts)
}

func TestAddAccountValidation(t *testing.T) {
	svc, _ := newTestService(t)

	assert.ErrorIs(t, svc.AddAccount("u1", 0), models.ErrInvalidArgument)
	assert.ErrorIs(t, svc.AddAccount("", 100), models.ErrInvalidArgument)
	assert.ErrorIs(t, svc.AddAccount("ghost", 100), models.ErrNotFound)
}
