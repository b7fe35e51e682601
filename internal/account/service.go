// Package account implements the account service: account lifecycle
// (create/close), profile updates and transaction summaries.
//
// Create and close each touch two independently-owned stores with no shared
// transaction: the user service's account list is mutated remotely first,
// and the local account record is written only if the remote reports
// success. Nothing compensates the remote mutation when anything after it
// fails, so the two stores can drift apart.
package account

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/docstore"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/models"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/response"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/validation"
)

// UserAccounts is the remote account-list mutation owned by the user
// service. The string result is the remote status payload; the remote side
// substitutes fallback sentinels for its own failures, so implementations
// can return a non-Success status without an error.
type UserAccounts interface {
	AddAccount(ctx context.Context, userID string, accountNO int64) (string, error)
	RemoveAccount(ctx context.Context, userID string, accountNO int64) (string, error)
}

type Service struct {
	accounts *docstore.Collection[models.Account]
	users    UserAccounts

	// strictCreate makes Create rely on the store's insert-if-absent
	// conflict signal instead of a separate existence check, closing the
	// window where two concurrent creates for the same number both pass
	// the check. Legacy mode keeps that window open.
	strictCreate bool

	log *logrus.Entry
}

func NewService(accounts *docstore.Collection[models.Account], users UserAccounts, strictCreate bool) *Service {
	return &Service{
		accounts:     accounts,
		users:        users,
		strictCreate: strictCreate,
		log:          logrus.WithField("service", "account"),
	}
}

// Create validates the account, asks the user service to record the account
// number against the owner, and only then writes the local record. The
// remote call always precedes the local write; if the remote reports
// failure the record is never created, but whatever the remote already
// applied stays applied.
func (s *Service) Create(ctx context.Context, acc models.Account) error {
	s.log.Debug("Entering method: Create")

	if err := validation.Struct(acc); err != nil {
		s.log.Error("Input account is invalid.")
		return err
	}

	if !s.strictCreate {
		if _, ok := s.accounts.FindByID(acc.DocumentID()); ok {
			s.log.Error("Account already exists.")
			return fmt.Errorf("account %d: %w", acc.AccountNO, models.ErrAlreadyExists)
		}
	}

	status, err := s.users.AddAccount(ctx, acc.UserID, acc.AccountNO)
	if err != nil || status != response.StatusSuccess {
		s.log.Error("Error while updating account list of user.")
		return models.ErrPeerUpdateFailed
	}

	if s.strictCreate {
		if err := s.accounts.Insert(acc); err != nil {
			s.log.Error("Account already exists.")
			return fmt.Errorf("account %d: %w", acc.AccountNO, models.ErrAlreadyExists)
		}
		return nil
	}
	// Legacy write: last writer wins, so two creates that both passed the
	// existence check silently overwrite each other here.
	return s.accounts.Upsert(acc)
}

// Update replaces the stored record of an existing, active account.
func (s *Service) Update(acc models.Account) error {
	s.log.Debug("Entering method: Update")

	if err := validation.Struct(acc); err != nil {
		s.log.Error("Input account is invalid.")
		return err
	}

	existing, ok := s.accounts.FindByID(acc.DocumentID())
	if !ok {
		s.log.Error("Account does not exist.")
		return fmt.Errorf("account %d: %w", acc.AccountNO, models.ErrNotFound)
	}
	if !existing.IsActive {
		s.log.Error("Account is closed.")
		return fmt.Errorf("account %d: %w", acc.AccountNO, models.ErrInactiveAccount)
	}

	return s.accounts.Upsert(acc)
}

// Close deactivates an account. The owner's account list is trimmed
// remotely first; only on reported success does the local record flip to
// inactive. On remote failure the account stays active, and the user's list
// may already have been mutated with nothing to undo it.
func (s *Service) Close(ctx context.Context, accountNO int64) error {
	s.log.Info("Entering method: Close")

	if accountNO == 0 {
		s.log.Error("Input account number is invalid.")
		return fmt.Errorf("account number: %w", models.ErrInvalidArgument)
	}

	acc, ok := s.accounts.FindByID(models.Account{AccountNO: accountNO}.DocumentID())
	if !ok {
		s.log.Error("Account is either inactive or does not exist.")
		return fmt.Errorf("account %d: %w", accountNO, models.ErrNotFound)
	}
	if !acc.IsActive {
		s.log.Error("Account is either inactive or does not exist.")
		return fmt.Errorf("account %d: %w", accountNO, models.ErrInactiveAccount)
	}

	status, err := s.users.RemoveAccount(ctx, acc.UserID, acc.AccountNO)
	if err != nil || status != response.StatusSuccess {
		s.log.Error("Error while updating account list of user.")
		return models.ErrPeerUpdateFailed
	}

	acc.IsActive = false
	return s.accounts.Upsert(acc)
}

// TransactionSummary returns the transactions recorded on an active
// account. An account with no transactions reports the same failure as a
// missing one.
func (s *Service) TransactionSummary(accountNO int64) ([]models.Transaction, error) {
	s.log.Info("Entering method: TransactionSummary")

	if accountNO == 0 {
		s.log.Error("Input account number is invalid.")
		return nil, fmt.Errorf("account number: %w", models.ErrInvalidArgument)
	}

	acc, ok := s.accounts.FindByID(models.Account{AccountNO: accountNO}.DocumentID())
	if !ok || !acc.IsActive || len(acc.Transactions) == 0 {
		s.log.Error("No transaction details for the account.")
		return nil, fmt.Errorf("transaction details for account %d: %w", accountNO, models.ErrNotFound)
	}
	return acc.Transactions, nil
}
