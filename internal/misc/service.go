// Package misc implements the miscellaneous service: ordering and blocking
// cheque books. It keeps its own accounts collection and flips the
// cheque-book flag on active accounts.
package misc

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/docstore"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/models"
)

type Service struct {
	accounts *docstore.Collection[models.Account]
	log      *logrus.Entry
}

func NewService(accounts *docstore.Collection[models.Account]) *Service {
	return &Service{
		accounts: accounts,
		log:      logrus.WithField("service", "miscellaneous"),
	}
}

// OrderChequeBook marks a cheque book as issued for the account.
func (s *Service) OrderChequeBook(accountNO int64) error {
	s.log.Debug("Entering method: OrderChequeBook")
	return s.setChequeBook(accountNO, true)
}

// BlockChequeBook revokes the account's cheque book.
func (s *Service) BlockChequeBook(accountNO int64) error {
	s.log.Error("Entering method: BlockChequeBook")
	return s.setChequeBook(accountNO, false)
}

func (s *Service) setChequeBook(accountNO int64, issued bool) error {
	if accountNO == 0 {
		s.log.Error("Input account number is invalid.")
		return fmt.Errorf("account number: %w", models.ErrInvalidArgument)
	}

	acc, ok := s.accounts.FindByID(models.Account{AccountNO: accountNO}.DocumentID())
	if !ok {
		s.log.Error("Account with provided account number does not exist.")
		return fmt.Errorf("account %d: %w", accountNO, models.ErrNotFound)
	}
	if !acc.IsActive {
		s.log.Error("Account is either closed or does not exist.")
		return fmt.Errorf("account %d: %w", accountNO, models.ErrInactiveAccount)
	}

	acc.IsChecqueBookIssued = issued
	return s.accounts.Upsert(acc)
}
