// Package operation implements the ledger operations: deposit, withdraw and
// transfer. Each mutates balance and appends transaction records on one or
// two account documents in this service's own collection.
//
// Two long-standing behavioral quirks are kept on purpose, because callers
// and differential tests depend on them:
//
//   - Withdraw requires balance strictly greater than the amount, so a
//     withdrawal that would leave exactly zero is rejected. Transfer uses
//     the non-strict check and lets the balance reach zero.
//   - Transfer writes the two accounts as two independent upserts with no
//     transaction around them. If the first write lands and the second does
//     not, money has been created or destroyed across the pair.
package operation

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
		log:      logrus.WithField("service", "operation"),
	}
}

// Deposit credits amount to the account and appends a Credit transaction.
// Depositing twice deposits twice: there is no idempotency key, so a blind
// retry doubles the credit.
func (s *Service) Deposit(accountNO, amount int64) error {
	s.log.Error("Entering method: Deposit")

	if err := checkInputs(amount, accountNO); err != nil {
		s.log.Error("Input account number is invalid.")
		return err
	}

	acc, err := s.loadActive(accountNO)
	if err != nil {
		return err
	}

	acc.Balance += amount
	acc.Transactions = append(acc.Transactions, models.Transaction{
		Ammount:         amount,
		TransactionType: models.TransactionCredit,
	})
	return s.accounts.Upsert(acc)
}

// Withdraw debits amount from the account and appends a Debit transaction.
// The balance must be strictly greater than the amount.
func (s *Service) Withdraw(accountNO, amount int64) error {
	s.log.Error("Entering method: Withdraw")

	if err := checkInputs(amount, accountNO); err != nil {
		s.log.Error("Input account number is invalid.")
		return err
	}

	acc, err := s.loadActive(accountNO)
	if err != nil {
		return err
	}

	if acc.Balance <= amount {
		s.log.Error("Account does not have enough balance.")
		return fmt.Errorf("account %d: %w", accountNO, models.ErrInsufficientFunds)
	}

	acc.Balance -= amount
	acc.Transactions = append(acc.Transactions, models.Transaction{
		Ammount:         amount,
		TransactionType: models.TransactionDebit,
	})
	return s.accounts.Upsert(acc)
}

// Transfer moves amount between two accounts: a Debit on from, a Credit on
// to, then an upsert of each. The source balance may equal the amount. The
// two writes are not atomic; a failure between them leaves the pair
// inconsistent with no recovery pass to finish or undo the first write.
func (s *Service) Transfer(fromNO, toNO, amount int64) error {
	s.log.Error("Entering method: Transfer")

	if err := checkInputs(amount, fromNO, toNO); err != nil {
		s.log.Error("Input account number is invalid.")
		return err
	}

	from, err := s.loadActive(fromNO)
	if err != nil {
		return err
	}
	to, err := s.loadActive(toNO)
	if err != nil {
		return err
	}

	if from.Balance < amount {
		s.log.Error("Account does not have enough balance.")
		return fmt.Errorf("account %d: %w", fromNO, models.ErrInsufficientFunds)
	}

	from.Balance -= amount
	from.Transactions = append(from.Transactions, models.Transaction{
		Ammount:         amount,
		TransactionType: models.TransactionDebit,
	})

	to.Balance += amount
	to.Transactions = append(to.Transactions, models.Transaction{
		Ammount:         amount,
		TransactionType: models.TransactionCredit,
	})

	if err := s.accounts.Upsert(from); err != nil {
		return err
	}
	return s.accounts.Upsert(to)
}

// checkInputs applies the shared input policy: identifiers and amounts that
// parse to zero fail with the generic operation error, negative values fail
// as invalid arguments.
func checkInputs(amount int64, accountNOs ...int64) error {
	if amount < 0 {
		return fmt.Errorf("amount must be positive: %w", models.ErrInvalidArgument)
	}
	if amount == 0 {
		return fmt.Errorf("amount is zero: %w", models.ErrOperationFailed)
	}
	for _, no := range accountNOs {
		if no < 0 {
			return fmt.Errorf("account number must be positive: %w", models.ErrInvalidArgument)
		}
		if no == 0 {
			return fmt.Errorf("account number is zero: %w", models.ErrOperationFailed)
		}
	}
	return nil
}

func (s *Service) loadActive(accountNO int64) (models.Account, error) {
	acc, ok := s.accounts.FindByID(models.Account{AccountNO: accountNO}.DocumentID())
	if !ok {
		s.log.Error("Account with provided number is either closed or does not exist.")
		return models.Account{}, fmt.Errorf("account %d: %w", accountNO, models.ErrNotFound)
	}
	if !acc.IsActive {
		s.log.Error("Account with provided number is either closed or does not exist.")
		return models.Account{}, fmt.Errorf("account %d: %w", accountNO, models.ErrInactiveAccount)
	}
	return acc, nil
}
