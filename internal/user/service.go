// Package user implements the user service: customer registration, profile
// updates and the per-user account-number list that the account service
// mutates remotely during account lifecycle changes.
package user

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/docstore"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/models"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/validation"
)

type Service struct {
	users *docstore.Collection[models.User]
	log   *logrus.Entry
}

func NewService(users *docstore.Collection[models.User]) *Service {
	return &Service{
		users: users,
		log:   logrus.WithField("service", "user"),
	}
}

// Register creates a new customer record. Duplicate user IDs are rejected.
func (s *Service) Register(u models.User) error {
	s.log.Debug("Entering method: Register")

	if err := validation.Struct(u); err != nil {
		s.log.Error("Input user is invalid.")
		return err
	}

	if _, ok := s.users.FindByID(u.UserID); ok {
		s.log.Error("User already exists.")
		return fmt.Errorf("user %s: %w", u.UserID, models.ErrAlreadyExists)
	}

	return s.users.Insert(u)
}

// Update replaces the stored record for an existing customer.
func (s *Service) Update(u models.User) error {
	s.log.Debug("Entering method: Update")

	if err := validation.Struct(u); err != nil {
		s.log.Error("Input user is invalid.")
		return err
	}

	if _, ok := s.users.FindByID(u.UserID); !ok {
		s.log.Error("User does not exist.")
		return fmt.Errorf("user %s: %w", u.UserID, models.ErrNotFound)
	}

	return s.users.Upsert(u)
}

// AccountsList returns the account numbers recorded against the user.
func (s *Service) AccountsList(userID string) ([]int64, error) {
	s.log.Debug("Entering method: AccountsList")

	if strings.TrimSpace(userID) == "" {
		s.log.Error("Input user ID is invalid.")
		return nil, fmt.Errorf("user ID: %w", models.ErrInvalidArgument)
	}

	u, ok := s.users.FindByID(userID)
	if !ok || u.UserAccounts == nil {
		s.log.Error("User with input user ID does not exist.")
		return nil, fmt.Errorf("user %s: %w", userID, models.ErrNotFound)
	}
	return u.UserAccounts, nil
}

// AddAccount appends accountNO to the user's account list. Invoked remotely
// by the account service before it writes its own record; nothing here knows
// whether that local write will ever happen.
func (s *Service) AddAccount(userID string, accountNO int64) error {
	s.log.Debug("Entering method: AddAccount")

	if accountNO == 0 || strings.TrimSpace(userID) == "" {
		s.log.Error("Input user is invalid.")
		return fmt.Errorf("user or account number: %w", models.ErrInvalidArgument)
	}

	u, ok := s.users.FindByID(userID)
	if !ok {
		s.log.Error("User does not exist.")
		return fmt.Errorf("user %s: %w", userID, models.ErrNotFound)
	}

	u.UserAccounts = append(u.UserAccounts, accountNO)
	return s.users.Upsert(u)
}

// RemoveAccount drops accountNO from the user's account list. A number that
// is not present is not an error: the upsert still happens.
func (s *Service) RemoveAccount(userID string, accountNO int64) error {
	s.log.Debug("Entering method: RemoveAccount")

	if accountNO == 0 || strings.TrimSpace(userID) == "" {
		s.log.Error("Input user is invalid.")
		return fmt.Errorf("user or account number: %w", models.ErrInvalidArgument)
	}

	u, ok := s.users.FindByID(userID)
	if !ok {
		s.log.Error("User does not exist.")
		return fmt.Errorf("user %s: %w", userID, models.ErrNotFound)
	}

	for i, n := range u.UserAccounts {
		if n == accountNO {
			u.UserAccounts = append(u.UserAccounts[:i], u.UserAccounts[i+1:]...)
			break
		}
	}
	return s.users.Upsert(u)
}
