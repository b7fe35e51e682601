package models

import "strconv"

// Transaction types recorded against an account.
const (
	TransactionCredit = "Credit"
	TransactionDebit  = "Debit"
)

// Transaction is a single ledger entry on an account. Transactions are
// append-only and live inside their owning Account document; they have no
// identity or collection of their own.
type Transaction struct {
	Ammount         int64  `json:"ammount"`
	TransactionType string `json:"transactionType"`
}

// Account is the document persisted in each service's "accounts" collection.
// AccountNO is the collection key and is immutable once created. An account
// with IsActive=false is closed; no operation reactivates it.
type Account struct {
	UserID              string        `json:"userID" validate:"required,notblank"`
	AccountNO           int64         `json:"accountNO" validate:"required"`
	Branch              string        `json:"branch"`
	IsActive            bool          `json:"isActive"`
	Balance             int64         `json:"balance"`
	IsChecqueBookIssued bool          `json:"isChecqueBookIssued"`
	Transactions        []Transaction `json:"transactions"`
}

func (a Account) DocumentID() string {
	return strconv.FormatInt(a.AccountNO, 10)
}

// User is the document persisted in the user service's "users" collection.
// UserAccounts holds the account numbers owned by the user; the matching
// Account records live in a different service's store, so the list is a weak
// reference with no cross-store integrity guarantee.
type User struct {
	UserID       string  `json:"userID" validate:"required,notblank"`
	UserAddress  string  `json:"userAddress" validate:"required,notblank"`
	UserEmail    string  `json:"userEmail" validate:"required,notblank"`
	UserAccounts []int64 `json:"userAccounts"`
}

func (u User) DocumentID() string {
	return u.UserID
}
