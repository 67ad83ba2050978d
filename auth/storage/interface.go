package storage

import (
	"context"

	"expensedesk/auth/accounts"
)

// AuthStorage is the credential source of truth. GetAccount expects
// already-normalized email and role and reports a missing row as
// sql.ErrNoRows.
type AuthStorage interface {
	GetAccount(ctx context.Context, email string, role string) (accounts.Account, error)
	CreateAccount(ctx context.Context, account accounts.Account) error
}
