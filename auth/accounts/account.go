package accounts

import (
	"time"

	"github.com/google/uuid"
)

// Account is one credential owner, keyed by the (email, role) pair.
// SecretHash is the bcrypt hash of the password. It never leaves the
// auth service: call Sanitized before handing the account to anyone.
type Account struct {
	ID         uuid.UUID `json:"id"`
	Email      string    `json:"email"`
	Role       string    `json:"role"`
	SecretHash string    `json:"secretHash,omitempty"`
	Profile    Profile   `json:"profile"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Profile struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

// Sanitized returns a copy with the secret hash stripped.
func (a Account) Sanitized() Account {
	a.SecretHash = ""
	return a
}
