package models

import "time"

// Account is the identity carried by a portal session. Nothing is persisted:
// sign-in always succeeds and the account lives only inside the token.
type Account struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
