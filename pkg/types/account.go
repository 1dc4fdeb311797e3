package types

import "time"

// Account represents a staff login account
type Account struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountSummary is the listing view of an account
type AccountSummary struct {
	Username string `json:"username"`
	Role     Role   `json:"role"`
}
