// Package directory stores staff accounts and enforces the account
// invariants: unique usernames and at least one admin at all times.
package directory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clinicore/hms/pkg/logger"
	"github.com/clinicore/hms/pkg/types"
)

// AccountDirectory owns all accounts. Accounts are referenced by
// username; no other component keeps long-lived references into the
// directory.
type AccountDirectory struct {
	mu       sync.Mutex
	accounts []*types.Account
	logger   *logger.Logger
}

// New creates a directory seeded with exactly one admin account, so
// the directory is never without an admin from creation onward.
func New(adminUsername, adminPassword string, log *logger.Logger) *AccountDirectory {
	d := &AccountDirectory{logger: log}
	d.accounts = append(d.accounts, &types.Account{
		ID:        uuid.New().String(),
		Username:  adminUsername,
		Password:  adminPassword,
		Role:      types.RoleAdmin,
		CreatedAt: time.Now(),
	})

	log.WithComponent("directory").
		WithField("username", adminUsername).
		Info("Bootstrap admin account seeded")

	return d
}

// Exists reports whether an account with the given username exists
func (d *AccountDirectory) Exists(username string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.find(username) != nil
}

// Create stores a new account. Usernames are unique, case-sensitive.
func (d *AccountDirectory) Create(username, password string, role types.Role) (*types.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.find(username) != nil {
		return nil, types.NewConflictError(types.ErrCodeDuplicateUsername, "username already exists")
	}

	account := &types.Account{
		ID:        uuid.New().String(),
		Username:  username,
		Password:  password,
		Role:      role,
		CreatedAt: time.Now(),
	}
	d.accounts = append(d.accounts, account)

	d.logger.WithComponent("directory").
		WithField("username", username).
		WithField("role", role).
		Info("Account created")

	return account, nil
}

// Delete removes an account by username. Deleting the sole remaining
// admin account fails and leaves the directory unchanged.
func (d *AccountDirectory) Delete(username string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	idx := -1
	for i, account := range d.accounts {
		if account.Username == username {
			idx = i
			break
		}
	}
	if idx == -1 {
		return types.NewNotFoundError(types.ErrCodeNotFound, "account not found")
	}

	if d.accounts[idx].Role == types.RoleAdmin && d.adminCount() <= 1 {
		return types.NewConflictError(types.ErrCodeLastAdmin, "cannot delete the last admin account")
	}

	d.accounts = append(d.accounts[:idx], d.accounts[idx+1:]...)

	d.logger.WithComponent("directory").
		WithField("username", username).
		Info("Account deleted")

	return nil
}

// Authenticate checks username and password as an exact match. The
// result does not distinguish an unknown username from a wrong
// password.
func (d *AccountDirectory) Authenticate(username, password string) (*types.Account, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	account := d.find(username)
	if account == nil || account.Password != password {
		return nil, types.NewAuthenticationError(types.ErrCodeAuthFailed, "invalid username or password")
	}

	copied := *account
	return &copied, nil
}

// SetPassword replaces the password of an existing account
func (d *AccountDirectory) SetPassword(username, password string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	account := d.find(username)
	if account == nil {
		return types.NewNotFoundError(types.ErrCodeNotFound, "account not found")
	}
	account.Password = password

	d.logger.WithComponent("directory").
		WithField("username", username).
		Info("Password changed")

	return nil
}

// List returns (username, role) pairs in storage order
func (d *AccountDirectory) List() []types.AccountSummary {
	d.mu.Lock()
	defer d.mu.Unlock()

	summaries := make([]types.AccountSummary, 0, len(d.accounts))
	for _, account := range d.accounts {
		summaries = append(summaries, types.AccountSummary{
			Username: account.Username,
			Role:     account.Role,
		})
	}
	return summaries
}

// find assumes d.mu is held
func (d *AccountDirectory) find(username string) *types.Account {
	for _, account := range d.accounts {
		if account.Username == username {
			return account
		}
	}
	return nil
}

// adminCount assumes d.mu is held
func (d *AccountDirectory) adminCount() int {
	count := 0
	for _, account := range d.accounts {
		if account.Role == types.RoleAdmin {
			count++
		}
	}
	return count
}
