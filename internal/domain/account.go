package domain

import "time"

// Account represents a registered user of the armory economy, keyed by an
// opaque address. Rank starts at 0 and only ever moves up, one step per
// successful upgrade.
type Account struct {
	Address    string    `json:"address"`
	Registered bool      `json:"registered"`
	Rank       int       `json:"rank"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Role is a capability granted to an address. Every mutating operation
// checks the caller's capability before touching state.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleMinter        Role = "minter"
	RoleURISetter     Role = "uri_setter"
)

// Valid reports whether r is a known capability.
func (r Role) Valid() bool {
	switch r {
	case RoleAdministrator, RoleMinter, RoleURISetter:
		return true
	}
	return false
}
