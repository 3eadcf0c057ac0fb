package constants

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Role mirrors the role claim carried by session tokens
type Role string

const (
	RolePassenger Role = "passenger"
	RoleAgent     Role = "agent"
	RoleCrew      Role = "crew"
	RoleAdmin     Role = "admin"
)

// Stringer, convenient for fmt / logs
func (r Role) String() string { return string(r) }

// ParseRole normalizes and validates a role string
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RolePassenger:
		return RolePassenger, true
	case RoleAgent:
		return RoleAgent, true
	case RoleCrew:
		return RoleCrew, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return "", false
}

/* ---------- DB adapters so sqlx (or database/sql) scans/values cleanly ---------- */

// Scan implements the sql.Scanner interface
func (r *Role) Scan(src interface{}) error {
	if src == nil {
		*r = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*r = Role(v)
	case []byte:
		*r = Role(v)
	default:
		return fmt.Errorf("Role: cannot scan type %T", src)
	}
	return nil
}

// Value implements the driver.Valuer interface
func (r Role) Value() (driver.Value, error) { return string(r), nil }
