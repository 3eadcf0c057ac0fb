package auth

import (
	"github.com/golang-jwt/jwt/v5"

	"airline-ops/tower/internal/constants"
)

// UserClaims is the identity a verified session token grants a request.
type UserClaims interface {
	Username() string
	Role() constants.Role
	PassengerSSN() string
	EmployeeID() string
	Name() string
	Email() string
}

// SessionClaims is the JWT payload issued at login. The wire field names are
// part of the token contract and must not change between releases.
type SessionClaims struct {
	RoleValue     string `json:"role"`
	SSNValue      string `json:"ssn"`
	EmployeeIDVal string `json:"employee_id"`
	NameValue     string `json:"name"`
	EmailValue    string `json:"email"`
	jwt.RegisteredClaims
}

func (c *SessionClaims) Username() string        { return c.Subject }
func (c *SessionClaims) Role() constants.Role    { return constants.Role(c.RoleValue) }
func (c *SessionClaims) PassengerSSN() string    { return c.SSNValue }
func (c *SessionClaims) EmployeeID() string      { return c.EmployeeIDVal }
func (c *SessionClaims) Name() string            { return c.NameValue }
func (c *SessionClaims) Email() string           { return c.EmailValue }
