package services

import (
	"strings"
	"sync"

	"airline-ops/tower/internal/common"
	"airline-ops/tower/internal/config"
	"airline-ops/tower/internal/constants"
	"airline-ops/tower/internal/models/dtos"
)

// RegistryUser is a credential entry in the in-memory demo user table.
type RegistryUser struct {
	Username   string
	Password   string
	Role       constants.Role
	SSN        string
	EmployeeID string
	Name       string
	Email      string
}

// UserRegistry holds the demo credential table. It is seeded from
// configuration at startup and injected where needed; registrations mutate
// only this table, never the relational store.
type UserRegistry struct {
	mu    sync.RWMutex
	users map[string]RegistryUser
}

func NewUserRegistry(seed []config.DemoUser) *UserRegistry {
	users := make(map[string]RegistryUser, len(seed))
	for _, u := range seed {
		role, ok := constants.ParseRole(u.Role)
		if !ok {
			continue
		}
		users[u.Username] = RegistryUser{
			Username:   u.Username,
			Password:   u.Password,
			Role:       role,
			SSN:        u.SSN,
			EmployeeID: u.EmployeeID,
			Name:       u.Name,
			Email:      u.Email,
		}
	}
	return &UserRegistry{users: users}
}

// Authenticate returns the matching user. Unknown username and wrong
// password fail identically so callers cannot enumerate accounts.
func (r *UserRegistry) Authenticate(username, password string) (*RegistryUser, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[username]
	if !ok || user.Password != password {
		return nil, common.Unauthorized(constants.MsgInvalidCredentials)
	}
	return &user, nil
}

// Register adds a non-admin entry to the registry.
func (r *UserRegistry) Register(req dtos.RegisterRequest) (*RegistryUser, error) {
	username := strings.TrimSpace(req.Username)
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	roleRaw := strings.TrimSpace(req.Role)

	if username == "" || req.Password == "" || name == "" || email == "" || roleRaw == "" {
		return nil, common.BadRequest("username, password, name, email, and role are required.")
	}

	role, ok := constants.ParseRole(roleRaw)
	if role == constants.RoleAdmin {
		return nil, common.Forbidden(constants.MsgCannotRegisterAdmin)
	}
	if !ok {
		return nil, common.BadRequest(constants.MsgInvalidRole)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.users[username]; exists {
		return nil, common.Conflict(constants.MsgUsernameTaken)
	}

	user := RegistryUser{
		Username: username,
		Password: req.Password,
		Role:     role,
		Name:     name,
		Email:    email,
	}
	r.users[username] = user
	return &user, nil
}
