package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"airline-ops/tower/internal/auth"
	"airline-ops/tower/internal/common"
	"airline-ops/tower/internal/metrics"
	"airline-ops/tower/internal/models/dtos"
	"airline-ops/tower/internal/services"
)

// LoginHandler handles POST /auth/login. A bad username and a bad password
// fail identically.
func LoginHandler(registry *services.UserRegistry, issuer *auth.TokenIssuer, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		username := strings.TrimSpace(req.Username)
		if username == "" || req.Password == "" {
			common.RespondError(w, http.StatusBadRequest, "username and password are required.")
			return
		}

		user, err := registry.Authenticate(username, req.Password)
		if err != nil {
			metricsReg.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			respondServiceError(w, r, err)
			return
		}

		name := user.Name
		if name == "" {
			name = username
		}

		token, err := issuer.Issue(username, user.Role.String(), user.SSN, user.EmployeeID, name, user.Email)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		metricsReg.LoginAttemptsTotal.WithLabelValues("success").Inc()
		common.RespondSuccess(w, http.StatusOK, &dtos.LoginResponse{
			Token: token,
			Role:  user.Role.String(),
			Name:  name,
			Email: user.Email,
		})
	}
}

// RegisterHandler handles POST /auth/register for the non-admin roles.
func RegisterHandler(registry *services.UserRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		user, err := registry.Register(req)
		if err != nil {
			respondServiceError(w, r, err)
			return
		}

		common.RespondSuccess(w, http.StatusCreated, &dtos.RegisterResponse{
			Username: user.Username,
			Role:     user.Role.String(),
			Name:     user.Name,
			Email:    user.Email,
		})
	}
}
