package api

import (
	"net/http"

	"airline-ops/tower/internal/common"
	"airline-ops/tower/internal/constants"
	"airline-ops/tower/internal/logging"
)

// respondServiceError maps a service error onto the taxonomy. Anything that
// is not an APIError is logged server-side and reported as a generic 500.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if apiErr, ok := common.AsAPIError(err); ok {
		common.RespondError(w, apiErr.Code, apiErr.Message)
		return
	}

	logging.Error("request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err.Error(),
	)
	common.RespondError(w, http.StatusInternalServerError, constants.MsgInternalError)
}
