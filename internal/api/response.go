package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"

	"fixitplus-be/internal/issue"
	"fixitplus-be/internal/logger"
	"fixitplus-be/internal/order"
	"fixitplus-be/internal/product"
	"fixitplus-be/internal/user"

	"go.uber.org/zap"
)

type errorResponse struct {
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain sentinel errors onto HTTP statuses. The stack
// is exposed only outside production deployments.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)

	if status >= http.StatusInternalServerError {
		logger.FromCtx(r.Context()).Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
	}

	resp := errorResponse{Message: err.Error()}
	if !s.cfg.IsProduction() {
		resp.Stack = string(debug.Stack())
	}

	s.writeJSON(w, status, resp)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequestBody),
		errors.Is(err, user.ErrValidation),
		errors.Is(err, user.ErrNothingToUpdate),
		errors.Is(err, user.ErrInvalidRole),
		errors.Is(err, issue.ErrValidation),
		errors.Is(err, issue.ErrInvalidStatus),
		errors.Is(err, issue.ErrAfterPhotoRequired),
		errors.Is(err, product.ErrValidation),
		errors.Is(err, product.ErrNothingToUpdate),
		errors.Is(err, order.ErrEmptyCart),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrInvalidLocation),
		errors.Is(err, order.ErrInvalidStatus):
		return http.StatusBadRequest

	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized

	case errors.Is(err, user.ErrEmailExists),
		errors.Is(err, issue.ErrIssueResolved),
		errors.Is(err, order.ErrInsufficientStock),
		errors.Is(err, order.ErrInvalidTransition):
		return http.StatusConflict

	case errors.Is(err, user.ErrUserNotFound),
		errors.Is(err, issue.ErrIssueNotFound),
		errors.Is(err, product.ErrProductNotFound),
		errors.Is(err, order.ErrOrderNotFound):
		return http.StatusNotFound
	}

	return http.StatusInternalServerError
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

var errBadRequestBody = errors.New("invalid request body")
