package handlers

//go:generate mockgen -source=delete_user.go -destination=mock_delete_user.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-user-records/internal/logger"
	"github.com/sbilibin2017/gw-user-records/internal/services"
)

// UserDeleter defines the interface that the service must implement.
type UserDeleter interface {
	DeleteUser(ctx context.Context, userID int64) error
}

// NewDeleteUserHandler returns an HTTP handler removing a user.
// @Summary Delete user
// @Tags users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} string "[\"OK\"]"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 422 {object} handlers.ValidationErrorResponse "Invalid user id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{user_id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, verrs := parseUserID(r)
		if verrs != nil {
			writeValidationErrors(w, verrs)
			return
		}

		if err := svc.DeleteUser(r.Context(), userID); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeNotFound(w)
			default:
				logger.Log.Errorw("internal server error", "userID", userID, "err", err)
				writeInternalError(w)
			}
			return
		}

		writeJSON(w, http.StatusOK, []string{"OK"})
	}
}
