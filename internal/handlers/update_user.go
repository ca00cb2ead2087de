package handlers

//go:generate mockgen -source=update_user.go -destination=mock_update_user.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-user-records/internal/logger"
	"github.com/sbilibin2017/gw-user-records/internal/models"
	"github.com/sbilibin2017/gw-user-records/internal/services"
)

// UserUpdater defines the interface that the service must implement.
type UserUpdater interface {
	UpdateUser(ctx context.Context, userID int64, user models.User) (models.UserWithID, error)
}

// NewUpdateUserHandler returns an HTTP handler replacing every field of a user.
// @Summary Replace user
// @Description Full replace: every field is overwritten with the payload.
// @Tags users
// @Accept json
// @Produce json
// @Param user_id path int true "User ID"
// @Param user body models.User true "User"
// @Success 200 {object} models.UserWithID
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation error"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{user_id} [put]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, verrs := parseUserID(r)
		if verrs != nil {
			writeValidationErrors(w, verrs)
			return
		}

		user, verrs := decodeUser(r)
		if verrs != nil {
			logger.Log.Warnw("invalid update user request", "userID", userID, "errors", verrs)
			writeValidationErrors(w, verrs)
			return
		}

		updated, err := svc.UpdateUser(r.Context(), userID, user)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				writeNotFound(w)
			default:
				logger.Log.Errorw("internal server error", "userID", userID, "err", err)
				writeInternalError(w)
			}
			return
		}

		writeJSON(w, http.StatusOK, updated)
	}
}
