package handlers

//go:generate mockgen -source=get_user.go -destination=mock_get_user.go -package=handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-user-records/internal/logger"
	"github.com/sbilibin2017/gw-user-records/internal/models"
	"github.com/sbilibin2017/gw-user-records/internal/services"
)

// UserGetter defines the interface that the service must implement.
type UserGetter interface {
	GetUser(ctx context.Context, userID int64) (models.UserWithID, error)
}

// NewGetUserHandler returns an HTTP handler fetching one user by id.
// @Summary Get user
// @Tags users
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} models.UserWithID
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 422 {object} handlers.ValidationErrorResponse "Invalid user id"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users/{user_id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, verrs := parseUserID(r)
		if verrs != nil {
			writeValidationErrors(w, verrs)
			return
		}

		user, err := svc.GetUser(r.Context(), userID)
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

		writeJSON(w, http.StatusOK, user)
	}
}
