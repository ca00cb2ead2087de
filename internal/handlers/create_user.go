package handlers

//go:generate mockgen -source=create_user.go -destination=mock_create_user.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-user-records/internal/logger"
	"github.com/sbilibin2017/gw-user-records/internal/models"
)

// UserCreator defines the interface that the service must implement.
type UserCreator interface {
	CreateUser(ctx context.Context, user models.User) (models.UserWithID, error)
}

// NewCreateUserHandler returns an HTTP handler creating a user.
// @Summary Create user
// @Description Validates the payload and stores it. Duplicates are accepted. The password is stored as submitted and never returned.
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.User true "User"
// @Success 200 {object} models.UserWithID
// @Failure 422 {object} handlers.ValidationErrorResponse "Validation error"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /new_user [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, verrs := decodeUser(r)
		if verrs != nil {
			logger.Log.Warnw("invalid create user request", "errors", verrs)
			writeValidationErrors(w, verrs)
			return
		}

		created, err := svc.CreateUser(r.Context(), user)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeInternalError(w)
			return
		}

		writeJSON(w, http.StatusOK, created)
	}
}
