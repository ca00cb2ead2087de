package handlers

//go:generate mockgen -source=list_users.go -destination=mock_list_users.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-user-records/internal/logger"
	"github.com/sbilibin2017/gw-user-records/internal/models"
)

// UserLister defines the interface that the service must implement.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.UserWithID, error)
}

// NewListUsersHandler returns an HTTP handler listing every stored user.
// @Summary List users
// @Description Returns all users in store order. No pagination.
// @Tags users
// @Produce json
// @Success 200 {array} models.UserWithID
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeInternalError(w)
			return
		}
		if users == nil {
			users = []models.UserWithID{}
		}
		writeJSON(w, http.StatusOK, users)
	}
}
