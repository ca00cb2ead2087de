package handlers

//go:generate mockgen -source=fake_users.go -destination=mock_fake_users.go -package=handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-user-records/internal/logger"
)

// FakeUserGenerator defines the interface that the service must implement.
type FakeUserGenerator interface {
	GenerateFakeUsers(ctx context.Context) error
}

// NewCreateFakeUsersHandler returns an HTTP handler that inserts the fixture users.
// Every call adds the same four users again.
// @Summary Generate fixture users
// @Description Inserts four deterministic users (user_0 .. user_3). Repeated calls insert duplicates.
// @Tags users
// @Produce json
// @Success 200 {string} string "OK"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /create_fake_users [get]
func NewCreateFakeUsersHandler(svc FakeUserGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.GenerateFakeUsers(r.Context()); err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			writeInternalError(w)
			return
		}
		writeJSON(w, http.StatusOK, "OK")
	}
}
