package services

//go:generate mockgen -source=user.go -destination=mock_user.go -package=services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sbilibin2017/gw-user-records/internal/logger"
	"github.com/sbilibin2017/gw-user-records/internal/models"
)

// ErrUserNotFound is returned when no stored user has the requested id.
var ErrUserNotFound = errors.New("user not found")

// FakeUserCount is the number of rows added by one GenerateFakeUsers call.
const FakeUserCount = 4

// UserReader defines read-only operations for users.
type UserReader interface {
	List(ctx context.Context) ([]models.UserDB, error)
	GetByID(ctx context.Context, userID int64) (*models.UserDB, error)
}

// UserWriter defines write operations for users.
// Update and Delete report a missing row as sql.ErrNoRows.
type UserWriter interface {
	Create(ctx context.Context, user models.UserDB) (int64, error)
	Update(ctx context.Context, user models.UserDB) error
	Delete(ctx context.Context, userID int64) error
}

// UserService implements the user record use cases.
type UserService struct {
	reader UserReader
	writer UserWriter
}

// NewUserService creates a new UserService instance.
func NewUserService(reader UserReader, writer UserWriter) *UserService {
	return &UserService{
		reader: reader,
		writer: writer,
	}
}

// ListUsers returns every stored user.
func (svc *UserService) ListUsers(ctx context.Context) ([]models.UserWithID, error) {
	rows, err := svc.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "err", err)
		return nil, err
	}

	users := make([]models.UserWithID, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.ToUserWithID())
	}
	return users, nil
}

// GetUser returns the user with the given id or ErrUserNotFound.
func (svc *UserService) GetUser(ctx context.Context, userID int64) (models.UserWithID, error) {
	row, err := svc.reader.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserWithID{}, ErrUserNotFound
		}
		logger.Log.Errorw("failed to get user", "userID", userID, "err", err)
		return models.UserWithID{}, err
	}
	return row.ToUserWithID(), nil
}

// CreateUser stores a new user and returns the payload with the assigned id.
// No duplicate check is made.
func (svc *UserService) CreateUser(ctx context.Context, user models.User) (models.UserWithID, error) {
	userID, err := svc.writer.Create(ctx, models.NewUserDB(0, user))
	if err != nil {
		logger.Log.Errorw("failed to create user", "username", user.Username, "err", err)
		return models.UserWithID{}, err
	}
	return models.UserWithID{User: user, UserID: userID}, nil
}

// UpdateUser replaces every field of the stored user in one statement.
func (svc *UserService) UpdateUser(ctx context.Context, userID int64, user models.User) (models.UserWithID, error) {
	if err := svc.writer.Update(ctx, models.NewUserDB(userID, user)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserWithID{}, ErrUserNotFound
		}
		logger.Log.Errorw("failed to update user", "userID", userID, "err", err)
		return models.UserWithID{}, err
	}
	return models.UserWithID{User: user, UserID: userID}, nil
}

// DeleteUser removes the stored user or returns ErrUserNotFound.
func (svc *UserService) DeleteUser(ctx context.Context, userID int64) error {
	if err := svc.writer.Delete(ctx, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUserNotFound
		}
		logger.Log.Errorw("failed to delete user", "userID", userID, "err", err)
		return err
	}
	return nil
}

// GenerateFakeUsers inserts FakeUserCount deterministic users.
// It writes rows directly, without validation, and never checks for existing copies.
func (svc *UserService) GenerateFakeUsers(ctx context.Context) error {
	for i := 0; i < FakeUserCount; i++ {
		row, err := FakeUser(i)
		if err != nil {
			logger.Log.Errorw("failed to build fake user", "index", i, "err", err)
			return err
		}
		if _, err := svc.writer.Create(ctx, row); err != nil {
			logger.Log.Errorw("failed to save fake user", "index", i, "err", err)
			return err
		}
	}
	logger.Log.Infow("fake users generated", "count", FakeUserCount)
	return nil
}

// FakeUser builds the i-th fixture row. The birth date is 1999-i / 12-i / i+1,
// which is a real date for i in [0, 11]; other indices return models.ErrInvalidDate.
func FakeUser(i int) (models.UserDB, error) {
	suffix := strconv.Itoa(i)
	birth, err := models.NewDate(1999-i, time.Month(12-i), i+1)
	if err != nil {
		return models.UserDB{}, fmt.Errorf("fake user %d: %w", i, err)
	}

	username := "user_" + suffix
	return models.UserDB{
		Username:  username,
		Email:     username + "@mail.mail",
		Password:  "pass_" + suffix,
		FirstName: "first_name_" + suffix,
		LastName:  "last_name_" + suffix,
		Address:   "address_" + suffix,
		BirthDate: birth,
	}, nil
}
