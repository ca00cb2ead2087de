package repositories

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-user-records/internal/logger"
	"github.com/sbilibin2017/gw-user-records/internal/models"
)

const userColumns = `user_id, username, email, password, first_name, last_name, address, birth_date`

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// List returns every row in store order.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	query := r.db.Rebind(`SELECT ` + userColumns + ` FROM users`)

	users := []models.UserDB{}
	err := r.db.SelectContext(ctx, &users, query)

	logQuery(query, nil, len(users), err)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID returns sql.ErrNoRows when no row has the id.
func (r *UserReadRepository) GetByID(ctx context.Context, userID int64) (*models.UserDB, error) {
	query := r.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE user_id = ?`)

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, userID)

	logQuery(query, []any{userID}, user.UserID, err)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// executor returns the request transaction if one is open, the pool otherwise.
func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Create inserts the row, ignoring its UserID, and returns the id assigned by the store.
func (r *UserWriteRepository) Create(ctx context.Context, user models.UserDB) (int64, error) {
	query := r.db.Rebind(`
		INSERT INTO users (username, email, password, first_name, last_name, address, birth_date)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING user_id
	`)
	args := []any{user.Username, user.Email, user.Password, user.FirstName, user.LastName, user.Address, user.BirthDate}

	var userID int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &userID, query, args...)

	logQuery(query, maskPassword(args, 2), userID, err)

	if err != nil {
		return 0, err
	}
	return userID, nil
}

// Update overwrites every column of the row with user.UserID in a single statement.
// It returns sql.ErrNoRows when no row matched.
func (r *UserWriteRepository) Update(ctx context.Context, user models.UserDB) error {
	query := r.db.Rebind(`
		UPDATE users
		SET username = ?, email = ?, password = ?, first_name = ?, last_name = ?, address = ?, birth_date = ?
		WHERE user_id = ?
	`)
	args := []any{user.Username, user.Email, user.Password, user.FirstName, user.LastName, user.Address, user.BirthDate, user.UserID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	rowsAffected := affected(res, err)

	logQuery(query, maskPassword(args, 2), rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes the row in a single statement.
// It returns sql.ErrNoRows when no row matched.
func (r *UserWriteRepository) Delete(ctx context.Context, userID int64) error {
	query := r.db.Rebind(`DELETE FROM users WHERE user_id = ?`)

	res, err := r.executor(ctx).ExecContext(ctx, query, userID)
	rowsAffected := affected(res, err)

	logQuery(query, []any{userID}, rowsAffected, err)

	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func affected(res sql.Result, err error) int64 {
	if err != nil || res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}

// maskPassword returns a copy of args with the value at idx wrapped in a Secret.
func maskPassword(args []any, idx int) []any {
	masked := make([]any, len(args))
	copy(masked, args)
	if s, ok := masked[idx].(string); ok {
		masked[idx] = models.NewSecret(s)
	}
	return masked
}

// logQuery logs the query on a single line.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
