package models

// User is the payload accepted by create and update.
// swagger:model User
type User struct {
	// Username
	// required: true
	// example: john_doe
	Username string `json:"username" validate:"required,max=30"`

	// Email
	// required: true
	// example: john@example.com
	Email string `json:"email" validate:"required,email,max=100"`

	// Password, write-only. Always rendered as a mask.
	// required: true
	// example: secret123
	Password Secret `json:"password" swaggertype:"string" validate:"required,max=300"`

	// First name
	// required: true
	// example: John
	FirstName string `json:"first_name" validate:"required,min=2,max=100"`

	// Last name
	// required: true
	// example: Doe
	LastName string `json:"last_name" validate:"required,min=2,max=100"`

	// Address
	// required: true
	// example: 1 Main Street
	Address string `json:"address" validate:"required,min=5,max=300"`

	// Birth date, YYYY-MM-DD
	// required: true
	// example: 1990-01-31
	BirthDate Date `json:"birth_date" swaggertype:"string" format:"date" validate:"required"`
}

// UserWithID is a stored user as returned to clients.
// swagger:model UserWithID
type UserWithID struct {
	User

	// Store-assigned identifier
	// example: 1
	UserID int64 `json:"user_id"`
}

// UserDB represents a row of the users table.
type UserDB struct {
	UserID    int64  `db:"user_id"`    // Primary key, assigned by the store
	Username  string `db:"username"`   // Not unique
	Email     string `db:"email"`      // Not unique
	Password  string `db:"password"`   // Stored as submitted
	FirstName string `db:"first_name"`
	LastName  string `db:"last_name"`
	Address   string `db:"address"`
	BirthDate Date   `db:"birth_date"`
}

// NewUserDB unwraps the password of u and builds a row for it.
func NewUserDB(userID int64, u User) UserDB {
	return UserDB{
		UserID:    userID,
		Username:  u.Username,
		Email:     u.Email,
		Password:  u.Password.Reveal(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Address:   u.Address,
		BirthDate: u.BirthDate,
	}
}

// ToUserWithID converts a row into its client representation.
func (u UserDB) ToUserWithID() UserWithID {
	return UserWithID{
		User: User{
			Username:  u.Username,
			Email:     u.Email,
			Password:  NewSecret(u.Password),
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Address:   u.Address,
			BirthDate: u.BirthDate,
		},
		UserID: u.UserID,
	}
}
