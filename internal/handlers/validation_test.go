package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sbilibin2017/gw-user-records/internal/models"
)

func validUser(t *testing.T) models.User {
	t.Helper()
	birth, err := models.NewDate(1990, 1, 31)
	require.NoError(t, err)
	return models.User{
		Username:  "john",
		Email:     "john@example.com",
		Password:  models.NewSecret("secret123"),
		FirstName: "John",
		LastName:  "Doe",
		Address:   "1 Main Street",
		BirthDate: birth,
	}
}

func TestValidateUser(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(u *models.User)
		field   string
		tag     string
		message string
	}{
		{name: "valid", mutate: func(u *models.User) {}},
		{name: "empty username", mutate: func(u *models.User) { u.Username = "" }, field: "username", tag: "required", message: "Field required"},
		{name: "bad email", mutate: func(u *models.User) { u.Email = "john" }, field: "email", tag: "email", message: "Invalid email format"},
		{name: "password over 300", mutate: func(u *models.User) { u.Password = models.NewSecret(strings.Repeat("p", 301)) }, field: "password", tag: "max", message: "Value should have at most 300 characters"},
		{name: "password of 300", mutate: func(u *models.User) { u.Password = models.NewSecret(strings.Repeat("p", 300)) }},
		{name: "short last name", mutate: func(u *models.User) { u.LastName = "D" }, field: "last_name", tag: "min", message: "Value should have at least 2 characters"},
		{name: "address over 300", mutate: func(u *models.User) { u.Address = strings.Repeat("a", 301) }, field: "address", tag: "max", message: "Value should have at most 300 characters"},
		{name: "zero birth date", mutate: func(u *models.User) { u.BirthDate = models.Date{} }, field: "birth_date", tag: "required", message: "Field required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := validUser(t)
			tt.mutate(&u)

			errs := validateUser(u)
			if tt.field == "" {
				assert.Empty(t, errs)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, []string{"body", tt.field}, errs[0].Loc)
			assert.Equal(t, tt.tag, errs[0].Type)
			assert.Equal(t, tt.message, errs[0].Msg)
		})
	}
}

func TestParseUserID(t *testing.T) {
	tests := []struct {
		raw     string
		want    int64
		wantErr bool
	}{
		{raw: "1", want: 1},
		{raw: "-4", want: -4},
		{raw: "9223372036854775807", want: 9223372036854775807},
		{raw: "abc", wantErr: true},
		{raw: "", wantErr: true},
		{raw: "2.0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			r := withUserID(httptest.NewRequest(http.MethodGet, "/users/x", nil), tt.raw)
			id, errs := parseUserID(r)
			if tt.wantErr {
				require.Len(t, errs, 1)
				assert.Equal(t, []string{"path", "user_id"}, errs[0].Loc)
				assert.Equal(t, "int_parsing", errs[0].Type)
				return
			}
			assert.Empty(t, errs)
			assert.Equal(t, tt.want, id)
		})
	}
}
