package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/sbilibin2017/gw-user-records/internal/models"
)

// userIDParam is the chi URL parameter holding the user id.
const userIDParam = "user_id"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Rules on a Secret apply to the wrapped value; rules on a Date apply to its time.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if s, ok := field.Interface().(models.Secret); ok {
			return s.Reveal()
		}
		return nil
	}, models.Secret{})
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(models.Date); ok {
			return d.Time
		}
		return nil
	}, models.Date{})

	return v
}

// validateUser runs the field rules of models.User.
func validateUser(user models.User) []ValidationError {
	err := validate.Struct(user)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []ValidationError{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}}
	}

	errs := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{
			Loc:  []string{"body", fe.Field()},
			Msg:  validationMessage(fe),
			Type: fe.Tag(),
		})
	}
	return errs
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field required"
	case "email":
		return "Invalid email format"
	case "min":
		return "Value should have at least " + fe.Param() + " characters"
	case "max":
		return "Value should have at most " + fe.Param() + " characters"
	default:
		return "Invalid value"
	}
}

// decodeUser reads and validates a models.User body.
// A non-nil slice means the request must be rejected with 422.
func decodeUser(r *http.Request) (models.User, []ValidationError) {
	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		return models.User{}, []ValidationError{decodeError(err)}
	}
	if errs := validateUser(user); errs != nil {
		return models.User{}, errs
	}
	return user, nil
}

func decodeError(err error) ValidationError {
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, models.ErrInvalidDate):
		return ValidationError{Loc: []string{"body", "birth_date"}, Msg: "Input should be a valid date in YYYY-MM-DD format", Type: "date"}
	case errors.As(err, &typeErr) && typeErr.Field != "":
		return ValidationError{Loc: []string{"body", typeErr.Field}, Msg: "Input should be a valid " + typeErr.Type.String(), Type: "type"}
	default:
		return ValidationError{Loc: []string{"body"}, Msg: "JSON decode error", Type: "json_invalid"}
	}
}

// parseUserID reads the user id from the URL path.
func parseUserID(r *http.Request) (int64, []ValidationError) {
	raw := chi.URLParam(r, userIDParam)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, []ValidationError{{
			Loc:  []string{"path", userIDParam},
			Msg:  "Input should be a valid integer",
			Type: "int_parsing",
		}}
	}
	return id, nil
}
