package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

// validBody is a create/update payload that passes every rule.
const validBody = `{
	"username": "john",
	"email": "john@example.com",
	"password": "secret123",
	"first_name": "John",
	"last_name": "Doe",
	"address": "1 Main Street",
	"birth_date": "1990-01-31"
}`

// bodyWith returns validBody with one field replaced by the raw JSON value.
func bodyWith(t *testing.T, field string, raw string) string {
	t.Helper()
	var m map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(validBody), &m))
	if raw == "" {
		delete(m, field)
	} else {
		m[field] = json.RawMessage(raw)
	}
	out, err := json.Marshal(m)
	require.NoError(t, err)
	return string(out)
}

// withUserID sets the chi URL parameter the way the router does.
func withUserID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(userIDParam, id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeDetail(t *testing.T, body string) ValidationErrorResponse {
	t.Helper()
	var resp ValidationErrorResponse
	require.NoError(t, json.NewDecoder(strings.NewReader(body)).Decode(&resp))
	return resp
}
