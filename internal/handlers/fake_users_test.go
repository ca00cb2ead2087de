package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestCreateFakeUsersHandler(t *testing.T) {
	tests := []struct {
		name         string
		svcErr       error
		expectedCode int
		expectedBody string
	}{
		{name: "success", expectedCode: http.StatusOK, expectedBody: `"OK"`},
		{name: "store failure", svcErr: errors.New("db down"), expectedCode: http.StatusInternalServerError, expectedBody: `{"detail": "Internal Server Error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSvc := NewMockFakeUserGenerator(ctrl)
			mockSvc.EXPECT().GenerateFakeUsers(gomock.Any()).Return(tt.svcErr)

			req := httptest.NewRequest(http.MethodGet, "/create_fake_users", nil)
			rr := httptest.NewRecorder()
			NewCreateFakeUsersHandler(mockSvc)(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
