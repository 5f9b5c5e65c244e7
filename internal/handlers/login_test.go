package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/onlyfilms/onlyfilms/internal/services"
)

func TestLoginHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockLoginer)
		expectedCode int
		expectedBody map[string]string
	}{
		{
			name: "success",
			body: `{"login":"alice1","password":"pw12345"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice1", "pw12345").
					Return("tok-abc", nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: map[string]string{"token": "tok-abc"},
		},
		{
			name: "invalid credentials",
			body: `{"login":"alice1","password":"wrongpw"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice1", "wrongpw").
					Return("", services.ErrInvalidCredentials)
			},
			expectedCode: http.StatusNotAcceptable,
			expectedBody: map[string]string{"error": "invalid login or password"},
		},
		{
			name:         "missing password",
			body:         `{"login":"alice1"}`,
			mockSetup:    func(m *MockLoginer) {},
			expectedCode: http.StatusUnprocessableEntity,
			expectedBody: map[string]string{"error": "password is required"},
		},
		{
			name: "internal server error",
			body: `{"login":"alice1","password":"pw12345"}`,
			mockSetup: func(m *MockLoginer) {
				m.EXPECT().
					Login(gomock.Any(), "alice1", "pw12345").
					Return("", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: map[string]string{"error": "internal server error"},
		},
		{
			name:         "invalid json",
			body:         `not json`,
			mockSetup:    func(m *MockLoginer) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: map[string]string{"error": "invalid request body"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLoginer(ctrl)
			tt.mockSetup(mockSvc)

			handler := NewLoginHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]string
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestLoginHandler_SetsTokenCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockLoginer(ctrl)
	mockSvc.EXPECT().
		Login(gomock.Any(), "alice1", "pw12345").
		Return("tok-abc", nil)

	handler := NewLoginHandler(mockSvc)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"login":"alice1","password":"pw12345"}`))
	rr := httptest.NewRecorder()
	handler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	cookies := rr.Result().Cookies()
	var found *http.Cookie
	for _, c := range cookies {
		if c.Name == "token" {
			found = c
		}
	}
	if assert.NotNil(t, found) {
		assert.Equal(t, "tok-abc", found.Value)
		assert.True(t, found.HttpOnly)
	}
}
