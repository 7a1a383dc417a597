package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"reqres/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuthService implements domain.AuthService for handler tests.
type fakeAuthService struct {
	err       error
	token     string
	userID    int
	lastEmail string
	lastPass  string
}

func (f *fakeAuthService) Login(_ context.Context, email, password string) (string, error) {
	f.lastEmail, f.lastPass = email, password
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

func (f *fakeAuthService) Register(_ context.Context, email, password string) (int, string, error) {
	f.lastEmail, f.lastPass = email, password
	if f.err != nil {
		return 0, "", f.err
	}
	return f.userID, f.token, nil
}

func TestAuthController_Login(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fakeErr    error
		wantStatus int
		wantBody   string
	}{
		{name: "success", body: `{"email":"eve.holt@reqres.in","password":"cityslicka"}`, wantStatus: http.StatusOK, wantBody: `{"token":"QpwL5tke4Pnpja7X4"}`},
		{name: "missing password", body: `{"email":"peter@klaven"}`, fakeErr: domain.ErrMissingPassword, wantStatus: http.StatusBadRequest, wantBody: `{"error":"Missing password"}`},
		{name: "missing email", body: ``, fakeErr: domain.ErrMissingEmail, wantStatus: http.StatusBadRequest, wantBody: `{"error":"Missing email or username"}`},
		{name: "wrong password", body: `{"email":"eve.holt@reqres.in","password":"x"}`, fakeErr: domain.ErrInvalidCredentials, wantStatus: http.StatusUnauthorized, wantBody: `{"error":"Invalid login credentials"}`},
		{name: "malformed json", body: `{"email"`, wantStatus: http.StatusBadRequest, wantBody: ""},
		{name: "unexpected error", body: `{}`, fakeErr: errors.New("signing failed"), wantStatus: http.StatusInternalServerError, wantBody: `{"detail":"Internal Server Error"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAuthService{err: tt.fakeErr, token: "QpwL5tke4Pnpja7X4"}
			ctrl := NewAuthController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "http://test/api/login", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			ctrl.Login(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, rr.Body.String())
			}
		})
	}
}

func TestAuthController_Register(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		fakeErr    error
		wantStatus int
		wantBody   string
	}{
		{name: "success", body: `{"email":"eve.holt@reqres.in","password":"pistol"}`, wantStatus: http.StatusOK, wantBody: `{"id":4,"token":"QpwL5tke4Pnpja7X4"}`},
		{name: "unknown user", body: `{"email":"sydney@fife","password":"pistol"}`, fakeErr: domain.ErrUnknownUser, wantStatus: http.StatusBadRequest, wantBody: `{"error":"Note: Only defined users succeed registration"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeAuthService{err: tt.fakeErr, token: "QpwL5tke4Pnpja7X4", userID: 4}
			ctrl := NewAuthController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "http://test/api/register", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			ctrl.Register(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
			assert.Equal(t, "pistol", fake.lastPass)
		})
	}
}
