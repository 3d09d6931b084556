// Copyright (c) 2026 Reelist. All rights reserved.

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ngophan/reelist/internal/platform/ctxutil"
	"github.com/ngophan/reelist/internal/platform/middleware"
	"github.com/ngophan/reelist/internal/platform/sec"
)

// fakeVerifier accepts exactly one token string.
type fakeVerifier struct {
	validToken string
	claims     *sec.AuthClaims
}

func (verifier *fakeVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr == verifier.validToken {
		return verifier.claims, nil
	}
	return nil, errors.New("invalid token")
}

// protectedEcho is a handler chain of Authenticate → RequireAuth → echo,
// mirroring the production router layering.
func protectedEcho(verifier middleware.TokenVerifier) http.Handler {
	echo := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := ctxutil.GetAuthUser(request.Context())
		writer.WriteHeader(http.StatusOK)
		_, _ = writer.Write([]byte(claims.UserID))
	})
	return middleware.Authenticate(verifier)(middleware.RequireAuth(echo))
}

/*
TestAuthenticate_RequireAuth walks the authorization gate through every
header shape: absent, malformed, rejected, and valid.
*/
func TestAuthenticate_RequireAuth(t *testing.T) {
	verifier := &fakeVerifier{
		validToken: "good-token",
		claims:     &sec.AuthClaims{UserID: "user-123"},
	}
	handler := protectedEcho(verifier)

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantBody   string
	}{
		{"missing_header", "", http.StatusUnauthorized, ""},
		{"not_bearer", "Basic abc123", http.StatusUnauthorized, ""},
		{"bearer_no_token", "Bearer ", http.StatusUnauthorized, ""},
		{"rejected_token", "Bearer forged", http.StatusUnauthorized, ""},
		{"valid_token", "Bearer good-token", http.StatusOK, "user-123"},
		{"case_insensitive_scheme", "bearer good-token", http.StatusOK, "user-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.authHeader != "" {
				request.Header.Set("Authorization", tt.authHeader)
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, recorder.Body.String())
			}
		})
	}
}

/*
TestAuthenticate_AnonymousPassthrough checks that a request without an
Authorization header reaches unprotected handlers as anonymous.
*/
func TestAuthenticate_AnonymousPassthrough(t *testing.T) {
	verifier := &fakeVerifier{}
	open := http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Nil(t, ctxutil.GetAuthUser(request.Context()))
		writer.WriteHeader(http.StatusOK)
	})
	handler := middleware.Authenticate(verifier)(open)

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestAuthenticate_UniformRejection asserts malformed and forged tokens
produce byte-identical error bodies.
*/
func TestAuthenticate_UniformRejection(t *testing.T) {
	verifier := &fakeVerifier{validToken: "good-token"}
	handler := protectedEcho(verifier)

	bodyFor := func(authHeader string) string {
		request := httptest.NewRequest(http.MethodGet, "/", nil)
		request.Header.Set("Authorization", authHeader)
		recorder := httptest.NewRecorder()
		handler.ServeHTTP(recorder, request)
		require.Equal(t, http.StatusUnauthorized, recorder.Code)
		return recorder.Body.String()
	}

	assert.Equal(t, bodyFor("Bearer forged"), bodyFor("garbage header value"))
}
