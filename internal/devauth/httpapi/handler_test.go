package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/santosysantos/prodgate/internal/client/client"
	"github.com/santosysantos/prodgate/internal/devauth/users"
	"github.com/santosysantos/prodgate/internal/logging"
)

const testSecret = "test-secret"

func nopLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newRouter(t *testing.T, us UserService) http.Handler {
	t.Helper()
	if us == nil {
		svc := users.NewService(users.NewMemoryRepository(), bcrypt.MinCost)
		_, err := svc.Register(context.Background(), "alice", []byte("s3cret"))
		require.NoError(t, err)
		us = svc
	}
	return NewHandler(us, nopLogger(), testSecret, time.Hour).Routes()
}

func postForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestLogin(t *testing.T) {
	h := newRouter(t, nil)

	tests := []struct {
		name string
		form url.Values
		want int
	}{
		{"valid", url.Values{"username": {"alice"}, "password": {"s3cret"}, "api": {"false"}}, http.StatusOK},
		{"wrong password", url.Values{"username": {"alice"}, "password": {"nope"}, "api": {"false"}}, http.StatusUnauthorized},
		{"unknown user", url.Values{"username": {"bob"}, "password": {"s3cret"}}, http.StatusUnauthorized},
		{"empty form", url.Values{}, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := postForm(t, h, "/user/login", tt.form)
			assert.Equal(t, tt.want, rec.Code)

			hasCookie := false
			for _, c := range rec.Result().Cookies() {
				if c.Name == SessionCookie {
					hasCookie = true
					assert.True(t, c.HttpOnly)
				}
			}
			assert.Equal(t, tt.want == http.StatusOK, hasCookie)
		})
	}
}

func TestLogin_MalformedForm(t *testing.T) {
	h := newRouter(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/user/login", strings.NewReader("username=%zz"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWrongMethod(t *testing.T) {
	h := newRouter(t, nil)

	tests := []struct {
		method, path string
	}{
		{http.MethodGet, "/user/login"},
		{http.MethodPut, "/user/login"},
		{http.MethodGet, "/user/register"},
		{http.MethodPost, "/user/session"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
		})
	}
}

func TestUnknownPath(t *testing.T) {
	h := newRouter(t, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/user/logout", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type failingUsers struct{ err error }

func (f failingUsers) Register(context.Context, string, []byte) (*users.User, error) {
	return nil, f.err
}
func (f failingUsers) Login(context.Context, string, []byte) (*users.User, error) {
	return nil, f.err
}

func TestInternalErrors(t *testing.T) {
	h := newRouter(t, failingUsers{err: errors.New("boom")})
	form := url.Values{"username": {"alice"}, "password": {"x"}}

	assert.Equal(t, http.StatusInternalServerError, postForm(t, h, "/user/login", form).Code)
	assert.Equal(t, http.StatusInternalServerError, postForm(t, h, "/user/register", form).Code)
}

func TestRegister(t *testing.T) {
	h := newRouter(t, nil)

	tests := []struct {
		name string
		form url.Values
		want int
	}{
		{"created", url.Values{"username": {"bob"}, "password": {"pw"}}, http.StatusCreated},
		{"exists", url.Values{"username": {"alice"}, "password": {"pw"}}, http.StatusConflict},
		{"missing password", url.Values{"username": {"carol"}}, http.StatusBadRequest},
		{"missing username", url.Values{"password": {"pw"}}, http.StatusBadRequest},
		{"password over bcrypt limit", url.Values{"username": {"dave"}, "password": {strings.Repeat("x", 73)}}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, postForm(t, h, "/user/register", tt.form).Code)
		})
	}

	rec := postForm(t, h, "/user/login", url.Values{"username": {"bob"}, "password": {"pw"}})
	assert.Equal(t, http.StatusOK, rec.Code, "registered user can log in")
}

func TestSession(t *testing.T) {
	h := newRouter(t, nil)

	login := postForm(t, h, "/user/login", url.Values{"username": {"alice"}, "password": {"s3cret"}})
	require.Equal(t, http.StatusOK, login.Code)

	t.Run("valid cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/user/session", nil)
		for _, c := range login.Result().Cookies() {
			req.AddCookie(c)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var body sessionResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "alice", body.Username)
	})

	t.Run("no cookie", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/user/session", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("forged cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/user/session", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "forged"})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

// The client transport and this handler must agree on the wire contract.
func TestHTTPClientAgainstHandler(t *testing.T) {
	srv := httptest.NewServer(newRouter(t, nil))
	t.Cleanup(srv.Close)

	c, err := client.NewHTTPClient(srv.URL+"/user/login", srv.Client())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	ctx := context.Background()
	require.NoError(t, c.Login(ctx, "alice", []byte("s3cret")))

	err = c.Login(ctx, "alice", []byte("wrong"))
	require.ErrorIs(t, err, client.ErrRejected)
	var se *client.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
}
