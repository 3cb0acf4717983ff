package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"golang.org/x/crypto/bcrypt"

	"intranet-backend/config"
	"intranet-backend/dto"
	"intranet-backend/internal/mocks"
	"intranet-backend/internal/models"
)

func testConfig() config.Config {
	return config.Config{
		JWTSecret:    "test-secret",
		JWTExpire:    time.Hour,
		CookieExpire: time.Hour,
		Env:          "test",
	}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginReturnsToken(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	h := NewAuthHandler(users, testConfig())
	user := testUser()
	user.Password = hashPassword(t, "hunter22")
	user.IsActive = true

	users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()

	app := newTestApp(models.User{})
	app.Post("/api/auth/login", h.Login)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: user.Email, Password: "hunter22"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	var body dto.TokenResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	require.True(t, body.Success)
	require.NotEmpty(t, body.Token)

	var cookie string
	for _, c := range res.Cookies() {
		if c.Name == "token" {
			cookie = c.Value
		}
	}
	require.Equal(t, body.Token, cookie)
	users.AssertExpectations(t)
}

func TestLoginWrongPassword(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	h := NewAuthHandler(users, testConfig())
	user := testUser()
	user.Password = hashPassword(t, "hunter22")
	user.IsActive = true

	users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()

	app := newTestApp(models.User{})
	app.Post("/api/auth/login", h.Login)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: user.Email, Password: "wrong"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)

	envelope := decodeResponse(t, res)
	require.Equal(t, "Invalid credentials", envelope.Error)
}

func TestLoginUnknownEmailSameError(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	h := NewAuthHandler(users, testConfig())

	users.On("FindByEmail", mock.Anything, "nobody@city.gov").
		Return(nil, mongo.ErrNoDocuments).Once()

	app := newTestApp(models.User{})
	app.Post("/api/auth/login", h.Login)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: "nobody@city.gov", Password: "whatever"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)

	envelope := decodeResponse(t, res)
	require.Equal(t, "Invalid credentials", envelope.Error)
}

func TestLoginDeactivatedAccount(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	h := NewAuthHandler(users, testConfig())
	user := testUser()
	user.Password = hashPassword(t, "hunter22")
	user.IsActive = false

	users.On("FindByEmail", mock.Anything, user.Email).Return(user, nil).Once()

	app := newTestApp(models.User{})
	app.Post("/api/auth/login", h.Login)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/login",
		dto.LoginRequest{Email: user.Email, Password: "hunter22"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	h := NewAuthHandler(users, testConfig())

	users.On("Insert", mock.Anything, mock.Anything).
		Return(bson.NilObjectID, mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}).Once()

	app := newTestApp(models.User{})
	app.Post("/api/auth/register", h.Register)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Name:     "Jordan Blake",
		Email:    "jordan.blake@city.gov",
		Password: "hunter22",
		Position: "Clerk",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	envelope := decodeResponse(t, res)
	require.Equal(t, "Email already registered", envelope.Error)
}

func TestRegisterDefaultsNewUser(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	h := NewAuthHandler(users, testConfig())

	users.On("Insert", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.Role == models.RoleUser && u.IsActive &&
			bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("hunter22")) == nil
	})).Return(bson.NewObjectID(), nil).Once()

	app := newTestApp(models.User{})
	app.Post("/api/auth/register", h.Register)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Name:     "Jordan Blake",
		Email:    "jordan.blake@city.gov",
		Password: "hunter22",
		Position: "Clerk",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	users.AssertExpectations(t)
}

func TestResetPasswordInvalidToken(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	h := NewAuthHandler(users, testConfig())

	users.On("FindByResetToken", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, mongo.ErrNoDocuments).Once()

	app := newTestApp(models.User{})
	app.Put("/api/auth/reset-password/:token", h.ResetPassword)

	res, err := app.Test(jsonRequest(http.MethodPut, "/api/auth/reset-password/deadbeef",
		dto.ResetPasswordRequest{Password: "brand-new"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	envelope := decodeResponse(t, res)
	require.Equal(t, "Invalid or expired reset token", envelope.Error)
}

func TestRegisterWithoutPosition(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	h := NewAuthHandler(users, testConfig())

	users.On("Insert", mock.Anything, mock.MatchedBy(func(u models.User) bool {
		return u.Position == "" && u.Name == "Jordan Blake"
	})).Return(bson.NewObjectID(), nil).Once()

	app := newTestApp(models.User{})
	app.Post("/api/auth/register", h.Register)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Name:     "Jordan Blake",
		Email:    "jordan.blake@city.gov",
		Password: "hunter22",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	users.AssertExpectations(t)
}

func TestUpdatePasswordWrongCurrent(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	h := NewAuthHandler(users, testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("old-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	user := testUser()
	user.Password = string(hash)

	app := newTestApp(user)
	app.Put("/api/users/password", h.UpdatePassword)

	res, err := app.Test(jsonRequest(http.MethodPut, "/api/users/password", dto.UpdatePasswordRequest{
		CurrentPassword: "not-the-one",
		NewPassword:     "brand-new",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, res.StatusCode)

	envelope := decodeResponse(t, res)
	require.Equal(t, "Current password is incorrect", envelope.Error)
	users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePasswordRotatesHash(t *testing.T) {
	users := new(mocks.UserRepositoryMock)
	h := NewAuthHandler(users, testConfig())

	hash, err := bcrypt.GenerateFromPassword([]byte("old-pass"), bcrypt.MinCost)
	require.NoError(t, err)
	user := testUser()
	user.Password = string(hash)

	users.On("Update", mock.Anything, user.ID, mock.MatchedBy(func(set bson.M) bool {
		stored, ok := set["password"].(string)
		return ok && bcrypt.CompareHashAndPassword([]byte(stored), []byte("brand-new")) == nil
	}), mock.Anything).Return(user, nil).Once()

	app := newTestApp(user)
	app.Put("/api/users/password", h.UpdatePassword)

	res, err := app.Test(jsonRequest(http.MethodPut, "/api/users/password", dto.UpdatePasswordRequest{
		CurrentPassword: "old-pass",
		NewPassword:     "brand-new",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	users.AssertExpectations(t)
}
