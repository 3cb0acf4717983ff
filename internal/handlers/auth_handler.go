package handlers

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"intranet-backend/config"
	"intranet-backend/dto"
	"intranet-backend/internal/models"
	"intranet-backend/internal/repositories"
)

type AuthHandler struct {
	Users repositories.UserRepository
	Cfg   config.Config
}

func NewAuthHandler(users repositories.UserRepository, cfg config.Config) *AuthHandler {
	return &AuthHandler{Users: users, Cfg: cfg}
}

// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} dto.Response
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var body dto.RegisterRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Name:                 body.Name,
		Email:                body.Email,
		Password:             string(hash),
		Avatar:               "/uploads/avatars/default.png",
		Role:                 models.RoleUser,
		Position:             body.Position,
		IsActive:             true,
		LastActive:           time.Now(),
		NotificationSettings: models.DefaultNotificationSettings(),
		CreatedAt:            time.Now(),
	}
	if body.Department != "" {
		dep, err := bson.ObjectIDFromHex(body.Department)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid department id")
		}
		user.Department = &dep
	}

	id, err := h.Users.Insert(c.Context(), user)
	if err != nil {
		if repositories.IsDuplicate(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Email already registered")
		}
		return err
	}

	return h.sendToken(c, fiber.StatusCreated, id)
}

// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} dto.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	user, err := h.Users.FindByEmail(c.Context(), body.Email)
	if err != nil {
		if repositories.IsNotFound(err) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
		}
		return err
	}
	if !user.IsActive {
		return fiber.NewError(fiber.StatusForbidden, "Account is deactivated")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)) != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid credentials")
	}

	return h.sendToken(c, fiber.StatusOK, user.ID)
}

// @Summary Clear the session cookie
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response
// @Router /auth/logout [get]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "none",
		Expires:  time.Now().Add(10 * time.Second),
		HTTPOnly: true,
	})
	return c.JSON(dto.OKMessage("Logged out successfully", nil))
}

// @Summary Get the signed-in user
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(dto.OK(userFrom(c)))
}

// @Summary Change the current password
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} dto.Response
// @Router /auth/password [put]
// @Router /users/password [put]
func (h *AuthHandler) UpdatePassword(c *fiber.Ctx) error {
	var body dto.UpdatePasswordRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	user := userFrom(c)
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.CurrentPassword)) != nil {
		return fiber.NewError(fiber.StatusUnauthorized, "Current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if _, err := h.Users.Update(c.Context(), user.ID, bson.M{"password": string(hash)}, nil); err != nil {
		return err
	}

	return h.sendToken(c, fiber.StatusOK, user.ID)
}

// @Summary Request a password reset token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} dto.Response
// @Router /auth/forgot-password [post]
//
// No mailer is wired, so the reset token is returned in the response
// body for the frontend to relay.
func (h *AuthHandler) ForgotPassword(c *fiber.Ctx) error {
	var body dto.ForgotPasswordRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	user, err := h.Users.FindByEmail(c.Context(), body.Email)
	if err != nil {
		if repositories.IsNotFound(err) {
			return fiber.NewError(fiber.StatusNotFound, "No user found with that email")
		}
		return err
	}

	raw := make([]byte, 20)
	if _, err := rand.Read(raw); err != nil {
		return err
	}
	token := hex.EncodeToString(raw)
	hashed := sha256.Sum256([]byte(token))

	set := bson.M{
		"reset_password_token":  hex.EncodeToString(hashed[:]),
		"reset_password_expire": time.Now().Add(10 * time.Minute),
	}
	if _, err := h.Users.Update(c.Context(), user.ID, set, nil); err != nil {
		return err
	}

	return c.JSON(dto.OKMessage("Reset token generated", fiber.Map{"resetToken": token}))
}

// @Summary Reset the password with a token
// @Tags auth
// @Accept json
// @Produce json
// @Param token path string true "Reset token"
// @Success 200 {object} dto.Response
// @Router /auth/reset-password/{token} [put]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var body dto.ResetPasswordRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	hashed := sha256.Sum256([]byte(c.Params("token")))
	user, err := h.Users.FindByResetToken(c.Context(), hex.EncodeToString(hashed[:]), time.Now())
	if err != nil {
		if repositories.IsNotFound(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid or expired reset token")
		}
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	set := bson.M{"password": string(hash)}
	unset := bson.M{"reset_password_token": "", "reset_password_expire": ""}
	if _, err := h.Users.Update(c.Context(), user.ID, set, unset); err != nil {
		return err
	}

	return h.sendToken(c, fiber.StatusOK, user.ID)
}

// sendToken signs a JWT for the user and sets it both as the response
// body and as an http-only cookie.
func (h *AuthHandler) sendToken(c *fiber.Ctx, status int, id bson.ObjectID) error {
	claims := jwt.RegisteredClaims{
		Subject:   id.Hex(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(h.Cfg.JWTExpire)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.Cfg.JWTSecret))
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  time.Now().Add(h.Cfg.CookieExpire),
		HTTPOnly: true,
		Secure:   h.Cfg.Production(),
	})
	c.Locals("user_id", id)
	return c.Status(status).JSON(dto.TokenResponse{Success: true, Token: token})
}
