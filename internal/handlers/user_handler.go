package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"
	"golang.org/x/crypto/bcrypt"

	"intranet-backend/dto"
	"intranet-backend/internal/models"
	"intranet-backend/internal/repositories"
)

type UserHandler struct {
	Users       repositories.UserRepository
	Departments repositories.DepartmentRepository
}

func NewUserHandler(users repositories.UserRepository, departments repositories.DepartmentRepository) *UserHandler {
	return &UserHandler{Users: users, Departments: departments}
}

// @Summary Get own profile
// @Tags users
// @Produce json
// @Success 200 {object} dto.Response
// @Router /users/profile [get]
func (h *UserHandler) Profile(c *fiber.Ctx) error {
	return c.JSON(dto.OK(userFrom(c)))
}

// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} dto.Response
// @Router /users/profile [put]
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	var body dto.UpdateProfileRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	set := bson.M{}
	if body.Name != "" {
		set["name"] = body.Name
	}
	if body.Email != "" {
		set["email"] = body.Email
	}
	if body.Avatar != "" {
		set["avatar"] = body.Avatar
	}
	if body.Phone != "" {
		set["phone"] = body.Phone
	}
	if body.Bio != "" {
		set["bio"] = body.Bio
	}
	if len(set) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	user, err := h.Users.Update(c.Context(), uidFrom(c), set, nil)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(user))
}

// @Summary Get notification preferences
// @Tags users
// @Produce json
// @Success 200 {object} dto.Response
// @Router /users/notifications/settings [get]
func (h *UserHandler) NotificationSettings(c *fiber.Ctx) error {
	return c.JSON(dto.OK(userFrom(c).NotificationSettings))
}

// @Summary Update notification preferences
// @Tags users
// @Accept json
// @Produce json
// @Success 200 {object} dto.Response
// @Router /users/notifications/settings [put]
func (h *UserHandler) UpdateNotificationSettings(c *fiber.Ctx) error {
	var body dto.UpdateNotificationSettingsRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	settings := userFrom(c).NotificationSettings
	if body.Email != nil {
		settings.Email = *body.Email
	}
	if body.Push != nil {
		settings.Push = *body.Push
	}
	if body.Desktop != nil {
		settings.Desktop = *body.Desktop
	}
	if body.Types != nil {
		settings.Types = *body.Types
	}

	user, err := h.Users.Update(c.Context(), uidFrom(c), bson.M{"notification_settings": settings}, nil)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(user.NotificationSettings))
}

// @Summary List users (admin)
// @Tags users
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	q := parsePage(c)
	users, total, err := h.Users.List(c.Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKPage(users, q.Paginate(total)))
}

// @Summary Get a user (admin)
// @Tags users
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /users/{id} [get]
func (h *UserHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.Users.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(user))
}

// @Summary Create a user (admin)
// @Tags users
// @Accept json
// @Produce json
// @Success 201 {object} dto.Response
// @Router /users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	role := body.Role
	if role == "" {
		role = models.RoleUser
	}
	avatar := body.Avatar
	if avatar == "" {
		avatar = "/uploads/avatars/default.png"
	}

	user := models.User{
		Name:                 body.Name,
		Email:                body.Email,
		Password:             string(hash),
		Avatar:               avatar,
		Role:                 role,
		Position:             body.Position,
		Phone:                body.Phone,
		Bio:                  body.Bio,
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
		if _, err := h.Departments.FindByID(c.Context(), dep); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Department not found")
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
	user.ID = id
	user.Password = ""
	return c.Status(fiber.StatusCreated).JSON(dto.OK(user))
}

// @Summary Update a user (admin)
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}

	var body dto.UpdateUserRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	set := bson.M{}
	if body.Name != "" {
		set["name"] = body.Name
	}
	if body.Email != "" {
		set["email"] = body.Email
	}
	if body.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		set["password"] = string(hash)
	}
	if body.Role != "" {
		set["role"] = body.Role
	}
	if body.Position != "" {
		set["position"] = body.Position
	}
	if body.Avatar != "" {
		set["avatar"] = body.Avatar
	}
	if body.Phone != "" {
		set["phone"] = body.Phone
	}
	if body.Bio != "" {
		set["bio"] = body.Bio
	}
	if body.IsActive != nil {
		set["is_active"] = *body.IsActive
	}
	if body.Department != "" {
		dep, err := bson.ObjectIDFromHex(body.Department)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid department id")
		}
		set["department"] = dep
	}
	if len(set) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "No fields to update")
	}

	user, err := h.Users.Update(c.Context(), id, set, nil)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(user))
}

// @Summary Deactivate a user (admin)
// @Tags users
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if id == uidFrom(c) {
		return fiber.NewError(fiber.StatusBadRequest, "Admins cannot delete their own account")
	}
	if err := h.Users.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.OKMessage("User deleted", nil))
}
