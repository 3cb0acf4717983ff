package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"intranet-backend/dto"
	"intranet-backend/internal/models"
	"intranet-backend/internal/repositories"
)

type DepartmentHandler struct {
	Departments repositories.DepartmentRepository
	Users       repositories.UserRepository
	Posts       repositories.PostRepository
}

func NewDepartmentHandler(departments repositories.DepartmentRepository, users repositories.UserRepository, posts repositories.PostRepository) *DepartmentHandler {
	return &DepartmentHandler{Departments: departments, Users: users, Posts: posts}
}

// @Summary List departments
// @Tags departments
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /departments [get]
func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	departments, err := h.Departments.List(c.Context())
	if err != nil {
		return err
	}
	views := make([]dto.DepartmentView, 0, len(departments))
	for _, department := range departments {
		views = append(views, h.view(c, department))
	}
	return c.JSON(dto.OKList(views, len(views)))
}

// @Summary Get a department
// @Tags departments
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /departments/{id} [get]
func (h *DepartmentHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	department, err := h.Departments.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(h.view(c, department)))
}

// @Summary Create a department (admin)
// @Tags departments
// @Accept json
// @Produce json
// @Success 201 {object} dto.Response
// @Router /departments [post]
func (h *DepartmentHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateDepartmentRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	department := models.Department{
		Name:        body.Name,
		Description: body.Description,
		Color:       body.Color,
		Icon:        body.Icon,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if body.Head != "" {
		head, err := bson.ObjectIDFromHex(body.Head)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid head user id")
		}
		if _, err := h.Users.FindByID(c.Context(), head); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Head user not found")
		}
		department.Head = &head
	}
	if body.Parent != "" {
		parent, err := bson.ObjectIDFromHex(body.Parent)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid parent department id")
		}
		if _, err := h.Departments.FindByID(c.Context(), parent); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Parent department not found")
		}
		department.Parent = &parent
	}

	id, err := h.Departments.Insert(c.Context(), department)
	if err != nil {
		if repositories.IsDuplicate(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Department name already exists")
		}
		return err
	}
	department.ID = id
	return c.Status(fiber.StatusCreated).JSON(dto.OK(department))
}

// @Summary Update a department (admin)
// @Tags departments
// @Accept json
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /departments/{id} [put]
func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.Departments.FindByID(c.Context(), id); err != nil {
		return err
	}

	var body dto.UpdateDepartmentRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	set := bson.M{"updated_at": time.Now()}
	if body.Name != "" {
		set["name"] = body.Name
	}
	if body.Description != "" {
		set["description"] = body.Description
	}
	if body.Color != "" {
		set["color"] = body.Color
	}
	if body.Icon != "" {
		set["icon"] = body.Icon
	}
	if body.Head != "" {
		head, err := bson.ObjectIDFromHex(body.Head)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid head user id")
		}
		set["head"] = head
	}
	if body.Parent != "" {
		parent, err := bson.ObjectIDFromHex(body.Parent)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid parent department id")
		}
		if parent == id {
			return fiber.NewError(fiber.StatusBadRequest, "Department cannot be its own parent")
		}
		if _, err := h.Departments.FindByID(c.Context(), parent); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Parent department not found")
		}
		set["parent"] = parent
	}

	updated, err := h.Departments.Update(c.Context(), id, set, nil)
	if err != nil {
		if repositories.IsDuplicate(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Department name already exists")
		}
		return err
	}
	return c.JSON(dto.OK(updated))
}

// @Summary Delete a department (admin)
// @Tags departments
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /departments/{id} [delete]
//
// A department with children or assigned users cannot be removed.
func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if _, err := h.Departments.FindByID(c.Context(), id); err != nil {
		return err
	}

	children, err := h.Departments.CountChildren(c.Context(), id)
	if err != nil {
		return err
	}
	if children > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Department has sub-departments")
	}
	members, err := h.Users.Count(c.Context(), bson.M{"department": id})
	if err != nil {
		return err
	}
	if members > 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Department has assigned users")
	}

	if err := h.Departments.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.OKMessage("Department deleted", nil))
}

// @Summary List users in a department
// @Tags departments
// @Produce json
// @Param id path string true "Object id"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /departments/{id}/users [get]
func (h *DepartmentHandler) ListUsers(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	users, err := h.Users.ListByDepartment(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKList(users, len(users)))
}

// @Summary List posts in a department
// @Tags departments
// @Produce json
// @Param id path string true "Object id"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /departments/{id}/posts [get]
func (h *DepartmentHandler) ListPosts(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	q := parsePage(c)
	posts, total, err := h.Posts.List(c.Context(), bson.M{"department": id, "is_published": true}, q)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKPage(posts, q.Paginate(total)))
}

func (h *DepartmentHandler) view(c *fiber.Ctx, department models.Department) dto.DepartmentView {
	view := dto.DepartmentView{Department: department}
	if department.Head != nil {
		if head, err := h.Users.FindByID(c.Context(), *department.Head); err == nil {
			brief := dto.BriefOf(head)
			view.HeadInfo = &brief
		}
	}
	if department.Parent != nil {
		if parent, err := h.Departments.FindByID(c.Context(), *department.Parent); err == nil {
			view.ParentName = parent.Name
		}
	}
	return view
}
