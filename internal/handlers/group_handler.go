package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"intranet-backend/dto"
	"intranet-backend/internal/middleware"
	"intranet-backend/internal/models"
	"intranet-backend/internal/notify"
	"intranet-backend/internal/repositories"
)

type GroupHandler struct {
	Groups   repositories.GroupRepository
	Members  repositories.GroupMemberRepository
	Posts    repositories.PostRepository
	Files    repositories.FileRepository
	Events   repositories.EventRepository
	Users    repositories.UserRepository
	Uploader *middleware.Uploader
	Notifier *notify.Notifier
}

func NewGroupHandler(groups repositories.GroupRepository, members repositories.GroupMemberRepository, posts repositories.PostRepository, files repositories.FileRepository, events repositories.EventRepository, users repositories.UserRepository, uploader *middleware.Uploader, notifier *notify.Notifier) *GroupHandler {
	return &GroupHandler{Groups: groups, Members: members, Posts: posts, Files: files, Events: events, Users: users, Uploader: uploader, Notifier: notifier}
}

// saveImagery stores avatar and cover files carried on a multipart
// request and folds their URLs into the parsed body fields.
func (h *GroupHandler) saveImagery(c *fiber.Ctx, avatar, cover *string) error {
	for field, dst := range map[string]*string{"avatar": avatar, "cover": cover} {
		urls, err := h.Uploader.SaveAll(c, field, middleware.CategoryImage)
		if err != nil {
			return err
		}
		if len(urls) > 0 {
			*dst = urls[0]
		}
	}
	return nil
}

// @Summary List groups
// @Tags groups
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /groups [get]
func (h *GroupHandler) List(c *fiber.Ctx) error {
	q := parsePage(c)
	filter := bson.M{}
	if uidFrom(c) == bson.NilObjectID {
		filter["is_private"] = false
	}
	groups, total, err := h.Groups.List(c.Context(), filter, q)
	if err != nil {
		return err
	}

	views := make([]dto.GroupView, 0, len(groups))
	for _, group := range groups {
		views = append(views, h.view(c.Context(), group))
	}
	return c.JSON(dto.OKPage(views, q.Paginate(total)))
}

// @Summary List groups the caller belongs to
// @Tags groups
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /groups/my [get]
func (h *GroupHandler) ListMine(c *fiber.Ctx) error {
	memberships, err := h.Members.ListByUser(c.Context(), uidFrom(c))
	if err != nil {
		return err
	}

	views := make([]dto.GroupView, 0, len(memberships))
	for _, membership := range memberships {
		group, err := h.Groups.FindByID(c.Context(), membership.Group)
		if err != nil {
			if repositories.IsNotFound(err) {
				continue
			}
			return err
		}
		views = append(views, h.view(c.Context(), group))
	}
	return c.JSON(dto.OKList(views, len(views)))
}

// @Summary Get a group
// @Tags groups
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /groups/{id} [get]
func (h *GroupHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	group, err := h.Groups.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	if group.IsPrivate {
		if err := h.requireMember(c, group); err != nil {
			return err
		}
	}
	return c.JSON(dto.OK(h.view(c.Context(), group)))
}

// @Summary Create a group
// @Tags groups
// @Accept json
// @Produce json
// @Success 201 {object} dto.Response
// @Router /groups [post]
func (h *GroupHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateGroupRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	if err := h.saveImagery(c, &body.Avatar, &body.Cover); err != nil {
		return err
	}

	uid := uidFrom(c)
	group := models.Group{
		Name:        body.Name,
		Description: body.Description,
		Creator:     uid,
		Avatar:      body.Avatar,
		Cover:       body.Cover,
		IsPrivate:   body.IsPrivate,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	gid, err := h.Groups.Insert(c.Context(), group)
	if err != nil {
		return err
	}

	mid, err := h.Members.Insert(c.Context(), models.GroupMember{
		Group:    gid,
		User:     uid,
		Role:     models.GroupRoleAdmin,
		JoinedAt: time.Now(),
	})
	if err != nil {
		return err
	}
	if err := h.Groups.PushMember(c.Context(), gid, mid); err != nil {
		return err
	}

	group.ID = gid
	group.Members = []bson.ObjectID{mid}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(group))
}

// @Summary Update a group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /groups/{id} [put]
func (h *GroupHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	group, err := h.Groups.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	if err := h.requireGroupAdmin(c, group); err != nil {
		return err
	}

	var body dto.UpdateGroupRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	if err := h.saveImagery(c, &body.Avatar, &body.Cover); err != nil {
		return err
	}

	set := bson.M{"updated_at": time.Now()}
	if body.Name != "" {
		set["name"] = body.Name
	}
	if body.Description != "" {
		set["description"] = body.Description
	}
	if body.IsPrivate != nil {
		set["is_private"] = *body.IsPrivate
	}
	if body.Avatar != "" {
		set["avatar"] = body.Avatar
	}
	if body.Cover != "" {
		set["cover"] = body.Cover
	}

	updated, err := h.Groups.Update(c.Context(), id, set)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(updated))
}

// @Summary Delete a group
// @Tags groups
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /groups/{id} [delete]
func (h *GroupHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	group, err := h.Groups.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	if err := h.requireGroupAdmin(c, group); err != nil {
		return err
	}

	if err := h.Members.DeleteByGroup(c.Context(), id); err != nil {
		return err
	}
	if err := h.Groups.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.OKMessage("Group deleted", nil))
}

// @Summary Join a group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /groups/{id}/join [post]
func (h *GroupHandler) Join(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	group, err := h.Groups.FindByID(c.Context(), id)
	if err != nil {
		return err
	}

	uid := uidFrom(c)
	if _, err := h.Members.Find(c.Context(), id, uid); err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Already a member of this group")
	}

	mid, err := h.Members.Insert(c.Context(), models.GroupMember{
		Group:    id,
		User:     uid,
		Role:     models.GroupRoleMember,
		JoinedAt: time.Now(),
	})
	if err != nil {
		if repositories.IsDuplicate(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Already a member of this group")
		}
		return err
	}
	if err := h.Groups.PushMember(c.Context(), id, mid); err != nil {
		return err
	}

	h.notifyAdmins(c, group, userFrom(c).Name+" joined "+group.Name)
	return c.JSON(dto.OKMessage("Joined group", nil))
}

// @Summary Leave a group
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /groups/{id}/leave [post]
func (h *GroupHandler) Leave(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	uid := uidFrom(c)
	member, err := h.Members.Find(c.Context(), id, uid)
	if err != nil {
		if repositories.IsNotFound(err) {
			return fiber.NewError(fiber.StatusBadRequest, "Not a member of this group")
		}
		return err
	}

	if member.Role == models.GroupRoleAdmin {
		admins, err := h.Members.CountAdmins(c.Context(), id)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return fiber.NewError(fiber.StatusBadRequest, "Cannot leave as the only group admin")
		}
	}

	if err := h.Members.Delete(c.Context(), member.ID); err != nil {
		return err
	}
	if err := h.Groups.PullMember(c.Context(), id, member.ID); err != nil {
		return err
	}
	return c.JSON(dto.OKMessage("Left group", nil))
}

// @Summary List group members
// @Tags groups
// @Produce json
// @Param id path string true "Object id"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /groups/{id}/members [get]
func (h *GroupHandler) ListMembers(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	group, err := h.Groups.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	if group.IsPrivate {
		if err := h.requireMember(c, group); err != nil {
			return err
		}
	}

	q := parsePage(c)
	members, total, err := h.Members.ListByGroup(c.Context(), id, q)
	if err != nil {
		return err
	}

	views := make([]dto.MemberView, 0, len(members))
	for _, member := range members {
		view := dto.MemberView{GroupMember: member}
		if user, err := h.Users.FindByID(c.Context(), member.User); err == nil {
			brief := dto.BriefOf(user)
			view.UserInfo = &brief
		}
		views = append(views, view)
	}
	return c.JSON(dto.OKPage(views, q.Paginate(total)))
}

// @Summary Add a group member
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Object id"
// @Success 201 {object} dto.Response
// @Router /groups/{id}/members [post]
func (h *GroupHandler) AddMember(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	group, err := h.Groups.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	if err := h.requireGroupAdmin(c, group); err != nil {
		return err
	}

	var body dto.AddMemberRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	target, err := bson.ObjectIDFromHex(body.UserID)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid user id")
	}
	if _, err := h.Users.FindByID(c.Context(), target); err != nil {
		return fiber.NewError(fiber.StatusNotFound, "User not found")
	}
	if _, err := h.Members.Find(c.Context(), id, target); err == nil {
		return fiber.NewError(fiber.StatusBadRequest, "User is already a member")
	}

	role := body.Role
	if role == "" {
		role = models.GroupRoleMember
	}
	mid, err := h.Members.Insert(c.Context(), models.GroupMember{
		Group:    id,
		User:     target,
		Role:     role,
		JoinedAt: time.Now(),
	})
	if err != nil {
		if repositories.IsDuplicate(err) {
			return fiber.NewError(fiber.StatusBadRequest, "User is already a member")
		}
		return err
	}
	if err := h.Groups.PushMember(c.Context(), id, mid); err != nil {
		return err
	}

	h.Notifier.Notify(c.Context(), target, notify.TypeGroup,
		"You were added to "+group.Name,
		models.EntityRef{Type: "group", ID: id})
	return c.Status(fiber.StatusCreated).JSON(dto.OKMessage("Member added", nil))
}

// @Summary Change a member's role
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Object id"
// @Param memberId path string true "Membership id"
// @Success 200 {object} dto.Response
// @Router /groups/{id}/members/{memberId} [put]
func (h *GroupHandler) UpdateMember(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	mid, err := paramID(c, "memberId")
	if err != nil {
		return err
	}
	group, err := h.Groups.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	if err := h.requireGroupAdmin(c, group); err != nil {
		return err
	}

	var body dto.UpdateMemberRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	member, err := h.Members.FindByID(c.Context(), mid)
	if err != nil {
		return err
	}
	if member.Role == models.GroupRoleAdmin && body.Role == models.GroupRoleMember {
		admins, err := h.Members.CountAdmins(c.Context(), id)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return fiber.NewError(fiber.StatusBadRequest, "Cannot demote the only group admin")
		}
	}

	updated, err := h.Members.UpdateRole(c.Context(), mid, body.Role)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(updated))
}

// @Summary Remove a group member
// @Tags groups
// @Produce json
// @Param id path string true "Object id"
// @Param memberId path string true "Membership id"
// @Success 200 {object} dto.Response
// @Router /groups/{id}/members/{memberId} [delete]
func (h *GroupHandler) RemoveMember(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	mid, err := paramID(c, "memberId")
	if err != nil {
		return err
	}
	group, err := h.Groups.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	if err := h.requireGroupAdmin(c, group); err != nil {
		return err
	}

	member, err := h.Members.FindByID(c.Context(), mid)
	if err != nil {
		return err
	}
	if member.Role == models.GroupRoleAdmin {
		admins, err := h.Members.CountAdmins(c.Context(), id)
		if err != nil {
			return err
		}
		if admins <= 1 {
			return fiber.NewError(fiber.StatusBadRequest, "Cannot remove the only group admin")
		}
	}

	if err := h.Members.Delete(c.Context(), mid); err != nil {
		return err
	}
	if err := h.Groups.PullMember(c.Context(), id, mid); err != nil {
		return err
	}
	return c.JSON(dto.OKMessage("Member removed", nil))
}

// @Summary List posts in a group
// @Tags groups
// @Produce json
// @Param id path string true "Object id"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /groups/{id}/posts [get]
func (h *GroupHandler) ListPosts(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.gatePrivate(c, id); err != nil {
		return err
	}

	q := parsePage(c)
	posts, total, err := h.Posts.List(c.Context(), bson.M{"group": id, "is_published": true}, q)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKPage(posts, q.Paginate(total)))
}

// @Summary List files in a group
// @Tags groups
// @Produce json
// @Param id path string true "Object id"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /groups/{id}/files [get]
func (h *GroupHandler) ListFiles(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.gatePrivate(c, id); err != nil {
		return err
	}

	q := parsePage(c)
	files, total, err := h.Files.List(c.Context(), bson.M{"group": id}, q)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKPage(files, q.Paginate(total)))
}

// @Summary List events in a group
// @Tags groups
// @Produce json
// @Param id path string true "Object id"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /groups/{id}/events [get]
func (h *GroupHandler) ListEvents(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.gatePrivate(c, id); err != nil {
		return err
	}

	q := parsePage(c)
	events, total, err := h.Events.List(c.Context(), bson.M{"group": id}, q)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKPage(events, q.Paginate(total)))
}

func (h *GroupHandler) gatePrivate(c *fiber.Ctx, id bson.ObjectID) error {
	group, err := h.Groups.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	if group.IsPrivate {
		return h.requireMember(c, group)
	}
	return nil
}

func (h *GroupHandler) requireMember(c *fiber.Ctx, group models.Group) error {
	user := userFrom(c)
	if user.IsAdmin() {
		return nil
	}
	if _, err := h.Members.Find(c.Context(), group.ID, user.ID); err != nil {
		return fiber.NewError(fiber.StatusForbidden, "This group is private")
	}
	return nil
}

func (h *GroupHandler) requireGroupAdmin(c *fiber.Ctx, group models.Group) error {
	user := userFrom(c)
	if user.IsAdmin() {
		return nil
	}
	member, err := h.Members.Find(c.Context(), group.ID, user.ID)
	if err != nil || member.Role != models.GroupRoleAdmin {
		return fiber.NewError(fiber.StatusForbidden, "Not authorized to manage this group")
	}
	return nil
}

func (h *GroupHandler) notifyAdmins(c *fiber.Ctx, group models.Group, content string) {
	q := dto.PageQuery{Page: 1, Limit: 100}
	members, _, err := h.Members.ListByGroup(c.Context(), group.ID, q)
	if err != nil {
		return
	}
	for _, member := range members {
		if member.Role != models.GroupRoleAdmin {
			continue
		}
		if member.User == uidFrom(c) {
			continue
		}
		h.Notifier.Notify(c.Context(), member.User, notify.TypeGroup, content,
			models.EntityRef{Type: "group", ID: group.ID})
	}
}

func (h *GroupHandler) view(ctx context.Context, group models.Group) dto.GroupView {
	view := dto.GroupView{Group: group, MemberCount: len(group.Members)}
	if creator, err := h.Users.FindByID(ctx, group.Creator); err == nil {
		brief := dto.BriefOf(creator)
		view.CreatorInfo = &brief
	}
	return view
}
