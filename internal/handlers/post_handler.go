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

type PostHandler struct {
	Posts    repositories.PostRepository
	Comments repositories.CommentRepository
	Users    repositories.UserRepository
	Uploader *middleware.Uploader
	Notifier *notify.Notifier
}

func NewPostHandler(posts repositories.PostRepository, comments repositories.CommentRepository, users repositories.UserRepository, uploader *middleware.Uploader, notifier *notify.Notifier) *PostHandler {
	return &PostHandler{Posts: posts, Comments: comments, Users: users, Uploader: uploader, Notifier: notifier}
}

// @Summary List published posts
// @Tags posts
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	q := parsePage(c)
	posts, total, err := h.Posts.List(c.Context(), bson.M{"is_published": true}, q)
	if err != nil {
		return err
	}
	views, err := h.populate(c.Context(), posts, uidFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.OKPage(views, q.Paginate(total)))
}

// @Summary Get a post
// @Tags posts
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /posts/{id} [get]
func (h *PostHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	post, err := h.Posts.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	view, err := h.populateOne(c.Context(), post, uidFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(view))
}

// @Summary List a user's posts
// @Tags posts
// @Produce json
// @Param userId path string true "User id"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /posts/user/{userId} [get]
func (h *PostHandler) ListByUser(c *fiber.Ctx) error {
	author, err := paramID(c, "userId")
	if err != nil {
		return err
	}
	return h.listFiltered(c, bson.M{"author": author, "is_published": true})
}

// @Summary List a department's posts
// @Tags posts
// @Produce json
// @Param departmentId path string true "Department id"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /posts/department/{departmentId} [get]
func (h *PostHandler) ListByDepartment(c *fiber.Ctx) error {
	dep, err := paramID(c, "departmentId")
	if err != nil {
		return err
	}
	return h.listFiltered(c, bson.M{"department": dep, "is_published": true})
}

// @Summary List a group's posts
// @Tags posts
// @Produce json
// @Param groupId path string true "Group id"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /posts/group/{groupId} [get]
func (h *PostHandler) ListByGroup(c *fiber.Ctx) error {
	group, err := paramID(c, "groupId")
	if err != nil {
		return err
	}
	return h.listFiltered(c, bson.M{"group": group, "is_published": true})
}

func (h *PostHandler) listFiltered(c *fiber.Ctx, filter bson.M) error {
	q := parsePage(c)
	posts, total, err := h.Posts.List(c.Context(), filter, q)
	if err != nil {
		return err
	}
	views, err := h.populate(c.Context(), posts, uidFrom(c))
	if err != nil {
		return err
	}
	return c.JSON(dto.OKPage(views, q.Paginate(total)))
}

// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Success 201 {object} dto.Response
// @Router /posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	var body dto.CreatePostRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	// Multipart requests may carry the media inline as files.
	uploads, err := h.Uploader.SaveAll(c, "media", middleware.CategoryImage)
	if err != nil {
		return err
	}
	body.Media = append(body.Media, uploads...)

	post := models.Post{
		Title:       body.Title,
		Content:     body.Content,
		Author:      uidFrom(c),
		Media:       body.Media,
		Tags:        body.Tags,
		IsPublished: true,
		PublishDate: time.Now(),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if body.Group != "" {
		group, err := bson.ObjectIDFromHex(body.Group)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid group id")
		}
		post.Group = &group
	}
	if body.Department != "" {
		dep, err := bson.ObjectIDFromHex(body.Department)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid department id")
		}
		post.Department = &dep
	}

	id, err := h.Posts.Insert(c.Context(), post)
	if err != nil {
		return err
	}
	post.ID = id
	return c.Status(fiber.StatusCreated).JSON(dto.OK(post))
}

// @Summary Update a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /posts/{id} [put]
func (h *PostHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	post, err := h.Posts.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	user := userFrom(c)
	if post.Author != user.ID && !user.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Not authorized to update this post")
	}

	var body dto.UpdatePostRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	set := bson.M{"updated_at": time.Now()}
	if body.Title != "" {
		set["title"] = body.Title
	}
	if body.Content != "" {
		set["content"] = body.Content
	}
	if len(body.Media) > 0 {
		set["media"] = append(post.Media, body.Media...)
	}
	if body.Tags != nil {
		set["tags"] = body.Tags
	}
	if body.IsPublished != nil {
		set["is_published"] = *body.IsPublished
	}

	updated, err := h.Posts.Update(c.Context(), id, set)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(updated))
}

// @Summary Delete a post
// @Tags posts
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	post, err := h.Posts.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	user := userFrom(c)
	if post.Author != user.ID && !user.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Not authorized to delete this post")
	}

	if err := h.Comments.DeleteByPost(c.Context(), id); err != nil {
		return err
	}
	if err := h.Posts.Delete(c.Context(), id); err != nil {
		return err
	}
	return c.JSON(dto.OKMessage("Post deleted", nil))
}

// @Summary Like a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /posts/{id}/like [post]
func (h *PostHandler) Like(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	post, err := h.Posts.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	uid := uidFrom(c)
	if post.Liked(uid) {
		return fiber.NewError(fiber.StatusBadRequest, "Post already liked")
	}

	if err := h.Posts.AddLike(c.Context(), id, uid); err != nil {
		return err
	}
	if post.Author != uid {
		h.Notifier.Notify(c.Context(), post.Author, notify.TypePostLike,
			userFrom(c).Name+" liked your post",
			models.EntityRef{Type: "post", ID: id})
	}
	return c.JSON(dto.OK(dto.LikeResult{Likes: len(post.Likes) + 1, IsLiked: true}))
}

// @Summary Remove a like
// @Tags posts
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /posts/{id}/like [delete]
func (h *PostHandler) Unlike(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	post, err := h.Posts.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	uid := uidFrom(c)
	if !post.Liked(uid) {
		return fiber.NewError(fiber.StatusBadRequest, "Post has not been liked")
	}

	if err := h.Posts.RemoveLike(c.Context(), id, uid); err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.LikeResult{Likes: len(post.Likes) - 1, IsLiked: false}))
}

// @Summary List comments on a post
// @Tags posts
// @Produce json
// @Param id path string true "Object id"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /posts/{id}/comments [get]
func (h *PostHandler) ListComments(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	comments, err := h.Comments.ListByPost(c.Context(), id)
	if err != nil {
		return err
	}
	views, err := h.populateComments(c.Context(), comments)
	if err != nil {
		return err
	}
	return c.JSON(dto.OKList(views, len(views)))
}

// @Summary Comment on a post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Object id"
// @Success 201 {object} dto.Response
// @Router /posts/{id}/comments [post]
func (h *PostHandler) CreateComment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	post, err := h.Posts.FindByID(c.Context(), id)
	if err != nil {
		return err
	}

	var body dto.CreateCommentRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	uid := uidFrom(c)
	comment := models.Comment{
		Content:   body.Content,
		Author:    uid,
		Post:      id,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	cid, err := h.Comments.Insert(c.Context(), comment)
	if err != nil {
		return err
	}
	if err := h.Posts.PushComment(c.Context(), id, cid); err != nil {
		return err
	}

	if post.Author != uid {
		h.Notifier.Notify(c.Context(), post.Author, notify.TypeComment,
			userFrom(c).Name+" commented on your post",
			models.EntityRef{Type: "post", ID: id})
	}

	comment.ID = cid
	return c.Status(fiber.StatusCreated).JSON(dto.OK(comment))
}

// @Summary Edit a comment
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Object id"
// @Param commentId path string true "Comment id"
// @Success 200 {object} dto.Response
// @Router /posts/{id}/comments/{commentId} [put]
func (h *PostHandler) UpdateComment(c *fiber.Ctx) error {
	cid, err := paramID(c, "commentId")
	if err != nil {
		return err
	}
	comment, err := h.Comments.FindByID(c.Context(), cid)
	if err != nil {
		return err
	}
	user := userFrom(c)
	if comment.Author != user.ID && !user.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Not authorized to update this comment")
	}

	var body dto.UpdateCommentRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	updated, err := h.Comments.Update(c.Context(), cid, bson.M{
		"content":    body.Content,
		"updated_at": time.Now(),
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(updated))
}

// @Summary Delete a comment
// @Tags posts
// @Produce json
// @Param id path string true "Object id"
// @Param commentId path string true "Comment id"
// @Success 200 {object} dto.Response
// @Router /posts/{id}/comments/{commentId} [delete]
func (h *PostHandler) DeleteComment(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	cid, err := paramID(c, "commentId")
	if err != nil {
		return err
	}
	comment, err := h.Comments.FindByID(c.Context(), cid)
	if err != nil {
		return err
	}
	user := userFrom(c)
	if comment.Author != user.ID && !user.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Not authorized to delete this comment")
	}

	if err := h.Comments.Delete(c.Context(), cid); err != nil {
		return err
	}
	if err := h.Posts.PullComment(c.Context(), id, cid); err != nil {
		return err
	}
	return c.JSON(dto.OKMessage("Comment deleted", nil))
}

// @Summary Like a comment
// @Tags posts
// @Accept json
// @Produce json
// @Param id path string true "Object id"
// @Param commentId path string true "Comment id"
// @Success 200 {object} dto.Response
// @Router /posts/{id}/comments/{commentId}/like [post]
func (h *PostHandler) LikeComment(c *fiber.Ctx) error {
	cid, err := paramID(c, "commentId")
	if err != nil {
		return err
	}
	comment, err := h.Comments.FindByID(c.Context(), cid)
	if err != nil {
		return err
	}
	uid := uidFrom(c)
	if comment.Liked(uid) {
		return fiber.NewError(fiber.StatusBadRequest, "Comment already liked")
	}

	if err := h.Comments.AddLike(c.Context(), cid, uid); err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.LikeResult{Likes: len(comment.Likes) + 1, IsLiked: true}))
}

// @Summary Remove a comment like
// @Tags posts
// @Produce json
// @Param id path string true "Object id"
// @Param commentId path string true "Comment id"
// @Success 200 {object} dto.Response
// @Router /posts/{id}/comments/{commentId}/like [delete]
func (h *PostHandler) UnlikeComment(c *fiber.Ctx) error {
	cid, err := paramID(c, "commentId")
	if err != nil {
		return err
	}
	comment, err := h.Comments.FindByID(c.Context(), cid)
	if err != nil {
		return err
	}
	uid := uidFrom(c)
	if !comment.Liked(uid) {
		return fiber.NewError(fiber.StatusBadRequest, "Comment has not been liked")
	}

	if err := h.Comments.RemoveLike(c.Context(), cid, uid); err != nil {
		return err
	}
	return c.JSON(dto.OK(dto.LikeResult{Likes: len(comment.Likes) - 1, IsLiked: false}))
}

// populate attaches authors, comments and counters to a page of posts.
func (h *PostHandler) populate(ctx context.Context, posts []models.Post, viewer bson.ObjectID) ([]dto.PostView, error) {
	views := make([]dto.PostView, 0, len(posts))
	for _, post := range posts {
		view, err := h.populateOne(ctx, post, viewer)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func (h *PostHandler) populateOne(ctx context.Context, post models.Post, viewer bson.ObjectID) (dto.PostView, error) {
	view := dto.PostView{
		Post:         post,
		LikeCount:    len(post.Likes),
		CommentCount: len(post.Comments),
		IsLiked:      post.Liked(viewer),
	}
	if author, err := h.Users.FindByID(ctx, post.Author); err == nil {
		brief := dto.BriefOf(author)
		view.AuthorInfo = &brief
	}

	comments, err := h.Comments.ListByPost(ctx, post.ID)
	if err != nil {
		return view, err
	}
	view.CommentViews, err = h.populateComments(ctx, comments)
	return view, err
}

func (h *PostHandler) populateComments(ctx context.Context, comments []models.Comment) ([]dto.CommentView, error) {
	views := make([]dto.CommentView, 0, len(comments))
	for _, comment := range comments {
		view := dto.CommentView{Comment: comment, LikeCount: len(comment.Likes)}
		if author, err := h.Users.FindByID(ctx, comment.Author); err == nil {
			brief := dto.BriefOf(author)
			view.AuthorInfo = &brief
		}
		views = append(views, view)
	}
	return views, nil
}
