package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"intranet-backend/dto"
	"intranet-backend/internal/middleware"
	"intranet-backend/internal/mocks"
	"intranet-backend/internal/models"
	"intranet-backend/internal/notify"
)

func newPostHandler() (*PostHandler, *mocks.PostRepositoryMock, *mocks.CommentRepositoryMock, *mocks.UserRepositoryMock, *mocks.NotificationRepositoryMock) {
	posts := new(mocks.PostRepositoryMock)
	comments := new(mocks.CommentRepositoryMock)
	users := new(mocks.UserRepositoryMock)
	notifications := new(mocks.NotificationRepositoryMock)
	h := NewPostHandler(posts, comments, users, middleware.NewUploader("uploads"), notify.New(notifications, zap.NewNop()))
	return h, posts, comments, users, notifications
}

func TestPostLikeNotifiesAuthor(t *testing.T) {
	h, posts, _, _, notifications := newPostHandler()
	user := testUser()
	author := bson.NewObjectID()
	postID := bson.NewObjectID()

	posts.On("FindByID", mock.Anything, postID).
		Return(models.Post{ID: postID, Author: author}, nil).Once()
	posts.On("AddLike", mock.Anything, postID, user.ID).Return(nil).Once()
	notifications.On("Insert", mock.Anything, mock.MatchedBy(func(n models.Notification) bool {
		return n.Recipient == author && n.Type == notify.TypePostLike
	})).Return(bson.NewObjectID(), nil).Once()

	app := newTestApp(user)
	app.Post("/api/posts/:id/like", h.Like)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/posts/"+postID.Hex()+"/like", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	envelope := decodeResponse(t, res)
	require.True(t, envelope.Success)
	posts.AssertExpectations(t)
	notifications.AssertExpectations(t)
}

func TestPostLikeTwiceRejected(t *testing.T) {
	h, posts, _, _, _ := newPostHandler()
	user := testUser()
	postID := bson.NewObjectID()

	posts.On("FindByID", mock.Anything, postID).
		Return(models.Post{ID: postID, Author: bson.NewObjectID(), Likes: []bson.ObjectID{user.ID}}, nil).Once()

	app := newTestApp(user)
	app.Post("/api/posts/:id/like", h.Like)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/posts/"+postID.Hex()+"/like", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	envelope := decodeResponse(t, res)
	require.False(t, envelope.Success)
	require.Equal(t, "Post already liked", envelope.Error)
	posts.AssertNotCalled(t, "AddLike", mock.Anything, mock.Anything, mock.Anything)
}

func TestPostUnlikeWithoutLikeRejected(t *testing.T) {
	h, posts, _, _, _ := newPostHandler()
	user := testUser()
	postID := bson.NewObjectID()

	posts.On("FindByID", mock.Anything, postID).
		Return(models.Post{ID: postID, Author: bson.NewObjectID()}, nil).Once()

	app := newTestApp(user)
	app.Delete("/api/posts/:id/like", h.Unlike)

	res, err := app.Test(jsonRequest(http.MethodDelete, "/api/posts/"+postID.Hex()+"/like", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	posts.AssertNotCalled(t, "RemoveLike", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateCommentPushesAndNotifies(t *testing.T) {
	h, posts, comments, _, notifications := newPostHandler()
	user := testUser()
	author := bson.NewObjectID()
	postID := bson.NewObjectID()
	commentID := bson.NewObjectID()

	posts.On("FindByID", mock.Anything, postID).
		Return(models.Post{ID: postID, Author: author}, nil).Once()
	comments.On("Insert", mock.Anything, mock.MatchedBy(func(c models.Comment) bool {
		return c.Post == postID && c.Author == user.ID && c.Content == "Welcome aboard"
	})).Return(commentID, nil).Once()
	posts.On("PushComment", mock.Anything, postID, commentID).Return(nil).Once()
	notifications.On("Insert", mock.Anything, mock.MatchedBy(func(n models.Notification) bool {
		return n.Recipient == author && n.Type == notify.TypeComment
	})).Return(bson.NewObjectID(), nil).Once()

	app := newTestApp(user)
	app.Post("/api/posts/:id/comments", h.CreateComment)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/posts/"+postID.Hex()+"/comments",
		dto.CreateCommentRequest{Content: "Welcome aboard"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	posts.AssertExpectations(t)
	comments.AssertExpectations(t)
	notifications.AssertExpectations(t)
}

func TestCommentOnOwnPostSkipsNotification(t *testing.T) {
	h, posts, comments, _, notifications := newPostHandler()
	user := testUser()
	postID := bson.NewObjectID()
	commentID := bson.NewObjectID()

	posts.On("FindByID", mock.Anything, postID).
		Return(models.Post{ID: postID, Author: user.ID}, nil).Once()
	comments.On("Insert", mock.Anything, mock.Anything).Return(commentID, nil).Once()
	posts.On("PushComment", mock.Anything, postID, commentID).Return(nil).Once()

	app := newTestApp(user)
	app.Post("/api/posts/:id/comments", h.CreateComment)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/posts/"+postID.Hex()+"/comments",
		dto.CreateCommentRequest{Content: "Note to self"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	notifications.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestUpdatePostForbiddenForOtherUser(t *testing.T) {
	h, posts, _, _, _ := newPostHandler()
	user := testUser()
	postID := bson.NewObjectID()

	posts.On("FindByID", mock.Anything, postID).
		Return(models.Post{ID: postID, Author: bson.NewObjectID()}, nil).Once()

	app := newTestApp(user)
	app.Put("/api/posts/:id", h.Update)

	res, err := app.Test(jsonRequest(http.MethodPut, "/api/posts/"+postID.Hex(),
		dto.UpdatePostRequest{Title: "Hijacked"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, res.StatusCode)
	posts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeletePostCascadesComments(t *testing.T) {
	h, posts, comments, _, _ := newPostHandler()
	user := testUser()
	postID := bson.NewObjectID()

	posts.On("FindByID", mock.Anything, postID).
		Return(models.Post{ID: postID, Author: user.ID}, nil).Once()
	comments.On("DeleteByPost", mock.Anything, postID).Return(nil).Once()
	posts.On("Delete", mock.Anything, postID).Return(nil).Once()

	app := newTestApp(user)
	app.Delete("/api/posts/:id", h.Delete)

	res, err := app.Test(jsonRequest(http.MethodDelete, "/api/posts/"+postID.Hex(), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	posts.AssertExpectations(t)
	comments.AssertExpectations(t)
}

func TestCreatePostStoresMultipartMedia(t *testing.T) {
	posts := new(mocks.PostRepositoryMock)
	h := NewPostHandler(posts, new(mocks.CommentRepositoryMock),
		new(mocks.UserRepositoryMock), middleware.NewUploader(t.TempDir()),
		notify.New(new(mocks.NotificationRepositoryMock), zap.NewNop()))
	user := testUser()

	posts.On("Insert", mock.Anything, mock.MatchedBy(func(p models.Post) bool {
		return p.Content == "Ribbon cutting at noon" && len(p.Media) == 1 &&
			strings.HasSuffix(p.Media[0], ".png")
	})).Return(bson.NewObjectID(), nil).Once()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("content", "Ribbon cutting at noon"))
	part, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {`form-data; name="media"; filename="ribbon.png"`},
		"Content-Type":        {"image/png"},
	})
	require.NoError(t, err)
	_, err = part.Write([]byte("not a real png, close enough"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/posts", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	app := newTestApp(user)
	app.Post("/api/posts", h.Create)

	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	posts.AssertExpectations(t)
}

func TestCreatePostRejectsOversizeMedia(t *testing.T) {
	posts := new(mocks.PostRepositoryMock)
	h := NewPostHandler(posts, new(mocks.CommentRepositoryMock),
		new(mocks.UserRepositoryMock), middleware.NewUploader(t.TempDir()),
		notify.New(new(mocks.NotificationRepositoryMock), zap.NewNop()))
	user := testUser()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	require.NoError(t, w.WriteField("content", "Way too heavy"))
	part, err := w.CreatePart(textproto.MIMEHeader{
		"Content-Disposition": {`form-data; name="media"; filename="huge.png"`},
		"Content-Type":        {"image/png"},
	})
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("x"), 6<<20))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/posts", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	app := newTestApp(user)
	app.Post("/api/posts", h.Create)

	res, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	posts.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}
