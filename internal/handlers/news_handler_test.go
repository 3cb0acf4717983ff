package handlers

import (
	"net/http"
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

type newsHandlerMocks struct {
	news          *mocks.NewsRepositoryMock
	users         *mocks.UserRepositoryMock
	notifications *mocks.NotificationRepositoryMock
}

func newNewsHandler() (*NewsHandler, newsHandlerMocks) {
	m := newsHandlerMocks{
		news:          new(mocks.NewsRepositoryMock),
		users:         new(mocks.UserRepositoryMock),
		notifications: new(mocks.NotificationRepositoryMock),
	}
	h := NewNewsHandler(m.news, m.users, middleware.NewUploader("uploads"), notify.New(m.notifications, zap.NewNop()))
	return h, m
}

func boolPtr(b bool) *bool { return &b }

func TestFeaturingArticleNotifiesEveryone(t *testing.T) {
	h, m := newNewsHandler()
	editor := adminUser()
	articleID := bson.NewObjectID()
	reader1 := bson.NewObjectID()
	reader2 := bson.NewObjectID()

	m.news.On("FindByID", mock.Anything, articleID).
		Return(models.News{ID: articleID, Author: editor.ID, IsFeatured: false, IsPublished: true}, nil).Once()
	m.news.On("Update", mock.Anything, articleID, mock.MatchedBy(func(set bson.M) bool {
		featured, ok := set["is_featured"].(bool)
		return ok && featured
	})).Return(models.News{
		ID: articleID, Author: editor.ID, Title: "Bridge reopens",
		IsFeatured: true, IsPublished: true,
	}, nil).Once()
	m.users.On("ListAll", mock.Anything).Return([]models.User{
		editor,
		{ID: reader1},
		{ID: reader2},
	}, nil).Once()
	m.notifications.On("Insert", mock.Anything, mock.MatchedBy(func(n models.Notification) bool {
		return n.Type == notify.TypeNews && n.Recipient != editor.ID &&
			n.RelatedTo.ID == articleID
	})).Return(bson.NewObjectID(), nil).Twice()

	app := newTestApp(editor)
	app.Put("/api/news/:id", h.Update)

	res, err := app.Test(jsonRequest(http.MethodPut, "/api/news/"+articleID.Hex(),
		dto.UpdateNewsRequest{IsFeatured: boolPtr(true)}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	m.notifications.AssertExpectations(t)
}

func TestUpdatingAlreadyFeaturedArticleSkipsFanout(t *testing.T) {
	h, m := newNewsHandler()
	editor := adminUser()
	articleID := bson.NewObjectID()

	m.news.On("FindByID", mock.Anything, articleID).
		Return(models.News{ID: articleID, Author: editor.ID, IsFeatured: true, IsPublished: true}, nil).Once()
	m.news.On("Update", mock.Anything, articleID, mock.Anything).
		Return(models.News{ID: articleID, Author: editor.ID, IsFeatured: true, IsPublished: true}, nil).Once()

	app := newTestApp(editor)
	app.Put("/api/news/:id", h.Update)

	res, err := app.Test(jsonRequest(http.MethodPut, "/api/news/"+articleID.Hex(),
		dto.UpdateNewsRequest{Title: "Refreshed headline"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	m.users.AssertNotCalled(t, "ListAll", mock.Anything)
	m.notifications.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestNewsUpdateRejectsNonAuthor(t *testing.T) {
	h, m := newNewsHandler()
	user := testUser()
	articleID := bson.NewObjectID()

	m.news.On("FindByID", mock.Anything, articleID).
		Return(models.News{ID: articleID, Author: bson.NewObjectID()}, nil).Once()

	app := newTestApp(user)
	app.Put("/api/news/:id", h.Update)

	res, err := app.Test(jsonRequest(http.MethodPut, "/api/news/"+articleID.Hex(),
		dto.UpdateNewsRequest{Title: "Hijacked"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, res.StatusCode)
	m.news.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
