package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"intranet-backend/dto"
	"intranet-backend/internal/mocks"
	"intranet-backend/internal/models"
)

func TestCreateShortcutAppendsAtEnd(t *testing.T) {
	items := new(mocks.QuickAccessRepositoryMock)
	h := NewQuickAccessHandler(items)
	user := testUser()

	items.On("MaxOrder", mock.Anything, user.ID).Return(2, nil).Once()
	items.On("Insert", mock.Anything, mock.MatchedBy(func(item models.QuickAccessItem) bool {
		return item.User == user.ID && item.Order == 3 && item.IsCustom
	})).Return(bson.NewObjectID(), nil).Once()

	app := newTestApp(user)
	app.Post("/api/quick-access", h.Create)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/quick-access", dto.CreateQuickAccessRequest{
		Name:     "Payroll",
		Icon:     "payroll",
		URL:      "https://payroll.city.gov",
		Category: "hr",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	items.AssertExpectations(t)
}

func TestDeleteShortcutCompactsOrder(t *testing.T) {
	items := new(mocks.QuickAccessRepositoryMock)
	h := NewQuickAccessHandler(items)
	user := testUser()

	deleted := bson.NewObjectID()
	first := bson.NewObjectID()
	third := bson.NewObjectID()

	items.On("FindByID", mock.Anything, deleted).
		Return(models.QuickAccessItem{ID: deleted, User: user.ID, Order: 1}, nil).Once()
	items.On("Delete", mock.Anything, deleted).Return(nil).Once()
	items.On("ListByUser", mock.Anything, user.ID).Return([]models.QuickAccessItem{
		{ID: first, User: user.ID, Order: 0},
		{ID: third, User: user.ID, Order: 2},
	}, nil).Once()
	items.On("SetOrder", mock.Anything, third, user.ID, 1).Return(nil).Once()

	app := newTestApp(user)
	app.Delete("/api/quick-access/:id", h.Delete)

	res, err := app.Test(jsonRequest(http.MethodDelete, "/api/quick-access/"+deleted.Hex(), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	items.AssertExpectations(t)
}

func TestDeleteShortcutOwnedByAnotherUser(t *testing.T) {
	items := new(mocks.QuickAccessRepositoryMock)
	h := NewQuickAccessHandler(items)
	user := testUser()
	id := bson.NewObjectID()

	items.On("FindByID", mock.Anything, id).
		Return(models.QuickAccessItem{ID: id, User: bson.NewObjectID()}, nil).Once()

	app := newTestApp(user)
	app.Delete("/api/quick-access/:id", h.Delete)

	res, err := app.Test(jsonRequest(http.MethodDelete, "/api/quick-access/"+id.Hex(), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, res.StatusCode)
	items.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestGalleryListsPredefinedApps(t *testing.T) {
	items := new(mocks.QuickAccessRepositoryMock)
	h := NewQuickAccessHandler(items)
	user := testUser()

	app := newTestApp(user)
	app.Get("/api/quick-access/gallery", h.Gallery)

	res, err := app.Test(jsonRequest(http.MethodGet, "/api/quick-access/gallery", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	envelope := decodeResponse(t, res)
	require.True(t, envelope.Success)
	apps, ok := envelope.Data.([]any)
	require.True(t, ok)
	require.NotEmpty(t, apps)
}
