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

func TestListNotificationsIncludesUnreadCount(t *testing.T) {
	notifications := new(mocks.NotificationRepositoryMock)
	h := NewNotificationHandler(notifications)
	user := testUser()

	notifications.On("ListByRecipient", mock.Anything, user.ID, dto.PageQuery{Page: 1, Limit: 10}).
		Return([]models.Notification{
			{ID: bson.NewObjectID(), Recipient: user.ID, Type: "comment"},
			{ID: bson.NewObjectID(), Recipient: user.ID, Type: "post_like", IsRead: true},
		}, int64(2), nil).Once()
	notifications.On("CountUnread", mock.Anything, user.ID).Return(int64(1), nil).Once()

	app := newTestApp(user)
	app.Get("/api/notifications", h.List)

	res, err := app.Test(jsonRequest(http.MethodGet, "/api/notifications", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	envelope := decodeResponse(t, res)
	require.True(t, envelope.Success)
	require.NotNil(t, envelope.Pagination)
	require.Equal(t, int64(2), envelope.Pagination.Total)
	notifications.AssertExpectations(t)
}

func TestMarkReadRejectsOtherRecipient(t *testing.T) {
	notifications := new(mocks.NotificationRepositoryMock)
	h := NewNotificationHandler(notifications)
	user := testUser()
	id := bson.NewObjectID()

	notifications.On("FindByID", mock.Anything, id).
		Return(models.Notification{ID: id, Recipient: bson.NewObjectID()}, nil).Once()

	app := newTestApp(user)
	app.Put("/api/notifications/:id/read", h.MarkRead)

	res, err := app.Test(jsonRequest(http.MethodPut, "/api/notifications/"+id.Hex()+"/read", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, res.StatusCode)
	notifications.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
}

func TestMarkAllRead(t *testing.T) {
	notifications := new(mocks.NotificationRepositoryMock)
	h := NewNotificationHandler(notifications)
	user := testUser()

	notifications.On("MarkAllRead", mock.Anything, user.ID).Return(nil).Once()

	app := newTestApp(user)
	app.Put("/api/notifications/read-all", h.MarkAllRead)

	res, err := app.Test(jsonRequest(http.MethodPut, "/api/notifications/read-all", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	notifications.AssertExpectations(t)
}
