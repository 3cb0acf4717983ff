package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.uber.org/zap"

	"intranet-backend/dto"
	"intranet-backend/internal/mocks"
	"intranet-backend/internal/models"
	"intranet-backend/internal/notify"
)

func newEventHandler() (*EventHandler, *mocks.EventRepositoryMock, *mocks.UserRepositoryMock, *mocks.NotificationRepositoryMock) {
	events := new(mocks.EventRepositoryMock)
	users := new(mocks.UserRepositoryMock)
	notifications := new(mocks.NotificationRepositoryMock)
	h := NewEventHandler(events, users, notify.New(notifications, zap.NewNop()))
	return h, events, users, notifications
}

func TestCreateEventRejectsInvertedDates(t *testing.T) {
	h, events, _, _ := newEventHandler()
	user := testUser()

	app := newTestApp(user)
	app.Post("/api/events", h.Create)

	start := time.Now().Add(48 * time.Hour)
	res, err := app.Test(jsonRequest(http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title:       "Council session",
		Description: "Monthly open council session",
		StartDate:   start,
		EndDate:     start.Add(-2 * time.Hour),
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	events.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateEventAddsCreatorAsAttendee(t *testing.T) {
	h, events, _, _ := newEventHandler()
	user := testUser()
	eventID := bson.NewObjectID()

	events.On("Insert", mock.Anything, mock.MatchedBy(func(e models.Event) bool {
		return e.Creator == user.ID && len(e.Attendees) == 1 && e.Attendees[0] == user.ID
	})).Return(eventID, nil).Once()

	app := newTestApp(user)
	app.Post("/api/events", h.Create)

	start := time.Now().Add(48 * time.Hour)
	res, err := app.Test(jsonRequest(http.MethodPost, "/api/events", dto.CreateEventRequest{
		Title:       "Council session",
		Description: "Monthly open council session",
		StartDate:   start,
		EndDate:     start.Add(2 * time.Hour),
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	events.AssertExpectations(t)
}

func TestAttendTwiceRejected(t *testing.T) {
	h, events, _, _ := newEventHandler()
	user := testUser()
	eventID := bson.NewObjectID()

	events.On("FindByID", mock.Anything, eventID).Return(models.Event{
		ID:        eventID,
		Creator:   bson.NewObjectID(),
		Attendees: []bson.ObjectID{user.ID},
	}, nil).Once()

	app := newTestApp(user)
	app.Post("/api/events/:id/attend", h.Attend)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/events/"+eventID.Hex()+"/attend", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	events.AssertNotCalled(t, "AddAttendee", mock.Anything, mock.Anything, mock.Anything)
}

func TestAttendNotifiesCreator(t *testing.T) {
	h, events, _, notifications := newEventHandler()
	user := testUser()
	creator := bson.NewObjectID()
	eventID := bson.NewObjectID()

	events.On("FindByID", mock.Anything, eventID).Return(models.Event{
		ID:      eventID,
		Title:   "Budget hearing",
		Creator: creator,
	}, nil).Once()
	events.On("AddAttendee", mock.Anything, eventID, user.ID).Return(nil).Once()
	notifications.On("Insert", mock.Anything, mock.MatchedBy(func(n models.Notification) bool {
		return n.Recipient == creator && n.Type == notify.TypeEvent
	})).Return(bson.NewObjectID(), nil).Once()

	app := newTestApp(user)
	app.Post("/api/events/:id/attend", h.Attend)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/events/"+eventID.Hex()+"/attend", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	events.AssertExpectations(t)
	notifications.AssertExpectations(t)
}

func TestUnattendWithoutAttendingRejected(t *testing.T) {
	h, events, _, _ := newEventHandler()
	user := testUser()
	eventID := bson.NewObjectID()

	events.On("FindByID", mock.Anything, eventID).Return(models.Event{
		ID:      eventID,
		Creator: bson.NewObjectID(),
	}, nil).Once()

	app := newTestApp(user)
	app.Delete("/api/events/:id/attend", h.Unattend)

	res, err := app.Test(jsonRequest(http.MethodDelete, "/api/events/"+eventID.Hex()+"/attend", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	events.AssertNotCalled(t, "RemoveAttendee", mock.Anything, mock.Anything, mock.Anything)
}
