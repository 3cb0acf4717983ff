package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.uber.org/zap"

	"intranet-backend/dto"
	"intranet-backend/internal/middleware"
	"intranet-backend/internal/mocks"
	"intranet-backend/internal/models"
	"intranet-backend/internal/notify"
)

type chatHandlerMocks struct {
	chats         *mocks.ChatRepositoryMock
	messages      *mocks.MessageRepositoryMock
	users         *mocks.UserRepositoryMock
	notifications *mocks.NotificationRepositoryMock
}

func newChatHandler() (*ChatHandler, chatHandlerMocks) {
	m := chatHandlerMocks{
		chats:         new(mocks.ChatRepositoryMock),
		messages:      new(mocks.MessageRepositoryMock),
		users:         new(mocks.UserRepositoryMock),
		notifications: new(mocks.NotificationRepositoryMock),
	}
	h := NewChatHandler(m.chats, m.messages, m.users, middleware.NewUploader("uploads"), notify.New(m.notifications, zap.NewNop()))
	return h, m
}

func TestCreateDirectChatReturnsExisting(t *testing.T) {
	h, m := newChatHandler()
	user := testUser()
	other := models.User{ID: bson.NewObjectID(), Name: "Casey Ruiz"}
	existing := models.Chat{
		ID:           bson.NewObjectID(),
		Participants: []bson.ObjectID{user.ID, other.ID},
	}

	m.users.On("FindByID", mock.Anything, other.ID).Return(other, nil)
	m.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	m.chats.On("FindDirect", mock.Anything, user.ID, other.ID).Return(existing, nil).Once()

	app := newTestApp(user)
	app.Post("/api/chats", h.Create)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/chats", dto.CreateChatRequest{
		Participants: []string{other.ID.Hex()},
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	m.chats.AssertExpectations(t)
	m.chats.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCreateDirectChatWhenNoneExists(t *testing.T) {
	h, m := newChatHandler()
	user := testUser()
	other := models.User{ID: bson.NewObjectID(), Name: "Casey Ruiz"}
	chatID := bson.NewObjectID()

	m.users.On("FindByID", mock.Anything, other.ID).Return(other, nil)
	m.users.On("FindByID", mock.Anything, user.ID).Return(user, nil)
	m.chats.On("FindDirect", mock.Anything, user.ID, other.ID).
		Return(nil, mongo.ErrNoDocuments).Once()
	m.chats.On("Insert", mock.Anything, mock.MatchedBy(func(chat models.Chat) bool {
		return !chat.IsGroup && len(chat.Participants) == 2
	})).Return(chatID, nil).Once()

	app := newTestApp(user)
	app.Post("/api/chats", h.Create)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/chats", dto.CreateChatRequest{
		Participants: []string{other.ID.Hex()},
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)
	m.chats.AssertExpectations(t)
}

func TestCreateGroupChatRequiresName(t *testing.T) {
	h, _ := newChatHandler()
	user := testUser()

	app := newTestApp(user)
	app.Post("/api/chats", h.Create)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/chats", dto.CreateChatRequest{
		Participants: []string{bson.NewObjectID().Hex()},
		IsGroup:      true,
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestRenameDirectChatRejected(t *testing.T) {
	h, m := newChatHandler()
	user := testUser()
	chatID := bson.NewObjectID()

	m.chats.On("FindByID", mock.Anything, chatID).Return(models.Chat{
		ID:           chatID,
		Participants: []bson.ObjectID{user.ID, bson.NewObjectID()},
	}, nil).Once()

	app := newTestApp(user)
	app.Put("/api/chats/:id", h.Update)

	res, err := app.Test(jsonRequest(http.MethodPut, "/api/chats/"+chatID.Hex(),
		dto.UpdateChatRequest{Name: "New name"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	envelope := decodeResponse(t, res)
	require.Equal(t, "Direct chats cannot be renamed", envelope.Error)
}

func TestEditMessageOutsideWindowRejected(t *testing.T) {
	h, m := newChatHandler()
	user := testUser()
	chatID := bson.NewObjectID()
	messageID := bson.NewObjectID()

	m.chats.On("FindByID", mock.Anything, chatID).Return(models.Chat{
		ID:           chatID,
		Participants: []bson.ObjectID{user.ID, bson.NewObjectID()},
	}, nil).Once()
	m.messages.On("FindByID", mock.Anything, messageID).Return(models.Message{
		ID:        messageID,
		Chat:      chatID,
		Sender:    user.ID,
		CreatedAt: time.Now().Add(-10 * time.Minute),
	}, nil).Once()

	app := newTestApp(user)
	app.Put("/api/chats/:id/messages/:messageId", h.EditMessage)

	res, err := app.Test(jsonRequest(http.MethodPut,
		"/api/chats/"+chatID.Hex()+"/messages/"+messageID.Hex(),
		dto.UpdateMessageRequest{Content: "too late"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	m.messages.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestEditMessageWithinWindow(t *testing.T) {
	h, m := newChatHandler()
	user := testUser()
	chatID := bson.NewObjectID()
	messageID := bson.NewObjectID()

	m.chats.On("FindByID", mock.Anything, chatID).Return(models.Chat{
		ID:           chatID,
		Participants: []bson.ObjectID{user.ID, bson.NewObjectID()},
	}, nil).Once()
	m.messages.On("FindByID", mock.Anything, messageID).Return(models.Message{
		ID:        messageID,
		Chat:      chatID,
		Sender:    user.ID,
		CreatedAt: time.Now().Add(-1 * time.Minute),
	}, nil).Once()
	m.messages.On("Update", mock.Anything, messageID, mock.MatchedBy(func(set bson.M) bool {
		return set["content"] == "fixed typo" && set["is_edited"] == true
	})).Return(models.Message{ID: messageID, Content: "fixed typo", IsEdited: true}, nil).Once()

	app := newTestApp(user)
	app.Put("/api/chats/:id/messages/:messageId", h.EditMessage)

	res, err := app.Test(jsonRequest(http.MethodPut,
		"/api/chats/"+chatID.Hex()+"/messages/"+messageID.Hex(),
		dto.UpdateMessageRequest{Content: "fixed typo"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	m.messages.AssertExpectations(t)
}

func TestEditMessageByNonSenderForbidden(t *testing.T) {
	h, m := newChatHandler()
	user := testUser()
	chatID := bson.NewObjectID()
	messageID := bson.NewObjectID()

	m.chats.On("FindByID", mock.Anything, chatID).Return(models.Chat{
		ID:           chatID,
		Participants: []bson.ObjectID{user.ID, bson.NewObjectID()},
	}, nil).Once()
	m.messages.On("FindByID", mock.Anything, messageID).Return(models.Message{
		ID:        messageID,
		Chat:      chatID,
		Sender:    bson.NewObjectID(),
		CreatedAt: time.Now(),
	}, nil).Once()

	app := newTestApp(user)
	app.Put("/api/chats/:id/messages/:messageId", h.EditMessage)

	res, err := app.Test(jsonRequest(http.MethodPut,
		"/api/chats/"+chatID.Hex()+"/messages/"+messageID.Hex(),
		dto.UpdateMessageRequest{Content: "hijack"}))
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestListChatsForbiddenForOutsider(t *testing.T) {
	h, m := newChatHandler()
	user := testUser()
	chatID := bson.NewObjectID()

	m.chats.On("FindByID", mock.Anything, chatID).Return(models.Chat{
		ID:           chatID,
		Participants: []bson.ObjectID{bson.NewObjectID(), bson.NewObjectID()},
	}, nil).Once()

	app := newTestApp(user)
	app.Get("/api/chats/:id", h.Get)

	res, err := app.Test(jsonRequest(http.MethodGet, "/api/chats/"+chatID.Hex(), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, res.StatusCode)
}
