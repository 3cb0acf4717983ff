package handlers

import (
	"net/http"
	"testing"

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

type groupHandlerMocks struct {
	groups        *mocks.GroupRepositoryMock
	members       *mocks.GroupMemberRepositoryMock
	notifications *mocks.NotificationRepositoryMock
}

func newGroupHandler() (*GroupHandler, groupHandlerMocks) {
	m := groupHandlerMocks{
		groups:        new(mocks.GroupRepositoryMock),
		members:       new(mocks.GroupMemberRepositoryMock),
		notifications: new(mocks.NotificationRepositoryMock),
	}
	h := NewGroupHandler(m.groups, m.members,
		new(mocks.PostRepositoryMock), new(mocks.FileRepositoryMock),
		new(mocks.EventRepositoryMock), new(mocks.UserRepositoryMock),
		middleware.NewUploader("uploads"),
		notify.New(m.notifications, zap.NewNop()))
	return h, m
}

func TestCreateGroupMakesCreatorAdmin(t *testing.T) {
	h, m := newGroupHandler()
	user := testUser()
	groupID := bson.NewObjectID()
	memberID := bson.NewObjectID()

	m.groups.On("Insert", mock.Anything, mock.MatchedBy(func(g models.Group) bool {
		return g.Name == "Parks Crew" && g.Creator == user.ID
	})).Return(groupID, nil).Once()
	m.members.On("Insert", mock.Anything, mock.MatchedBy(func(member models.GroupMember) bool {
		return member.Group == groupID && member.User == user.ID && member.Role == models.GroupRoleAdmin
	})).Return(memberID, nil).Once()
	m.groups.On("PushMember", mock.Anything, groupID, memberID).Return(nil).Once()

	app := newTestApp(user)
	app.Post("/api/groups", h.Create)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/groups", dto.CreateGroupRequest{
		Name:        "Parks Crew",
		Description: "Parks and recreation field staff",
	}))
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, res.StatusCode)

	m.groups.AssertExpectations(t)
	m.members.AssertExpectations(t)
}

func TestLeaveGroupSoleAdminRejected(t *testing.T) {
	h, m := newGroupHandler()
	user := testUser()
	groupID := bson.NewObjectID()
	memberID := bson.NewObjectID()

	m.members.On("Find", mock.Anything, groupID, user.ID).
		Return(models.GroupMember{ID: memberID, Group: groupID, User: user.ID, Role: models.GroupRoleAdmin}, nil).Once()
	m.members.On("CountAdmins", mock.Anything, groupID).Return(int64(1), nil).Once()

	app := newTestApp(user)
	app.Post("/api/groups/:id/leave", h.Leave)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/groups/"+groupID.Hex()+"/leave", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	envelope := decodeResponse(t, res)
	require.Equal(t, "Cannot leave as the only group admin", envelope.Error)
	m.members.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestLeaveGroupAllowedWithAnotherAdmin(t *testing.T) {
	h, m := newGroupHandler()
	user := testUser()
	groupID := bson.NewObjectID()
	memberID := bson.NewObjectID()

	m.members.On("Find", mock.Anything, groupID, user.ID).
		Return(models.GroupMember{ID: memberID, Group: groupID, User: user.ID, Role: models.GroupRoleAdmin}, nil).Once()
	m.members.On("CountAdmins", mock.Anything, groupID).Return(int64(2), nil).Once()
	m.members.On("Delete", mock.Anything, memberID).Return(nil).Once()
	m.groups.On("PullMember", mock.Anything, groupID, memberID).Return(nil).Once()

	app := newTestApp(user)
	app.Post("/api/groups/:id/leave", h.Leave)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/groups/"+groupID.Hex()+"/leave", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	m.members.AssertExpectations(t)
	m.groups.AssertExpectations(t)
}

func TestLeaveGroupNotMember(t *testing.T) {
	h, m := newGroupHandler()
	user := testUser()
	groupID := bson.NewObjectID()

	m.members.On("Find", mock.Anything, groupID, user.ID).
		Return(nil, mongo.ErrNoDocuments).Once()

	app := newTestApp(user)
	app.Post("/api/groups/:id/leave", h.Leave)

	res, err := app.Test(jsonRequest(http.MethodPost, "/api/groups/"+groupID.Hex()+"/leave", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)

	envelope := decodeResponse(t, res)
	require.Equal(t, "Not a member of this group", envelope.Error)
}

func TestGetPrivateGroupGatedToMembers(t *testing.T) {
	h, m := newGroupHandler()
	user := testUser()
	groupID := bson.NewObjectID()

	m.groups.On("FindByID", mock.Anything, groupID).
		Return(models.Group{ID: groupID, Name: "Budget Review", IsPrivate: true}, nil).Once()
	m.members.On("Find", mock.Anything, groupID, user.ID).
		Return(nil, mongo.ErrNoDocuments).Once()

	app := newTestApp(user)
	app.Get("/api/groups/:id", h.Get)

	res, err := app.Test(jsonRequest(http.MethodGet, "/api/groups/"+groupID.Hex(), nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestListGroupsAnonymousHidesPrivate(t *testing.T) {
	h, m := newGroupHandler()

	m.groups.On("List", mock.Anything, bson.M{"is_private": false}, mock.Anything).
		Return([]models.Group{}, int64(0), nil).Once()

	app := newTestApp(models.User{})
	app.Get("/api/groups", h.List)

	res, err := app.Test(jsonRequest(http.MethodGet, "/api/groups", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	m.groups.AssertExpectations(t)
}

func TestListMyGroupsSkipsStaleMemberships(t *testing.T) {
	groups := new(mocks.GroupRepositoryMock)
	members := new(mocks.GroupMemberRepositoryMock)
	users := new(mocks.UserRepositoryMock)
	h := NewGroupHandler(groups, members,
		new(mocks.PostRepositoryMock), new(mocks.FileRepositoryMock),
		new(mocks.EventRepositoryMock), users,
		middleware.NewUploader("uploads"),
		notify.New(new(mocks.NotificationRepositoryMock), zap.NewNop()))

	user := testUser()
	creator := bson.NewObjectID()
	g1, g2, gone := bson.NewObjectID(), bson.NewObjectID(), bson.NewObjectID()

	members.On("ListByUser", mock.Anything, user.ID).Return([]models.GroupMember{
		{Group: g1, User: user.ID},
		{Group: gone, User: user.ID},
		{Group: g2, User: user.ID},
	}, nil).Once()
	groups.On("FindByID", mock.Anything, g1).
		Return(models.Group{ID: g1, Name: "Parks Crew", Creator: creator}, nil).Once()
	groups.On("FindByID", mock.Anything, gone).
		Return(models.Group{}, mongo.ErrNoDocuments).Once()
	groups.On("FindByID", mock.Anything, g2).
		Return(models.Group{ID: g2, Name: "Permit Desk", Creator: creator}, nil).Once()
	users.On("FindByID", mock.Anything, creator).
		Return(models.User{ID: creator, Name: "Dana Wolfe"}, nil).Twice()

	app := newTestApp(user)
	app.Get("/api/groups/my", h.ListMine)

	res, err := app.Test(jsonRequest(http.MethodGet, "/api/groups/my", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	envelope := decodeResponse(t, res)
	require.NotNil(t, envelope.Count)
	require.Equal(t, 2, *envelope.Count)
	groups.AssertExpectations(t)
}
