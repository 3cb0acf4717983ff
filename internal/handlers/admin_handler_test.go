package handlers

import (
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"intranet-backend/dto"
	"intranet-backend/internal/mocks"
	"intranet-backend/internal/models"
)

type adminHandlerMocks struct {
	users  *mocks.UserRepositoryMock
	posts  *mocks.PostRepositoryMock
	groups *mocks.GroupRepositoryMock
	events *mocks.EventRepositoryMock
	news   *mocks.NewsRepositoryMock
	logs   *mocks.ActivityLogRepositoryMock
}

func newAdminHandler() (*AdminHandler, adminHandlerMocks) {
	m := adminHandlerMocks{
		users:  new(mocks.UserRepositoryMock),
		posts:  new(mocks.PostRepositoryMock),
		groups: new(mocks.GroupRepositoryMock),
		events: new(mocks.EventRepositoryMock),
		news:   new(mocks.NewsRepositoryMock),
		logs:   new(mocks.ActivityLogRepositoryMock),
	}
	h := NewAdminHandler(m.users, m.posts, m.groups, m.events, m.news, m.logs)
	return h, m
}

func adminUser() models.User {
	return models.User{
		ID:    bson.NewObjectID(),
		Name:  "Morgan Pratt",
		Email: "morgan.pratt@city.gov",
		Role:  models.RoleAdmin,
	}
}

func TestAdminDashboardAggregatesCounters(t *testing.T) {
	h, m := newAdminHandler()

	m.users.On("Count", mock.Anything, bson.M{}).Return(int64(42), nil).Once()
	m.users.On("Count", mock.Anything, mock.MatchedBy(func(f bson.M) bool {
		_, ok := f["last_active"]
		return ok
	})).Return(int64(17), nil).Once()
	m.posts.On("Count", mock.Anything, bson.M{}).Return(int64(120), nil).Once()
	m.posts.On("Count", mock.Anything, mock.MatchedBy(func(f bson.M) bool {
		_, ok := f["created_at"]
		return ok
	})).Return(int64(12), nil).Once()
	m.groups.On("Count", mock.Anything, bson.M{}).Return(int64(9), nil).Once()
	m.events.On("Count", mock.Anything, bson.M{}).Return(int64(15), nil).Once()
	m.events.On("Count", mock.Anything, mock.MatchedBy(func(f bson.M) bool {
		_, ok := f["start_date"]
		return ok
	})).Return(int64(4), nil).Once()
	m.news.On("Count", mock.Anything, bson.M{}).Return(int64(31), nil).Once()
	m.logs.On("Recent", mock.Anything, int64(10)).
		Return([]models.ActivityLog{{Action: models.ActionLogin}}, nil).Once()

	app := newTestApp(adminUser())
	app.Get("/api/admin/dashboard", h.Dashboard)

	res, err := app.Test(jsonRequest(http.MethodGet, "/api/admin/dashboard", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)

	envelope := decodeResponse(t, res)
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	require.EqualValues(t, 42, data["userCount"])
	require.EqualValues(t, 17, data["activeUserCount"])
	require.EqualValues(t, 120, data["postCount"])
	require.EqualValues(t, 4, data["upcomingEventCount"])
	require.EqualValues(t, 31, data["newsCount"])
	require.Len(t, data["recentActivity"], 1)
	m.logs.AssertExpectations(t)
}

func TestAdminLogsFilterByAction(t *testing.T) {
	h, m := newAdminHandler()

	entries := []models.ActivityLog{{Action: models.ActionCreate}}
	m.logs.On("List", mock.Anything, bson.M{"action": models.ActionCreate}, mock.Anything).
		Return(entries, int64(1), nil).Once()

	app := newTestApp(adminUser())
	app.Get("/api/admin/logs", h.Logs)

	res, err := app.Test(jsonRequest(http.MethodGet, "/api/admin/logs?action="+models.ActionCreate, nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode)
	m.logs.AssertExpectations(t)
}

func TestAdminLogsRejectsBadUserID(t *testing.T) {
	h, m := newAdminHandler()

	app := newTestApp(adminUser())
	app.Get("/api/admin/logs", h.Logs)

	res, err := app.Test(jsonRequest(http.MethodGet, "/api/admin/logs?user=not-hex", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, res.StatusCode)
	m.logs.AssertNotCalled(t, "List", mock.Anything, mock.Anything, mock.Anything)
}

func TestAdminSettingsConcurrentAccess(t *testing.T) {
	h, _ := newAdminHandler()

	app := newTestApp(adminUser())
	app.Get("/api/admin/settings", h.Settings)
	app.Put("/api/admin/settings", h.UpdateSettings)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := app.Test(jsonRequest(http.MethodPut, "/api/admin/settings",
				dto.SystemSettings{SiteName: "City Hall", Theme: "dark"}))
			assert.NoError(t, err)
			if res != nil {
				assert.Equal(t, http.StatusOK, res.StatusCode)
			}
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := app.Test(jsonRequest(http.MethodGet, "/api/admin/settings", nil))
			assert.NoError(t, err)
			if res != nil {
				assert.Equal(t, http.StatusOK, res.StatusCode)
			}
		}()
	}
	wg.Wait()

	res, err := app.Test(jsonRequest(http.MethodGet, "/api/admin/settings", nil))
	require.NoError(t, err)
	envelope := decodeResponse(t, res)
	data, ok := envelope.Data.(map[string]any)
	require.True(t, ok)
	require.Equal(t, "City Hall", data["siteName"])
}
