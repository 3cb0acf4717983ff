// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"intranet-backend/dto"
	"intranet-backend/internal/models"
)

type UserRepositoryMock struct {
	mock.Mock
}

func (m *UserRepositoryMock) Insert(ctx context.Context, u models.User) (bson.ObjectID, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(bson.ObjectID), args.Error(1)
}

func (m *UserRepositoryMock) FindByID(ctx context.Context, id bson.ObjectID) (models.User, error) {
	args := m.Called(ctx, id)
	var u models.User
	if val := args.Get(0); val != nil {
		u = val.(models.User)
	}
	return u, args.Error(1)
}

func (m *UserRepositoryMock) FindByEmail(ctx context.Context, email string) (models.User, error) {
	args := m.Called(ctx, email)
	var u models.User
	if val := args.Get(0); val != nil {
		u = val.(models.User)
	}
	return u, args.Error(1)
}

func (m *UserRepositoryMock) FindByResetToken(ctx context.Context, tokenHash string, now time.Time) (models.User, error) {
	args := m.Called(ctx, tokenHash, now)
	var u models.User
	if val := args.Get(0); val != nil {
		u = val.(models.User)
	}
	return u, args.Error(1)
}

func (m *UserRepositoryMock) List(ctx context.Context, q dto.PageQuery) ([]models.User, int64, error) {
	args := m.Called(ctx, q)
	var users []models.User
	if val := args.Get(0); val != nil {
		users = val.([]models.User)
	}
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *UserRepositoryMock) ListByDepartment(ctx context.Context, department bson.ObjectID) ([]models.User, error) {
	args := m.Called(ctx, department)
	var users []models.User
	if val := args.Get(0); val != nil {
		users = val.([]models.User)
	}
	return users, args.Error(1)
}

func (m *UserRepositoryMock) ListAll(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	var users []models.User
	if val := args.Get(0); val != nil {
		users = val.([]models.User)
	}
	return users, args.Error(1)
}

func (m *UserRepositoryMock) Update(ctx context.Context, id bson.ObjectID, set bson.M, unset bson.M) (models.User, error) {
	args := m.Called(ctx, id, set, unset)
	var u models.User
	if val := args.Get(0); val != nil {
		u = val.(models.User)
	}
	return u, args.Error(1)
}

func (m *UserRepositoryMock) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *UserRepositoryMock) Count(ctx context.Context, filter bson.M) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *UserRepositoryMock) TouchLastActive(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type PostRepositoryMock struct {
	mock.Mock
}

func (m *PostRepositoryMock) Insert(ctx context.Context, p models.Post) (bson.ObjectID, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(bson.ObjectID), args.Error(1)
}

func (m *PostRepositoryMock) FindByID(ctx context.Context, id bson.ObjectID) (models.Post, error) {
	args := m.Called(ctx, id)
	var p models.Post
	if val := args.Get(0); val != nil {
		p = val.(models.Post)
	}
	return p, args.Error(1)
}

func (m *PostRepositoryMock) List(ctx context.Context, filter bson.M, q dto.PageQuery) ([]models.Post, int64, error) {
	args := m.Called(ctx, filter, q)
	var posts []models.Post
	if val := args.Get(0); val != nil {
		posts = val.([]models.Post)
	}
	return posts, args.Get(1).(int64), args.Error(2)
}

func (m *PostRepositoryMock) Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.Post, error) {
	args := m.Called(ctx, id, set)
	var p models.Post
	if val := args.Get(0); val != nil {
		p = val.(models.Post)
	}
	return p, args.Error(1)
}

func (m *PostRepositoryMock) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *PostRepositoryMock) AddLike(ctx context.Context, id, user bson.ObjectID) error {
	args := m.Called(ctx, id, user)
	return args.Error(0)
}

func (m *PostRepositoryMock) RemoveLike(ctx context.Context, id, user bson.ObjectID) error {
	args := m.Called(ctx, id, user)
	return args.Error(0)
}

func (m *PostRepositoryMock) PushComment(ctx context.Context, id, comment bson.ObjectID) error {
	args := m.Called(ctx, id, comment)
	return args.Error(0)
}

func (m *PostRepositoryMock) PullComment(ctx context.Context, id, comment bson.ObjectID) error {
	args := m.Called(ctx, id, comment)
	return args.Error(0)
}

func (m *PostRepositoryMock) Count(ctx context.Context, filter bson.M) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type CommentRepositoryMock struct {
	mock.Mock
}

func (m *CommentRepositoryMock) Insert(ctx context.Context, c models.Comment) (bson.ObjectID, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(bson.ObjectID), args.Error(1)
}

func (m *CommentRepositoryMock) FindByID(ctx context.Context, id bson.ObjectID) (models.Comment, error) {
	args := m.Called(ctx, id)
	var c models.Comment
	if val := args.Get(0); val != nil {
		c = val.(models.Comment)
	}
	return c, args.Error(1)
}

func (m *CommentRepositoryMock) ListByPost(ctx context.Context, post bson.ObjectID) ([]models.Comment, error) {
	args := m.Called(ctx, post)
	var comments []models.Comment
	if val := args.Get(0); val != nil {
		comments = val.([]models.Comment)
	}
	return comments, args.Error(1)
}

func (m *CommentRepositoryMock) Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.Comment, error) {
	args := m.Called(ctx, id, set)
	var c models.Comment
	if val := args.Get(0); val != nil {
		c = val.(models.Comment)
	}
	return c, args.Error(1)
}

func (m *CommentRepositoryMock) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *CommentRepositoryMock) DeleteByPost(ctx context.Context, post bson.ObjectID) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *CommentRepositoryMock) AddLike(ctx context.Context, id, user bson.ObjectID) error {
	args := m.Called(ctx, id, user)
	return args.Error(0)
}

func (m *CommentRepositoryMock) RemoveLike(ctx context.Context, id, user bson.ObjectID) error {
	args := m.Called(ctx, id, user)
	return args.Error(0)
}

type GroupRepositoryMock struct {
	mock.Mock
}

func (m *GroupRepositoryMock) Insert(ctx context.Context, g models.Group) (bson.ObjectID, error) {
	args := m.Called(ctx, g)
	return args.Get(0).(bson.ObjectID), args.Error(1)
}

func (m *GroupRepositoryMock) FindByID(ctx context.Context, id bson.ObjectID) (models.Group, error) {
	args := m.Called(ctx, id)
	var g models.Group
	if val := args.Get(0); val != nil {
		g = val.(models.Group)
	}
	return g, args.Error(1)
}

func (m *GroupRepositoryMock) List(ctx context.Context, filter bson.M, q dto.PageQuery) ([]models.Group, int64, error) {
	args := m.Called(ctx, filter, q)
	var groups []models.Group
	if val := args.Get(0); val != nil {
		groups = val.([]models.Group)
	}
	return groups, args.Get(1).(int64), args.Error(2)
}

func (m *GroupRepositoryMock) Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.Group, error) {
	args := m.Called(ctx, id, set)
	var g models.Group
	if val := args.Get(0); val != nil {
		g = val.(models.Group)
	}
	return g, args.Error(1)
}

func (m *GroupRepositoryMock) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *GroupRepositoryMock) PushMember(ctx context.Context, id, member bson.ObjectID) error {
	args := m.Called(ctx, id, member)
	return args.Error(0)
}

func (m *GroupRepositoryMock) PullMember(ctx context.Context, id, member bson.ObjectID) error {
	args := m.Called(ctx, id, member)
	return args.Error(0)
}

func (m *GroupRepositoryMock) Count(ctx context.Context, filter bson.M) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type GroupMemberRepositoryMock struct {
	mock.Mock
}

func (m *GroupMemberRepositoryMock) Insert(ctx context.Context, member models.GroupMember) (bson.ObjectID, error) {
	args := m.Called(ctx, member)
	return args.Get(0).(bson.ObjectID), args.Error(1)
}

func (m *GroupMemberRepositoryMock) FindByID(ctx context.Context, id bson.ObjectID) (models.GroupMember, error) {
	args := m.Called(ctx, id)
	var member models.GroupMember
	if val := args.Get(0); val != nil {
		member = val.(models.GroupMember)
	}
	return member, args.Error(1)
}

func (m *GroupMemberRepositoryMock) Find(ctx context.Context, group, user bson.ObjectID) (models.GroupMember, error) {
	args := m.Called(ctx, group, user)
	var member models.GroupMember
	if val := args.Get(0); val != nil {
		member = val.(models.GroupMember)
	}
	return member, args.Error(1)
}

func (m *GroupMemberRepositoryMock) ListByGroup(ctx context.Context, group bson.ObjectID, q dto.PageQuery) ([]models.GroupMember, int64, error) {
	args := m.Called(ctx, group, q)
	var members []models.GroupMember
	if val := args.Get(0); val != nil {
		members = val.([]models.GroupMember)
	}
	return members, args.Get(1).(int64), args.Error(2)
}

func (m *GroupMemberRepositoryMock) ListByUser(ctx context.Context, user bson.ObjectID) ([]models.GroupMember, error) {
	args := m.Called(ctx, user)
	var members []models.GroupMember
	if val := args.Get(0); val != nil {
		members = val.([]models.GroupMember)
	}
	return members, args.Error(1)
}

func (m *GroupMemberRepositoryMock) UpdateRole(ctx context.Context, id bson.ObjectID, role string) (models.GroupMember, error) {
	args := m.Called(ctx, id, role)
	var member models.GroupMember
	if val := args.Get(0); val != nil {
		member = val.(models.GroupMember)
	}
	return member, args.Error(1)
}

func (m *GroupMemberRepositoryMock) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *GroupMemberRepositoryMock) DeleteByGroup(ctx context.Context, group bson.ObjectID) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *GroupMemberRepositoryMock) CountAdmins(ctx context.Context, group bson.ObjectID) (int64, error) {
	args := m.Called(ctx, group)
	return args.Get(0).(int64), args.Error(1)
}

type ChatRepositoryMock struct {
	mock.Mock
}

func (m *ChatRepositoryMock) Insert(ctx context.Context, c models.Chat) (bson.ObjectID, error) {
	args := m.Called(ctx, c)
	return args.Get(0).(bson.ObjectID), args.Error(1)
}

func (m *ChatRepositoryMock) FindByID(ctx context.Context, id bson.ObjectID) (models.Chat, error) {
	args := m.Called(ctx, id)
	var c models.Chat
	if val := args.Get(0); val != nil {
		c = val.(models.Chat)
	}
	return c, args.Error(1)
}

func (m *ChatRepositoryMock) FindDirect(ctx context.Context, a, b bson.ObjectID) (models.Chat, error) {
	args := m.Called(ctx, a, b)
	var c models.Chat
	if val := args.Get(0); val != nil {
		c = val.(models.Chat)
	}
	return c, args.Error(1)
}

func (m *ChatRepositoryMock) ListByParticipant(ctx context.Context, user bson.ObjectID) ([]models.Chat, error) {
	args := m.Called(ctx, user)
	var chats []models.Chat
	if val := args.Get(0); val != nil {
		chats = val.([]models.Chat)
	}
	return chats, args.Error(1)
}

func (m *ChatRepositoryMock) Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.Chat, error) {
	args := m.Called(ctx, id, set)
	var c models.Chat
	if val := args.Get(0); val != nil {
		c = val.(models.Chat)
	}
	return c, args.Error(1)
}

func (m *ChatRepositoryMock) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ChatRepositoryMock) SetLastMessage(ctx context.Context, id bson.ObjectID, message *bson.ObjectID) error {
	args := m.Called(ctx, id, message)
	return args.Error(0)
}

type MessageRepositoryMock struct {
	mock.Mock
}

func (m *MessageRepositoryMock) Insert(ctx context.Context, msg models.Message) (bson.ObjectID, error) {
	args := m.Called(ctx, msg)
	return args.Get(0).(bson.ObjectID), args.Error(1)
}

func (m *MessageRepositoryMock) FindByID(ctx context.Context, id bson.ObjectID) (models.Message, error) {
	args := m.Called(ctx, id)
	var msg models.Message
	if val := args.Get(0); val != nil {
		msg = val.(models.Message)
	}
	return msg, args.Error(1)
}

func (m *MessageRepositoryMock) ListByChat(ctx context.Context, chat bson.ObjectID, q dto.PageQuery) ([]models.Message, int64, error) {
	args := m.Called(ctx, chat, q)
	var messages []models.Message
	if val := args.Get(0); val != nil {
		messages = val.([]models.Message)
	}
	return messages, args.Get(1).(int64), args.Error(2)
}

func (m *MessageRepositoryMock) FindLatestExcept(ctx context.Context, chat, except bson.ObjectID) (models.Message, error) {
	args := m.Called(ctx, chat, except)
	var msg models.Message
	if val := args.Get(0); val != nil {
		msg = val.(models.Message)
	}
	return msg, args.Error(1)
}

func (m *MessageRepositoryMock) Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.Message, error) {
	args := m.Called(ctx, id, set)
	var msg models.Message
	if val := args.Get(0); val != nil {
		msg = val.(models.Message)
	}
	return msg, args.Error(1)
}

func (m *MessageRepositoryMock) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MessageRepositoryMock) DeleteByChat(ctx context.Context, chat bson.ObjectID) error {
	args := m.Called(ctx, chat)
	return args.Error(0)
}

func (m *MessageRepositoryMock) MarkAllRead(ctx context.Context, chat, user bson.ObjectID) error {
	args := m.Called(ctx, chat, user)
	return args.Error(0)
}

type NotificationRepositoryMock struct {
	mock.Mock
}

func (m *NotificationRepositoryMock) Insert(ctx context.Context, n models.Notification) (bson.ObjectID, error) {
	args := m.Called(ctx, n)
	return args.Get(0).(bson.ObjectID), args.Error(1)
}

func (m *NotificationRepositoryMock) FindByID(ctx context.Context, id bson.ObjectID) (models.Notification, error) {
	args := m.Called(ctx, id)
	var n models.Notification
	if val := args.Get(0); val != nil {
		n = val.(models.Notification)
	}
	return n, args.Error(1)
}

func (m *NotificationRepositoryMock) ListByRecipient(ctx context.Context, user bson.ObjectID, q dto.PageQuery) ([]models.Notification, int64, error) {
	args := m.Called(ctx, user, q)
	var items []models.Notification
	if val := args.Get(0); val != nil {
		items = val.([]models.Notification)
	}
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *NotificationRepositoryMock) CountUnread(ctx context.Context, user bson.ObjectID) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationRepositoryMock) MarkRead(ctx context.Context, id bson.ObjectID) (models.Notification, error) {
	args := m.Called(ctx, id)
	var n models.Notification
	if val := args.Get(0); val != nil {
		n = val.(models.Notification)
	}
	return n, args.Error(1)
}

func (m *NotificationRepositoryMock) MarkAllRead(ctx context.Context, user bson.ObjectID) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *NotificationRepositoryMock) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type FileRepositoryMock struct {
	mock.Mock
}

func (m *FileRepositoryMock) Insert(ctx context.Context, f models.File) (bson.ObjectID, error) {
	args := m.Called(ctx, f)
	return args.Get(0).(bson.ObjectID), args.Error(1)
}

func (m *FileRepositoryMock) FindByID(ctx context.Context, id bson.ObjectID) (models.File, error) {
	args := m.Called(ctx, id)
	var f models.File
	if val := args.Get(0); val != nil {
		f = val.(models.File)
	}
	return f, args.Error(1)
}

func (m *FileRepositoryMock) List(ctx context.Context, filter bson.M, q dto.PageQuery) ([]models.File, int64, error) {
	args := m.Called(ctx, filter, q)
	var files []models.File
	if val := args.Get(0); val != nil {
		files = val.([]models.File)
	}
	return files, args.Get(1).(int64), args.Error(2)
}

func (m *FileRepositoryMock) Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.File, error) {
	args := m.Called(ctx, id, set)
	var f models.File
	if val := args.Get(0); val != nil {
		f = val.(models.File)
	}
	return f, args.Error(1)
}

func (m *FileRepositoryMock) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *FileRepositoryMock) Share(ctx context.Context, id bson.ObjectID, users []bson.ObjectID) error {
	args := m.Called(ctx, id, users)
	return args.Error(0)
}

func (m *FileRepositoryMock) Count(ctx context.Context, filter bson.M) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type EventRepositoryMock struct {
	mock.Mock
}

func (m *EventRepositoryMock) Insert(ctx context.Context, e models.Event) (bson.ObjectID, error) {
	args := m.Called(ctx, e)
	return args.Get(0).(bson.ObjectID), args.Error(1)
}

func (m *EventRepositoryMock) FindByID(ctx context.Context, id bson.ObjectID) (models.Event, error) {
	args := m.Called(ctx, id)
	var e models.Event
	if val := args.Get(0); val != nil {
		e = val.(models.Event)
	}
	return e, args.Error(1)
}

func (m *EventRepositoryMock) List(ctx context.Context, filter bson.M, q dto.PageQuery) ([]models.Event, int64, error) {
	args := m.Called(ctx, filter, q)
	var events []models.Event
	if val := args.Get(0); val != nil {
		events = val.([]models.Event)
	}
	return events, args.Get(1).(int64), args.Error(2)
}

func (m *EventRepositoryMock) ListBetween(ctx context.Context, user bson.ObjectID, from, to time.Time) ([]models.Event, error) {
	args := m.Called(ctx, user, from, to)
	var events []models.Event
	if val := args.Get(0); val != nil {
		events = val.([]models.Event)
	}
	return events, args.Error(1)
}

func (m *EventRepositoryMock) Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.Event, error) {
	args := m.Called(ctx, id, set)
	var e models.Event
	if val := args.Get(0); val != nil {
		e = val.(models.Event)
	}
	return e, args.Error(1)
}

func (m *EventRepositoryMock) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *EventRepositoryMock) AddAttendee(ctx context.Context, id, user bson.ObjectID) error {
	args := m.Called(ctx, id, user)
	return args.Error(0)
}

func (m *EventRepositoryMock) RemoveAttendee(ctx context.Context, id, user bson.ObjectID) error {
	args := m.Called(ctx, id, user)
	return args.Error(0)
}

func (m *EventRepositoryMock) Count(ctx context.Context, filter bson.M) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type QuickAccessRepositoryMock struct {
	mock.Mock
}

func (m *QuickAccessRepositoryMock) Insert(ctx context.Context, item models.QuickAccessItem) (bson.ObjectID, error) {
	args := m.Called(ctx, item)
	return args.Get(0).(bson.ObjectID), args.Error(1)
}

func (m *QuickAccessRepositoryMock) FindByID(ctx context.Context, id bson.ObjectID) (models.QuickAccessItem, error) {
	args := m.Called(ctx, id)
	var item models.QuickAccessItem
	if val := args.Get(0); val != nil {
		item = val.(models.QuickAccessItem)
	}
	return item, args.Error(1)
}

func (m *QuickAccessRepositoryMock) ListByUser(ctx context.Context, user bson.ObjectID) ([]models.QuickAccessItem, error) {
	args := m.Called(ctx, user)
	var items []models.QuickAccessItem
	if val := args.Get(0); val != nil {
		items = val.([]models.QuickAccessItem)
	}
	return items, args.Error(1)
}

func (m *QuickAccessRepositoryMock) Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.QuickAccessItem, error) {
	args := m.Called(ctx, id, set)
	var item models.QuickAccessItem
	if val := args.Get(0); val != nil {
		item = val.(models.QuickAccessItem)
	}
	return item, args.Error(1)
}

func (m *QuickAccessRepositoryMock) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *QuickAccessRepositoryMock) MaxOrder(ctx context.Context, user bson.ObjectID) (int, error) {
	args := m.Called(ctx, user)
	return args.Int(0), args.Error(1)
}

func (m *QuickAccessRepositoryMock) SetOrder(ctx context.Context, id, user bson.ObjectID, order int) error {
	args := m.Called(ctx, id, user, order)
	return args.Error(0)
}

type NewsRepositoryMock struct {
	mock.Mock
}

func (m *NewsRepositoryMock) Insert(ctx context.Context, n models.News) (bson.ObjectID, error) {
	args := m.Called(ctx, n)
	return args.Get(0).(bson.ObjectID), args.Error(1)
}

func (m *NewsRepositoryMock) FindByID(ctx context.Context, id bson.ObjectID) (models.News, error) {
	args := m.Called(ctx, id)
	var item models.News
	if val := args.Get(0); val != nil {
		item = val.(models.News)
	}
	return item, args.Error(1)
}

func (m *NewsRepositoryMock) List(ctx context.Context, filter bson.M, q dto.PageQuery) ([]models.News, int64, error) {
	args := m.Called(ctx, filter, q)
	var items []models.News
	if val := args.Get(0); val != nil {
		items = val.([]models.News)
	}
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *NewsRepositoryMock) ListFeatured(ctx context.Context, limit int64) ([]models.News, error) {
	args := m.Called(ctx, limit)
	var items []models.News
	if val := args.Get(0); val != nil {
		items = val.([]models.News)
	}
	return items, args.Error(1)
}

func (m *NewsRepositoryMock) Categories(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	var categories []string
	if val := args.Get(0); val != nil {
		categories = val.([]string)
	}
	return categories, args.Error(1)
}

func (m *NewsRepositoryMock) Update(ctx context.Context, id bson.ObjectID, set bson.M) (models.News, error) {
	args := m.Called(ctx, id, set)
	var item models.News
	if val := args.Get(0); val != nil {
		item = val.(models.News)
	}
	return item, args.Error(1)
}

func (m *NewsRepositoryMock) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *NewsRepositoryMock) Count(ctx context.Context, filter bson.M) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type ActivityLogRepositoryMock struct {
	mock.Mock
}

func (m *ActivityLogRepositoryMock) Insert(ctx context.Context, entry models.ActivityLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityLogRepositoryMock) List(ctx context.Context, filter bson.M, q dto.PageQuery) ([]models.ActivityLog, int64, error) {
	args := m.Called(ctx, filter, q)
	var entries []models.ActivityLog
	if val := args.Get(0); val != nil {
		entries = val.([]models.ActivityLog)
	}
	return entries, args.Get(1).(int64), args.Error(2)
}

func (m *ActivityLogRepositoryMock) Recent(ctx context.Context, limit int64) ([]models.ActivityLog, error) {
	args := m.Called(ctx, limit)
	var entries []models.ActivityLog
	if val := args.Get(0); val != nil {
		entries = val.([]models.ActivityLog)
	}
	return entries, args.Error(1)
}
