package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"intranet-backend/dto"
	"intranet-backend/internal/middleware"
	"intranet-backend/internal/models"
	"intranet-backend/internal/notify"
	"intranet-backend/internal/repositories"
)

// messageEditWindow bounds how long a sender may edit a message.
const messageEditWindow = 5 * time.Minute

type ChatHandler struct {
	Chats    repositories.ChatRepository
	Messages repositories.MessageRepository
	Users    repositories.UserRepository
	Uploader *middleware.Uploader
	Notifier *notify.Notifier
}

func NewChatHandler(chats repositories.ChatRepository, messages repositories.MessageRepository, users repositories.UserRepository, uploader *middleware.Uploader, notifier *notify.Notifier) *ChatHandler {
	return &ChatHandler{Chats: chats, Messages: messages, Users: users, Uploader: uploader, Notifier: notifier}
}

// @Summary List the caller's chats
// @Tags chats
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /chats [get]
func (h *ChatHandler) List(c *fiber.Ctx) error {
	chats, err := h.Chats.ListByParticipant(c.Context(), uidFrom(c))
	if err != nil {
		return err
	}

	views := make([]dto.ChatView, 0, len(chats))
	for _, chat := range chats {
		views = append(views, h.view(c, chat))
	}
	return c.JSON(dto.OKList(views, len(views)))
}

// @Summary Get a chat
// @Tags chats
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /chats/{id} [get]
func (h *ChatHandler) Get(c *fiber.Ctx) error {
	chat, err := h.participantChat(c)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(h.view(c, chat)))
}

// @Summary Start a chat
// @Tags chats
// @Accept json
// @Produce json
// @Success 201 {object} dto.Response
// @Router /chats [post]
//
// Creating a 1:1 chat that already exists returns the existing chat.
func (h *ChatHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateChatRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	uid := uidFrom(c)
	participants := []bson.ObjectID{uid}
	for _, raw := range body.Participants {
		id, err := bson.ObjectIDFromHex(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid participant id")
		}
		if id == uid {
			continue
		}
		if _, err := h.Users.FindByID(c.Context(), id); err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Participant not found")
		}
		participants = append(participants, id)
	}
	if len(participants) < 2 {
		return fiber.NewError(fiber.StatusBadRequest, "Chat needs at least one other participant")
	}

	if !body.IsGroup {
		if len(participants) != 2 {
			return fiber.NewError(fiber.StatusBadRequest, "Direct chats have exactly two participants")
		}
		if existing, err := h.Chats.FindDirect(c.Context(), participants[0], participants[1]); err == nil {
			return c.JSON(dto.OK(h.view(c, existing)))
		}
	}

	chat := models.Chat{
		Participants: participants,
		IsGroup:      body.IsGroup,
		Name:         body.Name,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	id, err := h.Chats.Insert(c.Context(), chat)
	if err != nil {
		return err
	}
	chat.ID = id
	return c.Status(fiber.StatusCreated).JSON(dto.OK(h.view(c, chat)))
}

// @Summary Rename a group chat
// @Tags chats
// @Accept json
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /chats/{id} [put]
func (h *ChatHandler) Update(c *fiber.Ctx) error {
	chat, err := h.participantChat(c)
	if err != nil {
		return err
	}
	if !chat.IsGroup {
		return fiber.NewError(fiber.StatusBadRequest, "Direct chats cannot be renamed")
	}

	var body dto.UpdateChatRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	updated, err := h.Chats.Update(c.Context(), chat.ID, bson.M{
		"name":       body.Name,
		"updated_at": time.Now(),
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(updated))
}

// @Summary Delete a chat
// @Tags chats
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /chats/{id} [delete]
func (h *ChatHandler) Delete(c *fiber.Ctx) error {
	chat, err := h.participantChat(c)
	if err != nil {
		return err
	}

	if err := h.Messages.DeleteByChat(c.Context(), chat.ID); err != nil {
		return err
	}
	if err := h.Chats.Delete(c.Context(), chat.ID); err != nil {
		return err
	}
	return c.JSON(dto.OKMessage("Chat deleted", nil))
}

// @Summary List messages in a chat
// @Tags chats
// @Produce json
// @Param id path string true "Object id"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /chats/{id}/messages [get]
func (h *ChatHandler) ListMessages(c *fiber.Ctx) error {
	chat, err := h.participantChat(c)
	if err != nil {
		return err
	}

	q := parsePageLimit(c, 20)
	messages, total, err := h.Messages.ListByChat(c.Context(), chat.ID, q)
	if err != nil {
		return err
	}

	views := make([]dto.MessageView, 0, len(messages))
	for _, message := range messages {
		view := dto.MessageView{Message: message}
		if sender, err := h.Users.FindByID(c.Context(), message.Sender); err == nil {
			brief := dto.BriefOf(sender)
			view.SenderInfo = &brief
		}
		views = append(views, view)
	}
	return c.JSON(dto.OKPage(views, q.Paginate(total)))
}

// @Summary Send a message
// @Tags chats
// @Accept json
// @Produce json
// @Param id path string true "Object id"
// @Success 201 {object} dto.Response
// @Router /chats/{id}/messages [post]
func (h *ChatHandler) SendMessage(c *fiber.Ctx) error {
	chat, err := h.participantChat(c)
	if err != nil {
		return err
	}

	var body dto.SendMessageRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	uploads, err := h.Uploader.SaveAll(c, "media", middleware.CategoryMessage)
	if err != nil {
		return err
	}
	body.Media = append(body.Media, uploads...)
	if body.Content == "" && len(body.Media) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Message needs content or media")
	}

	uid := uidFrom(c)
	message := models.Message{
		Chat:      chat.ID,
		Sender:    uid,
		Content:   body.Content,
		Media:     body.Media,
		ReadBy:    []bson.ObjectID{uid},
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	id, err := h.Messages.Insert(c.Context(), message)
	if err != nil {
		return err
	}
	if err := h.Chats.SetLastMessage(c.Context(), chat.ID, &id); err != nil {
		return err
	}

	h.Notifier.Fanout(c.Context(), uid, chat.Participants, notify.TypeMessage,
		userFrom(c).Name+" sent you a message",
		models.EntityRef{Type: "chat", ID: chat.ID})

	message.ID = id
	return c.Status(fiber.StatusCreated).JSON(dto.OK(message))
}

// @Summary Edit a message
// @Tags chats
// @Accept json
// @Produce json
// @Param id path string true "Object id"
// @Param messageId path string true "Message id"
// @Success 200 {object} dto.Response
// @Router /chats/{id}/messages/{messageId} [put]
func (h *ChatHandler) EditMessage(c *fiber.Ctx) error {
	if _, err := h.participantChat(c); err != nil {
		return err
	}
	mid, err := paramID(c, "messageId")
	if err != nil {
		return err
	}
	message, err := h.Messages.FindByID(c.Context(), mid)
	if err != nil {
		return err
	}
	if message.Sender != uidFrom(c) {
		return fiber.NewError(fiber.StatusForbidden, "Only the sender can edit a message")
	}
	if time.Since(message.CreatedAt) > messageEditWindow {
		return fiber.NewError(fiber.StatusBadRequest, "Messages can only be edited within 5 minutes")
	}

	var body dto.UpdateMessageRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	updated, err := h.Messages.Update(c.Context(), mid, bson.M{
		"content":    body.Content,
		"is_edited":  true,
		"updated_at": time.Now(),
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(updated))
}

// @Summary Delete a message
// @Tags chats
// @Produce json
// @Param id path string true "Object id"
// @Param messageId path string true "Message id"
// @Success 200 {object} dto.Response
// @Router /chats/{id}/messages/{messageId} [delete]
func (h *ChatHandler) DeleteMessage(c *fiber.Ctx) error {
	chat, err := h.participantChat(c)
	if err != nil {
		return err
	}
	mid, err := paramID(c, "messageId")
	if err != nil {
		return err
	}
	message, err := h.Messages.FindByID(c.Context(), mid)
	if err != nil {
		return err
	}
	if message.Sender != uidFrom(c) {
		return fiber.NewError(fiber.StatusForbidden, "Only the sender can delete a message")
	}

	if err := h.Messages.Delete(c.Context(), mid); err != nil {
		return err
	}

	if chat.LastMessage != nil && *chat.LastMessage == mid {
		latest, err := h.Messages.FindLatestExcept(c.Context(), chat.ID, mid)
		if err != nil {
			if !repositories.IsNotFound(err) {
				return err
			}
			if err := h.Chats.SetLastMessage(c.Context(), chat.ID, nil); err != nil {
				return err
			}
		} else if err := h.Chats.SetLastMessage(c.Context(), chat.ID, &latest.ID); err != nil {
			return err
		}
	}
	return c.JSON(dto.OKMessage("Message deleted", nil))
}

// @Summary Mark a chat as read
// @Tags chats
// @Accept json
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /chats/{id}/read [post]
func (h *ChatHandler) MarkRead(c *fiber.Ctx) error {
	chat, err := h.participantChat(c)
	if err != nil {
		return err
	}
	if err := h.Messages.MarkAllRead(c.Context(), chat.ID, uidFrom(c)); err != nil {
		return err
	}
	return c.JSON(dto.OKMessage("Messages marked as read", nil))
}

// participantChat loads the chat from the route and enforces the
// participant gate.
func (h *ChatHandler) participantChat(c *fiber.Ctx) (models.Chat, error) {
	id, err := paramID(c, "id")
	if err != nil {
		return models.Chat{}, err
	}
	chat, err := h.Chats.FindByID(c.Context(), id)
	if err != nil {
		return models.Chat{}, err
	}
	if !chat.HasParticipant(uidFrom(c)) {
		return models.Chat{}, fiber.NewError(fiber.StatusForbidden, "Not a participant of this chat")
	}
	return chat, nil
}

func (h *ChatHandler) view(c *fiber.Ctx, chat models.Chat) dto.ChatView {
	view := dto.ChatView{Chat: chat}
	for _, pid := range chat.Participants {
		if user, err := h.Users.FindByID(c.Context(), pid); err == nil {
			view.ParticipantInfo = append(view.ParticipantInfo, dto.BriefOf(user))
		}
	}
	if chat.LastMessage != nil {
		if message, err := h.Messages.FindByID(c.Context(), *chat.LastMessage); err == nil {
			view.LastMessageInfo = &message
		}
	}
	return view
}
