package dto

import "intranet-backend/internal/models"

type CreateChatRequest struct {
	Participants []string `json:"participants" validate:"required,min=1,dive,required"`
	IsGroup      bool     `json:"isGroup"`
	Name         string   `json:"name,omitempty" validate:"required_if=IsGroup true"`
}

type UpdateChatRequest struct {
	Name string `json:"name" validate:"required"`
}

type ChatView struct {
	models.Chat
	ParticipantInfo []UserBrief     `json:"participantInfo,omitempty"`
	LastMessageInfo *models.Message `json:"lastMessageInfo,omitempty"`
}

type SendMessageRequest struct {
	Content string   `json:"content,omitempty" form:"content"`
	Media   []string `json:"media,omitempty"   form:"-"`
}

type UpdateMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

type MessageView struct {
	models.Message
	SenderInfo *UserBrief `json:"senderInfo,omitempty"`
}
