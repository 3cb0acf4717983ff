package dto

import (
	"time"

	"intranet-backend/internal/models"
)

type RecurringPatternRequest struct {
	Frequency string     `json:"frequency" validate:"required,oneof=daily weekly monthly yearly"`
	Interval  int        `json:"interval"  validate:"omitempty,min=1"`
	EndDate   *time.Time `json:"endDate,omitempty"`
}

type CreateEventRequest struct {
	Title            string                   `json:"title"       validate:"required,max=100"`
	Description      string                   `json:"description" validate:"required"`
	Location         string                   `json:"location,omitempty"`
	StartDate        time.Time                `json:"startDate"   validate:"required"`
	EndDate          time.Time                `json:"endDate"     validate:"required"`
	Department       string                   `json:"department,omitempty"`
	Group            string                   `json:"group,omitempty"`
	IsAllDay         bool                     `json:"isAllDay"`
	IsRecurring      bool                     `json:"isRecurring"`
	RecurringPattern *RecurringPatternRequest `json:"recurringPattern,omitempty"`
	Color            string                   `json:"color,omitempty"`
}

type UpdateEventRequest struct {
	Title            string                   `json:"title,omitempty" validate:"omitempty,max=100"`
	Description      string                   `json:"description,omitempty"`
	Location         string                   `json:"location,omitempty"`
	StartDate        *time.Time               `json:"startDate,omitempty"`
	EndDate          *time.Time               `json:"endDate,omitempty"`
	IsAllDay         *bool                    `json:"isAllDay,omitempty"`
	IsRecurring      *bool                    `json:"isRecurring,omitempty"`
	RecurringPattern *RecurringPatternRequest `json:"recurringPattern,omitempty"`
	Color            string                   `json:"color,omitempty"`
}

type EventView struct {
	models.Event
	CreatorInfo   *UserBrief  `json:"creatorInfo,omitempty"`
	AttendeeInfo  []UserBrief `json:"attendeeInfo,omitempty"`
	AttendeeCount int         `json:"attendeeCount"`
}
