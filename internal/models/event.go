package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// RecurringPattern is stored as a descriptor only; occurrence expansion
// is left to clients.
type RecurringPattern struct {
	Frequency string     `json:"frequency"         bson:"frequency"`
	Interval  int        `json:"interval"          bson:"interval"`
	EndDate   *time.Time `json:"endDate,omitempty" bson:"end_date,omitempty"`
}

type Event struct {
	ID               bson.ObjectID     `json:"id"                         bson:"_id,omitempty"`
	Title            string            `json:"title"                      bson:"title"`
	Description      string            `json:"description"                bson:"description"`
	Location         string            `json:"location,omitempty"         bson:"location,omitempty"`
	StartDate        time.Time         `json:"startDate"                  bson:"start_date"`
	EndDate          time.Time         `json:"endDate"                    bson:"end_date"`
	Creator          bson.ObjectID     `json:"creator"                    bson:"creator"`
	Attendees        []bson.ObjectID   `json:"attendees"                  bson:"attendees"`
	Department       *bson.ObjectID    `json:"department,omitempty"       bson:"department,omitempty"`
	Group            *bson.ObjectID    `json:"group,omitempty"            bson:"group,omitempty"`
	IsAllDay         bool              `json:"isAllDay"                   bson:"is_all_day"`
	IsRecurring      bool              `json:"isRecurring"                bson:"is_recurring"`
	RecurringPattern *RecurringPattern `json:"recurringPattern,omitempty" bson:"recurring_pattern,omitempty"`
	Color            string            `json:"color"                      bson:"color"`
	CreatedAt        time.Time         `json:"createdAt"                  bson:"created_at"`
	UpdatedAt        time.Time         `json:"updatedAt"                  bson:"updated_at"`
}

// Attending reports whether userID is in the attendee set.
func (e *Event) Attending(userID bson.ObjectID) bool {
	for _, id := range e.Attendees {
		if id == userID {
			return true
		}
	}
	return false
}
