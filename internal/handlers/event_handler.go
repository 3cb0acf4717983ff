package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/v2/bson"

	"intranet-backend/dto"
	"intranet-backend/internal/models"
	"intranet-backend/internal/notify"
	"intranet-backend/internal/repositories"
)

type EventHandler struct {
	Events   repositories.EventRepository
	Users    repositories.UserRepository
	Notifier *notify.Notifier
}

func NewEventHandler(events repositories.EventRepository, users repositories.UserRepository, notifier *notify.Notifier) *EventHandler {
	return &EventHandler{Events: events, Users: users, Notifier: notifier}
}

// @Summary List events
// @Tags events
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Response
// @Router /events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	q := parsePage(c)
	filter := bson.M{}
	if raw := c.Query("from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid from date")
		}
		filter["end_date"] = bson.M{"$gte": from}
	}
	if raw := c.Query("to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid to date")
		}
		filter["start_date"] = bson.M{"$lte": to}
	}

	events, total, err := h.Events.List(c.Context(), filter, q)
	if err != nil {
		return err
	}

	views := make([]dto.EventView, 0, len(events))
	for _, event := range events {
		views = append(views, h.view(c, event, false))
	}
	return c.JSON(dto.OKPage(views, q.Paginate(total)))
}

// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	event, err := h.Events.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.OK(h.view(c, event, true)))
}

// @Summary Create an event
// @Tags events
// @Accept json
// @Produce json
// @Success 201 {object} dto.Response
// @Router /events [post]
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var body dto.CreateEventRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}
	if body.EndDate.Before(body.StartDate) {
		return fiber.NewError(fiber.StatusBadRequest, "End date must be after start date")
	}

	uid := uidFrom(c)
	event := models.Event{
		Title:       body.Title,
		Description: body.Description,
		Location:    body.Location,
		StartDate:   body.StartDate,
		EndDate:     body.EndDate,
		Creator:     uid,
		Attendees:   []bson.ObjectID{uid},
		IsAllDay:    body.IsAllDay,
		IsRecurring: body.IsRecurring,
		Color:       body.Color,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	if body.RecurringPattern != nil {
		interval := body.RecurringPattern.Interval
		if interval < 1 {
			interval = 1
		}
		event.RecurringPattern = &models.RecurringPattern{
			Frequency: body.RecurringPattern.Frequency,
			Interval:  interval,
			EndDate:   body.RecurringPattern.EndDate,
		}
	}
	if body.Group != "" {
		group, err := bson.ObjectIDFromHex(body.Group)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid group id")
		}
		event.Group = &group
	}

	var departmentUsers []models.User
	if body.Department != "" {
		dep, err := bson.ObjectIDFromHex(body.Department)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid department id")
		}
		event.Department = &dep
		departmentUsers, err = h.Users.ListByDepartment(c.Context(), dep)
		if err != nil {
			return err
		}
	}

	id, err := h.Events.Insert(c.Context(), event)
	if err != nil {
		return err
	}
	event.ID = id

	for _, user := range departmentUsers {
		if user.ID == uid {
			continue
		}
		h.Notifier.Notify(c.Context(), user.ID, notify.TypeEvent,
			"New event in your department: "+event.Title,
			models.EntityRef{Type: "event", ID: id})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.OK(event))
}

// @Summary Update an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /events/{id} [put]
func (h *EventHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	event, err := h.Events.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	user := userFrom(c)
	if event.Creator != user.ID && !user.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Not authorized to update this event")
	}

	var body dto.UpdateEventRequest
	if err := parseBody(c, &body); err != nil {
		return err
	}

	set := bson.M{"updated_at": time.Now()}
	if body.Title != "" {
		set["title"] = body.Title
	}
	if body.Description != "" {
		set["description"] = body.Description
	}
	if body.Location != "" {
		set["location"] = body.Location
	}
	if body.StartDate != nil {
		set["start_date"] = *body.StartDate
	}
	if body.EndDate != nil {
		set["end_date"] = *body.EndDate
	}
	if body.IsAllDay != nil {
		set["is_all_day"] = *body.IsAllDay
	}
	if body.IsRecurring != nil {
		set["is_recurring"] = *body.IsRecurring
	}
	if body.RecurringPattern != nil {
		set["recurring_pattern"] = models.RecurringPattern{
			Frequency: body.RecurringPattern.Frequency,
			Interval:  body.RecurringPattern.Interval,
			EndDate:   body.RecurringPattern.EndDate,
		}
	}
	if body.Color != "" {
		set["color"] = body.Color
	}

	updated, err := h.Events.Update(c.Context(), id, set)
	if err != nil {
		return err
	}

	h.Notifier.Fanout(c.Context(), user.ID, event.Attendees, notify.TypeEvent,
		"Event updated: "+updated.Title,
		models.EntityRef{Type: "event", ID: id})
	return c.JSON(dto.OK(updated))
}

// @Summary Delete an event
// @Tags events
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /events/{id} [delete]
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	event, err := h.Events.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	user := userFrom(c)
	if event.Creator != user.ID && !user.IsAdmin() {
		return fiber.NewError(fiber.StatusForbidden, "Not authorized to delete this event")
	}

	if err := h.Events.Delete(c.Context(), id); err != nil {
		return err
	}

	h.Notifier.Fanout(c.Context(), user.ID, event.Attendees, notify.TypeEvent,
		"Event cancelled: "+event.Title,
		models.EntityRef{Type: "event", ID: id})
	return c.JSON(dto.OKMessage("Event deleted", nil))
}

// @Summary Attend an event
// @Tags events
// @Accept json
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /events/{id}/attend [post]
func (h *EventHandler) Attend(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	event, err := h.Events.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	uid := uidFrom(c)
	if event.Attending(uid) {
		return fiber.NewError(fiber.StatusBadRequest, "Already attending this event")
	}

	if err := h.Events.AddAttendee(c.Context(), id, uid); err != nil {
		return err
	}
	if event.Creator != uid {
		h.Notifier.Notify(c.Context(), event.Creator, notify.TypeEvent,
			userFrom(c).Name+" is attending "+event.Title,
			models.EntityRef{Type: "event", ID: id})
	}
	return c.JSON(dto.OKMessage("Attending event", nil))
}

// @Summary Withdraw from an event
// @Tags events
// @Produce json
// @Param id path string true "Object id"
// @Success 200 {object} dto.Response
// @Router /events/{id}/attend [delete]
func (h *EventHandler) Unattend(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	event, err := h.Events.FindByID(c.Context(), id)
	if err != nil {
		return err
	}
	uid := uidFrom(c)
	if !event.Attending(uid) {
		return fiber.NewError(fiber.StatusBadRequest, "Not attending this event")
	}

	if err := h.Events.RemoveAttendee(c.Context(), id, uid); err != nil {
		return err
	}
	return c.JSON(dto.OKMessage("No longer attending event", nil))
}

// @Summary Get events grouped by calendar month
// @Tags events
// @Produce json
// @Success 200 {object} dto.Response
// @Router /events/calendar [get]
//
// Events are grouped by year-month keys of the form "2025-3".
func (h *EventHandler) Calendar(c *fiber.Ctx) error {
	now := time.Now()
	from := now.AddDate(0, -6, 0)
	to := now.AddDate(0, 6, 0)
	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid from date")
		}
		from = parsed
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid to date")
		}
		to = parsed
	}

	events, err := h.Events.ListBetween(c.Context(), uidFrom(c), from, to)
	if err != nil {
		return err
	}

	grouped := map[string][]models.Event{}
	for _, event := range events {
		key := fmt.Sprintf("%d-%d", event.StartDate.Year(), int(event.StartDate.Month()))
		grouped[key] = append(grouped[key], event)
	}
	return c.JSON(dto.OK(grouped))
}

func (h *EventHandler) view(c *fiber.Ctx, event models.Event, withAttendees bool) dto.EventView {
	view := dto.EventView{Event: event, AttendeeCount: len(event.Attendees)}
	if creator, err := h.Users.FindByID(c.Context(), event.Creator); err == nil {
		brief := dto.BriefOf(creator)
		view.CreatorInfo = &brief
	}
	if withAttendees {
		for _, aid := range event.Attendees {
			if user, err := h.Users.FindByID(c.Context(), aid); err == nil {
				view.AttendeeInfo = append(view.AttendeeInfo, dto.BriefOf(user))
			}
		}
	}
	return view
}
