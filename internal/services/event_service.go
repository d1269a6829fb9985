package services

import (
	"strings"

	"github.com/terraincognita07/mariage/internal/models"
)

type EventInput struct {
	Title       *string `json:"title"`
	Type        *string `json:"type"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	IsCompleted bool    `json:"isCompleted"`
}

type EventService struct {
	events  ScopedRepository[models.Event]
	couples CoupleMemberLookup
}

func NewEventService(events ScopedRepository[models.Event], couples CoupleMemberLookup) *EventService {
	return &EventService{events: events, couples: couples}
}

func (service *EventService) List(userID uint) ([]models.Event, error) {
	return service.events.ListForUser(userID)
}

func (service *EventService) Get(userID uint, eventID uint) (models.Event, error) {
	event, err := service.events.FindForUser(eventID, userID)
	return event, normalizeNotFound(err)
}

func (service *EventService) Create(userID uint, input EventInput) (models.Event, error) {
	title, err := requiredText("title", input.Title)
	if err != nil {
		return models.Event{}, err
	}
	eventType, err := eventTypeValue(input.Type)
	if err != nil {
		return models.Event{}, err
	}
	date, err := optionalDate("date", input.Date)
	if err != nil {
		return models.Event{}, err
	}

	couple, err := findCoupleForMember(service.couples, userID)
	if err != nil {
		return models.Event{}, err
	}

	event := models.Event{
		CoupleID:    couple.ID,
		Title:       title,
		Type:        eventType,
		Date:        date,
		Time:        optionalText(input.Time),
		Location:    optionalText(input.Location),
		Description: optionalText(input.Description),
		IsCompleted: input.IsCompleted,
	}
	if err := service.events.Create(&event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (service *EventService) Update(userID uint, eventID uint, input EventInput) (models.Event, error) {
	event, err := service.events.FindForUser(eventID, userID)
	if err != nil {
		return models.Event{}, normalizeNotFound(err)
	}

	if err := mergeRequiredText("title", &event.Title, input.Title); err != nil {
		return models.Event{}, err
	}
	if input.Type != nil {
		eventType, err := eventTypeValue(input.Type)
		if err != nil {
			return models.Event{}, err
		}
		event.Type = eventType
	}
	if err := mergeOptionalDate("date", &event.Date, input.Date); err != nil {
		return models.Event{}, err
	}
	mergeText(&event.Time, input.Time)
	mergeText(&event.Location, input.Location)
	mergeText(&event.Description, input.Description)
	event.IsCompleted = input.IsCompleted

	if err := service.events.Save(&event); err != nil {
		return models.Event{}, err
	}
	return event, nil
}

func (service *EventService) Delete(userID uint, eventID uint) error {
	return normalizeNotFound(service.events.DeleteForUser(eventID, userID))
}

func eventTypeValue(value *string) (string, error) {
	eventType, err := requiredText("type", value)
	if err != nil {
		return "", err
	}
	eventType = strings.ToLower(eventType)
	if !models.IsKnownEventType(eventType) {
		return "", invalidField("type", CodeInvalid)
	}
	return eventType, nil
}
