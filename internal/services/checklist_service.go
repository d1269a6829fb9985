package services

import (
	"time"

	"github.com/terraincognita07/mariage/internal/models"
)

type ChecklistInput struct {
	Title       *string `json:"title"`
	Category    *string `json:"category"`
	DueDate     *string `json:"dueDate"`
	Notes       *string `json:"notes"`
	IsCompleted bool    `json:"isCompleted"`
}

type ChecklistService struct {
	items   ScopedRepository[models.ChecklistItem]
	couples CoupleMemberLookup
}

func NewChecklistService(items ScopedRepository[models.ChecklistItem], couples CoupleMemberLookup) *ChecklistService {
	return &ChecklistService{items: items, couples: couples}
}

func (service *ChecklistService) List(userID uint) ([]models.ChecklistItem, error) {
	return service.items.ListForUser(userID)
}

func (service *ChecklistService) Create(userID uint, input ChecklistInput, now time.Time) (models.ChecklistItem, error) {
	title, err := requiredText("title", input.Title)
	if err != nil {
		return models.ChecklistItem{}, err
	}
	dueDate, err := optionalDate("dueDate", input.DueDate)
	if err != nil {
		return models.ChecklistItem{}, err
	}

	couple, err := findCoupleForMember(service.couples, userID)
	if err != nil {
		return models.ChecklistItem{}, err
	}

	item := models.ChecklistItem{
		CoupleID: couple.ID,
		Title:    title,
		Category: optionalText(input.Category),
		DueDate:  dueDate,
		Notes:    optionalText(input.Notes),
	}
	applyCompletion(&item, input.IsCompleted, now)

	if err := service.items.Create(&item); err != nil {
		return models.ChecklistItem{}, err
	}
	return item, nil
}

func (service *ChecklistService) Update(userID uint, itemID uint, input ChecklistInput, now time.Time) (models.ChecklistItem, error) {
	item, err := service.items.FindForUser(itemID, userID)
	if err != nil {
		return models.ChecklistItem{}, normalizeNotFound(err)
	}

	if err := mergeRequiredText("title", &item.Title, input.Title); err != nil {
		return models.ChecklistItem{}, err
	}
	if err := mergeOptionalDate("dueDate", &item.DueDate, input.DueDate); err != nil {
		return models.ChecklistItem{}, err
	}
	mergeText(&item.Category, input.Category)
	mergeText(&item.Notes, input.Notes)
	applyCompletion(&item, input.IsCompleted, now)

	if err := service.items.Save(&item); err != nil {
		return models.ChecklistItem{}, err
	}
	return item, nil
}

func (service *ChecklistService) Delete(userID uint, itemID uint) error {
	return normalizeNotFound(service.items.DeleteForUser(itemID, userID))
}

// applyCompletion keeps the original completion time of an item that stays
// completed.
func applyCompletion(item *models.ChecklistItem, completed bool, now time.Time) {
	if !completed {
		item.IsCompleted = false
		item.CompletedAt = nil
		return
	}
	if !item.IsCompleted || item.CompletedAt == nil {
		completedAt := now
		item.CompletedAt = &completedAt
	}
	item.IsCompleted = true
}
