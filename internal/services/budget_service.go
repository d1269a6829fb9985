package services

import (
	"strconv"
	"time"

	"github.com/terraincognita07/mariage/internal/models"
)

type BudgetItemInput struct {
	Category        *string  `json:"category"`
	Label           *string  `json:"label"`
	EstimatedAmount *float64 `json:"estimatedAmount"`
	ActualAmount    *float64 `json:"actualAmount"`
	Notes           *string  `json:"notes"`
	IsPaid          bool     `json:"isPaid"`
}

type BudgetTotalRepository interface {
	FindByUser(userID uint) (models.BudgetTotal, error)
	Upsert(total *models.BudgetTotal) error
}

type BudgetSummary struct {
	Total     float64 `json:"total"`
	Estimated float64 `json:"estimated"`
	Actual    float64 `json:"actual"`
	Paid      float64 `json:"paid"`
	Remaining float64 `json:"remaining"`
}

var BudgetCSVHeaders = []string{
	"Category",
	"Label",
	"Estimated",
	"Actual",
	"Paid",
	"Notes",
}

type BudgetService struct {
	items   ScopedRepository[models.BudgetItem]
	totals  BudgetTotalRepository
	couples CoupleMemberLookup
}

func NewBudgetService(items ScopedRepository[models.BudgetItem], totals BudgetTotalRepository, couples CoupleMemberLookup) *BudgetService {
	return &BudgetService{items: items, totals: totals, couples: couples}
}

func (service *BudgetService) ListItems(userID uint) ([]models.BudgetItem, error) {
	return service.items.ListForUser(userID)
}

func (service *BudgetService) CreateItem(userID uint, input BudgetItemInput) (models.BudgetItem, error) {
	label, err := requiredText("label", input.Label)
	if err != nil {
		return models.BudgetItem{}, err
	}
	category, err := requiredText("category", input.Category)
	if err != nil {
		return models.BudgetItem{}, err
	}
	estimated, err := nonNegativeAmount("estimatedAmount", input.EstimatedAmount)
	if err != nil {
		return models.BudgetItem{}, err
	}
	actual, err := nonNegativeAmount("actualAmount", input.ActualAmount)
	if err != nil {
		return models.BudgetItem{}, err
	}

	couple, err := findCoupleForMember(service.couples, userID)
	if err != nil {
		return models.BudgetItem{}, err
	}

	item := models.BudgetItem{
		CoupleID:        couple.ID,
		Category:        category,
		Label:           label,
		EstimatedAmount: estimated,
		ActualAmount:    actual,
		IsPaid:          input.IsPaid,
		Notes:           optionalText(input.Notes),
	}
	if err := service.items.Create(&item); err != nil {
		return models.BudgetItem{}, err
	}
	return item, nil
}

func (service *BudgetService) UpdateItem(userID uint, itemID uint, input BudgetItemInput) (models.BudgetItem, error) {
	item, err := service.items.FindForUser(itemID, userID)
	if err != nil {
		return models.BudgetItem{}, normalizeNotFound(err)
	}

	if err := mergeRequiredText("label", &item.Label, input.Label); err != nil {
		return models.BudgetItem{}, err
	}
	if err := mergeRequiredText("category", &item.Category, input.Category); err != nil {
		return models.BudgetItem{}, err
	}
	if err := mergeAmount("estimatedAmount", &item.EstimatedAmount, input.EstimatedAmount); err != nil {
		return models.BudgetItem{}, err
	}
	if err := mergeAmount("actualAmount", &item.ActualAmount, input.ActualAmount); err != nil {
		return models.BudgetItem{}, err
	}
	mergeText(&item.Notes, input.Notes)
	item.IsPaid = input.IsPaid

	if err := service.items.Save(&item); err != nil {
		return models.BudgetItem{}, err
	}
	return item, nil
}

func (service *BudgetService) DeleteItem(userID uint, itemID uint) error {
	return normalizeNotFound(service.items.DeleteForUser(itemID, userID))
}

func (service *BudgetService) Total(userID uint) (models.BudgetTotal, error) {
	return service.totals.FindByUser(userID)
}

func (service *BudgetService) SetTotal(userID uint, amount *float64, now time.Time) (models.BudgetTotal, error) {
	if amount == nil {
		return models.BudgetTotal{}, invalidField("amount", CodeRequired)
	}
	value, err := nonNegativeAmount("amount", amount)
	if err != nil {
		return models.BudgetTotal{}, err
	}

	total := models.BudgetTotal{UserID: userID, Amount: value, UpdatedAt: now}
	if err := service.totals.Upsert(&total); err != nil {
		return models.BudgetTotal{}, err
	}
	return total, nil
}

func (service *BudgetService) Summary(userID uint) (BudgetSummary, error) {
	total, err := service.totals.FindByUser(userID)
	if err != nil {
		return BudgetSummary{}, err
	}
	items, err := service.items.ListForUser(userID)
	if err != nil {
		return BudgetSummary{}, err
	}
	return SummarizeBudget(total.Amount, items), nil
}

func SummarizeBudget(total float64, items []models.BudgetItem) BudgetSummary {
	summary := BudgetSummary{Total: total}
	for _, item := range items {
		summary.Estimated += item.EstimatedAmount
		summary.Actual += item.ActualAmount
		if item.IsPaid {
			summary.Paid += item.ActualAmount
		}
	}
	summary.Remaining = summary.Total - summary.Actual
	return summary
}

func (service *BudgetService) ExportRows(userID uint) ([][]string, error) {
	items, err := service.items.ListForUser(userID)
	if err != nil {
		return nil, err
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{
			item.Category,
			item.Label,
			formatAmount(item.EstimatedAmount),
			formatAmount(item.ActualAmount),
			strconv.FormatBool(item.IsPaid),
			item.Notes,
		})
	}
	return rows, nil
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
