package db

import "gorm.io/gorm"

type Repositories struct {
	Users        *UserRepository
	Couples      *CoupleRepository
	Events       *EventRepository
	Attendees    *AttendeeRepository
	Documents    *DocumentRepository
	Checklist    *ChecklistRepository
	BudgetItems  *BudgetItemRepository
	BudgetTotals *BudgetTotalRepository
	Timeline     *TimelineRepository
	Trousseau    *TrousseauRepository
	WeddingDays  *WeddingDayRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(database),
		Couples:      NewCoupleRepository(database),
		Events:       NewEventRepository(database),
		Attendees:    NewAttendeeRepository(database),
		Documents:    NewDocumentRepository(database),
		Checklist:    NewChecklistRepository(database),
		BudgetItems:  NewBudgetItemRepository(database),
		BudgetTotals: NewBudgetTotalRepository(database),
		Timeline:     NewTimelineRepository(database),
		Trousseau:    NewTrousseauRepository(database),
		WeddingDays:  NewWeddingDayRepository(database),
	}
}
