package services

import "github.com/terraincognita07/mariage/internal/db"

type Services struct {
	Auth        *AuthService
	Users       *UserAdminService
	Couples     *CoupleService
	Events      *EventService
	Attendees   *AttendeeService
	Documents   *DocumentService
	Checklist   *ChecklistService
	Budget      *BudgetService
	Timeline    *TimelineService
	Trousseau   *TrousseauService
	WeddingDays *WeddingDayService
	Dashboard   *DashboardService
}

func NewServices(repositories *db.Repositories, files DocumentFileStore, trialDays int) *Services {
	couples := NewCoupleService(repositories.Couples, repositories.Users)
	attendees := NewAttendeeService(repositories.Attendees)
	checklist := NewChecklistService(repositories.Checklist, repositories.Couples)
	events := NewEventService(repositories.Events, repositories.Couples)
	budget := NewBudgetService(repositories.BudgetItems, repositories.BudgetTotals, repositories.Couples)
	weddingDays := NewWeddingDayService(repositories.WeddingDays)

	return &Services{
		Auth:        NewAuthService(repositories.Users, trialDays),
		Users:       NewUserAdminService(repositories.Users),
		Couples:     couples,
		Events:      events,
		Attendees:   attendees,
		Documents:   NewDocumentService(repositories.Documents, repositories.Couples, files),
		Checklist:   checklist,
		Budget:      budget,
		Timeline:    NewTimelineService(repositories.Timeline),
		Trousseau:   NewTrousseauService(repositories.Trousseau),
		WeddingDays: weddingDays,
		Dashboard:   NewDashboardService(attendees, budget, checklist, events, weddingDays, couples),
	}
}
