package services

import (
	"errors"
	"time"

	"github.com/terraincognita07/mariage/internal/models"
)

type DashboardAttendeeSource interface {
	List(userID uint) ([]models.Attendee, error)
}

type DashboardBudgetSource interface {
	Summary(userID uint) (BudgetSummary, error)
}

type DashboardChecklistSource interface {
	List(userID uint) ([]models.ChecklistItem, error)
}

type DashboardEventSource interface {
	List(userID uint) ([]models.Event, error)
}

type DashboardWeddingDaySource interface {
	MainDay(userID uint) (models.WeddingDay, bool, error)
}

type DashboardCoupleSource interface {
	ForMember(userID uint) (models.Couple, error)
}

type GuestStats struct {
	Total     int            `json:"total"`
	Confirmed int            `json:"confirmed"`
	Pending   int            `json:"pending"`
	PlusOnes  int            `json:"plusOnes"`
	BySide    map[string]int `json:"bySide"`
}

type ChecklistStats struct {
	Done    int `json:"done"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}

type EventStats struct {
	Upcoming  int           `json:"upcoming"`
	NextEvent *models.Event `json:"nextEvent"`
}

type DashboardStats struct {
	Guests           GuestStats     `json:"guests"`
	Budget           BudgetSummary  `json:"budget"`
	Checklist        ChecklistStats `json:"checklist"`
	Events           EventStats     `json:"events"`
	DaysUntilWedding *int           `json:"daysUntilWedding"`
	Trial            TrialStatus    `json:"trial"`
}

type DashboardService struct {
	attendees   DashboardAttendeeSource
	budget      DashboardBudgetSource
	checklist   DashboardChecklistSource
	events      DashboardEventSource
	weddingDays DashboardWeddingDaySource
	couples     DashboardCoupleSource
}

func NewDashboardService(
	attendees DashboardAttendeeSource,
	budget DashboardBudgetSource,
	checklist DashboardChecklistSource,
	events DashboardEventSource,
	weddingDays DashboardWeddingDaySource,
	couples DashboardCoupleSource,
) *DashboardService {
	return &DashboardService{
		attendees:   attendees,
		budget:      budget,
		checklist:   checklist,
		events:      events,
		weddingDays: weddingDays,
		couples:     couples,
	}
}

// Stats builds the dashboard tiles for user. now must already be in the
// user's display location.
func (service *DashboardService) Stats(user models.User, now time.Time) (DashboardStats, error) {
	attendees, err := service.attendees.List(user.ID)
	if err != nil {
		return DashboardStats{}, err
	}
	budget, err := service.budget.Summary(user.ID)
	if err != nil {
		return DashboardStats{}, err
	}
	checklist, err := service.checklist.List(user.ID)
	if err != nil {
		return DashboardStats{}, err
	}
	events, err := service.events.List(user.ID)
	if err != nil {
		return DashboardStats{}, err
	}
	weddingDate, err := service.weddingDate(user.ID)
	if err != nil {
		return DashboardStats{}, err
	}

	today := dayStart(now)
	return DashboardStats{
		Guests:           BuildGuestStats(attendees),
		Budget:           budget,
		Checklist:        BuildChecklistStats(checklist),
		Events:           BuildEventStats(events, today),
		DaysUntilWedding: daysUntil(weddingDate, today),
		Trial:            EvaluateTrial(TrialSubjectFromUser(user), now),
	}, nil
}

// weddingDate prefers the main wedding day over the couple's wedding date.
func (service *DashboardService) weddingDate(userID uint) (string, error) {
	day, found, err := service.weddingDays.MainDay(userID)
	if err != nil {
		return "", err
	}
	if found {
		return day.Date, nil
	}

	couple, err := service.couples.ForMember(userID)
	if errors.Is(err, ErrCoupleNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	if couple.WeddingDate == nil {
		return "", nil
	}
	return *couple.WeddingDate, nil
}

func BuildGuestStats(attendees []models.Attendee) GuestStats {
	stats := GuestStats{
		BySide: map[string]int{
			models.SideGroom:  0,
			models.SideBride:  0,
			models.SideShared: 0,
		},
	}
	for _, attendee := range attendees {
		stats.Total++
		if attendee.Confirmed {
			stats.Confirmed++
		} else {
			stats.Pending++
		}
		if attendee.PlusOne {
			stats.PlusOnes++
		}
		stats.BySide[attendee.Side]++
	}
	return stats
}

func BuildChecklistStats(items []models.ChecklistItem) ChecklistStats {
	stats := ChecklistStats{Total: len(items)}
	for _, item := range items {
		if item.IsCompleted {
			stats.Done++
		}
	}
	if stats.Total > 0 {
		stats.Percent = stats.Done * 100 / stats.Total
	}
	return stats
}

// BuildEventStats expects events ordered by date with undated events last.
func BuildEventStats(events []models.Event, today time.Time) EventStats {
	stats := EventStats{}
	for index := range events {
		event := events[index]
		if event.IsCompleted || event.Date == nil {
			continue
		}
		date, err := parseDay(*event.Date)
		if err != nil || date.Before(today) {
			continue
		}
		stats.Upcoming++
		if stats.NextEvent == nil {
			stats.NextEvent = &events[index]
		}
	}
	return stats
}

func daysUntil(rawDate string, today time.Time) *int {
	if rawDate == "" {
		return nil
	}
	date, err := parseDay(rawDate)
	if err != nil {
		return nil
	}
	days := int(date.Sub(today).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return &days
}
