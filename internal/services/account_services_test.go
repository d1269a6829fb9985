package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/terraincognita07/mariage/internal/models"
)

func TestRegisterNormalizesEmailAndStartsTrial(t *testing.T) {
	fixture := newServiceFixture(t)
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)

	user, err := fixture.services.Auth.Register(RegisterInput{
		Email:    "  Claire@Example.COM ",
		Password: "Mariage2026",
		Name:     " Claire ",
	}, now)
	require.NoError(t, err)
	assert.Equal(t, "claire@example.com", user.Email)
	assert.Equal(t, "Claire", user.Name)
	assert.Equal(t, models.RoleClient, user.Role)
	assert.Equal(t, models.SubscriptionNone, user.SubscriptionStatus)
	require.NotNil(t, user.TrialEndsAt)
	assert.True(t, user.TrialEndsAt.Equal(now.AddDate(0, 0, 15)))

	_, err = fixture.services.Auth.Register(RegisterInput{Email: "claire@example.com", Password: "Mariage2026", Name: "Other"}, now)
	assert.True(t, errors.Is(err, ErrEmailTaken))

	_, err = fixture.services.Auth.Register(RegisterInput{Email: "weak@example.com", Password: "weak", Name: "Weak"}, now)
	validationErr, ok := IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "password", validationErr.Field)

	_, err = fixture.services.Auth.Register(RegisterInput{Email: "not-an-email", Password: "Mariage2026", Name: "X"}, now)
	validationErr, ok = IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "email", validationErr.Field)
}

func TestAuthenticateHidesWhichCredentialFailed(t *testing.T) {
	fixture := newServiceFixture(t)
	_, err := fixture.services.Auth.Register(RegisterInput{Email: "claire@example.com", Password: "Mariage2026", Name: "Claire"}, time.Now())
	require.NoError(t, err)

	user, err := fixture.services.Auth.Authenticate("CLAIRE@example.com", "Mariage2026")
	require.NoError(t, err)
	assert.Equal(t, "claire@example.com", user.Email)

	_, err = fixture.services.Auth.Authenticate("claire@example.com", "Wrong2026")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
	_, err = fixture.services.Auth.Authenticate("nobody@example.com", "Mariage2026")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
	_, err = fixture.services.Auth.Authenticate("", "")
	assert.True(t, errors.Is(err, ErrInvalidCredentials))
}

func TestChangePasswordChecksCurrentAndClearsForcedChange(t *testing.T) {
	fixture := newServiceFixture(t)
	user, err := fixture.services.Auth.Register(RegisterInput{Email: "remi@example.com", Password: "Mariage2026", Name: "Remi"}, time.Now())
	require.NoError(t, err)
	require.NoError(t, fixture.repos.Users.UpdatePassword(user.ID, user.PasswordHash, true))

	err = fixture.services.Auth.ChangePassword(user.ID, ChangePasswordInput{CurrentPassword: "Wrong2026", NewPassword: "Noces2027"})
	assert.True(t, errors.Is(err, ErrInvalidCredentials))

	err = fixture.services.Auth.ChangePassword(user.ID, ChangePasswordInput{CurrentPassword: "Mariage2026", NewPassword: "short"})
	validationErr, ok := IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "newPassword", validationErr.Field)

	require.NoError(t, fixture.services.Auth.ChangePassword(user.ID, ChangePasswordInput{CurrentPassword: "Mariage2026", NewPassword: "Noces2027"}))
	updated, err := fixture.services.Auth.Authenticate("remi@example.com", "Noces2027")
	require.NoError(t, err)
	assert.False(t, updated.MustChangePassword)
}

func TestCoupleCreateLinksPartnerAndRejectsSecondCouple(t *testing.T) {
	fixture := newServiceFixture(t)
	bride := fixture.createUser(t, "bride@example.com", models.RoleClient)
	groom := fixture.createUser(t, "groom@example.com", models.RoleClient)

	couple, err := fixture.services.Couples.Create(bride.ID, CreateCoupleInput{
		Role:         "bride",
		PartnerEmail: "GROOM@example.com",
		WeddingDate:  stringPtr("2026-09-19"),
	})
	require.NoError(t, err)
	require.NotNil(t, couple.BrideID)
	require.NotNil(t, couple.GroomID)
	assert.Equal(t, bride.ID, *couple.BrideID)
	assert.Equal(t, groom.ID, *couple.GroomID)
	require.NotNil(t, couple.Groom)
	assert.Equal(t, "groom@example.com", couple.Groom.Email)

	_, err = fixture.services.Couples.Create(groom.ID, CreateCoupleInput{Role: "groom"})
	assert.True(t, errors.Is(err, ErrCoupleExists))

	_, err = fixture.services.Couples.Create(bride.ID, CreateCoupleInput{Role: "witness"})
	_, ok := IsValidationError(err)
	assert.True(t, ok)
}

func TestCoupleCreateSkipsPartnerAlreadyTaken(t *testing.T) {
	fixture := newServiceFixture(t)
	first := fixture.createUser(t, "first@example.com", models.RoleClient)
	taken := fixture.createUser(t, "taken@example.com", models.RoleClient)
	fixture.createCouple(t, taken, nil)

	couple, err := fixture.services.Couples.Create(first.ID, CreateCoupleInput{Role: "groom", PartnerEmail: "taken@example.com"})
	require.NoError(t, err)
	assert.Nil(t, couple.BrideID)
	require.NotNil(t, couple.GroomID)
	assert.Equal(t, first.ID, *couple.GroomID)
}

func TestCoupleMemberUpdateAndMissingCouple(t *testing.T) {
	fixture := newServiceFixture(t)
	bride := fixture.createUser(t, "bride@example.com", models.RoleClient)
	single := fixture.createUser(t, "single@example.com", models.RoleClient)
	fixture.createCouple(t, bride, nil)

	_, err := fixture.services.Couples.ForMember(single.ID)
	assert.True(t, errors.Is(err, ErrCoupleNotFound))

	updated, err := fixture.services.Couples.Update(bride.ID, UpdateCoupleInput{
		WeddingDate: stringPtr("2027-05-01"),
		Status:      stringPtr("ACTIVE"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.WeddingDate)
	assert.Equal(t, "2027-05-01", *updated.WeddingDate)
	assert.Equal(t, models.CoupleStatusActive, updated.Status)

	_, err = fixture.services.Couples.Update(bride.ID, UpdateCoupleInput{Status: stringPtr("eloped")})
	_, ok := IsValidationError(err)
	assert.True(t, ok)
}

func TestCoupleAdminPagingAndPlannerAssignment(t *testing.T) {
	fixture := newServiceFixture(t)
	planner := fixture.createUser(t, "planner@example.com", models.RolePlanner)
	client := fixture.createUser(t, "client@example.com", models.RoleClient)
	var lastCouple models.Couple
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		lastCouple = fixture.createCouple(t, fixture.createUser(t, email, models.RoleClient), nil)
	}

	page, err := fixture.services.Couples.ListPage(CoupleQuery{Page: 0, Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, MaxCouplePageLimit, page.Limit)
	assert.Equal(t, int64(3), page.Total)

	page, err = fixture.services.Couples.ListPage(CoupleQuery{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 2, page.TotalPages)

	_, err = fixture.services.Couples.AdminUpdate(lastCouple.ID, AdminCoupleInput{PlannerID: &client.ID})
	_, ok := IsValidationError(err)
	assert.True(t, ok, "only planners may be assigned")

	updated, err := fixture.services.Couples.AdminUpdate(lastCouple.ID, AdminCoupleInput{PlannerID: &planner.ID})
	require.NoError(t, err)
	require.NotNil(t, updated.PlannerID)
	assert.Equal(t, planner.ID, *updated.PlannerID)

	assigned, err := fixture.services.Couples.ListForPlanner(planner.ID)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, lastCouple.ID, assigned[0].ID)

	require.NoError(t, fixture.services.Couples.Delete(lastCouple.ID))
	assert.True(t, errors.Is(fixture.services.Couples.Delete(lastCouple.ID), ErrNotFound))
	_, err = fixture.services.Couples.AdminUpdate(lastCouple.ID, AdminCoupleInput{})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestUpdateSubscriptionValidatesStatus(t *testing.T) {
	fixture := newServiceFixture(t)
	user := fixture.createUser(t, "client@example.com", models.RoleClient)
	endsAt := time.Now().UTC().AddDate(0, 1, 0)

	_, err := fixture.services.Users.UpdateSubscription(user.ID, SubscriptionInput{Status: "lifetime"})
	_, ok := IsValidationError(err)
	assert.True(t, ok)

	_, err = fixture.services.Users.UpdateSubscription(user.ID, SubscriptionInput{Status: "active"})
	_, ok = IsValidationError(err)
	assert.True(t, ok, "active subscriptions need an end date")

	updated, err := fixture.services.Users.UpdateSubscription(user.ID, SubscriptionInput{Status: "active", Plan: "premium", EndsAt: &endsAt})
	require.NoError(t, err)
	assert.Equal(t, models.SubscriptionActive, updated.SubscriptionStatus)
	assert.Equal(t, "premium", updated.SubscriptionPlan)
	assert.True(t, EvaluateTrial(TrialSubjectFromUser(updated), time.Now()).HasActiveSubscription)

	_, err = fixture.services.Users.UpdateSubscription(user.ID+100, SubscriptionInput{Status: "none"})
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDashboardStatsAggregatesTiles(t *testing.T) {
	fixture := newServiceFixture(t)
	bride := fixture.createUser(t, "bride@example.com", models.RoleClient)
	fixture.createCouple(t, bride, nil)
	now := time.Date(2026, time.June, 1, 15, 0, 0, 0, time.UTC)

	for _, input := range []AttendeeInput{
		{FirstName: stringPtr("Anne"), Side: stringPtr("mariee"), Confirmed: true, PlusOne: true},
		{FirstName: stringPtr("Bruno"), Side: stringPtr("marie")},
		{FirstName: stringPtr("Chloe"), Side: stringPtr("commun"), Confirmed: true},
	} {
		_, err := fixture.services.Attendees.Create(bride.ID, input)
		require.NoError(t, err)
	}
	for _, input := range []EventInput{
		{Title: stringPtr("Past"), Type: stringPtr("party"), Date: stringPtr("2026-05-01")},
		{Title: stringPtr("Civil"), Type: stringPtr("civil"), Date: stringPtr("2026-06-10")},
		{Title: stringPtr("Today"), Type: stringPtr("rehearsal"), Date: stringPtr("2026-06-01")},
		{Title: stringPtr("Undated"), Type: stringPtr("other")},
	} {
		_, err := fixture.services.Events.Create(bride.ID, input)
		require.NoError(t, err)
	}
	_, err := fixture.services.Checklist.Create(bride.ID, ChecklistInput{Title: stringPtr("Dress"), IsCompleted: true}, now)
	require.NoError(t, err)
	_, err = fixture.services.Checklist.Create(bride.ID, ChecklistInput{Title: stringPtr("Rings")}, now)
	require.NoError(t, err)
	_, err = fixture.services.Checklist.Create(bride.ID, ChecklistInput{Title: stringPtr("Music")}, now)
	require.NoError(t, err)
	_, err = fixture.services.Budget.SetTotal(bride.ID, floatPtr(1000), now)
	require.NoError(t, err)
	_, err = fixture.services.WeddingDays.Create(bride.ID, WeddingDayInput{Name: stringPtr("Main"), Date: stringPtr("2026-06-20"), IsMainDay: true})
	require.NoError(t, err)

	stats, err := fixture.services.Dashboard.Stats(bride, now)
	require.NoError(t, err)

	assert.Equal(t, 3, stats.Guests.Total)
	assert.Equal(t, 2, stats.Guests.Confirmed)
	assert.Equal(t, 1, stats.Guests.Pending)
	assert.Equal(t, 1, stats.Guests.PlusOnes)
	assert.Equal(t, 1, stats.Guests.BySide[models.SideBride])
	assert.Equal(t, 3, stats.Checklist.Total)
	assert.Equal(t, 1, stats.Checklist.Done)
	assert.Equal(t, 33, stats.Checklist.Percent)
	assert.Equal(t, 2, stats.Events.Upcoming)
	require.NotNil(t, stats.Events.NextEvent)
	assert.Equal(t, "Today", stats.Events.NextEvent.Title)
	assert.Equal(t, 1000.0, stats.Budget.Remaining)
	require.NotNil(t, stats.DaysUntilWedding)
	assert.Equal(t, 19, *stats.DaysUntilWedding)
}

func TestDashboardFallsBackToCoupleWeddingDate(t *testing.T) {
	fixture := newServiceFixture(t)
	bride := fixture.createUser(t, "bride@example.com", models.RoleClient)
	single := fixture.createUser(t, "single@example.com", models.RoleClient)
	couple := fixture.createCouple(t, bride, nil)
	date := "2026-06-03"
	couple.WeddingDate = &date
	require.NoError(t, fixture.repos.Couples.Save(&couple))

	now := time.Date(2026, time.June, 1, 23, 0, 0, 0, time.UTC)
	stats, err := fixture.services.Dashboard.Stats(bride, now)
	require.NoError(t, err)
	require.NotNil(t, stats.DaysUntilWedding)
	assert.Equal(t, 2, *stats.DaysUntilWedding)

	stats, err = fixture.services.Dashboard.Stats(single, now)
	require.NoError(t, err)
	assert.Nil(t, stats.DaysUntilWedding)
}
