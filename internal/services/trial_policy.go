package services

import (
	"math"
	"time"

	"github.com/terraincognita07/mariage/internal/models"
)

const (
	FeatureCoupleWrite      = "couple.write"
	FeatureEventsWrite      = "events.write"
	FeatureAttendeesWrite   = "attendees.write"
	FeatureDocumentsWrite   = "documents.write"
	FeatureChecklistWrite   = "checklist.write"
	FeatureBudgetWrite      = "budget.write"
	FeatureTimelineWrite    = "timeline.write"
	FeatureTrousseauWrite   = "trousseau.write"
	FeatureWeddingDaysWrite = "weddingdays.write"
	FeatureBudgetExport     = "budget.export"
	FeatureAttendeesExport  = "attendees.export"
)

// Features denied once the trial has lapsed without a subscription.
var expiredDeniedFeatures = []string{
	FeatureCoupleWrite,
	FeatureEventsWrite,
	FeatureAttendeesWrite,
	FeatureDocumentsWrite,
	FeatureChecklistWrite,
	FeatureBudgetWrite,
	FeatureTimelineWrite,
	FeatureTrousseauWrite,
	FeatureWeddingDaysWrite,
}

// Premium features, denied to anyone without an active subscription.
var trialDeniedFeatures = []string{
	FeatureBudgetExport,
	FeatureAttendeesExport,
}

type TrialSubject struct {
	CreatedAt          time.Time
	TrialEndsAt        *time.Time
	SubscriptionStatus string
	SubscriptionEndsAt *time.Time
}

func TrialSubjectFromUser(user models.User) TrialSubject {
	return TrialSubject{
		CreatedAt:          user.CreatedAt,
		TrialEndsAt:        user.TrialEndsAt,
		SubscriptionStatus: user.SubscriptionStatus,
		SubscriptionEndsAt: user.SubscriptionEndsAt,
	}
}

type TrialStatus struct {
	IsInTrial             bool      `json:"isInTrial"`
	DaysRemaining         int       `json:"daysRemaining"`
	TrialExpired          bool      `json:"trialExpired"`
	HasActiveSubscription bool      `json:"hasActiveSubscription"`
	TrialEndsAt           time.Time `json:"trialEndsAt"`
}

func TrialEndDate(subject TrialSubject) time.Time {
	if subject.TrialEndsAt != nil {
		return *subject.TrialEndsAt
	}
	return subject.CreatedAt.AddDate(0, 0, models.DefaultTrialDays)
}

func EvaluateTrial(subject TrialSubject, now time.Time) TrialStatus {
	trialEnd := TrialEndDate(subject)
	hasActive := subject.SubscriptionStatus == models.SubscriptionActive &&
		subject.SubscriptionEndsAt != nil &&
		subject.SubscriptionEndsAt.After(now)

	daysRemaining := int(math.Ceil(trialEnd.Sub(now).Hours() / 24))
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	return TrialStatus{
		IsInTrial:             subject.SubscriptionStatus == models.SubscriptionTrialing || (!hasActive && now.Before(trialEnd)),
		DaysRemaining:         daysRemaining,
		TrialExpired:          !hasActive && !now.Before(trialEnd),
		HasActiveSubscription: hasActive,
		TrialEndsAt:           trialEnd,
	}
}

// FeatureAllowed is the single policy behind the request gate and the
// features map reported to clients.
func FeatureAllowed(status TrialStatus, feature string) bool {
	if status.HasActiveSubscription {
		return true
	}
	if status.TrialExpired && containsFeature(expiredDeniedFeatures, feature) {
		return false
	}
	return !containsFeature(trialDeniedFeatures, feature)
}

func FeatureMap(status TrialStatus) map[string]bool {
	features := make(map[string]bool, len(expiredDeniedFeatures)+len(trialDeniedFeatures))
	for _, feature := range expiredDeniedFeatures {
		features[feature] = FeatureAllowed(status, feature)
	}
	for _, feature := range trialDeniedFeatures {
		features[feature] = FeatureAllowed(status, feature)
	}
	return features
}

func containsFeature(features []string, feature string) bool {
	for _, candidate := range features {
		if candidate == feature {
			return true
		}
	}
	return false
}

type SubscriptionOverview struct {
	Status   string          `json:"status"`
	Plan     string          `json:"plan"`
	EndsAt   *time.Time      `json:"endsAt"`
	Trial    TrialStatus     `json:"trial"`
	Features map[string]bool `json:"features"`
}

func DescribeSubscription(user models.User, now time.Time) SubscriptionOverview {
	status := EvaluateTrial(TrialSubjectFromUser(user), now)
	return SubscriptionOverview{
		Status:   user.SubscriptionStatus,
		Plan:     user.SubscriptionPlan,
		EndsAt:   user.SubscriptionEndsAt,
		Trial:    status,
		Features: FeatureMap(status),
	}
}

// CheckFeature returns ErrSubscriptionRequired when the user may not use
// the feature. Admins are never gated.
func CheckFeature(user models.User, feature string, now time.Time) error {
	if user.Role == models.RoleAdmin {
		return nil
	}
	if !FeatureAllowed(EvaluateTrial(TrialSubjectFromUser(user), now), feature) {
		return ErrSubscriptionRequired
	}
	return nil
}
