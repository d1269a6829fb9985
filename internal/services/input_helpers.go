package services

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

func requiredText(field string, value *string) (string, error) {
	if value == nil {
		return "", invalidField(field, CodeRequired)
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return "", invalidField(field, CodeRequired)
	}
	return trimmed, nil
}

func optionalText(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}

// mergeRequiredText overwrites target only when a value was supplied; a
// supplied blank value is rejected.
func mergeRequiredText(field string, target *string, value *string) error {
	if value == nil {
		return nil
	}
	trimmed, err := requiredText(field, value)
	if err != nil {
		return err
	}
	*target = trimmed
	return nil
}

func mergeText(target *string, value *string) {
	if value != nil {
		*target = strings.TrimSpace(*value)
	}
}

func parseDay(raw string) (time.Time, error) {
	return time.Parse(dateLayout, strings.TrimSpace(raw))
}

func requiredDate(field string, value *string) (string, error) {
	raw, err := requiredText(field, value)
	if err != nil {
		return "", err
	}
	if _, err := parseDay(raw); err != nil {
		return "", invalidField(field, CodeInvalid)
	}
	return raw, nil
}

// optionalDate returns nil for an absent or blank value.
func optionalDate(field string, value *string) (*string, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil, nil
	}
	raw, err := requiredDate(field, value)
	if err != nil {
		return nil, err
	}
	return &raw, nil
}

// mergeOptionalDate clears the date when a blank value was supplied.
func mergeOptionalDate(field string, target **string, value *string) error {
	if value == nil {
		return nil
	}
	parsed, err := optionalDate(field, value)
	if err != nil {
		return err
	}
	*target = parsed
	return nil
}

func nonNegativeAmount(field string, value *float64) (float64, error) {
	if value == nil {
		return 0, nil
	}
	if *value < 0 {
		return 0, invalidField(field, CodeNegative)
	}
	return *value, nil
}

func mergeAmount(field string, target *float64, value *float64) error {
	if value == nil {
		return nil
	}
	amount, err := nonNegativeAmount(field, value)
	if err != nil {
		return err
	}
	*target = amount
	return nil
}

func dayStart(now time.Time) time.Time {
	year, month, day := now.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
