package models

import (
	"fmt"
	"time"

	"github.com/julianstephens/dayboard/internal/constants"
)

// MapToSettings converts stored key-value pairs to a Settings struct.
// Unknown keys are ignored.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingLastProcessedDate:
			settings.LastProcessedDate = value
		case constants.SettingReminderDismissedAt:
			if value == "" {
				continue
			}
			t, err := time.Parse(time.RFC3339, value)
			if err != nil {
				return Settings{}, fmt.Errorf("parsing %s: %w", key, err)
			}
			settings.ReminderDismissedAt = &t
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to key-value pairs for storage.
func SettingsToMap(settings Settings) map[string]string {
	dismissed := ""
	if settings.ReminderDismissedAt != nil {
		dismissed = settings.ReminderDismissedAt.Format(time.RFC3339)
	}
	return map[string]string{
		constants.SettingLastProcessedDate:   settings.LastProcessedDate,
		constants.SettingReminderDismissedAt: dismissed,
	}
}
