package utils

import (
	"fmt"
	"time"

	"github.com/suchimauz/clinic-admin-panel/internal/config"
)

// ParseDate парсит дату из строки в формате RFC3339, если не удается, то пробует дату со временем без таймзоны, потом дату без времени
func ParseDate(str string) (time.Time, error) {
	parsedDate, err := time.Parse(time.RFC3339, str)
	// Если не удалось пробуем дату со временем, но без таймзоны
	// По дефолту ставим таймзону из конфига
	if err != nil {
		parsedDate, err = time.ParseInLocation("2006-01-02T15:04:05", str, config.TimeZone)
		if err != nil {
			// Если не удалось, пробуем как дату без времени
			parsedDate, err = time.ParseInLocation("2006-01-02", str, config.TimeZone)
			if err != nil {
				return time.Time{}, fmt.Errorf("failed to parse time: %v", err)
			}
		}
	}

	return parsedDate, nil
}

// DateOnly приводит дату к виду YYYY-MM-DD
func DateOnly(t time.Time) string {
	return t.Format("2006-01-02")
}

// ClockLabel - время слота для отображения, 24-часовой формат в таймзоне панели
func ClockLabel(t time.Time) string {
	return t.In(config.TimeZone).Format("15:04")
}
