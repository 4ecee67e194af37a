package json_types

import (
	"encoding/json"
	"fmt"
	"time"
)

// Clock - время дня без даты, рабочие часы доктора приходят в виде "09:00"
type Clock struct {
	Time time.Time
}

func (t *Clock) UnmarshalJSON(data []byte) error {
	// Убираем кавычки вокруг строки
	str := string(data[1 : len(data)-1])
	parsedTime, err := time.Parse("15:04", str)
	if err != nil {
		// Иногда бэкенд присылает время с секундами
		parsedTime, err = time.Parse("15:04:05", str)
		if err != nil {
			return fmt.Errorf("failed to parse clock: %v", err)
		}
	}
	*t = Clock{Time: parsedTime}
	return nil
}

func (t Clock) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format("15:04"))
}
