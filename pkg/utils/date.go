package utils

import (
	"strings"
	"time"
)

var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseInstant interpreta datas vindas do painel. Vazio significa sem limite.
func ParseInstant(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	var lastErr error
	for _, layout := range instantLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			t = t.UTC()
			return &t, nil
		}
		lastErr = err
	}

	return nil, lastErr
}
