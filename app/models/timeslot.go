package models

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeSlot is one row of the bell table: a period number mapped to a
// wall-clock interval. Times are "HH:MM" strings, ordered by start time.
type TimeSlot struct {
	ID        string `json:"id" db:"id"`
	Period    int    `json:"period" db:"period"`
	StartTime string `json:"start_time" db:"start_time"`
	EndTime   string `json:"end_time" db:"end_time"`
}

// DurationMinutes returns the slot length in minutes.
func (s *TimeSlot) DurationMinutes() int {
	start, err1 := MinuteOfDay(s.StartTime)
	end, err2 := MinuteOfDay(s.EndTime)
	if err1 != nil || err2 != nil {
		return 0
	}
	return end - start
}

// MinuteOfDay converts an "HH:MM" string to minutes since midnight.
func MinuteOfDay(t string) (int, error) {
	parts := strings.SplitN(t, ":", 3)
	if len(parts) < 2 {
		return 0, fmt.Errorf("invalid time %q, want HH:MM", t)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", t)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute in %q", t)
	}
	return h*60 + m, nil
}

// FormatMinutes converts minutes since midnight back to "HH:MM".
func FormatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// AddMinutes shifts an "HH:MM" time forward by d minutes.
func AddMinutes(t string, d int) (string, error) {
	m, err := MinuteOfDay(t)
	if err != nil {
		return "", err
	}
	return FormatMinutes((m + d) % (24 * 60)), nil
}

// PeriodForStart resolves a period number by matching a start time against the
// bell table. Returns 0 when no canonical slot starts at that time.
func PeriodForStart(slots []*TimeSlot, start string) int {
	for _, s := range slots {
		if s.StartTime == start {
			return s.Period
		}
	}
	return 0
}
