package view

import (
	"fmt"
	"strings"
	"time"

	"github.com/mwortmann/meetbook/entity"
)

// MeetingWithinHours builds the reminder predicate: a meeting matches iff
// its start time falls within [now, now+hours], bounds inclusive, with now
// read from the injected clock at evaluation time. Fails with
// ErrInvalidArgument unless hours is a positive integer.
func MeetingWithinHours(clock entity.Clock, hours int) (Predicate[entity.Meeting], error) {
	if hours <= 0 {
		return nil, fmt.Errorf("%w: reminder window must be a positive number of hours, got %d",
			entity.ErrInvalidArgument, hours)
	}
	window := time.Duration(hours) * time.Hour
	return func(m entity.Meeting) bool {
		now := clock.Now()
		return !m.Start.Before(now) && !m.Start.After(now.Add(window))
	}, nil
}

// PersonNameContains matches persons whose display name contains any of the
// keywords, case-insensitively. With no keywords nothing matches.
func PersonNameContains(keywords ...string) Predicate[entity.Person] {
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}
	return func(p entity.Person) bool {
		name := strings.ToLower(p.Name)
		for _, kw := range lowered {
			if kw != "" && strings.Contains(name, kw) {
				return true
			}
		}
		return false
	}
}

// MeetingTitleContains matches meetings whose title contains any of the
// keywords, case-insensitively.
func MeetingTitleContains(keywords ...string) Predicate[entity.Meeting] {
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}
	return func(m entity.Meeting) bool {
		title := strings.ToLower(m.Title)
		for _, kw := range lowered {
			if kw != "" && strings.Contains(title, kw) {
				return true
			}
		}
		return false
	}
}
