// Package calendar renders lesson sessions as an iCalendar feed.
package calendar

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
)

const productID = "-//academy-api//lessons//KO"

// Event is one timed entry of the feed.
type Event struct {
	UID         string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
}

// Feed describes a calendar document.
type Feed struct {
	Name     string
	Timezone string
	Stamp    time.Time
	Events   []Event
}

// Render serializes the feed. Times are written in UTC.
func Render(feed Feed) (string, error) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(productID)
	if feed.Name != "" {
		cal.SetXWRCalName(feed.Name)
	}
	if feed.Timezone != "" {
		cal.SetXWRTimezone(feed.Timezone)
	}

	for _, e := range feed.Events {
		if e.UID == "" {
			return "", fmt.Errorf("calendar event without uid")
		}
		event := cal.AddEvent(e.UID)
		event.SetDtStampTime(feed.Stamp)
		event.SetStartAt(e.Start)
		event.SetEndAt(e.End)
		event.SetSummary(e.Summary)
		if e.Description != "" {
			event.SetDescription(e.Description)
		}
	}

	return cal.Serialize(), nil
}
