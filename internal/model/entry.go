package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidEntry is returned when form input cannot become an Entry.
var ErrInvalidEntry = errors.New("invalid entry")

// Entry represents a single logged study session.
type Entry struct {
	ID       int64   `json:"id"`
	Date     Date    `json:"date"`
	Problems int     `json:"problems"`
	Hours    float64 `json:"hours"`
	Topic    string  `json:"topic"`
	Category string  `json:"category"`
	Notes    string  `json:"notes"`
}

// Validate checks the constraints the entry form places on its fields.
// The store and repository accept any Entry; callers that build entries
// from user input run Validate first.
func (e Entry) Validate(today Date) error {
	switch {
	case e.Date.IsZero():
		return fmt.Errorf("%w: date is required", ErrInvalidEntry)
	case e.Date.After(today):
		return fmt.Errorf("%w: date %s is in the future", ErrInvalidEntry, e.Date)
	case e.Problems < 0:
		return fmt.Errorf("%w: problems must not be negative", ErrInvalidEntry)
	case math.IsNaN(e.Hours) || math.IsInf(e.Hours, 0):
		return fmt.Errorf("%w: hours must be a finite number", ErrInvalidEntry)
	case e.Hours < 0:
		return fmt.Errorf("%w: hours must not be negative", ErrInvalidEntry)
	case strings.TrimSpace(e.Topic) == "":
		return fmt.Errorf("%w: topic is required", ErrInvalidEntry)
	case strings.TrimSpace(e.Category) == "":
		return fmt.Errorf("%w: category is required", ErrInvalidEntry)
	}
	return nil
}
