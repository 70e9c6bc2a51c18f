package model

import (
	"slices"
	"time"
)

// PlantStateKey is the key the persisted plant state is stored under
const PlantStateKey = "vatika-plants-storage"

// DateLayout is the calendar-date format used for rotation bookkeeping
const DateLayout = "2006-01-02"

// FormatDate returns the calendar date of t in DateLayout
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// PlantState is the subset of the plant store that survives restarts.
// The catalog itself is never part of it.
type PlantState struct {
	BookmarkedPlants []PlantID `json:"bookmarkedPlants" firestore:"bookmarkedPlants"`
	LastRotated      string    `json:"lastRotated" firestore:"lastRotated"`
	DailyPlant       *Plant    `json:"dailyPlant" firestore:"dailyPlant"`
}

// NewPlantState returns the state of a store constructed at now
func NewPlantState(now time.Time) *PlantState {
	return &PlantState{
		BookmarkedPlants: []PlantID{},
		LastRotated:      FormatDate(now),
	}
}

// Clone returns a deep copy of the state
func (s *PlantState) Clone() *PlantState {
	if s == nil {
		return nil
	}
	bookmarks := slices.Clone(s.BookmarkedPlants)
	if bookmarks == nil {
		bookmarks = []PlantID{}
	}
	return &PlantState{
		BookmarkedPlants: bookmarks,
		LastRotated:      s.LastRotated,
		DailyPlant:       s.DailyPlant.Clone(),
	}
}
