package usecase

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/vatika/pkg/domain/interfaces"
	"github.com/secmon-lab/vatika/pkg/domain/model"
	"github.com/secmon-lab/vatika/pkg/utils/logging"
)

// PlantStore holds the plant catalog in memory together with the bookmark
// and plant-of-the-day state. Reads are served from memory. Every mutation
// replaces whole fields under the write lock and then saves the persisted
// subset.
//
// The catalog fetch in Initialize runs without holding the lock, so a
// mutation issued while a fetch is in flight may interleave with it. The
// last writer wins.
type PlantStore struct {
	catalog   interfaces.CatalogService
	stateRepo interfaces.PlantStateRepository
	now       func() time.Time
	randIntN  func(n int) int

	mu          sync.RWMutex
	plants      []*model.Plant
	bookmarks   []model.PlantID
	dailyPlant  *model.Plant
	lastRotated string
}

// PlantStoreOption configures a PlantStore
type PlantStoreOption func(*PlantStore)

// WithClock sets the time source used to decide the current calendar day
func WithClock(now func() time.Time) PlantStoreOption {
	return func(s *PlantStore) {
		s.now = now
	}
}

// WithRandom sets the function used to pick the initial daily plant.
// It must return a value in [0, n).
func WithRandom(intN func(n int) int) PlantStoreOption {
	return func(s *PlantStore) {
		s.randIntN = intN
	}
}

// NewPlantStore creates an empty store. lastRotated starts at the current
// date and there is no daily plant until Initialize or Restore runs.
func NewPlantStore(catalog interfaces.CatalogService, stateRepo interfaces.PlantStateRepository, opts ...PlantStoreOption) *PlantStore {
	s := &PlantStore{
		catalog:   catalog,
		stateRepo: stateRepo,
		now:       time.Now,
		randIntN:  rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}

	initial := model.NewPlantState(s.now())
	s.bookmarks = initial.BookmarkedPlants
	s.lastRotated = initial.LastRotated
	s.plants = []*model.Plant{}

	return s
}

func (s *PlantStore) today() string {
	return model.FormatDate(s.now())
}

// Plants returns the catalog in its original order
func (s *PlantStore) Plants() []*model.Plant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.plants)
}

// GetPlant returns the plant with the given ID
func (s *PlantStore) GetPlant(id model.PlantID) (*model.Plant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if p := findPlant(s.plants, id); p != nil {
		return p, nil
	}
	return nil, goerr.Wrap(ErrPlantNotFound, "plant is not in the catalog", goerr.V(PlantIDKey, id))
}

// SearchPlants matches query case-insensitively as a substring of name,
// scientific name, any condition or any use. A blank query matches nothing.
func (s *PlantStore) SearchPlants(query string) []*model.Plant {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []*model.Plant{}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []*model.Plant{}
	for _, p := range s.plants {
		if plantMatches(p, q) {
			matched = append(matched, p)
		}
	}
	return matched
}

func plantMatches(p *model.Plant, q string) bool {
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.ScientificName), q) {
		return true
	}
	for _, c := range p.Conditions {
		if strings.Contains(strings.ToLower(c), q) {
			return true
		}
	}
	for _, u := range p.Uses {
		if strings.Contains(strings.ToLower(u), q) {
			return true
		}
	}
	return false
}

// FilterByCategory returns the plants tagged with category in catalog order
func (s *PlantStore) FilterByCategory(category string) []*model.Plant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := []*model.Plant{}
	for _, p := range s.plants {
		if p.HasCategory(category) {
			matched = append(matched, p)
		}
	}
	return matched
}

// BookmarkedPlants returns bookmarked IDs in insertion order, duplicates included
func (s *PlantStore) BookmarkedPlants() []model.PlantID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.bookmarks)
}

// BookmarkedPlantDetails resolves bookmarks against the current catalog.
// IDs that are no longer in the catalog are skipped and each plant appears once.
func (s *PlantStore) BookmarkedPlantDetails() []*model.Plant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[model.PlantID]struct{}, len(s.bookmarks))
	plants := []*model.Plant{}
	for _, id := range s.bookmarks {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		if p := findPlant(s.plants, id); p != nil {
			plants = append(plants, p)
		}
	}
	return plants
}

// IsBookmarked reports whether id is bookmarked
func (s *PlantStore) IsBookmarked(id model.PlantID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Contains(s.bookmarks, id)
}

// DailyPlant returns the current plant of the day, or nil
func (s *PlantStore) DailyPlant() *model.Plant {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dailyPlant
}

// LastRotated returns the date of the last daily plant selection
func (s *PlantStore) LastRotated() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRotated
}

// AddBookmark appends id without checking for an existing entry
func (s *PlantStore) AddBookmark(ctx context.Context, id model.PlantID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookmarks := make([]model.PlantID, 0, len(s.bookmarks)+1)
	bookmarks = append(bookmarks, s.bookmarks...)
	s.bookmarks = append(bookmarks, id)

	return s.persistLocked(ctx)
}

// RemoveBookmark removes every occurrence of id
func (s *PlantStore) RemoveBookmark(ctx context.Context, id model.PlantID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	bookmarks := make([]model.PlantID, 0, len(s.bookmarks))
	for _, b := range s.bookmarks {
		if b != id {
			bookmarks = append(bookmarks, b)
		}
	}
	s.bookmarks = bookmarks

	return s.persistLocked(ctx)
}

// SetDailyPlant overwrites the plant of the day without touching lastRotated
func (s *PlantStore) SetDailyPlant(ctx context.Context, plant *model.Plant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dailyPlant = plant
	return s.persistLocked(ctx)
}

// RotateDailyPlant advances the plant of the day to the next plant in the
// catalog, at most once per calendar day. A daily plant that is missing or
// no longer in the catalog is treated as index -1, so the first plant is
// chosen. It reports whether a rotation happened.
func (s *PlantStore) RotateDailyPlant(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.today()
	if s.lastRotated == today || len(s.plants) == 0 {
		return false, nil
	}

	idx := -1
	if s.dailyPlant != nil {
		idx = slices.IndexFunc(s.plants, func(p *model.Plant) bool {
			return p.ID == s.dailyPlant.ID
		})
	}
	next := s.plants[(idx+1)%len(s.plants)]

	s.dailyPlant = next
	s.lastRotated = today

	logging.From(ctx).Info("rotated daily plant",
		PlantIDKey, next.ID,
		"previous_index", idx,
		"date", today,
	)

	if err := s.persistLocked(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// Initialize fetches the catalog and replaces the current one wholesale.
// Every failure matches ErrCatalog and leaves the current catalog as it was. When no daily plant is
// set or the last selection was not today, a random plant is picked.
func (s *PlantStore) Initialize(ctx context.Context) error {
	fetched, err := s.catalog.FetchPlants(ctx)
	if err != nil {
		if errors.Is(err, ErrCatalog) {
			return err
		}
		return goerr.Wrap(errors.Join(ErrCatalog, err), "failed to fetch plant catalog")
	}
	if err := ValidateCatalog(fetched); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.plants = fetched

	today := s.today()
	if s.lastRotated != today || s.dailyPlant == nil {
		s.dailyPlant = fetched[s.randIntN(len(fetched))]
		s.lastRotated = today
	}

	logging.From(ctx).Info("initialized plant catalog",
		"count", len(fetched),
		"daily_plant", s.dailyPlant.ID,
	)

	return s.persistLocked(ctx)
}

// InitializePlants is an alias of Initialize
func (s *PlantStore) InitializePlants(ctx context.Context) error {
	return s.Initialize(ctx)
}

// Restore loads the persisted subset. When nothing has been saved, the
// defaults set by NewPlantStore are kept.
func (s *PlantStore) Restore(ctx context.Context) error {
	state, err := s.stateRepo.Load(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to load plant state")
	}
	if state == nil {
		return nil
	}
	state = state.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.bookmarks = state.BookmarkedPlants
	s.dailyPlant = state.DailyPlant
	if state.LastRotated != "" {
		s.lastRotated = state.LastRotated
	}
	return nil
}

// State returns a snapshot of the persisted subset
func (s *PlantStore) State() *model.PlantState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *PlantStore) snapshotLocked() *model.PlantState {
	return (&model.PlantState{
		BookmarkedPlants: s.bookmarks,
		LastRotated:      s.lastRotated,
		DailyPlant:       s.dailyPlant,
	}).Clone()
}

// persistLocked saves the persisted subset. The in-memory change is kept
// even when saving fails.
func (s *PlantStore) persistLocked(ctx context.Context) error {
	if s.stateRepo == nil {
		return nil
	}
	if err := s.stateRepo.Save(ctx, s.snapshotLocked()); err != nil {
		return goerr.Wrap(err, "failed to persist plant state")
	}
	return nil
}

// ValidateCatalog checks that a fetched catalog is usable: non-empty, no
// null entries, every plant valid and every ID unique. Failures wrap ErrCatalog.
func ValidateCatalog(plants []*model.Plant) error {
	if len(plants) == 0 {
		return goerr.Wrap(ErrCatalog, "catalog is empty")
	}

	seen := make(map[model.PlantID]struct{}, len(plants))
	for i, p := range plants {
		if p == nil {
			return goerr.Wrap(ErrCatalog, "catalog contains a null entry", goerr.V("index", i))
		}
		if err := p.Validate(); err != nil {
			return goerr.Wrap(ErrCatalog, "catalog contains an invalid plant",
				goerr.V("index", i),
				goerr.V("cause", err.Error()),
			)
		}
		if _, ok := seen[p.ID]; ok {
			return goerr.Wrap(ErrCatalog, "catalog contains a duplicate plant ID", goerr.V(PlantIDKey, p.ID))
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

func findPlant(plants []*model.Plant, id model.PlantID) *model.Plant {
	for _, p := range plants {
		if p.ID == id {
			return p
		}
	}
	return nil
}
