package services

import (
	"context"
	"slices"
	"sync"

	"coffeeshop/internal/domain"
	applog "coffeeshop/internal/log"
	"coffeeshop/internal/repos"
)

// LocationService holds the current delivery location, the saved list and the
// picker/form flags of the location screens.
type LocationService struct {
	Repo   *repos.LocationRepo
	Writer *repos.AsyncWriter

	mu    sync.Mutex
	state domain.LocationState
}

func NewLocationService(repo *repos.LocationRepo, w *repos.AsyncWriter) *LocationService {
	defaults := domain.DefaultLocations()
	return &LocationService{Repo: repo, Writer: w, state: domain.LocationState{
		CurrentLocation: defaults[0],
		SavedLocations:  defaults,
	}}
}

// Load restores the saved list. With nothing stored the defaults are written
// to the store; an unreadable store falls back to the defaults in memory.
func (s *LocationService) Load(ctx context.Context) {
	stored, ok, err := s.Repo.Load(ctx)
	switch {
	case err != nil:
		applog.Error(nil, "locations.load.fail", err, nil)
		defaults := domain.DefaultLocations()
		s.mu.Lock()
		s.state.SavedLocations = defaults
		s.state.CurrentLocation = defaults[0]
		s.mu.Unlock()
	case !ok:
		if err := s.Repo.Save(ctx, domain.DefaultLocations()); err != nil {
			applog.Error(nil, "locations.seed.fail", err, nil)
		}
	case len(stored) > 0:
		s.mu.Lock()
		s.state.SavedLocations = stored
		s.state.CurrentLocation = stored[0]
		s.mu.Unlock()
	}
}

// AddSavedLocation validates, appends and selects loc. A failure is stored in
// FormError and returned as a *FormError; nothing else changes.
func (s *LocationService) AddSavedLocation(ctx context.Context, loc domain.Location) error {
	s.mu.Lock()
	if slices.ContainsFunc(s.state.SavedLocations, func(l domain.Location) bool { return l.Name == loc.Name }) {
		return s.failLocked(ErrDuplicateName, MsgDuplicateLocation)
	}
	if loc.Name == "" || loc.Address == "" {
		return s.failLocked(ErrValidation, MsgLocationRequired)
	}

	s.state.SavedLocations = append(slices.Clone(s.state.SavedLocations), loc)
	s.state.CurrentLocation = loc
	s.state.FormError = nil
	s.state.IsAddingAddress = false
	s.state.IsPickerOpen = true
	snap := slices.Clone(s.state.SavedLocations)
	s.mu.Unlock()

	s.persist(ctx, snap)
	return nil
}

func (s *LocationService) failLocked(kind error, msg string) error {
	m := msg
	s.state.FormError = &m
	s.mu.Unlock()
	return &FormError{Kind: kind, Message: msg}
}

// RemoveSavedLocation drops the named location. If it was current, the first
// remaining location takes over; an emptied list keeps the old current.
func (s *LocationService) RemoveSavedLocation(ctx context.Context, name string) {
	s.mu.Lock()
	s.state.SavedLocations = slices.DeleteFunc(slices.Clone(s.state.SavedLocations), func(l domain.Location) bool {
		return l.Name == name
	})
	if s.state.CurrentLocation.Name == name && len(s.state.SavedLocations) > 0 {
		s.state.CurrentLocation = s.state.SavedLocations[0]
	}
	snap := slices.Clone(s.state.SavedLocations)
	s.mu.Unlock()

	s.persist(ctx, snap)
}

func (s *LocationService) SetCurrentLocation(loc domain.Location) {
	s.mu.Lock()
	s.state.CurrentLocation = loc
	s.mu.Unlock()
}

func (s *LocationService) SetPickerOpen(open bool) {
	s.mu.Lock()
	s.state.IsPickerOpen = open
	s.mu.Unlock()
}

func (s *LocationService) SetAddingAddress(adding bool) {
	s.mu.Lock()
	s.state.IsAddingAddress = adding
	s.mu.Unlock()
}

func (s *LocationService) SetFormError(msg *string) {
	s.mu.Lock()
	s.state.FormError = msg
	s.mu.Unlock()
}

func (s *LocationService) State() domain.LocationState {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state
	out.SavedLocations = slices.Clone(s.state.SavedLocations)
	if out.SavedLocations == nil {
		out.SavedLocations = []domain.Location{}
	}
	if s.state.FormError != nil {
		m := *s.state.FormError
		out.FormError = &m
	}
	return out
}

func (s *LocationService) persist(ctx context.Context, snap []domain.Location) {
	s.Writer.Go(ctx, "locations.persist", func(ctx context.Context) error {
		return s.Repo.Save(ctx, snap)
	})
}
