package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/staff-service/internal/cache"
	"github.com/spec-kit/staff-service/internal/domain"
	"github.com/spec-kit/staff-service/internal/events"
	"github.com/spec-kit/staff-service/internal/repository"
)

// StaffService orchestrates the staff repository, the read cache and the
// event dispatcher. Repository sentinels pass through untouched so the
// transport layer can tell a miss from a store fault.
type StaffService struct {
	repo       repository.StaffRepository
	cache      *cache.StaffCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// StaffDependencies bundles the collaborators of StaffService.
type StaffDependencies struct {
	Repo       repository.StaffRepository
	Cache      *cache.StaffCache
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewStaffService constructs the service.
func NewStaffService(deps StaffDependencies) *StaffService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaffService{
		repo:       deps.Repo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		logger:     logger,
	}
}

// List returns all staff records, cache first.
func (s *StaffService) List(ctx context.Context) ([]domain.Staff, error) {
	if list, ok := s.cache.GetList(ctx); ok {
		return list, nil
	}
	list, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetList(ctx, list)
	return list, nil
}

// Get returns a single record by id.
func (s *StaffService) Get(ctx context.Context, id int) (*domain.Staff, error) {
	if staff, ok := s.cache.GetRecord(ctx, id); ok {
		return staff, nil
	}
	staff, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetRecord(ctx, *staff)
	return staff, nil
}

// Create persists a new record; the store assigns the id.
func (s *StaffService) Create(ctx context.Context, staff *domain.Staff) error {
	if err := s.repo.Add(ctx, staff); err != nil {
		return err
	}
	s.publish(ctx, events.EventStaffCreated, *staff)
	return nil
}

// Update replaces the record with the matching id.
func (s *StaffService) Update(ctx context.Context, staff *domain.Staff) error {
	if err := s.repo.Update(ctx, staff); err != nil {
		return err
	}
	s.publish(ctx, events.EventStaffUpdated, *staff)
	return nil
}

// Delete removes the record and returns it.
func (s *StaffService) Delete(ctx context.Context, id int) (*domain.Staff, error) {
	staff, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventStaffDeleted, *staff)
	return staff, nil
}

func (s *StaffService) publish(ctx context.Context, eventType events.EventType, staff domain.Staff) {
	if s.dispatcher == nil {
		return
	}
	if err := s.dispatcher.Publish(ctx, events.NewStaffEvent(eventType, staff)); err != nil {
		s.logger.Warn("dispatch staff event", zap.String("type", string(eventType)), zap.Error(err))
	}
}
