package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/spec-kit/staff-service/internal/domain"
)

// MemoryStaffRepository is a mutex-guarded in-memory StaffRepository.
// Ids are assigned from a monotonically increasing counter and never
// reused after deletion within the process lifetime.
type MemoryStaffRepository struct {
	mu     sync.Mutex
	nextID int
	staff  map[int]domain.Staff
}

var _ StaffRepository = (*MemoryStaffRepository)(nil)

// NewMemoryStaffRepository seeds the repository with the given records,
// assigning ids to any record that lacks one.
func NewMemoryStaffRepository(seed ...domain.Staff) *MemoryStaffRepository {
	r := &MemoryStaffRepository{nextID: 1, staff: make(map[int]domain.Staff)}
	for _, s := range seed {
		if s.ID == 0 {
			s.ID = r.nextID
		}
		r.staff[s.ID] = s
		if s.ID >= r.nextID {
			r.nextID = s.ID + 1
		}
	}
	return r
}

func (r *MemoryStaffRepository) GetAll(_ context.Context) ([]domain.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]domain.Staff, 0, len(r.staff))
	for _, s := range r.staff {
		result = append(result, s)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *MemoryStaffRepository) GetByID(_ context.Context, id int) (*domain.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.staff[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &s, nil
}

func (r *MemoryStaffRepository) Add(_ context.Context, staff *domain.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	staff.ID = r.nextID
	r.nextID++
	r.staff[staff.ID] = *staff
	return nil
}

func (r *MemoryStaffRepository) Update(_ context.Context, staff *domain.Staff) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.staff[staff.ID]; !ok {
		return ErrNotFound
	}
	r.staff[staff.ID] = *staff
	return nil
}

func (r *MemoryStaffRepository) Delete(_ context.Context, id int) (*domain.Staff, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.staff[id]
	if !ok {
		return nil, ErrNotFound
	}
	delete(r.staff, id)
	return &s, nil
}
