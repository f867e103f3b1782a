package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/spec-kit/department-service/internal/domain"
)

// memoryDepartmentRepository keeps departments in a process-local map. It is
// the default store when no postgres DSN is configured, and assigns ids from
// a monotonically increasing counter the way the database sequence would.
type memoryDepartmentRepository struct {
	mu     sync.RWMutex
	rows   map[int64]domain.Department
	nextID int64
}

// NewMemoryDepartmentRepository builds an empty in-memory repository.
func NewMemoryDepartmentRepository() DepartmentRepository {
	return &memoryDepartmentRepository{rows: make(map[int64]domain.Department)}
}

func (r *memoryDepartmentRepository) Save(_ context.Context, dept *domain.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if dept.ID == 0 {
		r.nextID++
		dept.ID = r.nextID
	} else if dept.ID > r.nextID {
		r.nextID = dept.ID
	}
	r.rows[dept.ID] = *dept
	return nil
}

func (r *memoryDepartmentRepository) FindAll(_ context.Context) ([]domain.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.Department, 0, len(r.rows))
	for _, dept := range r.rows {
		result = append(result, dept)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (r *memoryDepartmentRepository) FindByID(_ context.Context, id int64) (*domain.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dept, ok := r.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &dept, nil
}

func (r *memoryDepartmentRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.rows[id]
	return ok, nil
}

func (r *memoryDepartmentRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rows, id)
	return nil
}
