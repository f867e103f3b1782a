package service

import (
	"context"
	"errors"

	"github.com/spec-kit/department-service/internal/cache"
	"github.com/spec-kit/department-service/internal/domain"
	"github.com/spec-kit/department-service/internal/repository"
	apperrors "github.com/spec-kit/department-service/pkg/util"
)

// DepartmentService exposes department CRUD operations to the transport
// layer. It owns the not-found policy: operating on an id that is not stored
// always fails with a NOT_FOUND domain error, regardless of which store
// backs the repository.
type DepartmentService struct {
	departments repository.DepartmentRepository
	cache       *cache.DepartmentCache
}

// DepartmentDependencies bundles collaborators for the service.
type DepartmentDependencies struct {
	DepartmentRepo repository.DepartmentRepository
	// Cache may be nil, which disables the read cache entirely.
	Cache *cache.DepartmentCache
}

// NewDepartmentService constructs the service.
func NewDepartmentService(deps DepartmentDependencies) *DepartmentService {
	return &DepartmentService{
		departments: deps.DepartmentRepo,
		cache:       deps.Cache,
	}
}

// SaveDepartment persists a new department and returns it with the
// store-assigned id.
func (s *DepartmentService) SaveDepartment(ctx context.Context, dept domain.Department) (*domain.Department, error) {
	if err := s.departments.Save(ctx, &dept); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.cache.Set(ctx, dept)
	return &dept, nil
}

// FetchDepartmentList returns every stored department. The result is never
// nil so an empty store serializes as an empty JSON array.
func (s *DepartmentService) FetchDepartmentList(ctx context.Context) ([]domain.Department, error) {
	depts, err := s.departments.FindAll(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if depts == nil {
		depts = []domain.Department{}
	}
	return depts, nil
}

// GetDepartmentByID returns the department or a NOT_FOUND error.
func (s *DepartmentService) GetDepartmentByID(ctx context.Context, id int64) (*domain.Department, error) {
	if dept, hit := s.cache.Get(ctx, id); hit {
		return dept, nil
	}
	dept, err := s.departments.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewNotFound("department", map[string]any{"id": id})
	}
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	s.cache.Set(ctx, *dept)
	return dept, nil
}

// UpdateDepartment overwrites the mutable fields of an existing department
// and persists it. Empty fields in the incoming record keep the stored
// value, matching the create-then-patch usage of the original surface.
func (s *DepartmentService) UpdateDepartment(ctx context.Context, id int64, dept domain.Department) (*domain.Department, error) {
	existing, err := s.departments.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.NewNotFound("department", map[string]any{"id": id})
	}
	if err != nil {
		return nil, apperrors.MapError(err)
	}

	if dept.Name != "" {
		existing.Name = dept.Name
	}
	if dept.Address != "" {
		existing.Address = dept.Address
	}

	if err := s.departments.Save(ctx, existing); err != nil {
		return nil, apperrors.MapError(err)
	}
	s.cache.Set(ctx, *existing)
	return existing, nil
}

// DeleteDepartmentByID removes the department or fails with NOT_FOUND.
func (s *DepartmentService) DeleteDepartmentByID(ctx context.Context, id int64) error {
	exists, err := s.departments.ExistsByID(ctx, id)
	if err != nil {
		return apperrors.MapError(err)
	}
	if !exists {
		return apperrors.NewNotFound("department", map[string]any{"id": id})
	}
	if err := s.departments.DeleteByID(ctx, id); err != nil {
		return apperrors.MapError(err)
	}
	s.cache.Invalidate(ctx, id)
	return nil
}
