package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/spec-kit/department-service/internal/domain"
)

// ErrNotFound is returned when no department matches the requested id.
var ErrNotFound = errors.New("department not found")

// DepartmentRepository manages department persistence.
type DepartmentRepository interface {
	// Save inserts dept when its ID is zero, assigning the generated id,
	// and overwrites the stored row otherwise.
	Save(ctx context.Context, dept *domain.Department) error
	// FindAll returns every stored department in ascending id order.
	FindAll(ctx context.Context) ([]domain.Department, error)
	// FindByID returns the department or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*domain.Department, error)
	// ExistsByID reports whether a department with the id is stored.
	ExistsByID(ctx context.Context, id int64) (bool, error)
	// DeleteByID removes the department unconditionally.
	DeleteByID(ctx context.Context, id int64) error
}

type postgresDepartmentRepository struct {
	db *sql.DB
}

// NewPostgresDepartmentRepository builds the repository over a sql.DB pool.
func NewPostgresDepartmentRepository(db *sql.DB) DepartmentRepository {
	return &postgresDepartmentRepository{db: db}
}

func (r *postgresDepartmentRepository) Save(ctx context.Context, dept *domain.Department) error {
	if dept.ID == 0 {
		const query = `
        INSERT INTO departments (name, address)
        VALUES ($1,$2)
        RETURNING id`
		if err := r.db.QueryRowContext(ctx, query, dept.Name, dept.Address).Scan(&dept.ID); err != nil {
			return fmt.Errorf("insert department: %w", err)
		}
		return nil
	}
	const query = `
        INSERT INTO departments (id, name, address)
        VALUES ($1,$2,$3)
        ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, address = EXCLUDED.address`
	if _, err := r.db.ExecContext(ctx, query, dept.ID, dept.Name, dept.Address); err != nil {
		return fmt.Errorf("upsert department: %w", err)
	}
	return nil
}

func (r *postgresDepartmentRepository) FindAll(ctx context.Context) ([]domain.Department, error) {
	const query = `
        SELECT id, name, address
        FROM departments ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var result []domain.Department
	for rows.Next() {
		var dept domain.Department
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.Address); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		result = append(result, dept)
	}
	return result, rows.Err()
}

func (r *postgresDepartmentRepository) FindByID(ctx context.Context, id int64) (*domain.Department, error) {
	const query = `
        SELECT id, name, address
        FROM departments WHERE id=$1`
	var dept domain.Department
	err := r.db.QueryRowContext(ctx, query, id).Scan(&dept.ID, &dept.Name, &dept.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get department: %w", err)
	}
	return &dept, nil
}

func (r *postgresDepartmentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	const query = `
        SELECT EXISTS (SELECT 1 FROM departments WHERE id=$1)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("check department: %w", err)
	}
	return exists, nil
}

func (r *postgresDepartmentRepository) DeleteByID(ctx context.Context, id int64) error {
	const query = `
        DELETE FROM departments WHERE id=$1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	return nil
}
