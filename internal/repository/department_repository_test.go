package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/department-service/internal/domain"
)

func setupTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	return db, mock, func() { db.Close() }
}

func TestPostgresSave_InsertAssignsID(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("INSERT INTO departments").
		WithArgs("IT", "123 Tech St").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	repo := NewPostgresDepartmentRepository(db)
	dept := domain.Department{Name: "IT", Address: "123 Tech St"}

	err := repo.Save(context.Background(), &dept)
	require.NoError(t, err)
	assert.Equal(t, int64(1), dept.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresSave_ExistingIDUpserts(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectExec("INSERT INTO departments").
		WithArgs(int64(7), "HR", "55 Main Ave").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostgresDepartmentRepository(db)
	dept := domain.Department{ID: 7, Name: "HR", Address: "55 Main Ave"}

	err := repo.Save(context.Background(), &dept)
	require.NoError(t, err)
	assert.Equal(t, int64(7), dept.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFindAll(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"id", "name", "address"}).
		AddRow(int64(1), "IT", "123 Tech St").
		AddRow(int64(2), "HR", "55 Main Ave")
	mock.ExpectQuery("SELECT id, name, address").
		WillReturnRows(rows)

	repo := NewPostgresDepartmentRepository(db)
	result, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, domain.Department{ID: 1, Name: "IT", Address: "123 Tech St"}, result[0])
	assert.Equal(t, domain.Department{ID: 2, Name: "HR", Address: "55 Main Ave"}, result[1])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFindByID(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, name, address").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "address"}).
			AddRow(int64(1), "IT", "123 Tech St"))

	repo := NewPostgresDepartmentRepository(db)
	dept, err := repo.FindByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, &domain.Department{ID: 1, Name: "IT", Address: "123 Tech St"}, dept)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFindByID_Absent(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT id, name, address").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	repo := NewPostgresDepartmentRepository(db)
	dept, err := repo.FindByID(context.Background(), 42)
	assert.Nil(t, dept)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresExistsByID(t *testing.T) {
	tests := []struct {
		name   string
		id     int64
		exists bool
	}{
		{"present", 1, true},
		{"absent", 9, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, cleanup := setupTestDB(t)
			defer cleanup()

			mock.ExpectQuery("SELECT EXISTS").
				WithArgs(tt.id).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(tt.exists))

			repo := NewPostgresDepartmentRepository(db)
			exists, err := repo.ExistsByID(context.Background(), tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.exists, exists)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresDeleteByID(t *testing.T) {
	db, mock, cleanup := setupTestDB(t)
	defer cleanup()

	mock.ExpectExec("DELETE FROM departments").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewPostgresDepartmentRepository(db)
	err := repo.DeleteByID(context.Background(), 3)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
