package dto

import "github.com/spec-kit/department-service/internal/domain"

// CreateDepartmentRequest payload. The id is never accepted from clients,
// the store assigns it.
type CreateDepartmentRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// UpdateDepartmentRequest payload. Empty fields keep their stored values.
type UpdateDepartmentRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// DepartmentResponse is the wire form of a department.
type DepartmentResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// DepartmentFromDomain maps the entity to its wire form.
func DepartmentFromDomain(dept *domain.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:      dept.ID,
		Name:    dept.Name,
		Address: dept.Address,
	}
}
