package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/department-service/internal/api/dto"
	"github.com/spec-kit/department-service/internal/domain"
	"github.com/spec-kit/department-service/internal/service"
	apperrors "github.com/spec-kit/department-service/pkg/util"
)

// DepartmentHandler maps the /departments routes onto the service.
type DepartmentHandler struct {
	service *service.DepartmentService
}

// NewDepartmentHandler constructs handler.
func NewDepartmentHandler(departmentService *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: departmentService}
}

// Save POST /departments.
func (h *DepartmentHandler) Save(c *fiber.Ctx) error {
	var req dto.CreateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	dept, err := h.service.SaveDepartment(c.UserContext(), domain.Department{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.DepartmentFromDomain(dept))
}

// List GET /departments.
func (h *DepartmentHandler) List(c *fiber.Ctx) error {
	depts, err := h.service.FetchDepartmentList(c.UserContext())
	if err != nil {
		return err
	}
	items := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		items = append(items, dto.DepartmentFromDomain(&depts[i]))
	}
	return c.JSON(items)
}

// Get GET /departments/:id.
func (h *DepartmentHandler) Get(c *fiber.Ctx) error {
	id, err := parseDepartmentID(c)
	if err != nil {
		return err
	}
	dept, err := h.service.GetDepartmentByID(c.UserContext(), id)
	if err != nil {
		return err
	}
	return c.JSON(dto.DepartmentFromDomain(dept))
}

// Update PUT /departments/:id.
func (h *DepartmentHandler) Update(c *fiber.Ctx) error {
	id, err := parseDepartmentID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	dept, err := h.service.UpdateDepartment(c.UserContext(), id, domain.Department{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		return err
	}
	return c.JSON(dto.DepartmentFromDomain(dept))
}

// Delete DELETE /departments/:id.
func (h *DepartmentHandler) Delete(c *fiber.Ctx) error {
	id, err := parseDepartmentID(c)
	if err != nil {
		return err
	}
	if err := h.service.DeleteDepartmentByID(c.UserContext(), id); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func parseDepartmentID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid department id", map[string]any{"id": c.Params("id")})
	}
	return id, nil
}
