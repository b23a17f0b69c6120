package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-service/internal/api/dto"
	"github.com/spec-kit/staff-service/internal/domain"
	"github.com/spec-kit/staff-service/internal/repository"
	apperrors "github.com/spec-kit/staff-service/pkg/errorutil"
)

// EmployeesHandler exposes the permissive employee layer. It matches
// records by identifier only; no format validation happens here.
type EmployeesHandler struct {
	repo repository.EmployeeRepository
}

// NewEmployeesHandler constructs handler.
func NewEmployeesHandler(repo repository.EmployeeRepository) *EmployeesHandler {
	return &EmployeesHandler{repo: repo}
}

// List handles GET /employees.
func (h *EmployeesHandler) List(c *fiber.Ctx) error {
	employees, err := h.repo.GetEmployees(c.UserContext())
	if err != nil {
		return apperrors.NewStorageFault("Error fetching employee records.", err)
	}
	resp := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		resp = append(resp, employeeResponse(&employees[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /employees/:id.
func (h *EmployeesHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	emp, err := h.repo.GetEmployee(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return employeeNotFound(id)
		}
		return apperrors.NewStorageFault("Error fetching employee record.", err)
	}
	return c.JSON(fiber.Map{"data": employeeResponse(emp)})
}

// Create handles POST /employees.
func (h *EmployeesHandler) Create(c *fiber.Ctx) error {
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	emp := employeeFromRequest(req)
	if err := h.repo.AddEmployee(c.UserContext(), &emp); err != nil {
		return apperrors.NewStorageFault("Error creating employee record.", err)
	}
	c.Set("Location", fmt.Sprintf("/employees/%d", emp.ID))
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": employeeResponse(&emp)})
}

// Update handles PUT /employees/:id.
func (h *EmployeesHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.EmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if req.ID != id {
		return apperrors.NewConflict("Employee ID mismatch.", nil)
	}
	emp := employeeFromRequest(req)
	if err := h.repo.UpdateEmployee(c.UserContext(), &emp); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return employeeNotFound(id)
		}
		return apperrors.NewStorageFault("Error updating employee record.", err)
	}
	return c.JSON(fiber.Map{"data": employeeResponse(&emp)})
}

// Delete handles DELETE /employees/:id.
func (h *EmployeesHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	emp, err := h.repo.DeleteEmployee(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return employeeNotFound(id)
		}
		return apperrors.NewStorageFault("Error deleting employee record.", err)
	}
	return c.JSON(fiber.Map{"data": employeeResponse(emp)})
}

func employeeNotFound(id int) error {
	return apperrors.NewNotFound(fmt.Sprintf("Employee with Id = %d not found.", id), nil)
}

func employeeFromRequest(req dto.EmployeeRequest) domain.Employee {
	return domain.Employee{
		ID:           req.ID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		DateOfBirth:  req.DateOfBirth,
		GenderID:     req.GenderID,
		DepartmentID: req.DepartmentID,
	}
}

func employeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	return dto.EmployeeResponse{
		ID:           emp.ID,
		FirstName:    emp.FirstName,
		LastName:     emp.LastName,
		Email:        emp.Email,
		DateOfBirth:  emp.DateOfBirth,
		GenderID:     emp.GenderID,
		DepartmentID: emp.DepartmentID,
	}
}
