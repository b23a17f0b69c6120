package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/staff-service/internal/api/dto"
	"github.com/spec-kit/staff-service/internal/domain"
	"github.com/spec-kit/staff-service/internal/repository"
	"github.com/spec-kit/staff-service/internal/service"
	"github.com/spec-kit/staff-service/internal/validation"
	apperrors "github.com/spec-kit/staff-service/pkg/errorutil"
)

// StaffHandler exposes the validated staff CRUD endpoints.
type StaffHandler struct {
	staffService *service.StaffService
}

// NewStaffHandler constructs handler.
func NewStaffHandler(staffService *service.StaffService) *StaffHandler {
	return &StaffHandler{staffService: staffService}
}

// List handles GET /staff.
func (h *StaffHandler) List(c *fiber.Ctx) error {
	list, err := h.staffService.List(c.UserContext())
	if err != nil {
		return apperrors.NewStorageFault("Error fetching staff records.", err)
	}
	resp := make([]dto.StaffResponse, 0, len(list))
	for i := range list {
		resp = append(resp, staffResponse(&list[i]))
	}
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /staff/:id.
func (h *StaffHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	staff, err := h.staffService.Get(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return staffNotFound(id)
		}
		return apperrors.NewStorageFault("Error fetching staff record.", err)
	}
	return c.JSON(fiber.Map{"data": staffResponse(staff)})
}

// Create handles POST /staff.
func (h *StaffHandler) Create(c *fiber.Ctx) error {
	var req dto.StaffRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}

	staff := staffFromRequest(req)
	if fieldErrs := validation.ValidateStaff(staff); len(fieldErrs) > 0 {
		return apperrors.NewValidationError("Validation failed.", fieldErrorDetails(fieldErrs))
	}

	if err := h.staffService.Create(c.UserContext(), &staff); err != nil {
		return apperrors.NewStorageFault("Error creating staff record.", err)
	}

	c.Set("Location", fmt.Sprintf("/staff/%d", staff.ID))
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": staffResponse(&staff)})
}

// Update handles PUT /staff/:id.
func (h *StaffHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.StaffRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewBadRequest("invalid payload")
	}
	if req.ID != id {
		return apperrors.NewConflict("Staff ID mismatch.", nil)
	}

	staff := staffFromRequest(req)
	if fieldErrs := validation.ValidateStaff(staff); len(fieldErrs) > 0 {
		return apperrors.NewValidationError("Validation failed.", fieldErrorDetails(fieldErrs))
	}

	if err := h.staffService.Update(c.UserContext(), &staff); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return staffNotFound(id)
		}
		return apperrors.NewStorageFault("Error updating staff record.", err)
	}
	return c.JSON(fiber.Map{"data": staffResponse(&staff)})
}

// Delete handles DELETE /staff/:id.
func (h *StaffHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	staff, err := h.staffService.Delete(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return staffNotFound(id)
		}
		return apperrors.NewStorageFault("Error deleting staff record.", err)
	}
	return c.JSON(fiber.Map{"data": staffResponse(staff)})
}

func parseID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, apperrors.NewBadRequest("invalid id: must be an integer")
	}
	return id, nil
}

func staffNotFound(id int) error {
	return apperrors.NewNotFound(fmt.Sprintf("Staff with Id = %d not found.", id), nil)
}

func fieldErrorDetails(fieldErrs validation.FieldErrors) map[string]any {
	details := make(map[string]any, len(fieldErrs))
	for field, message := range fieldErrs {
		details[field] = message
	}
	return details
}

func staffFromRequest(req dto.StaffRequest) domain.Staff {
	return domain.Staff{
		ID:           req.ID,
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		StartingDate: req.StartingDate,
	}
}

func staffResponse(staff *domain.Staff) dto.StaffResponse {
	return dto.StaffResponse{
		ID:           staff.ID,
		Name:         staff.Name,
		Email:        staff.Email,
		PhoneNumber:  staff.PhoneNumber,
		StartingDate: staff.StartingDate,
	}
}
