package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-service/internal/domain"
	"github.com/spec-kit/staff-service/internal/repository"
	"github.com/spec-kit/staff-service/internal/service"
	apperrors "github.com/spec-kit/staff-service/pkg/errorutil"
)

// stubStaffRepository wraps the in-memory repository and can be forced
// into failure to simulate store faults.
type stubStaffRepository struct {
	*repository.MemoryStaffRepository
	failWith    error
	addCalls    int
	updateCalls int
	deleteCalls int
}

func (s *stubStaffRepository) GetByID(ctx context.Context, id int) (*domain.Staff, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.MemoryStaffRepository.GetByID(ctx, id)
}

func (s *stubStaffRepository) Add(ctx context.Context, staff *domain.Staff) error {
	s.addCalls++
	if s.failWith != nil {
		return s.failWith
	}
	return s.MemoryStaffRepository.Add(ctx, staff)
}

func (s *stubStaffRepository) Update(ctx context.Context, staff *domain.Staff) error {
	s.updateCalls++
	if s.failWith != nil {
		return s.failWith
	}
	return s.MemoryStaffRepository.Update(ctx, staff)
}

func (s *stubStaffRepository) Delete(ctx context.Context, id int) (*domain.Staff, error) {
	s.deleteCalls++
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.MemoryStaffRepository.Delete(ctx, id)
}

type errorEnvelope struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func newTestApp(repo repository.StaffRepository) *fiber.App {
	app := fiber.New()
	app.Use(testErrorMiddleware())

	staffService := service.NewStaffService(service.StaffDependencies{
		Repo:   repo,
		Logger: zap.NewNop(),
	})
	handler := NewStaffHandler(staffService)

	staff := app.Group("/staff")
	staff.Get("/", handler.List)
	staff.Post("/", handler.Create)
	staff.Get("/:id", handler.Get)
	staff.Put("/:id", handler.Update)
	staff.Delete("/:id", handler.Delete)
	return app
}

// testErrorMiddleware mirrors the production error translation without
// logger/metrics wiring.
func testErrorMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		if err == nil {
			return nil
		}
		domainErr := apperrors.ToDomainError(err)
		response := fiber.Map{"error": fiber.Map{
			"code":    domainErr.Code,
			"message": domainErr.Message,
		}}
		if len(domainErr.Details) > 0 {
			response["error"].(fiber.Map)["details"] = domainErr.Details
		}
		c.Status(domainErr.HTTPStatus)
		return c.JSON(response)
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func decodeError(t *testing.T, resp *http.Response) errorEnvelope {
	t.Helper()
	var env errorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode error envelope: %v", err)
	}
	return env
}

func seedRepo() *stubStaffRepository {
	return &stubStaffRepository{
		MemoryStaffRepository: repository.NewMemoryStaffRepository(
			domain.Staff{ID: 1, Name: "La Tri Tam", Email: "tamla@example.com", PhoneNumber: "0123456789"},
			domain.Staff{ID: 2, Name: "Nguyen Minh Nghi", Email: "nghinguyen@example.com", PhoneNumber: "0987654321"},
		),
	}
}

func TestListStaffReturnsAll(t *testing.T) {
	app := newTestApp(seedRepo())

	resp := doJSON(t, app, http.MethodGet, "/staff", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body struct {
		Data []struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Data) != 2 {
		t.Fatalf("expected 2 records, got %d", len(body.Data))
	}
}

func TestListStaffEmptyIsArray(t *testing.T) {
	app := newTestApp(&stubStaffRepository{MemoryStaffRepository: repository.NewMemoryStaffRepository()})

	resp := doJSON(t, app, http.MethodGet, "/staff", nil)
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `"data":[]`) {
		t.Fatalf("expected empty array body, got %s", raw)
	}
}

func TestGetStaffFound(t *testing.T) {
	app := newTestApp(seedRepo())

	resp := doJSON(t, app, http.MethodGet, "/staff/1", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body struct {
		Data struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Data.ID != 1 || body.Data.Name != "La Tri Tam" {
		t.Fatalf("unexpected record: %+v", body.Data)
	}
}

func TestGetStaffMissing(t *testing.T) {
	app := newTestApp(seedRepo())

	resp := doJSON(t, app, http.MethodGet, "/staff/99", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	env := decodeError(t, resp)
	if env.Error.Message != "Staff with Id = 99 not found." {
		t.Fatalf("unexpected message: %q", env.Error.Message)
	}
}

func TestCreateStaffValid(t *testing.T) {
	repo := seedRepo()
	app := newTestApp(repo)

	resp := doJSON(t, app, http.MethodPost, "/staff", map[string]any{
		"name":        "Alice Nguyen",
		"email":       "alice@example.com",
		"phoneNumber": "+84 123456789",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var body struct {
		Data struct {
			ID    int    `json:"id"`
			Email string `json:"email"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Data.ID == 0 {
		t.Fatal("expected assigned id in response")
	}
	if got := resp.Header.Get("Location"); !strings.HasPrefix(got, "/staff/") {
		t.Fatalf("unexpected Location header %q", got)
	}
	if repo.addCalls != 1 {
		t.Fatalf("expected one Add call, got %d", repo.addCalls)
	}
}

func TestCreateStaffInvalidEmail(t *testing.T) {
	repo := seedRepo()
	app := newTestApp(repo)

	resp := doJSON(t, app, http.MethodPost, "/staff", map[string]any{
		"name":        "Alice Nguyen",
		"email":       "alice@",
		"phoneNumber": "0123456789",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	env := decodeError(t, resp)
	if env.Error.Details["email"] != "Invalid email format" {
		t.Fatalf("unexpected details: %v", env.Error.Details)
	}
	if repo.addCalls != 0 {
		t.Fatalf("repository Add must not run on invalid input, got %d calls", repo.addCalls)
	}
}

func TestCreateStaffInvalidPhone(t *testing.T) {
	repo := seedRepo()
	app := newTestApp(repo)

	for _, phone := range []string{"123", "abcdefghij", "0905-abc-123", "++84912345678", "01234567890123456789"} {
		resp := doJSON(t, app, http.MethodPost, "/staff", map[string]any{
			"name":        "Ethan Vo",
			"email":       "ethan@domain.io",
			"phoneNumber": phone,
		})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("phone %q: expected 400, got %d", phone, resp.StatusCode)
		}
		env := decodeError(t, resp)
		if env.Error.Details["phoneNumber"] != "Invalid phone number format" {
			t.Fatalf("phone %q: unexpected details %v", phone, env.Error.Details)
		}
	}
	if repo.addCalls != 0 {
		t.Fatalf("repository Add must not run on invalid input, got %d calls", repo.addCalls)
	}
}

func TestUpdateStaffValid(t *testing.T) {
	app := newTestApp(seedRepo())

	resp := doJSON(t, app, http.MethodPut, "/staff/1", map[string]any{
		"id":          1,
		"name":        "La Tri Tam",
		"email":       "tamla@gmail.com",
		"phoneNumber": "0123456789",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestUpdateStaffIDMismatch(t *testing.T) {
	repo := seedRepo()
	app := newTestApp(repo)

	resp := doJSON(t, app, http.MethodPut, "/staff/1", map[string]any{
		"id":          2,
		"name":        "La Tri Tam",
		"email":       "tamla@gmail.com",
		"phoneNumber": "0123456789",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	env := decodeError(t, resp)
	if env.Error.Message != "Staff ID mismatch." {
		t.Fatalf("unexpected message: %q", env.Error.Message)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("repository Update must not run on id mismatch, got %d calls", repo.updateCalls)
	}
}

func TestUpdateStaffMissing(t *testing.T) {
	app := newTestApp(seedRepo())

	resp := doJSON(t, app, http.MethodPut, "/staff/77", map[string]any{
		"id":          77,
		"name":        "Mark Taylor",
		"email":       "mark.taylor@example.com",
		"phoneNumber": "0123456789",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	env := decodeError(t, resp)
	if env.Error.Message != "Staff with Id = 77 not found." {
		t.Fatalf("unexpected message: %q", env.Error.Message)
	}
}

func TestDeleteStaffOK(t *testing.T) {
	repo := seedRepo()
	app := newTestApp(repo)

	resp := doJSON(t, app, http.MethodDelete, "/staff/2", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body struct {
		Data struct {
			Name string `json:"name"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Data.Name != "Nguyen Minh Nghi" {
		t.Fatalf("expected deleted record in body, got %+v", body.Data)
	}
	if repo.deleteCalls != 1 {
		t.Fatalf("expected one Delete call, got %d", repo.deleteCalls)
	}
}

func TestDeleteStaffMissing(t *testing.T) {
	app := newTestApp(seedRepo())

	resp := doJSON(t, app, http.MethodDelete, "/staff/99", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	env := decodeError(t, resp)
	if env.Error.Message != "Staff with Id = 99 not found." {
		t.Fatalf("unexpected message: %q", env.Error.Message)
	}
}

func TestDeleteStaffStoreFault(t *testing.T) {
	repo := seedRepo()
	repo.failWith = errors.New("database error")
	app := newTestApp(repo)

	resp := doJSON(t, app, http.MethodDelete, "/staff/1", nil)
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.StatusCode)
	}
	env := decodeError(t, resp)
	if env.Error.Message != "Error deleting staff record." {
		t.Fatalf("unexpected message: %q", env.Error.Message)
	}
}
