package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spec-kit/staff-service/internal/domain"
)

func staffFixture() domain.Staff {
	return domain.Staff{Name: "Tam La", Email: "tamla@ctu.edu.vn", PhoneNumber: "0123456789"}
}

func newStubServer(t *testing.T, handler http.HandlerFunc) *StaffClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(server.URL, 5*time.Second)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestGetStaffsDecodesList(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/staff" {
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": []map[string]any{
			{"id": 1, "name": "Alice", "email": "alice@example.com", "phoneNumber": "0123456789"},
			{"id": 2, "name": "Bob", "email": "bob@example.com", "phoneNumber": "0987654321"},
		}})
	})

	list, err := c.GetStaffs(context.Background())
	if err != nil {
		t.Fatalf("GetStaffs: %v", err)
	}
	if len(list) != 2 || list[0].Name != "Alice" {
		t.Fatalf("unexpected list: %+v", list)
	}
}

func TestGetStaffNotFound(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]any{"error": map[string]any{
			"code":    "NOT_FOUND",
			"message": "Staff with Id = 99 not found.",
		}})
	})

	_, err := c.GetStaff(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddStaffReturnsAssignedID(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method %s", r.Method)
		}
		var req map[string]any
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatal(err)
		}
		writeJSON(w, http.StatusCreated, map[string]any{"data": map[string]any{
			"id":          7,
			"name":        req["name"],
			"email":       req["email"],
			"phoneNumber": req["phoneNumber"],
		}})
	})

	created, err := c.AddStaff(context.Background(), staffFixture())
	if err != nil {
		t.Fatalf("AddStaff: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("expected assigned id 7, got %d", created.ID)
	}
}

func TestAddStaffValidationErrorCarriesFields(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": map[string]any{
			"code":    "VALIDATION_FAILED",
			"message": "Validation failed.",
			"details": map[string]any{"email": "Invalid email format"},
		}})
	})

	_, err := c.AddStaff(context.Background(), staffFixture())
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if vErr.Fields["email"] != "Invalid email format" {
		t.Fatalf("unexpected fields: %v", vErr.Fields)
	}
}

func TestDeleteStaffErrorPropagates(t *testing.T) {
	c := newStubServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": map[string]any{
			"code":    "STORAGE_FAULT",
			"message": "Error deleting staff record.",
		}})
	})

	_, err := c.DeleteStaff(context.Background(), 1)
	if err == nil || err.Error() != "Error deleting staff record." {
		t.Fatalf("expected server message to propagate, got %v", err)
	}
}
