package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/spec-kit/staff-service/internal/domain"
)

func TestMemoryAddAssignsIDAndRoundTrips(t *testing.T) {
	repo := NewMemoryStaffRepository()
	s := domain.Staff{
		Name:         "Alice Nguyen",
		Email:        "alice@example.com",
		PhoneNumber:  "+84 123456789",
		StartingDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := repo.Add(context.Background(), &s); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if s.ID == 0 {
		t.Fatal("expected Add to assign an id")
	}

	got, err := repo.GetByID(context.Background(), s.ID)
	if err != nil {
		t.Fatalf("GetByID returned error: %v", err)
	}
	if *got != s {
		t.Fatalf("round trip mismatch: got %+v want %+v", *got, s)
	}
}

func TestMemoryGetByIDIsIdempotent(t *testing.T) {
	repo := NewMemoryStaffRepository(domain.Staff{ID: 1, Name: "Bob"})
	first, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("first GetByID: %v", err)
	}
	second, err := repo.GetByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("second GetByID: %v", err)
	}
	if *first != *second {
		t.Fatalf("expected equal records, got %+v and %+v", *first, *second)
	}
}

func TestMemoryGetAllEmpty(t *testing.T) {
	repo := NewMemoryStaffRepository()
	all, err := repo.GetAll(context.Background())
	if err != nil {
		t.Fatalf("GetAll returned error: %v", err)
	}
	if len(all) != 0 {
		t.Fatalf("expected empty slice, got %d records", len(all))
	}
	if all == nil {
		t.Fatal("expected non-nil slice")
	}
}

func TestMemoryUpdateMissingRecord(t *testing.T) {
	repo := NewMemoryStaffRepository()
	err := repo.Update(context.Background(), &domain.Staff{ID: 99, Name: "Ghost"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryDeleteReturnsRecordAndMissesNotFound(t *testing.T) {
	repo := NewMemoryStaffRepository(domain.Staff{ID: 1, Name: "Nguyen Minh Nghi"})

	deleted, err := repo.Delete(context.Background(), 1)
	if err != nil {
		t.Fatalf("Delete returned error: %v", err)
	}
	if deleted.Name != "Nguyen Minh Nghi" {
		t.Fatalf("unexpected deleted record: %+v", deleted)
	}

	if _, err := repo.Delete(context.Background(), 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestMemoryIDsNotReusedAfterDelete(t *testing.T) {
	repo := NewMemoryStaffRepository()
	a := domain.Staff{Name: "A", Email: "a@example.com", PhoneNumber: "0123456789"}
	if err := repo.Add(context.Background(), &a); err != nil {
		t.Fatal(err)
	}
	if _, err := repo.Delete(context.Background(), a.ID); err != nil {
		t.Fatal(err)
	}
	b := domain.Staff{Name: "B", Email: "b@example.com", PhoneNumber: "0123456789"}
	if err := repo.Add(context.Background(), &b); err != nil {
		t.Fatal(err)
	}
	if b.ID == a.ID {
		t.Fatalf("id %d was reused after deletion", a.ID)
	}
}
