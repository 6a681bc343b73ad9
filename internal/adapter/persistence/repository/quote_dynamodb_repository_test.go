package repository

import (
	"testing"
	"time"

	"brightcover/internal/domain/entities"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	if got := paginate(items, 0, 2); len(got) != 2 || got[0] != 1 {
		t.Fatalf("unexpected first page: %v", got)
	}
	if got := paginate(items, 4, 2); len(got) != 1 || got[0] != 5 {
		t.Fatalf("unexpected last page: %v", got)
	}
	if got := paginate(items, 10, 2); got != nil {
		t.Fatalf("expected nil past the end, got %v", got)
	}
	if got := paginate(items, 0, 0); len(got) != 5 {
		t.Fatalf("expected all items with no limit, got %v", got)
	}
}

func TestParseTimestamp(t *testing.T) {
	stored := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	if got := parseTimestamp("QT1", "created_at", stored.Format(time.RFC3339Nano)); !got.Equal(stored) {
		t.Fatalf("expected %v, got %v", stored, got)
	}
	if got := parseTimestamp("QT1", "created_at", ""); !got.IsZero() {
		t.Fatalf("expected zero time for empty attribute, got %v", got)
	}
	if got := parseTimestamp("QT1", "created_at", "30-08-2026"); !got.IsZero() {
		t.Fatalf("expected zero time for corrupted attribute, got %v", got)
	}
}

func TestQuoteItemRoundTrip(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	q := entities.QuoteRequest{
		ID:               "b6f6a0f2-5d17-4e28-9f3e-0a1b2c3d4e5f",
		Reference:        "QT260830120000AB12CD",
		FirstName:        "Vikram",
		LastName:         "Singh",
		Email:            "vikram@example.com",
		Phone:            "9123456789",
		Age:              40,
		Product:          entities.ProductMotor,
		PlanType:         "comprehensive",
		CoverageAmount:   800_000,
		CityTier:         2,
		Vehicle:          &entities.VehicleInfo{Make: "Maruti", Model: "Swift", Year: 2021, FuelType: "petrol"},
		EstimatedPremium: 27100,
		MonthlyPremium:   2258,
		Status:           entities.QuoteStatusPending,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	got := fromQuoteItem(toQuoteItem(q))
	if got.Reference != q.Reference || got.Product != q.Product || got.EstimatedPremium != q.EstimatedPremium {
		t.Fatalf("round trip lost fields: %+v", got)
	}
	if got.Vehicle == nil || got.Vehicle.Model != "Swift" {
		t.Fatalf("round trip lost vehicle: %+v", got.Vehicle)
	}
	if !got.CreatedAt.Equal(now) {
		t.Fatalf("round trip lost timestamps: %v", got.CreatedAt)
	}
}
