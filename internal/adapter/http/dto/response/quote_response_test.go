package response

import (
	"testing"

	"brightcover/internal/domain/entities"
)

func TestFromQuoteRequest(t *testing.T) {
	q := entities.QuoteRequest{
		ID:               "b6f6a0f2-5d17-4e28-9f3e-0a1b2c3d4e5f",
		Reference:        "QT240101120000AB12CD",
		EstimatedPremium: 5400,
		MonthlyPremium:   450,
		Status:           entities.QuoteStatusPending,
	}

	resp := FromQuoteRequest(q)
	if !resp.Success {
		t.Fatal("expected success true")
	}
	if resp.QuoteID != q.Reference {
		t.Fatalf("expected quote_id to carry the reference, got %q", resp.QuoteID)
	}
	if resp.EstimatedPremium != 5400 || resp.MonthlyPremium != 450 {
		t.Fatalf("unexpected premiums %d/%d", resp.EstimatedPremium, resp.MonthlyPremium)
	}
	if resp.Status != "pending" {
		t.Fatalf("unexpected status %q", resp.Status)
	}
}

func TestToSummaryResponse(t *testing.T) {
	s := entities.QuoteSummary{
		Total: 5,
		ByStatus: map[entities.QuoteStatus]int64{
			entities.QuoteStatusPending: 3,
			entities.QuoteStatusQuoted:  2,
		},
		ByProduct: map[entities.ProductType]int64{
			entities.ProductHealth: 4,
			entities.ProductMotor:  1,
		},
	}

	resp := ToSummaryResponse(s)
	if resp.Total != 5 {
		t.Fatalf("expected total 5, got %d", resp.Total)
	}
	if resp.ByStatus["pending"] != 3 || resp.ByProduct["motor"] != 1 {
		t.Fatalf("unexpected counters: %v %v", resp.ByStatus, resp.ByProduct)
	}
}

func TestToQuoteListResponse(t *testing.T) {
	resp := ToQuoteListResponse([]entities.QuoteRequest{
		{Reference: "QT1"},
		{Reference: "QT2"},
	})
	if resp.Count != 2 || len(resp.Quotes) != 2 {
		t.Fatalf("expected 2 quotes, got count=%d len=%d", resp.Count, len(resp.Quotes))
	}
	if resp.Quotes[0].Reference != "QT1" {
		t.Fatalf("unexpected first reference %q", resp.Quotes[0].Reference)
	}
}
