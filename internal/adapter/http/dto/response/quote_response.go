package response

import (
	"time"

	"brightcover/internal/domain/entities"
	"brightcover/internal/premium"
)

// QuoteSubmissionResponse is returned to the customer after a successful
// submission. Internal ids and provenance never leave the admin surface.
type QuoteSubmissionResponse struct {
	Success          bool   `json:"success" example:"true"`
	QuoteID          string `json:"quote_id" example:"QT240101120000AB12CD"`
	EstimatedPremium int64  `json:"estimated_premium" example:"5400"`
	MonthlyPremium   int64  `json:"monthly_premium" example:"450"`
	Status           string `json:"status" example:"pending"`
}

// FromQuoteRequest maps a stored quote onto the public submission response.
func FromQuoteRequest(q entities.QuoteRequest) QuoteSubmissionResponse {
	return QuoteSubmissionResponse{
		Success:          true,
		QuoteID:          q.Reference,
		EstimatedPremium: q.EstimatedPremium,
		MonthlyPremium:   q.MonthlyPremium,
		Status:           string(q.Status),
	}
}

// EstimateResponse is the no-persistence premium preview.
type EstimateResponse struct {
	Success          bool  `json:"success" example:"true"`
	EstimatedPremium int64 `json:"estimated_premium" example:"5400"`
	MonthlyPremium   int64 `json:"monthly_premium" example:"450"`
}

// FromEstimate maps a premium quote onto the preview response.
func FromEstimate(q premium.Quote) EstimateResponse {
	return EstimateResponse{
		Success:          true,
		EstimatedPremium: q.Annual,
		MonthlyPremium:   q.Monthly,
	}
}

// QuoteDetail is the admin view of a stored quote request.
type QuoteDetail struct {
	ID               string                `json:"id"`
	Reference        string                `json:"reference"`
	FirstName        string                `json:"first_name"`
	LastName         string                `json:"last_name"`
	Email            string                `json:"email"`
	Phone            string                `json:"phone"`
	Age              int                   `json:"age"`
	Product          string                `json:"product"`
	PlanType         string                `json:"plan_type"`
	CoverageAmount   int64                 `json:"coverage_amount"`
	PolicyTermYears  int                   `json:"policy_term_years,omitempty"`
	FamilySize       int                   `json:"family_size,omitempty"`
	Vehicle          *entities.VehicleInfo `json:"vehicle,omitempty"`
	Smoker           bool                  `json:"smoker"`
	MedicalHistory   bool                  `json:"medical_history"`
	CityTier         int                   `json:"city_tier"`
	Requirements     string                `json:"requirements,omitempty"`
	EstimatedPremium int64                 `json:"estimated_premium"`
	MonthlyPremium   int64                 `json:"monthly_premium"`
	Status           string                `json:"status"`
	Notes            string                `json:"notes,omitempty"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
	SourceIP         string                `json:"source_ip,omitempty"`
	UserAgent        string                `json:"user_agent,omitempty"`
}

// ToQuoteDetail maps a stored quote onto the admin detail view.
func ToQuoteDetail(q entities.QuoteRequest) QuoteDetail {
	return QuoteDetail{
		ID:               q.ID,
		Reference:        q.Reference,
		FirstName:        q.FirstName,
		LastName:         q.LastName,
		Email:            q.Email,
		Phone:            q.Phone,
		Age:              q.Age,
		Product:          string(q.Product),
		PlanType:         q.PlanType,
		CoverageAmount:   q.CoverageAmount,
		PolicyTermYears:  q.PolicyTermYears,
		FamilySize:       q.FamilySize,
		Vehicle:          q.Vehicle,
		Smoker:           q.Smoker,
		MedicalHistory:   q.MedicalHistory,
		CityTier:         q.CityTier,
		Requirements:     q.Requirements,
		EstimatedPremium: q.EstimatedPremium,
		MonthlyPremium:   q.MonthlyPremium,
		Status:           string(q.Status),
		Notes:            q.Notes,
		CreatedAt:        q.CreatedAt,
		UpdatedAt:        q.UpdatedAt,
		SourceIP:         q.SourceIP,
		UserAgent:        q.UserAgent,
	}
}

// QuoteListResponse wraps a page of admin quote results.
type QuoteListResponse struct {
	Success bool          `json:"success" example:"true"`
	Count   int           `json:"count" example:"2"`
	Quotes  []QuoteDetail `json:"quotes"`
}

// ToQuoteListResponse maps a page of stored quotes onto the admin list view.
func ToQuoteListResponse(quotes []entities.QuoteRequest) QuoteListResponse {
	details := make([]QuoteDetail, 0, len(quotes))
	for _, q := range quotes {
		details = append(details, ToQuoteDetail(q))
	}
	return QuoteListResponse{Success: true, Count: len(details), Quotes: details}
}

// QuoteDetailResponse wraps a single admin quote result.
type QuoteDetailResponse struct {
	Success bool        `json:"success" example:"true"`
	Quote   QuoteDetail `json:"quote"`
}

// SummaryResponse wraps the admin dashboard counters.
type SummaryResponse struct {
	Success   bool             `json:"success" example:"true"`
	Total     int64            `json:"total" example:"42"`
	ByStatus  map[string]int64 `json:"by_status"`
	ByProduct map[string]int64 `json:"by_product"`
}

// ToSummaryResponse maps the aggregate counters onto the dashboard view.
func ToSummaryResponse(s entities.QuoteSummary) SummaryResponse {
	byStatus := make(map[string]int64, len(s.ByStatus))
	for k, v := range s.ByStatus {
		byStatus[string(k)] = v
	}
	byProduct := make(map[string]int64, len(s.ByProduct))
	for k, v := range s.ByProduct {
		byProduct[string(k)] = v
	}
	return SummaryResponse{Success: true, Total: s.Total, ByStatus: byStatus, ByProduct: byProduct}
}
