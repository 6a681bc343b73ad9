package entities

import "time"

// QuoteStatus represents the lead lifecycle of a quote request.
//
// Domain notes:
//   - Submissions are created as "pending" and only ever move forward by
//     staff actions; the originating customer never mutates a record.
//   - "closed" is reachable from any non-terminal status.

type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusContacted QuoteStatus = "contacted"
	QuoteStatusQuoted    QuoteStatus = "quoted"
	QuoteStatusConverted QuoteStatus = "converted"
	QuoteStatusClosed    QuoteStatus = "closed"
)

// ProductType is the closed set of insurance product lines.
type ProductType string

const (
	ProductHealth   ProductType = "health"
	ProductLife     ProductType = "life"
	ProductMotor    ProductType = "motor"
	ProductHome     ProductType = "home"
	ProductTravel   ProductType = "travel"
	ProductBusiness ProductType = "business"
)

// VehicleInfo carries the motor-line attributes of a quote.
type VehicleInfo struct {
	Make     string `json:"make"`
	Model    string `json:"model"`
	Year     int    `json:"year"`
	FuelType string `json:"fuel_type"`
}

// QuoteRequest is the quote submission persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: reference (the human-shareable id returned to the customer)
//
// Monetary representation:
//   - CoverageAmount and premiums are whole currency units (INR).
//   - EstimatedPremium is derived at write time from the applicant/product
//     fields and is always recomputable by the premium estimator.
type QuoteRequest struct {
	ID        string `json:"id"`
	Reference string `json:"reference"`

	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Age       int    `json:"age"`

	Product         ProductType  `json:"product"`
	PlanType        string       `json:"plan_type"`
	CoverageAmount  int64        `json:"coverage_amount"`
	PolicyTermYears int          `json:"policy_term_years"`
	FamilySize      int          `json:"family_size,omitempty"`
	Vehicle         *VehicleInfo `json:"vehicle,omitempty"`

	Smoker         bool `json:"smoker"`
	MedicalHistory bool `json:"medical_history"`
	CityTier       int  `json:"city_tier"`

	Requirements string `json:"requirements,omitempty"`

	EstimatedPremium int64 `json:"estimated_premium"`
	MonthlyPremium   int64 `json:"monthly_premium"`

	Status    QuoteStatus `json:"status"`
	Notes     string      `json:"notes,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`

	// Provenance, kept for abuse triage only.
	SourceIP  string `json:"source_ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// QuoteFilter narrows admin list queries. Zero values mean "no filter".
type QuoteFilter struct {
	Status  QuoteStatus
	Product ProductType
	From    time.Time
	To      time.Time
	Limit   int
	Offset  int
}

// QuoteSummary aggregates lead counts for the admin dashboard.
type QuoteSummary struct {
	Total     int64                 `json:"total"`
	ByStatus  map[QuoteStatus]int64 `json:"by_status"`
	ByProduct map[ProductType]int64 `json:"by_product"`
}

// CanTransitionTo reports whether a staff status update is a legal move.
func (s QuoteStatus) CanTransitionTo(next QuoteStatus) bool {
	if next == QuoteStatusClosed {
		return s != QuoteStatusClosed && s != QuoteStatusConverted
	}
	switch s {
	case QuoteStatusPending:
		return next == QuoteStatusContacted
	case QuoteStatusContacted:
		return next == QuoteStatusQuoted
	case QuoteStatusQuoted:
		return next == QuoteStatusConverted
	default:
		return false
	}
}
