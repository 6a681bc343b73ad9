package request

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"brightcover/internal/domain/entities"
	"brightcover/internal/domain/products"
)

// VehicleRequest carries the vehicle block required for motor quotes.
type VehicleRequest struct {
	Make     string `json:"make" example:"Maruti"`
	Model    string `json:"model" example:"Swift"`
	Year     int    `json:"year" example:"2021"`
	FuelType string `json:"fuel_type" example:"petrol"`
}

// QuoteRequest is the public submission payload. Binding is intentionally
// loose so Normalize can report every problem in one response instead of
// failing on the first bad field.
type QuoteRequest struct {
	FirstName       string          `json:"first_name" example:"Asha"`
	LastName        string          `json:"last_name" example:"Patel"`
	Email           string          `json:"email" example:"asha.patel@example.com"`
	Phone           string          `json:"phone" example:"9876543210"`
	Age             int             `json:"age" example:"30"`
	Product         string          `json:"product" example:"health"`
	PlanType        string          `json:"plan_type" example:"individual"`
	CoverageAmount  int64           `json:"coverage_amount" example:"500000"`
	PolicyTermYears int             `json:"policy_term_years,omitempty" example:"20"`
	FamilySize      int             `json:"family_size,omitempty" example:"4"`
	Vehicle         *VehicleRequest `json:"vehicle,omitempty"`
	Smoker          bool            `json:"smoker" example:"false"`
	MedicalHistory  bool            `json:"medical_history" example:"false"`
	CityTier        int             `json:"city_tier,omitempty" example:"1"`
	Requirements    string          `json:"requirements,omitempty" example:"Need maternity cover"`
}

// Normalize validates the payload and maps it onto the domain entity. All
// field problems are collected so the caller gets a single complete error
// response.
func (r QuoteRequest) Normalize() (entities.QuoteRequest, []string) {
	var errs []string

	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
	r.Product = strings.ToLower(strings.TrimSpace(r.Product))
	r.PlanType = strings.ToLower(strings.TrimSpace(r.PlanType))
	r.Requirements = strings.TrimSpace(r.Requirements)

	if !validName(r.FirstName) {
		errs = append(errs, "first_name must be at least 2 characters")
	}
	if !validName(r.LastName) {
		errs = append(errs, "last_name must be at least 2 characters")
	}
	if !validEmail(r.Email) {
		errs = append(errs, "email must be a valid email address")
	}
	if !validPhone(r.Phone) {
		errs = append(errs, "phone must contain 10 to 15 digits")
	}
	if r.Age < 18 || r.Age > 100 {
		errs = append(errs, "age must be between 18 and 100")
	}

	product, known := products.Lookup(entities.ProductType(r.Product))
	if !known {
		errs = append(errs, fmt.Sprintf("product must be one of: %s", joinProductTypes()))
	} else {
		if _, ok := product.PlanFactors[r.PlanType]; !ok {
			errs = append(errs, fmt.Sprintf("plan_type for %s must be one of: %s", product.Type, joinPlanTypes(product)))
		}
		if r.CoverageAmount < product.MinCoverage || r.CoverageAmount > product.MaxCoverage {
			errs = append(errs, fmt.Sprintf("coverage_amount for %s must be between %d and %d", product.Type, product.MinCoverage, product.MaxCoverage))
		}
		if r.PlanType == "family" && r.FamilySize < 1 {
			errs = append(errs, "family_size is required for a family plan")
		}
		if product.RequiresVehicle {
			errs = append(errs, r.validateVehicle()...)
		}
	}

	if r.PolicyTermYears < 0 || r.PolicyTermYears > 50 {
		errs = append(errs, "policy_term_years must be between 0 and 50")
	}
	if r.CityTier == 0 {
		r.CityTier = 3
	}
	if r.CityTier < 1 || r.CityTier > 3 {
		errs = append(errs, "city_tier must be 1, 2 or 3")
	}
	if len(r.Requirements) > 1000 {
		errs = append(errs, "requirements must be at most 1000 characters")
	}

	if len(errs) > 0 {
		return entities.QuoteRequest{}, errs
	}

	q := entities.QuoteRequest{
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		Age:             r.Age,
		Product:         entities.ProductType(r.Product),
		PlanType:        r.PlanType,
		CoverageAmount:  r.CoverageAmount,
		PolicyTermYears: r.PolicyTermYears,
		FamilySize:      r.FamilySize,
		Smoker:          r.Smoker,
		MedicalHistory:  r.MedicalHistory,
		CityTier:        r.CityTier,
		Requirements:    r.Requirements,
	}
	if product.RequiresVehicle && r.Vehicle != nil {
		q.Vehicle = &entities.VehicleInfo{
			Make:     strings.TrimSpace(r.Vehicle.Make),
			Model:    strings.TrimSpace(r.Vehicle.Model),
			Year:     r.Vehicle.Year,
			FuelType: strings.ToLower(strings.TrimSpace(r.Vehicle.FuelType)),
		}
	}
	return q, nil
}

func (r QuoteRequest) validateVehicle() []string {
	if r.Vehicle == nil {
		return []string{"vehicle details are required for motor insurance"}
	}

	var errs []string
	if strings.TrimSpace(r.Vehicle.Make) == "" {
		errs = append(errs, "vehicle.make is required")
	}
	if strings.TrimSpace(r.Vehicle.Model) == "" {
		errs = append(errs, "vehicle.model is required")
	}
	maxYear := time.Now().UTC().Year() + 1
	if r.Vehicle.Year < 1990 || r.Vehicle.Year > maxYear {
		errs = append(errs, fmt.Sprintf("vehicle.year must be between 1990 and %d", maxYear))
	}
	fuel := strings.ToLower(strings.TrimSpace(r.Vehicle.FuelType))
	valid := false
	for _, f := range products.FuelTypes {
		if f == fuel {
			valid = true
			break
		}
	}
	if !valid {
		errs = append(errs, fmt.Sprintf("vehicle.fuel_type must be one of: %s", strings.Join(products.FuelTypes, ", ")))
	}
	return errs
}

func joinProductTypes() string {
	types := products.Types()
	names := make([]string, 0, len(types))
	for _, t := range types {
		names = append(names, string(t))
	}
	return strings.Join(names, ", ")
}

func joinPlanTypes(p products.Product) string {
	names := make([]string, 0, len(p.PlanFactors))
	for name := range p.PlanFactors {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}
