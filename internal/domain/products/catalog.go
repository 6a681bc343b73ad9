package products

import (
	"brightcover/internal/domain/entities"
)

// Product is the per-line configuration driving validation bounds and
// premium factors. The catalog is the single source of truth: the website
// frontends and the two legacy health backends disagreed on field sets, so
// one canonical table per product line is defined here.
type Product struct {
	Type  entities.ProductType
	Label string

	// RatePerMille is the annual base rate per 1,000 units of coverage.
	RatePerMille float64

	MinCoverage int64
	MaxCoverage int64

	// MinPremium is the floor applied after all factors and rounding.
	MinPremium int64

	PlanFactors map[string]float64

	// RequiresVehicle marks lines quoted against a vehicle (motor).
	RequiresVehicle bool

	// SmokerRated marks lines where smoking and medical history load the
	// premium (health, life).
	SmokerRated bool
}

// AgeBracket maps an inclusive age range to a multiplicative factor.
// Factors are non-decreasing with age apart from the young-adult discount.
type AgeBracket struct {
	MinAge int
	MaxAge int
	Factor float64
}

// AgeBrackets is shared across all product lines.
var AgeBrackets = []AgeBracket{
	{18, 24, 0.90},
	{25, 34, 1.00},
	{35, 44, 1.20},
	{45, 54, 1.50},
	{55, 64, 1.95},
	{65, 100, 2.60},
}

// Risk modifier factors. Changing any of these changes the figures the
// business communicates to customers.
const (
	SmokerFactor         = 1.50
	MedicalHistoryFactor = 1.30
	DieselFactor         = 1.10
	CityTier1Factor      = 1.20
	CityTier2Factor      = 1.10
)

// Vehicle age step factors (motor line).
const (
	VehicleAgeMidFactor = 1.15 // 6-10 years
	VehicleAgeOldFactor = 1.30 // 11+ years
)

// FuelTypes accepted for motor quotes.
var FuelTypes = []string{"petrol", "diesel", "cng", "electric"}

var catalog = map[entities.ProductType]Product{
	entities.ProductHealth: {
		Type:         entities.ProductHealth,
		Label:        "Health Insurance",
		RatePerMille: 9.0,
		MinCoverage:  100_000,
		MaxCoverage:  10_000_000,
		MinPremium:   2500,
		PlanFactors: map[string]float64{
			"individual": 1.00,
			"family":     1.60,
			"senior":     2.20,
		},
		SmokerRated: true,
	},
	entities.ProductLife: {
		Type:         entities.ProductLife,
		Label:        "Life Insurance",
		RatePerMille: 5.5,
		MinCoverage:  500_000,
		MaxCoverage:  50_000_000,
		MinPremium:   3000,
		PlanFactors: map[string]float64{
			"term":      1.00,
			"endowment": 1.45,
			"whole":     1.85,
		},
		SmokerRated: true,
	},
	entities.ProductMotor: {
		Type:         entities.ProductMotor,
		Label:        "Motor Insurance",
		RatePerMille: 28.0,
		MinCoverage:  50_000,
		MaxCoverage:  10_000_000,
		MinPremium:   2000,
		PlanFactors: map[string]float64{
			"third-party":   0.60,
			"comprehensive": 1.00,
			"zero-dep":      1.35,
		},
		RequiresVehicle: true,
	},
	entities.ProductHome: {
		Type:         entities.ProductHome,
		Label:        "Home Insurance",
		RatePerMille: 0.9,
		MinCoverage:  100_000,
		MaxCoverage:  100_000_000,
		MinPremium:   1800,
		PlanFactors: map[string]float64{
			"structure": 1.00,
			"contents":  0.70,
			"combined":  1.45,
		},
	},
	entities.ProductTravel: {
		Type:         entities.ProductTravel,
		Label:        "Travel Insurance",
		RatePerMille: 16.0,
		MinCoverage:  100_000,
		MaxCoverage:  10_000_000,
		MinPremium:   900,
		PlanFactors: map[string]float64{
			"single-trip": 1.00,
			"family":      1.50,
			"multi-trip":  1.70,
		},
	},
	entities.ProductBusiness: {
		Type:         entities.ProductBusiness,
		Label:        "Business Insurance",
		RatePerMille: 4.2,
		MinCoverage:  1_000_000,
		MaxCoverage:  500_000_000,
		MinPremium:   7500,
		PlanFactors: map[string]float64{
			"liability":     1.00,
			"property":      1.20,
			"comprehensive": 1.80,
		},
	},
}

// Lookup returns the product configuration for a product type.
func Lookup(t entities.ProductType) (Product, bool) {
	p, ok := catalog[t]
	return p, ok
}

// Types returns the closed set of product types.
func Types() []entities.ProductType {
	return []entities.ProductType{
		entities.ProductHealth,
		entities.ProductLife,
		entities.ProductMotor,
		entities.ProductHome,
		entities.ProductTravel,
		entities.ProductBusiness,
	}
}

// AgeFactor returns the bracket factor for an age, or 0 when the age is
// outside the insurable range.
func AgeFactor(age int) float64 {
	for _, b := range AgeBrackets {
		if age >= b.MinAge && age <= b.MaxAge {
			return b.Factor
		}
	}
	return 0
}

// VehicleAgeFactor returns the step factor for a vehicle's age in years.
func VehicleAgeFactor(years int) float64 {
	switch {
	case years >= 11:
		return VehicleAgeOldFactor
	case years >= 6:
		return VehicleAgeMidFactor
	default:
		return 1.0
	}
}

// CityTierFactor returns the loading for a city tier (1-3).
func CityTierFactor(tier int) float64 {
	switch tier {
	case 1:
		return CityTier1Factor
	case 2:
		return CityTier2Factor
	default:
		return 1.0
	}
}

// ContactSubjects is the closed enum accepted on the contact form.
var ContactSubjects = []string{
	"general-enquiry",
	"policy-question",
	"claim-assistance",
	"renewal",
	"complaint",
	"feedback",
}

// ValidContactSubject reports membership in ContactSubjects.
func ValidContactSubject(s string) bool {
	for _, v := range ContactSubjects {
		if v == s {
			return true
		}
	}
	return false
}
