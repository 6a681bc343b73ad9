// Package premium implements the lead-qualification premium heuristic.
//
// The estimate is a chain of multiplicative factors over a coverage-derived
// base, rounded to the nearest 100 with a per-product floor. It is not
// actuarially accurate; it exists so the sales team can show a ballpark
// figure, and the factor order and rounding rule are load-bearing because
// they determine the number quoted to the customer.
package premium

import (
	"errors"
	"math"

	"brightcover/internal/domain/entities"
	"brightcover/internal/domain/products"
)

var (
	ErrUnknownProduct = errors.New("unknown insurance product")
	ErrUnknownPlan    = errors.New("unknown plan type for product")
	ErrAgeOutOfRange  = errors.New("age outside insurable range")
	ErrCoverageRange  = errors.New("coverage amount outside product bounds")
)

// Input is everything the estimator needs. It is built from a QuoteRequest
// but kept separate so the function stays pure and independently testable.
type Input struct {
	Product        entities.ProductType
	Age            int
	CoverageAmount int64
	PlanType       string

	Smoker         bool
	MedicalHistory bool
	CityTier       int

	// Motor-only modifiers.
	FuelType   string
	VehicleAge int
}

// Quote is the computed premium breakdown in whole currency units.
type Quote struct {
	Annual  int64 `json:"annual"`
	Monthly int64 `json:"monthly"`
}

// Estimate computes the premium for an input. Same input, same output.
func Estimate(in Input) (Quote, error) {
	p, ok := products.Lookup(in.Product)
	if !ok {
		return Quote{}, ErrUnknownProduct
	}

	ageFactor := products.AgeFactor(in.Age)
	if ageFactor == 0 {
		return Quote{}, ErrAgeOutOfRange
	}

	planFactor, ok := p.PlanFactors[in.PlanType]
	if !ok {
		return Quote{}, ErrUnknownPlan
	}

	if in.CoverageAmount < p.MinCoverage || in.CoverageAmount > p.MaxCoverage {
		return Quote{}, ErrCoverageRange
	}

	// Base rate per unit coverage, then the factor chain. Order matters.
	amount := float64(in.CoverageAmount) / 1000.0 * p.RatePerMille
	amount *= ageFactor
	amount *= planFactor

	if p.SmokerRated {
		if in.Smoker {
			amount *= products.SmokerFactor
		}
		if in.MedicalHistory {
			amount *= products.MedicalHistoryFactor
		}
	}
	if p.RequiresVehicle {
		if in.FuelType == "diesel" {
			amount *= products.DieselFactor
		}
		amount *= products.VehicleAgeFactor(in.VehicleAge)
	}
	amount *= products.CityTierFactor(in.CityTier)

	annual := roundToHundred(amount)
	if annual < p.MinPremium {
		annual = p.MinPremium
	}

	return Quote{Annual: annual, Monthly: annual / 12}, nil
}

// FromQuoteRequest maps a stored record back onto estimator input, keeping
// the invariant that the cached premium is recomputable from stored fields.
func FromQuoteRequest(q entities.QuoteRequest, vehicleAge int) Input {
	in := Input{
		Product:        q.Product,
		Age:            q.Age,
		CoverageAmount: q.CoverageAmount,
		PlanType:       q.PlanType,
		Smoker:         q.Smoker,
		MedicalHistory: q.MedicalHistory,
		CityTier:       q.CityTier,
	}
	if q.Vehicle != nil {
		in.FuelType = q.Vehicle.FuelType
		in.VehicleAge = vehicleAge
	}
	return in
}

// roundToHundred rounds half-up to the nearest 100 currency units.
func roundToHundred(v float64) int64 {
	return int64(math.Round(v/100.0)) * 100
}
