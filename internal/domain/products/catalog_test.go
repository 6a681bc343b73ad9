package products

import (
	"testing"

	"brightcover/internal/domain/entities"
)

func TestLookup(t *testing.T) {
	for _, pt := range Types() {
		p, ok := Lookup(pt)
		if !ok {
			t.Fatalf("expected catalog entry for %s", pt)
		}
		if p.Type != pt {
			t.Fatalf("catalog entry for %s carries type %s", pt, p.Type)
		}
		if p.RatePerMille <= 0 || p.MinPremium <= 0 {
			t.Fatalf("%s: non-positive rate or floor: %+v", pt, p)
		}
		if p.MinCoverage <= 0 || p.MaxCoverage <= p.MinCoverage {
			t.Fatalf("%s: bad coverage bounds: %+v", pt, p)
		}
		if len(p.PlanFactors) == 0 {
			t.Fatalf("%s: no plan factors", pt)
		}
		for plan, f := range p.PlanFactors {
			if f <= 0 {
				t.Fatalf("%s: plan %s has non-positive factor", pt, plan)
			}
		}
	}

	if _, ok := Lookup(entities.ProductType("pet")); ok {
		t.Fatalf("expected unknown product to miss")
	}
}

func TestAgeFactor(t *testing.T) {
	if AgeFactor(17) != 0 || AgeFactor(101) != 0 {
		t.Fatalf("expected out-of-range ages to return 0")
	}

	// Non-decreasing across the whole insurable range.
	prev := AgeFactor(18)
	if prev <= 0 {
		t.Fatalf("expected positive factor at 18")
	}
	for age := 19; age <= 100; age++ {
		f := AgeFactor(age)
		if f < prev {
			t.Fatalf("age factor decreased at %d: %v < %v", age, f, prev)
		}
		prev = f
	}

	// Young-adult discount sits below the adult baseline.
	if AgeFactor(20) >= AgeFactor(30) {
		t.Fatalf("expected young-adult discount below baseline")
	}
}

func TestVehicleAgeFactor(t *testing.T) {
	cases := []struct {
		years int
		want  float64
	}{
		{0, 1.0}, {5, 1.0}, {6, VehicleAgeMidFactor}, {10, VehicleAgeMidFactor}, {11, VehicleAgeOldFactor}, {20, VehicleAgeOldFactor},
	}
	for _, tc := range cases {
		if got := VehicleAgeFactor(tc.years); got != tc.want {
			t.Fatalf("VehicleAgeFactor(%d) = %v, want %v", tc.years, got, tc.want)
		}
	}
}

func TestCityTierFactor(t *testing.T) {
	if CityTierFactor(1) != CityTier1Factor || CityTierFactor(2) != CityTier2Factor {
		t.Fatalf("unexpected tier loadings")
	}
	if CityTierFactor(3) != 1.0 || CityTierFactor(0) != 1.0 {
		t.Fatalf("expected neutral factor outside tier 1/2")
	}
}

func TestValidContactSubject(t *testing.T) {
	if !ValidContactSubject("claim-assistance") {
		t.Fatalf("expected claim-assistance to be valid")
	}
	if ValidContactSubject("spam") {
		t.Fatalf("expected spam to be rejected")
	}
}
