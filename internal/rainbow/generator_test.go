package rainbow

import (
	"context"
	"math"
	"testing"
)

func TestDeviationMatchesKnownBowAngles(t *testing.T) {
	n := IndexOfRefraction(600)
	// Minimum-deviation geometry for the primary bow.
	incident := math.Acos(math.Sqrt((n*n - 1) / 3))
	refracted := Refract(n, incident)

	primary := Deviation(1, incident, refracted) * 180 / math.Pi
	if primary < 40 || primary > 44 {
		t.Fatalf("primary bow at %.1f degrees, want ~42", primary)
	}

	incident2 := math.Acos(math.Sqrt((n*n - 1) / 8))
	refracted2 := Refract(n, incident2)
	secondary := Deviation(2, incident2, refracted2) * 180 / math.Pi
	if secondary < 48 || secondary > 54 {
		t.Fatalf("secondary bow at %.1f degrees, want ~51", secondary)
	}
}

func TestFresnelEnergyConservation(t *testing.T) {
	n := IndexOfRefraction(550)
	for _, deg := range []float64{5, 20, 45, 70} {
		incident := deg * math.Pi / 180
		refracted := Refract(n, incident)
		r := Fresnel(incident, refracted)
		if r < 0 || r > 1 {
			t.Fatalf("reflectance %g out of [0,1] at %g degrees", r, deg)
		}
	}
}

func TestIndexOfRefractionDispersion(t *testing.T) {
	blue := IndexOfRefraction(450)
	red := IndexOfRefraction(650)
	if blue <= red {
		t.Fatalf("blue index %g must exceed red index %g", blue, red)
	}
}

func TestBuildNormalizesAndIsDeterministic(t *testing.T) {
	gen := func() *Generator {
		return New().LUT(32).Samples(2048).Seed(7)
	}

	first, err := gen().Build(context.Background())
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(first.Data) != 32 {
		t.Fatalf("lut size = %d", len(first.Data))
	}

	var peak float64
	for _, c := range first.Data {
		peak = max(peak, c.R, c.G, c.B)
	}
	if math.Abs(peak-1) > 1e-9 {
		t.Fatalf("peak component = %g, want 1", peak)
	}
	if first.Scale <= 0 {
		t.Fatalf("scale = %g", first.Scale)
	}

	second, err := gen().Build(context.Background())
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if first.S != second.S || first.O != second.O || first.Scale != second.Scale {
		t.Fatal("header fields differ between identical builds")
	}
	if len(second.Data) != len(first.Data) {
		t.Fatalf("lut sizes differ: %d vs %d", len(first.Data), len(second.Data))
	}
	for i := range first.Data {
		if first.Data[i] != second.Data[i] {
			t.Fatalf("entry %d differs: %v vs %v", i, first.Data[i], second.Data[i])
		}
	}
}

func TestBuildValidatesOptions(t *testing.T) {
	if _, err := New().LUT(0).Build(context.Background()); err == nil {
		t.Fatal("expected error for zero lut size")
	}
	if _, err := New().MinDeviation(1).MaxDeviation(0.5).Build(context.Background()); err == nil {
		t.Fatal("expected error for empty deviation range")
	}
}
