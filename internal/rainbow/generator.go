// Package rainbow builds light-scattering lookup tables: the spectral
// intensity of sunlight scattered by spherical water droplets, binned by
// viewing angle and resolved to linear sRGB.
package rainbow

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"

	"fortio.org/safecast"
	"golang.org/x/sync/errgroup"

	"astrict/internal/container"
)

// Rainbow is the generated LUT. A viewing angle phi maps to the table as
// index = floor(len(Data) * (v*S + O)) where v is phi (or cos(phi) for a
// cosine-mapped table). Data is normalized to [0, 1]; Scale restores absolute
// intensity.
type Rainbow struct {
	S     float64
	O     float64
	Scale float64
	Data  []LinearSRGB
}

// Generator accumulates options builder-style and produces a Rainbow.
type Generator struct {
	lutSize      uint32
	sampleCount  uint32
	cosine       bool
	minDeviation float64
	maxDeviation float64
	temperature  float64
	sunArc       float64
	seed         uint64
}

func New() *Generator {
	return &Generator{
		lutSize:      256,
		sampleCount:  65536,
		minDeviation: 35 * math.Pi / 180,
		maxDeviation: 60 * math.Pi / 180,
		temperature:  20,
		// The sun appears as about a degree in the sky.
		sunArc: 1 * math.Pi / 180,
	}
}

// LUT sets the number of table entries.
func (g *Generator) LUT(count uint32) *Generator {
	g.lutSize = count
	return g
}

// Cosine switches the table mapping from viewing angle to its cosine.
func (g *Generator) Cosine(enabled bool) *Generator {
	g.cosine = enabled
	return g
}

// MinDeviation sets the smallest recorded viewing angle, in radians.
func (g *Generator) MinDeviation(min float64) *Generator {
	g.minDeviation = min
	return g
}

// MaxDeviation sets the largest recorded viewing angle, in radians.
func (g *Generator) MaxDeviation(max float64) *Generator {
	g.maxDeviation = max
	return g
}

// Samples sets the number of impact parameters traced per wavelength.
func (g *Generator) Samples(count uint32) *Generator {
	g.sampleCount = count
	return g
}

// Temperature sets the air temperature in degrees Celsius.
func (g *Generator) Temperature(t float64) *Generator {
	g.temperature = t
	return g
}

// SunArc sets the angular diameter of the sun, in radians.
func (g *Generator) SunArc(arc float64) *Generator {
	g.sunArc = arc
	return g
}

// Seed fixes the RNG seed; a given seed always yields the same table.
func (g *Generator) Seed(seed uint64) *Generator {
	g.seed = seed
	return g
}

// Build traces the droplet paths and returns the normalized LUT. Wavelengths
// are processed in parallel; cancellation of ctx aborts the build.
func (g *Generator) Build(ctx context.Context) (*Rainbow, error) {
	if g.lutSize == 0 {
		return nil, fmt.Errorf("rainbow: lut size must be positive")
	}
	if g.maxDeviation <= g.minDeviation {
		return nil, fmt.Errorf("rainbow: empty deviation range [%g, %g)", g.minDeviation, g.maxDeviation)
	}
	count, err := safecast.Conv[int32](g.sampleCount)
	if err != nil {
		return nil, fmt.Errorf("rainbow: sample count: %w", err)
	}
	if count <= 0 {
		return nil, fmt.Errorf("rainbow: sample count must be positive")
	}

	lutSize := int(g.lutSize)
	minDeviation := g.minDeviation
	maxDeviation := g.maxDeviation

	var c0, c1 float64
	if g.cosine {
		min := 1 - math.Cos(minDeviation)
		max := 1 - math.Cos(maxDeviation)
		c0 = -1 / (max - min)
		c1 = (1 - min) / (max - min)
	} else {
		c0 = 1 / (maxDeviation - minDeviation)
		c1 = -minDeviation * c0
	}

	s := float64(2*lutSize) / ((maxDeviation - minDeviation) * float64(count) * float64(len(cieXYZ)))

	// Each wavelength accumulates into its own bucket; buckets are summed in
	// table order after the fan-in so float rounding never depends on
	// goroutine scheduling.
	buckets := make([][]xyz, len(cieXYZ))

	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(8)
	for j := range cieXYZ {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			// Current wavelength
			w := cieStart + float64(j)*cieStep
			n := IndexOfRefraction(w)
			weight := xyz{
				X: cieXYZ[j].X / cieLuminanceNorm,
				Y: cieXYZ[j].Y / cieLuminanceNorm,
				Z: cieXYZ[j].Z / cieLuminanceNorm,
			}

			rng := rand.New(rand.NewPCG(g.seed, uint64(j)))
			local := container.NewCapped[xyz](lutSize)
			for range lutSize {
				if err := local.Push(xyz{}); err != nil {
					return err
				}
			}

			for i := int32(0); i < count; i++ {
				impact := float64(i*2-count) / float64(count)
				impactAngle := (rng.Float64() - 0.5) * g.sunArc
				incident := math.Asin(impact) - impactAngle

				refracted := Refract(n, incident)

				// intensity reflected entering the droplet (air-water)
				raw := Fresnel(incident, refracted)
				// intensity reflected exiting the droplet (water-air)
				rwa := Fresnel(refracted, incident)
				taw := 1 - raw
				twa := 1 - rwa

				for _, bounces := range [2]int{1, 2} {
					phi := Deviation(bounces, incident, refracted) - impactAngle
					if phi < minDeviation || phi >= maxDeviation {
						continue
					}
					v := phi
					if g.cosine {
						v = math.Cos(phi)
					}
					index := int(math.Floor(float64(lutSize) * (v*c0 + c1)))
					if index < 0 || index >= lutSize {
						continue
					}
					t := taw * math.Pow(rwa, float64(bounces)) * twa * s
					cur := local.At(index)
					local.Set(index, xyz{
						X: cur.X + t*weight.X,
						Y: cur.Y + t*weight.Y,
						Z: cur.Z + t*weight.Z,
					})
				}
			}

			buckets[j] = append([]xyz(nil), local.Slice()...)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	acc := make([]xyz, lutSize)
	for _, bucket := range buckets {
		for index, v := range bucket {
			acc[index].X += v.X
			acc[index].Y += v.Y
			acc[index].Z += v.Z
		}
	}

	// Convert to linear sRGB and find the largest component.
	out := &Rainbow{
		S:     c0,
		O:     c1,
		Scale: 0,
		Data:  make([]LinearSRGB, lutSize),
	}
	for index, v := range acc {
		c := xyzToLinearSRGB(v)
		out.Data[index] = c
		out.Scale = max(out.Scale, c.R, c.G, c.B)
	}
	if out.Scale > 0 {
		// Rescale everything to the [0, 1] range.
		inv := 1 / out.Scale
		for index := range out.Data {
			out.Data[index] = out.Data[index].scale(inv)
		}
	}
	return out, nil
}
