package rainbow

import "math"

// IndexOfRefraction returns the refractive index of water for a wavelength in
// nanometers, using a two-term Cauchy fit over the visible range.
func IndexOfRefraction(wavelength float64) float64 {
	return 1.3199 + 6878.0/(wavelength*wavelength)
}

// Refract applies Snell's law for an air-to-water transition: n is the water
// index, incident the incident angle in radians.
func Refract(n, incident float64) float64 {
	return math.Asin(math.Sin(incident) / n)
}

// Fresnel returns the non-polarized reflected intensity at an interface given
// incident and refracted angles. Water-air is 1 minus air-water, so one form
// covers both directions by swapping the angles.
func Fresnel(incident, refracted float64) float64 {
	si := math.Sin(incident - refracted)
	ss := math.Sin(incident + refracted)
	ti := math.Tan(incident - refracted)
	ts := math.Tan(incident + refracted)
	if ss == 0 || ts == 0 {
		return 0
	}
	rs := si / ss
	rp := ti / ts
	return 0.5 * (rs*rs + rp*rp)
}

// Deviation returns the viewing angle from the antisolar direction for a ray
// entering a spherical droplet, reflecting internally `bounces` times and
// exiting. The raw total deviation is folded into [0, pi] first.
func Deviation(bounces int, incident, refracted float64) float64 {
	k := float64(bounces)
	d := k*math.Pi + 2*incident - 2*(k+1)*refracted
	d = math.Mod(d, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return math.Pi - d
}
