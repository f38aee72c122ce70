package rainbow

// LinearSRGB is one LUT entry: a linear (non-gamma) sRGB triple.
type LinearSRGB struct {
	R, G, B float64
}

func (c LinearSRGB) scale(s float64) LinearSRGB {
	return LinearSRGB{c.R * s, c.G * s, c.B * s}
}

// xyzToLinearSRGB converts a CIE XYZ triple to linear sRGB (IEC 61966-2-1
// matrix, D65 white point). Out-of-gamut components may come out negative.
func xyzToLinearSRGB(v xyz) LinearSRGB {
	return LinearSRGB{
		R: 3.2404542*v.X - 1.5371385*v.Y - 0.4985314*v.Z,
		G: -0.9692660*v.X + 1.8760108*v.Y + 0.0415560*v.Z,
		B: 0.0556434*v.X - 0.2040259*v.Y + 1.0572252*v.Z,
	}
}
