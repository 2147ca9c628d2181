package ink

import "math"

// sdfAntialiasWidth controls the smoothstep transition width in pixels.
// A value of 0.7 produces smooth anti-aliasing at standard DPI.
const sdfAntialiasWidth = 0.7

// SDFCapsuleCoverage computes anti-aliased coverage for a capsule, the
// shape swept by a round pen moving along the segment from a to b.
//
// Parameters:
//   - px, py: pixel center coordinates
//   - a, b: segment endpoints
//   - radius: pen radius (half the stroke width)
//
// Returns a coverage value in [0, 1] where 1 means fully inside.
func SDFCapsuleCoverage(px, py float64, a, b Point, radius float64) float64 {
	sdf := distanceToSegment(Pt(px, py), a, b) - radius
	return smoothstepCoverage(sdf)
}

// distanceToSegment returns the distance from p to the segment [a, b].
// The projection of p onto the segment's line is clamped to the segment,
// so endpoints behave as round caps.
func distanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Distance(a.Add(ab.Mul(t)))
}

// smoothstepCoverage converts a signed distance to an anti-aliased coverage
// value using a Hermite smoothstep function.
//
// sdf < -afwidth => 1.0 (fully inside)
// sdf > +afwidth => 0.0 (fully outside)
// Otherwise       => smooth transition
func smoothstepCoverage(sdf float64) float64 {
	if sdf >= sdfAntialiasWidth {
		return 0
	}
	if sdf <= -sdfAntialiasWidth {
		return 1
	}
	t := (sdf + sdfAntialiasWidth) / (2 * sdfAntialiasWidth)
	// Hermite smoothstep: 3t^2 - 2t^3
	return 1 - (t * t * (3 - 2*t))
}

// paintCapsule renders the capsule from a to b into the pixmap with
// max blending. Pixels outside the pixmap are clipped by the bounding
// box, so segments may extend past the surface without error.
func paintCapsule(pm *Pixmap, a, b Point, radius float64) {
	// Bounding box with anti-aliasing padding.
	pad := radius + 1
	minX := int(math.Max(0, math.Floor(math.Min(a.X, b.X)-pad)))
	maxX := int(math.Min(float64(pm.Width()-1), math.Ceil(math.Max(a.X, b.X)+pad)))
	minY := int(math.Max(0, math.Floor(math.Min(a.Y, b.Y)-pad)))
	maxY := int(math.Min(float64(pm.Height()-1), math.Ceil(math.Max(a.Y, b.Y)+pad)))

	for py := minY; py <= maxY; py++ {
		for px := minX; px <= maxX; px++ {
			coverage := SDFCapsuleCoverage(float64(px)+0.5, float64(py)+0.5, a, b, radius)
			if coverage > 0 {
				pm.BlendMax(px, py, uint8(coverage*255+0.5))
			}
		}
	}
}
