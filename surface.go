package ink

// Surface geometry and pen defaults. The raster is square and fixed-size;
// hosts with larger or smaller drawing areas map coordinates through
// MapFromBox rather than resizing the raster.
const (
	// SurfaceEdge is the edge length of the drawing raster in pixels.
	SurfaceEdge = 300

	// DefaultStrokeWidth is the pen thickness in raster pixels. At 300px
	// it leaves digits legible after reduction to the 28x28 grid.
	DefaultStrokeWidth = 20
)

// Stroke is one continuous pen trace, ordered from pen-down to pen-up.
type Stroke []Point

// Surface records freehand strokes on a fixed square grayscale raster.
// The raster holds ink-absent black (0) and full-ink white (255) plus the
// anti-aliased blend along stroke edges; the pen is round-capped with a
// fixed width, so joins and overlaps stay smooth.
//
// A Surface is not safe for concurrent use. Hosts deliver events from a
// single goroutine, translating their own pointer coordinates through
// MapFromBox first.
type Surface struct {
	pm          *Pixmap
	strokeWidth float64
	strokes     []Stroke
	current     Stroke // nil when no stroke is open
}

// NewSurface creates an empty surface: ink-absent raster, no strokes.
func NewSurface(opts ...SurfaceOption) *Surface {
	o := defaultSurfaceOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Surface{
		pm:          NewPixmap(SurfaceEdge, SurfaceEdge),
		strokeWidth: o.strokeWidth,
	}
}

// BeginStroke opens a new stroke at p. Nothing is painted yet; a pen-down
// with no movement must leave the raster untouched. If a stroke is already
// open the call is ignored, so duplicated pen-down events are harmless.
func (s *Surface) BeginStroke(p Point) {
	if s.current != nil {
		return
	}
	s.current = Stroke{p}
}

// ExtendStroke continues the open stroke to p, painting the round-capped
// segment from the previous point. Ignored when no stroke is open.
func (s *Surface) ExtendStroke(p Point) {
	if s.current == nil {
		return
	}
	last := s.current[len(s.current)-1]
	paintCapsule(s.pm, last, p, s.strokeWidth/2)
	s.current = append(s.current, p)
}

// EndStroke closes the open stroke and records it. Safe to call on a
// degenerate tap (a single captured point): the stroke is recorded but
// no ink was ever painted. Ignored when no stroke is open.
func (s *Surface) EndStroke() {
	if s.current == nil {
		return
	}
	s.strokes = append(s.strokes, s.current)
	s.current = nil
}

// Clear repaints the raster to ink-absent and discards all recorded
// strokes, including one in progress. Any grid computed earlier no longer
// describes the surface; callers recompute after drawing again.
func (s *Surface) Clear() {
	s.pm.Clear(0)
	s.strokes = nil
	s.current = nil
}

// StrokeOpen reports whether a stroke is currently in progress.
func (s *Surface) StrokeOpen() bool {
	return s.current != nil
}

// Strokes returns the recorded strokes, oldest first. The slice is owned
// by the surface and valid until the next Clear.
func (s *Surface) Strokes() []Stroke {
	return s.strokes
}

// StrokeWidth returns the pen thickness in raster pixels.
func (s *Surface) StrokeWidth() float64 {
	return s.strokeWidth
}

// Pixmap returns the backing raster.
func (s *Surface) Pixmap() *Pixmap {
	return s.pm
}

// MapFromBox translates host coordinates (hx, hy), captured inside the
// axis-aligned box with origin (boxX, boxY) and size boxW x boxH, into
// surface coordinates. Mouse and touch positions are identical once
// mapped, so the surface never distinguishes input devices.
func (s *Surface) MapFromBox(hx, hy, boxX, boxY, boxW, boxH float64) Point {
	if boxW <= 0 || boxH <= 0 {
		return Point{}
	}
	return Point{
		X: (hx - boxX) / boxW * float64(s.pm.Width()),
		Y: (hy - boxY) / boxH * float64(s.pm.Height()),
	}
}
