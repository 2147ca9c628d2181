package ink

// SurfaceOption configures a Surface during creation.
//
// Example:
//
//	// Default pen
//	s := ink.NewSurface()
//
//	// Thicker pen for coarse pointer devices
//	s := ink.NewSurface(ink.WithStrokeWidth(28))
type SurfaceOption func(*surfaceOptions)

// surfaceOptions holds optional configuration for Surface creation.
type surfaceOptions struct {
	strokeWidth float64
}

// defaultSurfaceOptions returns the default surface options.
func defaultSurfaceOptions() surfaceOptions {
	return surfaceOptions{
		strokeWidth: DefaultStrokeWidth,
	}
}

// WithStrokeWidth sets the pen thickness in raster pixels.
// Non-positive values keep the default.
func WithStrokeWidth(w float64) SurfaceOption {
	return func(o *surfaceOptions) {
		if w > 0 {
			o.strokeWidth = w
		}
	}
}

// SessionOption configures a Session during creation.
type SessionOption func(*sessionOptions)

// sessionOptions holds optional configuration for Session creation.
type sessionOptions struct {
	surface *Surface
	notify  func()
}

// defaultSessionOptions returns the default session options.
func defaultSessionOptions() sessionOptions {
	return sessionOptions{}
}

// WithSurface sets a custom surface for the Session, for hosts that
// configure the pen or pre-populate the raster.
//
// Example:
//
//	s := ink.NewSurface(ink.WithStrokeWidth(28))
//	sess := ink.NewSession(classifier, ink.WithSurface(s))
func WithSurface(s *Surface) SessionOption {
	return func(o *sessionOptions) {
		o.surface = s
	}
}

// WithNotify registers a hook invoked after every applied state change,
// including those delivered by network completions. GUI hosts use it to
// schedule a redraw (for example gio's window.Invalidate). The hook may
// be called from any goroutine and must not call back into the Session.
func WithNotify(fn func()) SessionOption {
	return func(o *sessionOptions) {
		o.notify = fn
	}
}
