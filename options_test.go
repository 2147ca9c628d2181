package ink

import "testing"

func TestDefaultSurfaceOptions(t *testing.T) {
	o := defaultSurfaceOptions()
	if o.strokeWidth != DefaultStrokeWidth {
		t.Errorf("strokeWidth = %v, want %v", o.strokeWidth, DefaultStrokeWidth)
	}
}

func TestWithStrokeWidthOption(t *testing.T) {
	tests := []struct {
		name  string
		width float64
		want  float64
	}{
		{"positive", 28, 28},
		{"fractional", 2.5, 2.5},
		{"zero keeps default", 0, DefaultStrokeWidth},
		{"negative keeps default", -3, DefaultStrokeWidth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultSurfaceOptions()
			WithStrokeWidth(tt.width)(&o)
			if o.strokeWidth != tt.want {
				t.Errorf("WithStrokeWidth(%v): strokeWidth = %v, want %v", tt.width, o.strokeWidth, tt.want)
			}
		})
	}
}

func TestDefaultSessionOptions(t *testing.T) {
	o := defaultSessionOptions()
	if o.surface != nil {
		t.Error("default session options carry a surface")
	}
	if o.notify != nil {
		t.Error("default session options carry a notify hook")
	}
}

func TestWithSurfaceOption(t *testing.T) {
	surface := NewSurface()
	o := defaultSessionOptions()
	WithSurface(surface)(&o)
	if o.surface != surface {
		t.Error("WithSurface did not store the surface")
	}
}

func TestWithNotifyOption(t *testing.T) {
	called := false
	o := defaultSessionOptions()
	WithNotify(func() { called = true })(&o)
	if o.notify == nil {
		t.Fatal("WithNotify did not store the hook")
	}
	o.notify()
	if !called {
		t.Error("stored hook is not the one passed in")
	}
}
