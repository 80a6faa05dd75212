package toolbar

import (
	"errors"
	"math"
	"testing"
)

func TestClassifyBreakpointBoundary(t *testing.T) {
	c := NewClassifier(480)

	tests := []struct {
		name  string
		width float64
		want  Mode
	}{
		{"well below", 360, ModeCollapsed},
		{"just below", 479.9, ModeCollapsed},
		{"exactly at breakpoint", 480, ModeExpanded},
		{"just above", 480.1, ModeExpanded},
		{"well above", 1280, ModeExpanded},
		{"zero", 0, ModeCollapsed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Classify(tt.width)
			if err != nil {
				t.Fatalf("Classify(%v) returned error: %v", tt.width, err)
			}
			if got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.width, got, tt.want)
			}
		})
	}
}

func TestClassifyInvalidWidth(t *testing.T) {
	c := NewClassifier(480)

	tests := []struct {
		name  string
		width float64
	}{
		{"negative", -1},
		{"nan", math.NaN()},
		{"positive inf", math.Inf(1)},
		{"negative inf", math.Inf(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Classify(tt.width)
			if !errors.Is(err, ErrInvalidViewport) {
				t.Errorf("Classify(%v) error = %v, want ErrInvalidViewport", tt.width, err)
			}
		})
	}
}

func TestClassifyIsStateless(t *testing.T) {
	c := NewClassifier(480)

	// Same input always yields the same mode, regardless of call history
	for i := 0; i < 3; i++ {
		got, err := c.Classify(360)
		if err != nil {
			t.Fatalf("Classify(360) returned error: %v", err)
		}
		if got != ModeCollapsed {
			t.Errorf("Classify(360) call %d = %v, want ModeCollapsed", i, got)
		}
	}
	got, _ := c.Classify(1280)
	if got != ModeExpanded {
		t.Errorf("Classify(1280) = %v, want ModeExpanded", got)
	}
}

func TestNewClassifierDefaultsBadBreakpoints(t *testing.T) {
	tests := []struct {
		name       string
		breakpoint float64
	}{
		{"zero", 0},
		{"negative", -10},
		{"nan", math.NaN()},
		{"inf", math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClassifier(tt.breakpoint)
			if c.Breakpoint() != DefaultBreakpoint {
				t.Errorf("Breakpoint() = %v, want %v", c.Breakpoint(), DefaultBreakpoint)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	if ModeExpanded.String() != "expanded" {
		t.Errorf("ModeExpanded.String() = %q", ModeExpanded.String())
	}
	if ModeCollapsed.String() != "collapsed" {
		t.Errorf("ModeCollapsed.String() = %q", ModeCollapsed.String())
	}
	if Mode(99).String() != "unknown" {
		t.Errorf("Mode(99).String() = %q", Mode(99).String())
	}
}
