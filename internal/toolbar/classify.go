package toolbar

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidViewport is returned for negative or non-finite widths. Callers
// keep their previous layout mode when classification fails.
var ErrInvalidViewport = errors.New("invalid viewport width")

// Mode is the toolbar layout mode, derived from the viewport width.
type Mode int

const (
	// ModeExpanded shows every action as an inline control
	ModeExpanded Mode = iota
	// ModeCollapsed hides inline controls behind a single overflow trigger
	ModeCollapsed
)

func (m Mode) String() string {
	switch m {
	case ModeExpanded:
		return "expanded"
	case ModeCollapsed:
		return "collapsed"
	default:
		return "unknown"
	}
}

// DefaultBreakpoint is the width threshold used when none is configured.
const DefaultBreakpoint = 80.0

// Classifier maps a viewport width to a layout mode using a single
// breakpoint. Classification is pure and stateless; there is no hysteresis.
type Classifier struct {
	breakpoint float64
}

// NewClassifier returns a classifier with the given breakpoint. Non-positive
// breakpoints fall back to DefaultBreakpoint.
func NewClassifier(breakpoint float64) Classifier {
	if breakpoint <= 0 || math.IsNaN(breakpoint) || math.IsInf(breakpoint, 0) {
		breakpoint = DefaultBreakpoint
	}
	return Classifier{breakpoint: breakpoint}
}

// Breakpoint returns the configured width threshold.
func (c Classifier) Breakpoint() float64 {
	return c.breakpoint
}

// Classify maps a width to a mode. The boundary is inclusive on the upper
// side: width == breakpoint resolves to ModeExpanded.
func (c Classifier) Classify(width float64) (Mode, error) {
	if width < 0 || math.IsNaN(width) || math.IsInf(width, 0) {
		return 0, fmt.Errorf("%w: %v", ErrInvalidViewport, width)
	}
	if width >= c.breakpoint {
		return ModeExpanded, nil
	}
	return ModeCollapsed, nil
}
