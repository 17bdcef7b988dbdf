// Package kernels defines the minimal kernel surface precondition checks
// look at: whether a kernel's geometry has been fixed, and the window it
// was configured with.
package kernels

import (
	"k8s.io/klog/v2"

	"github.com/tensorguard/tensorguard/types/shapes"
)

// Kernel is the read-only view checks take of a compute kernel.
type Kernel interface {
	// IsConfigured reports whether the kernel's geometry (window,
	// strides) has been fixed.
	IsConfigured() bool
	// Window returns the maximum window the kernel was configured to
	// iterate over.
	Window() shapes.Window
}

// Base carries the configured-window state shared by kernel
// implementations; embed it and call Configure from the kernel's own
// configure step.
type Base struct {
	window     shapes.Window
	configured bool
}

// Configure stores the kernel's maximum window and marks the geometry as
// fixed.
func (b *Base) Configure(window shapes.Window) {
	b.window = window
	b.configured = true
	klog.V(2).Infof("kernel configured with window %s (%d iterations)", window, window.NumIterations())
}

// IsConfigured reports whether Configure has run.
func (b *Base) IsConfigured() bool { return b.configured }

// Window returns the configured maximum window. It is only meaningful
// after Configure ran.
func (b *Base) Window() shapes.Window { return b.window }
