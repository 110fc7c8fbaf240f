//go:build !ebiten

package ui

import "gridpath/internal/search"

// StepperSource exposes the search whose predecessors are drawn.
type StepperSource interface {
	Stepper() *search.Stepper
}

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(StepperSource, int) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// ShowSearch always reports true in headless builds.
func (o *Overlay) ShowSearch() bool { return true }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
