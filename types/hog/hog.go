// Package hog holds the descriptor metadata of HOG (histogram of oriented
// gradients) detector models, and the MultiHOG container interface for
// collections of per-class models sharing common configuration.
package hog

import (
	"fmt"

	"github.com/gomlx/exceptions"

	"github.com/tensorguard/tensorguard/types/shapes"
)

// PhaseType selects how gradient orientation is binned.
type PhaseType int

const (
	// PhaseUnsigned bins orientations over [0°, 180°).
	PhaseUnsigned PhaseType = iota
	// PhaseSigned bins orientations over [0°, 360°).
	PhaseSigned
)

// String implements fmt.Stringer.
func (p PhaseType) String() string {
	switch p {
	case PhaseUnsigned:
		return "Unsigned"
	case PhaseSigned:
		return "Signed"
	}
	return fmt.Sprintf("PhaseType(%d)", int(p))
}

// NormType selects how block descriptors are normalized.
type NormType int

const (
	// NormL2 is plain L2 normalization.
	NormL2 NormType = iota
	// NormL2Hys is L2 normalization followed by clipping at a hysteresis
	// threshold and renormalizing.
	NormL2Hys
	// NormL1 is plain L1 normalization.
	NormL1
)

// String implements fmt.Stringer.
func (n NormType) String() string {
	switch n {
	case NormL2:
		return "L2"
	case NormL2Hys:
		return "L2Hys"
	case NormL1:
		return "L1"
	}
	return fmt.Sprintf("NormType(%d)", int(n))
}

// Info is the read-only descriptor of one HOG model: the block geometry
// plus the binning and normalization configuration. Create it with
// NewInfo; the zero value describes nothing useful.
type Info struct {
	cellSize            shapes.Size2D
	blockSize           shapes.Size2D
	blockStride         shapes.Size2D
	detectionWindowSize shapes.Size2D
	numBins             int
	normType            NormType
	l2HystThreshold     float32
	phaseType           PhaseType
}

// NewInfo returns a model descriptor with the given geometry and
// configuration. Block geometry must be cell-aligned and non-empty.
func NewInfo(cellSize, blockSize, blockStride, detectionWindowSize shapes.Size2D,
	numBins int, normType NormType, l2HystThreshold float32, phaseType PhaseType) *Info {
	if cellSize.Area() <= 0 || blockSize.Area() <= 0 || detectionWindowSize.Area() <= 0 {
		exceptions.Panicf("hog.NewInfo: cell, block and detection window sizes must be non-empty")
	}
	if blockSize.Width%cellSize.Width != 0 || blockSize.Height%cellSize.Height != 0 {
		exceptions.Panicf("hog.NewInfo: block size %s is not a multiple of cell size %s", blockSize, cellSize)
	}
	if numBins <= 0 {
		exceptions.Panicf("hog.NewInfo: number of bins must be positive, got %d", numBins)
	}
	return &Info{
		cellSize:            cellSize,
		blockSize:           blockSize,
		blockStride:         blockStride,
		detectionWindowSize: detectionWindowSize,
		numBins:             numBins,
		normType:            normType,
		l2HystThreshold:     l2HystThreshold,
		phaseType:           phaseType,
	}
}

// CellSize returns the cell geometry in pixels.
func (i *Info) CellSize() shapes.Size2D { return i.cellSize }

// BlockSize returns the block geometry in pixels.
func (i *Info) BlockSize() shapes.Size2D { return i.blockSize }

// BlockStride returns the distance between consecutive blocks.
func (i *Info) BlockStride() shapes.Size2D { return i.blockStride }

// DetectionWindowSize returns the detection window geometry in pixels.
func (i *Info) DetectionWindowSize() shapes.Size2D { return i.detectionWindowSize }

// NumBins returns the number of orientation histogram bins per cell.
func (i *Info) NumBins() int { return i.numBins }

// NormType returns the block normalization variant.
func (i *Info) NormType() NormType { return i.normType }

// L2HystThreshold returns the clipping threshold used by NormL2Hys.
func (i *Info) L2HystThreshold() float32 { return i.l2HystThreshold }

// PhaseType returns the orientation binning variant.
func (i *Info) PhaseType() PhaseType { return i.phaseType }

// MultiHOG is a non-owning collection of per-class HOG models. All models
// in one container are expected to share phase type, norm type and, for
// NormL2Hys, the hysteresis threshold.
type MultiHOG interface {
	// NumModels returns the number of models held.
	NumModels() int
	// Model returns the descriptor of the index-th model.
	Model(index int) *Info
}
