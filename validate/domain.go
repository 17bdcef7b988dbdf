package validate

import (
	"github.com/tensorguard/tensorguard/kernels"
	"github.com/tensorguard/tensorguard/types/dtypes"
	"github.com/tensorguard/tensorguard/types/hog"
	"github.com/tensorguard/tensorguard/types/tensors"
)

// AssertValidMultiHOGAt fails with NullReference if the container or any
// model is absent, EmptyContainer if it holds no models, or
// InconsistentContainer if the models disagree on phase type,
// normalization type or, for NormL2Hys, the hysteresis threshold.
func AssertValidMultiHOGAt(at Location, multiHOG hog.MultiHOG) {
	if !Enabled {
		return
	}
	errorOn(isNil(multiHOG), NullReference, at)
	errorOnMsg(multiHOG.NumModels() == 0, EmptyContainer, at, "container holds no models")
	anchor := multiHOG.Model(0)
	errorOn(anchor == nil, NullReference, at)
	for index := 1; index < multiHOG.NumModels(); index++ {
		model := multiHOG.Model(index)
		errorOn(model == nil, NullReference, at)
		errorOnMsg(model.PhaseType() != anchor.PhaseType(), InconsistentContainer, at,
			"models have different phase types")
		errorOnMsg(model.NormType() != anchor.NormType(), InconsistentContainer, at,
			"models have different normalization types")
		if anchor.NormType() == hog.NormL2Hys {
			errorOnMsg(model.L2HystThreshold() != anchor.L2HystThreshold(), InconsistentContainer, at,
				"models have different L2 hysteresis thresholds")
		}
	}
}

// AssertValidMultiHOG is AssertValidMultiHOGAt reporting the caller as
// the call site.
func AssertValidMultiHOG(multiHOG hog.MultiHOG) {
	if !Enabled {
		return
	}
	AssertValidMultiHOGAt(locationAt(2), multiHOG)
}

// AssertConfiguredAt fails with NullReference if the kernel is absent, or
// KernelNotConfigured if its geometry has not been fixed yet.
func AssertConfiguredAt(at Location, kernel kernels.Kernel) {
	if !Enabled {
		return
	}
	errorOn(isNil(kernel), NullReference, at)
	errorOnMsg(!kernel.IsConfigured(), KernelNotConfigured, at,
		"kernel geometry has not been configured")
}

// AssertConfigured is AssertConfiguredAt reporting the caller as the call
// site.
func AssertConfigured(kernel kernels.Kernel) {
	if !Enabled {
		return
	}
	AssertConfiguredAt(locationAt(2), kernel)
}

// AssertRepresentableAt fails with ValueNotRepresentable if the value
// exceeds the largest magnitude the tensor's element type can hold.
//
// For fixed-point tensors the bound is (2^(bits-1) - 1) / 2^position,
// the signed two's-complement fixed-point range. For floating-point
// tensors it is the type's largest finite magnitude. For other element
// types the check is a no-op.
func AssertRepresentableAt(at Location, value float64, t tensors.Tensor) {
	if !Enabled {
		return
	}
	errorOn(nilTensor(t), NullReference, at)
	info := t.Info()
	dt := info.DataType()
	switch {
	case dt.IsFixedPoint():
		maxMagnitude := float64(dtypes.MaxFixedPointMagnitude(dt, info.FixedPointPosition()))
		errorOnMsg(value > maxMagnitude, ValueNotRepresentable, at,
			"value %f is not representable in %s with fixed-point position %d",
			value, dt, info.FixedPointPosition())
	case dt.IsFloat():
		maxMagnitude := dtypes.MaxMagnitude(dt)
		errorOnMsg(value > maxMagnitude, ValueNotRepresentable, at,
			"value %g exceeds the range of %s", value, dt)
	}
}

// AssertRepresentable is AssertRepresentableAt reporting the caller as
// the call site.
func AssertRepresentable(value float64, t tensors.Tensor) {
	if !Enabled {
		return
	}
	AssertRepresentableAt(locationAt(2), value, t)
}
