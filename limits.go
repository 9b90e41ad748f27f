package wasmvm

import (
	"github.com/wippyai/wasm-vm/errors"
)

// ValidateLimits checks the decoder-boundary contract assumed by the store:
// both bounds within 32-bit range and initial not above the maximum.
//
// Entities are constructed from pre-validated limits; callers feeding
// untrusted input must validate first.
func ValidateLimits(l Limits) error {
	if l.Min > LimitCeiling {
		return errors.New(errors.PhaseDecode, errors.KindOverflow).
			Path("limits", "min").
			Value(l.Min).
			Detail("initial size %d exceeds 32-bit range", l.Min).
			Build()
	}
	if max, ok := l.Maximum(); ok {
		if max > LimitCeiling {
			return errors.New(errors.PhaseDecode, errors.KindOverflow).
				Path("limits", "max").
				Value(max).
				Detail("maximum size %d exceeds 32-bit range", max).
				Build()
		}
		if l.Min > max {
			return errors.New(errors.PhaseDecode, errors.KindInvalidData).
				Path("limits").
				Value(l).
				Detail("initial size %d exceeds maximum %d", l.Min, max).
				Build()
		}
	}
	return nil
}

// ValidateMemoryLimits validates limits expressed in pages against the
// 32-bit linear memory page cap in addition to the generic limit rules.
func ValidateMemoryLimits(l Limits) error {
	if err := ValidateLimits(l); err != nil {
		return err
	}
	if l.Min > MaxMemoryPages {
		return errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
			Path("memory", "limits", "min").
			Value(l.Min).
			Detail("initial page count %d exceeds the %d page cap", l.Min, MaxMemoryPages).
			Build()
	}
	if max, ok := l.Maximum(); ok && max > MaxMemoryPages {
		return errors.New(errors.PhaseDecode, errors.KindOutOfBounds).
			Path("memory", "limits", "max").
			Value(max).
			Detail("maximum page count %d exceeds the %d page cap", max, MaxMemoryPages).
			Build()
	}
	return nil
}
