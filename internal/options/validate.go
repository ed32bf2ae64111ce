// Package options holds checks shared by the functional-option entry points.
package options

import "github.com/erraggy/apitypes/schemaerrors"

// ValidateSingleInputSource fails unless exactly one of sources is true.
// The error is a *schemaerrors.ConfigError for option carrying noSourceMsg
// or multiSourceMsg.
func ValidateSingleInputSource(option, noSourceMsg, multiSourceMsg string, sources ...bool) error {
	set := 0
	for _, ok := range sources {
		if ok {
			set++
		}
	}
	switch {
	case set == 0:
		return &schemaerrors.ConfigError{Option: option, Message: noSourceMsg}
	case set > 1:
		return &schemaerrors.ConfigError{Option: option, Message: multiSourceMsg}
	default:
		return nil
	}
}
