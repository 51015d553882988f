package util

import (
	"fmt"

	"github.com/go-sif/sifc/ir"
)

// ApplyFunc is the transformation of a compile-time pass
type ApplyFunc func(d *ir.DAG) (*ir.DAG, error)

// SafeApply wraps a pass transformation such that panics are recovered and nice error messages are constructed
func SafeApply(name string, apply ApplyFunc) (safeApply ApplyFunc) {
	return func(d *ir.DAG) (result *ir.DAG, err error) {
		defer func() {
			if r := recover(); r != nil {
				result = nil
				if anErr, ok := r.(error); ok {
					err = fmt.Errorf("Pass %s Panic: %w\n%s", name, anErr, GetTrace())
				} else {
					err = fmt.Errorf("Pass %s Panic: %v\n%s", name, r, GetTrace())
				}
			}
		}()
		result, err = apply(d)
		return
	}
}
