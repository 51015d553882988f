package util

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// GetTrace produces the string representation of the stack of its caller's caller,
// omitting runtime frames
func GetTrace() string {
	var pc [32]uintptr
	var res strings.Builder
	frames := runtime.CallersFrames(pc[:runtime.Callers(3, pc[:])])
	for {
		frame, more := frames.Next()
		if !strings.HasPrefix(frame.Function, "runtime.") {
			fmt.Fprintf(&res, "%s\n\t%s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return res.String()
}

// FormatMultiError formats the errors of a multierror one per line, for logging
func FormatMultiError(merr *multierror.Error) string {
	if merr == nil {
		return ""
	}
	var res strings.Builder
	for i, err := range merr.Errors {
		fmt.Fprintf(&res, "%d) %+v\n", i+1, err)
	}
	return res.String()
}
