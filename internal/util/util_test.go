package util

import (
	"errors"
	"testing"

	cerrors "github.com/go-sif/sifc/errors"
	"github.com/go-sif/sifc/ir"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestSafeApplyRecoversPanics(t *testing.T) {
	safe := SafeApply("boom", func(d *ir.DAG) (*ir.DAG, error) {
		panic(cerrors.PropertyDomainError{Kind: "Parallelism", Value: "0", Reason: "parallelism must be positive"})
	})
	out, err := safe(nil)
	require.Nil(t, out)
	var domainErr cerrors.PropertyDomainError
	require.True(t, errors.As(err, &domainErr))
	require.Contains(t, err.Error(), "Pass boom Panic")

	safe = SafeApply("str", func(d *ir.DAG) (*ir.DAG, error) { panic("oops") })
	_, err = safe(nil)
	require.Contains(t, err.Error(), "oops")
}

func TestSafeApplyPassesResultsThrough(t *testing.T) {
	sentinel := errors.New("sentinel")
	safe := SafeApply("err", func(d *ir.DAG) (*ir.DAG, error) { return nil, sentinel })
	_, err := safe(nil)
	require.ErrorIs(t, err, sentinel)
}

func TestFormatMultiError(t *testing.T) {
	var merr *multierror.Error
	require.Empty(t, FormatMultiError(merr))
	merr = multierror.Append(merr, errors.New("a"), errors.New("b"))
	require.Equal(t, "1) a\n2) b\n", FormatMultiError(merr))
}

func TestGetTraceOmitsRuntimeFrames(t *testing.T) {
	trace := GetTrace()
	require.NotContains(t, trace, "runtime.")
}
