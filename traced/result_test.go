package traced_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/next-trace/scg-trace/traced"
)

func TestResult_Predicates(t *testing.T) {
	t.Parallel()

	ok := traced.Ok[int, string](1)
	assert.True(t, ok.IsOk())
	assert.False(t, ok.IsErr())

	bad := traced.Fail[int]("Bad")
	assert.False(t, bad.IsOk())
	assert.True(t, bad.IsErr())

	var zero traced.Result[int, string]
	assert.True(t, zero.IsOk(), "zero Result is a success")

	assert.True(t, traced.Err[int, string](nil).IsOk())
}

func TestFail_RecordsCaller(t *testing.T) {
	t.Parallel()

	r := traced.Fail[int]("Bad")
	want := here() - 1

	err := r.UnwrapErr()
	require.Equal(t, 1, err.Len())
	assert.Equal(t, want, err.Trace()[0].Line())
}

func TestMap(t *testing.T) {
	t.Parallel()

	double := func(n int) string { return strconv.Itoa(n * 2) }

	got := traced.Map(traced.Ok[int, string](5), double)
	assert.Equal(t, "10", got.Unwrap())

	failed := traced.Fail[int]("Bad")
	before := failed.UnwrapErr().Trace()

	mapped := traced.Map(failed, double)
	require.True(t, mapped.IsErr())
	assert.Same(t, failed.UnwrapErr(), mapped.UnwrapErr(), "failure must pass through unchanged")
	assert.Equal(t, before, mapped.UnwrapErr().Trace())

	// Forwarding either side later does not leak into the other.
	_, _ = failed.Try()
	_, fromMapped := mapped.Try()
	assert.Equal(t, len(before), mapped.UnwrapErr().Len())
	assert.Equal(t, len(before), failed.UnwrapErr().Len())
	assert.Equal(t, len(before)+1, fromMapped.Len())
}

func TestMapErr_TraceUntouched(t *testing.T) {
	t.Parallel()

	failed := traced.Fail[int]("Bad")
	before := failed.UnwrapErr().Trace()

	mapped := traced.MapErr(failed, func(s string) error { return errors.New("wrapped: " + s) })
	err := mapped.UnwrapErr()

	assert.Equal(t, "wrapped: Bad", err.Error())

	if diff := cmp.Diff(lineNumbers(before), lineNumbers(err.Trace())); diff != "" {
		t.Fatalf("MapErr changed the trace (-before +after):\n%s", diff)
	}

	assert.Equal(t, before, err.Trace())

	kept := traced.MapErr(traced.Ok[int, string](3), func(s string) int { return len(s) })
	assert.Equal(t, 3, kept.Unwrap())
}

func TestStop_FreezesTrace(t *testing.T) {
	t.Parallel()

	_, fwd := traced.Fail[int]("Bad").Try()
	r := traced.Err[int](fwd)

	before := r.UnwrapErr().Trace()

	v, err := r.Stop()
	assert.Zero(t, v)
	require.NotNil(t, err)
	assert.Equal(t, before, err.Trace())

	// Forwarding the source after Stop must not reach the frozen value.
	_, _ = r.Try()
	_, _, _ = traced.Propagate[string](r)
	_, _, _ = traced.PropagateAs[string](r, func(s string) error { return errors.New(s) })
	assert.Equal(t, len(before), err.Len())
	assert.Equal(t, before, err.Trace())

	// Plain Go propagation of the frozen pair records nothing.
	passUp := func() (int, *traced.Error[string]) { return v, err }
	_, again := passUp()
	assert.Equal(t, len(before), again.Len())

	okV, okErr := traced.Ok[int, string](9).Stop()
	assert.Equal(t, 9, okV)
	assert.Nil(t, okErr)
}

func TestFromPair_RoundTrip(t *testing.T) {
	t.Parallel()

	_, fwd := traced.Fail[int]("Bad").Try()
	orig := traced.Err[int](fwd)
	before := orig.UnwrapErr().Trace()

	v, frozen := orig.Stop()
	back := traced.FromPair(v, frozen)
	require.True(t, back.IsErr())
	assert.Equal(t, "Bad", back.UnwrapErr().Inner())
	assert.Equal(t, before, back.UnwrapErr().Trace())

	ok := traced.FromPair[int, string](4, nil)
	assert.Equal(t, 4, ok.Unwrap())

	// Once lifted back, forwarding is recorded again, on a new value.
	_, err := back.Try()
	assert.Equal(t, len(before)+1, err.Len())
	assert.Equal(t, len(before), frozen.Len())
}

func TestDiscardTrace(t *testing.T) {
	t.Parallel()

	v, inner, ok := traced.Ok[int, string](5).DiscardTrace()
	assert.True(t, ok)
	assert.Equal(t, 5, v)
	assert.Empty(t, inner)

	v, inner, ok = traced.Fail[int]("Bad").DiscardTrace()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, "Bad", inner)
}

func TestUnwrap_PanicsOnFailure(t *testing.T) {
	t.Parallel()

	r := traced.Fail[int]("Bad")

	assert.PanicsWithError(t, "called Unwrap on a failure: Bad", func() { r.Unwrap() })
	assert.PanicsWithError(t, "loading config: Bad", func() { r.Expect("loading config") })

	defer func() {
		rec := recover()
		require.NotNil(t, rec)

		var pe *traced.PanicError
		require.ErrorAs(t, rec.(error), &pe)

		var te *traced.Error[string]
		require.ErrorAs(t, pe, &te)
		assert.Same(t, r.UnwrapErr(), te)
	}()

	r.Unwrap()
}

func TestUnwrapErr_PanicsOnSuccess(t *testing.T) {
	t.Parallel()

	r := traced.Ok[int, string](5)
	assert.PanicsWithError(t, "called UnwrapErr on a success: 5", func() { r.UnwrapErr() })
	assert.NotPanics(t, func() { traced.Fail[int]("Bad").UnwrapErr() })
}

func TestUnwrap_NonPanickingVariants(t *testing.T) {
	t.Parallel()

	ok := traced.Ok[int, string](5)
	bad := traced.Fail[int]("Bad")

	assert.Equal(t, 5, ok.Unwrap())
	assert.Equal(t, 5, ok.Expect("never"))
	assert.Equal(t, 5, ok.UnwrapOr(1))
	assert.Equal(t, 1, bad.UnwrapOr(1))
	assert.Equal(t, 5, ok.UnwrapOrDefault())
	assert.Equal(t, 0, bad.UnwrapOrDefault())

	fromErr := func(e *traced.Error[string]) int { return len(e.Inner()) }
	assert.Equal(t, 5, ok.UnwrapOrElse(fromErr))
	assert.Equal(t, 3, bad.UnwrapOrElse(fromErr))

	assert.Equal(t, 5, ok.UnwrapUnchecked())
	assert.Equal(t, 0, bad.UnwrapUnchecked())
	assert.Nil(t, ok.UnwrapErrUnchecked())
	assert.Equal(t, "Bad", bad.UnwrapErrUnchecked().Inner())
}
