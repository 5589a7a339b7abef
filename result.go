package steptree

import "fmt"

// Status is a bare success or failure marker, used as a step output when the
// step has no meaningful value or reason to attach.
type Status string

const (
	// StatusOK marks a step that succeeded with no particular value.
	StatusOK Status = "ok"

	// StatusError marks a step that failed with no particular reason. It
	// normalizes to a failure with the reason "unknown".
	StatusError Status = "error"
)

// Ok tags a step output as a success carrying a value.
type Ok struct{ Value any }

// Err tags a step output as a failure carrying a reason.
type Err struct{ Reason any }

//
//
//

// Result is the canonical form of a step output: either a success carrying a
// value, or a failure carrying a reason. The zero value is a success carrying
// nil.
type Result struct {
	errored bool
	payload any
}

// Success returns a successful result carrying the given value.
func Success(value any) Result { return Result{payload: value} }

// Failure returns a failed result carrying the given reason.
func Failure(reason any) Result { return Result{errored: true, payload: reason} }

// OK reports whether the result is a success.
func (r Result) OK() bool { return !r.errored }

// Errored reports whether the result is a failure.
func (r Result) Errored() bool { return r.errored }

// Value returns the success value, or nil if the result is a failure.
func (r Result) Value() any {
	if r.errored {
		return nil
	}
	return r.payload
}

// Reason returns the failure reason, or nil if the result is a success.
func (r Result) Reason() any {
	if !r.errored {
		return nil
	}
	return r.payload
}

// String returns an operator-readable representation of the result.
func (r Result) String() string {
	if r.errored {
		return fmt.Sprintf("error: %v", r.payload)
	}
	return fmt.Sprintf("ok: %v", r.payload)
}

//
//
//

// Normalize maps a raw step output to its canonical result. It is total: any
// value whatsoever produces a well-defined result, and it never panics.
//
// The output conventions, checked in order:
//
//   - an [Err] tag, or any non-nil error, is a failure carrying its reason
//   - the bare [StatusError] marker is a failure with reason "unknown"
//   - false is a failure carrying false
//   - an [Ok] tag is a success carrying its value
//   - the bare [StatusOK] marker is a success carrying the marker itself
//   - true is a success carrying true
//   - every other value is a success carrying that value
func Normalize(output any) Result {
	switch v := output.(type) {
	case Err:
		return Failure(v.Reason)
	case error:
		return Failure(v)
	case Status:
		if v == StatusError {
			return Failure("unknown")
		}
		return Success(v)
	case bool:
		if !v {
			return Failure(false)
		}
		return Success(true)
	case Ok:
		return Success(v.Value)
	default:
		return Success(output)
	}
}
