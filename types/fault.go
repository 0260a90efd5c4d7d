package types

import "fmt"

// Fault is a tagged failure a test body can raise to terminate itself with a
// caller-chosen classification label. Raising any other panic value is also
// captured, but classified under the fallback labels instead.
type Fault struct {
	Kind    string
	Message string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s(%s)", f.Kind, f.Message)
}

// Abort terminates the calling test body with a Fault carrying the given
// classification and message. It never returns.
func Abort(kind, format string, args ...any) {
	panic(&Fault{Kind: kind, Message: fmt.Sprintf(format, args...)})
}

// Fallback classification labels for panic values that are not Faults.
const (
	FailureKindError = "error" // panic value implements error
	FailureKindPanic = "panic" // any other panic value
)

// captureFailure converts a recovered panic value into a CapturedFailure.
func captureFailure(v any) CapturedFailure {
	switch f := v.(type) {
	case *Fault:
		return CapturedFailure{Kind: f.Kind, Message: f.Message}
	case error:
		return CapturedFailure{Kind: FailureKindError, Message: f.Error()}
	default:
		return CapturedFailure{Kind: FailureKindPanic, Message: fmt.Sprint(v)}
	}
}
