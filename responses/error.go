package responses

import "fmt"

// ValidationError reports a field that failed construction-time validation.
// Construction is pure and synchronous; there is nothing to retry, the
// error propagates to the handler caller.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// ErrorCode identifies a failure condition of an intent invocation. Codes
// are part of the wire contract: each named condition maps to a fixed
// number that never changes meaning.
type ErrorCode int

const (
	// InvalidToken rejects the caller's authorization token.
	InvalidToken ErrorCode = 2
	// BadRequest covers malformed invocations, including unknown intents.
	BadRequest ErrorCode = 3
	// InternalError is the catch-all for unhandled handler failures.
	InternalError ErrorCode = 999
)

// ErrorResponse is the structured error a skill returns instead of a
// regular response. It satisfies the error interface so handlers can
// simply return one; the dispatcher unwraps it back into a value.
type ErrorResponse struct {
	Code ErrorCode `json:"code"`
	Text string    `json:"text"`
}

// NewErrorResponse pairs a code with a human-readable text.
func NewErrorResponse(code ErrorCode, text string) ErrorResponse {
	return ErrorResponse{Code: code, Text: text}
}

func (e ErrorResponse) Error() string {
	return fmt.Sprintf("error response %d: %s", e.Code, e.Text)
}
