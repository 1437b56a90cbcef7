package responses

import (
	"encoding/json"
	"testing"
)

func TestErrorResponseInit(t *testing.T) {
	t.Parallel()

	er := NewErrorResponse(999, "internal error")
	if er.Code != 999 {
		t.Fatalf("Code = %d, want 999", er.Code)
	}
	if er.Text != "internal error" {
		t.Fatalf("Text = %q", er.Text)
	}
}

func TestErrorCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		code ErrorCode
		want int
	}{
		{name: "invalid token", code: InvalidToken, want: 2},
		{name: "bad request", code: BadRequest, want: 3},
		{name: "internal error", code: InternalError, want: 999},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if int(tt.code) != tt.want {
				t.Fatalf("%s = %d, want %d", tt.name, tt.code, tt.want)
			}
		})
	}
}

func TestErrorResponseWire(t *testing.T) {
	t.Parallel()

	b, err := json.Marshal(NewErrorResponse(InvalidToken, "invalid token"))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(b), `{"code":2,"text":"invalid token"}`; got != want {
		t.Fatalf("wire = %s, want %s", got, want)
	}
}

func TestErrorResponseIsError(t *testing.T) {
	t.Parallel()

	var err error = NewErrorResponse(InternalError, "unhandled exception")
	if err.Error() != "error response 999: unhandled exception" {
		t.Fatalf("Error() = %q", err.Error())
	}
}
