package responses

import "strconv"

// ResponseType selects how the client treats the response text.
type ResponseType string

const (
	// Tell speaks the text and ends the dialog turn.
	Tell ResponseType = "TELL"
	// Ask speaks the text and keeps the microphone open for an answer.
	Ask ResponseType = "ASK"
	// AskFreetext keeps the microphone open and delivers the raw transcript.
	AskFreetext ResponseType = "ASK_FREETEXT"
)

// Response is the regular (non-error) result of an intent invocation.
// Responses are value objects: the With* methods return modified copies.
type Response struct {
	Type ResponseType `json:"type"`
	Text string       `json:"text"`

	// Task, when set, is executed by the client after this response is
	// delivered (see DelayedClientTask).
	Task *DelayedClientTask `json:"task,omitempty"`
}

// TellText builds a response that ends the current dialog turn.
func TellText(text string) Response {
	return Response{Type: Tell, Text: text}
}

// AskText builds a response that waits for the user's answer.
func AskText(text string) Response {
	return Response{Type: Ask, Text: text}
}

// WithTask returns a copy of the response carrying the given client task.
func (r Response) WithTask(task DelayedClientTask) Response {
	r.Task = &task
	return r
}

// SessionStore is the slice of the dialog session Reprompt needs. The
// skill package's Session satisfies it.
type SessionStore interface {
	GetAttribute(name string) (string, bool)
	SetAttribute(name, value string)
	DeleteAttribute(name string)
}

// RepromptOptions bounds a reprompt loop.
type RepromptOptions struct {
	// StopText is spoken when MaxRepeats is exhausted.
	StopText string
	// MaxRepeats bounds how often the question is re-asked. 0 means
	// unlimited.
	MaxRepeats int
	// Entity scopes the repeat counter to a single entity, so independent
	// questions within one intent count separately.
	Entity string
}

// Reprompt asks the user again, up to MaxRepeats times, then gives up with
// a TELL carrying StopText. The repeat counter is kept in the session
// under "<intent>[_<entity>]_reprompt_count"; a counter that does not
// parse as a number restarts the loop.
func Reprompt(session SessionStore, intent, text string, opts RepromptOptions) Response {
	key := intent
	if opts.Entity != "" {
		key += "_" + opts.Entity
	}
	key += "_reprompt_count"

	count := 0
	if raw, ok := session.GetAttribute(key); ok {
		if n, err := strconv.Atoi(raw); err == nil {
			count = n
		}
	}

	if opts.MaxRepeats > 0 && count >= opts.MaxRepeats {
		session.DeleteAttribute(key)
		return TellText(opts.StopText)
	}

	session.SetAttribute(key, strconv.Itoa(count+1))
	return AskText(text)
}
