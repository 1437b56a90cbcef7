package responses

import (
	"fmt"
	"strings"
	"time"

	"github.com/sosodev/duration"
)

// ReferenceType names the client-side event a relative execution time is
// measured from.
type ReferenceType string

const (
	// SpeechEnd fires when vocalization of the current response finishes.
	SpeechEnd ReferenceType = "SPEECH_END"
	// ThisResponse fires as soon as the client receives the current response.
	ThisResponse ReferenceType = "THIS_RESPONSE"
	// MediaContentEnd fires when media attached to the current response
	// (e.g. an audio stream) finishes playing.
	MediaContentEnd ReferenceType = "MEDIA_CONTENT_END"
)

func (r ReferenceType) known() bool {
	switch r {
	case SpeechEnd, ThisResponse, MediaContentEnd:
		return true
	}
	return false
}

// ExecuteAfter describes a relative execution time: an anchor event plus an
// optional offset. Offset is an ISO-8601 duration (e.g. "PT10S"); empty
// means zero.
type ExecuteAfter struct {
	Reference ReferenceType `json:"reference"`
	Offset    string        `json:"offset,omitempty"`
}

// ExecutionTime tells the client when to run a task. Exactly one of the two
// fields is set: ExecuteAfter for relative times, ExecuteAt for an absolute
// RFC 3339 timestamp (e.g. "2020-11-25T12:00:00Z"). The wire shape forces
// two optional fields; At and After are the only constructors that keep the
// union well-formed, and Validate rejects the dual-set and empty states.
type ExecutionTime struct {
	ExecuteAfter *ExecuteAfter `json:"executeAfter,omitempty"`
	ExecuteAt    string        `json:"executeAt,omitempty"`
}

// At returns an absolute execution time. Sub-second precision is kept when
// present.
func At(t time.Time) ExecutionTime {
	return ExecutionTime{ExecuteAt: t.Format(time.RFC3339Nano)}
}

// After returns a relative execution time. A zero offset means "right at
// the reference event" and is left off the wire.
func After(ref ReferenceType, offset time.Duration) (ExecutionTime, error) {
	if !ref.known() {
		return ExecutionTime{}, &ValidationError{
			Field:  "executeAfter.reference",
			Reason: fmt.Sprintf("unknown reference type %q", string(ref)),
		}
	}
	if offset < 0 {
		return ExecutionTime{}, &ValidationError{
			Field:  "executeAfter.offset",
			Reason: "offset must be >= 0",
		}
	}
	after := &ExecuteAfter{Reference: ref}
	if offset > 0 {
		after.Offset = duration.FromTimeDuration(offset).String()
	}
	return ExecutionTime{ExecuteAfter: after}, nil
}

// Validate checks the union and field formats. Literal construction can
// produce states the client would misinterpret; the dispatcher calls this
// before letting a task out.
func (e ExecutionTime) Validate() error {
	switch {
	case e.ExecuteAfter != nil && e.ExecuteAt != "":
		return &ValidationError{Field: "executionTime", Reason: "executeAfter and executeAt are mutually exclusive"}
	case e.ExecuteAfter == nil && e.ExecuteAt == "":
		return &ValidationError{Field: "executionTime", Reason: "one of executeAfter or executeAt is required"}
	}
	if e.ExecuteAt != "" {
		ts, err := time.Parse(time.RFC3339, e.ExecuteAt)
		if err != nil {
			return &ValidationError{
				Field:  "executionTime.executeAt",
				Reason: fmt.Sprintf("invalid timestamp %q", e.ExecuteAt),
			}
		}
		if ts.IsZero() {
			return &ValidationError{
				Field:  "executionTime.executeAt",
				Reason: "timestamp must not be the zero time",
			}
		}
		return nil
	}
	if !e.ExecuteAfter.Reference.known() {
		return &ValidationError{
			Field:  "executionTime.executeAfter.reference",
			Reason: fmt.Sprintf("unknown reference type %q", string(e.ExecuteAfter.Reference)),
		}
	}
	if raw := e.ExecuteAfter.Offset; raw != "" {
		d, err := duration.Parse(raw)
		if err != nil {
			return &ValidationError{
				Field:  "executionTime.executeAfter.offset",
				Reason: fmt.Sprintf("invalid ISO-8601 duration %q", raw),
			}
		}
		if d.ToTimeDuration() < 0 {
			return &ValidationError{
				Field:  "executionTime.executeAfter.offset",
				Reason: "offset must be >= 0",
			}
		}
	}
	return nil
}

// OffsetDuration decodes ExecuteAfter.Offset back into a time.Duration.
// Absent offset decodes to zero.
func (e ExecutionTime) OffsetDuration() (time.Duration, error) {
	if e.ExecuteAfter == nil || e.ExecuteAfter.Offset == "" {
		return 0, nil
	}
	d, err := duration.Parse(e.ExecuteAfter.Offset)
	if err != nil {
		return 0, fmt.Errorf("executionTime.executeAfter.offset: %w", err)
	}
	return d.ToTimeDuration(), nil
}

// InvokeData names the intent the client should invoke, the owning skill,
// and the invocation parameters. Each parameter slot carries a list of
// values because a single slot may be filled more than once.
type InvokeData struct {
	Intent     string              `json:"intent"`
	SkillID    string              `json:"skillId,omitempty"`
	Parameters map[string][]string `json:"parameters"`
}

// Validate rejects invoke data the client cannot route.
func (d InvokeData) Validate() error {
	if strings.TrimSpace(d.Intent) == "" {
		return &ValidationError{Field: "invokeData.intent", Reason: "intent is required"}
	}
	return nil
}

// Param is a single invocation parameter.
type Param struct {
	Name   string
	Values []string
}

// P builds a Param. A single value ends up as a one-element list.
func P(name string, values ...string) Param {
	return Param{Name: name, Values: values}
}

// NormalizeParameters converts a loosely typed attribute map (as decoded
// from JSON) into the wire parameter shape: a bare string becomes a
// one-element list, a list of strings is kept unchanged. Anything else is
// a validation error.
func NormalizeParameters(in map[string]any) (map[string][]string, error) {
	out := make(map[string][]string, len(in))
	for name, value := range in {
		switch v := value.(type) {
		case string:
			out[name] = []string{v}
		case []string:
			out[name] = v
		case []any:
			values := make([]string, 0, len(v))
			for _, item := range v {
				s, ok := item.(string)
				if !ok {
					return nil, &ValidationError{
						Field:  "invokeData.parameters." + name,
						Reason: fmt.Sprintf("unsupported element type %T", item),
					}
				}
				values = append(values, s)
			}
			out[name] = values
		default:
			return nil, &ValidationError{
				Field:  "invokeData.parameters." + name,
				Reason: fmt.Sprintf("unsupported value type %T", value),
			}
		}
	}
	return out, nil
}

// DelayedClientTask is a task the client executes upon receiving the
// response that carries it. The standard use case is invoking an intent
// right after speech end.
type DelayedClientTask struct {
	InvokeData    InvokeData    `json:"invokeData"`
	ExecutionTime ExecutionTime `json:"executionTime"`
}

// ClientTask is the name skill code usually uses.
type ClientTask = DelayedClientTask

// Invoke creates a task that invokes an intent. Execution defaults to
// "right after speech end"; refine with At or After. skillID may be empty
// when the intent belongs to the current skill.
func Invoke(intent string, skillID string, params ...Param) (DelayedClientTask, error) {
	parameters := make(map[string][]string, len(params))
	for _, p := range params {
		values := p.Values
		if values == nil {
			// Keep the wire contract: every slot is an array of strings,
			// never null.
			values = []string{}
		}
		parameters[p.Name] = values
	}
	task := DelayedClientTask{
		InvokeData: InvokeData{
			Intent:     intent,
			SkillID:    skillID,
			Parameters: parameters,
		},
	}
	if err := task.InvokeData.Validate(); err != nil {
		return DelayedClientTask{}, err
	}
	task.ExecutionTime, _ = After(SpeechEnd, 0)
	return task, nil
}

// At returns a copy of the task scheduled at an absolute point in time.
// The receiver is left untouched.
func (t DelayedClientTask) At(at time.Time) DelayedClientTask {
	t.ExecutionTime = At(at)
	return t
}

// After returns a copy of the task scheduled relative to the given anchor
// event. The receiver is left untouched.
func (t DelayedClientTask) After(ref ReferenceType, offset time.Duration) (DelayedClientTask, error) {
	et, err := After(ref, offset)
	if err != nil {
		return DelayedClientTask{}, err
	}
	t.ExecutionTime = et
	return t, nil
}

// Validate checks the whole aggregate before it is attached to a response.
func (t DelayedClientTask) Validate() error {
	if err := t.InvokeData.Validate(); err != nil {
		return err
	}
	return t.ExecutionTime.Validate()
}
