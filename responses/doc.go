// Package responses holds the value objects a skill hands back to the
// dispatcher: regular responses, error responses, and client tasks.
//
// # Client tasks
//
// A client task is an instruction delivered alongside a response telling
// the end-user device to invoke a named intent later, either at an
// absolute point in time or relative to an anchor event (e.g. speech end).
// Tasks are built through Invoke and refined with the copy-on-write At and
// After methods:
//
//	task, err := responses.Invoke("WEATHER__INTENT", "", responses.P("location", "Bonn"))
//	if err != nil { ... }
//	task, err = task.After(responses.SpeechEnd, 10*time.Second)
//
// # Serialization
//
// All types marshal to the camelCase wire shape the client expects
// (invokeData, executionTime, executeAfter, executeAt, skillId).
// Durations are ISO-8601 (PT10S), timestamps are RFC 3339 with an explicit
// UTC/offset designator.
//
// Everything in this package is a transient value object: created per
// response, serialized, discarded. No identity beyond structural equality,
// no shared mutable state, safe for concurrent handler use.
package responses
