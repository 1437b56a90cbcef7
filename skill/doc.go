// Package skill routes intent invocations to registered handlers and
// carries the per-turn request/session state. It contains no transport:
// how requests reach Dispatch (and how responses leave it) is the hosting
// service's concern. TestIntent gives handler tests the same path without
// any transport at all.
package skill
