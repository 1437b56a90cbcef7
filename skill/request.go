package skill

import (
	"github.com/google/uuid"
)

// Session carries dialog state across turns. A session is owned by one
// request at a time; handlers may read and write attributes freely.
type Session struct {
	ID  string
	New bool

	Attributes map[string]string
}

// NewSession mints a fresh session.
func NewSession() *Session {
	return &Session{
		ID:         uuid.NewString(),
		New:        true,
		Attributes: map[string]string{},
	}
}

// GetAttribute returns the attribute and whether it was set.
func (s *Session) GetAttribute(name string) (string, bool) {
	v, ok := s.Attributes[name]
	return v, ok
}

func (s *Session) SetAttribute(name, value string) {
	if s.Attributes == nil {
		s.Attributes = map[string]string{}
	}
	s.Attributes[name] = value
}

func (s *Session) DeleteAttribute(name string) {
	delete(s.Attributes, name)
}

// Request is a single intent invocation as the dispatcher sees it.
// Attributes are multi-valued: a single slot may be filled more than once
// by the voice platform.
type Request struct {
	ID     string
	Intent string
	Locale string

	Attributes map[string][]string

	Session *Session
}

// RequestOption customizes NewRequest.
type RequestOption func(*Request)

func WithLocale(locale string) RequestOption {
	return func(r *Request) { r.Locale = locale }
}

func WithAttr(name string, values ...string) RequestOption {
	return func(r *Request) {
		if r.Attributes == nil {
			r.Attributes = map[string][]string{}
		}
		r.Attributes[name] = values
	}
}

func WithSession(s *Session) RequestOption {
	return func(r *Request) { r.Session = s }
}

// NewRequest builds a request with a minted ID and, unless supplied via
// WithSession, a fresh session.
func NewRequest(intent string, opts ...RequestOption) *Request {
	r := &Request{
		ID:         uuid.NewString(),
		Intent:     intent,
		Attributes: map[string][]string{},
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.Session == nil {
		r.Session = NewSession()
	}
	return r
}

// Attr returns the first value of the named attribute or "".
func (r *Request) Attr(name string) string {
	if vs := r.Attributes[name]; len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// AttrAll returns all values of the named attribute.
func (r *Request) AttrAll(name string) []string {
	return r.Attributes[name]
}
