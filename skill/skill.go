package skill

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/stranac/voice-skill-sdk/config"
	"github.com/stranac/voice-skill-sdk/pkg/logx"
	"github.com/stranac/voice-skill-sdk/responses"
)

var (
	ErrNilConfig        = errors.New("nil config")
	ErrEmptyIntent      = errors.New("empty intent name")
	ErrNilHandler       = errors.New("nil handler")
	ErrIntentRegistered = errors.New("intent already registered")
)

// Handler processes one intent invocation. Returning a
// responses.ErrorResponse as the error makes the dispatcher pass it
// through verbatim; any other error becomes code 999 "internal error".
type Handler func(ctx context.Context, req *Request) (responses.Response, error)

// Result is the outcome of a dispatch: exactly one of Response and Err is
// set, mirroring the one-of shape the wire format uses elsewhere.
type Result struct {
	Response *responses.Response
	Err      *responses.ErrorResponse
}

// OK reports whether the dispatch produced a regular response.
func (r Result) OK() bool { return r.Err == nil }

// Skill routes incoming intent invocations to registered handlers.
// Registration usually happens once at startup; Dispatch is safe for
// concurrent use.
type Skill struct {
	log  logx.Logger
	warn *logx.Throttled

	mu           sync.RWMutex
	id           string
	version      string
	locales      map[string]struct{}
	maxReprompts int
	handlers     map[string]Handler
}

// New builds a skill from a validated config.
func New(cfg *config.Config, log logx.Logger) (*Skill, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Skill{
		log:      log.With(logx.String("skill", cfg.Skill.ID)),
		handlers: map[string]Handler{},
	}
	s.warn = logx.NewThrottled(s.log, cfg.Logging.WarnRatePerSec)
	s.applyConfig(cfg)
	return s, nil
}

// applyConfig installs the mutable knobs. Also called on config hot
// reload; the handler table is not touched.
func (s *Skill) applyConfig(cfg *config.Config) {
	locales := make(map[string]struct{}, len(cfg.Skill.Locales))
	for _, loc := range cfg.Skill.Locales {
		locales[strings.ToLower(loc)] = struct{}{}
	}

	s.mu.Lock()
	s.id = cfg.Skill.ID
	s.version = cfg.Skill.Version
	s.locales = locales
	s.maxReprompts = cfg.Dialog.MaxReprompts
	s.mu.Unlock()
}

// ID returns the configured skill id.
func (s *Skill) ID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.id
}

// Version returns the configured skill version.
func (s *Skill) Version() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// OnIntent registers a handler for the given intent name.
func (s *Skill) OnIntent(name string, h Handler) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyIntent
	}
	if h == nil {
		return fmt.Errorf("intent %q: %w", name, ErrNilHandler)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.handlers[name]; dup {
		return fmt.Errorf("intent %q: %w", name, ErrIntentRegistered)
	}
	s.handlers[name] = h
	return nil
}

// Intents returns the registered intent names.
func (s *Skill) Intents() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.handlers))
	for name := range s.handlers {
		names = append(names, name)
	}
	return names
}

// Dispatch routes the request to the registered handler. Failures never
// escape as plain errors: they come back as an ErrorResponse the hosting
// transport can serialize as-is.
func (s *Skill) Dispatch(ctx context.Context, req *Request) Result {
	if req == nil || strings.TrimSpace(req.Intent) == "" {
		return errResult(responses.BadRequest, "missing intent")
	}

	s.mu.RLock()
	h := s.handlers[req.Intent]
	localeOK := s.localeSupported(req.Locale)
	s.mu.RUnlock()

	if !localeOK {
		s.warn.Warn("unsupported locale", logx.String("intent", req.Intent), logx.String("locale", req.Locale))
		return errResult(responses.BadRequest, fmt.Sprintf("unsupported locale %q", req.Locale))
	}
	if h == nil {
		s.warn.Warn("unknown intent", logx.String("intent", req.Intent))
		return errResult(responses.BadRequest, fmt.Sprintf("unknown intent %q", req.Intent))
	}

	resp, err := h(ctx, req)
	if err != nil {
		var er responses.ErrorResponse
		if errors.As(err, &er) {
			return Result{Err: &er}
		}
		s.log.Error("handler failed", logx.String("intent", req.Intent), logx.Err(err))
		return errResult(responses.InternalError, "internal error")
	}

	if resp.Type == "" {
		resp.Type = responses.Tell
	}
	if resp.Task != nil {
		if verr := resp.Task.Validate(); verr != nil {
			s.warn.Warn("invalid client task", logx.String("intent", req.Intent), logx.Err(verr))
			return errResult(responses.InternalError, "internal error")
		}
	}
	return Result{Response: &resp}
}

// localeSupported must be called with s.mu held.
func (s *Skill) localeSupported(locale string) bool {
	if len(s.locales) == 0 {
		return true
	}
	_, ok := s.locales[strings.ToLower(strings.TrimSpace(locale))]
	return ok
}

// Reprompt builds a reprompt response bounded by the configured
// dialog.max_reprompts.
func (s *Skill) Reprompt(req *Request, text, stopText string) responses.Response {
	s.mu.RLock()
	maxRepeats := s.maxReprompts
	s.mu.RUnlock()
	return responses.Reprompt(req.Session, req.Intent, text, responses.RepromptOptions{
		StopText:   stopText,
		MaxRepeats: maxRepeats,
	})
}

// Task builds a client task that invokes one of this skill's own intents.
func (s *Skill) Task(intent string, params ...responses.Param) (responses.DelayedClientTask, error) {
	return responses.Invoke(intent, s.ID(), params...)
}

func errResult(code responses.ErrorCode, text string) Result {
	er := responses.NewErrorResponse(code, text)
	return Result{Err: &er}
}
