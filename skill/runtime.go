package skill

import (
	"context"
	"sync"

	"github.com/stranac/voice-skill-sdk/config"
	"github.com/stranac/voice-skill-sdk/pkg/logx"
)

// Runtime ties a Skill to its config file: it loads the config, builds the
// log service, and (once started) hot-reloads logging and dialog settings
// when the file changes. Handler registration stays with the caller.
type Runtime struct {
	manager *config.Manager
	logs    *logx.Service
	log     logx.Logger
	skill   *Skill

	cancel  context.CancelFunc
	updates chan *config.Config
	wg      sync.WaitGroup
}

// NewRuntime loads the config at path and wires skill + logging.
func NewRuntime(path string) (*Runtime, error) {
	manager := config.NewManager(path)
	cfg, err := manager.Load()
	if err != nil {
		return nil, err
	}

	logs, log := logx.New(logConfig(cfg))
	manager.SetLogger(log.With(logx.String("component", "config")))

	sk, err := New(cfg, log)
	if err != nil {
		logs.Close()
		return nil, err
	}

	return &Runtime{
		manager: manager,
		logs:    logs,
		log:     log,
		skill:   sk,
	}, nil
}

func (r *Runtime) Skill() *Skill { return r.skill }

func (r *Runtime) Logger() logx.Logger { return r.log }

func (r *Runtime) Config() *config.Config { return r.manager.Get() }

// Start begins watching the config file. Committed reloads are applied to
// the log service and the skill's dialog/locale knobs.
func (r *Runtime) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	updates := r.manager.Subscribe(1)
	r.updates = updates

	r.wg.Add(2)
	go func() {
		defer r.wg.Done()
		_ = r.manager.Watch(ctx)
	}()
	go func() {
		defer r.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case cfg, ok := <-updates:
				if !ok {
					return
				}
				r.logs.Apply(logConfig(cfg))
				r.skill.applyConfig(cfg)
				r.log.Info("runtime settings applied", logx.String("level", cfg.Logging.Level))
			}
		}
	}()
}

// Stop ends the watch loop and closes the log sinks.
func (r *Runtime) Stop() {
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.wg.Wait()
	if r.updates != nil {
		r.manager.Unsubscribe(r.updates)
		r.updates = nil
	}
	r.logs.Close()
}

func logConfig(cfg *config.Config) logx.Config {
	lc := logx.Config{
		Level: cfg.Logging.Level,
		File: logx.FileConfig{
			Enabled: cfg.Logging.File.Enabled,
			Path:    cfg.Logging.File.Path,
		},
	}
	if cfg.Logging.Console != nil {
		lc.Console = *cfg.Logging.Console
	}
	return lc
}
