// Package logx configures the SDK's structured logging.
//
// It is a small wrapper (logx.Logger) on top of zerolog to keep:
//   - Console output readable (short timestamp + short caller)
//   - Optional file output JSON-structured
//   - Levels swappable at runtime via Service.Apply (config hot reload)
//   - A rate-limited variant (Throttled) for noisy call sites
package logx
