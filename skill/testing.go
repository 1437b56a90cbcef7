package skill

import "context"

// TestIntent dispatches a synthetic request against the skill: no
// transport, no serialization. Meant for handler tests; combine with
// WithAttr/WithSession to shape the request.
func TestIntent(sk *Skill, intent string, opts ...RequestOption) Result {
	return sk.Dispatch(context.Background(), NewRequest(intent, opts...))
}
