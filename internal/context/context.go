// Package context resolves who is running a foundry command, so activity log
// entries can be attributed.
package context

import (
	gocontext "context"
	"os"
	"strings"
)

// EnvActor names the actor explicitly, e.g. in CI.
const EnvActor = "FOUNDRY_ACTOR"

// DefaultActor is used when nothing else identifies the caller.
const DefaultActor = "cli"

// DetectActor resolves the actor from FOUNDRY_ACTOR, then USER.
func DetectActor(getenv func(string) string) string {
	for _, key := range []string{EnvActor, "USER"} {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
	}
	return DefaultActor
}

// CommandContext returns a background context carrying the detected actor.
func CommandContext() gocontext.Context {
	return WithActorID(gocontext.Background(), DetectActor(os.Getenv))
}
