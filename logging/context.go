package logging

import (
	"context"

	"go.viam.com/utils"
)

type debugKeyType struct{}

// EnableDebugMode returns a context under which C-prefixed debug calls always log, tagged with key.
// An empty key is replaced by a random one.
func EnableDebugMode(ctx context.Context, key string) context.Context {
	if key == "" {
		key = utils.RandomAlphaString(6)
	}
	return context.WithValue(ctx, debugKeyType{}, key)
}

// DebugKey returns the key ctx was put in debug mode with, or "".
func DebugKey(ctx context.Context) string {
	key, _ := ctx.Value(debugKeyType{}).(string)
	return key
}

// IsDebugMode reports whether ctx carries debug mode.
func IsDebugMode(ctx context.Context) bool {
	return DebugKey(ctx) != ""
}
