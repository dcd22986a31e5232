package logging

import (
	"runtime"
	"runtime/debug"

	"github.com/rs/zerolog"
)

// RecoverPanic logs a panic with its stack trace and re-panics.
// Use it directly in a defer so recover sees the panic.
func RecoverPanic(logger zerolog.Logger) {
	r := recover()
	if r == nil {
		return
	}

	logger.Error().
		Interface("panic", r).
		Str("go_version", runtime.Version()).
		Str("os", runtime.GOOS).
		Str("arch", runtime.GOARCH).
		Bytes("stack", debug.Stack()).
		Msg("PANIC")

	panic(r)
}
