package logger

import (
	"log/slog"
	"os"
)

func ExampleNewSlog() {
	log := NewSlog(WithTextHandler(os.Stdout, slog.LevelDebug))
	log.Info("foobar")
	// prints a slog text line for "foobar"; timestamps make the output
	// non-deterministic, so this example isn't checked against Output.
}
