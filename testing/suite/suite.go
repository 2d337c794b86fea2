package suite

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-cli/transport/console"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	Console *console.Console
	Output  *bytes.Buffer
}

// New returns a Suite whose console reads the given lines in order and writes to Output.
func New(t *testing.T, lines ...string) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	input := strings.Join(lines, "\n")
	if len(lines) > 0 {
		input += "\n"
	}

	output := &bytes.Buffer{}

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Console: console.New(strings.NewReader(input), output, console.Options{}),
		Output:  output,
	}
}
