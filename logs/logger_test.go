package logs

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestHandler(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		logger.Info("hidden", "program", "hello.bf")
		logger.Warn("shown", "program", "hello.bf")
	})
	out := buf.String()
	if strings.Contains(out, "msg=hidden") {
		t.Fatalf("got %v", out)
	}
	if !strings.Contains(out, "msg=shown program=hello.bf") {
		t.Fatalf("got %v", out)
	}
}

func TestLevelCommands(t *testing.T) {
	defer level.Set(slog.LevelWarn)
	for _, c := range []struct {
		command string
		level   slog.Level
	}{
		{"-log-debug", slog.LevelDebug},
		{"-log-info", slog.LevelInfo},
		{"-log-error", slog.LevelError},
		{"-log-warn", slog.LevelWarn},
	} {
		cmdsExecute(t, c.command)
		if level.Level() != c.level {
			t.Fatalf("%s: got %v", c.command, level.Level())
		}
	}
}

func TestToJournalKey(t *testing.T) {
	if got := toJournalKey("logs.span"); got != "LOGS_SPAN" {
		t.Fatalf("got %v", got)
	}
}
