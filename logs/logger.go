package logs

import (
	"context"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/reusee/taibf/cmds"
	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

var level = new(slog.LevelVar)

var levelCommands = []struct {
	name  string
	level slog.Level
}{
	{"-log-debug", slog.LevelDebug},
	{"-log-info", slog.LevelInfo},
	{"-log-warn", slog.LevelWarn},
	{"-log-error", slog.LevelError},
}

func init() {
	// program output shares the terminal, keep the default quiet
	level.Set(slog.LevelWarn)

	for _, c := range levelCommands {
		cmds.Define(c.name, cmds.Func(func() {
			level.Set(c.level)
		}).Desc("set log level to "+strings.ToLower(c.level.String())))
	}
}

type Logger = *slog.Logger

func (Module) Logger(
	writer Writer,
) Logger {
	var handlers []slog.Handler

	// terminal, unless stderr goes to the journal anyway
	var textHandler slog.Handler
	if !systemdService() {
		textHandler = slog.NewTextHandler(writer, &slog.HandlerOptions{
			Level: level,
		})
		handlers = append(handlers, textHandler)
	}

	// systemd journal
	journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
		Level: level,
		ReplaceGroup: func(key string) string {
			return toJournalKey(key)
		},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			a.Key = toJournalKey(a.Key)
			return a
		},
	})
	if err == nil {
		handlers = append(handlers, journalHandler)
	} else if textHandler != nil {
		record := slog.NewRecord(time.Now(), slog.LevelDebug, "no systemd journal", 0)
		record.Add("error", err)
		if textHandler.Enabled(context.Background(), record.Level) {
			_ = textHandler.Handle(context.Background(), record)
		}
	}

	return slog.New(&Handler{
		Handler: slogmulti.Fanout(handlers...),
	})
}

// journal field names are upper case letters, digits and underscores
func toJournalKey(str string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, strings.ToUpper(str))
}

func systemdService() bool {
	content, err := os.ReadFile("/proc/self/cgroup")
	if err != nil {
		return false
	}
	parts := strings.Split(strings.TrimSpace(string(content)), ":")
	if len(parts) < 3 {
		return false
	}
	return strings.HasSuffix(path.Dir(parts[2]), ".service")
}
