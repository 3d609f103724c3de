package logs

import (
	"io"
	"os"
)

// Writer receives text log records and other diagnostics meant for the operator, never program output.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
