package taibfconfigs

import (
	"fmt"

	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

// Header controls the "# Executing: <location>" line written to stderr before each program.
type Header string

const (
	HeaderAuto   Header = "auto"
	HeaderAlways Header = "always"
	HeaderNever  Header = "never"
)

var headerFlag = cmds.Var[Header]("-header")

func init() {
	cmds.Describe("-header", "auto, always or never print a header before each program")
}

func (Module) Header(
	loader configs.Loader,
) Header {
	return vars.FirstNonZero(
		*headerFlag,
		configs.First[Header](loader, "header"),
		HeaderAuto,
	)
}

func (h Header) Validate() error {
	switch h {
	case HeaderAuto, HeaderAlways, HeaderNever:
		return nil
	}
	return fmt.Errorf("%w: header %q, want auto, always or never", ErrBadSetting, h)
}

// Show reports whether a header is printed when n programs are given.
func (h Header) Show(n int) bool {
	switch h {
	case HeaderAlways:
		return true
	case HeaderNever:
		return false
	}
	return n > 1
}
