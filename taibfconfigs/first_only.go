package taibfconfigs

import (
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
)

// FirstOnly stops a run after the first program halts.
type FirstOnly bool

var firstOnlyFlag = cmds.Switch("-first-only")

func init() {
	cmds.Describe("-first-only", "run only the first program")
}

func (Module) FirstOnly(
	loader configs.Loader,
) FirstOnly {
	return FirstOnly(*firstOnlyFlag || configs.First[bool](loader, "first_only"))
}
