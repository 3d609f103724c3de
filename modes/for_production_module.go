package modes

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/cmds"
)

type ModuleForProduction struct {
	dscope.Module
}

var developmentFlag = cmds.Switch("-dev")

func init() {
	cmds.Describe("-dev", "development mode, remote locations are fetched without proxy")
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

// T is nil outside tests
func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	if *developmentFlag {
		return ModeDevelopment
	}
	return ModeProduction
}
