package taibfconfigs

import (
	"fmt"

	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

const (
	DefaultTapeSize = 30000
	MaxTapeSize     = 1 << 28
)

// TapeSize is the number of memory cells of an engine, and the capacity of its program.
type TapeSize int

var tapeSizeFlag = cmds.Var[int]("-tape-size")

func init() {
	cmds.Describe("-tape-size", fmt.Sprintf("number of tape cells, 1 to %d (default %d)", MaxTapeSize, DefaultTapeSize))
}

func (Module) TapeSize(
	loader configs.Loader,
) TapeSize {
	return TapeSize(vars.FirstNonZero(
		*tapeSizeFlag,
		configs.First[int](loader, "tape_size"),
		DefaultTapeSize,
	))
}

func (s TapeSize) Validate() error {
	if s < 1 || s > MaxTapeSize {
		return fmt.Errorf("%w: tape size %d, want 1 to %d", ErrBadSetting, s, MaxTapeSize)
	}
	return nil
}
