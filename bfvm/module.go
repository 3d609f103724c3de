package bfvm

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/sources"
	"github.com/reusee/taibf/taibfconfigs"
)

type Module struct {
	dscope.Module
	Configs taibfconfigs.Module
	Sources sources.Module
	Logs    logs.Module
}

// the operation table is built once and shared by every translation
func (Module) OpTable() OpTable {
	return NewOpTable()
}

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

type Stdout io.Writer

func (Module) Stdout() Stdout {
	return os.Stdout
}
