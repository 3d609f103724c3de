package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/modes"
	"github.com/reusee/taibf/taibfconfigs"
)

var locations = cmds.Rest()

func main() {
	cmds.Execute(os.Args[1:])

	if len(*locations) == 0 {
		fmt.Fprintln(os.Stderr, "Error: at least one program file or URL is required")
		cmds.GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(2)
	}

	dscope.New(
		new(bfvm.Module),
		modes.ForProduction(),
	).Call(func(
		run bfvm.RunLocations,
	) {
		err := run(context.Background(), *locations)
		if errors.Is(err, taibfconfigs.ErrBadSetting) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			cmds.GlobalExecutor.PrintUsage(os.Stderr)
			os.Exit(2)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	})
}
