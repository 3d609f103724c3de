package bfvm

import (
	"bufio"
	"context"
	"errors"
	"fmt"

	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/sources"
	"github.com/reusee/taibf/taibfconfigs"
)

// RunLocations loads and runs each program in order, each on a fresh tape.
type RunLocations func(ctx context.Context, locations []string) error

func (Module) RunLocations(
	table OpTable,
	tapeSize taibfconfigs.TapeSize,
	firstOnly taibfconfigs.FirstOnly,
	header taibfconfigs.Header,
	open sources.Open,
	stdin Stdin,
	stdout Stdout,
	stderr logs.Writer,
	newSpan logs.NewSpan,
	logger logs.Logger,
) RunLocations {
	return func(ctx context.Context, locations []string) error {
		if err := errors.Join(tapeSize.Validate(), header.Validate()); err != nil {
			return err
		}

		// shared by all programs, so buffered input is not lost between them
		in := bufio.NewReader(stdin)
		out := bufio.NewWriter(stdout)
		defer out.Flush()

		showHeader := header.Show(len(locations))

		for i, location := range locations {
			if firstOnly && i > 0 {
				logger.DebugContext(ctx, "skip remaining programs",
					"skipped", locations[i:],
				)
				break
			}

			ctx, _ := newSpan(ctx, "")

			if showHeader {
				fmt.Fprintf(stderr, "# Executing: %s\n", location)
			}

			program, err := load(ctx, open, table, int(tapeSize), location)
			if err != nil {
				return logs.WrapSpan(ctx, fmt.Errorf("%s: %w", location, err))
			}
			logger.DebugContext(ctx, "translated",
				"location", location,
				"cells", len(program),
			)

			engine := NewEngine(program, int(tapeSize), in, out)
			if err := engine.Run(); err != nil {
				return logs.WrapSpan(ctx, fmt.Errorf("%s: %w", location, err))
			}
			logger.DebugContext(ctx, "halted",
				"location", location,
			)
		}

		return nil
	}
}

func load(ctx context.Context, open sources.Open, table OpTable, capacity int, location string) (Program, error) {
	r, err := open(ctx, location)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Translate(r, table, capacity)
}
