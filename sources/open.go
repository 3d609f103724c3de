package sources

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/nets"
)

var ErrBadStatus = errors.New("bad status")

// Open returns the program source at location, a file path or an http(s) URL.
type Open func(ctx context.Context, location string) (io.ReadCloser, error)

func (Module) Open(
	client nets.HTTPClient,
	logger logs.Logger,
) Open {
	return func(ctx context.Context, location string) (io.ReadCloser, error) {
		if !IsRemote(location) {
			return os.Open(location)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
		if err != nil {
			return nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		logger.DebugContext(ctx, "fetch program",
			"location", location,
			"status", resp.StatusCode,
		)
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: %s", ErrBadStatus, resp.Status)
		}
		return resp.Body, nil
	}
}

func IsRemote(location string) bool {
	return strings.HasPrefix(location, "http://") ||
		strings.HasPrefix(location, "https://")
}
