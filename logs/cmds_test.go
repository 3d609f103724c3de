package logs

import (
	"testing"

	"github.com/reusee/taibf/cmds"
)

func cmdsExecute(t *testing.T, args ...string) {
	t.Helper()
	if err := cmds.GlobalExecutor.Execute(args); err != nil {
		t.Fatal(err)
	}
}
