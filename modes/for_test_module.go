package modes

import (
	"testing"

	"github.com/reusee/dscope"
)

// ModuleForTest runs scopes in development mode, bound to the running test.
type ModuleForTest struct {
	dscope.Module
	t *testing.T
}

func ForTest(t *testing.T) ModuleForTest {
	return ModuleForTest{
		t: t,
	}
}

func (m ModuleForTest) T() *testing.T {
	return m.t
}

// no proxy, remote locations in tests are local servers
func (ModuleForTest) Mode() Mode {
	return ModeDevelopment
}
