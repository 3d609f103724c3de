package taibfconfigs

import "errors"

// ErrBadSetting reports a setting from the command line or a config file that is out of range.
var ErrBadSetting = errors.New("bad setting")
