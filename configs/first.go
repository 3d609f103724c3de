package configs

import (
	"errors"
	"fmt"
)

// First returns the value at path from the first config file defining it, or the zero value.
// Load and decode errors are configuration mistakes and panic.
func First[T any](loader Loader, path string) T {
	var value T
	err := loader.AssignFirst(path, &value)
	if errors.Is(err, ErrValueNotFound) {
		return value
	}
	if err != nil {
		panic(fmt.Errorf("config %s: %w", path, err))
	}
	return value
}
