package configs

import (
	"errors"
)

// Lookup decodes the first value at path, reporting whether any file defines
// it.
func Lookup[T any](loader Loader, path string) (ret T, ok bool, err error) {
	err = loader.AssignFirst(path, &ret)
	if errors.Is(err, ErrValueNotFound) {
		return ret, false, nil
	}
	if err != nil {
		return ret, false, err
	}
	return ret, true, nil
}
