package vector

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by checked access when the index is not a live
// element.
var ErrOutOfRange = errors.New("vector: index out of range")

func outOfRange(index, size int) error {
	return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, index, size)
}
