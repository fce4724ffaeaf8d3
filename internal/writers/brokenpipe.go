package writers

import (
	"errors"
	"io"
	"os"
	"syscall"
)

// IsBrokenPipe reports whether an error is a broken or closed pipe. Output
// piped into consumers like `head` closes early; that is a clean exit, not
// a write failure.
func IsBrokenPipe(err error) bool {
	return err != nil &&
		(errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe) || errors.Is(err, os.ErrClosed))
}
