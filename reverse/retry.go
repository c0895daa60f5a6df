package reverse

import (
	"context"
	"errors"
	"os"
	"syscall"
)

// permanent lists errno values that retrying a file operation won't
// fix.
var permanent = []error{
	syscall.EROFS,
	syscall.ENOSPC,
	syscall.EDQUOT,
	syscall.EACCES,
	syscall.EPERM,
	syscall.ENAMETOOLONG,
	syscall.ENOTDIR,
	syscall.EISDIR,
	syscall.EXDEV,
	syscall.EINVAL,
}

// ShouldRetry reports whether err is a file system error that might
// succeed if the operation is tried again.
func ShouldRetry(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, os.ErrExist) ||
		errors.Is(err, os.ErrClosed) {
		return false
	}

	for _, p := range permanent {
		if errors.Is(err, p) {
			return false
		}
	}

	return true
}
