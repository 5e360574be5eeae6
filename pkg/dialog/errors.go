package dialog

import (
	"errors"
	"fmt"
)

// ErrNoScreen is returned by New when there is no screen to mount on.
var ErrNoScreen = errors.New("dialog: no screen to mount on")

// ErrMountNotFound is the sentinel wrapped by MountError.
var ErrMountNotFound = errors.New("dialog: mount target not found")

// MountError reports a selector that matches no screen slot.
type MountError struct {
	Selector string
}

func (e *MountError) Error() string {
	return fmt.Sprintf("dialog: item with selector %q not found", e.Selector)
}

func (e *MountError) Unwrap() error {
	return ErrMountNotFound
}
