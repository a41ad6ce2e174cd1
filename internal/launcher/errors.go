package launcher

import "errors"

// ErrAlreadyLaunched is returned by Launch when the children of this
// Launcher were already spawned; a Launcher runs its stack exactly once.
var ErrAlreadyLaunched = errors.New("launcher: already launched")
