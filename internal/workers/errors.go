package workers

import "errors"

// ErrStopped is returned by [Dispatcher.Do] once the dispatcher loop has
// exited.
var ErrStopped = errors.New("dispatcher stopped")
