package port

import "time"

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop cancels the callback. It returns false if it already ran or was
	// stopped.
	Stop() bool
}

// Scheduler runs callbacks on the UI loop. fn never runs synchronously
// inside AfterFunc or Post.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Timer
	Post(fn func())
}
