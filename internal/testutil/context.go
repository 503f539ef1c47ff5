package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds view tests that drive a quiz through scripted input.
const DefaultTimeout = 5 * time.Second

// Context returns a context cancelled when the test ends or after timeout,
// whichever is first. The timeout is clipped to leave a second before the
// test binary's own deadline so a hung view fails with a useful message.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if d, ok := t.(interface{ Deadline() (time.Time, bool) }); ok {
		if deadline, ok := d.Deadline(); ok {
			if left := time.Until(deadline) - time.Second; left > 0 && left < timeout {
				timeout = left
			}
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}
