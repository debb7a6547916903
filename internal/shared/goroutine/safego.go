// Package goroutine launches the server's long-lived goroutines, such as the
// HTTP listener, so that a panic in one is logged rather than lost.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"github.com/orris-inc/helpdesk/internal/shared/logger"
)

// SafeGo runs fn on its own goroutine. A panic is recovered and logged with the
// stack under name; the caller learns about it through whatever channel fn
// would have closed or written.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprint(r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
