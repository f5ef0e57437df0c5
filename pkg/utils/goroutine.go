package utils

import (
	"context"
	"fmt"
	"runtime/debug"

	"golang-stock-analyzer/pkg/logger"
)

// GoSafe runs fn in a new goroutine and recovers any panic so it cannot crash the process.
// The panic and its stack are logged with the request and trace ids carried by ctx.
func GoSafe(ctx context.Context, log *logger.Logger, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				if log == nil {
					log = logger.NewNop()
				}
				log.ErrorContext(ctx, "Recovered from panic",
					logger.StringField("panic", fmt.Sprint(r)),
					logger.StringField("stack", string(debug.Stack())),
				)
			}
		}()
		fn()
	}()
}
