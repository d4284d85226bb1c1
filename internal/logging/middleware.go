package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// Middleware seeds a request-scoped LogData before the handler runs and
// flushes it with the accumulated timings and data items once the request
// completes. Handlers fetch it back with GetLogData.
func Middleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(log)
		endTimer := logData.AddTiming("duration")

		ctx = huma.WithValue(ctx, logDataKey{}, logData)
		next(ctx)

		endTimer()
		logData.AddData("path", ctx.Operation().Path)
		logData.Log().Infof("Handler.%v.Complete", ctx.Operation().OperationID)
	}
}
