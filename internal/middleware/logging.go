package middleware

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// TraceIDKey is the context key holding the update's trace id
const TraceIDKey = "trace_id"

// Logger tags every update with a trace id and logs how it was handled
func Logger(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			traceID := uuid.NewString()
			c.Set(TraceIDKey, traceID)

			var userID int64
			if sender := c.Sender(); sender != nil {
				userID = sender.ID
			}

			start := time.Now()
			err := next(c)

			fields := []zap.Field{
				zap.String("trace_id", traceID),
				zap.Int64("user_id", userID),
				zap.Duration("took", time.Since(start)),
			}
			if err != nil {
				logger.Error("Failed to handle update", append(fields, zap.Error(err))...)
				return err
			}

			logger.Debug("Update handled", fields...)
			return nil
		}
	}
}

// Recover turns a handler panic into an error
func Recover(logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Recovered from panic in handler",
						zap.Any("panic", r),
						zap.Stack("stack"),
					)
					err = fmt.Errorf("panic: %v", r)
				}
			}()
			return next(c)
		}
	}
}
