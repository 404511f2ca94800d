package logger

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const correlationKey = "correlationID"

// Init builds the process-wide zap logger. LOG_LEVEL selects the
// minimum level, defaulting to info.
func Init() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseLevel(os.Getenv("LOG_LEVEL")))
	return cfg.Build()
}

// Middleware tags every request with a correlation ID, reusing the
// caller-provided X-Request-ID when present.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(correlationKey, id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

// CorrelationID extracts the request's correlation ID.
func CorrelationID(c *gin.Context) string {
	return c.GetString(correlationKey)
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
