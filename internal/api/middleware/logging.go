package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// LogApi writes one access-log line per request; health checks are skipped.
func LogApi(skipPaths ...string) gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: skipPaths,
		Formatter: func(param gin.LogFormatterParams) string {
			user, _ := param.Keys[ContextUserID].(string)
			if user == "" {
				user = "-"
			}
			return fmt.Sprintf("[%s] | %s | %s | %d | %s | %s | %s | %s\n",
				param.TimeStamp.Format("2006-01-02 15:04:05"),
				param.ClientIP,
				user,
				param.StatusCode,
				param.Method,
				param.Path,
				param.ErrorMessage,
				param.Latency,
			)
		},
	})
}
