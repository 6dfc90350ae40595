package middleware

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// aiPathPrefix marks endpoints whose handlers wait on LLM generation
const aiPathPrefix = "/api/ai/"

// SelectiveTimeoutConfig bounds the regular endpoints while skipping the
// AI ones. A full analysis makes four sequential model calls and local
// inference alone can take minutes; AITimeoutConfig bounds those instead.
func SelectiveTimeoutConfig(defaultTimeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: defaultTimeout,
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, aiPathPrefix)
		},
	})
}

// AITimeoutConfig bounds the AI endpoints only
func AITimeoutConfig(aiTimeout time.Duration) echo.MiddlewareFunc {
	return middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: aiTimeout,
		Skipper: func(c echo.Context) bool {
			return !strings.HasPrefix(c.Request().URL.Path, aiPathPrefix)
		},
	})
}
