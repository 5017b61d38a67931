package middleware

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/danielgtaylor/huma/v2"
	"github.com/labstack/echo/v4"

	"github.com/donaldgifford/social-data-provider/internal/metrics"
)

// Recovery returns Echo middleware that turns a handler panic into a 500
// problem document shaped like huma's own errors. http.ErrAbortHandler is
// re-raised so net/http can drop the connection.
func Recovery(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				v := recover()
				switch v {
				case nil:
					return
				case http.ErrAbortHandler:
					panic(v)
				}

				req := c.Request()
				metrics.HTTPPanicsTotal.Inc()
				log.ErrorContext(req.Context(), "panic recovered",
					"error", fmt.Sprint(v),
					"method", req.Method,
					"path", req.URL.Path,
					"request_id", RequestID(c),
					"stack", string(debug.Stack()),
				)

				if !c.Response().Committed {
					err = writeProblem(c, http.StatusInternalServerError, "internal server error")
				}
			}()
			return next(c)
		}
	}
}

func writeProblem(c echo.Context, status int, detail string) error {
	body, err := json.Marshal(&huma.ErrorModel{
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
	if err != nil {
		return err
	}
	return c.Blob(status, "application/problem+json", body)
}
