package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/go-chi/render"
	"go.uber.org/zap"

	"github.com/popeskul/wa-webhook-bridge/internal/api"
)

// Recovery turns a panic below it into a 500 with the standard error body.
// http.ErrAbortHandler is re-raised so net/http can abort the connection.
func Recovery(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				logger.Error("Panic recovered",
					zap.Any("panic", rec),
					zap.String("request_id", GetRequestID(r.Context())),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.ByteString("stack", debug.Stack()),
				)

				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, api.ErrorResponse{
					Status:  api.ErrorResponseStatusError,
					Message: ErrorMessageInternal,
				})
			}()

			next.ServeHTTP(w, r)
		})
	}
}
