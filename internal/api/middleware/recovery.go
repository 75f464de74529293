package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/aurumlabs/gold-commerce-platform/internal/errors"
	"github.com/aurumlabs/gold-commerce-platform/internal/utils/response"
)

func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				LoggerFromContext(r.Context()).Error("Panic recovered",
					slog.Any("panic", rec),
					slog.String("stack", string(debug.Stack())))
				response.Error(w, errors.InternalError("Internal server error"))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
