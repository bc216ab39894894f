package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/angelmondragon/furniture-catalogue-backend/api/responses"
	pkgerrors "github.com/angelmondragon/furniture-catalogue-backend/pkg/errors"
	"github.com/angelmondragon/furniture-catalogue-backend/pkg/logger"
)

// Recoverer turns a handler panic into a 500 envelope. http.ErrAbortHandler
// is re-raised so net/http can drop the connection.
func Recoverer(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if err, ok := rec.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rec)
				}

				err := fmt.Errorf("panic: %v", rec)
				ctx := r.Context()
				if logg != nil {
					ctx = logg.WithFields(ctx, map[string]any{
						"panic": fmt.Sprint(rec),
						"route": routePattern(r),
					})
				}
				responses.WriteError(ctx, logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "panic").WithStep("http.recover"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
