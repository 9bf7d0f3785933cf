package pkgrouter

import (
	"context"
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// GetParam reads a path parameter from the request context (as stored by httprouter).
func GetParam(ctx context.Context, key string) string {
	return httprouter.ParamsFromContext(ctx).ByName(key)
}

// ParamFunc resolves the raw value of a path parameter. It returns the
// context the rest of the chain should see (typically carrying the loaded
// row) or an error that stops the chain.
type ParamFunc func(ctx context.Context, value string) (context.Context, error)

// Param builds a middleware that runs fn for the named path parameter before
// the handler. When fn fails the error is written like any handler error and
// the handler is never reached.
func (r *Router) Param(name string, fn ParamFunc) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			ctx, err := fn(req.Context(), GetParam(req.Context(), name))
			if err != nil {
				r.WriteError(req.Context(), w, err)
				return
			}
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}
