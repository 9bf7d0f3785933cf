package pkgrouter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/shandysiswandi/gocafe/internal/pkg/pkgerror"
)

// Handler is the application-style handler used by this router.
//
// It returns a response payload (that will be JSON encoded) or an error.
type Handler func(ctx context.Context, r *http.Request) (any, error)

// Option customizes a Router built by NewRouter.
type Option func(*Router)

// WithVerboseErrors exposes the underlying cause of internal errors in the
// response body. Meant for non-production environments.
func WithVerboseErrors(verbose bool) Option {
	return func(r *Router) {
		r.verbose = verbose
	}
}

// WithObserver records every served request on obs.
func WithObserver(obs RequestObserver) Option {
	return func(r *Router) {
		if obs != nil {
			r.mws = append(r.mws, middlewareMetrics(obs))
		}
	}
}

// Router is an http.Handler that wraps httprouter and a middleware chain.
type Router struct {
	hr      *httprouter.Router
	mws     []Middleware
	verbose bool
}

// NewRouter builds the default application router with standard middleware.
func NewRouter(uuid Generator, opts ...Option) *Router {
	hr := &httprouter.Router{
		RedirectTrailingSlash:  true,
		RedirectFixedPath:      true,
		HandleMethodNotAllowed: true,
		HandleOPTIONS:          true,
		NotFound: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, errorResponse{Message: "endpoint not found"}, http.StatusNotFound)
		}),
		MethodNotAllowed: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, errorResponse{Message: "method not allowed"}, http.StatusMethodNotAllowed)
		}),
	}

	ro := &Router{
		hr: hr,
		mws: []Middleware{
			middlewareRecoverer,
			middlewareCorrelationID(uuid),
			middlewareLogging,
		},
	}

	for _, opt := range opts {
		opt(ro)
	}

	ro.Handle(http.MethodGet, "/", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, map[string]string{"message": "hi from gocafe"}, http.StatusOK)
	}))

	return ro
}

// Use appends middleware to the existing middleware stack. It only affects
// routes registered afterwards.
func (r *Router) Use(mws ...Middleware) {
	r.mws = append(r.mws, mws...)
}

// GET registers a GET endpoint using the application Handler signature.
func (r *Router) GET(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodGet, path, h, mws...)
}

// POST registers a POST endpoint using the application Handler signature.
func (r *Router) POST(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPost, path, h, mws...)
}

// PUT registers a PUT endpoint using the application Handler signature.
func (r *Router) PUT(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPut, path, h, mws...)
}

// PATCH registers a PATCH endpoint using the application Handler signature.
func (r *Router) PATCH(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodPatch, path, h, mws...)
}

// DELETE registers a DELETE endpoint using the application Handler signature.
func (r *Router) DELETE(path string, h Handler, mws ...Middleware) {
	r.endpoint(http.MethodDelete, path, h, mws...)
}

// Handle registers a raw http.Handler with the router.
func (r *Router) Handle(method, path string, h http.Handler, mws ...Middleware) {
	r.hr.Handler(method, path, Chain(h, r.stack(path, mws)...))
}

// Group returns a sub-router mounted at prefix. Middleware given here runs
// for every route registered through the group, after the router-wide stack.
func (r *Router) Group(prefix string, mws ...Middleware) *Group {
	return &Group{router: r, prefix: prefix, mws: mws}
}

// WriteError encodes err the same way endpoint handlers do.
func (r *Router) WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	var gerr *pkgerror.Error
	if !errors.As(err, &gerr) {
		gerr = pkgerror.NewServer(err).(*pkgerror.Error) //nolint:errcheck,forcetypeassert // NewServer always returns *Error
	}

	code := gerr.StatusCode()
	switch {
	case code == http.StatusNotFound:
		w.WriteHeader(code)
	case code >= http.StatusInternalServerError:
		slog.ErrorContext(ctx, "request failed", "error", gerr.String())

		resp := errorResponse{Message: "Internal server error"}
		if r.verbose && gerr.Unwrap() != nil {
			resp.Error = map[string]string{"detail": gerr.Unwrap().Error()}
		}
		writeJSON(w, resp, code)
	default:
		writeJSON(w, errorResponse{Message: describe(gerr)}, code)
	}
}

func (r *Router) endpoint(method, path string, h Handler, mws ...Middleware) {
	r.hr.Handler(method, path, Chain(http.HandlerFunc(func(w http.ResponseWriter, re *http.Request) {
		resp, err := h(re.Context(), re)
		if err != nil {
			r.WriteError(re.Context(), w, err)
			return
		}
		encode(w, resp)
	}), r.stack(path, mws)...))
}

// stack puts the route pattern in the context ahead of every other
// middleware so logging and metrics can label by pattern instead of path.
func (r *Router) stack(path string, mws []Middleware) []Middleware {
	all := make([]Middleware, 0, len(r.mws)+len(mws)+1)
	all = append(all, withRoute(path))
	all = append(all, r.mws...)
	return append(all, mws...)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.hr.ServeHTTP(w, req)
}

func encode(w http.ResponseWriter, resp any) {
	code := http.StatusOK
	if sc, ok := resp.(interface {
		StatusCode() int
	}); ok {
		code = sc.StatusCode()
	}

	if code == http.StatusNoContent || resp == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, resp, code)
}

func describe(gerr *pkgerror.Error) string {
	if gerr.Type() == pkgerror.TypeValidation && gerr.Unwrap() != nil {
		return gerr.Unwrap().Error()
	}
	if msg := gerr.Msg(); msg != "" {
		return msg
	}
	return gerr.Error()
}

type errorResponse struct {
	Message string            `json:"message"`
	Error   map[string]string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, data any, code int) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("server: failed to encode data to json", "error", err)
	}
}
