package server

import (
	"net/http"
)

// Router is an explicit (method, pattern) → handler route table over
// [http.ServeMux] method patterns, with a middleware stack applied to every
// registered handler.
type Router struct {
	mux         *http.ServeMux
	middlewares []Middleware
}

// NewRouter creates an empty Router.
func NewRouter() *Router {
	return &Router{
		mux:         http.NewServeMux(),
		middlewares: []Middleware{},
	}
}

// Use adds [Middleware] to the stack. Middleware registered before a route is
// applied to it in the order it was added.
func (r *Router) Use(middleware ...Middleware) {
	r.middlewares = append(r.middlewares, middleware...)
}

// Handle registers a handler for the given HTTP method and path pattern.
// Patterns may carry wildcards ("/api/videos/{id}") read via Request.PathValue.
func (r *Router) Handle(method, pattern string, handler http.Handler) {
	r.mux.Handle(method+" "+pattern, r.Apply(handler))
}

// HandleFunc registers a handler function for the given method and pattern.
func (r *Router) HandleFunc(method, pattern string, handler http.HandlerFunc) {
	r.Handle(method, pattern, handler)
}

// ServeHTTP implements [http.Handler] for the entire router.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// Apply wraps a handler with all registered middleware.
//
// Middleware is applied in reverse order (last added wraps first).
func (r *Router) Apply(handler http.Handler) http.Handler {
	wrapped := handler

	for i := len(r.middlewares) - 1; i >= 0; i-- {
		wrapped = r.middlewares[i](wrapped)
	}

	return wrapped
}
