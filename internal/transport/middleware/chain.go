package middleware

import "net/http"

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// Chain combines middleware so that Chain(mw1, mw2)(h) is mw1(mw2(h)):
// the first middleware runs outermost.
func Chain(mws ...Middleware) Middleware {
	return func(final http.Handler) http.Handler {
		for i := len(mws) - 1; i >= 0; i-- {
			final = mws[i](final)
		}
		return final
	}
}

// With returns a middleware running m and then more, innermost last.
// Route groups are built by extending a shared base chain.
func (m Middleware) With(more ...Middleware) Middleware {
	return Chain(append([]Middleware{m}, more...)...)
}

// Then wraps a handler function.
func (m Middleware) Then(h http.HandlerFunc) http.Handler {
	return m(h)
}
