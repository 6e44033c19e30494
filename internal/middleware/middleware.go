// Package middleware stores global middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request ids, request logging, tracing, CORS, rate limiting, and
// panic recovery.
package middleware
