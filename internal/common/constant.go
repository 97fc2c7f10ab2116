package common

// RequestIDHeaderName is the HTTP header that carries the per-request id on
// every response.
const RequestIDHeaderName = "X-Request-Id"
