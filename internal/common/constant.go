package common

// RequestIDHeaderName is the gRPC metadata key carrying a per-call request id.
const RequestIDHeaderName = "x-request-id"

// StatusOK is the liveness answer of the catalog Ping method.
const StatusOK = "OK"
