package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"

	// Service
	FieldService = "service"
	FieldVersion = "version"
	FieldAddr    = "addr"

	// Identifiers
	FieldID      = "id"
	FieldPrefix  = "prefix"
	FieldProfile = "profile"
	FieldCodec   = "codec"
	FieldCount   = "count"
	FieldReason  = "reason"
)
