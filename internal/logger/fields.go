package logger

// Fields is an alias for map[string]interface{} for convenience.
type Fields map[string]interface{}

// ============================================
// Standard Tracing Fields (Context level)
// These fields are propagated through the call chain
// ============================================

const (
	// FieldRequestID is the HTTP request ID (UUID)
	FieldRequestID = "request_id"

	// FieldJobID is the dataset ingestion job ID
	FieldJobID = "job_id"

	// FieldKitID is the brand kit generation run ID
	FieldKitID = "kit_id"

	// FieldComponent is the component/module name
	FieldComponent = "component"

	// FieldSource is the dataset source identifier
	FieldSource = "source"

	// FieldBrand is the brand name being processed
	FieldBrand = "brand"
)

// ============================================
// Standard Metric Fields (Entry level)
// These fields are used for aggregation and alerting
// ============================================

const (
	// FieldDurationMs is the execution duration in milliseconds
	FieldDurationMs = "duration_ms"

	// FieldCount is a generic count field
	FieldCount = "count"

	// FieldSize is the data size in bytes
	FieldSize = "size"

	// FieldStatus is the operation status
	FieldStatus = "status"
)
