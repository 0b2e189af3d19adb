package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod    = "method"
	AttrPath      = "path"
	AttrStatus    = "status"
	AttrUpstream  = "upstream"
	AttrOperation = "operation"
	AttrOutcome   = "outcome"
)

// Outcome values for admin mutations.
const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)
