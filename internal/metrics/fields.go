package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod  = "method"
	AttrPath    = "path"
	AttrStatus  = "status"
	AttrHalf    = "half"
	AttrStore   = "store"
	AttrOp      = "op"
	AttrOutcome = "outcome"
	AttrInjury  = "injury"
)
