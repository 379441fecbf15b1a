package eventlog

const (
	// DefaultQueryLimit caps event queries that do not set their own limit.
	DefaultQueryLimit = 100

	// DefaultRetentionDays is how long events are kept before cleanup.
	DefaultRetentionDays = 90
)
