package constants

// NATS subjects
const (
	// SubjectLocationIngested carries every accepted fix for downstream
	// consumers (live feeds, analytics). Publishing is best-effort.
	SubjectLocationIngested = "location.ingested"
)
