package model

type EventKind string

const (
	EventKindStarted  EventKind = "call_started"
	EventKindEnded    EventKind = "call_ended"
	EventKindAnalyzed EventKind = "call_analyzed"
)

// CallAnalysisEvent is the unit of work: one verified webhook delivery.
// The pipeline only reads it, never mutates it.
type CallAnalysisEvent struct {
	Kind   EventKind
	CallID string
	Fields AnalysisFields
}
