package model

type TaskResult struct {
	Task string
	Err  error
}

func (r TaskResult) Succeeded() bool {
	return r.Err == nil
}

// DispatchOutcome aggregates one fan-out run. Total always equals
// Successful + Failed and the number of constructed tasks.
//
// The ticket-failure alert is a safety side channel, not one of the
// constructed tasks, so it is reported separately: its own failure must
// never mask the original ticket error.
type DispatchOutcome struct {
	DispatchID int64
	Total      int
	Successful int
	Failed     int
	Tasks      []TaskResult

	TicketAlertAttempted bool
	TicketAlertFailed    bool
}
