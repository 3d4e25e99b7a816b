package dto

import "callwatch.app/callwatch/internal/service"

// CallEventResponse is the structured audit body returned for every
// accepted event. Channel failures are reported here, not as request
// failures.
type CallEventResponse struct {
	Status         string           `json:"status"`
	Classification string           `json:"classification,omitempty"`
	MissingFields  []string         `json:"missing_fields,omitempty"`
	Dispatch       *DispatchSummary `json:"dispatch,omitempty"`
}

type DispatchSummary struct {
	DispatchID int64         `json:"dispatch_id"`
	Total      int           `json:"total"`
	Successful int           `json:"successful"`
	Failed     int           `json:"failed"`
	Tasks      []TaskSummary `json:"tasks"`
}

type TaskSummary struct {
	Task    string `json:"task"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func NewCallEventResponse(result *service.ProcessResult) CallEventResponse {
	resp := CallEventResponse{
		Status:         string(result.Status),
		Classification: string(result.Classification),
		MissingFields:  result.Validation.MissingFields,
	}

	if result.Outcome != nil {
		summary := &DispatchSummary{
			DispatchID: result.Outcome.DispatchID,
			Total:      result.Outcome.Total,
			Successful: result.Outcome.Successful,
			Failed:     result.Outcome.Failed,
			Tasks:      make([]TaskSummary, 0, len(result.Outcome.Tasks)),
		}
		for _, t := range result.Outcome.Tasks {
			task := TaskSummary{Task: t.Task, Success: t.Succeeded()}
			if t.Err != nil {
				task.Error = t.Err.Error()
			}
			summary.Tasks = append(summary.Tasks, task)
		}
		resp.Dispatch = summary
	}

	return resp
}
