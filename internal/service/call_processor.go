package service

import (
	"context"
	"log/slog"

	"callwatch.app/callwatch/common/logger"
	"callwatch.app/callwatch/internal/call"
	"callwatch.app/callwatch/internal/model"
)

type ProcessStatus string

const (
	// StatusIgnored: the event kind is not call_analyzed; acknowledged
	// without classification, validation, or dispatch.
	StatusIgnored ProcessStatus = "ignored"
	// StatusSkipped: required fields were missing; no channel was invoked.
	StatusSkipped ProcessStatus = "skipped"
	// StatusDispatched: channel tasks were built and settled.
	StatusDispatched ProcessStatus = "dispatched"
)

type ProcessResult struct {
	Status         ProcessStatus
	Classification model.Classification
	Validation     model.ValidationResult
	Outcome        *model.DispatchOutcome
}

type CallProcessorService interface {
	Process(ctx context.Context, event model.CallAnalysisEvent) (*ProcessResult, error)
}

// Dispatcher is the fan-out collaborator the processor hands validated
// events to.
type Dispatcher interface {
	Dispatch(ctx context.Context, classification model.Classification, event model.CallAnalysisEvent) model.DispatchOutcome
}

type callProcessorService struct {
	dispatcher Dispatcher
	logger     *slog.Logger
}

func NewCallProcessorService(dispatcher Dispatcher, log *slog.Logger) CallProcessorService {
	if log == nil {
		log = slog.Default()
	}
	return &callProcessorService{
		dispatcher: dispatcher,
		logger:     log,
	}
}

// Process runs the pipeline for one verified event:
// filter → classify → validate → dispatch. Channel failures are absorbed
// into the outcome; only unexpected failures return a non-nil error.
func (s *callProcessorService) Process(ctx context.Context, event model.CallAnalysisEvent) (*ProcessResult, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		CallID:    logger.Ptr(event.CallID),
		EventType: logger.Ptr(string(event.Kind)),
	})

	if event.Kind != model.EventKindAnalyzed {
		s.logger.InfoContext(ctx, "event kind not processed, acknowledging")
		return &ProcessResult{Status: StatusIgnored}, nil
	}

	classification := call.Classify(event.Fields)
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Classification: logger.Ptr(string(classification)),
	})
	s.logger.DebugContext(ctx, "call classified",
		"incident_description", logger.Truncate(event.Fields.IncidentDescription, 200),
	)

	validation := call.Validate(classification, event.Fields)
	if !validation.Valid {
		s.logger.WarnContext(ctx, "required fields missing, skipping dispatch",
			"missing_fields", validation.MissingFields,
		)
		return &ProcessResult{
			Status:         StatusSkipped,
			Classification: classification,
			Validation:     validation,
		}, nil
	}

	outcome := s.dispatcher.Dispatch(ctx, classification, event)

	return &ProcessResult{
		Status:         StatusDispatched,
		Classification: classification,
		Validation:     validation,
		Outcome:        &outcome,
	}, nil
}
