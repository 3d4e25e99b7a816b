package service_test

import (
	"context"

	"callwatch.app/callwatch/internal/model"
)

type mockDispatcher struct {
	dispatchFn func(ctx context.Context, classification model.Classification, event model.CallAnalysisEvent) model.DispatchOutcome
	calls      int
}

func (m *mockDispatcher) Dispatch(ctx context.Context, classification model.Classification, event model.CallAnalysisEvent) model.DispatchOutcome {
	m.calls++
	return m.dispatchFn(ctx, classification, event)
}
