package service_test

import (
	"context"
	"io"
	"log/slog"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"callwatch.app/callwatch/internal/model"
	"callwatch.app/callwatch/internal/service"
)

var _ = Describe("CallProcessorService", func() {
	var (
		dispatcher *mockDispatcher
		processor  service.CallProcessorService
	)

	BeforeEach(func() {
		dispatcher = &mockDispatcher{
			dispatchFn: func(ctx context.Context, classification model.Classification, event model.CallAnalysisEvent) model.DispatchOutcome {
				return model.DispatchOutcome{DispatchID: 7, Total: 1, Successful: 1}
			},
		}
		log := slog.New(slog.NewTextHandler(io.Discard, nil))
		processor = service.NewCallProcessorService(dispatcher, log)
	})

	It("acknowledges non-analysis events without touching the pipeline", func() {
		for _, kind := range []model.EventKind{model.EventKindStarted, model.EventKindEnded, "call_something_new"} {
			result, err := processor.Process(context.Background(), model.CallAnalysisEvent{
				Kind:   kind,
				CallID: "call-1",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Status).To(Equal(service.StatusIgnored))
			Expect(result.Outcome).To(BeNil())
		}
		Expect(dispatcher.calls).To(Equal(0))
	})

	It("skips dispatch when required fields are missing", func() {
		result, err := processor.Process(context.Background(), model.CallAnalysisEvent{
			Kind:   model.EventKindAnalyzed,
			CallID: "call-2",
			Fields: model.AnalysisFields{
				SecurityIncident: model.TristateTrue,
				CallerName:       "Jane Doe",
				// company and phone missing
			},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Status).To(Equal(service.StatusSkipped))
		Expect(result.Classification).To(Equal(model.ClassificationIncident))
		Expect(result.Validation.Valid).To(BeFalse())
		Expect(result.Validation.MissingFields).To(HaveLen(2))
		Expect(result.Outcome).To(BeNil())
		Expect(dispatcher.calls).To(Equal(0))
	})

	It("dispatches a valid incident and carries the outcome through", func() {
		var gotClassification model.Classification
		dispatcher.dispatchFn = func(ctx context.Context, classification model.Classification, event model.CallAnalysisEvent) model.DispatchOutcome {
			gotClassification = classification
			return model.DispatchOutcome{DispatchID: 7, Total: 4, Successful: 3, Failed: 1}
		}

		result, err := processor.Process(context.Background(), model.CallAnalysisEvent{
			Kind:   model.EventKindAnalyzed,
			CallID: "call-3",
			Fields: model.AnalysisFields{
				SecurityIncident: model.TristateTrue,
				CallerName:       "Jane Doe",
				CompanyName:      "Acme",
				PhoneNumber:      "5551234567",
			},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Status).To(Equal(service.StatusDispatched))
		Expect(gotClassification).To(Equal(model.ClassificationIncident))
		Expect(dispatcher.calls).To(Equal(1))
		Expect(result.Outcome).NotTo(BeNil())
		Expect(result.Outcome.Failed).To(Equal(1), "partial channel failure is not a processing error")
	})

	It("routes a valid inquiry with the inquiry classification", func() {
		var gotClassification model.Classification
		dispatcher.dispatchFn = func(ctx context.Context, classification model.Classification, event model.CallAnalysisEvent) model.DispatchOutcome {
			gotClassification = classification
			return model.DispatchOutcome{Total: 1, Successful: 1}
		}

		result, err := processor.Process(context.Background(), model.CallAnalysisEvent{
			Kind:   model.EventKindAnalyzed,
			CallID: "call-4",
			Fields: model.AnalysisFields{
				CallerName:    "Bob",
				Email:         "bob@x.com",
				InquiryReason: "wants a quote",
			},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Status).To(Equal(service.StatusDispatched))
		Expect(gotClassification).To(Equal(model.ClassificationInquiry))
	})

	It("validates unclassified calls against the incident policy", func() {
		result, err := processor.Process(context.Background(), model.CallAnalysisEvent{
			Kind:   model.EventKindAnalyzed,
			CallID: "call-5",
			Fields: model.AnalysisFields{CallerName: "Bob", Email: "bob@x.com"},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(result.Status).To(Equal(service.StatusSkipped))
		Expect(result.Classification).To(Equal(model.ClassificationUnclassified))
		Expect(dispatcher.calls).To(Equal(0))
	})
})
