package telemetry_test

import (
	"context"
	"errors"

	"vagas/internal/telemetry"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var _ = Describe("Fail", func() {
	It("should mark the span as failed and return the error", func() {
		recorder := tracetest.NewSpanRecorder()
		provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
		DeferCleanup(provider.Shutdown, context.Background())

		_, span := provider.Tracer("test").Start(context.Background(), "JobService.GetJob")
		err := errors.New("job not found")

		Expect(telemetry.Fail(span, err)).To(MatchError(err))
		span.End()

		ended := recorder.Ended()
		Expect(ended).To(HaveLen(1))
		Expect(ended[0].Status().Code).To(Equal(codes.Error))
		Expect(ended[0].Status().Description).To(Equal("job not found"))
		Expect(ended[0].Events()).To(HaveLen(1))
	})
})

var _ = Describe("GetTracer", func() {
	It("should return a usable tracer without an installed provider", func() {
		_, span := telemetry.GetTracer("vagas/test").Start(context.Background(), "noop")
		Expect(span).NotTo(BeNil())
		span.End()
	})
})
