package events_test

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"vagas/internal/events"
	"vagas/internal/events/fake"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("NATSPublisher", func() {
	var (
		fakeConn  *fake.Conn
		publisher *events.NATSPublisher
		event     events.JobEvent
	)

	BeforeEach(func() {
		fakeConn = new(fake.Conn)
		publisher = events.NewNATSPublisher(zap.NewNop().Sugar(), fakeConn)
		event = events.JobEvent{
			ID:         7,
			Title:      "Go developer",
			Company:    "Acme",
			Status:     "active",
			OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		}
	})

	Describe("Publish", func() {
		It("should publish the JSON encoded event on the subject", func() {
			err := publisher.Publish(context.Background(), events.SubjectJobCreated, event)
			Expect(err).NotTo(HaveOccurred())

			Expect(fakeConn.PublishCallCount()).To(Equal(1))
			subject, data := fakeConn.PublishArgsForCall(0)
			Expect(subject).To(Equal("jobs.created"))

			var decoded events.JobEvent
			Expect(json.Unmarshal(data, &decoded)).To(Succeed())
			Expect(decoded).To(Equal(event))
		})

		When("the connection rejects the message", func() {
			BeforeEach(func() {
				fakeConn.PublishReturns(errors.New("nats: connection closed"))
			})

			It("should return an error naming the subject", func() {
				err := publisher.Publish(context.Background(), events.SubjectJobDeleted, event)
				Expect(err).To(MatchError(ContainSubstring(`publish to "jobs.deleted"`)))
			})
		})

		When("the event cannot be encoded", func() {
			It("should not reach the connection", func() {
				err := publisher.Publish(context.Background(), events.SubjectJobUpdated, make(chan int))
				Expect(err).To(MatchError(ContainSubstring("marshal event")))
				Expect(fakeConn.PublishCallCount()).To(Equal(0))
			})
		})
	})

	Describe("Close", func() {
		It("should drain the connection", func() {
			Expect(publisher.Close()).To(Succeed())
			Expect(fakeConn.DrainCallCount()).To(Equal(1))
		})
	})
})
