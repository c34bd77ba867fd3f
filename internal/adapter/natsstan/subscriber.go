package natsstan

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/example/order-alert-service/internal/domain"
	stan "github.com/nats-io/stan.go"
)

// Subscriber consumes order-created events from a NATS Streaming subject.
// Manual acks only: a handler error withholds the ack, so the event comes
// back (at-least-once delivery, the handler is expected to tolerate repeats).
type Subscriber struct {
	ClusterID string
	ClientID  string
	URL       string
	Subject   string
	Durable   string
}

func (s *Subscriber) Subscribe(ctx context.Context, handler func(ctx context.Context, raw []byte) error) error {
	clientID := s.ClientID
	if clientID == "" {
		clientID = fmt.Sprintf("order-alert-%d", time.Now().UnixNano())
	}
	sc, err := stan.Connect(s.ClusterID, clientID, stan.NatsURL(s.URL))
	if err != nil {
		return err
	}
	go func() {
		<-ctx.Done()
		sc.Close()
	}()
	_, err = sc.QueueSubscribe(s.Subject, "order-alert-workers", func(m *stan.Msg) {
		// budget covers persistence plus the multicast push call
		hCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := handler(hCtx, m.Data); err != nil {
			// no ack: let the message redeliver
			slog.Error("handler error", slog.Any("error", err))
			return
		}
		if err := m.Ack(); err != nil {
			slog.Error("ack failed", slog.Any("error", err))
		}
	}, stan.DurableName(s.Durable), stan.SetManualAckMode(), stan.AckWait(30*time.Second), stan.DeliverAllAvailable())
	return err
}

var _ domain.MessageSubscriber = (*Subscriber)(nil)
