package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"
)

// Producer publishes notification events. Delivery is best-effort: failures
// are logged and never surfaced to the caller.
type Producer struct {
	l     *slog.Logger
	w     *kafka.Writer
	topic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:     l,
		w:     w,
		topic: topic,
	}
}

type OrderConfirmationEvent struct {
	Type          string `json:"type"`
	OrderID       string `json:"orderId"`
	OrderNumber   string `json:"orderNumber"`
	StoreID       string `json:"storeId"`
	CustomerEmail string `json:"customerEmail"`
	CustomerName  string `json:"customerName"`
	TotalAmount   string `json:"totalAmount"`
	Currency      string `json:"currency"`
}

func (p *Producer) SendOrderConfirmation(ctx context.Context, e OrderConfirmationEvent) {
	e.Type = "order.confirmed"
	p.send(ctx, e.OrderID, e)
}

type DocumentSettledEvent struct {
	Type       string `json:"type"`
	TenantID   string `json:"tenantId"`
	DocumentID string `json:"documentId"`
	Number     string `json:"number"`
	PaidAmount string `json:"paidAmount"`
	Status     string `json:"status"`
}

func (p *Producer) SendDocumentSettled(ctx context.Context, e DocumentSettledEvent) {
	e.Type = "document.settled"
	p.send(ctx, e.DocumentID, e)
}

func (p *Producer) send(ctx context.Context, key string, event any) {
	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: b,
		Topic: p.topic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
