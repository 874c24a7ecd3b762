package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReplyPayload is what the outbound worker needs to send one reply email.
// RecordType/RecordID tie the delivery back to the enquiry or ticket for
// logging.
type ReplyPayload struct {
	RecordType string `json:"record_type"`
	RecordID   string `json:"record_id"`
	To         string `json:"to"`
	ToName     string `json:"to_name"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishReply(ctx context.Context, payload ReplyPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode reply payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish reply: %w", err)
	}

	return nil
}
