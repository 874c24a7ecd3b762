package queue

import (
	"encoding/json"
	"log/slog"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReplySender is the outbound transport (SMTP in production).
type ReplySender interface {
	Send(to, toName, subject, body string) error
}

// Worker drains the reply queue and hands each payload to the sender.
// Malformed messages are rejected without requeue; transport failures also
// go straight to the DLQ so a broken SMTP setup never loops the queue.
type Worker struct {
	Channel *amqp.Channel
	Sender  ReplySender
	Logger  *slog.Logger
}

func NewWorker(ch *amqp.Channel, sender ReplySender, logger *slog.Logger) *Worker {
	return &Worker{
		Channel: ch,
		Sender:  sender,
		Logger:  logger,
	}
}

func (w *Worker) Start(queueName string) error {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // auto-ack (manual is safer)
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	w.Logger.Info("reply worker consuming", "queue", queueName)

	for d := range msgs {
		var payload ReplyPayload
		if err := json.Unmarshal(d.Body, &payload); err != nil {
			w.Logger.Error("reply worker got malformed message", "error", err)
			d.Nack(false, false)
			continue
		}

		if err := w.Sender.Send(payload.To, payload.ToName, payload.Subject, payload.Body); err != nil {
			w.Logger.Error("reply delivery failed",
				"record_type", payload.RecordType,
				"record_id", payload.RecordID,
				"to", payload.To,
				"error", err,
			)
			d.Nack(false, false)
			continue
		}

		w.Logger.Info("reply delivered",
			"record_type", payload.RecordType,
			"record_id", payload.RecordID,
			"to", payload.To,
		)
		d.Ack(false)
	}

	return nil
}
