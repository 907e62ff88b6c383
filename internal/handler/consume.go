package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/campuslib/circulation/internal/model"
)

type sendReminder func(ctx context.Context, msg model.ReminderMsg) error

// Consumer delivers reminder messages to the email collaborator. Delivery
// is best-effort: a failed send is logged and the message is still marked.
type Consumer struct {
	send sendReminder
	log  *zap.Logger
}

func NewConsumer(send sendReminder, log *zap.Logger) *Consumer {
	return &Consumer{
		send: send,
		log:  log.Named("consumer"),
	}
}

func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

// Cleanup is run at the end of a session, once all ConsumeClaim goroutines have exited.
func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var msg model.ReminderMsg
			if err := json.Unmarshal(message.Value, &msg); err != nil {
				consumer.log.Error("unmarshal reminder", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.send(context.Background(), msg); err != nil {
				consumer.log.Error("send reminder",
					zap.String("email", msg.Email), zap.Error(err))
			}
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
