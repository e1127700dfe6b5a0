package mailworker

import (
	"fmt"
	"net/smtp"
	"sync"

	"clinicbook-service/internal/app/drivers/mailer"
	"clinicbook-service/internal/pkg/constvars"
	"clinicbook-service/internal/pkg/dto/requests"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Worker consumes the mailer queue and delivers emails over SMTP. A message
// that fails delivery is nacked once with requeue, then dropped on the second
// failure so a dead address cannot wedge the queue.
type Worker struct {
	channel *amqp.Channel
	client  *mailer.SMTPClient
	log     *zap.Logger
	queue   string

	stopOnce sync.Once
	done     chan struct{}
}

func NewWorker(conn *amqp.Connection, client *mailer.SMTPClient, log *zap.Logger, queue string) (*Worker, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(queue, true, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	if err := channel.Qos(1, 0, false); err != nil {
		return nil, err
	}

	return &Worker{
		channel: channel,
		client:  client,
		log:     log,
		queue:   queue,
		done:    make(chan struct{}),
	}, nil
}

// Start begins consuming in a background goroutine and returns immediately.
func (w *Worker) Start() error {
	deliveries, err := w.channel.Consume(
		w.queue,
		"clinicbook-mailworker",
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		return err
	}

	go w.consume(deliveries)
	return nil
}

// Stop closes the channel, which ends the consume loop, and waits for it.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		w.channel.Close()
		<-w.done
	})
}

func (w *Worker) consume(deliveries <-chan amqp.Delivery) {
	defer close(w.done)

	for delivery := range deliveries {
		var payload requests.EmailPayload
		if err := json.Unmarshal(delivery.Body, &payload); err != nil {
			w.log.Error("mailworker failed to decode payload, dropping message",
				zap.String(constvars.LoggingQueueKey, w.queue),
				zap.Error(err),
			)
			delivery.Nack(false, false)
			continue
		}

		if err := w.deliver(&payload); err != nil {
			w.log.Error("mailworker failed to send email",
				zap.String(constvars.LoggingQueueKey, w.queue),
				zap.String(constvars.LoggingEmailRecipientKey, payload.To),
				zap.Bool("redelivered", delivery.Redelivered),
				zap.Error(err),
			)
			delivery.Nack(false, !delivery.Redelivered)
			continue
		}

		w.log.Info("mailworker delivered email",
			zap.String(constvars.LoggingQueueKey, w.queue),
			zap.String(constvars.LoggingEmailRecipientKey, payload.To),
		)
		delivery.Ack(false)
	}
}

func (w *Worker) deliver(payload *requests.EmailPayload) error {
	format := constvars.EmailSendBasicEmailFormat
	if payload.IsHTML {
		format = constvars.EmailSendHTMLFormat
	}
	msg := []byte(fmt.Sprintf(format, payload.To, payload.Subject, payload.Body))
	addr := fmt.Sprintf("%s:%d", w.client.Host, w.client.Port)
	return smtp.SendMail(addr, w.client.Auth, w.client.EmailSender, []string{payload.To}, msg)
}
