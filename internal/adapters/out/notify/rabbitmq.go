package notify

import (
	"context"
	"errors"
	"time"

	"market/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// RabbitMQNotifier publishes persistent notifications to a fanout exchange.
type RabbitMQNotifier struct {
	channel  publisher
	exchange string
	closers  []func() error
}

// DialRabbitMQ connects to url and declares a durable fanout exchange.
func DialRabbitMQ(url, exchange string) (*RabbitMQNotifier, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	if err = channel.ExchangeDeclare(
		exchange,
		amqp.ExchangeFanout,
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		_ = channel.Close()
		_ = conn.Close()
		return nil, err
	}

	n := newRabbitMQNotifier(channel, exchange)
	n.closers = []func() error{channel.Close, conn.Close}
	return n, nil
}

func newRabbitMQNotifier(channel publisher, exchange string) *RabbitMQNotifier {
	return &RabbitMQNotifier{channel: channel, exchange: exchange}
}

func (n *RabbitMQNotifier) Notify(ctx context.Context, notification ports.StatusNotification) error {
	body, err := encode(notification)
	if err != nil {
		return err
	}

	return n.channel.PublishWithContext(ctx,
		n.exchange,
		"",    // routing key
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    notification.OrderID,
			Body:         body,
			Timestamp:    time.Now().UTC(),
		})
}

func (n *RabbitMQNotifier) Close() error {
	errs := make([]error, 0, len(n.closers))
	for _, c := range n.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}
