// Package queue declares the delivery queue topology and the publish/consume
// plumbing between the scheduler's fire handler and the gateway send
// workers.
package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/dimasprtm/wa-reminder/internal/scheduler"
)

const (
	ExchangeName   = "reminder-exchange"
	MainQueueName  = "reminder-delivery"
	RetryQueueName = "reminder-delivery-retry"
	DLQName        = "reminder-delivery-dlq"
	RoutingKey     = "deliver"
)

// DeliveryQueue wraps the publisher and consumer bound to the delivery
// topology: a durable main queue dead-lettering into the DLQ, plus a retry
// queue that TTLs messages back into the main queue.
type DeliveryQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer
}

// NewDeliveryQueue declares the exchange and queues on the given channel.
func NewDeliveryQueue(ch *rabbitmq.Channel) (*DeliveryQueue, error) {
	exchange := rabbitmq.NewExchange(ExchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(DLQName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	retryArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": MainQueueName,
		"x-message-ttl":             int32(5000),
	}

	_, err = qm.DeclareQueue(RetryQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    retryArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare retry queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": DLQName,
	}

	mainQ, err := qm.DeclareQueue(MainQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &DeliveryQueue{Publisher: pub, Consumer: cons}, nil
}

// Publish enqueues a delivery job.
func (q *DeliveryQueue) Publish(d scheduler.Delivery, strategy retry.Strategy) error {
	body, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to marshal delivery: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, RoutingKey, "application/json", strategy)
}

// Consume decodes delivery jobs into out until the context is done.
func (q *DeliveryQueue) Consume(ctx context.Context, out chan<- scheduler.Delivery, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-msgChan:
				if !ok {
					return
				}

				var d scheduler.Delivery
				if err := json.Unmarshal(m, &d); err != nil {
					zlog.Logger.Error().Err(err).Msg("failed to unmarshal delivery")
					continue
				}

				out <- d
			}
		}
	}()

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}

// Dispatcher adapts the queue to the scheduler's fire-and-forget dispatch
// contract.
type Dispatcher struct {
	queue    *DeliveryQueue
	strategy retry.Strategy
}

// NewDispatcher creates a queue-backed dispatcher.
func NewDispatcher(q *DeliveryQueue, strategy retry.Strategy) *Dispatcher {
	return &Dispatcher{queue: q, strategy: strategy}
}

// Dispatch publishes the delivery job.
func (d *Dispatcher) Dispatch(_ context.Context, job scheduler.Delivery) error {
	return d.queue.Publish(job, d.strategy)
}
