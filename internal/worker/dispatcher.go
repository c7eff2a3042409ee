// Package worker runs the delivery worker pool consuming jobs from the
// delivery queue and posting them to the messaging gateway.
package worker

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/dimasprtm/wa-reminder/internal/model"
	"github.com/dimasprtm/wa-reminder/internal/scheduler"
)

type deliveryQueue interface {
	Consume(ctx context.Context, out chan<- scheduler.Delivery, strategy retry.Strategy) error
}

type deliveryHandler interface {
	HandleDelivery(d scheduler.Delivery, strategy retry.Strategy)
}

type reminderService interface {
	GetReminderStatusByID(ctx context.Context, strategy retry.Strategy, id uuid.UUID) (model.Status, error)
}

// Dispatcher consumes delivery jobs and hands them to the delivery handler.
// A job whose reminder was cancelled between fire and consumption is
// skipped: the persisted status is re-checked before the send.
type Dispatcher struct {
	queue   deliveryQueue
	handler deliveryHandler
	service reminderService
}

// NewDispatcher creates a delivery dispatcher pool.
func NewDispatcher(q deliveryQueue, h deliveryHandler, s reminderService) *Dispatcher {
	return &Dispatcher{
		queue:   q,
		handler: h,
		service: s,
	}
}

// Run consumes jobs with workerCount goroutines until ctx is done.
func (d *Dispatcher) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	var wg sync.WaitGroup
	jobChan := make(chan scheduler.Delivery, workerCount*10)

	go func() {
		if err := d.queue.Consume(ctx, jobChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume deliveries")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("delivery-worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("delivery-worker-%d shutting down", id)
					return
				case job, ok := <-jobChan:
					if !ok {
						zlog.Logger.Printf("delivery-worker-%d channel closed, shutting down", id)
						return
					}

					status, err := d.service.GetReminderStatusByID(ctx, strategy, job.ReminderID)
					if err != nil {
						zlog.Logger.Printf("failed to get status for %s: %v", job.ReminderID, err)
						continue
					}

					if status == model.StatusCancelled {
						zlog.Logger.Printf("reminder %s cancelled, skipping delivery", job.ReminderID)
						continue
					}

					d.handler.HandleDelivery(job, strategy)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("delivery dispatcher stopped")
}
