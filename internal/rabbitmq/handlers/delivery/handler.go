// Package delivery handles consumed delivery jobs: the transport leg that
// posts a reminder message to the messaging gateway.
package delivery

import (
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/dimasprtm/wa-reminder/internal/scheduler"
)

// Sender is the gateway client used to deliver a message.
type Sender interface {
	Send(to, text string, reminderID uuid.UUID) error
}

// Handler delivers a single job to the gateway, retrying transient
// transport errors with backoff. A job that exhausts its attempts is
// logged and dropped; there is no second delivery attempt for that
// occurrence.
type Handler struct {
	sender Sender
}

// NewHandler creates a delivery handler.
func NewHandler(sender Sender) *Handler {
	return &Handler{sender: sender}
}

// HandleDelivery posts the job to the gateway.
func (h *Handler) HandleDelivery(d scheduler.Delivery, strategy retry.Strategy) {
	currentDelay := strategy.Delay

	for attempt := 1; attempt <= strategy.Attempts; attempt++ {
		err := h.sender.Send(d.To, d.Text, d.ReminderID)
		if err == nil {
			zlog.Logger.Printf("reminder %s delivered to %s", d.ReminderID, d.To)
			return
		}

		zlog.Logger.Printf("failed to deliver reminder %s: %v, retry %d/%d",
			d.ReminderID, err, attempt, strategy.Attempts,
		)

		// No backoff after the last attempt; the job is dropped, not retried.
		if attempt == strategy.Attempts {
			break
		}

		time.Sleep(currentDelay)
		currentDelay = time.Duration(float64(currentDelay) * strategy.Backoff)
	}

	zlog.Logger.Printf("reminder %s dropped after %d attempts", d.ReminderID, strategy.Attempts)
}
