package dto

// CreateRequest is the JSON body for creating a reminder. DueAt accepts an
// absolute datetime or a free-text expression such as "in 10 minutes".
type CreateRequest struct {
	Title          string  `json:"title" validate:"required"`
	DueAt          string  `json:"due_at" validate:"required"`
	Repeat         string  `json:"repeat,omitempty" validate:"omitempty,oneof=none daily weekly monthly custom"`
	RepeatInterval *int    `json:"repeat_interval,omitempty" validate:"omitempty,min=1"`
	RepeatUnit     *string `json:"repeat_unit,omitempty" validate:"omitempty,oneof=minutes hours days"`
	RecipientID    *string `json:"recipient_id,omitempty" validate:"omitempty,uuid"`
}

// UpdateRequest is the JSON body for a partial reminder update. Absent
// fields keep their current values; status may only become "cancelled".
type UpdateRequest struct {
	Title          *string `json:"title,omitempty"`
	DueAt          *string `json:"due_at,omitempty"`
	Repeat         *string `json:"repeat,omitempty" validate:"omitempty,oneof=none daily weekly monthly custom"`
	RepeatInterval *int    `json:"repeat_interval,omitempty" validate:"omitempty,min=1"`
	RepeatUnit     *string `json:"repeat_unit,omitempty" validate:"omitempty,oneof=minutes hours days"`
	Status         *string `json:"status,omitempty" validate:"omitempty,oneof=cancelled"`
}

// CancelByIDsRequest names the reminders to cancel in one call.
type CancelByIDsRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,uuid"`
}

// CancelByKeywordRequest cancels every scheduled reminder whose title
// contains the keyword.
type CancelByKeywordRequest struct {
	Keyword string `json:"keyword" validate:"required"`
}

// InboundRequest is the webhook payload for a message received on the
// messaging channel.
type InboundRequest struct {
	From string `json:"from" validate:"required"`
	Text string `json:"text" validate:"required"`
}
