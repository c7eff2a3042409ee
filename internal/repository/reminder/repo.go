package reminder

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/dimasprtm/wa-reminder/internal/model"
)

var (
	ErrReminderNotFound = errors.New("reminder not found")
)

const columns = `id, owner_id, recipient_id, title, due_at, repeat, repeat_interval, repeat_unit, formatted_message, status, created_at, updated_at`

// Filter narrows ListByOwner results.
type Filter struct {
	Status model.Status
	From   time.Time
	To     time.Time
	Limit  int
	Offset int
}

// Criteria selects scheduled reminders for bulk cancellation.
type Criteria struct {
	IDs           []uuid.UUID
	Keyword       string
	RecurringOnly bool
}

// Repository provides access to the reminders table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new reminder repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// CreateReminder inserts a new reminder and returns its generated ID.
func (r *Repository) CreateReminder(ctx context.Context, rem model.Reminder) (uuid.UUID, error) {
	query := `
		INSERT INTO reminders (
		    owner_id, recipient_id, title, due_at, repeat, repeat_interval, repeat_unit, formatted_message, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id;
    `

	var id uuid.UUID
	err := r.db.QueryRowContext(
		ctx, query,
		rem.OwnerID, rem.RecipientID, rem.Title, rem.DueAt, rem.Repeat,
		rem.RepeatInterval, rem.RepeatUnit, nullString(rem.FormattedMessage), rem.Status,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create reminder: %w", err)
	}

	return id, nil
}

// GetReminderByID retrieves a single reminder by its ID.
func (r *Repository) GetReminderByID(ctx context.Context, id uuid.UUID) (model.Reminder, error) {
	query := fmt.Sprintf(`SELECT %s FROM reminders WHERE id = $1;`, columns)

	rem, err := scanReminder(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Reminder{}, ErrReminderNotFound
		}

		return model.Reminder{}, fmt.Errorf("failed to get reminder: %w", err)
	}

	return rem, nil
}

// GetReminderStatusByID retrieves only the status of a reminder.
func (r *Repository) GetReminderStatusByID(ctx context.Context, id uuid.UUID) (model.Status, error) {
	query := `SELECT status FROM reminders WHERE id = $1;`

	var status model.Status
	err := r.db.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrReminderNotFound
		}

		return "", fmt.Errorf("failed to get reminder status: %w", err)
	}

	return status, nil
}

// UpdateReminder persists the mutable fields of a scheduled reminder.
func (r *Repository) UpdateReminder(ctx context.Context, rem model.Reminder) error {
	query := `
		UPDATE reminders
		SET title = $1, due_at = $2, repeat = $3, repeat_interval = $4,
		    repeat_unit = $5, formatted_message = $6, status = $7, updated_at = now()
		WHERE id = $8;
    `

	res, err := r.db.ExecContext(
		ctx, query,
		rem.Title, rem.DueAt, rem.Repeat, rem.RepeatInterval, rem.RepeatUnit,
		nullString(rem.FormattedMessage), rem.Status, rem.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update reminder: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrReminderNotFound
	}

	return nil
}

// UpdateDueAt advances the due instant of a still-scheduled reminder.
func (r *Repository) UpdateDueAt(ctx context.Context, id uuid.UUID, dueAt time.Time) error {
	query := `
		UPDATE reminders
		SET due_at = $1, updated_at = now()
		WHERE id = $2 AND status = 'scheduled';
    `

	res, err := r.db.ExecContext(ctx, query, dueAt, id)
	if err != nil {
		return fmt.Errorf("failed to update due_at: %w", err)
	}

	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrReminderNotFound
	}

	return nil
}

// MarkSent transitions a scheduled reminder to sent. A reminder that was
// cancelled concurrently is left untouched; sent never overwrites a
// terminal status.
func (r *Repository) MarkSent(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE reminders
		SET status = 'sent', updated_at = now()
		WHERE id = $1 AND status = 'scheduled';
    `

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}

	return nil
}

// MarkCancelled transitions a scheduled reminder to cancelled. It reports
// whether a row actually changed; cancelling an already-terminal reminder
// is a no-op, not an error.
func (r *Repository) MarkCancelled(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE reminders
		SET status = 'cancelled', updated_at = now()
		WHERE id = $1 AND status = 'scheduled';
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to cancel reminder: %w", err)
	}

	rows, _ := res.RowsAffected()
	return rows > 0, nil
}

// ListByOwner retrieves the owner's reminders matching the filter, ordered
// by due_at ascending.
func (r *Repository) ListByOwner(ctx context.Context, ownerID uuid.UUID, f Filter) ([]model.Reminder, error) {
	var (
		conds = []string{"owner_id = $1"}
		args  = []interface{}{ownerID}
	)

	if f.Status != "" {
		args = append(args, f.Status)
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}
	if !f.From.IsZero() {
		args = append(args, f.From)
		conds = append(conds, fmt.Sprintf("due_at >= $%d", len(args)))
	}
	if !f.To.IsZero() {
		args = append(args, f.To)
		conds = append(conds, fmt.Sprintf("due_at <= $%d", len(args)))
	}

	query := fmt.Sprintf(
		`SELECT %s FROM reminders WHERE %s ORDER BY due_at ASC`,
		columns, strings.Join(conds, " AND "),
	)

	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if f.Offset > 0 {
		args = append(args, f.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	return r.queryReminders(ctx, query+";", args...)
}

// ListScheduledByOwner retrieves the owner's scheduled reminders ordered by
// due_at ascending.
func (r *Repository) ListScheduledByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Reminder, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM reminders
		WHERE owner_id = $1 AND status = 'scheduled'
		ORDER BY due_at ASC;
    `, columns)

	return r.queryReminders(ctx, query, ownerID)
}

// ListScheduled retrieves every scheduled reminder in the system. Used by
// the recovery loader at process start.
func (r *Repository) ListScheduled(ctx context.Context) ([]model.Reminder, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM reminders
		WHERE status = 'scheduled'
		ORDER BY due_at ASC;
    `, columns)

	return r.queryReminders(ctx, query)
}

// FindScheduled selects the owner's scheduled reminders matching the bulk
// cancellation criteria. An empty result is success, not an error.
func (r *Repository) FindScheduled(ctx context.Context, ownerID uuid.UUID, c Criteria) ([]model.Reminder, error) {
	var (
		conds = []string{"owner_id = $1", "status = 'scheduled'"}
		args  = []interface{}{ownerID}
	)

	if len(c.IDs) > 0 {
		args = append(args, pq.Array(c.IDs))
		conds = append(conds, fmt.Sprintf("id = ANY($%d)", len(args)))
	}
	if c.Keyword != "" {
		args = append(args, "%"+c.Keyword+"%")
		conds = append(conds, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if c.RecurringOnly {
		conds = append(conds, "repeat <> 'none'")
	}

	query := fmt.Sprintf(
		`SELECT %s FROM reminders WHERE %s ORDER BY due_at ASC;`,
		columns, strings.Join(conds, " AND "),
	)

	return r.queryReminders(ctx, query, args...)
}

func (r *Repository) queryReminders(ctx context.Context, query string, args ...interface{}) ([]model.Reminder, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reminders: %w", err)
	}
	defer rows.Close()

	var reminders []model.Reminder
	for rows.Next() {
		rem, err := scanReminder(rows)
		if err != nil {
			return nil, err
		}

		reminders = append(reminders, rem)
	}

	return reminders, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReminder(row rowScanner) (model.Reminder, error) {
	var (
		rem       model.Reminder
		recipient uuid.NullUUID
		interval  sql.NullInt64
		unit      sql.NullString
		formatted sql.NullString
	)

	err := row.Scan(
		&rem.ID, &rem.OwnerID, &recipient, &rem.Title, &rem.DueAt, &rem.Repeat,
		&interval, &unit, &formatted, &rem.Status, &rem.CreatedAt, &rem.UpdatedAt,
	)
	if err != nil {
		return model.Reminder{}, err
	}

	if recipient.Valid {
		id := recipient.UUID
		rem.RecipientID = &id
	}
	if interval.Valid {
		v := int(interval.Int64)
		rem.RepeatInterval = &v
	}
	if unit.Valid {
		u := model.RepeatUnit(unit.String)
		rem.RepeatUnit = &u
	}
	rem.FormattedMessage = formatted.String
	rem.DueAt = rem.DueAt.UTC()

	return rem, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
