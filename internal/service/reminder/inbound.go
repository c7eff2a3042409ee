package reminder

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/dimasprtm/wa-reminder/internal/model"
	"github.com/dimasprtm/wa-reminder/internal/nlu"
	"github.com/dimasprtm/wa-reminder/internal/recipient"
	"github.com/dimasprtm/wa-reminder/internal/recurrence"
)

const fallbackTitle = "Reminder"

var (
	timeWordsRe = regexp.MustCompile(`(?i)\b(?:in|dalam|pada|jam|pukul|at|besok|tomorrow|nanti|\d+\s*(?:m(?:in(?:ute)?s?|enit)?|h(?:ou)?rs?|jam|d(?:ays?)?|hari))\b`)
	triggerRe   = regexp.MustCompile(`(?i)\b(?:ingatkan|ingetin|remind(?:er)?|reminder|me|aku|saya|untuk|to|buat|tolong|please)\b`)
	spacesRe    = regexp.MustCompile(`\s+`)
)

// HandleInbound processes one free-text message from the messaging channel.
// It never fails the webhook: every branch, including extraction errors,
// resolves to a reply string for the sender.
func (s *Service) HandleInbound(ctx context.Context, strategy retry.Strategy, from, text string) string {
	owner, err := s.users.GetByPhone(ctx, from)
	if err != nil {
		zlog.Logger.Printf("inbound from unregistered number %s: %v", from, err)
		return "Your number is not registered yet. Ask an admin to add you first 🙏"
	}

	ex, err := s.nlu.Extract(ctx, text)
	if err != nil {
		zlog.Logger.Error().Err(err).Msg("nlu extraction failed, falling back to heuristics")
		ex = nlu.Extraction{Intent: IntentFor(text)}
	}

	if ex.Intent == nlu.IntentCancel {
		return s.handleCancelIntent(ctx, strategy, owner)
	}

	return s.handleCreateIntent(ctx, strategy, owner, text, ex)
}

// IntentFor is the heuristic fallback used when extraction is unavailable.
func IntentFor(text string) string {
	lower := strings.ToLower(text)
	for _, kw := range []string{"cancel", "batal", "stop", "hapus"} {
		if strings.Contains(lower, kw) {
			return nlu.IntentCancel
		}
	}
	return nlu.IntentCreate
}

func (s *Service) handleCancelIntent(ctx context.Context, strategy retry.Strategy, owner model.User) string {
	cancelled, err := s.CancelRecurring(ctx, strategy, owner.ID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("owner_id", owner.ID.String()).Msg("failed to cancel recurring reminders")
		return "Sorry, something went wrong while cancelling. Please try again 🙏"
	}

	if len(cancelled) == 0 {
		return "You have no active recurring reminders to cancel 😊"
	}

	reply, err := s.nlu.GenerateReply(ctx, "cancelled", map[string]interface{}{
		"count": len(cancelled),
		"name":  owner.DisplayName(),
	})
	if err != nil || reply == "" {
		return fmt.Sprintf("✅ Done! %d recurring reminder(s) cancelled.", len(cancelled))
	}
	return reply
}

func (s *Service) handleCreateIntent(ctx context.Context, strategy retry.Strategy, owner model.User, text string, ex nlu.Extraction) string {
	title := ex.Title
	if title == "" {
		title = titleFromText(text)
	}

	timeText := ex.TimeText
	if timeText == "" {
		timeText = text
	}
	dueAt := s.times.Resolve(timeText, ex.DueAtLocal, time.Now())

	repeat, interval, unit := normalizeRecurrence(ex)

	targets := s.resolveTargets(ctx, owner, ex)

	var created []model.Reminder
	for _, target := range targets {
		rem := model.Reminder{
			OwnerID:          owner.ID,
			Title:            title,
			DueAt:            dueAt,
			Repeat:           repeat,
			RepeatInterval:   interval,
			RepeatUnit:       unit,
			FormattedMessage: s.messageFor(target, title, dueAt, ex.FormattedMessage),
			Status:           model.StatusScheduled,
		}
		if target.ID != owner.ID {
			id := target.ID
			rem.RecipientID = &id
		}

		saved, err := s.persistAndArm(ctx, strategy, rem)
		if err != nil {
			zlog.Logger.Error().Err(err).Str("owner_id", owner.ID.String()).Msg("failed to create reminder from inbound message")
			continue
		}
		created = append(created, saved)
	}

	if len(created) == 0 {
		return "Sorry, I couldn't set that reminder. Please try again 🙏"
	}

	return s.confirmReply(ctx, owner, created[0], len(targets))
}

// resolveTargets maps extraction hints to recipients. Every username hint
// is resolved independently so one message can fan out to several friends;
// with no usable hints the owner is the sole target.
func (s *Service) resolveTargets(ctx context.Context, owner model.User, ex nlu.Extraction) []model.User {
	var targets []model.User
	seen := map[string]bool{}

	add := func(u model.User) {
		if u.ID == owner.ID || seen[u.ID.String()] {
			return
		}
		seen[u.ID.String()] = true
		targets = append(targets, u)
	}

	for _, username := range ex.RecipientUsernames {
		add(s.recips.Resolve(ctx, owner, recipient.Hints{Usernames: []string{username}}))
	}

	if len(targets) == 0 && ex.RecipientPhone != "" {
		add(s.recips.Resolve(ctx, owner, recipient.Hints{Phone: ex.RecipientPhone}))
	}

	if len(targets) == 0 {
		targets = append(targets, owner)
	}
	return targets
}

func (s *Service) confirmReply(ctx context.Context, owner model.User, rem model.Reminder, targetCount int) string {
	local := rem.DueAt.In(s.loc)

	reply, err := s.nlu.GenerateReply(ctx, "confirm", map[string]interface{}{
		"name":       owner.DisplayName(),
		"title":      rem.Title,
		"due_at":     local.Format("Mon, 02 Jan 2006 15:04 MST"),
		"repeat":     string(rem.Repeat),
		"recipients": targetCount,
	})
	if err != nil || reply == "" {
		return fmt.Sprintf("✅ Reminder *%s* set for %s!", rem.Title, local.Format("Mon, 02 Jan 2006 15:04 MST"))
	}
	return reply
}

// messageFor picks the delivery text: the extracted formatted message when
// present, otherwise a synthesized greeting in the recipient's name.
func (s *Service) messageFor(target model.User, title string, dueAt time.Time, formatted string) string {
	if formatted != "" {
		return formatted
	}
	local := dueAt.In(s.loc)
	return fmt.Sprintf("Hey %s 👋, time for *%s* at %s! Don't forget 😊",
		target.DisplayName(), title, local.Format("15:04 MST"))
}

func normalizeRecurrence(ex nlu.Extraction) (model.Repeat, *int, *model.RepeatUnit) {
	repeat := model.Repeat(ex.Repeat)
	switch repeat {
	case model.RepeatDaily, model.RepeatWeekly, model.RepeatMonthly:
		return repeat, nil, nil
	case model.RepeatCustom:
		interval := ex.RepeatInterval
		unit := model.RepeatUnit(ex.RepeatUnit)
		if err := recurrence.Validate(repeat, &interval, &unit); err != nil {
			// A half-formed custom rule degrades to one-off rather
			// than failing the whole message.
			return model.RepeatNone, nil, nil
		}
		return repeat, &interval, &unit
	default:
		return model.RepeatNone, nil, nil
	}
}

// titleFromText strips trigger and time phrases from the raw message and
// title-cases what remains.
func titleFromText(text string) string {
	cleaned := timeWordsRe.ReplaceAllString(text, " ")
	cleaned = triggerRe.ReplaceAllString(cleaned, " ")
	cleaned = strings.Trim(spacesRe.ReplaceAllString(cleaned, " "), " .,!?")
	if cleaned == "" {
		return fallbackTitle
	}

	words := strings.Fields(cleaned)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
