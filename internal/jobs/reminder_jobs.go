package jobs

import (
	"context"
	"time"

	"meetingdesk-backend/internal/domain"
	"meetingdesk-backend/internal/logger"
	"meetingdesk-backend/internal/utils"
)

// SendPendingReminders emails each approver a digest of the booking
// requests whose track is still pending and whose date falls within the
// configured lookahead window. It reads state only; the approval workflow
// itself is untouched.
func (jr *JobRunner) SendPendingReminders() {
	jr.runWithRecovery("SendPendingReminders", func() {
		ctx := context.Background()
		jr.remindTrack(ctx, domain.TrackZoom, domain.RoleZoomApprover)
		jr.remindTrack(ctx, domain.TrackRoom, domain.RoleRoomApprover)
	})
}

func (jr *JobRunner) remindTrack(ctx context.Context, track domain.Track, role domain.Role) {
	today := time.Now()
	filter := domain.RequestFilter{
		PendingTrack: track,
		DateFrom:     today.Format(utils.DateLayout),
		DateTo:       today.AddDate(0, 0, jr.config.Scheduler.ReminderLookaheadDays).Format(utils.DateLayout),
	}

	pending, err := jr.store.RequestRepository.List(ctx, filter)
	if err != nil {
		logger.Error("Failed to list pending requests", "track", track, "error", err)
		return
	}
	if len(pending) == 0 {
		return
	}

	approvers, err := jr.store.UserRepository.ListByRole(ctx, role)
	if err != nil {
		logger.Error("Failed to list approvers", "role", role, "error", err)
		return
	}

	sent := 0
	for _, approver := range approvers {
		if err := jr.email.SendPendingDigest(ctx, approver.Email, track, len(pending)); err != nil {
			logger.Error("Failed to send pending digest", "to", approver.Email, "error", err)
			continue
		}
		sent++
	}
	logger.Info("Pending reminders sent", "track", track, "pending", len(pending), "recipients", sent)
}
