package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"meetingdesk-backend/internal/domain"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func trackLabel(track domain.Track) string {
	if track == domain.TrackRoom {
		return "meeting room"
	}
	return "Zoom meeting"
}

func (s *emailService) SendRequestSubmitted(ctx context.Context, to, contactName, title, date, startTime, endTime string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour booking request %q for %s %s-%s has been submitted and is awaiting approval.\n\nBest regards,\nThe MeetingDesk Team",
		contactName, title, date, startTime, endTime)
	return s.send(to, "Booking request submitted", body)
}

func (s *emailService) SendTrackApproved(ctx context.Context, to, title string, track domain.Track) error {
	body := fmt.Sprintf("Hello,\n\nThe %s for your booking request %q has been approved.\n\nBest regards,\nThe MeetingDesk Team",
		trackLabel(track), title)
	return s.send(to, "Booking request update", body)
}

func (s *emailService) SendTrackRejected(ctx context.Context, to, title string, track domain.Track, reason string) error {
	body := fmt.Sprintf("Hello,\n\nThe %s for your booking request %q has been rejected.\n\nReason: %s\n\nBest regards,\nThe MeetingDesk Team",
		trackLabel(track), title, reason)
	return s.send(to, "Booking request update", body)
}

func (s *emailService) SendRequestApproved(ctx context.Context, to, title, date string) error {
	body := fmt.Sprintf("Hello,\n\nYour booking request %q for %s is fully approved. All requested resources are reserved.\n\nBest regards,\nThe MeetingDesk Team",
		title, date)
	return s.send(to, "Booking request approved", body)
}

func (s *emailService) SendPendingDigest(ctx context.Context, to string, track domain.Track, count int) error {
	body := fmt.Sprintf("Hello,\n\nThere are %d booking requests with a pending %s approval for the coming days. Please review them.\n\nBest regards,\nThe MeetingDesk Team",
		count, track)
	return s.send(to, "Pending booking approvals", body)
}
