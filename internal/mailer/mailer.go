package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/coursemart/coursemart/internal/config"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Sender delivers a single message. Split out so tests can swap SMTP for a
// recording fake.
type Sender interface {
	Send(to, subject, htmlBody string) error
}

type SMTPSender struct {
	host     string
	port     string
	from     string
	password string
}

func NewSMTPSender(cfg *config.Config) *SMTPSender {
	return &SMTPSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPFrom,
		password: cfg.SMTPPassword,
	}
}

func (s *SMTPSender) Send(to, subject, htmlBody string) error {
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Coursemart <%s>\r\n", s.from)
	msg += fmt.Sprintf("To: %s\r\n", to)
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", s.from, s.password, s.host)
	return smtp.SendMail(s.host+":"+s.port, auth, s.from, []string{to}, []byte(msg))
}

// Service queues mail on a worker pool. Sends are best-effort: failures are
// logged and never surface to the operation that triggered them.
type Service struct {
	sender     Sender
	workerPool WorkerPoolI
	enabled    bool
}

func New(cfg *config.Config) *Service {
	return &Service{
		sender:     NewSMTPSender(cfg),
		workerPool: NewWorkerPool(4),
		enabled:    cfg.SMTPHost != "",
	}
}

func (s *Service) Close() {
	s.workerPool.Close()
}

func (s *Service) enqueue(to, subject, body string) {
	if !s.enabled {
		zap.L().Debug("mail disabled, skipping send", zap.String("to", to), zap.String("subject", subject))
		return
	}
	err := s.workerPool.AddTask(context.Background(), func() error {
		if err := s.sender.Send(to, subject, body); err != nil {
			return fmt.Errorf("failed to send %q to %s: %w", subject, to, err)
		}
		return nil
	})
	if err != nil {
		zap.L().Error("can't enqueue mail", zap.Error(err))
	}
}

func (s *Service) SendEnrollmentApproved(email, courseTitle string) {
	s.enqueue(email, "Enrollment approved",
		wrap(fmt.Sprintf("Your enrollment in <b>%s</b> has been approved. The course is now available in your account.", courseTitle)))
}

func (s *Service) SendEnrollmentRejected(email, courseTitle string) {
	s.enqueue(email, "Enrollment rejected",
		wrap(fmt.Sprintf("Your enrollment request for <b>%s</b> was rejected. Contact support if you believe this is a mistake.", courseTitle)))
}

func (s *Service) SendWithdrawalApproved(email string, amount float64) {
	s.enqueue(email, "Withdrawal approved",
		wrap(fmt.Sprintf("Your withdrawal of %.2f has been approved and is being paid out.", amount)))
}

func (s *Service) SendWithdrawalRejected(email string, amount float64, notes string) {
	s.enqueue(email, "Withdrawal rejected",
		wrap(fmt.Sprintf("Your withdrawal of %.2f was rejected. Reason: %s", amount, notes)))
}

func (s *Service) SendReferralCommission(email string, amount float64) {
	s.enqueue(email, "Referral commission earned",
		wrap(fmt.Sprintf("A student you referred has enrolled. %.2f has been credited to your balance.", amount)))
}

// SendAdminAlert fans one message out to every admin.
func (s *Service) SendAdminAlert(emails []string, subject, text string) {
	if !s.enabled || len(emails) == 0 {
		return
	}
	body := wrap(text)
	var g errgroup.Group
	for _, email := range emails {
		email := email
		g.Go(func() error {
			return s.workerPool.AddTask(context.Background(), func() error {
				return s.sender.Send(email, subject, body)
			})
		})
	}
	if err := g.Wait(); err != nil {
		zap.L().Error("can't enqueue admin alert", zap.Error(err))
	}
}

func wrap(content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Helvetica, Arial, sans-serif; color: #1a1a2e;">
	<div style="max-width: 600px; margin: 0 auto; padding: 24px;">
		<h2>Coursemart</h2>
		<p>%s</p>
		<p style="color: #888; font-size: 12px;">This is an automated message, please do not reply.</p>
	</div>
</body>
</html>`, content)
}
