package notifier

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"time"

	"github.com/DeepakUp9/linkedin-system-sub001/internal/userdirectory"
	"github.com/DeepakUp9/linkedin-system-sub001/pkg/models"
)

// UserLookup resolves user profiles for enrichment and address resolution.
type UserLookup interface {
	GetUserByID(ctx context.Context, id int64) (*userdirectory.User, error)
}

// EmailSender sends one rendered email.
type EmailSender interface {
	Send(to, subject, body string) error
}

// EmailStrategy delivers notifications over email. The recipient address comes
// from the user directory; a failed lookup marks the record FAILED without a
// retry, a failed send marks it FAILED with the retry count incremented so the
// retry sweep picks it up.
type EmailStrategy struct {
	Store  *Store
	Users  UserLookup
	Sender EmailSender
}

// Deliver resolves the address, renders the message and sends it.
func (s *EmailStrategy) Deliver(ctx context.Context, n *models.Notification) {
	user, err := s.Users.GetUserByID(ctx, n.RecipientID)
	if err != nil || user.Email == "" {
		log.Printf("[Email] Address lookup failed: %v notification_id=%d recipient_id=%d", err, n.ID, n.RecipientID)
		s.fail(n, "address not found", n.RetryCount)
		return
	}

	body := fmt.Sprintf("Hi %s,\r\n\r\n%s\r\n", user.DisplayName, n.Message)
	if err := s.Sender.Send(user.Email, n.Title, body); err != nil {
		log.Printf("[Email] Send failed: %v notification_id=%d", err, n.ID)
		s.fail(n, err.Error(), n.RetryCount+1)
		return
	}

	if err := s.Store.UpdateDelivery(n.ID, models.NotificationSent, "", n.RetryCount); err != nil {
		log.Printf("[Email] Error recording sent status: %v notification_id=%d", err, n.ID)
		return
	}
	n.Status = models.NotificationSent
}

func (s *EmailStrategy) fail(n *models.Notification, reason string, retryCount int) {
	if err := s.Store.UpdateDelivery(n.ID, models.NotificationFailed, reason, retryCount); err != nil {
		log.Printf("[Email] Error recording failure: %v notification_id=%d", err, n.ID)
		return
	}
	n.Status = models.NotificationFailed
	n.ErrorMessage = reason
	n.RetryCount = retryCount
}

// Channel reports EMAIL.
func (s *EmailStrategy) Channel() models.Channel { return models.ChannelEmail }

// Priority reports 3.
func (s *EmailStrategy) Priority() int { return 3 }

// SMTPSender sends mail through a plain SMTP relay with a bounded dial
// timeout so a hung server surfaces as a delivery failure, not a stall.
type SMTPSender struct {
	Addr        string // host:port
	From        string
	DialTimeout time.Duration
}

// Send delivers one message.
func (s *SMTPSender) Send(to, subject, body string) error {
	conn, err := net.DialTimeout("tcp", s.Addr, s.DialTimeout)
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	host, _, _ := net.SplitHostPort(s.Addr)
	client, err := smtp.NewClient(conn, host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer client.Close()

	if err := client.Mail(s.From); err != nil {
		return err
	}
	if err := client.Rcpt(to); err != nil {
		return err
	}
	w, err := client.Data()
	if err != nil {
		return err
	}
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", s.From, to, subject, body)
	if _, err := w.Write([]byte(msg)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return client.Quit()
}
