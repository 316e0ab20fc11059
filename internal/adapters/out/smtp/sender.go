// Package smtp delivers notifications by email.
package smtp

import (
	"bytes"
	"context"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/FIT-dev-AI/Delivery-app/internal/core/ports"
	"github.com/FIT-dev-AI/Delivery-app/internal/pkg/errs"
)

// Config holds SMTP server settings. An empty Host selects LogSender.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	From     string
}

// sendFunc matches smtp.SendMail.
type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// Sender implements ports.NotificationSender over SMTP with PLAIN auth.
type Sender struct {
	cfg  Config
	send sendFunc
	now  func() time.Time
}

func NewSender(cfg Config) *Sender {
	return &Sender{cfg: cfg, send: smtp.SendMail, now: time.Now}
}

// Send runs the SMTP exchange in the background and gives up when ctx ends.
func (s *Sender) Send(ctx context.Context, n ports.Notification) error {
	var auth smtp.Auth
	if s.cfg.User != "" {
		auth = smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)
	}

	done := make(chan error, 1)
	go func() {
		done <- s.send(net.JoinHostPort(s.cfg.Host, s.cfg.Port), auth, s.cfg.From, []string{n.To}, s.message(n))
	}()

	select {
	case err := <-done:
		if err != nil {
			return errs.NewInfrastructureError("send email", err)
		}
		return nil
	case <-ctx.Done():
		return errs.NewInfrastructureError("send email", ctx.Err())
	}
}

func (s *Sender) message(n ports.Notification) []byte {
	var b bytes.Buffer
	fmt.Fprintf(&b, "From: %s\r\n", s.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", n.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", n.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", s.now().Format(time.RFC1123Z))
	fmt.Fprintf(&b, "Message-ID: <%s@%s>\r\n", uuid.NewString(), s.cfg.Host)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	b.WriteString("\r\n")
	b.WriteString(n.Body)
	return b.Bytes()
}

// LogSender writes notifications to the log instead of sending them.
// Used when no SMTP host is configured.
type LogSender struct {
	logger *logrus.Entry
}

func NewLogSender(logger *logrus.Entry) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(_ context.Context, n ports.Notification) error {
	s.logger.WithFields(logrus.Fields{
		"to":      n.To,
		"subject": n.Subject,
	}).Info("Email delivery disabled, notification logged")
	return nil
}
