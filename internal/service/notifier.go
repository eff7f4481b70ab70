package service

import (
	"context"
	"fmt"
	"html"
	"strings"

	"hostel-ledger-backend/internal/config"
	"hostel-ledger-backend/internal/domain"
	"hostel-ledger-backend/internal/logger"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"gopkg.in/gomail.v2"
)

// NewNotifier builds the notifier selected by cfg.Provider.
func NewNotifier(cfg config.NotifyConfig) (Notifier, error) {
	switch cfg.Provider {
	case "smtp":
		return NewSMTPNotifier(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, cfg.From, cfg.OperatorEmail), nil
	case "sendgrid":
		return NewSendGridNotifier(cfg.SendGrid.APIKey, cfg.From, cfg.FromName, cfg.OperatorEmail, cfg.OperatorName), nil
	case "log", "":
		return NewLogNotifier(), nil
	}
	return nil, fmt.Errorf("unknown notify provider %q", cfg.Provider)
}

// composeDigest renders the subject, plain text and HTML bodies of a digest.
func composeDigest(d DuesDigest) (subject, text, htmlBody string) {
	subject = fmt.Sprintf("Dues pending for %s", d.Month.Label())

	var tb, hb strings.Builder
	fmt.Fprintf(&tb, "Dues pending for %s\n", d.Month.Label())
	fmt.Fprintf(&hb, "<h2>Dues pending for %s</h2>", html.EscapeString(d.Month.Label()))

	section := func(title string, tenants []domain.Tenant) {
		fmt.Fprintf(&tb, "\n%s (%d)\n", title, len(tenants))
		fmt.Fprintf(&hb, "<h3>%s (%d)</h3>", title, len(tenants))
		if len(tenants) == 0 {
			tb.WriteString("  none\n")
			hb.WriteString("<p>none</p>")
			return
		}
		hb.WriteString("<ul>")
		for _, t := range tenants {
			line := t.Name
			if t.RoomName != "" {
				line += ", room " + t.RoomName
			}
			line += ", " + t.Phone
			fmt.Fprintf(&tb, "  - %s\n", line)
			fmt.Fprintf(&hb, "<li>%s</li>", html.EscapeString(line))
		}
		hb.WriteString("</ul>")
	}
	section("Rent", d.PendingRent)
	section("Mess", d.PendingMess)

	return subject, tb.String(), hb.String()
}

type smtpNotifier struct {
	dialer *gomail.Dialer
	from   string
	to     string
	send   func(m *gomail.Message) error
}

func NewSMTPNotifier(host string, port int, username, password, from, to string) Notifier {
	n := &smtpNotifier{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
		to:     to,
	}
	n.send = func(m *gomail.Message) error { return n.dialer.DialAndSend(m) }
	return n
}

func (n *smtpNotifier) SendDuesDigest(ctx context.Context, d DuesDigest) error {
	subject, text, htmlBody := composeDigest(d)

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", n.to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", text)
	m.AddAlternative("text/html", htmlBody)

	logger.ExternalServiceCall("smtp", "SendDuesDigest", "to", n.to, "month", d.Month.String())
	err := n.send(m)
	logger.ExternalServiceResult("smtp", "SendDuesDigest", err)
	if err != nil {
		return fmt.Errorf("failed to send dues digest via gomail: %w", err)
	}
	return nil
}

type sendGridClient interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

type sendGridNotifier struct {
	client    sendGridClient
	fromEmail string
	fromName  string
	toEmail   string
	toName    string
}

func NewSendGridNotifier(apiKey, fromEmail, fromName, toEmail, toName string) Notifier {
	return &sendGridNotifier{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		toEmail:   toEmail,
		toName:    toName,
	}
}

func (n *sendGridNotifier) SendDuesDigest(ctx context.Context, d DuesDigest) error {
	subject, text, htmlBody := composeDigest(d)
	from := mail.NewEmail(n.fromName, n.fromEmail)
	to := mail.NewEmail(n.toName, n.toEmail)
	message := mail.NewSingleEmail(from, subject, to, text, htmlBody)

	logger.ExternalServiceCall("sendgrid", "SendDuesDigest", "to", n.toEmail, "month", d.Month.String())
	response, err := n.client.Send(message)
	if err == nil && response.StatusCode >= 400 {
		err = fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	logger.ExternalServiceResult("sendgrid", "SendDuesDigest", err)
	if err != nil {
		return fmt.Errorf("failed to send dues digest: %w", err)
	}
	return nil
}

// logNotifier writes digests to the application log instead of mailing them.
type logNotifier struct{}

func NewLogNotifier() Notifier {
	return logNotifier{}
}

func (logNotifier) SendDuesDigest(ctx context.Context, d DuesDigest) error {
	subject, text, _ := composeDigest(d)
	logger.WithComponent("notifier").Info(subject,
		"month", d.Month.String(),
		"pending_rent", len(d.PendingRent),
		"pending_mess", len(d.PendingMess),
		"body", text)
	return nil
}
