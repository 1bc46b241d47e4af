package email

import (
	"fmt"

	"gopkg.in/gomail.v2"

	sharedConfig "skymaint/internal/shared/config"
	"skymaint/internal/shared/services/markdown"
)

// SMTPEmailService sends operational notifications to the maintenance ops
// mailbox. Operator-entered text is rendered from markdown and sanitized
// before it reaches an HTML body.
type SMTPEmailService struct {
	config   sharedConfig.EmailConfig
	dialer   *gomail.Dialer
	markdown markdown.Service
}

func NewSMTPEmailService(config sharedConfig.EmailConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)

	return &SMTPEmailService{
		config:   config,
		dialer:   dialer,
		markdown: markdown.NewService(),
	}
}

func (s *SMTPEmailService) SendTicketOpened(number string, assetID uint, ticketType, priority string) error {
	subject := fmt.Sprintf("[%s] maintenance ticket opened", number)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Maintenance Ticket Opened</h2>
			<p>Ticket <strong>%s</strong> was opened for asset %d.</p>
			<p>Type: %s<br/>Priority: %s</p>
		</body>
		</html>
	`, number, assetID, ticketType, priority)

	plainBody := fmt.Sprintf(`
Maintenance Ticket Opened

Ticket %s was opened for asset %d.
Type: %s
Priority: %s
	`, number, assetID, ticketType, priority)

	return s.sendEmail(s.config.OpsAddress, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendTicketAssigned(number string, technicianID uint) error {
	subject := fmt.Sprintf("[%s] ticket assigned", number)

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket Assigned</h2>
			<p>Ticket <strong>%s</strong> was assigned to technician %d.</p>
		</body>
		</html>
	`, number, technicianID)

	plainBody := fmt.Sprintf(`
Ticket Assigned

Ticket %s was assigned to technician %d.
	`, number, technicianID)

	return s.sendEmail(s.config.OpsAddress, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) SendTicketClosed(number, closingNote string) error {
	subject := fmt.Sprintf("[%s] ticket closed", number)

	noteHTML, err := s.markdown.ToHTMLSanitized(closingNote)
	if err != nil {
		noteHTML = ""
	}

	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Ticket Closed</h2>
			<p>Ticket <strong>%s</strong> was closed. Usage counters were reset.</p>
			%s
		</body>
		</html>
	`, number, noteHTML)

	plainBody := fmt.Sprintf(`
Ticket Closed

Ticket %s was closed. Usage counters were reset.

%s
	`, number, closingNote)

	return s.sendEmail(s.config.OpsAddress, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	if to == "" {
		return fmt.Errorf("no recipient configured")
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
