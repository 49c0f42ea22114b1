package notification

import (
	"bytes"
	"html/template"
	"log"
	"strings"

	"warehouse-app/config"
	"warehouse-app/models"

	"gopkg.in/gomail.v2"
)

// Notifier is told about every posted outbound batch. Implementations must
// not block the request and must not fail it.
type Notifier interface {
	DispatchPosted(note models.DispatchNote)
}

type NoopNotifier struct{}

func (NoopNotifier) DispatchPosted(models.DispatchNote) {}

type MailNotifier struct {
	dialer *gomail.Dialer
	sender string
	to     []string
}

func NewMailNotifier(host string, port int, username, password, sender string, to []string) *MailNotifier {
	if sender == "" {
		sender = username
	}
	return &MailNotifier{
		dialer: gomail.NewDialer(host, port, username, password),
		sender: sender,
		to:     to,
	}
}

// NewFromConfig returns a mail notifier when SMTP_HOST and NOTIFY_EMAILS
// are both set, otherwise a no-op.
func NewFromConfig() Notifier {
	if config.SMTPHost == "" || len(config.NotifyEmails) == 0 {
		return NoopNotifier{}
	}
	return NewMailNotifier(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword, config.SMTPSender, config.NotifyEmails)
}

func (n *MailNotifier) DispatchPosted(note models.DispatchNote) {
	go func() {
		if err := n.Send(note); err != nil {
			log.Printf("Gagal mengirim email surat jalan %s: %v", note.Reference, err)
			return
		}
		log.Printf("Email surat jalan %s terkirim ke: %s", note.Reference, strings.Join(n.to, ", "))
	}()
}

func (n *MailNotifier) Send(note models.DispatchNote) error {
	msg, err := n.Message(note)
	if err != nil {
		return err
	}
	return n.dialer.DialAndSend(msg)
}

func (n *MailNotifier) Message(note models.DispatchNote) (*gomail.Message, error) {
	body, err := renderDispatchBody(note)
	if err != nil {
		return nil, err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", n.sender)
	msg.SetHeader("To", n.to...)
	msg.SetHeader("Subject", "Surat Jalan "+note.Reference)
	msg.SetBody("text/html", body)
	return msg, nil
}

var dispatchTemplate = template.Must(template.New("dispatch").Parse(`<html>
	<body>
		<h3>Surat Jalan {{.Reference}}</h3>
		<p>Tanggal: <strong>{{.Date}}</strong></p>
		<p>Penerima: <strong>{{.RecipientName}}</strong></p>
		<p>Keperluan: {{.Purpose}}</p>
		<table border="1" cellpadding="4" cellspacing="0">
			<tr><th>No</th><th>Material Number</th><th>Material Name</th><th>Volume</th><th>Unit</th></tr>
			{{range .Lines}}<tr><td>{{.No}}</td><td>{{.MaterialNumber}}</td><td>{{.MaterialName}}</td><td>{{.VolumeText}}</td><td>{{.Unit}}</td></tr>
			{{end}}
		</table>
		<p>This is an auto-generated email. Please do not reply to this email or its recipients.</p>
	</body>
</html>`))

func renderDispatchBody(note models.DispatchNote) (string, error) {
	var body bytes.Buffer
	if err := dispatchTemplate.Execute(&body, note); err != nil {
		return "", err
	}
	return body.String(), nil
}
