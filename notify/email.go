package notify

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"ticketing-webapp/config"
)

// inlineCID is the content-id the default ticket template references its QR
// image by.
const inlineCID = "qrcode"

type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
	FromName string
}

func SMTPConfigFromEnv() SMTPConfig {
	return SMTPConfig{
		Host:     config.GetEnv("SMTP_HOST", "smtp.gmail.com"),
		Port:     config.GetEnv("SMTP_PORT", "587"),
		Username: config.GetEnv("SMTP_USERNAME", ""),
		Password: config.GetEnv("SMTP_PASSWORD", ""),
		From:     config.GetEnv("SMTP_FROM", "noreply@ticketing.local"),
		FromName: config.GetEnv("SMTP_FROM_NAME", "Ticketing Service"),
	}
}

type TicketMail struct {
	To       string
	Subject  string
	HTMLBody string
	// InlinePNG, when set, is attached as an inline image part the HTML body
	// can reference via cid:qrcode.
	InlinePNG []byte
}

type Sender interface {
	Send(mail TicketMail) error
}

type SMTPSender struct {
	cfg     SMTPConfig
	devMode bool
}

// NewSMTPSender builds a sender; without credentials it runs in dev mode and
// logs instead of delivering.
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{
		cfg:     cfg,
		devMode: cfg.Username == "" || cfg.Password == "",
	}
}

func (s *SMTPSender) Send(mail TicketMail) error {
	if s.devMode {
		log.Printf("email (dev mode, not sent) to=%v subject=%v", mail.To, mail.Subject)
		return nil
	}

	addr := fmt.Sprintf("%s:%s", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	return smtp.SendMail(addr, auth, s.cfg.From, []string{mail.To}, s.buildMessage(mail))
}

func (s *SMTPSender) buildMessage(mail TicketMail) []byte {
	var body bytes.Buffer
	boundary := fmt.Sprintf("boundary_%d", time.Now().UnixNano())

	body.WriteString(fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From))
	body.WriteString(fmt.Sprintf("To: %s\r\n", mail.To))
	body.WriteString(fmt.Sprintf("Subject: %s\r\n", mail.Subject))
	body.WriteString("MIME-Version: 1.0\r\n")
	body.WriteString(fmt.Sprintf("Content-Type: multipart/related; boundary=%s\r\n\r\n", boundary))

	body.WriteString(fmt.Sprintf("--%s\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s\r\n", boundary, mail.HTMLBody))

	if len(mail.InlinePNG) > 0 {
		body.WriteString(fmt.Sprintf("--%s\r\n", boundary))
		body.WriteString("Content-Type: image/png; name=\"ticket-qr.png\"\r\n")
		body.WriteString("Content-Transfer-Encoding: base64\r\n")
		body.WriteString(fmt.Sprintf("Content-ID: <%s>\r\n", inlineCID))
		body.WriteString("Content-Disposition: inline; filename=\"ticket-qr.png\"\r\n\r\n")
		body.WriteString(base64.StdEncoding.EncodeToString(mail.InlinePNG))
		body.WriteString("\r\n")
	}

	body.WriteString(fmt.Sprintf("--%s--\r\n", boundary))
	return body.Bytes()
}

// TicketEmailHTML renders the default confirmation body. The QR image is
// referenced by content-id and must travel as an inline part.
func TicketEmailHTML(firstName string, eventTitle string, ticketNumber int) string {
	return fmt.Sprintf(`<!DOCTYPE html><html><body style="margin:0;padding:0;font-family:Arial,sans-serif;background-color:#f5f5f5;">
<table width="100%%" border="0" cellspacing="0" cellpadding="0" bgcolor="#f5f5f5"><tr><td align="center" style="padding:40px 0;">
<table width="600" border="0" cellspacing="0" cellpadding="0" bgcolor="#ffffff" style="border-radius:16px;overflow:hidden;">
<tr><td height="8" bgcolor="#2D6CDF" style="line-height:8px;font-size:8px;">&nbsp;</td></tr>
<tr><td style="padding:35px 40px;"><h1 style="margin:0;color:#2D6CDF;font-size:24px;">Your ticket is confirmed</h1></td></tr>
<tr><td style="padding:10px 40px 40px 40px;">
<p>Hello <strong>%s</strong>, your booking for <strong>%s</strong> has been received.</p>
<table width="100%%" border="0" cellpadding="15" bgcolor="#fafafa" style="margin-bottom:20px;border-left:4px solid #2D6CDF;">
<tr><td><small style="color:#999999;text-transform:uppercase;">Ticket number</small><br/><strong style="font-size:22px;">#%d</strong></td></tr>
</table>
<p>Present this QR code at the entrance:</p>
<img src="cid:%s" alt="ticket QR code" width="256" height="256"/>
</td></tr></table></td></tr></table></body></html>`,
		firstName, eventTitle, ticketNumber, inlineCID)
}

// SubstituteQRCode drops a data-URI QR image into caller-supplied HTML in
// place of the {{qrcode}} placeholder.
func SubstituteQRCode(html string, dataURI string) string {
	return strings.ReplaceAll(html, "{{qrcode}}", dataURI)
}
