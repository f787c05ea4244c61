package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDevModeSkipsDelivery(t *testing.T) {
	sender := NewSMTPSender(SMTPConfig{Host: "smtp.example.com", Port: "587"})
	assert.True(t, sender.devMode)

	err := sender.Send(TicketMail{To: "ada@example.com", Subject: "test", HTMLBody: "<p>hi</p>"})
	assert.NoError(t, err)
}

func TestBuildMessageInlinePart(t *testing.T) {
	sender := NewSMTPSender(SMTPConfig{
		Host: "smtp.example.com", Port: "587",
		Username: "user", Password: "pass",
		From: "noreply@example.com", FromName: "Ticketing",
	})

	msg := string(sender.buildMessage(TicketMail{
		To:        "ada@example.com",
		Subject:   "Your ticket",
		HTMLBody:  "<img src=\"cid:qrcode\"/>",
		InlinePNG: []byte{0x89, 'P', 'N', 'G'},
	}))

	assert.Contains(t, msg, "From: Ticketing <noreply@example.com>")
	assert.Contains(t, msg, "To: ada@example.com")
	assert.Contains(t, msg, "Subject: Your ticket")
	assert.Contains(t, msg, "Content-Type: multipart/related")
	assert.Contains(t, msg, "Content-ID: <qrcode>")
	assert.Contains(t, msg, "Content-Disposition: inline")
}

func TestBuildMessageWithoutInlinePart(t *testing.T) {
	sender := NewSMTPSender(SMTPConfig{
		Host: "smtp.example.com", Port: "587",
		Username: "user", Password: "pass",
		From: "noreply@example.com", FromName: "Ticketing",
	})

	msg := string(sender.buildMessage(TicketMail{
		To:       "ada@example.com",
		Subject:  "Your ticket",
		HTMLBody: "<p>hi</p>",
	}))

	assert.False(t, strings.Contains(msg, "Content-ID"))
}

func TestTicketEmailHTML(t *testing.T) {
	html := TicketEmailHTML("Ada", "Concert", 123456)
	assert.Contains(t, html, "Ada")
	assert.Contains(t, html, "Concert")
	assert.Contains(t, html, "#123456")
	assert.Contains(t, html, "cid:qrcode")
}

func TestSubstituteQRCode(t *testing.T) {
	html := SubstituteQRCode("<img src=\"{{qrcode}}\"/>", "data:image/png;base64,AAAA")
	assert.Equal(t, "<img src=\"data:image/png;base64,AAAA\"/>", html)
}
