package mailer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnabled(t *testing.T) {
	assert.False(t, NewSMTPSender(Config{}).Enabled())
	assert.True(t, NewSMTPSender(Config{Host: "smtp.example.org"}).Enabled())
}

func TestSendReportWithoutConfiguration(t *testing.T) {
	s := NewSMTPSender(Config{From: "reports@teamlens.local"})
	err := s.SendReport(context.Background(), "dana@example.org", "subject", []byte("<html></html>"))
	assert.Error(t, err)
}

func TestDefaultPort(t *testing.T) {
	s := NewSMTPSender(Config{Host: "smtp.example.org"})
	assert.Equal(t, 587, s.config.Port)
}
