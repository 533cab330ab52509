package services

import (
	"context"
	"fmt"
	"html"

	"github.com/google/uuid"
	"github.com/h2grid/h2grid-api/internal/logger"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"
)

// emailAPI is the part of the resend client used here
type emailAPI interface {
	Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error)
}

// EmailService sends transactional email through Resend
type EmailService struct {
	emails    emailAPI
	logger    *zap.Logger
	fromEmail string
	fromName  string
}

// NewEmailService creates a Resend backed sender
func NewEmailService(apiKey, fromEmail, fromName string, log *zap.Logger) *EmailService {
	client := resend.NewClient(apiKey)
	return newEmailService(client.Emails, fromEmail, fromName, log)
}

func newEmailService(emails emailAPI, fromEmail, fromName string, log *zap.Logger) *EmailService {
	return &EmailService{
		emails:    emails,
		logger:    logger.OrNop(log),
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

// SendWelcomeEmail greets a newly registered user
func (s *EmailService) SendWelcomeEmail(ctx context.Context, toEmail, username string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	name := html.EscapeString(username)
	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail),
		To:      []string{toEmail},
		Subject: "Welcome to H2Grid",
		Html: fmt.Sprintf("<p>Hi %s,</p><p>Your H2Grid account is ready. "+
			"Sign in to plan and track your hydrogen projects.</p>", name),
		Text: fmt.Sprintf("Hi %s,\n\nYour H2Grid account is ready. "+
			"Sign in to plan and track your hydrogen projects.\n", username),
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
		},
		Tags: []resend.Tag{
			{Name: "category", Value: "welcome"},
		},
	}

	sent, err := s.emails.Send(params)
	if err != nil {
		s.logger.Error("failed to send welcome email",
			zap.Error(err),
			zap.String("to", toEmail))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("welcome email sent",
		zap.String("email_id", sent.Id),
		zap.String("to", toEmail))
	return nil
}
