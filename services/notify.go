package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/jfalcomer/devblog-backend/models"
)

const resendEndpoint = "https://api.resend.com/emails"

// NotifyConfig carries the credentials for the contact-form notification
// channels. Any channel with missing credentials is silently disabled.
type NotifyConfig struct {
	EmailAPIKey string
	EmailFrom   string
	EmailTo     []string

	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string
	TwilioTo         string
}

// resendEmailRequest represents the request payload for the Resend API
type resendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text,omitempty"`
}

// ContactNotifier fans a stored contact message out to the site owner.
// Delivery is best effort: failures are logged, never surfaced, and the
// submission itself is already persisted by the time this runs.
type ContactNotifier struct {
	cfg        NotifyConfig
	logger     zerolog.Logger
	httpClient *http.Client
	smsClient  *twilio.RestClient
}

func NewContactNotifier(cfg NotifyConfig) *ContactNotifier {
	n := &ContactNotifier{
		cfg:        cfg,
		logger:     log.With().Str("service", "contactNotifier").Logger(),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	if cfg.TwilioAccountSID != "" && cfg.TwilioAuthToken != "" {
		n.smsClient = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.TwilioAccountSID,
			Password: cfg.TwilioAuthToken,
		})
	}
	return n
}

// Notify delivers the message over every configured channel
func (n *ContactNotifier) Notify(ctx context.Context, message *models.Message) {
	if n == nil {
		return
	}
	if n.cfg.EmailAPIKey != "" && len(n.cfg.EmailTo) > 0 {
		if err := n.sendEmail(ctx, message); err != nil {
			n.logger.Error().Err(err).Msg("failed to deliver contact email")
		}
	}
	if n.smsClient != nil && n.cfg.TwilioTo != "" {
		if err := n.sendSMS(message); err != nil {
			n.logger.Error().Err(err).Msg("failed to deliver contact SMS")
		}
	}
}

func (n *ContactNotifier) sendEmail(ctx context.Context, message *models.Message) error {
	subject := fmt.Sprintf("New contact message: %s", message.Subject)
	body := fmt.Sprintf("From: %s <%s> (%s)\n\n%s", message.Name, message.Email, message.Phone, message.Body)

	payload, err := json.Marshal(resendEmailRequest{
		From:    n.cfg.EmailFrom,
		To:      n.cfg.EmailTo,
		Subject: subject,
		Text:    body,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEndpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+n.cfg.EmailAPIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("email API returned %d: %s", resp.StatusCode, respBody)
	}
	return nil
}

func (n *ContactNotifier) sendSMS(message *models.Message) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(n.cfg.TwilioTo)
	params.SetFrom(n.cfg.TwilioFrom)
	params.SetBody(fmt.Sprintf("New contact message from %s (%s)", message.Name, message.Email))

	_, err := n.smsClient.Api.CreateMessage(params)
	return err
}
