// Package notify delivers lead-capture submissions through a third-party
// transactional email relay. The lead-notification send to the firm is
// the operation of record; the confirmation email back to the submitter
// is best-effort only.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/uaetax/tax-calculator/internal/calculation"
	"github.com/uaetax/tax-calculator/internal/domain"
)

// Account identifies one configured relay service account.
type Account struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
}

// Configured reports whether the account carries usable credentials.
func (a Account) Configured() bool {
	return a.ServiceID != "" && a.TemplateID != "" && a.PublicKey != ""
}

// Sender sends one templated email through a relay account. It may fail
// with a network or service error; callers own the retry policy.
type Sender interface {
	Send(ctx context.Context, account Account, params map[string]string) error
}

// RelayClient implements Sender against an EmailJS-compatible REST API.
type RelayClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewRelayClient creates a client for the given relay endpoint. A nil
// http.Client gets a default with a 10-second timeout.
func NewRelayClient(baseURL string, httpClient *http.Client) *RelayClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &RelayClient{BaseURL: baseURL, HTTPClient: httpClient}
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

// Send posts one templated email to the relay.
func (c *RelayClient) Send(ctx context.Context, account Account, params map[string]string) error {
	payload, err := json.Marshal(sendRequest{
		ServiceID:      account.ServiceID,
		TemplateID:     account.TemplateID,
		UserID:         account.PublicKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("marshal send request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/v1.0/email/send", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build send request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("relay send failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("relay send failed: status %d", resp.StatusCode)
	}
	return nil
}

// Dispatcher owns the delivery policy: primary account first, fallback
// account on failure, then a best-effort confirmation to the submitter.
type Dispatcher struct {
	Sender       Sender
	Primary      Account
	Fallback     Account
	Confirmation Account
	Logger       calculation.Logger
}

// NewDispatcher creates a dispatcher. A nil logger gets the no-op default.
func NewDispatcher(sender Sender, primary, fallback, confirmation Account, logger calculation.Logger) *Dispatcher {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Dispatcher{
		Sender:       sender,
		Primary:      primary,
		Fallback:     fallback,
		Confirmation: confirmation,
		Logger:       logger,
	}
}

// DispatcherFromEnv builds a dispatcher from environment credentials.
// The computation engines never read the environment; only this external
// collaborator does.
func DispatcherFromEnv(sender Sender, logger calculation.Logger) *Dispatcher {
	return NewDispatcher(sender,
		Account{
			ServiceID:  os.Getenv("EMAIL_RELAY_SERVICE_ID"),
			TemplateID: os.Getenv("EMAIL_RELAY_TEMPLATE_ID"),
			PublicKey:  os.Getenv("EMAIL_RELAY_PUBLIC_KEY"),
		},
		Account{
			ServiceID:  os.Getenv("EMAIL_RELAY_FALLBACK_SERVICE_ID"),
			TemplateID: os.Getenv("EMAIL_RELAY_FALLBACK_TEMPLATE_ID"),
			PublicKey:  os.Getenv("EMAIL_RELAY_FALLBACK_PUBLIC_KEY"),
		},
		Account{
			ServiceID:  os.Getenv("EMAIL_RELAY_SERVICE_ID"),
			TemplateID: os.Getenv("EMAIL_RELAY_CONFIRMATION_TEMPLATE_ID"),
			PublicKey:  os.Getenv("EMAIL_RELAY_PUBLIC_KEY"),
		},
		logger,
	)
}

// leadParams flattens a lead into relay template parameters.
func leadParams(lead domain.Lead) map[string]string {
	return map[string]string{
		"reference_id": lead.ReferenceID.String(),
		"name":         lead.Name,
		"email":        lead.Email,
		"phone":        lead.Phone,
		"company":      lead.Company,
		"service":      lead.Service,
		"message":      lead.Message,
	}
}

// DispatchLead delivers the lead notification, trying the fallback
// account if the primary send fails. The notification is attempted
// first; only after it succeeds is the confirmation attempted, and a
// confirmation failure is logged rather than returned.
func (d *Dispatcher) DispatchLead(ctx context.Context, lead domain.Lead) error {
	if missing := lead.MissingFields(); len(missing) > 0 {
		return &calculation.MissingFieldsError{Fields: missing}
	}
	if !d.Primary.Configured() {
		return fmt.Errorf("no email relay account configured")
	}

	params := leadParams(lead)
	err := d.Sender.Send(ctx, d.Primary, params)
	if err != nil {
		d.Logger.Warnf("primary lead notification failed for %s: %v", lead.ReferenceID, err)
		if !d.Fallback.Configured() {
			return fmt.Errorf("lead notification failed: %w", err)
		}
		if err := d.Sender.Send(ctx, d.Fallback, params); err != nil {
			return fmt.Errorf("lead notification failed on both accounts: %w", err)
		}
		d.Logger.Infof("lead %s delivered via fallback account", lead.ReferenceID)
	}

	if d.Confirmation.Configured() {
		if err := d.Sender.Send(ctx, d.Confirmation, params); err != nil {
			// Best-effort: the notification of record already succeeded.
			d.Logger.Warnf("confirmation email failed for %s: %v", lead.ReferenceID, err)
		}
	}
	return nil
}
