package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uaetax/tax-calculator/internal/calculation"
	"github.com/uaetax/tax-calculator/internal/domain"
	"github.com/uaetax/tax-calculator/internal/notify"
)

func newTestRouter(t *testing.T, dispatcher *notify.Dispatcher) http.Handler {
	t.Helper()
	return NewRouter(Config{
		Engine:     calculation.NewEngine(),
		Dispatcher: dispatcher,
	})
}

func postJSON(t *testing.T, router http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func fullCorporateInputs() map[string]any {
	return map[string]any{
		"profit_before_tax":     500000,
		"addback_entertainment": 0,
		"addback_fines":         0,
		"addback_donations":     0,
		"addback_other":         0,
		"tp_upward_adjustment":  0,
		"interest_disallowed":   0,
		"exempt_income":         0,
		"loss_brought_forward":  0,
	}
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "ok", body["status"])
}

func TestCalculateCorporateMainland(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := postJSON(t, router, "/v1/calculations/corporate-tax", map[string]any{
		"regime": "mainland",
		"inputs": fullCorporateInputs(),
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Result *domain.CorporateTaxResult `json:"result"`
		Report *domain.Report             `json:"report"`
	}
	decodeBody(t, rec, &body)
	require.NotNil(t, body.Result)
	assert.True(t, body.Result.TotalTax.Equal(decimal.NewFromInt(11250)),
		"expected 11250, got %s", body.Result.TotalTax)
	require.NotNil(t, body.Report)
	assert.Equal(t, "corporate-tax", body.Report.Calculator)
}

func TestCalculateCorporateMissingFields(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := postJSON(t, router, "/v1/calculations/corporate-tax", map[string]any{
		"regime": "mainland",
		"inputs": map[string]any{"profit_before_tax": 500000},
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Code          string   `json:"code"`
		MissingFields []string `json:"missing_fields"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "MISSING_REQUIRED_FIELDS", body.Code)
	assert.Contains(t, body.MissingFields, domain.CorporateFieldLabels.AddBackEntertainment)
	assert.NotContains(t, body.MissingFields, domain.CorporateFieldLabels.ProfitBeforeTax)
}

func TestCalculateCorporateQFZP(t *testing.T) {
	router := newTestRouter(t, nil)

	inputs := fullCorporateInputs()
	inputs["fz_total_revenue"] = 10000000
	inputs["fz_non_qualifying_revenue"] = 400000
	inputs["fz_non_qualifying_income"] = 200000

	rec := postJSON(t, router, "/v1/calculations/corporate-tax", map[string]any{
		"regime": "qfzp",
		"inputs": inputs,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Result    *domain.CorporateTaxResult `json:"result"`
		DeMinimis *domain.DeMinimisResult    `json:"de_minimis"`
	}
	decodeBody(t, rec, &body)
	require.NotNil(t, body.DeMinimis)
	assert.True(t, body.DeMinimis.Met)
	require.NotNil(t, body.Result.QFZP)
	assert.True(t, body.Result.TotalTax.Equal(decimal.NewFromInt(18000)))
}

func TestCalculateCorporateRejectsUnknownRegime(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := postJSON(t, router, "/v1/calculations/corporate-tax", map[string]any{
		"regime": "offshore",
		"inputs": fullCorporateInputs(),
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRunDeMinimisEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := postJSON(t, router, "/v1/calculations/corporate-tax/de-minimis", map[string]any{
		"inputs": map[string]any{
			"fz_total_revenue":          10000000,
			"fz_non_qualifying_revenue": 600000,
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Result domain.DeMinimisResult `json:"result"`
	}
	decodeBody(t, rec, &body)
	assert.False(t, body.Result.Met)
	assert.True(t, body.Result.Threshold.Equal(decimal.NewFromInt(500000)))
}

func TestCalculateTransferPricing(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := postJSON(t, router, "/v1/calculations/transfer-pricing", map[string]any{
		"entity_type": "mainland",
		"transactions": []map[string]any{
			{"type": "expense", "description": "Management fee", "amount": 100, "arm_length": 85},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Result *domain.TransferPricingResult `json:"result"`
	}
	decodeBody(t, rec, &body)
	require.NotNil(t, body.Result)
	assert.True(t, body.Result.TotalAddBack.Equal(decimal.NewFromInt(15)))
	assert.True(t, body.Result.CTImpact.Equal(decimal.NewFromFloat(1.35)))
}

func TestCalculateVATMissingFields(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := postJSON(t, router, "/v1/calculations/vat", map[string]any{
		"standard_rated_sales": 1000000,
	})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Code          string   `json:"code"`
		MissingFields []string `json:"missing_fields"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, "MISSING_REQUIRED_FIELDS", body.Code)
	assert.Contains(t, body.MissingFields, domain.VATFieldLabels.ZeroRatedSales)
}

func TestCalculateExcise(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := postJSON(t, router, "/v1/calculations/excise", map[string]any{
		"items": []map[string]any{
			{"category": "tobacco", "quantity": 10, "base_price": 20},
		},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Result *domain.ExciseResult `json:"result"`
	}
	decodeBody(t, rec, &body)
	require.NotNil(t, body.Result)
	assert.True(t, body.Result.TotalExciseDue.Equal(decimal.NewFromInt(200)))
}

func TestCalculateExciseUnknownCategory(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := postJSON(t, router, "/v1/calculations/excise", map[string]any{
		"items": []map[string]any{
			{"category": "perfume", "quantity": 1, "base_price": 10},
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeadsRouteAbsentWithoutDispatcher(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := postJSON(t, router, "/v1/leads", map[string]any{"name": "Test"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type stubSender struct {
	err error
}

func (s stubSender) Send(ctx context.Context, account notify.Account, params map[string]string) error {
	return s.err
}

func leadDispatcher(err error) *notify.Dispatcher {
	account := notify.Account{ServiceID: "svc", TemplateID: "tpl", PublicKey: "pk"}
	return notify.NewDispatcher(stubSender{err: err}, account, notify.Account{}, notify.Account{}, nil)
}

func TestSubmitLead(t *testing.T) {
	router := newTestRouter(t, leadDispatcher(nil))

	rec := postJSON(t, router, "/v1/leads", map[string]any{
		"name":    "Test User",
		"email":   "user@example.com",
		"message": "Need help with VAT registration.",
	})
	require.Equal(t, http.StatusAccepted, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "sent", body["status"])
	assert.NotEmpty(t, body["reference_id"])
}

func TestSubmitLeadMissingFields(t *testing.T) {
	router := newTestRouter(t, leadDispatcher(nil))

	rec := postJSON(t, router, "/v1/leads", map[string]any{"name": "Test User"})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		MissingFields []string `json:"missing_fields"`
	}
	decodeBody(t, rec, &body)
	assert.Equal(t, []string{"Email", "Message"}, body.MissingFields)
}

func TestSubmitLeadRelayFailure(t *testing.T) {
	router := newTestRouter(t, leadDispatcher(errors.New("relay down")))

	rec := postJSON(t, router, "/v1/leads", map[string]any{
		"name":    "Test User",
		"email":   "user@example.com",
		"message": "Need help.",
	})
	require.Equal(t, http.StatusBadGateway, rec.Code)

	var body map[string]string
	decodeBody(t, rec, &body)
	assert.Equal(t, "SEND_FAILED", body["code"])
}
