package server

import (
	"net/http"

	"github.com/uaetax/tax-calculator/internal/calculation"
	"github.com/uaetax/tax-calculator/internal/domain"
	"github.com/uaetax/tax-calculator/internal/notify"
	"github.com/uaetax/tax-calculator/internal/output"
)

// CalculationHandler serves the calculator endpoints. Every computation
// is stateless: the full input set travels with the request and the full
// breakdown travels back.
type CalculationHandler struct {
	Engine *calculation.Engine
}

// NewCalculationHandler creates a handler bound to an engine.
func NewCalculationHandler(engine *calculation.Engine) *CalculationHandler {
	return &CalculationHandler{Engine: engine}
}

type corporateRequest struct {
	Regime domain.Regime            `json:"regime"`
	Inputs domain.CorporateTaxInput `json:"inputs"`
}

type corporateResponse struct {
	Result    *domain.CorporateTaxResult `json:"result"`
	DeMinimis *domain.DeMinimisResult    `json:"de_minimis,omitempty"`
	Report    *domain.Report             `json:"report"`
}

// CalculateCorporate handles POST /v1/calculations/corporate-tax.
func (h *CalculationHandler) CalculateCorporate(w http.ResponseWriter, r *http.Request) {
	var req corporateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if req.Regime == "" {
		req.Regime = domain.RegimeMainland
	}
	if !req.Regime.Valid() {
		writeError(w, http.StatusBadRequest, "INVALID_REGIME", "regime must be one of mainland, qfzp, non_qfzp")
		return
	}

	result, deMinimis, err := h.Engine.CalculateCorporate(req.Regime, req.Inputs)
	if err != nil {
		validationErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, corporateResponse{
		Result:    result,
		DeMinimis: deMinimis,
		Report:    output.BuildCorporateReport(result, deMinimis),
	})
}

type deMinimisRequest struct {
	Inputs domain.CorporateTaxInput `json:"inputs"`
}

// RunDeMinimis handles POST /v1/calculations/corporate-tax/de-minimis.
func (h *CalculationHandler) RunDeMinimis(w http.ResponseWriter, r *http.Request) {
	var req deMinimisRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	result, err := h.Engine.Corporate.ComputeDeMinimis(req.Inputs)
	if err != nil {
		validationErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"result": result,
		"report": output.BuildDeMinimisReport(result),
	})
}

// CalculateTransferPricing handles POST /v1/calculations/transfer-pricing.
func (h *CalculationHandler) CalculateTransferPricing(w http.ResponseWriter, r *http.Request) {
	var req domain.TransferPricingInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}
	if req.EntityType == "" {
		req.EntityType = domain.EntityMainland
	}

	result, err := h.Engine.TransferPricing.Compute(req)
	if err != nil {
		validationErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"result": result,
		"report": output.BuildTransferPricingReport(result),
	})
}

// CalculateVAT handles POST /v1/calculations/vat.
func (h *CalculationHandler) CalculateVAT(w http.ResponseWriter, r *http.Request) {
	var req domain.VATInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	result, err := h.Engine.VAT.Compute(req)
	if err != nil {
		validationErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"result": result,
		"report": output.BuildVATReport(result),
	})
}

// CalculateExcise handles POST /v1/calculations/excise.
func (h *CalculationHandler) CalculateExcise(w http.ResponseWriter, r *http.Request) {
	var req domain.ExciseInput
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	result, err := h.Engine.Excise.Compute(req)
	if err != nil {
		validationErrorToHTTP(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"result": result,
		"report": output.BuildExciseReport(result),
	})
}

// LeadHandler serves the lead-capture endpoint.
type LeadHandler struct {
	Dispatcher *notify.Dispatcher
}

// NewLeadHandler creates a handler bound to a dispatcher.
func NewLeadHandler(dispatcher *notify.Dispatcher) *LeadHandler {
	return &LeadHandler{Dispatcher: dispatcher}
}

type leadRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// SubmitLead handles POST /v1/leads. A relay outage surfaces as 502 so
// the caller can offer a retry; it never crashes the page.
func (lh *LeadHandler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	var req leadRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", err.Error())
		return
	}

	lead := domain.NewLead(req.Name, req.Email, req.Message)
	lead.Phone = req.Phone
	lead.Company = req.Company
	lead.Service = req.Service

	if err := lh.Dispatcher.DispatchLead(r.Context(), lead); err != nil {
		if _, ok := calculation.IsMissingFields(err); ok {
			validationErrorToHTTP(w, err)
			return
		}
		writeError(w, http.StatusBadGateway, "SEND_FAILED", "we could not send your message, please try again")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{
		"status":       "sent",
		"reference_id": lead.ReferenceID.String(),
	})
}
