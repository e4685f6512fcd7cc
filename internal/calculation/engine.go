package calculation

import (
	"github.com/uaetax/tax-calculator/internal/domain"
)

// Engine bundles all four tax calculators behind one entry point. The
// calculators themselves are stateless; the engine only carries their
// rate configuration and a logger.
type Engine struct {
	Corporate       *CorporateTaxCalculator
	TransferPricing *TransferPricingCalculator
	VAT             *VATCalculator
	Excise          *ExciseCalculator
	Logger          Logger
}

// NewEngine creates an engine with the statutory default rates.
func NewEngine() *Engine {
	return NewEngineWithConfig(domain.DefaultRates())
}

// NewEngineWithConfig creates an engine with configurable rates.
func NewEngineWithConfig(rates domain.RatesConfig) *Engine {
	return &Engine{
		Corporate:       NewCorporateTaxCalculatorWithConfig(rates.CorporateTax),
		TransferPricing: NewTransferPricingCalculatorWithConfig(rates.TransferPricing),
		VAT:             NewVATCalculatorWithConfig(rates.VAT),
		Excise:          NewExciseCalculatorWithConfig(rates.Excise),
		Logger:          NopLogger{},
	}
}

// SetLogger sets the logger for the engine. A nil logger restores the
// no-op default.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// NewCorporateSession opens a fresh corporate tax session bound to this
// engine's rates.
func (e *Engine) NewCorporateSession() *CorporateSession {
	return NewCorporateSession(e.Corporate)
}

// CalculateCorporate runs the full corporate liability flow for a
// one-shot input set (CLI and API callers), applying the same routing the
// interactive session uses. On the QFZP path the de-minimis test is run
// as part of the request since a one-shot caller holds no prior verdict.
func (e *Engine) CalculateCorporate(regime domain.Regime, in domain.CorporateTaxInput) (*domain.CorporateTaxResult, *domain.DeMinimisResult, error) {
	session := e.NewCorporateSession()
	if err := session.SetRegime(regime); err != nil {
		return nil, nil, err
	}
	session.input = in

	var deMinimis *domain.DeMinimisResult
	if regime == domain.RegimeQFZP {
		result, err := session.RunDeMinimisTest()
		if err != nil {
			return nil, nil, err
		}
		deMinimis = &result
		e.Logger.Debugf("de-minimis: threshold=%s non-qualifying=%s met=%t",
			result.Threshold.StringFixed(2), result.NonQualifyingRevenue.StringFixed(2), result.Met)
	}

	liability, err := session.CalculateLiability()
	if err != nil {
		return nil, deMinimis, err
	}
	return liability, deMinimis, nil
}
