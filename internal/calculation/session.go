package calculation

import (
	"fmt"

	"github.com/uaetax/tax-calculator/internal/domain"
	"github.com/uaetax/tax-calculator/pkg/money"
)

// CorporateField identifies one entry in the corporate tax input set.
type CorporateField string

const (
	FieldProfitBeforeTax        CorporateField = "profit_before_tax"
	FieldAddBackEntertainment   CorporateField = "addback_entertainment"
	FieldAddBackFines           CorporateField = "addback_fines"
	FieldAddBackDonations       CorporateField = "addback_donations"
	FieldAddBackOther           CorporateField = "addback_other"
	FieldTPUpwardAdjustment     CorporateField = "tp_upward_adjustment"
	FieldInterestDisallowed     CorporateField = "interest_disallowed"
	FieldExemptIncome           CorporateField = "exempt_income"
	FieldLossBroughtForward     CorporateField = "loss_brought_forward"
	FieldFZTotalRevenue         CorporateField = "fz_total_revenue"
	FieldFZNonQualifyingRevenue CorporateField = "fz_non_qualifying_revenue"
	FieldFZNonQualifyingIncome  CorporateField = "fz_non_qualifying_income"
)

// CorporateSession owns one calculator instance's view state: the input
// set, the regime selection and the de-minimis verdict. It is not safe for
// concurrent use; each session has exactly one writer.
type CorporateSession struct {
	calc *CorporateTaxCalculator

	input           domain.CorporateTaxInput
	regime          domain.Regime
	deMinimisStatus domain.DeMinimisStatus
	hasCalculated   bool
}

// NewCorporateSession creates a session with every field blank, the
// mainland regime selected and the de-minimis test not yet run.
func NewCorporateSession(calc *CorporateTaxCalculator) *CorporateSession {
	if calc == nil {
		calc = NewCorporateTaxCalculator()
	}
	return &CorporateSession{
		calc:            calc,
		regime:          domain.RegimeMainland,
		deMinimisStatus: domain.DeMinimisNotTested,
	}
}

// Input returns a copy of the current input set.
func (s *CorporateSession) Input() domain.CorporateTaxInput { return s.input }

// Regime returns the current regime selection.
func (s *CorporateSession) Regime() domain.Regime { return s.regime }

// DeMinimisStatus returns the current de-minimis verdict.
func (s *CorporateSession) DeMinimisStatus() domain.DeMinimisStatus { return s.deMinimisStatus }

// HasCalculated reports whether a liability result is currently shown.
func (s *CorporateSession) HasCalculated() bool { return s.hasCalculated }

// SetRegime switches the computation path. Any prior de-minimis verdict
// and any displayed result are invalidated.
func (s *CorporateSession) SetRegime(r domain.Regime) error {
	if !r.Valid() {
		return fmt.Errorf("unknown regime %q", r)
	}
	s.regime = r
	s.deMinimisStatus = domain.DeMinimisNotTested
	s.hasCalculated = false
	return nil
}

// SetField replaces one field's value from raw text. Blank or non-numeric
// text clears the field. Editing either free-zone revenue field
// invalidates a prior de-minimis verdict, forcing an explicit re-run.
func (s *CorporateSession) SetField(field CorporateField, text string) error {
	value := money.ParseAmount(text)

	switch field {
	case FieldProfitBeforeTax:
		s.input.ProfitBeforeTax = value
	case FieldAddBackEntertainment:
		s.input.AddBackEntertainment = value
	case FieldAddBackFines:
		s.input.AddBackFines = value
	case FieldAddBackDonations:
		s.input.AddBackDonations = value
	case FieldAddBackOther:
		s.input.AddBackOther = value
	case FieldTPUpwardAdjustment:
		s.input.TPUpwardAdjustment = value
	case FieldInterestDisallowed:
		s.input.InterestDisallowed = value
	case FieldExemptIncome:
		s.input.ExemptIncome = value
	case FieldLossBroughtForward:
		s.input.LossBroughtForward = value
	case FieldFZTotalRevenue:
		s.input.FZTotalRevenue = value
		s.deMinimisStatus = domain.DeMinimisNotTested
	case FieldFZNonQualifyingRevenue:
		s.input.FZNonQualifyingRevenue = value
		s.deMinimisStatus = domain.DeMinimisNotTested
	case FieldFZNonQualifyingIncome:
		s.input.FZNonQualifyingIncome = value
	default:
		return fmt.Errorf("unknown corporate tax field %q", field)
	}
	return nil
}

// RunDeMinimisTest runs the free-zone ratio test as an explicit action.
// On a missing-fields failure the status stays NotTested.
func (s *CorporateSession) RunDeMinimisTest() (domain.DeMinimisResult, error) {
	result, err := s.calc.ComputeDeMinimis(s.input)
	if err != nil {
		s.deMinimisStatus = domain.DeMinimisNotTested
		return domain.DeMinimisResult{}, err
	}
	if result.Met {
		s.deMinimisStatus = domain.DeMinimisMet
	} else {
		s.deMinimisStatus = domain.DeMinimisBreached
	}
	return result, nil
}

// CalculateLiability routes the calculation according to the regime and
// de-minimis state, validating the required inputs for the chosen path.
// On any failure no result is shown and the prior display state is kept.
func (s *CorporateSession) CalculateLiability() (*domain.CorporateTaxResult, error) {
	if s.regime == domain.RegimeQFZP {
		switch s.deMinimisStatus {
		case domain.DeMinimisNotTested:
			return nil, ErrDeMinimisNotTested
		case domain.DeMinimisMet:
			if s.input.FZNonQualifyingIncome == nil {
				return nil, &MissingFieldsError{Fields: []string{domain.CorporateFieldLabels.FZNonQualifyingIncome}}
			}
			qfzp := s.calc.ComputeQFZPTax(*s.input.FZNonQualifyingIncome)
			s.hasCalculated = true
			return &domain.CorporateTaxResult{
				Regime:          s.regime,
				DeMinimisStatus: s.deMinimisStatus,
				QFZP:            &qfzp,
				TotalTax:        qfzp.TotalTax,
			}, nil
		case domain.DeMinimisBreached:
			// Breach is a routing decision, not a failure: fall through to
			// the standard regime with an explanatory note.
			result, err := s.calculateStandard()
			if err != nil {
				return nil, err
			}
			result.Note = "De-minimis threshold breached: QFZP status is lost and the standard corporate tax regime applies."
			return result, nil
		}
	}
	return s.calculateStandard()
}

func (s *CorporateSession) calculateStandard() (*domain.CorporateTaxResult, error) {
	if missing := missingStandardFields(s.input); len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	breakdown := s.calc.ComputeTaxableIncome(s.input)
	standard := s.calc.ComputeStandardTax(breakdown.TaxableIncome)
	s.hasCalculated = true
	return &domain.CorporateTaxResult{
		Regime:          s.regime,
		DeMinimisStatus: s.deMinimisStatus,
		Breakdown:       &breakdown,
		Standard:        &standard,
		TotalTax:        standard.TotalTax,
	}, nil
}
