package marketplace

import "errors"

// TxPhase is the explicit two-phase state of a purchase transaction step
type TxPhase string

const (
	TxIdle      TxPhase = "idle"
	TxRequested TxPhase = "requested"
	TxConfirmed TxPhase = "confirmed"
	TxFailed    TxPhase = "failed"
)

var (
	ErrTxInFlight   = errors.New("a step is already in flight")
	ErrTxNotPending = errors.New("no step in flight to resolve")
	ErrTxTerminal   = errors.New("transaction has already failed")
)

// TransactionStepper drives a multi-step purchase flow. Each step is
// requested, then confirmed or failed by the external collaborator; failure
// is terminal so the UI never hangs on a stuck step.
type TransactionStepper struct {
	Steps   []string `json:"steps"`
	Current int      `json:"current"`
	Phase   TxPhase  `json:"phase"`
	Err     string   `json:"error,omitempty"`
}

// NewTransactionStepper creates a stepper over the given ordered steps
func NewTransactionStepper(steps []string) TransactionStepper {
	return TransactionStepper{Steps: steps, Phase: TxIdle}
}

// RequestStep marks the current step as in flight
func (s TransactionStepper) RequestStep() (TransactionStepper, error) {
	if s.Phase == TxFailed {
		return s, ErrTxTerminal
	}
	if s.Phase == TxRequested {
		return s, ErrTxInFlight
	}
	if s.Done() {
		return s, errors.New("all steps already confirmed")
	}
	next := s
	next.Phase = TxRequested
	return next, nil
}

// ConfirmStep resolves the in-flight step and advances
func (s TransactionStepper) ConfirmStep() (TransactionStepper, error) {
	if s.Phase != TxRequested {
		return s, ErrTxNotPending
	}
	next := s
	next.Current++
	if next.Done() {
		next.Phase = TxConfirmed
	} else {
		next.Phase = TxIdle
	}
	return next, nil
}

// FailStep resolves the in-flight step as a terminal error
func (s TransactionStepper) FailStep(reason string) (TransactionStepper, error) {
	if s.Phase != TxRequested {
		return s, ErrTxNotPending
	}
	next := s
	next.Phase = TxFailed
	next.Err = reason
	return next, nil
}

// Done reports whether every step has been confirmed
func (s TransactionStepper) Done() bool {
	return s.Current >= len(s.Steps)
}

// ListingStep is one stage of the listing creation wizard
type ListingStep int

const (
	ListingStepDetails ListingStep = iota
	ListingStepPricing
	ListingStepReview
	ListingStepSubmitted
)

// NextListingStep advances the wizard, capping at the submitted stage
func NextListingStep(step ListingStep) ListingStep {
	if step >= ListingStepSubmitted {
		return ListingStepSubmitted
	}
	return step + 1
}

// PrevListingStep walks the wizard back, flooring at the first stage. The
// submitted stage is terminal.
func PrevListingStep(step ListingStep) ListingStep {
	if step == ListingStepSubmitted {
		return ListingStepSubmitted
	}
	if step <= ListingStepDetails {
		return ListingStepDetails
	}
	return step - 1
}
