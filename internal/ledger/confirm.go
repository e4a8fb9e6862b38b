package ledger

import "github.com/hrushi1881/fintrack/internal/models"

// Confirmer gates liability overpayments. When a requested payment exceeds
// the remaining balance the engine asks the confirmer whether to proceed
// with the clamped amount. A false answer aborts the whole action before
// anything is persisted.
type Confirmer interface {
	ConfirmOverpayment(liability models.Liability, requested models.Money) bool
}

// ConfirmerFunc adapts a plain function to the Confirmer interface.
type ConfirmerFunc func(liability models.Liability, requested models.Money) bool

// ConfirmOverpayment calls the wrapped function.
func (f ConfirmerFunc) ConfirmOverpayment(liability models.Liability, requested models.Money) bool {
	return f(liability, requested)
}

// DeclineOverpayments is the conservative default confirmer: it rejects
// every overpayment, so a caller that never wired a confirmer cannot
// accidentally clamp a payment.
var DeclineOverpayments Confirmer = ConfirmerFunc(func(models.Liability, models.Money) bool {
	return false
})
