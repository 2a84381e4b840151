package core

import "strings"

// PaymentPolicy decides whether an observed payment satisfies the configured
// fee requirement. Checks run cheapest-first: confirmation, recipient, amount.
type PaymentPolicy struct {
	fees FeeConfig
}

func NewPaymentPolicy(fees FeeConfig) *PaymentPolicy {
	return &PaymentPolicy{
		fees: fees,
	}
}

// Evaluate returns nil when the payment is acceptable and a *RejectionError
// naming the first failed check otherwise.
func (p *PaymentPolicy) Evaluate(payment ObservedPayment) error {
	fee, ok := p.fees.ForChain(payment.Chain)
	if !ok {
		return Reject(ReasonUnsupportedChain)
	}

	if !payment.Confirmed {
		return Reject(ReasonNotConfirmed)
	}

	if !recipientMatches(payment.Chain, payment.Recipient, fee.Recipient) {
		return Reject(ReasonRecipientMismatch)
	}

	if payment.AmountRaw == nil || payment.AmountRaw.Sign() < 0 {
		return Reject(ReasonInsufficientAmount)
	}
	if payment.AmountRaw.Cmp(fee.MinAmount) < 0 {
		return Reject(ReasonInsufficientAmount)
	}

	return nil
}

// recipientMatches compares addresses with chain-appropriate semantics: EVM
// addresses are hex and compared case-insensitively (checksums are not
// verified), base58 Solana addresses are case-sensitive.
func recipientMatches(chain Chain, got, want string) bool {
	if got == "" {
		return false
	}
	if chain == ChainEVM {
		return strings.EqualFold(got, want)
	}
	return got == want
}
