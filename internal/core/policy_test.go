package core_test

import (
	"errors"
	"math/big"
	"paygate/internal/core"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PaymentPolicy", func() {
	var (
		policy  *core.PaymentPolicy
		fees    core.FeeConfig
		payment core.ObservedPayment
		err     error
	)

	BeforeEach(func() {
		fees = core.FeeConfig{
			EVM: core.ChainFee{
				Recipient: "0xAdMiN000000000000000000000000000000000001",
				MinAmount: big.NewInt(10000000000000),
			},
			Solana: core.ChainFee{
				Recipient: "AdminSoLWaLLet1111111111111111111111111111",
				MinAmount: big.NewInt(100000),
			},
		}
		policy = core.NewPaymentPolicy(fees)

		payment = core.ObservedPayment{
			TxHash:    "0xabc",
			Chain:     core.ChainEVM,
			Sender:    "0xSender00000000000000000000000000000000002",
			Recipient: "0xadmin000000000000000000000000000000000001",
			AmountRaw: big.NewInt(10000000000000),
			Confirmed: true,
		}
	})

	JustBeforeEach(func() {
		err = policy.Evaluate(payment)
	})

	When("the payment satisfies all checks", func() {
		It("should accept the payment", func() {
			Expect(err).NotTo(HaveOccurred())
		})
	})

	When("the EVM recipient differs only in letter case", func() {
		BeforeEach(func() {
			payment.Recipient = "0xADMIN000000000000000000000000000000000001"
		})

		It("should accept the payment", func() {
			Expect(err).NotTo(HaveOccurred())
		})
	})

	When("the payment overpays the fee", func() {
		BeforeEach(func() {
			payment.AmountRaw = big.NewInt(20000000000000)
		})

		It("should accept the payment", func() {
			Expect(err).NotTo(HaveOccurred())
		})
	})

	When("the transaction is not confirmed", func() {
		BeforeEach(func() {
			payment.Confirmed = false
			// would otherwise fail every other check too
			payment.Recipient = "0xsomebody"
			payment.AmountRaw = big.NewInt(0)
		})

		It("should reject with the confirmation reason first", func() {
			var rejection *core.RejectionError
			Expect(errors.As(err, &rejection)).To(BeTrue())
			Expect(rejection.Reason).To(Equal(core.ReasonNotConfirmed))
		})
	})

	When("the recipient is not the admin wallet", func() {
		BeforeEach(func() {
			payment.Recipient = "0xsomebody0000000000000000000000000000003"
		})

		It("should reject with recipient mismatch", func() {
			var rejection *core.RejectionError
			Expect(errors.As(err, &rejection)).To(BeTrue())
			Expect(rejection.Reason).To(Equal(core.ReasonRecipientMismatch))
		})
	})

	When("the recipient is empty", func() {
		BeforeEach(func() {
			payment.Recipient = ""
		})

		It("should reject with recipient mismatch", func() {
			var rejection *core.RejectionError
			Expect(errors.As(err, &rejection)).To(BeTrue())
			Expect(rejection.Reason).To(Equal(core.ReasonRecipientMismatch))
		})
	})

	When("the amount is below the configured fee", func() {
		BeforeEach(func() {
			payment.AmountRaw = big.NewInt(9999999999999)
		})

		It("should reject with insufficient amount", func() {
			var rejection *core.RejectionError
			Expect(errors.As(err, &rejection)).To(BeTrue())
			Expect(rejection.Reason).To(Equal(core.ReasonInsufficientAmount))
		})
	})

	When("the amount is missing", func() {
		BeforeEach(func() {
			payment.AmountRaw = nil
		})

		It("should reject with insufficient amount", func() {
			var rejection *core.RejectionError
			Expect(errors.As(err, &rejection)).To(BeTrue())
			Expect(rejection.Reason).To(Equal(core.ReasonInsufficientAmount))
		})
	})

	When("the chain is unknown", func() {
		BeforeEach(func() {
			payment.Chain = core.Chain("dogecoin")
		})

		It("should reject with unsupported chain", func() {
			var rejection *core.RejectionError
			Expect(errors.As(err, &rejection)).To(BeTrue())
			Expect(rejection.Reason).To(Equal(core.ReasonUnsupportedChain))
		})
	})

	Context("solana payments", func() {
		BeforeEach(func() {
			payment = core.ObservedPayment{
				TxHash:    "5sig",
				Chain:     core.ChainSolana,
				Sender:    "FeePayer11111111111111111111111111111111111",
				Recipient: "AdminSoLWaLLet1111111111111111111111111111",
				AmountRaw: big.NewInt(100000),
				Confirmed: true,
			}
		})

		It("should accept an exact fee payment", func() {
			Expect(err).NotTo(HaveOccurred())
		})

		When("the recipient differs only in letter case", func() {
			BeforeEach(func() {
				payment.Recipient = "adminsolwallet1111111111111111111111111111"
			})

			It("should reject, base58 addresses are case-sensitive", func() {
				var rejection *core.RejectionError
				Expect(errors.As(err, &rejection)).To(BeTrue())
				Expect(rejection.Reason).To(Equal(core.ReasonRecipientMismatch))
			})
		})

		When("the balance delta is below the fee", func() {
			BeforeEach(func() {
				payment.AmountRaw = big.NewInt(99999)
			})

			It("should reject with insufficient amount", func() {
				var rejection *core.RejectionError
				Expect(errors.As(err, &rejection)).To(BeTrue())
				Expect(rejection.Reason).To(Equal(core.ReasonInsufficientAmount))
			})
		})
	})
})
