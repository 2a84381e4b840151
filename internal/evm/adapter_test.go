package evm_test

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"paygate/internal/core"
	"paygate/internal/evm"
	"paygate/internal/evm/fake"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Adapter", func() {
	var (
		fakeClient *fake.EthClient
		adapter    *evm.Adapter
		ctx        context.Context

		chainID   *big.Int
		senderKey *ecdsa.PrivateKey
		adminAddr common.Address
		signedTx  *types.Transaction

		fakeErr error
	)

	signTx := func(to *common.Address, value *big.Int) *types.Transaction {
		tx := types.NewTx(&types.LegacyTx{
			Nonce:    7,
			To:       to,
			Value:    value,
			Gas:      21000,
			GasPrice: big.NewInt(1),
		})
		signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), senderKey)
		Expect(err).NotTo(HaveOccurred())
		return signed
	}

	BeforeEach(func() {
		fakeClient = new(fake.EthClient)
		adapter = evm.NewAdapter(fakeClient)
		ctx = context.Background()

		chainID = big.NewInt(11155111)
		var err error
		senderKey, err = crypto.GenerateKey()
		Expect(err).NotTo(HaveOccurred())
		adminAddr = common.HexToAddress("0x000000000000000000000000000000000000dEaD")

		signedTx = signTx(&adminAddr, big.NewInt(10000000000000))

		fakeClient.TransactionByHashReturns(signedTx, false, nil)
		fakeClient.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusSuccessful}, nil)
		fakeClient.NetworkIDReturns(chainID, nil)

		fakeErr = errors.New("fake error")
	})

	Describe("FetchPayment", func() {
		var (
			payment core.ObservedPayment
			err     error
		)

		JustBeforeEach(func() {
			payment, err = adapter.FetchPayment(ctx, signedTx.Hash().Hex())
		})

		When("the transaction is mined and succeeded", func() {
			It("should observe a confirmed payment", func() {
				Expect(err).NotTo(HaveOccurred())

				sender := crypto.PubkeyToAddress(senderKey.PublicKey)
				Expect(payment.Chain).To(Equal(core.ChainEVM))
				Expect(payment.TxHash).To(Equal(signedTx.Hash().Hex()))
				Expect(payment.Sender).To(Equal(sender.Hex()))
				Expect(payment.Recipient).To(Equal(adminAddr.Hex()))
				Expect(payment.AmountRaw.String()).To(Equal("10000000000000"))
				Expect(payment.Confirmed).To(BeTrue())

				_, hash := fakeClient.TransactionByHashArgsForCall(0)
				Expect(hash).To(Equal(signedTx.Hash()))
			})
		})

		When("the transaction is still pending", func() {
			BeforeEach(func() {
				fakeClient.TransactionByHashReturns(signedTx, true, nil)
			})

			It("should observe an unconfirmed payment without a receipt call", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(payment.Confirmed).To(BeFalse())
				Expect(fakeClient.TransactionReceiptCallCount()).To(BeZero())
			})
		})

		When("the transaction reverted", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(&types.Receipt{Status: types.ReceiptStatusFailed}, nil)
			})

			It("should observe an unconfirmed payment", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(payment.Confirmed).To(BeFalse())
			})
		})

		When("the receipt is not available yet", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(nil, ethereum.NotFound)
			})

			It("should observe an unconfirmed payment", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(payment.Confirmed).To(BeFalse())
			})
		})

		When("the node does not know the transaction", func() {
			BeforeEach(func() {
				fakeClient.TransactionByHashReturns(nil, false, ethereum.NotFound)
			})

			It("should return not found", func() {
				Expect(err).To(MatchError(core.ErrTxNotFound))
			})
		})

		When("the node fails to return the transaction", func() {
			BeforeEach(func() {
				fakeClient.TransactionByHashReturns(nil, false, fakeErr)
			})

			It("should return an rpc error", func() {
				Expect(err).To(MatchError(core.ErrRPCUnavailable))
				Expect(err).To(MatchError(fakeErr))
			})
		})

		When("the node fails to return the receipt", func() {
			BeforeEach(func() {
				fakeClient.TransactionReceiptReturns(nil, fakeErr)
			})

			It("should return an rpc error", func() {
				Expect(err).To(MatchError(core.ErrRPCUnavailable))
			})
		})

		When("the node fails to return the network id", func() {
			BeforeEach(func() {
				fakeClient.NetworkIDReturns(nil, fakeErr)
			})

			It("should return an rpc error", func() {
				Expect(err).To(MatchError(core.ErrRPCUnavailable))
			})
		})

		When("the transaction has no recipient", func() {
			BeforeEach(func() {
				contractCreation := signTx(nil, big.NewInt(10000000000000))
				fakeClient.TransactionByHashReturns(contractCreation, false, nil)
			})

			It("should observe an empty recipient", func() {
				Expect(err).NotTo(HaveOccurred())
				Expect(payment.Recipient).To(BeEmpty())
			})
		})
	})
})
