package core

import (
	"context"
	"errors"
	"fmt"
	"paygate/internal/repository"
	"strings"
	"time"

	"go.uber.org/zap"
)

// mockTxPrefix marks hashes accepted by the development bypass. It is only
// honored when Options.DevBypass is set.
const mockTxPrefix = "mock_"

const mockSender = "mock_sender"

type Options struct {
	Fees       FeeConfig
	RPCTimeout time.Duration
	DevBypass  bool
}

// Verifier orchestrates a single payment verification: adapter selection,
// replay-guard lookup, chain fetch, policy evaluation and record persistence.
type Verifier struct {
	logs       *zap.SugaredLogger
	adapters   map[Chain]ChainAdapter
	policy     *PaymentPolicy
	records    RecordStore
	fees       FeeConfig
	rpcTimeout time.Duration
	devBypass  bool
}

func NewVerifier(logger *zap.SugaredLogger, adapters map[Chain]ChainAdapter, records RecordStore, opts Options) *Verifier {
	timeout := opts.RPCTimeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	return &Verifier{
		logs:       logger,
		adapters:   adapters,
		policy:     NewPaymentPolicy(opts.Fees),
		records:    records,
		fees:       opts.Fees,
		rpcTimeout: timeout,
		devBypass:  opts.DevBypass,
	}
}

// Verify checks whether the transaction identified by msg is an acceptable
// platform-fee payment. A hash that already passed verification returns the
// persisted outcome without touching the chain.
func (v *Verifier) Verify(ctx context.Context, msg VerifyMessage) (Verification, error) {
	if !msg.Chain.Known() {
		return Verification{}, Reject(ReasonUnsupportedChain)
	}

	if v.devBypass && strings.HasPrefix(msg.TxHash, mockTxPrefix) {
		return v.mockVerification(msg), nil
	}

	record, err := v.records.GetRecord(ctx, msg.TxHash)
	if err == nil {
		v.logs.Infow("payment already verified", "txHash", msg.TxHash, "chain", record.Chain)
		return recordVerification(record), nil
	}
	if !errors.Is(err, repository.ErrRecordNotFound) {
		return Verification{}, fmt.Errorf("get verification record: %w", err)
	}

	adapter, ok := v.adapters[msg.Chain]
	if !ok {
		return Verification{}, Reject(ReasonUnsupportedChain)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, v.rpcTimeout)
	defer cancel()

	payment, err := adapter.FetchPayment(fetchCtx, msg.TxHash)
	if err != nil {
		return Verification{}, fmt.Errorf("fetch payment: %w", err)
	}

	if err := v.policy.Evaluate(payment); err != nil {
		v.logs.Infow("payment rejected",
			"txHash", msg.TxHash,
			"chain", msg.Chain,
			"reason", err.Error())
		return Verification{}, err
	}

	record = repository.VerificationRecord{
		TxHash:     payment.TxHash,
		Chain:      string(payment.Chain),
		AmountRaw:  payment.AmountRaw.String(),
		Sender:     payment.Sender,
		VerifiedAt: time.Now().UTC(),
	}

	err = v.records.SaveRecord(ctx, record)
	if errors.Is(err, repository.ErrDuplicateRecord) {
		// Lost the insert race; the stored outcome wins.
		existing, readErr := v.records.GetRecord(ctx, msg.TxHash)
		if readErr != nil {
			return Verification{}, fmt.Errorf("get verification record after conflict: %w", readErr)
		}
		return recordVerification(existing), nil
	}
	if err != nil {
		return Verification{}, fmt.Errorf("save verification record: %w", err)
	}

	v.logs.Infow("payment verified",
		"txHash", payment.TxHash,
		"chain", payment.Chain,
		"amount", record.AmountRaw,
		"sender", payment.Sender)

	return recordVerification(record), nil
}

// Lookup returns a previously persisted verification outcome. It never
// reaches the chain; absent records map to ErrTxNotFound.
func (v *Verifier) Lookup(ctx context.Context, txHash string) (Verification, error) {
	record, err := v.records.GetRecord(ctx, txHash)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return Verification{}, ErrTxNotFound
		}
		return Verification{}, fmt.Errorf("get verification record: %w", err)
	}
	return recordVerification(record), nil
}

func (v *Verifier) mockVerification(msg VerifyMessage) Verification {
	fee, _ := v.fees.ForChain(msg.Chain)
	v.logs.Infow("mock payment verified", "txHash", msg.TxHash, "chain", msg.Chain)
	return Verification{
		TxHash: msg.TxHash,
		Chain:  msg.Chain,
		Amount: fee.MinAmount.String(),
		Sender: mockSender,
	}
}

func recordVerification(record repository.VerificationRecord) Verification {
	return Verification{
		TxHash: record.TxHash,
		Chain:  Chain(record.Chain),
		Amount: record.AmountRaw,
		Sender: record.Sender,
	}
}
