package solana

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"paygate/internal/core"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// Adapter observes payments on Solana. Solana transactions may bundle several
// instructions, so the observed amount is the admin wallet's balance delta
// (postBalance - preBalance) rather than any single transfer instruction.
type Adapter struct {
	client TransactionGetter
	admin  solana.PublicKey
}

func NewAdapter(client TransactionGetter, adminWallet string) (*Adapter, error) {
	admin, err := solana.PublicKeyFromBase58(adminWallet)
	if err != nil {
		return nil, fmt.Errorf("parse admin wallet %q: %w", adminWallet, err)
	}

	return &Adapter{
		client: client,
		admin:  admin,
	}, nil
}

func (a *Adapter) FetchPayment(ctx context.Context, txHash string) (core.ObservedPayment, error) {
	sig, err := solana.SignatureFromBase58(txHash)
	if err != nil {
		return core.ObservedPayment{}, fmt.Errorf("parse signature %q: %w", txHash, err)
	}

	maxVersion := uint64(0)
	result, err := a.client.GetTransaction(ctx, sig, &rpc.GetTransactionOpts{
		Encoding:                       solana.EncodingBase64,
		Commitment:                     rpc.CommitmentConfirmed,
		MaxSupportedTransactionVersion: &maxVersion,
	})
	if err != nil {
		if errors.Is(err, rpc.ErrNotFound) {
			return core.ObservedPayment{}, core.ErrTxNotFound
		}
		return core.ObservedPayment{}, fmt.Errorf("get transaction: %w: %w", core.ErrRPCUnavailable, err)
	}
	if result == nil || result.Meta == nil || result.Transaction == nil {
		return core.ObservedPayment{}, core.ErrTxNotFound
	}

	tx, err := result.Transaction.GetTransaction()
	if err != nil {
		return core.ObservedPayment{}, fmt.Errorf("decode transaction: %w", err)
	}

	keys := tx.Message.AccountKeys

	// The fee payer is the first account; Solana has no canonical "from".
	var sender string
	if len(keys) > 0 {
		sender = keys[0].String()
	}

	// Version 0 transactions may load extra accounts from address lookup
	// tables. The balance arrays cover static keys, then loaded writable,
	// then loaded readonly addresses, in that order.
	loaded := result.Meta.LoadedAddresses
	accounts := make([]solana.PublicKey, 0, len(keys)+len(loaded.Writable)+len(loaded.ReadOnly))
	accounts = append(accounts, keys...)
	accounts = append(accounts, loaded.Writable...)
	accounts = append(accounts, loaded.ReadOnly...)

	amount := new(big.Int)
	var recipient string
	for i, key := range accounts {
		if !key.Equals(a.admin) {
			continue
		}
		recipient = key.String()
		if i < len(result.Meta.PreBalances) && i < len(result.Meta.PostBalances) {
			pre := result.Meta.PreBalances[i]
			post := result.Meta.PostBalances[i]
			if post > pre {
				amount.SetUint64(post - pre)
			}
		}
		break
	}

	return core.ObservedPayment{
		TxHash:    txHash,
		Chain:     core.ChainSolana,
		Sender:    sender,
		Recipient: recipient,
		AmountRaw: amount,
		Confirmed: result.Meta.Err == nil,
	}, nil
}
