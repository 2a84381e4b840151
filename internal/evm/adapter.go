package evm

import (
	"context"
	"errors"
	"fmt"
	"paygate/internal/core"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// Adapter observes payments on EVM chains via a JSON-RPC node. It never
// retries; a transaction the node has not indexed yet surfaces as
// core.ErrTxNotFound and the caller decides when to ask again.
type Adapter struct {
	client EthClient
}

func NewAdapter(ethClient EthClient) *Adapter {
	return &Adapter{
		client: ethClient,
	}
}

func (a *Adapter) FetchPayment(ctx context.Context, txHash string) (core.ObservedPayment, error) {
	hash := common.HexToHash(txHash)

	tx, pending, err := a.client.TransactionByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, ethereum.NotFound) {
			return core.ObservedPayment{}, core.ErrTxNotFound
		}
		return core.ObservedPayment{}, fmt.Errorf("transaction by hash: %w: %w", core.ErrRPCUnavailable, err)
	}

	var confirmed bool
	if !pending {
		receipt, err := a.client.TransactionReceipt(ctx, hash)
		switch {
		case errors.Is(err, ethereum.NotFound):
			// Mined per the node but no receipt yet; observed as unconfirmed.
		case err != nil:
			return core.ObservedPayment{}, fmt.Errorf("transaction receipt: %w: %w", core.ErrRPCUnavailable, err)
		default:
			confirmed = receipt.Status == types.ReceiptStatusSuccessful
		}
	}

	chainID, err := a.client.NetworkID(ctx)
	if err != nil {
		return core.ObservedPayment{}, fmt.Errorf("network id: %w: %w", core.ErrRPCUnavailable, err)
	}

	signer := types.LatestSignerForChainID(chainID)
	from, err := types.Sender(signer, tx)
	if err != nil {
		return core.ObservedPayment{}, fmt.Errorf("recover sender: %w", err)
	}

	var recipient string
	if tx.To() != nil {
		recipient = tx.To().Hex()
	}

	return core.ObservedPayment{
		TxHash:    tx.Hash().Hex(),
		Chain:     core.ChainEVM,
		Sender:    from.Hex(),
		Recipient: recipient,
		AmountRaw: tx.Value(),
		Confirmed: confirmed,
	}, nil
}
