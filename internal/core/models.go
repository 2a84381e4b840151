package core

import "math/big"

type Chain string

const (
	ChainEVM    Chain = "evm"
	ChainSolana Chain = "solana"
)

func (c Chain) Known() bool {
	return c == ChainEVM || c == ChainSolana
}

// ObservedPayment is a chain-agnostic view of a single on-chain transaction,
// produced by a chain adapter for one verification attempt.
type ObservedPayment struct {
	TxHash    string
	Chain     Chain
	Sender    string
	Recipient string
	AmountRaw *big.Int // smallest unit: wei or lamports, never fractional
	Confirmed bool
}

// ChainFee describes the required recipient and minimum amount for one chain.
type ChainFee struct {
	Recipient string
	MinAmount *big.Int
}

// FeeConfig is the process-wide fee policy, loaded once at startup.
type FeeConfig struct {
	EVM    ChainFee
	Solana ChainFee
}

func (c FeeConfig) ForChain(chain Chain) (ChainFee, bool) {
	switch chain {
	case ChainEVM:
		return c.EVM, true
	case ChainSolana:
		return c.Solana, true
	}
	return ChainFee{}, false
}

type VerifyMessage struct {
	TxHash string
	Chain  Chain
}

// Verification is the verdict returned for an accepted payment. Amount is the
// observed amount in the chain's smallest unit, rendered as a decimal string.
type Verification struct {
	TxHash string
	Chain  Chain
	Amount string
	Sender string
}
