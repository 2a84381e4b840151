package config

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gagliardetto/solana-go"
)

var errEnvVarNotFound error = errors.New("environment variable not found")

const (
	apiPortEnvKey      = "API_PORT"
	dbConnEnvKey       = "DB_CONNECTION_URL"
	evmRPCEnvKey       = "EVM_RPC_URL"
	solanaRPCEnvKey    = "SOLANA_RPC_URL"
	evmAdminEnvKey     = "ADMIN_WALLET_EVM"
	solanaAdminEnvKey  = "ADMIN_WALLET_SOLANA"
	evmFeeEnvKey       = "PLATFORM_FEE_WEI"
	solanaFeeEnvKey    = "PLATFORM_FEE_LAMPORTS"
	appEnvEnvKey       = "APP_ENV"
	rpcTimeoutEnvKey   = "RPC_TIMEOUT_SECONDS"
	developmentAppEnv  = "development"
	defaultRPCTimeoutS = 15
)

type App struct {
	Port              string
	DBConnectionURL   string
	EVMRPCURL         string
	SolanaRPCURL      string
	EVMAdminWallet    string
	SolanaAdminWallet string
	EVMFeeWei         *big.Int
	SolanaFeeLamports uint64
	Environment       string
	RPCTimeout        time.Duration
}

// NewApp reads the full configuration from the environment. Any missing or
// malformed value fails startup; nothing is silently defaulted except the
// explicitly optional APP_ENV and RPC_TIMEOUT_SECONDS.
func NewApp() (App, error) {
	port, ok := os.LookupEnv(apiPortEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, apiPortEnvKey)
	}

	dbConn, ok := os.LookupEnv(dbConnEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, dbConnEnvKey)
	}

	evmRPC, ok := os.LookupEnv(evmRPCEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, evmRPCEnvKey)
	}

	solanaRPC, ok := os.LookupEnv(solanaRPCEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, solanaRPCEnvKey)
	}

	evmAdmin, ok := os.LookupEnv(evmAdminEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, evmAdminEnvKey)
	}
	if !common.IsHexAddress(evmAdmin) {
		return App{}, fmt.Errorf("%s is not a valid EVM address: %q", evmAdminEnvKey, evmAdmin)
	}

	solanaAdmin, ok := os.LookupEnv(solanaAdminEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, solanaAdminEnvKey)
	}
	if _, err := solana.PublicKeyFromBase58(solanaAdmin); err != nil {
		return App{}, fmt.Errorf("%s is not a valid Solana address: %w", solanaAdminEnvKey, err)
	}

	evmFee, ok := os.LookupEnv(evmFeeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, evmFeeEnvKey)
	}
	// Wei amounts overflow int64, so the fee travels as a decimal string.
	feeWei, ok := new(big.Int).SetString(evmFee, 10)
	if !ok || feeWei.Sign() < 0 {
		return App{}, fmt.Errorf("%s must be a non-negative integer: %q", evmFeeEnvKey, evmFee)
	}

	solanaFee, ok := os.LookupEnv(solanaFeeEnvKey)
	if !ok {
		return App{}, fmt.Errorf("%w: %s", errEnvVarNotFound, solanaFeeEnvKey)
	}
	feeLamports, err := strconv.ParseUint(solanaFee, 10, 64)
	if err != nil {
		return App{}, fmt.Errorf("%s must be a non-negative integer: %w", solanaFeeEnvKey, err)
	}

	environment := os.Getenv(appEnvEnvKey)
	if environment == "" {
		environment = "production"
	}

	rpcTimeout := time.Duration(defaultRPCTimeoutS) * time.Second
	if raw, ok := os.LookupEnv(rpcTimeoutEnvKey); ok {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return App{}, fmt.Errorf("%s must be a positive integer: %q", rpcTimeoutEnvKey, raw)
		}
		rpcTimeout = time.Duration(seconds) * time.Second
	}

	return App{
		Port:              port,
		DBConnectionURL:   dbConn,
		EVMRPCURL:         evmRPC,
		SolanaRPCURL:      solanaRPC,
		EVMAdminWallet:    evmAdmin,
		SolanaAdminWallet: solanaAdmin,
		EVMFeeWei:         feeWei,
		SolanaFeeLamports: feeLamports,
		Environment:       environment,
		RPCTimeout:        rpcTimeout,
	}, nil
}

func (a App) IsDevelopment() bool {
	return a.Environment == developmentAppEnv
}
