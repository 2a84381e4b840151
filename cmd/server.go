package cmd

import (
	"fmt"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"paygate/internal/config"
	"paygate/internal/core"
	"paygate/internal/db"
	"paygate/internal/evm"
	"paygate/internal/http/handler"
	"paygate/internal/http/handler/middleware"
	"paygate/internal/http/payload"
	"paygate/internal/http/server"
	"paygate/internal/repository"
	"paygate/internal/solana"
	"paygate/pkg/log"
	"syscall"

	"github.com/ethereum/go-ethereum/ethclient"
	solanarpc "github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	logger := log.NewZapLogger("paygate", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewVerificationRepository(dbConn)

	err = repo.MigrateTables()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	ethClient, err := ethclient.Dial(config.EVMRPCURL)
	if err != nil {
		logger.Errorw("evm rpc connection failed", "error", err)
		return err
	}
	evmAdapter := evm.NewAdapter(ethClient)

	solanaAdapter, err := solana.NewAdapter(solanarpc.New(config.SolanaRPCURL), config.SolanaAdminWallet)
	if err != nil {
		logger.Errorw("failed to create solana adapter", "error", err)
		return err
	}

	// verifier
	verifier := core.NewVerifier(
		logger,
		map[core.Chain]core.ChainAdapter{
			core.ChainEVM:    evmAdapter,
			core.ChainSolana: solanaAdapter,
		},
		repo,
		core.Options{
			Fees: core.FeeConfig{
				EVM: core.ChainFee{
					Recipient: config.EVMAdminWallet,
					MinAmount: config.EVMFeeWei,
				},
				Solana: core.ChainFee{
					Recipient: config.SolanaAdminWallet,
					MinAmount: new(big.Int).SetUint64(config.SolanaFeeLamports),
				},
			},
			RPCTimeout: config.RPCTimeout,
			DevBypass:  config.IsDevelopment(),
		})

	if config.IsDevelopment() {
		logger.Infow("development bypass enabled, mock transaction hashes will be accepted")
	}

	// handler
	paymentHlr := handler.NewPaymentHandler(
		logger,
		payload.DecodeValidator{},
		verifier)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.VerifyPayment, paymentHlr.HandleVerifyPayment)
	mux.HandleFunc(handler.GetPaymentRecord, paymentHlr.HandleGetPaymentRecord)
	mux.HandleFunc(handler.HealthCheck, paymentHlr.HandleHealthCheck)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
