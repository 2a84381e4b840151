package core

import (
	"context"
	"paygate/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChainAdapter . ChainAdapter
type ChainAdapter interface {
	FetchPayment(ctx context.Context, txHash string) (ObservedPayment, error)
}

//counterfeiter:generate -o fake -fake-name RecordStore . RecordStore
type RecordStore interface {
	GetRecord(ctx context.Context, txHash string) (repository.VerificationRecord, error)
	SaveRecord(ctx context.Context, record repository.VerificationRecord) error
}
