package handler

import (
	"context"
	"net/http"
	"paygate/internal/core"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name PaymentVerifier . PaymentVerifier
type PaymentVerifier interface {
	Verify(ctx context.Context, msg core.VerifyMessage) (core.Verification, error)
	Lookup(ctx context.Context, txHash string) (core.Verification, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateJSONPayload(r *http.Request, object any) error
}
