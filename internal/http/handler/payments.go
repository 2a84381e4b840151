package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"paygate/internal/core"
	"paygate/internal/http/handler/middleware"
	"paygate/internal/http/payload"
	"time"

	"go.uber.org/zap"
)

var (
	VerifyPayment    = "POST /api/payments/verify"
	GetPaymentRecord = "GET /api/payments/records/{txHash}"
	HealthCheck      = "GET /api/health"
)

type PaymentHandler struct {
	logs             *zap.SugaredLogger
	requestValidator RequestValidator
	verifier         PaymentVerifier
}

func NewPaymentHandler(logger *zap.SugaredLogger, requestValidator RequestValidator, verifier PaymentVerifier) *PaymentHandler {
	return &PaymentHandler{
		logs:             logger,
		requestValidator: requestValidator,
		verifier:         verifier,
	}
}

func (h *PaymentHandler) HandleVerifyPayment(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	var req payload.VerifyRequest
	err := h.requestValidator.DecodeAndValidateJSONPayload(r, &req)
	if err != nil {
		h.respond(w, Response{
			Message: "Could not verify payment",
			Error:   fmt.Errorf("invalid request payload: %w", err).Error(),
		}, http.StatusBadRequest,
			requestId)
		h.logs.Errorw("failed to decode and validate request payload",
			"error", err,
			"handler", VerifyPayment,
			"request_id", requestId)
		return
	}

	h.logs.Infow("payment verification request received",
		"txHash", req.TxHash,
		"chain", req.Chain,
		"handler", VerifyPayment,
		"request_id", requestId)

	verification, err := h.verifier.Verify(r.Context(), req.ToMessage())
	if err != nil {
		h.respondVerifyError(w, err, requestId)
		return
	}

	h.respond(w, Response{
		Data: VerifiedPayment{
			Status: "verified",
			TxHash: verification.TxHash,
			Chain:  string(verification.Chain),
			Amount: verification.Amount,
			Sender: verification.Sender,
		},
	}, http.StatusOK, requestId)
}

func (h *PaymentHandler) HandleGetPaymentRecord(w http.ResponseWriter, r *http.Request) {
	requestId := requestID(r)

	txHash := r.PathValue("txHash")

	verification, err := h.verifier.Lookup(r.Context(), txHash)
	if err != nil {
		if errors.Is(err, core.ErrTxNotFound) {
			h.respond(w, Response{
				Message: "Transaction not found",
			}, http.StatusNotFound,
				requestId)
			return
		}
		h.respond(w, Response{
			Message: oopsErr,
		}, http.StatusInternalServerError,
			requestId)
		h.logs.Errorw("failed to look up verification record",
			"error", err,
			"handler", GetPaymentRecord,
			"request_id", requestId)
		return
	}

	h.respond(w, Response{
		Data: VerifiedPayment{
			Status: "verified",
			TxHash: verification.TxHash,
			Chain:  string(verification.Chain),
			Amount: verification.Amount,
			Sender: verification.Sender,
		},
	}, http.StatusOK, requestId)
}

func (h *PaymentHandler) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	h.respond(w, Response{
		Message: "Server is running",
		Data: map[string]string{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		},
	}, http.StatusOK, requestID(r))
}

// respondVerifyError maps the verification error taxonomy onto HTTP codes:
// policy rejections are client errors, an unindexed transaction is 404 and
// everything infrastructural is 500.
func (h *PaymentHandler) respondVerifyError(w http.ResponseWriter, err error, requestId string) {
	var rejection *core.RejectionError
	switch {
	case errors.As(err, &rejection):
		h.respond(w, Response{
			Message: "Payment rejected",
			Error:   string(rejection.Reason),
		}, http.StatusBadRequest,
			requestId)
	case errors.Is(err, core.ErrTxNotFound):
		h.respond(w, Response{
			Message: "Transaction not found",
		}, http.StatusNotFound,
			requestId)
	default:
		h.respond(w, Response{
			Message: oopsErr,
		}, http.StatusInternalServerError,
			requestId)
	}

	h.logs.Errorw("payment verification failed",
		"error", err,
		"handler", VerifyPayment,
		"request_id", requestId)
}

func (h *PaymentHandler) respond(w http.ResponseWriter, resp any, statusCode int, requestId string) {
	w.Header().Set("Content-Type", "application/json")
	if requestId != "" {
		w.Header().Set("X-Request-Id", requestId)
	}
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logs.Errorw("failed to encode response", "error", err, "request_id", requestId)
	}
}

func requestID(r *http.Request) string {
	reqIdCtx := r.Context().Value(middleware.RequestIDKey)
	if reqIdCtx == nil {
		return ""
	}
	return reqIdCtx.(string)
}
