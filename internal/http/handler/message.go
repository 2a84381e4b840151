package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string      `json:"message,omitempty"` // short message for humans
	Data    interface{} `json:"data,omitempty"`    // actual payload (can be nil)
	Error   string      `json:"error,omitempty"`   // error detail (if any)
}

// VerifiedPayment is the wire shape of an accepted payment.
type VerifiedPayment struct {
	Status string `json:"status"`
	TxHash string `json:"txHash"`
	Chain  string `json:"chain"`
	Amount string `json:"amount"`
	Sender string `json:"sender"`
}
