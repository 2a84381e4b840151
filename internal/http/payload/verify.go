package payload

import (
	"paygate/internal/core"

	"github.com/jellydator/validation"
)

type VerifyRequest struct {
	TxHash string `json:"txHash"`
	Chain  string `json:"chain"`
}

func (v VerifyRequest) Validate() error {
	return validation.ValidateStruct(&v,
		validation.Field(&v.TxHash, validation.Required, validation.Length(1, 128)),
		validation.Field(&v.Chain, validation.Required,
			validation.In(string(core.ChainEVM), string(core.ChainSolana))),
	)
}

func (v VerifyRequest) ToMessage() core.VerifyMessage {
	return core.VerifyMessage{
		TxHash: v.TxHash,
		Chain:  core.Chain(v.Chain),
	}
}
