package repository

import "time"

type VerificationRecord struct {
	TxHash     string    `gorm:"size:100;uniqueIndex;not null"` // 0x-hex (EVM) or base58 signature (Solana)
	Chain      string    `gorm:"size:16;not null"`
	AmountRaw  string    `gorm:"size:100;not null"` // smallest unit (string to handle large numbers)
	Sender     string    `gorm:"size:100;not null"`
	VerifiedAt time.Time `gorm:"not null"`
}
