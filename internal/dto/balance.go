package dto

import "time"

type BalanceResponseDTO struct {
	Current float64 `json:"current" example:"500.5"`
}

type BalanceChangeRequestDTO struct {
	Sum float64 `json:"sum" example:"100"`
}

type TransactionResponseDTO struct {
	ID        string    `json:"id" example:"2b5e7c9d-1a00-4c0d-8f3a-6f1d2c4e9a1b"`
	Amount    float64   `json:"amount" example:"-10"`
	Kind      string    `json:"kind" example:"game_entry"`
	Status    string    `json:"status" example:"completed"`
	Memo      string    `json:"memo" example:"entry fee for pool 6f1d2c4e"`
	CreatedAt time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}
