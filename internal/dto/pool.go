package dto

import "time"

type CreatePoolRequestDTO struct {
	GameType string  `json:"game_type" example:"lucky7"`
	EntryFee float64 `json:"entry_fee" example:"10"`
	Capacity int     `json:"capacity" example:"8"`
	RangeMin int     `json:"range_min" example:"1"`
	RangeMax int     `json:"range_max" example:"100"`
}

type PoolResponseDTO struct {
	ID            string     `json:"id" example:"6f1d2c4e-9a1b-4c0d-8f3a-2b5e7c9d1a00"`
	GameType      string     `json:"game_type" example:"lucky7"`
	EntryFee      float64    `json:"entry_fee" example:"10"`
	Capacity      int        `json:"capacity" example:"8"`
	PlayersCount  int        `json:"players_count" example:"3"`
	Status        string     `json:"status" example:"waiting"`
	RangeMin      int        `json:"range_min" example:"1"`
	RangeMax      int        `json:"range_max" example:"100"`
	StartsAt      *time.Time `json:"starts_at,omitempty"`
	EndsAt        *time.Time `json:"ends_at,omitempty"`
	WinningNumber *int       `json:"winning_number,omitempty" example:"42"`
}

type LockNumberRequestDTO struct {
	Number int `json:"number" example:"42"`
}

type MemberResponseDTO struct {
	UserID         int       `json:"user_id" example:"1"`
	Username       string    `json:"username" example:"player1"`
	GamesPlayed    int       `json:"games_played" example:"17"`
	GamesWon       int       `json:"games_won" example:"3"`
	SelectedNumber *int      `json:"selected_number,omitempty" example:"42"`
	Locked         bool      `json:"locked" example:"true"`
	JoinedAt       time.Time `json:"joined_at" example:"2024-12-09T16:09:57+03:00"`
}
