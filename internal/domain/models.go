package domain

import "time"

type Pool struct {
	ID            string     `db:"id"`
	GameType      string     `db:"game_type"`
	EntryFee      float64    `db:"entry_fee"`
	Capacity      int        `db:"capacity"`
	PlayersCount  int        `db:"players_count"`
	Status        string     `db:"status"`
	RangeMin      int        `db:"range_min"`
	RangeMax      int        `db:"range_max"`
	StartsAt      *time.Time `db:"starts_at"`
	EndsAt        *time.Time `db:"ends_at"`
	WinningNumber *int       `db:"winning_number"`
	CreatedAt     time.Time  `db:"created_at"`
}

type Membership struct {
	PoolID         string    `db:"pool_id"`
	UserID         int       `db:"user_id"`
	Username       string    `db:"username"`
	GamesPlayed    int       `db:"games_played"`
	GamesWon       int       `db:"games_won"`
	SelectedNumber *int      `db:"selected_number"`
	Locked         bool      `db:"locked"`
	JoinedAt       time.Time `db:"joined_at"`
}

type Transaction struct {
	ID        string    `db:"id"`
	UserID    int       `db:"user_id"`
	Amount    float64   `db:"amount"`
	Kind      string    `db:"kind"`
	Status    string    `db:"status"`
	Memo      string    `db:"memo"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Balance struct {
	ID             int     `db:"id"`
	UserID         int     `db:"user_id"`
	CurrentBalance float64 `db:"current_balance"`
}

type Profile struct {
	UserID      int    `db:"user_id"`
	Username    string `db:"username"`
	GamesPlayed int    `db:"games_played"`
	GamesWon    int    `db:"games_won"`
}
