package domain

const (
	// PoolStatusWaiting pool created, pre-game countdown running;
	PoolStatusWaiting string = "waiting"
	// PoolStatusActive round in progress, selections can be locked;
	PoolStatusActive string = "active"
	// PoolStatusCompleted round settled, terminal;
	PoolStatusCompleted string = "completed"
)

const (
	TxnKindGameEntry  string = "game_entry"
	TxnKindRefund     string = "refund"
	TxnKindPrize      string = "prize"
	TxnKindDeposit    string = "deposit"
	TxnKindWithdrawal string = "withdrawal"
)

const (
	TxnStatusPending   string = "pending"
	TxnStatusCompleted string = "completed"
	TxnStatusFailed    string = "failed"
)
