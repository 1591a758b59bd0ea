package realtime

// Event is a pool-scoped notification fanned out to subscribed clients.
type Event struct {
	Type   string         `json:"type"`
	PoolID string         `json:"pool_id"`
	UserID int            `json:"user_id,omitempty"`
	Data   map[string]any `json:"data,omitempty"`
}

const (
	EventMemberJoined = "member_joined"
	EventMemberLeft   = "member_left"
	EventNumberLocked = "number_locked"
	EventRoundStarted = "round_started"
	EventRoundSettled = "round_settled"
)
