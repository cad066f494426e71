package request

// DirectMessageEvent is an inbound private message relayed by the platform
// shim to POST /v1/events/dm.
type DirectMessageEvent struct {
	UserID  string `json:"user_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// SelectionEvent is an inbound button press or select-menu choice relayed to
// POST /v1/events/selection. Value carries the selected option for menus and
// is empty for plain buttons.
type SelectionEvent struct {
	CustomID string `json:"custom_id" binding:"required"`
	UserID   string `json:"user_id" binding:"required"`
	Value    string `json:"value"`
	GuildID  string `json:"guild_id"`
}
