package interfaces

import "context"

// IPlatformGateway abstracts the chat platform's REST surface (e.g. Discord).
//
// The core only ever requests side effects through it: delivering direct
// messages, provisioning private order channels, and enforcing bans. Event
// delivery flows the other way, through the HTTP intake endpoints.
type IPlatformGateway interface {
	SendDirectMessage(ctx context.Context, userID, content string) error
	// CreatePrivateChannel creates a members-only text channel in the guild
	// and returns its id.
	CreatePrivateChannel(ctx context.Context, guildID, name string) (string, error)
	AddChannelMember(ctx context.Context, channelID, userID string) error
	BanMember(ctx context.Context, guildID, userID, reason string) error
	SendChannelMessage(ctx context.Context, channelID, content string) error
}
