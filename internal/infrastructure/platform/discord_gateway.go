package platform

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"discord_clerk/internal/usecase/interfaces"

	"github.com/bwmarrin/discordgo"
)

var ErrMissingDiscordBotToken = errors.New("missing DISCORD_BOT_TOKEN")
var ErrDiscordGatewayNotConfigured = errors.New("discord gateway not configured")

// DiscordGateway fulfils the platform side-effect requests over Discord's
// REST API. Event delivery (commands, selections, direct messages) does not
// pass through here; it arrives via the HTTP intake.
//
// Mock mode (PLATFORM_GATEWAY_MOCK / DISCORD_MOCK) logs every request and
// fabricates ids, for local runs without a bot token.

type DiscordGateway struct {
	session  *discordgo.Session
	mockMode bool
}

var _ interfaces.IPlatformGateway = (*DiscordGateway)(nil)

func NewDiscordGateway(botToken string) (*DiscordGateway, error) {
	if isPlatformGatewayMockEnabled() {
		log.Printf("[platform][gateway] mock mode enabled")
		return &DiscordGateway{mockMode: true}, nil
	}

	if botToken == "" {
		log.Printf("[platform][gateway] missing DISCORD_BOT_TOKEN")
		return nil, ErrMissingDiscordBotToken
	}

	session, err := discordgo.New("Bot " + botToken)
	if err != nil {
		log.Printf("[platform][gateway] failed creating discord session err=%v", err)
		return nil, err
	}
	log.Printf("[platform][gateway] Discord client initialized")

	// REST-only usage; the websocket gateway is never opened.
	return &DiscordGateway{session: session}, nil
}

func (g *DiscordGateway) SendDirectMessage(ctx context.Context, userID, content string) error {
	if g != nil && g.mockMode {
		log.Printf("[platform][gateway] mock dm user_id=%s content_len=%d", userID, len(content))
		return nil
	}
	if g == nil || g.session == nil {
		return ErrDiscordGatewayNotConfigured
	}

	channel, err := g.session.UserChannelCreate(userID, discordgo.WithContext(ctx))
	if err != nil {
		log.Printf("[platform][gateway] dm channel create failed user_id=%s err=%v", userID, err)
		return err
	}
	if _, err := g.session.ChannelMessageSend(channel.ID, content, discordgo.WithContext(ctx)); err != nil {
		log.Printf("[platform][gateway] dm send failed user_id=%s err=%v", userID, err)
		return err
	}
	return nil
}

func (g *DiscordGateway) CreatePrivateChannel(ctx context.Context, guildID, name string) (string, error) {
	if g != nil && g.mockMode {
		id := "mock-channel-" + strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[platform][gateway] mock channel create guild_id=%s name=%s channel_id=%s", guildID, name, id)
		return id, nil
	}
	if g == nil || g.session == nil {
		return "", ErrDiscordGatewayNotConfigured
	}

	channel, err := g.session.GuildChannelCreateComplex(guildID, discordgo.GuildChannelCreateData{
		Name: name,
		Type: discordgo.ChannelTypeGuildText,
		PermissionOverwrites: []*discordgo.PermissionOverwrite{
			{
				// The @everyone role id equals the guild id; denying it view
				// access makes the channel private.
				ID:   guildID,
				Type: discordgo.PermissionOverwriteTypeRole,
				Deny: discordgo.PermissionViewChannel,
			},
		},
	}, discordgo.WithContext(ctx))
	if err != nil {
		log.Printf("[platform][gateway] channel create failed guild_id=%s name=%s err=%v", guildID, name, err)
		return "", err
	}
	log.Printf("[platform][gateway] channel created guild_id=%s channel_id=%s", guildID, channel.ID)
	return channel.ID, nil
}

func (g *DiscordGateway) AddChannelMember(ctx context.Context, channelID, userID string) error {
	if g != nil && g.mockMode {
		log.Printf("[platform][gateway] mock member add channel_id=%s user_id=%s", channelID, userID)
		return nil
	}
	if g == nil || g.session == nil {
		return ErrDiscordGatewayNotConfigured
	}

	err := g.session.ChannelPermissionSet(
		channelID,
		userID,
		discordgo.PermissionOverwriteTypeMember,
		discordgo.PermissionViewChannel|discordgo.PermissionSendMessages,
		0,
		discordgo.WithContext(ctx),
	)
	if err != nil {
		log.Printf("[platform][gateway] member add failed channel_id=%s user_id=%s err=%v", channelID, userID, err)
	}
	return err
}

func (g *DiscordGateway) BanMember(ctx context.Context, guildID, userID, reason string) error {
	if g != nil && g.mockMode {
		log.Printf("[platform][gateway] mock ban guild_id=%s user_id=%s reason=%q", guildID, userID, reason)
		return nil
	}
	if g == nil || g.session == nil {
		return ErrDiscordGatewayNotConfigured
	}

	if err := g.session.GuildBanCreateWithReason(guildID, userID, reason, 0, discordgo.WithContext(ctx)); err != nil {
		log.Printf("[platform][gateway] ban failed guild_id=%s user_id=%s err=%v", guildID, userID, err)
		return fmt.Errorf("ban member %s: %w", userID, err)
	}
	log.Printf("[platform][gateway] ban executed guild_id=%s user_id=%s", guildID, userID)
	return nil
}

func (g *DiscordGateway) SendChannelMessage(ctx context.Context, channelID, content string) error {
	if g != nil && g.mockMode {
		log.Printf("[platform][gateway] mock channel message channel_id=%s content_len=%d", channelID, len(content))
		return nil
	}
	if g == nil || g.session == nil {
		return ErrDiscordGatewayNotConfigured
	}

	if _, err := g.session.ChannelMessageSend(channelID, content, discordgo.WithContext(ctx)); err != nil {
		log.Printf("[platform][gateway] channel message failed channel_id=%s err=%v", channelID, err)
		return err
	}
	return nil
}

func isPlatformGatewayMockEnabled() bool {
	for _, key := range []string{"PLATFORM_GATEWAY_MOCK", "DISCORD_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
