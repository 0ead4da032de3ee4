// Package events provides event handlers for moderation events
package events

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterModerationEvents registers ban-related event handlers.
// Sanctions applied through /mod already post their own case embed, these
// handlers only trace actions taken directly from the Discord UI.
func RegisterModerationEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onGuildBanAdd)
	client.Session.AddHandler(onGuildBanRemove)
}

// onGuildBanAdd is called when a member is banned
func onGuildBanAdd(s *discordgo.Session, b *discordgo.GuildBanAdd) {
	logger.Info(fmt.Sprintf("🔨 Ban detectado: %s#%s en servidor %s",
		b.User.Username, b.User.Discriminator, b.GuildID), "Moderation")
}

// onGuildBanRemove is called when a ban is lifted
func onGuildBanRemove(s *discordgo.Session, b *discordgo.GuildBanRemove) {
	logger.Info(fmt.Sprintf("🕊️ Ban retirado: %s#%s en servidor %s",
		b.User.Username, b.User.Discriminator, b.GuildID), "Moderation")
}
