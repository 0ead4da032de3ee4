// Package events provides event handlers for member events
package events

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterMemberEvents registers all member-related event handlers
func RegisterMemberEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onGuildMemberAdd)
	client.Session.AddHandler(onGuildMemberRemove)
	client.Session.AddHandler(onGuildMemberUpdate)
}

// onGuildMemberAdd is called when a new member joins the server
func onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	logger.Info(fmt.Sprintf("👋 Nuevo miembro: %s#%s en servidor %s",
		m.User.Username, m.User.Discriminator, m.GuildID), "Member")

	// Avisar al staff si el recién llegado tiene historial de sanciones
	cases, err := database.GetUserCases(m.User.ID)
	if err != nil || len(cases) == 0 {
		return
	}

	enabled, err := database.IsLoggingEnabled()
	if err != nil || !enabled {
		return
	}
	channelID, err := database.GetLogsChannel()
	if err != nil || channelID == "" {
		return
	}

	embed := &discordgo.MessageEmbed{
		Title:       "⚠️ Miembro con historial",
		Description: fmt.Sprintf("<@%s> se ha unido y tiene **%d** casos de moderación previos.\nUsa `/mod case` para revisarlos.", m.User.ID, len(cases)),
		Color:       0xFFCC00,
		Thumbnail: &discordgo.MessageEmbedThumbnail{
			URL: m.User.AvatarURL("128"),
		},
	}

	if _, err := s.ChannelMessageSendEmbed(channelID, embed); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo avisar del historial de %s: %v", m.User.ID, err), "Member")
	}
}

// onGuildMemberRemove is called when a member leaves the server
func onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	logger.Info(fmt.Sprintf("👋 Adiós: %s#%s salió del servidor %s",
		m.User.Username, m.User.Discriminator, m.GuildID), "Member")
}

// onGuildMemberUpdate is called when a member is updated (roles, timeout, etc.)
func onGuildMemberUpdate(s *discordgo.Session, m *discordgo.GuildMemberUpdate) {
	if m.BeforeUpdate == nil {
		return
	}

	// Detectar cambio de roles, afecta a la política de comandos
	if len(m.BeforeUpdate.Roles) != len(m.Roles) {
		logger.Debug(fmt.Sprintf("🎭 Roles actualizados para %s", m.User.Username), "Member")
	}

	// Detectar timeouts aplicados fuera del bot
	before := m.BeforeUpdate.CommunicationDisabledUntil
	after := m.CommunicationDisabledUntil
	if after != nil && (before == nil || !before.Equal(*after)) {
		logger.Debug(fmt.Sprintf("🔇 Timeout actualizado para %s hasta %s",
			m.User.Username, after.Format("2006-01-02 15:04")), "Member")
	}
}
