// Package events provides event handlers for message events
package events

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterMessageEvents registers all message-related event handlers
func RegisterMessageEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onMessageUpdate)
	client.Session.AddHandler(onMessageDelete)
}

// messageLogTarget resolves the channel where a message event should be
// logged. Returns empty when logging is off, unconfigured, or the source
// channel is excluded.
func messageLogTarget(sourceChannelID string) string {
	enabled, err := database.IsMessageLoggingEnabled()
	if err != nil || !enabled {
		return ""
	}

	target, err := database.GetMessageLogsChannel()
	if err != nil || target == "" {
		return ""
	}

	// No registrar el propio canal de logs, provocaría un bucle
	if target == sourceChannelID {
		return ""
	}

	excluded, err := database.IsMessageLogsBlacklisted(sourceChannelID)
	if err != nil || excluded {
		return ""
	}
	return target
}

// onMessageUpdate is called when a message is edited
func onMessageUpdate(s *discordgo.Session, m *discordgo.MessageUpdate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	target := messageLogTarget(m.ChannelID)
	if target == "" {
		return
	}

	before := "*desconocido*"
	if m.BeforeUpdate != nil && m.BeforeUpdate.Content != "" {
		before = m.BeforeUpdate.Content
	}

	embed := &discordgo.MessageEmbed{
		Title: "✏️ Mensaje editado",
		Color: 0xFFCC00,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Autor", Value: fmt.Sprintf("<@%s>", m.Author.ID), Inline: true},
			{Name: "Canal", Value: fmt.Sprintf("<#%s>", m.ChannelID), Inline: true},
			{Name: "Antes", Value: before},
			{Name: "Después", Value: m.Content},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if _, err := s.ChannelMessageSendEmbed(target, embed); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo registrar la edición del mensaje %s: %v", m.ID, err), "Message")
	}
}

// onMessageDelete is called when a message is deleted
func onMessageDelete(s *discordgo.Session, m *discordgo.MessageDelete) {
	target := messageLogTarget(m.ChannelID)
	if target == "" {
		return
	}

	author := "*desconocido*"
	content := "*contenido no disponible*"
	if m.BeforeDelete != nil {
		if m.BeforeDelete.Author != nil {
			if m.BeforeDelete.Author.Bot {
				return
			}
			author = fmt.Sprintf("<@%s>", m.BeforeDelete.Author.ID)
		}
		if m.BeforeDelete.Content != "" {
			content = m.BeforeDelete.Content
		}
	}

	embed := &discordgo.MessageEmbed{
		Title: "🗑️ Mensaje eliminado",
		Color: 0xFF5555,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Autor", Value: author, Inline: true},
			{Name: "Canal", Value: fmt.Sprintf("<#%s>", m.ChannelID), Inline: true},
			{Name: "Contenido", Value: content},
		},
		Timestamp: time.Now().Format(time.RFC3339),
	}

	if _, err := s.ChannelMessageSendEmbed(target, embed); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo registrar la eliminación del mensaje %s: %v", m.ID, err), "Message")
	}
}
