// Package appeal provides the /appeal command group: filing appeals against
// moderation cases and reviewing them.
package appeal

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/PancyStudios/PancyGuardGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// createSubmitCommand creates the /appeal submit subcommand
func createSubmitCommand() *discord.Command {
	return discord.NewCommand(
		"submit",
		"Apela una sanción de moderación",
		"appeal",
		submitHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "caso",
			Description: "Número del caso a apelar (ej: 0004)",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Por qué crees que la sanción debe reconsiderarse",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "aprendido",
			Description: "Qué has aprendido de la situación",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "comentarios",
			Description: "Comentarios adicionales",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "contacto",
			Description: "Forma de contacto alternativa",
			Required:    false,
		},
	).RequiresDatabase()
}

// submitHandler handles the /appeal submit command
func submitHandler(ctx *discord.CommandContext) error {
	enabled, err := database.IsAppealsEnabled()
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo verificar el sistema de apelaciones: %v", err))
	}
	if !enabled {
		return ctx.ReplyEphemeral("🚫 El sistema de apelaciones está desactivado.")
	}

	caseID := ctx.GetStringOption("caso")
	reason := ctx.GetStringOption("razon")
	learned := ctx.GetStringOption("aprendido")

	var comments, contact *string
	if v := ctx.GetStringOption("comentarios"); v != "" {
		comments = &v
	}
	if v := ctx.GetStringOption("contacto"); v != "" {
		contact = &v
	}

	record, err := database.SubmitAppeal(caseID, ctx.User().ID, reason, learned, comments, contact)
	if err != nil {
		switch err {
		case database.ErrCaseNotFound:
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ El caso `#%s` no existe.", caseID))
		case database.ErrAppealAlreadyPending:
			return ctx.ReplyEphemeral(fmt.Sprintf("⏳ Ya tienes una apelación pendiente para el caso `#%s`.", caseID))
		}
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo enviar la apelación: %v", err))
	}

	mqtt.PublishAppealSubmitted(record)
	postAppealToChannel(ctx, record)

	return ctx.ReplyEphemeral(fmt.Sprintf("📨 Apelación `%s` enviada para el caso `#%s`. El staff la revisará pronto.", record.ID, caseID))
}

// postAppealToChannel publishes the appeal embed in the review channel
func postAppealToChannel(ctx *discord.CommandContext, record *models.Appeal) {
	channelID, err := database.GetAppealsChannel()
	if err != nil || channelID == "" {
		return
	}

	if _, err := ctx.Session.ChannelMessageSendEmbed(channelID, appealEmbed(record)); err != nil {
		logger.Warn(fmt.Sprintf("No se pudo publicar la apelación %s en el canal de apelaciones: %v", record.ID, err), "Appeals")
	}
}

// appealEmbed builds the embed shared by the review queue and case views
func appealEmbed(record *models.Appeal) *discordgo.MessageEmbed {
	fields := []*discordgo.MessageEmbedField{
		{Name: "Caso", Value: fmt.Sprintf("#%s", record.CaseID), Inline: true},
		{Name: "Usuario", Value: fmt.Sprintf("<@%s>", record.UserID), Inline: true},
		{Name: "Estado", Value: string(record.Status), Inline: true},
		{Name: "Razón", Value: record.Reason},
		{Name: "Qué aprendió", Value: record.Learned},
	}
	if record.Comments != nil {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Comentarios", Value: *record.Comments})
	}
	if record.Contact != nil {
		fields = append(fields, &discordgo.MessageEmbedField{Name: "Contacto", Value: *record.Contact})
	}
	if record.ProcessedBy != nil {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Revisada por",
			Value:  fmt.Sprintf("<@%s>", *record.ProcessedBy),
			Inline: true,
		})
	}

	color := 0xFFCC00
	switch record.Status {
	case models.AppealApproved:
		color = 0x00CC66
	case models.AppealDenied:
		color = 0xFF0000
	}

	return &discordgo.MessageEmbed{
		Title:     fmt.Sprintf("📨 Apelación %s", record.ID),
		Color:     color,
		Fields:    fields,
		Timestamp: record.SubmittedAt,
	}
}

// statusTimestamp formats an optional RFC3339 timestamp for display
func statusTimestamp(value *string) string {
	if value == nil {
		return "pendiente"
	}
	if t, err := time.Parse(time.RFC3339, *value); err == nil {
		return t.Format("2006-01-02 15:04")
	}
	return *value
}
