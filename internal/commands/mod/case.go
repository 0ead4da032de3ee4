// Package mod - /mod case and /mod reason commands
package mod

import (
	"fmt"
	"strings"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createCaseCommand creates the /mod case subcommand
func createCaseCommand() *discord.Command {
	return discord.NewCommand(
		"case",
		"Muestra un caso de moderación",
		"mod",
		caseHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "caso",
			Description: "Número de caso (ej: 0004)",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		RequiresDatabase()
}

// caseHandler handles the /mod case command
func caseHandler(ctx *discord.CommandContext) error {
	caseID := ctx.GetStringOption("caso")

	record, err := database.GetCase(caseID)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo consultar el caso: %v", err))
	}
	if record == nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ El caso `#%s` no existe.", caseID))
	}

	embed := caseEmbed(record)

	// Attach the appeal history of the case, if any
	appeals, err := database.GetCaseAppeals(caseID)
	if err == nil && len(appeals) > 0 {
		var lines []string
		for _, a := range appeals {
			lines = append(lines, fmt.Sprintf("`%s` — %s", a.ID, a.Status))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Apelaciones",
			Value: strings.Join(lines, "\n"),
		})
	}

	return ctx.ReplyEmbed(embed)
}

// createReasonCommand creates the /mod reason subcommand
func createReasonCommand() *discord.Command {
	return discord.NewCommand(
		"reason",
		"Actualiza la razón de un caso",
		"mod",
		reasonHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "caso",
			Description: "Número de caso (ej: 0004)",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Nueva razón",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		RequiresDatabase()
}

// reasonHandler handles the /mod reason command
func reasonHandler(ctx *discord.CommandContext) error {
	caseID := ctx.GetStringOption("caso")
	reason := ctx.GetStringOption("razon")

	record, err := database.UpdateCaseReason(caseID, reason)
	if err != nil {
		if err == database.ErrCaseNotFound {
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ El caso `#%s` no existe.", caseID))
		}
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo actualizar el caso: %v", err))
	}

	return ctx.ReplyEmbed(caseEmbed(record))
}
