// Package mod - /mod warnings command
package mod

import (
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createWarningsCommand creates the /mod warnings subcommand
func createWarningsCommand() *discord.Command {
	return discord.NewCommand(
		"warnings",
		"Lista las advertencias de un usuario",
		"mod",
		warningsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a consultar",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		RequiresDatabase()
}

// warningsHandler handles the /mod warnings command
func warningsHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	warnings, err := database.GetUserWarnings(user.ID)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudieron consultar las advertencias: %v", err))
	}

	if len(warnings) == 0 {
		return ctx.ReplyEphemeral(fmt.Sprintf("✅ **%s** no tiene advertencias.", user.Username))
	}

	var lines []string
	for _, w := range warnings {
		when := w.Timestamp
		if t := w.Time(); !t.IsZero() {
			when = t.Format("2006-01-02 15:04")
		}
		lines = append(lines, fmt.Sprintf("`#%s` %s — %s (por <@%s>)", w.CaseID, when, w.Reason, w.ModeratorID))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⚠️ Advertencias de %s (%d)", user.Username, len(warnings)),
		Description: strings.Join(lines, "\n"),
		Color:       0xFFCC00,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	return ctx.ReplyEmbed(embed)
}
