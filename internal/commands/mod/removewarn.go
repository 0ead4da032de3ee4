// Package mod - /mod removewarn command
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/PancyStudios/PancyGuardGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// createRemoveWarnCommand creates the /mod removewarn subcommand
func createRemoveWarnCommand() *discord.Command {
	return discord.NewCommand(
		"removewarn",
		"Elimina una advertencia por su número de caso",
		"mod",
		removeWarnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "caso",
			Description: "Número de caso de la advertencia (ej: 0004)",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		RequiresDatabase()
}

// removeWarnHandler handles the /mod removewarn command
func removeWarnHandler(ctx *discord.CommandContext) error {
	caseID := ctx.GetStringOption("caso")

	record, err := database.GetCase(caseID)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo consultar el caso: %v", err))
	}
	if record == nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ El caso `#%s` no existe.", caseID))
	}
	if record.Type != models.ActionWarn {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ El caso `#%s` no es una advertencia (%s).", caseID, record.Type))
	}

	if err := database.DeleteCase(caseID); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo eliminar la advertencia: %v", err))
	}

	mqtt.PublishCaseDeleted(caseID)
	return ctx.Reply(fmt.Sprintf("🗑️ Advertencia `#%s` de <@%s> eliminada.", caseID, record.UserID))
}
