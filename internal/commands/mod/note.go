// Package mod - /mod note and /mod notes commands
package mod

import (
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/bwmarrin/discordgo"
)

// createNoteCommand creates the /mod note subcommand
func createNoteCommand() *discord.Command {
	return discord.NewCommand(
		"note",
		"Añade una nota interna sobre un usuario",
		"mod",
		noteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario anotado",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "nota",
			Description: "Contenido de la nota",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		RequiresDatabase()
}

// noteHandler handles the /mod note command
func noteHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	note := ctx.GetStringOption("nota")
	if note == "" {
		return ctx.ReplyEphemeral("❌ La nota no puede estar vacía.")
	}

	record, err := database.AddUserNote(user.ID, ctx.User().ID, note)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo guardar la nota: %v", err))
	}

	return ctx.ReplyEphemeral(fmt.Sprintf("📝 Nota `%s` guardada sobre **%s**.", record.ID, user.Username))
}

// createNotesCommand creates the /mod notes subcommand
func createNotesCommand() *discord.Command {
	return discord.NewCommand(
		"notes",
		"Lista las notas internas de un usuario",
		"mod",
		notesHandler,
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

// notesHandler handles the /mod notes command
func notesHandler(ctx *discord.CommandContext) error {
	user := ctx.GetUserOption("usuario")
	if user == nil {
		return ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
	}

	notes, err := database.GetUserNotes(user.ID)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudieron consultar las notas: %v", err))
	}

	if len(notes) == 0 {
		return ctx.ReplyEphemeral(fmt.Sprintf("📭 **%s** no tiene notas.", user.Username))
	}

	var lines []string
	for _, n := range notes {
		lines = append(lines, fmt.Sprintf("`%s` %s (por <@%s>)", n.ID, n.Note, n.ModeratorID))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📝 Notas de %s (%d)", user.Username, len(notes)),
		Description: strings.Join(lines, "\n"),
		Color:       0x5865F2,
		Timestamp:   time.Now().Format(time.RFC3339),
	}
	return ctx.ReplyEphemeralEmbed(embed)
}
