package configcmd

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/PancyStudios/PancyGuardGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// createBanEmbedCommand creates the /config banembed subcommand
func createBanEmbedCommand() *discord.Command {
	return discord.NewCommand(
		"banembed",
		"Personaliza el embed que se envía al banear ({server} se sustituye)",
		"config",
		banEmbedHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "titulo",
			Description: "Título del embed",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "descripcion",
			Description: "Descripción del embed",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "color",
			Description: "Color del embed (decimal)",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "footer",
			Description: "Pie del embed",
			Required:    false,
		},
	).RequiresDatabase()
}

// banEmbedHandler handles the /config banembed command. Omitted options fall
// back to the stock template field by field.
func banEmbedHandler(ctx *discord.CommandContext) error {
	template := models.BanEmbedTemplate{
		Title:       ctx.GetStringOption("titulo"),
		Description: ctx.GetStringOption("descripcion"),
		Color:       int(ctx.GetIntOption("color")),
		Footer:      ctx.GetStringOption("footer"),
	}

	cfg, err := database.SetBanEmbedTemplate(template)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo guardar la plantilla: %v", err))
	}

	mqtt.PublishConfigChanged("banEmbed")

	serverName := "este servidor"
	if guild := ctx.Guild(); guild != nil {
		serverName = guild.Name
	}
	saved := models.DefaultBanEmbed()
	if cfg != nil && cfg.BanEmbed != nil {
		saved = cfg.BanEmbed
	}
	preview := saved.Render(serverName)

	return ctx.ReplyEmbed(&discordgo.MessageEmbed{
		Title:       preview.Title,
		Description: preview.Description,
		Color:       preview.Color,
		Footer:      &discordgo.MessageEmbedFooter{Text: preview.Footer},
	})
}
