// Package configcmd - /config discover, view and reset commands
package configcmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// createDiscoverCommand creates the /config discover subcommand
func createDiscoverCommand() *discord.Command {
	return discord.NewCommand(
		"discover",
		"Registra los comandos declarados en la configuración",
		"config",
		discoverHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionBoolean,
			Name:        "forzar",
			Description: "Reaplica el valor isPublic declarado a comandos ya registrados",
			Required:    false,
		},
	).RequiresDatabase()
}

// discoverHandler handles the /config discover command
func discoverHandler(ctx *discord.CommandContext) error {
	force := ctx.GetBoolOption("forzar")

	available := ctx.Client.CommandHandler.Available()
	processed, err := database.DiscoverAndRegisterCommands(available, force)
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ Error durante el descubrimiento: %v", err))
	}

	mqtt.PublishConfigChanged("commands")
	return ctx.Reply(fmt.Sprintf("🔄 Descubrimiento completado: %d comandos procesados.", processed))
}

// createViewCommand creates the /config view subcommand
func createViewCommand() *discord.Command {
	return discord.NewCommand(
		"view",
		"Muestra la configuración actual",
		"config",
		viewHandler,
	).RequiresDatabase()
}

// viewHandler handles the /config view command
func viewHandler(ctx *discord.CommandContext) error {
	cfg, err := database.GetConfig()
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo cargar la configuración: %v", err))
	}

	channel := func(id *string) string {
		if id == nil || *id == "" {
			return "sin configurar"
		}
		return fmt.Sprintf("<#%s>", *id)
	}
	onOff := func(v bool) string {
		if v {
			return "✅"
		}
		return "❌"
	}

	staff := "ninguno"
	if len(cfg.StaffRoles) > 0 {
		mentions := make([]string, 0, len(cfg.StaffRoles))
		for _, id := range cfg.StaffRoles {
			mentions = append(mentions, fmt.Sprintf("<@&%s>", id))
		}
		staff = strings.Join(mentions, ", ")
	}

	names := make([]string, 0, len(cfg.Commands))
	for name := range cfg.Commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var commandLines []string
	for _, name := range names {
		policy := cfg.Commands[name]
		kind := "staff"
		if policy.IsPublic {
			kind = "público"
		}
		commandLines = append(commandLines, fmt.Sprintf("`%s` %s %s (wl:%d, bl:%d)",
			name, onOff(policy.Enabled), kind, len(policy.Whitelist), len(policy.Blacklist)))
	}
	commandSummary := "ninguno registrado"
	if len(commandLines) > 0 {
		commandSummary = strings.Join(commandLines, "\n")
	}

	embed := &discordgo.MessageEmbed{
		Title: "⚙️ Configuración de PancyGuard",
		Color: 0x5865F2,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Roles de staff", Value: staff},
			{
				Name: "Sistemas",
				Value: fmt.Sprintf(
					"Logging: %s | Mensajes: %s | Apelaciones: %s | Automod: %s",
					onOff(cfg.IsLoggingEnabled()),
					onOff(cfg.IsMessageLoggingEnabled()),
					onOff(cfg.IsAppealsEnabled()),
					onOff(cfg.IsAutomodEnabled()),
				),
			},
			{
				Name: "Canales",
				Value: fmt.Sprintf(
					"Logs: %s | Mensajes: %s | Apelaciones: %s",
					channel(cfg.LogsChannelID),
					channel(cfg.MessageLogsChannelID),
					channel(cfg.AppealsChannelID),
				),
			},
			{Name: fmt.Sprintf("Comandos (%d)", len(cfg.Commands)), Value: commandSummary},
			{Name: "Reglas de automod", Value: fmt.Sprintf("%d reglas", len(cfg.AutomodRules)), Inline: true},
		},
	}
	return ctx.ReplyEphemeralEmbed(embed)
}

// createResetCommand creates the /config reset subcommand
func createResetCommand() *discord.Command {
	return discord.NewCommand(
		"reset",
		"Restablece toda la configuración a sus valores por defecto",
		"config",
		resetHandler,
	).RequiresDatabase()
}

// resetHandler handles the /config reset command
func resetHandler(ctx *discord.CommandContext) error {
	if _, err := database.ResetConfig(); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo restablecer la configuración: %v", err))
	}

	mqtt.PublishConfigChanged("reset")
	return ctx.Reply("♻️ Configuración restablecida a los valores por defecto. Usa `/config discover` para volver a registrar los comandos.")
}
