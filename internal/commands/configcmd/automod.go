// Package configcmd - /config automod commands
package configcmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/mqtt"
	"github.com/bwmarrin/discordgo"
)

// createAutomodAddCommand creates the /config automod add subcommand
func createAutomodAddCommand() *discord.Command {
	return discord.NewCommand(
		"add",
		"Añade o reemplaza una regla de escalación",
		"config",
		automodAddHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "umbral",
			Description: "Número de advertencias que dispara la regla",
			Required:    true,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "accion",
			Description: "Acción a aplicar",
			Required:    true,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "mute", Value: "mute"},
				{Name: "kick", Value: "kick"},
				{Name: "ban", Value: "ban"},
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "duracion",
			Description: "Duración del mute (ej: 10m, 2h), solo para mute",
			Required:    false,
		},
	).RequiresDatabase()
}

// automodAddHandler handles the /config automod add command
func automodAddHandler(ctx *discord.CommandContext) error {
	threshold := int(ctx.GetIntOption("umbral"))
	action := ctx.GetStringOption("accion")

	var duration *int64
	if raw := ctx.GetStringOption("duracion"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return ctx.ReplyEphemeral(fmt.Sprintf("❌ Duración inválida: %s", raw))
		}
		ms := d.Milliseconds()
		duration = &ms
	}

	if _, err := database.AddAutomodRule(threshold, action, duration); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo guardar la regla: %v", err))
	}

	mqtt.PublishConfigChanged("automod")
	return ctx.Reply(fmt.Sprintf("🤖 Regla guardada: %d advertencias → %s.", threshold, action))
}

// createAutomodRemoveCommand creates the /config automod remove subcommand
func createAutomodRemoveCommand() *discord.Command {
	return discord.NewCommand(
		"remove",
		"Elimina una regla de escalación",
		"config",
		automodRemoveHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "umbral",
			Description: "Umbral de la regla a eliminar",
			Required:    true,
		},
	).RequiresDatabase()
}

// automodRemoveHandler handles the /config automod remove command
func automodRemoveHandler(ctx *discord.CommandContext) error {
	threshold := int(ctx.GetIntOption("umbral"))

	if _, err := database.RemoveAutomodRule(threshold); err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudo eliminar la regla: %v", err))
	}

	mqtt.PublishConfigChanged("automod")
	return ctx.Reply(fmt.Sprintf("🤖 Regla de umbral %d eliminada.", threshold))
}

// createAutomodListCommand creates the /config automod list subcommand
func createAutomodListCommand() *discord.Command {
	return discord.NewCommand(
		"list",
		"Lista las reglas de escalación",
		"config",
		automodListHandler,
	).RequiresDatabase()
}

// automodListHandler handles the /config automod list command
func automodListHandler(ctx *discord.CommandContext) error {
	rules, err := database.GetAutomodRules()
	if err != nil {
		return ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudieron consultar las reglas: %v", err))
	}

	enabled, _ := database.IsAutomodEnabled()
	state := "desactivado ❌"
	if enabled {
		state = "activado ✅"
	}

	if len(rules) == 0 {
		return ctx.ReplyEphemeral(fmt.Sprintf("🤖 Automod %s. No hay reglas configuradas.", state))
	}

	var lines []string
	for _, r := range rules {
		line := fmt.Sprintf("• **%d** advertencias → `%s`", r.Threshold, r.Action)
		if r.Duration != nil {
			line += fmt.Sprintf(" (%s)", (time.Duration(*r.Duration) * time.Millisecond).String())
		}
		lines = append(lines, line)
	}

	return ctx.ReplyEphemeral(fmt.Sprintf("🤖 Automod %s.\n%s", state, strings.Join(lines, "\n")))
}
