package utils

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createModStatsCommand creates the /utils modstats subcommand
func createModStatsCommand() *discord.Command {
	return discord.NewCommand(
		"modstats",
		"Muestra estadísticas de moderación",
		"utils",
		modStatsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "moderador",
			Description: "Limita las estadísticas a un moderador",
			Required:    false,
		},
	).RequiresDatabase()
}

// modStatsHandler handles the /utils modstats command
func modStatsHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		var stats *models.Statistics
		var err error
		title := "📊 Estadísticas de Moderación"

		if moderator := ctx.GetUserOption("moderador"); moderator != nil {
			stats, err = database.GetModeratorStatistics(moderator.ID)
			title = fmt.Sprintf("📊 Estadísticas de %s", moderator.Username)
		} else {
			stats, err = database.GetStatistics()
		}
		if err != nil {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ No se pudieron calcular las estadísticas: %v", err))
			return
		}

		order := []models.ActionType{
			models.ActionWarn, models.ActionMute, models.ActionBan,
			models.ActionKick, models.ActionUnban, models.ActionUnmute,
		}

		fields := make([]*discordgo.MessageEmbedField, 0, len(order)+1)
		for _, t := range order {
			bucket := stats.Bucket(t)
			fields = append(fields, &discordgo.MessageEmbedField{
				Name:   string(t),
				Value:  fmt.Sprintf("7d: **%d** | 30d: **%d** | total: **%d**", bucket.Last7, bucket.Last30, bucket.AllTime),
				Inline: true,
			})
		}
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:  "Total",
			Value: fmt.Sprintf("7d: **%d** | 30d: **%d** | total: **%d**", stats.Total.Last7, stats.Total.Last30, stats.Total.AllTime),
		})

		ctx.ReplyEmbed(&discordgo.MessageEmbed{
			Title:     title,
			Color:     0x5865F2,
			Fields:    fields,
			Timestamp: time.Now().Format(time.RFC3339),
		})
	}()
	return nil
}
