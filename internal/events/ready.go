// Package events provides event handlers for the bot
package events

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterReadyEvent registers the ready event handler
func RegisterReadyEvent(client *discord.ExtendedClient) {
	client.Session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		onReady(client, s, r)
	})
	client.Session.AddHandler(onDebug)
}

// onReady is called when the bot successfully connects to Discord
func onReady(client *discord.ExtendedClient, s *discordgo.Session, r *discordgo.Ready) {
	logger.Success(fmt.Sprintf("✅ Bot conectado: %s#%s", r.User.Username, r.User.Discriminator), "Ready")
	logger.Info(fmt.Sprintf("📊 Conectado a %d servidores", len(r.Guilds)), "Ready")

	// Establecer estado del bot
	if err := s.UpdateGameStatus(0, "🛡️ Protegiendo el servidor"); err != nil {
		logger.Error(fmt.Sprintf("Error estableciendo estado: %v", err), "Ready")
	}

	// Registrar en la política los comandos que aún no tienen entrada, para
	// que el evaluador no los trate como desconocidos
	available := client.CommandHandler.Available()
	processed, err := database.DiscoverAndRegisterCommands(available, false)
	if err != nil {
		logger.Error(fmt.Sprintf("Error sincronizando la política de comandos: %v", err), "Ready")
		return
	}
	if processed > 0 {
		logger.Info(fmt.Sprintf("🔐 Política de comandos sincronizada (%d nuevos)", processed), "Ready")
	}

	logger.Debug("Estado del bot establecido correctamente", "Ready")
}

func onDebug(s *discordgo.Session, log string) {
	logger.Debug(log, "DiscordGO")
}
