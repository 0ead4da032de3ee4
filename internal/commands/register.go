// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (utils, mod, configcmd, appeal, dev)
package commands

import (
	"github.com/PancyStudios/PancyGuardGo/internal/commands/appeal"
	"github.com/PancyStudios/PancyGuardGo/internal/commands/configcmd"
	"github.com/PancyStudios/PancyGuardGo/internal/commands/dev"
	"github.com/PancyStudios/PancyGuardGo/internal/commands/mod"
	"github.com/PancyStudios/PancyGuardGo/internal/commands/utils"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	// Utility commands (/utils ping, status, help, stats, modstats)
	utils.RegisterUtilsCommands(client)

	// Moderation commands (/mod ban, /mod kick, /mod warn, /mod mute, ...)
	mod.RegisterModCommands(client)

	// Configuration commands (/config toggle, staffrole, channel, automod, ...)
	configcmd.RegisterConfigCommands(client)

	// Appeal commands (/appeal submit, status, pending, review)
	appeal.RegisterAppealCommands(client)

	// Dev commands (/dev eval, only in the dev guild)
	dev.Register(client)
}
