package database

import (
	"errors"
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/PancyStudios/PancyGuardGo/pkg/permissions"
	"go.mongodb.org/mongo-driver/bson"
)

var ErrConfigManagerNotInitialized = errors.New("config data manager not initialized")

func getConfigManager() (*DataManager[models.GuildConfig], error) {
	if GlobalConfigDM == nil {
		return nil, ErrConfigManagerNotInitialized
	}
	return GlobalConfigDM, nil
}

func configQuery() bson.M {
	return bson.M{"id": models.ConfigID}
}

// GetConfig returns the global configuration document, creating it with
// defaults on first access. Fields missing from older documents are
// back-filled and persisted once (migration on read).
func GetConfig() (*models.GuildConfig, error) {
	dm, err := getConfigManager()
	if err != nil {
		return nil, err
	}

	cfg, err := dm.Get(configQuery())
	if err != nil {
		return nil, err
	}

	if cfg == nil {
		cfg = models.NewGuildConfig()
		cfg.CreatedAt = time.Now().UTC().Format(time.RFC3339)
		logger.System("Creando documento de configuración global por primera vez", "Config")
		if cfg, err = dm.Set(configQuery(), cfg); err != nil {
			return nil, err
		}
		return cfg.Clone(), nil
	}

	// The cache returns the same document to every caller; hand out a private
	// copy so the mutators never write the maps and slices a concurrent
	// permission evaluation is reading.
	cfg = cfg.Clone()

	if cfg.ApplyDefaults() {
		logger.Debug("Configuración con campos ausentes, aplicando valores por defecto", "Config")
		if cfg, err = dm.Set(configQuery(), cfg); err != nil {
			return nil, err
		}
		return cfg.Clone(), nil
	}

	return cfg, nil
}

// SetConfig persists the whole configuration document (last-write-wins:
// concurrent mutators racing on the singleton can lose updates, acceptable
// for a low-write-rate admin surface).
func SetConfig(cfg *models.GuildConfig) (*models.GuildConfig, error) {
	dm, err := getConfigManager()
	if err != nil {
		return nil, err
	}
	cfg.ID = models.ConfigID
	persisted, err := dm.Set(configQuery(), cfg)
	if err != nil {
		return nil, err
	}
	return persisted.Clone(), nil
}

// ResetConfig replaces the configuration with a fresh default document
func ResetConfig() (*models.GuildConfig, error) {
	return SetConfig(models.NewGuildConfig())
}

// mutateConfig runs a read-modify-write cycle over the singleton
func mutateConfig(mutate func(cfg *models.GuildConfig)) (*models.GuildConfig, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	mutate(cfg)
	return SetConfig(cfg)
}

// CheckCommandPermission loads a configuration snapshot and evaluates whether
// the requester may invoke the command.
func CheckCommandPermission(commandName string, roleIDs []string, isOwner bool) (permissions.Decision, error) {
	cfg, err := GetConfig()
	if err != nil {
		return permissions.Decision{}, err
	}
	return permissions.Evaluate(cfg, commandName, roleIDs, isOwner), nil
}

// ===== Command policy mutators =====

// SetCommandEnabled habilita o deshabilita un comando
func SetCommandEnabled(command string, enabled bool) (*models.GuildConfig, error) {
	return mutateConfig(func(cfg *models.GuildConfig) {
		cfg.EnsureCommand(command).Enabled = enabled
	})
}

// SetCommandPublic marca un comando como público o solo-staff
func SetCommandPublic(command string, isPublic bool) (*models.GuildConfig, error) {
	return mutateConfig(func(cfg *models.GuildConfig) {
		cfg.EnsureCommand(command).IsPublic = isPublic
	})
}

// SetCommandWhitelist replaces the whole whitelist of a command
func SetCommandWhitelist(command string, roleIDs []string) (*models.GuildConfig, error) {
	return mutateConfig(func(cfg *models.GuildConfig) {
		cfg.EnsureCommand(command).Whitelist = roleIDs
	})
}

// SetCommandBlacklist replaces the whole blacklist of a command
func SetCommandBlacklist(command string, roleIDs []string) (*models.GuildConfig, error) {
	return mutateConfig(func(cfg *models.GuildConfig) {
		cfg.EnsureCommand(command).Blacklist = roleIDs
	})
}

// AddCommandWhitelistRole añade un rol a la whitelist (idempotente)
func AddCommandWhitelistRole(command, roleID string) (*models.GuildConfig, error) {
	return mutateConfig(func(cfg *models.GuildConfig) {
		cfg.AddWhitelistRole(command, roleID)
	})
}

// RemoveCommandWhitelistRole quita un rol de la whitelist (idempotente)
func RemoveCommandWhitelistRole(command, roleID string) (*models.GuildConfig, error) {
	return mutateConfig(func(cfg *models.GuildConfig) {
		cfg.RemoveWhitelistRole(command, roleID)
	})
}

// AddCommandBlacklistRole añade un rol a la blacklist (idempotente)
func AddCommandBlacklistRole(command, roleID string) (*models.GuildConfig, error) {
	return mutateConfig(func(cfg *models.GuildConfig) {
		cfg.AddBlacklistRole(command, roleID)
	})
}

// RemoveCommandBlacklistRole quita un rol de la blacklist (idempotente)
func RemoveCommandBlacklistRole(command, roleID string) (*models.GuildConfig, error) {
	return mutateConfig(func(cfg *models.GuildConfig) {
		cfg.RemoveBlacklistRole(command, roleID)
	})
}

// UpdateCommandRoleList routes a whitelist/blacklist add/remove by name,
// used by the interactive config menus.
func UpdateCommandRoleList(listType, command, roleID string, add bool) (*models.GuildConfig, error) {
	switch listType {
	case "whitelist":
		if add {
			return AddCommandWhitelistRole(command, roleID)
		}
		return RemoveCommandWhitelistRole(command, roleID)
	case "blacklist":
		if add {
			return AddCommandBlacklistRole(command, roleID)
		}
		return RemoveCommandBlacklistRole(command, roleID)
	}
	return nil, fmt.Errorf("unknown role list type: %s", listType)
}

// SetStaffRole adds or removes a global staff role (idempotent)
func SetStaffRole(roleID string, add bool) (*models.GuildConfig, error) {
	return mutateConfig(func(cfg *models.GuildConfig) {
		cfg.SetStaffRole(roleID, add)
	})
}

// GetStaffRoles returns the global staff role set
func GetStaffRoles() ([]string, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return cfg.StaffRoles, nil
}

// IsUserStaff reports whether any of the roles is a global staff role
func IsUserStaff(roleIDs []string) (bool, error) {
	cfg, err := GetConfig()
	if err != nil {
		return false, err
	}
	return cfg.IsStaff(roleIDs), nil
}

// GetCommandConfig returns the policy of a command, nil when unknown
func GetCommandConfig(command string) (*models.CommandPolicy, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return cfg.CommandConfig(command), nil
}

// GetAllCommandSettings returns every persisted command policy
func GetAllCommandSettings() (map[string]*models.CommandPolicy, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return cfg.Commands, nil
}

// IsCommandEnabled reports whether a known command is enabled
func IsCommandEnabled(command string) (bool, error) {
	cfg, err := GetConfig()
	if err != nil {
		return false, err
	}
	return cfg.IsCommandEnabled(command), nil
}

// RegisterCommand creates a policy for a new command, leaving existing
// policies untouched.
func RegisterCommand(command string, isPublic, enabled bool) (*models.CommandPolicy, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	if existing := cfg.CommandConfig(command); existing != nil {
		return existing, nil
	}
	policy := models.NewCommandPolicy()
	policy.IsPublic = isPublic
	policy.Enabled = enabled
	cfg.Commands[command] = policy
	if _, err := SetConfig(cfg); err != nil {
		return nil, err
	}
	return policy, nil
}

// DiscoverAndRegisterCommands reconciles runtime-declared commands with the
// persisted policies. New commands are created with their declared isPublic
// default; with forceRefresh every declared command has its isPublic flag
// re-applied, leaving enabled/whitelist/blacklist untouched. Returns the
// number of commands processed.
func DiscoverAndRegisterCommands(available map[string]bool, forceRefresh bool) (int, error) {
	cfg, err := GetConfig()
	if err != nil {
		return 0, err
	}

	processed := 0
	for commandName, isPublic := range available {
		if !forceRefresh && cfg.CommandConfig(commandName) != nil {
			continue
		}

		if policy := cfg.CommandConfig(commandName); policy == nil {
			created := models.NewCommandPolicy()
			created.IsPublic = isPublic
			cfg.Commands[commandName] = created
		} else {
			policy.IsPublic = isPublic
		}
		processed++

		action := "Auto-registrado"
		if forceRefresh {
			action = "Actualizado"
		}
		kind := "solo-staff"
		if isPublic {
			kind = "público"
		}
		logger.Info(fmt.Sprintf("%s comando %s: %s", action, kind, commandName), "Config")
	}

	if processed > 0 {
		if _, err := SetConfig(cfg); err != nil {
			return 0, err
		}
		logger.Info(fmt.Sprintf("Descubrimiento de comandos completado: %d procesados", processed), "Config")
	}

	return processed, nil
}

// ===== Channel routing and toggles =====

// SetLogsChannel fija el canal de logs de moderación
func SetLogsChannel(channelID string) (*models.GuildConfig, error) {
	return mutateConfig(func(cfg *models.GuildConfig) {
		cfg.LogsChannelID = &channelID
	})
}

// GetLogsChannel returns the moderation logs channel id, empty when unset
func GetLogsChannel() (string, error) {
	cfg, err := GetConfig()
	if err != nil {
		return "", err
	}
	if cfg.LogsChannelID == nil {
		return "", nil
	}
	return *cfg.LogsChannelID, nil
}

// SetMessageLogsChannel fija el canal de logs de mensajes
func SetMessageLogsChannel(channelID string) (*models.GuildConfig, error) {
	return mutateConfig(func(cfg *models.GuildConfig) {
		cfg.MessageLogsChannelID = &channelID
	})
}

// GetMessageLogsChannel returns the message logs channel id, empty when unset
func GetMessageLogsChannel() (string, error) {
	cfg, err := GetConfig()
	if err != nil {
		return "", err
	}
	if cfg.MessageLogsChannelID == nil {
		return "", nil
	}
	return *cfg.MessageLogsChannelID, nil
}

// SetAppealsChannel fija el canal donde se publican las apelaciones
func SetAppealsChannel(channelID string) (*models.GuildConfig, error) {
	return mutateConfig(func(cfg *models.GuildConfig) {
		cfg.AppealsChannelID = &channelID
	})
}

// GetAppealsChannel returns the appeals channel id, empty when unset
func GetAppealsChannel() (string, error) {
	cfg, err := GetConfig()
	if err != nil {
		return "", err
	}
	if cfg.AppealsChannelID == nil {
		return "", nil
	}
	return *cfg.AppealsChannelID, nil
}

// SetAppealInvite guarda el enlace de invitación del servidor de apelaciones
func SetAppealInvite(invite string) (*models.GuildConfig, error) {
	return mutateConfig(func(cfg *models.GuildConfig) {
		cfg.AppealInvite = &invite
	})
}

// GetAppealInvite returns the appeal server invite link, empty when unset
func GetAppealInvite() (string, error) {
	cfg, err := GetConfig()
	if err != nil {
		return "", err
	}
	if cfg.AppealInvite == nil {
		return "", nil
	}
	return *cfg.AppealInvite, nil
}

// SetLoggingEnabled activa o desactiva el logging de moderación
func SetLoggingEnabled(enabled bool) (*models.GuildConfig, error) {
	return mutateConfig(func(cfg *models.GuildConfig) {
		cfg.LoggingEnabled = &enabled
	})
}

// IsLoggingEnabled reports whether moderation logging is on
func IsLoggingEnabled() (bool, error) {
	cfg, err := GetConfig()
	if err != nil {
		return false, err
	}
	return cfg.IsLoggingEnabled(), nil
}

// SetAppealsEnabled activa o desactiva el sistema de apelaciones
func SetAppealsEnabled(enabled bool) (*models.GuildConfig, error) {
	return mutateConfig(func(cfg *models.GuildConfig) {
		cfg.AppealsEnabled = &enabled
	})
}

// IsAppealsEnabled reports whether the appeal system is on
func IsAppealsEnabled() (bool, error) {
	cfg, err := GetConfig()
	if err != nil {
		return false, err
	}
	return cfg.IsAppealsEnabled(), nil
}

// SetMessageLoggingEnabled activa o desactiva el logging de mensajes
func SetMessageLoggingEnabled(enabled bool) (*models.GuildConfig, error) {
	return mutateConfig(func(cfg *models.GuildConfig) {
		cfg.MessageLoggingEnabled = &enabled
	})
}

// IsMessageLoggingEnabled reports whether message logging is on
func IsMessageLoggingEnabled() (bool, error) {
	cfg, err := GetConfig()
	if err != nil {
		return false, err
	}
	return cfg.IsMessageLoggingEnabled(), nil
}

// AddMessageLogsBlacklist excluye un canal del logging de mensajes
func AddMessageLogsBlacklist(channelID string) (*models.GuildConfig, error) {
	return mutateConfig(func(cfg *models.GuildConfig) {
		for _, id := range cfg.MessageLogsBlacklist {
			if id == channelID {
				return
			}
		}
		cfg.MessageLogsBlacklist = append(cfg.MessageLogsBlacklist, channelID)
	})
}

// RemoveMessageLogsBlacklist vuelve a incluir un canal en el logging
func RemoveMessageLogsBlacklist(channelID string) (*models.GuildConfig, error) {
	return mutateConfig(func(cfg *models.GuildConfig) {
		filtered := cfg.MessageLogsBlacklist[:0]
		for _, id := range cfg.MessageLogsBlacklist {
			if id != channelID {
				filtered = append(filtered, id)
			}
		}
		cfg.MessageLogsBlacklist = filtered
	})
}

// IsMessageLogsBlacklisted reports whether a channel is excluded from
// message logging.
func IsMessageLogsBlacklisted(channelID string) (bool, error) {
	cfg, err := GetConfig()
	if err != nil {
		return false, err
	}
	for _, id := range cfg.MessageLogsBlacklist {
		if id == channelID {
			return true, nil
		}
	}
	return false, nil
}

// SetBanEmbedTemplate replaces the ban notification template, filling
// omitted fields from the stock template.
func SetBanEmbedTemplate(template models.BanEmbedTemplate) (*models.GuildConfig, error) {
	stock := models.DefaultBanEmbed()
	if template.Title == "" {
		template.Title = stock.Title
	}
	if template.Description == "" {
		template.Description = stock.Description
	}
	if template.Color == 0 {
		template.Color = stock.Color
	}
	if template.Footer == "" {
		template.Footer = stock.Footer
	}
	return mutateConfig(func(cfg *models.GuildConfig) {
		cfg.BanEmbed = &template
	})
}

// GetBanEmbedTemplate returns the ban notification template
func GetBanEmbedTemplate() (*models.BanEmbedTemplate, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	if cfg.BanEmbed == nil {
		return models.DefaultBanEmbed(), nil
	}
	return cfg.BanEmbed, nil
}

// ===== Automod escalation rules =====

// SetAutomodEnabled activa o desactiva la escalación de automod
func SetAutomodEnabled(enabled bool) (*models.GuildConfig, error) {
	return mutateConfig(func(cfg *models.GuildConfig) {
		cfg.AutomodEnabled = &enabled
	})
}

// IsAutomodEnabled reports whether automod escalation is on
func IsAutomodEnabled() (bool, error) {
	cfg, err := GetConfig()
	if err != nil {
		return false, err
	}
	return cfg.IsAutomodEnabled(), nil
}

// AddAutomodRule upserts a threshold→action rule, keeping the table sorted
func AddAutomodRule(threshold int, action string, duration *int64) (*models.GuildConfig, error) {
	return mutateConfig(func(cfg *models.GuildConfig) {
		cfg.UpsertAutomodRule(models.AutomodRule{
			Threshold: threshold,
			Action:    action,
			Duration:  duration,
		})
	})
}

// RemoveAutomodRule deletes the rule with the given threshold
func RemoveAutomodRule(threshold int) (*models.GuildConfig, error) {
	return mutateConfig(func(cfg *models.GuildConfig) {
		cfg.RemoveAutomodRule(threshold)
	})
}

// GetAutomodRules returns the escalation table, sorted ascending by threshold
func GetAutomodRules() ([]models.AutomodRule, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return cfg.AutomodRules, nil
}

// GetAutomodActionForWarnings returns the applicable escalation rule for a
// warning count, nil when automod is disabled or no rule qualifies.
func GetAutomodActionForWarnings(count int) (*models.AutomodRule, error) {
	cfg, err := GetConfig()
	if err != nil {
		return nil, err
	}
	return cfg.AutomodActionForWarnings(count), nil
}
