// Package models contains the persisted entities of the bot and the pure
// logic that operates on them. Database access lives in pkg/database.
package models

import (
	"sort"
	"strings"
)

// ConfigID is the id of the single configuration document per deployment.
const ConfigID = "global"

// CommandPolicy representa la política de acceso de un comando individual
type CommandPolicy struct {
	Enabled   bool     `bson:"enabled" json:"enabled"`
	IsPublic  bool     `bson:"isPublic" json:"isPublic"`
	Whitelist []string `bson:"whitelist" json:"whitelist"`
	Blacklist []string `bson:"blacklist" json:"blacklist"`
}

// NewCommandPolicy returns the documented default policy: enabled, staff-only
func NewCommandPolicy() *CommandPolicy {
	return &CommandPolicy{
		Enabled:   true,
		IsPublic:  false,
		Whitelist: []string{},
		Blacklist: []string{},
	}
}

// AutomodRule maps a warning-count threshold to an escalation action
type AutomodRule struct {
	Threshold int    `bson:"threshold" json:"threshold"`
	Action    string `bson:"action" json:"action"`
	Duration  *int64 `bson:"duration" json:"duration"`
}

// BanEmbedTemplate is the display template for ban notifications.
// The description supports a {server} substitution placeholder.
type BanEmbedTemplate struct {
	Title       string `bson:"title" json:"title"`
	Description string `bson:"description" json:"description"`
	Color       int    `bson:"color" json:"color"`
	Footer      string `bson:"footer" json:"footer"`
}

// Render substitutes the {server} placeholder with the guild name
func (t *BanEmbedTemplate) Render(serverName string) BanEmbedTemplate {
	rendered := *t
	rendered.Title = strings.ReplaceAll(rendered.Title, "{server}", serverName)
	rendered.Description = strings.ReplaceAll(rendered.Description, "{server}", serverName)
	return rendered
}

// DefaultBanEmbed returns the stock ban embed template
func DefaultBanEmbed() *BanEmbedTemplate {
	return &BanEmbedTemplate{
		Title:       "🔨 You have been banned",
		Description: "You have been banned from **{server}**",
		Color:       0xFFB6C1,
		Footer:      "Contact staff if you believe this is a mistake",
	}
}

// GuildConfig es el documento singleton de configuración (id = "global")
type GuildConfig struct {
	ID                    string                    `bson:"id" json:"id"`
	StaffRoles            []string                  `bson:"staffRoles" json:"staffRoles"`
	Commands              map[string]*CommandPolicy `bson:"commands" json:"commands"`
	LogsChannelID         *string                   `bson:"logsChannelId" json:"logsChannelId"`
	MessageLogsChannelID  *string                   `bson:"messageLogsChannelId" json:"messageLogsChannelId"`
	AppealsChannelID      *string                   `bson:"appealsChannelId" json:"appealsChannelId"`
	AppealInvite          *string                   `bson:"appealInvite" json:"appealInvite"`
	LoggingEnabled        *bool                     `bson:"loggingEnabled" json:"loggingEnabled"`
	AppealsEnabled        *bool                     `bson:"appealsEnabled" json:"appealsEnabled"`
	MessageLoggingEnabled *bool                     `bson:"messageLoggingEnabled" json:"messageLoggingEnabled"`
	AutomodEnabled        *bool                     `bson:"automodEnabled" json:"automodEnabled"`
	MessageLogsBlacklist  []string                  `bson:"messageLogsBlacklist" json:"messageLogsBlacklist"`
	AutomodRules          []AutomodRule             `bson:"automodRules" json:"automodRules"`
	BanEmbed              *BanEmbedTemplate         `bson:"banEmbed" json:"banEmbed"`
	CreatedAt             string                    `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// NewGuildConfig returns a fresh configuration document with every default
func NewGuildConfig() *GuildConfig {
	cfg := &GuildConfig{ID: ConfigID}
	cfg.ApplyDefaults()
	return cfg
}

func boolPtr(v bool) *bool { return &v }

// ApplyDefaults rellena los campos ausentes con sus valores por defecto.
// Returns true when anything was back-filled so the caller can persist once.
func (c *GuildConfig) ApplyDefaults() bool {
	changed := false
	if c.ID == "" {
		c.ID = ConfigID
		changed = true
	}
	if c.StaffRoles == nil {
		c.StaffRoles = []string{}
		changed = true
	}
	if c.Commands == nil {
		c.Commands = make(map[string]*CommandPolicy)
		changed = true
	}
	if c.LoggingEnabled == nil {
		c.LoggingEnabled = boolPtr(true)
		changed = true
	}
	if c.AppealsEnabled == nil {
		c.AppealsEnabled = boolPtr(true)
		changed = true
	}
	if c.AutomodEnabled == nil {
		c.AutomodEnabled = boolPtr(true)
		changed = true
	}
	if c.MessageLoggingEnabled == nil {
		c.MessageLoggingEnabled = boolPtr(false)
		changed = true
	}
	if c.MessageLogsBlacklist == nil {
		c.MessageLogsBlacklist = []string{}
		changed = true
	}
	if c.AutomodRules == nil {
		c.AutomodRules = []AutomodRule{}
		changed = true
	}
	if c.BanEmbed == nil {
		c.BanEmbed = DefaultBanEmbed()
		changed = true
	}
	return changed
}

// IsLoggingEnabled reports whether moderation logging is on (default true)
func (c *GuildConfig) IsLoggingEnabled() bool {
	return c.LoggingEnabled == nil || *c.LoggingEnabled
}

// IsAppealsEnabled reports whether the appeal system is on (default true)
func (c *GuildConfig) IsAppealsEnabled() bool {
	return c.AppealsEnabled == nil || *c.AppealsEnabled
}

// IsAutomodEnabled reports whether automod escalation is on (default true)
func (c *GuildConfig) IsAutomodEnabled() bool {
	return c.AutomodEnabled == nil || *c.AutomodEnabled
}

// IsMessageLoggingEnabled reports whether message logging is on (default false)
func (c *GuildConfig) IsMessageLoggingEnabled() bool {
	return c.MessageLoggingEnabled != nil && *c.MessageLoggingEnabled
}

// IsMessageLogsBlacklisted reports whether a channel is excluded from message logging
func (c *GuildConfig) IsMessageLogsBlacklisted(channelID string) bool {
	return containsString(c.MessageLogsBlacklist, channelID)
}

// EnsureCommand returns the policy for a command, creating it with the
// documented defaults if it did not exist yet.
func (c *GuildConfig) EnsureCommand(name string) *CommandPolicy {
	if c.Commands == nil {
		c.Commands = make(map[string]*CommandPolicy)
	}
	policy, ok := c.Commands[name]
	if !ok || policy == nil {
		policy = NewCommandPolicy()
		c.Commands[name] = policy
	}
	return policy
}

// CommandConfig returns the policy for a command, or nil if unknown
func (c *GuildConfig) CommandConfig(name string) *CommandPolicy {
	if c.Commands == nil {
		return nil
	}
	return c.Commands[name]
}

// IsCommandEnabled reports whether a known command is enabled.
// Unknown commands are treated as disabled.
func (c *GuildConfig) IsCommandEnabled(name string) bool {
	policy := c.CommandConfig(name)
	return policy != nil && policy.Enabled
}

// AddWhitelistRole añade un rol a la whitelist del comando (idempotente)
func (c *GuildConfig) AddWhitelistRole(command, roleID string) {
	policy := c.EnsureCommand(command)
	policy.Whitelist = appendUnique(policy.Whitelist, roleID)
}

// RemoveWhitelistRole quita un rol de la whitelist del comando (idempotente)
func (c *GuildConfig) RemoveWhitelistRole(command, roleID string) {
	if policy := c.CommandConfig(command); policy != nil {
		policy.Whitelist = removeString(policy.Whitelist, roleID)
	}
}

// AddBlacklistRole añade un rol a la blacklist del comando (idempotente)
func (c *GuildConfig) AddBlacklistRole(command, roleID string) {
	policy := c.EnsureCommand(command)
	policy.Blacklist = appendUnique(policy.Blacklist, roleID)
}

// RemoveBlacklistRole quita un rol de la blacklist del comando (idempotente)
func (c *GuildConfig) RemoveBlacklistRole(command, roleID string) {
	if policy := c.CommandConfig(command); policy != nil {
		policy.Blacklist = removeString(policy.Blacklist, roleID)
	}
}

// SetStaffRole adds or removes a role from the global staff set (idempotent)
func (c *GuildConfig) SetStaffRole(roleID string, add bool) {
	if add {
		c.StaffRoles = appendUnique(c.StaffRoles, roleID)
	} else {
		c.StaffRoles = removeString(c.StaffRoles, roleID)
	}
}

// IsStaff reports whether any of the given roles is a staff role
func (c *GuildConfig) IsStaff(roleIDs []string) bool {
	for _, id := range roleIDs {
		if containsString(c.StaffRoles, id) {
			return true
		}
	}
	return false
}

// UpsertAutomodRule replaces the rule with an equal threshold or inserts a
// new one, keeping the table sorted ascending by threshold.
func (c *GuildConfig) UpsertAutomodRule(rule AutomodRule) {
	replaced := false
	for i := range c.AutomodRules {
		if c.AutomodRules[i].Threshold == rule.Threshold {
			c.AutomodRules[i] = rule
			replaced = true
			break
		}
	}
	if !replaced {
		c.AutomodRules = append(c.AutomodRules, rule)
	}
	sort.Slice(c.AutomodRules, func(i, j int) bool {
		return c.AutomodRules[i].Threshold < c.AutomodRules[j].Threshold
	})
}

// RemoveAutomodRule deletes the rule with the given threshold, if present
func (c *GuildConfig) RemoveAutomodRule(threshold int) {
	rules := c.AutomodRules[:0]
	for _, rule := range c.AutomodRules {
		if rule.Threshold != threshold {
			rules = append(rules, rule)
		}
	}
	c.AutomodRules = rules
}

// AutomodActionForWarnings returns the rule with the highest threshold at or
// below the given warning count, or nil when automod is disabled or no rule
// qualifies. Relies on AutomodRules being sorted ascending.
func (c *GuildConfig) AutomodActionForWarnings(count int) *AutomodRule {
	if !c.IsAutomodEnabled() {
		return nil
	}
	var match *AutomodRule
	for i := range c.AutomodRules {
		if c.AutomodRules[i].Threshold <= count {
			match = &c.AutomodRules[i]
		}
	}
	return match
}

// Clone returns a deep copy of the configuration document. The database
// layer hands every caller its own copy, so the policy mutators never write
// the maps and slices a concurrent permission evaluation is reading.
func (c *GuildConfig) Clone() *GuildConfig {
	if c == nil {
		return nil
	}

	clone := *c
	clone.StaffRoles = append([]string(nil), c.StaffRoles...)
	clone.MessageLogsBlacklist = append([]string(nil), c.MessageLogsBlacklist...)

	clone.AutomodRules = make([]AutomodRule, len(c.AutomodRules))
	for i, rule := range c.AutomodRules {
		clone.AutomodRules[i] = rule
		if rule.Duration != nil {
			duration := *rule.Duration
			clone.AutomodRules[i].Duration = &duration
		}
	}

	if c.Commands != nil {
		clone.Commands = make(map[string]*CommandPolicy, len(c.Commands))
		for name, policy := range c.Commands {
			if policy == nil {
				continue
			}
			copied := *policy
			copied.Whitelist = append([]string(nil), policy.Whitelist...)
			copied.Blacklist = append([]string(nil), policy.Blacklist...)
			clone.Commands[name] = &copied
		}
	}

	clone.LogsChannelID = cloneStringPtr(c.LogsChannelID)
	clone.MessageLogsChannelID = cloneStringPtr(c.MessageLogsChannelID)
	clone.AppealsChannelID = cloneStringPtr(c.AppealsChannelID)
	clone.AppealInvite = cloneStringPtr(c.AppealInvite)
	clone.LoggingEnabled = cloneBoolPtr(c.LoggingEnabled)
	clone.AppealsEnabled = cloneBoolPtr(c.AppealsEnabled)
	clone.MessageLoggingEnabled = cloneBoolPtr(c.MessageLoggingEnabled)
	clone.AutomodEnabled = cloneBoolPtr(c.AutomodEnabled)

	if c.BanEmbed != nil {
		embed := *c.BanEmbed
		clone.BanEmbed = &embed
	}

	return &clone
}

func cloneStringPtr(v *string) *string {
	if v == nil {
		return nil
	}
	copied := *v
	return &copied
}

func cloneBoolPtr(v *bool) *bool {
	if v == nil {
		return nil
	}
	copied := *v
	return &copied
}

// containsString busca un elemento en un slice
func containsString(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

// appendUnique añade un elemento solo si no estaba presente
func appendUnique(list []string, value string) []string {
	if containsString(list, value) {
		return list
	}
	return append(list, value)
}

// removeString elimina todas las ocurrencias de un elemento
func removeString(list []string, value string) []string {
	result := list[:0]
	for _, v := range list {
		if v != value {
			result = append(result, v)
		}
	}
	return result
}
