// Package permissions implements the command permission evaluator.
// Evaluate is a pure function over a configuration snapshot: it never touches
// the database and is safe to call concurrently.
package permissions

import "github.com/PancyStudios/PancyGuardGo/pkg/models"

// ConfigCommandName is the self-governing configuration command: access to it
// follows its own rules (owner or explicit whitelist) instead of the normal
// precedence chain.
const ConfigCommandName = "config"

// ReasonCode identifies why a permission decision was made
type ReasonCode string

const (
	ReasonDisabled             ReasonCode = "disabled"
	ReasonOwner                ReasonCode = "owner"
	ReasonOwnerBypass          ReasonCode = "owner-bypass"
	ReasonOwnerOnly            ReasonCode = "owner-only"
	ReasonWhitelisted          ReasonCode = "whitelisted"
	ReasonBlacklisted          ReasonCode = "blacklisted"
	ReasonStaffRole            ReasonCode = "staff-role"
	ReasonLacksWhitelistOrRole ReasonCode = "lacks-whitelist-or-staff"
	ReasonPublic               ReasonCode = "public"
	ReasonRequiresStaff        ReasonCode = "requires-staff"
)

// Message devuelve el texto legible que acompaña al código en las respuestas
func (r ReasonCode) Message() string {
	switch r {
	case ReasonDisabled:
		return "Command is disabled"
	case ReasonOwner:
		return "Server owner"
	case ReasonOwnerBypass:
		return "Owner bypass"
	case ReasonOwnerOnly:
		return "Config command is owner-only (unless whitelisted)"
	case ReasonWhitelisted:
		return "User has whitelisted role"
	case ReasonBlacklisted:
		return "User has blacklisted role"
	case ReasonStaffRole:
		return "User has global staff role"
	case ReasonLacksWhitelistOrRole:
		return "User lacks required whitelisted role or staff role"
	case ReasonPublic:
		return "Public command"
	case ReasonRequiresStaff:
		return "No permission (command requires staff role)"
	default:
		return string(r)
	}
}

// Decision is the outcome of a permission check
type Decision struct {
	Allowed bool       `json:"allowed"`
	Reason  ReasonCode `json:"reason"`
}

func allow(reason ReasonCode) Decision { return Decision{Allowed: true, Reason: reason} }
func deny(reason ReasonCode) Decision  { return Decision{Allowed: false, Reason: reason} }

// Evaluate decides whether a requester may invoke a command. Rules apply in
// order, first match wins:
//
//  1. Unknown or disabled command: deny.
//  2. The config command is special-cased: owner or whitelisted role allows,
//     everything else denies. No other rule applies to it.
//  3. Owner bypass.
//  4. Blacklisted role: deny, regardless of any later grant.
//  5. Non-empty whitelist is the exclusive gate: staff or whitelisted role
//     allows, isPublic is irrelevant.
//  6. Public command: allow.
//  7. Staff role: allow.
//  8. Otherwise deny.
func Evaluate(cfg *models.GuildConfig, commandName string, roleIDs []string, isOwner bool) Decision {
	var policy *models.CommandPolicy
	if cfg != nil {
		policy = cfg.CommandConfig(commandName)
	}

	if policy == nil || !policy.Enabled {
		return deny(ReasonDisabled)
	}

	if commandName == ConfigCommandName {
		if isOwner {
			return allow(ReasonOwner)
		}
		if holdsAny(roleIDs, policy.Whitelist) {
			return allow(ReasonWhitelisted)
		}
		return deny(ReasonOwnerOnly)
	}

	if isOwner {
		return allow(ReasonOwnerBypass)
	}

	if holdsAny(roleIDs, policy.Blacklist) {
		return deny(ReasonBlacklisted)
	}

	isStaff := cfg.IsStaff(roleIDs)
	hasWhitelistRole := holdsAny(roleIDs, policy.Whitelist)

	if len(policy.Whitelist) > 0 {
		if isStaff {
			return allow(ReasonStaffRole)
		}
		if hasWhitelistRole {
			return allow(ReasonWhitelisted)
		}
		return deny(ReasonLacksWhitelistOrRole)
	}

	if policy.IsPublic {
		return allow(ReasonPublic)
	}

	if isStaff {
		return allow(ReasonStaffRole)
	}

	return deny(ReasonRequiresStaff)
}

// holdsAny reporta si alguno de los roles del usuario aparece en la lista
func holdsAny(roleIDs, list []string) bool {
	if len(list) == 0 {
		return false
	}
	for _, id := range roleIDs {
		for _, allowed := range list {
			if id == allowed {
				return true
			}
		}
	}
	return false
}
