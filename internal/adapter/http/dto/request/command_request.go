package request

import "strings"

// Permission names the caller may include in a CommandRequest. The HTTP
// caller (the platform-facing bot shim) is responsible for resolving the
// actor's real permissions before invoking a privileged command; the service
// only checks that the required name is present.
const (
	PermissionModerateMembers = "moderate_members"
	PermissionManageChannels  = "manage_channels"
)

// CommandRequest is the generic slash-command invocation payload accepted by
// POST /v1/commands/:command.
type CommandRequest struct {
	ActorID     string                 `json:"actor_id" binding:"required"`
	GuildID     string                 `json:"guild_id"`
	Permissions []string               `json:"permissions"`
	Options     map[string]interface{} `json:"options"`
}

// HasPermission reports whether the caller attested the named permission.
func (r CommandRequest) HasPermission(name string) bool {
	for _, p := range r.Permissions {
		if strings.EqualFold(strings.TrimSpace(p), name) {
			return true
		}
	}
	return false
}

// OptionString returns a trimmed string option, or "" when absent or not a
// string.
func (r CommandRequest) OptionString(key string) string {
	v, ok := r.Options[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// OptionInt returns an integer option. JSON numbers decode as float64, so
// both representations are accepted.
func (r CommandRequest) OptionInt(key string) (int, bool) {
	v, ok := r.Options[key]
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}
