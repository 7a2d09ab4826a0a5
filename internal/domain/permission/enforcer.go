// Package permission describes the coarse role matrix enforced at the route
// level. Per-ticket ownership is decided by the ticket policy functions.
package permission

import "github.com/orris-inc/helpdesk/internal/shared/authorization"

const (
	ResourceTicket       = "ticket"
	ResourceTicketStatus = "ticket_status"
	ResourceProfile      = "profile"
)

const (
	ActionCreate = "create"
	ActionRead   = "read"
	ActionReply  = "reply"
	ActionUpdate = "update"
)

// PermissionEnforcer answers whether a role may perform an action on a resource.
type PermissionEnforcer interface {
	Enforce(role string, resource string, action string) (bool, error)
}

// Policy is one allow rule of the role matrix.
type Policy struct {
	Role     authorization.UserRole
	Resource string
	Action   string
}

// DefaultPolicies is the role matrix seeded on start-up.
func DefaultPolicies() []Policy {
	return []Policy{
		{authorization.RoleUser, ResourceTicket, ActionCreate},
		{authorization.RoleUser, ResourceTicket, ActionRead},
		{authorization.RoleUser, ResourceTicket, ActionReply},
		{authorization.RoleUser, ResourceProfile, ActionRead},

		{authorization.RoleAdmin, ResourceTicket, ActionRead},
		{authorization.RoleAdmin, ResourceTicket, ActionReply},
		{authorization.RoleAdmin, ResourceTicketStatus, ActionUpdate},
		{authorization.RoleAdmin, ResourceProfile, ActionRead},
	}
}
