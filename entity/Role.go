package entity

// Role is the single role a user holds. Empty means no role yet.
type Role string

const (
	RoleNone         Role = ""
	RoleManager      Role = "manager"
	RoleCustomer     Role = "customer"
	RoleDeliveryCrew Role = "delivery-crew"
)

// groupNames maps every group-name spelling that ever appeared in the API
// (singular and plural) onto one role. This is the only place the strings live.
var groupNames = map[string]Role{
	"manager":        RoleManager,
	"managers":       RoleManager,
	"customer":       RoleCustomer,
	"customers":      RoleCustomer,
	"delivery-crew":  RoleDeliveryCrew,
	"delivery-crews": RoleDeliveryCrew,
}

// RoleFromGroup resolves a group name from a URL or payload into a role.
func RoleFromGroup(name string) (Role, bool) {
	r, ok := groupNames[name]
	return r, ok
}

// ParseRole accepts only the canonical role values (plus empty for "no role").
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleNone, RoleManager, RoleCustomer, RoleDeliveryCrew:
		return Role(s), true
	}
	return RoleNone, false
}

func (r Role) String() string { return string(r) }
