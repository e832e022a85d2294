package entity

// RoleName is the closed set of role identifiers understood by the service.
type RoleName string

const (
	RoleNameUnknown RoleName = ""
	RoleNameAdmin   RoleName = "ADMIN"
	RoleNameUser    RoleName = "USER"
)

func RoleNameFromString(s string) RoleName {
	switch s {
	case "ADMIN":
		return RoleNameAdmin
	case "USER":
		return RoleNameUser
	default:
		return RoleNameUnknown
	}
}

func (r RoleName) String() string {
	return string(r)
}

// Role is a named authority granted to users. The name is the logical
// identity, the id is storage metadata.
type Role struct {
	ID   int64
	Name RoleName
}

// Equal compares roles by name only.
func (r Role) Equal(other Role) bool {
	return r.Name == other.Name
}

// RoleNames projects a role set to its names, deduplicated by name.
func RoleNames(roles []Role) []string {
	seen := make(map[RoleName]struct{}, len(roles))
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		if _, ok := seen[r.Name]; ok {
			continue
		}
		seen[r.Name] = struct{}{}
		names = append(names, r.Name.String())
	}
	return names
}
