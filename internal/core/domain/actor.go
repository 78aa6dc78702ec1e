package domain

// Capability is a coarse permission checked before finance operations.
type Capability string

const (
	CapabilityFinanceRead  Capability = "finance:read"
	CapabilityFinanceWrite Capability = "finance:write"
)

// Actor is the authenticated caller of a finance operation.
type Actor struct {
	UserID string
	Roles  []string
}

// HasAnyRole reports whether the actor holds at least one of roles.
func (a Actor) HasAnyRole(roles ...string) bool {
	for _, have := range a.Roles {
		for _, want := range roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
