package entities

// Role is the actor role resolved by the upstream identity/session service.
// This service trusts the resolved identity completely and performs no
// credential verification of its own.

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTailor     Role = "tailor"
	RoleTechnician Role = "technician"
	RoleCustomer   Role = "customer"
	RoleInvestor   Role = "investor"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleTailor, RoleTechnician, RoleCustomer, RoleInvestor:
		return true
	}
	return false
}

// Actor identifies who is invoking a transition.
type Actor struct {
	ID   string
	Role Role
}
