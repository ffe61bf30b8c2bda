package workflow

import (
	"fmt"

	"atelier_backoffice/internal/domain/entities"
)

// EntityType names one of the workflow-governed entity families.

type EntityType string

const (
	EntityBooking EntityType = "booking"
	EntityRepair  EntityType = "repair"
	EntityDeposit EntityType = "deposit"
)

func ParseEntityType(s string) (EntityType, bool) {
	switch EntityType(s) {
	case EntityBooking, EntityRepair, EntityDeposit:
		return EntityType(s), true
	}
	return "", false
}

// State is an entity status as seen by the transition table.
type State string

// Action is an actor-invoked transition trigger.
type Action string

// Rule is a single allowed edge in a lifecycle: (From, Action) -> To, gated
// by the actor's role. OwnerOnly additionally requires customer/investor
// actors to own the entity; admin and staff roles bypass ownership but never
// state guards.
type Rule struct {
	From      State
	Action    Action
	To        State
	Roles     []entities.Role
	OwnerOnly bool
}

func (r Rule) allowsRole(role entities.Role) bool {
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// Table is the static transition map for one entity type. Lifecycles are
// encoded as rule data evaluated by one shared resolver, not as per-endpoint
// conditionals.
type Table struct {
	entity EntityType
	rules  []Rule
}

func NewTable(entity EntityType, rules []Rule) *Table {
	return &Table{entity: entity, rules: rules}
}

func (t *Table) Entity() EntityType {
	return t.entity
}

// Resolve returns the rule for (from, action) after checking the actor's
// role and, where required, ownership. An undefined pair is
// InvalidTransition; a role/ownership mismatch is Unauthorized with the
// entity state left untouched.
func (t *Table) Resolve(from State, action Action, actor entities.Actor, ownerID string) (Rule, error) {
	rule, ok := t.find(from, action)
	if !ok {
		return Rule{}, InvalidTransition(fmt.Sprintf("action %q is not allowed for %s in state %q", action, t.entity, from))
	}
	if !rule.allowsRole(actor.Role) {
		return Rule{}, Unauthorized(fmt.Sprintf("role %q may not perform %q", actor.Role, action))
	}
	if rule.OwnerOnly && ownershipBound(actor.Role) && actor.ID != ownerID {
		return Rule{}, Unauthorized(fmt.Sprintf("actor does not own this %s", t.entity))
	}
	return rule, nil
}

func (t *Table) find(from State, action Action) (Rule, bool) {
	for _, rule := range t.rules {
		if rule.From == from && rule.Action == action {
			return rule, true
		}
	}
	return Rule{}, false
}

// IsStep reports whether from -> to is a single edge of the table (or a
// self-loop recorded by a non-moving action). Used to assert that observed
// histories are valid walks.
func (t *Table) IsStep(from, to State) bool {
	if from == to {
		return true
	}
	for _, rule := range t.rules {
		if rule.From == from && rule.To == to {
			return true
		}
	}
	return false
}

// ownershipBound reports whether a role is subject to OwnerOnly checks.
// Admin, tailor and technician act on behalf of the shop.
func ownershipBound(role entities.Role) bool {
	return role == entities.RoleCustomer || role == entities.RoleInvestor
}
