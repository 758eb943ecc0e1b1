package access

import "gencare/models"

// DashboardRoles is the privileged tier granted access to internal
// operational routes. Membership in any of these satisfies any route whose
// requirement intersects the tier — a deliberately coarse policy carried over
// from the original platform: a route listing only "admin" is still reachable
// by "staff". Known policy gap, pending product clarification; do not tighten
// here without revisiting the route table.
var DashboardRoles = []string{"admin", "manager", "staff", "consultant"}

// customerSatisfiers are the roles accepted by customer-gated routes.
// Guests are allowed so that freshly registered sessions without an explicit
// role claim can still reach the booking flow.
var customerSatisfiers = []string{"customer", GuestRole}

// Decide gates a route. It is a pure, single-shot decision: no side effects,
// no error path — every input combination resolves to one of the three
// outcomes, and malformed claims degrade to "guest" via NormalizeRoles.
func Decide(session models.Session, requirement models.RouteRequirement) models.AccessDecision {
	if !session.Authenticated {
		return models.AccessDecision{Outcome: models.DenyUnauthenticated}
	}

	if len(requirement.Roles) == 0 {
		return models.AccessDecision{Outcome: models.Allow}
	}

	actual := NormalizeRoles(session.Claim)

	switch {
	case intersects(requirement.Roles, DashboardRoles):
		if intersects(actual, DashboardRoles) {
			return models.AccessDecision{Outcome: models.Allow}
		}
	case contains(requirement.Roles, "customer"):
		if intersects(actual, customerSatisfiers) {
			return models.AccessDecision{Outcome: models.Allow}
		}
	default:
		if intersects(actual, requirement.Roles) {
			return models.AccessDecision{Outcome: models.Allow}
		}
	}

	return models.AccessDecision{
		Outcome:       models.DenyForbidden,
		RequiredRoles: requirement.Roles,
		ActualRoles:   actual,
	}
}

func contains(set []string, role string) bool {
	for _, r := range set {
		if r == role {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, r := range a {
		if contains(b, r) {
			return true
		}
	}
	return false
}
