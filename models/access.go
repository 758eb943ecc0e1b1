package models

import "strings"

// RouteRequirement is the role specification attached to a navigable route,
// parsed once from its comma-separated form. An empty Roles set means the
// route only requires an authenticated session.
type RouteRequirement struct {
	// Spec is the original comma-joined form, kept for user-facing display.
	Spec string
	// Roles holds the trimmed, lower-cased role names.
	Roles []string
}

// ParseRequirement parses a comma-separated role spec such as
// "Admin, Manager". Role names are trimmed and lower-cased; empty segments
// are dropped.
func ParseRequirement(spec string) RouteRequirement {
	req := RouteRequirement{Spec: spec}
	for _, part := range strings.Split(spec, ",") {
		role := strings.ToLower(strings.TrimSpace(part))
		if role == "" {
			continue
		}
		req.Roles = append(req.Roles, role)
	}
	return req
}

// Outcome enumerates the three access-decision results.
type Outcome int

const (
	Allow Outcome = iota
	DenyUnauthenticated
	DenyForbidden
)

func (o Outcome) String() string {
	switch o {
	case Allow:
		return "allow"
	case DenyUnauthenticated:
		return "denyUnauthenticated"
	case DenyForbidden:
		return "denyForbidden"
	default:
		return "unknown"
	}
}

// AccessDecision carries the outcome of gating a route. RequiredRoles and
// ActualRoles are populated on DenyForbidden so the caller can surface both
// sets on the unauthorized view.
type AccessDecision struct {
	Outcome       Outcome
	RequiredRoles []string
	ActualRoles   []string
}
