package access

import (
	"strings"

	"gencare/models"
)

// GuestRole is the role every session degrades to when its claim carries no
// resolvable role name.
const GuestRole = "guest"

// NormalizeRoles converts a role claim into a canonical, non-empty list of
// lower-cased, trimmed role names. Unresolvable shapes contribute nothing and
// the whole claim degrades to ["guest"]; the function is total and never
// errors.
//
// Resolution order, first match wins:
//  1. list claim: strings lower-case directly, objects take the first present
//     field among name, role;
//  2. string claim: single-element list;
//  3. object claim: first present field among name, role, type.
func NormalizeRoles(claim models.RoleClaim) []string {
	var roles []string

	switch c := claim.(type) {
	case models.ListClaim:
		for _, entry := range c {
			switch {
			case entry.Object != nil:
				if name := firstOf(entry.Object.Name, entry.Object.Role); name != "" {
					roles = append(roles, name)
				}
			default:
				if name := canonical(entry.Value); name != "" {
					roles = append(roles, name)
				}
			}
		}
	case models.StringClaim:
		if name := canonical(string(c)); name != "" {
			roles = append(roles, name)
		}
	case models.ObjectClaim:
		if name := firstOf(c.Name, c.Role, c.Type); name != "" {
			roles = append(roles, name)
		}
	}

	if len(roles) == 0 {
		return []string{GuestRole}
	}
	return roles
}

// firstOf returns the first candidate that still has content after trimming,
// lower-cased.
func firstOf(candidates ...string) string {
	for _, c := range candidates {
		if name := canonical(c); name != "" {
			return name
		}
	}
	return ""
}

func canonical(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
