package models

// Session represents the requesting actor as handed over by the external
// identity service. It is read-only inside the access layer.
type Session struct {
	Authenticated bool      `json:"authenticated"`
	UserID        string    `json:"userId,omitempty"`
	Claim         RoleClaim `json:"-"`
}

// RoleClaim is the closed set of role-claim shapes the identity service is
// known to emit. A nil RoleClaim means the claim was absent. The raw shape is
// resolved into one of these variants at the ingestion boundary
// (DecodeRoleClaim), so everything downstream works on a canonical type.
type RoleClaim interface {
	isRoleClaim()
}

// StringClaim is a bare role name, e.g. "customer".
type StringClaim string

// ListClaim is a list of role entries, each either a plain name or an object.
type ListClaim []ClaimEntry

// ObjectClaim is a single role object with varying field names.
type ObjectClaim ClaimObject

func (StringClaim) isRoleClaim() {}
func (ListClaim) isRoleClaim()   {}
func (ObjectClaim) isRoleClaim() {}

// ClaimEntry is one element of a ListClaim. Exactly one of Value or Object is
// set; an entry with neither contributes nothing during normalization.
type ClaimEntry struct {
	Value  string
	Object *ClaimObject
}

// ClaimObject carries the role-name candidate fields observed in the wild.
type ClaimObject struct {
	Name string
	Role string
	Type string
}

// DecodeRoleClaim converts the raw, untrusted claim value (as decoded from a
// token's JSON payload) into the canonical RoleClaim variant. Unrecognized
// shapes decode to nil, which normalizes to "guest" downstream; this function
// never fails.
func DecodeRoleClaim(raw interface{}) RoleClaim {
	switch v := raw.(type) {
	case nil:
		return nil
	case string:
		return StringClaim(v)
	case []interface{}:
		entries := make(ListClaim, 0, len(v))
		for _, el := range v {
			switch e := el.(type) {
			case string:
				entries = append(entries, ClaimEntry{Value: e})
			case map[string]interface{}:
				obj := decodeClaimObject(e)
				entries = append(entries, ClaimEntry{Object: &obj})
			default:
				entries = append(entries, ClaimEntry{})
			}
		}
		return entries
	case map[string]interface{}:
		return ObjectClaim(decodeClaimObject(v))
	default:
		return nil
	}
}

func decodeClaimObject(m map[string]interface{}) ClaimObject {
	var obj ClaimObject
	if s, ok := m["name"].(string); ok {
		obj.Name = s
	}
	if s, ok := m["role"].(string); ok {
		obj.Role = s
	}
	if s, ok := m["type"].(string); ok {
		obj.Type = s
	}
	return obj
}
