package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRequirement(t *testing.T) {
	req := ParseRequirement("Admin, Manager")
	assert.Equal(t, "Admin, Manager", req.Spec, "original form kept for display")
	assert.Equal(t, []string{"admin", "manager"}, req.Roles)
}

func TestParseRequirementDropsEmptySegments(t *testing.T) {
	req := ParseRequirement(" customer ,, ")
	assert.Equal(t, []string{"customer"}, req.Roles)

	assert.Empty(t, ParseRequirement("").Roles)
	assert.Empty(t, ParseRequirement(" , ").Roles)
}

func TestDecodeRoleClaimShapes(t *testing.T) {
	assert.Nil(t, DecodeRoleClaim(nil))
	assert.Equal(t, StringClaim("customer"), DecodeRoleClaim("customer"))
	assert.Nil(t, DecodeRoleClaim(3.14), "unrecognized shapes decode to absent")

	claim := DecodeRoleClaim(map[string]interface{}{"name": "Admin", "type": "internal"})
	assert.Equal(t, ObjectClaim{Name: "Admin", Type: "internal"}, claim)

	list, ok := DecodeRoleClaim([]interface{}{"a", map[string]interface{}{"role": "b"}}).(ListClaim)
	assert.True(t, ok)
	assert.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Value)
	assert.Equal(t, "b", list[1].Object.Role)
}
