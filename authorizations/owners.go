// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package authorizations

import (
	"encoding/json"
	"strings"

	"github.com/tibisabau/camunda/pkg/apiutil"
)

// OwnerType represents the kind of subject an authorization is granted to.
type OwnerType uint8

// Possible owner type values.
const (
	UserOwner OwnerType = iota
	GroupOwner
	RoleOwner
	MappingRuleOwner
)

// String converts an owner type to its wire form.
func (ot OwnerType) String() string {
	switch ot {
	case UserOwner:
		return user
	case GroupOwner:
		return group
	case RoleOwner:
		return role
	case MappingRuleOwner:
		return mappingRule
	default:
		return unknown
	}
}

// ToOwnerType converts a wire string to a valid owner type.
func ToOwnerType(ot string) (OwnerType, error) {
	switch ot {
	case user:
		return UserOwner, nil
	case group:
		return GroupOwner, nil
	case role:
		return RoleOwner, nil
	case mappingRule:
		return MappingRuleOwner, nil
	}

	return OwnerType(0), apiutil.ErrInvalidOwnerType
}

// Custom Marshaler for OwnerType.
func (ot OwnerType) MarshalJSON() ([]byte, error) {
	return json.Marshal(ot.String())
}

// Custom Unmarshaler for OwnerType.
func (ot *OwnerType) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), "\"")
	val, err := ToOwnerType(str)
	*ot = val
	return err
}
