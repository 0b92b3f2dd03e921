// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package authorizations_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tibisabau/camunda/authorizations"
	"github.com/tibisabau/camunda/pkg/apiutil"
)

func TestResourceType_String(t *testing.T) {
	tests := []struct {
		name     string
		rt       authorizations.ResourceType
		expected string
	}{
		{"Application", authorizations.ApplicationType, "APPLICATION"},
		{"Authorization", authorizations.AuthorizationType, "AUTHORIZATION"},
		{"Batch", authorizations.BatchType, "BATCH"},
		{"DecisionDefinition", authorizations.DecisionDefinitionType, "DECISION_DEFINITION"},
		{"DecisionRequirementsDefinition", authorizations.DecisionRequirementsDefinitionType, "DECISION_REQUIREMENTS_DEFINITION"},
		{"Group", authorizations.GroupType, "GROUP"},
		{"MappingRule", authorizations.MappingRuleType, "MAPPING_RULE"},
		{"Message", authorizations.MessageType, "MESSAGE"},
		{"ProcessDefinition", authorizations.ProcessDefinitionType, "PROCESS_DEFINITION"},
		{"DeployedResource", authorizations.DeployedResourceType, "RESOURCE"},
		{"Role", authorizations.RoleType, "ROLE"},
		{"System", authorizations.SystemType, "SYSTEM"},
		{"Tenant", authorizations.TenantType, "TENANT"},
		{"User", authorizations.UserType, "USER"},
		{"Unknown", authorizations.ResourceType(100), "UNKNOWN"},
	}

	for _, tt := range tests {
		got := tt.rt.String()
		assert.Equal(t, tt.expected, got, "ResourceType.String() = %v, expected %v", got, tt.expected)
	}
}

func TestToResourceType(t *testing.T) {
	tests := []struct {
		name  string
		value string
		rt    authorizations.ResourceType
		err   error
	}{
		{"Application", "APPLICATION", authorizations.ApplicationType, nil},
		{"Authorization", "AUTHORIZATION", authorizations.AuthorizationType, nil},
		{"Batch", "BATCH", authorizations.BatchType, nil},
		{"DecisionDefinition", "DECISION_DEFINITION", authorizations.DecisionDefinitionType, nil},
		{"DecisionRequirementsDefinition", "DECISION_REQUIREMENTS_DEFINITION", authorizations.DecisionRequirementsDefinitionType, nil},
		{"Group", "GROUP", authorizations.GroupType, nil},
		{"MappingRule", "MAPPING_RULE", authorizations.MappingRuleType, nil},
		{"Message", "MESSAGE", authorizations.MessageType, nil},
		{"ProcessDefinition", "PROCESS_DEFINITION", authorizations.ProcessDefinitionType, nil},
		{"DeployedResource", "RESOURCE", authorizations.DeployedResourceType, nil},
		{"Role", "ROLE", authorizations.RoleType, nil},
		{"System", "SYSTEM", authorizations.SystemType, nil},
		{"Tenant", "TENANT", authorizations.TenantType, nil},
		{"User", "USER", authorizations.UserType, nil},
		{"Unknown", "UNKNOWN", authorizations.ResourceType(0), apiutil.ErrInvalidResourceType},
		{"Empty", "", authorizations.ResourceType(0), apiutil.ErrInvalidResourceType},
		{"Lowercase", "application", authorizations.ResourceType(0), apiutil.ErrInvalidResourceType},
	}

	for _, tt := range tests {
		got, err := authorizations.ToResourceType(tt.value)
		assert.Equal(t, tt.err, err, "ToResourceType(%v) error = %v, expected %v", tt.value, err, tt.err)
		assert.Equal(t, tt.rt, got, "ToResourceType(%v) = %v, expected %v", tt.value, got, tt.rt)
	}
}

func TestResourceTypeMarshalJSON(t *testing.T) {
	data, err := json.Marshal(authorizations.ProcessDefinitionType)
	assert.NoError(t, err)
	assert.Equal(t, `"PROCESS_DEFINITION"`, string(data))

	var rt authorizations.ResourceType
	err = json.Unmarshal([]byte(`"TENANT"`), &rt)
	assert.NoError(t, err)
	assert.Equal(t, authorizations.TenantType, rt)

	err = json.Unmarshal([]byte(`"INVALID"`), &rt)
	assert.Equal(t, apiutil.ErrInvalidResourceType, err)
}

func TestResourceTypes(t *testing.T) {
	ordered := []authorizations.ResourceType{
		authorizations.ApplicationType,
		authorizations.AuthorizationType,
		authorizations.BatchType,
		authorizations.DecisionDefinitionType,
		authorizations.DecisionRequirementsDefinitionType,
		authorizations.GroupType,
		authorizations.MappingRuleType,
		authorizations.MessageType,
		authorizations.ProcessDefinitionType,
		authorizations.DeployedResourceType,
		authorizations.RoleType,
		authorizations.SystemType,
		authorizations.TenantType,
		authorizations.UserType,
	}

	withTenants := authorizations.ResourceTypes(true)
	assert.Equal(t, ordered, withTenants, "expected every resource type in canonical order")

	withoutTenants := authorizations.ResourceTypes(false)
	assert.Len(t, withoutTenants, len(ordered)-1)
	assert.NotContains(t, withoutTenants, authorizations.TenantType)

	expected := make([]authorizations.ResourceType, 0, len(ordered)-1)
	for _, rt := range ordered {
		if rt != authorizations.TenantType {
			expected = append(expected, rt)
		}
	}
	assert.Equal(t, expected, withoutTenants, "canonical order must be preserved when tenants are disabled")
}

func TestAllowedPermissions(t *testing.T) {
	tests := []struct {
		name     string
		rt       authorizations.ResourceType
		expected []string
	}{
		{"Application", authorizations.ApplicationType, []string{"ACCESS"}},
		{"Batch", authorizations.BatchType, []string{"CREATE", "READ", "UPDATE"}},
		{"Message", authorizations.MessageType, []string{"CREATE", "READ"}},
		{"System", authorizations.SystemType, []string{"READ", "UPDATE"}},
		{"ProcessDefinition", authorizations.ProcessDefinitionType, []string{
			"READ_PROCESS_DEFINITION", "READ_PROCESS_INSTANCE", "READ_USER_TASK",
			"CREATE_PROCESS_INSTANCE", "UPDATE_PROCESS_INSTANCE", "UPDATE_USER_TASK",
			"DELETE_PROCESS_INSTANCE",
		}},
		{"Unknown", authorizations.ResourceType(100), nil},
	}

	for _, tt := range tests {
		got := authorizations.AllowedPermissions(tt.rt)
		assert.Equal(t, tt.expected, got, "AllowedPermissions(%v) = %v, expected %v", tt.rt, got, tt.expected)
	}
}

func TestAllowedPermissionsCopy(t *testing.T) {
	perms := authorizations.AllowedPermissions(authorizations.ApplicationType)
	perms[0] = "mutated"
	assert.Equal(t, []string{"ACCESS"}, authorizations.AllowedPermissions(authorizations.ApplicationType))
}

func TestValidatePermissions(t *testing.T) {
	tests := []struct {
		name        string
		rt          authorizations.ResourceType
		permissions []string
		err         error
	}{
		{"valid single", authorizations.ApplicationType, []string{"ACCESS"}, nil},
		{"valid multiple", authorizations.UserType, []string{"CREATE", "READ", "UPDATE", "DELETE"}, nil},
		{"valid subset", authorizations.ProcessDefinitionType, []string{"READ_PROCESS_INSTANCE"}, nil},
		{"empty", authorizations.UserType, []string{}, apiutil.ErrMissingPermissions},
		{"nil", authorizations.UserType, nil, apiutil.ErrMissingPermissions},
		{"outside the set", authorizations.ApplicationType, []string{"READ"}, apiutil.ErrInvalidPermission},
		{"duplicate", authorizations.UserType, []string{"READ", "READ"}, apiutil.ErrInvalidPermission},
		{"mixed valid and invalid", authorizations.BatchType, []string{"CREATE", "DELETE"}, apiutil.ErrInvalidPermission},
		{"unknown resource type", authorizations.ResourceType(100), []string{"READ"}, apiutil.ErrInvalidPermission},
	}

	for _, tt := range tests {
		err := authorizations.ValidatePermissions(tt.rt, tt.permissions)
		assert.Equal(t, tt.err, err, "ValidatePermissions(%v, %v) = %v, expected %v", tt.rt, tt.permissions, err, tt.err)
	}
}
