// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package authorizations

import (
	"encoding/json"
	"strings"

	"github.com/tibisabau/camunda/pkg/apiutil"
)

// ResourceType represents the category of resource an authorization grants
// access to.
type ResourceType uint8

// Possible resource type values. The declaration order is the canonical
// order in which resource types are presented.
const (
	ApplicationType ResourceType = iota
	AuthorizationType
	BatchType
	DecisionDefinitionType
	DecisionRequirementsDefinitionType
	GroupType
	MappingRuleType
	MessageType
	ProcessDefinitionType
	// DeployedResourceType covers deployed artifacts such as forms and
	// diagrams; its wire value is RESOURCE.
	DeployedResourceType
	RoleType
	SystemType
	TenantType
	UserType
)

// Wire representation of the possible resource type values.
const (
	application             = "APPLICATION"
	authorization           = "AUTHORIZATION"
	batch                   = "BATCH"
	decisionDefinition      = "DECISION_DEFINITION"
	decisionRequirementsDef = "DECISION_REQUIREMENTS_DEFINITION"
	group                   = "GROUP"
	mappingRule             = "MAPPING_RULE"
	message                 = "MESSAGE"
	processDefinition       = "PROCESS_DEFINITION"
	resource                = "RESOURCE"
	role                    = "ROLE"
	system                  = "SYSTEM"
	tenant                  = "TENANT"
	user                    = "USER"
	unknown                 = "UNKNOWN"
)

// String converts a resource type to its wire form.
func (rt ResourceType) String() string {
	switch rt {
	case ApplicationType:
		return application
	case AuthorizationType:
		return authorization
	case BatchType:
		return batch
	case DecisionDefinitionType:
		return decisionDefinition
	case DecisionRequirementsDefinitionType:
		return decisionRequirementsDef
	case GroupType:
		return group
	case MappingRuleType:
		return mappingRule
	case MessageType:
		return message
	case ProcessDefinitionType:
		return processDefinition
	case DeployedResourceType:
		return resource
	case RoleType:
		return role
	case SystemType:
		return system
	case TenantType:
		return tenant
	case UserType:
		return user
	default:
		return unknown
	}
}

// ToResourceType converts a wire string to a valid resource type.
func ToResourceType(rt string) (ResourceType, error) {
	switch rt {
	case application:
		return ApplicationType, nil
	case authorization:
		return AuthorizationType, nil
	case batch:
		return BatchType, nil
	case decisionDefinition:
		return DecisionDefinitionType, nil
	case decisionRequirementsDef:
		return DecisionRequirementsDefinitionType, nil
	case group:
		return GroupType, nil
	case mappingRule:
		return MappingRuleType, nil
	case message:
		return MessageType, nil
	case processDefinition:
		return ProcessDefinitionType, nil
	case resource:
		return DeployedResourceType, nil
	case role:
		return RoleType, nil
	case system:
		return SystemType, nil
	case tenant:
		return TenantType, nil
	case user:
		return UserType, nil
	}

	return ResourceType(0), apiutil.ErrInvalidResourceType
}

// Custom Marshaler for ResourceType.
func (rt ResourceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(rt.String())
}

// Custom Unmarshaler for ResourceType.
func (rt *ResourceType) UnmarshalJSON(data []byte) error {
	str := strings.Trim(string(data), "\"")
	val, err := ToResourceType(str)
	*rt = val
	return err
}

// ResourceTypes returns the resource types in canonical order. The tenant
// type is included only when the tenants capability is enabled.
func ResourceTypes(tenantsEnabled bool) []ResourceType {
	all := []ResourceType{
		ApplicationType,
		AuthorizationType,
		BatchType,
		DecisionDefinitionType,
		DecisionRequirementsDefinitionType,
		GroupType,
		MappingRuleType,
		MessageType,
		ProcessDefinitionType,
		DeployedResourceType,
		RoleType,
		SystemType,
		TenantType,
		UserType,
	}
	if tenantsEnabled {
		return all
	}

	types := make([]ResourceType, 0, len(all)-1)
	for _, rt := range all {
		if rt != TenantType {
			types = append(types, rt)
		}
	}

	return types
}

var allowedPermissions = map[ResourceType][]string{
	ApplicationType:                    {"ACCESS"},
	AuthorizationType:                  {"CREATE", "READ", "UPDATE", "DELETE"},
	BatchType:                          {"CREATE", "READ", "UPDATE"},
	DecisionDefinitionType:             {"READ_DECISION_DEFINITION", "READ_DECISION_INSTANCE", "CREATE_DECISION_INSTANCE", "DELETE_DECISION_INSTANCE"},
	DecisionRequirementsDefinitionType: {"READ", "UPDATE", "DELETE"},
	GroupType:                          {"CREATE", "READ", "UPDATE", "DELETE"},
	MappingRuleType:                    {"CREATE", "READ", "UPDATE", "DELETE"},
	MessageType:                        {"CREATE", "READ"},
	ProcessDefinitionType:              {"READ_PROCESS_DEFINITION", "READ_PROCESS_INSTANCE", "READ_USER_TASK", "CREATE_PROCESS_INSTANCE", "UPDATE_PROCESS_INSTANCE", "UPDATE_USER_TASK", "DELETE_PROCESS_INSTANCE"},
	DeployedResourceType:               {"CREATE", "READ", "DELETE"},
	RoleType:                           {"CREATE", "READ", "UPDATE", "DELETE"},
	SystemType:                         {"READ", "UPDATE"},
	TenantType:                         {"CREATE", "READ", "UPDATE", "DELETE"},
	UserType:                           {"CREATE", "READ", "UPDATE", "DELETE"},
}

// AllowedPermissions returns the permission types that can be granted for
// the given resource type.
func AllowedPermissions(rt ResourceType) []string {
	perms, ok := allowedPermissions[rt]
	if !ok {
		return nil
	}

	return append([]string(nil), perms...)
}

// ValidatePermissions checks that the given permission list is not empty,
// has no duplicates and stays within the set allowed for the resource type.
func ValidatePermissions(rt ResourceType, permissions []string) error {
	if len(permissions) == 0 {
		return apiutil.ErrMissingPermissions
	}

	allowed := make(map[string]bool, len(allowedPermissions[rt]))
	for _, p := range allowedPermissions[rt] {
		allowed[p] = true
	}
	seen := make(map[string]bool, len(permissions))
	for _, p := range permissions {
		if !allowed[p] || seen[p] {
			return apiutil.ErrInvalidPermission
		}
		seen[p] = true
	}

	return nil
}
