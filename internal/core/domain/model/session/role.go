// Package session holds the normalized session identity used to scope
// backend calls: the actor's role, bearer token, and tenant.
package session

import (
	"fmt"
	"strings"

	"github.com/leeboxuan/opsflow-erp-mobile/internal/pkg/errs"
)

// Role is the normalized actor role, resolved exactly once at
// session-establishment time. The backend quotes the role in several
// inconsistently-cased fields; everything past ResolveRole sees only this
// enum.
type Role int

const (
	// RoleUnknown represents an unresolved or invalid role.
	RoleUnknown Role = iota

	// RoleDriver is the field actor executing trips.
	RoleDriver

	// RoleDispatcher is the dispatch-side actor editing routes.
	RoleDispatcher
)

// roleVocabulary maps the backend's case-insensitive labels to roles.
var roleVocabulary = map[string]Role{
	"driver":     RoleDriver,
	"dispatcher": RoleDispatcher,
	"admin":      RoleDispatcher,
	"ops":        RoleDispatcher,
}

// ResolveRole matches raw against the fixed vocabulary, case-insensitively.
// Returns an error for anything outside the vocabulary; callers must not
// store the raw string.
func ResolveRole(raw string) (Role, error) {
	if role, ok := roleVocabulary[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return role, nil
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause(
		"role",
		fmt.Errorf("%q is not a recognized role", raw),
	)
}

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case RoleDriver:
		return "Driver"
	case RoleDispatcher:
		return "Dispatcher"
	default:
		return "Unknown"
	}
}

// Validate checks that the Role was resolved.
func (r Role) Validate() error {
	if r != RoleDriver && r != RoleDispatcher {
		return errs.NewValueIsInvalidErrorWithCause(
			"role",
			fmt.Errorf("%d is not a valid role", r),
		)
	}
	return nil
}

// Session is the normalized identity attached to every backend call.
type Session struct {
	role     Role
	token    string
	tenantID string
}

// NewSession resolves the raw role once and captures the transport
// credentials. Token and tenant are required.
func NewSession(rawRole, token, tenantID string) (Session, error) {
	role, err := ResolveRole(rawRole)
	if err != nil {
		return Session{}, err
	}
	if token == "" {
		return Session{}, errs.NewValueIsRequiredError("token")
	}
	if tenantID == "" {
		return Session{}, errs.NewValueIsRequiredError("tenantId")
	}

	return Session{role: role, token: token, tenantID: tenantID}, nil
}

// Role returns the normalized role.
func (s Session) Role() Role {
	return s.role
}

// Token returns the bearer token for outbound calls.
func (s Session) Token() string {
	return s.token
}

// TenantID returns the tenant-scoping header value.
func (s Session) TenantID() string {
	return s.tenantID
}
