// Package permission checks "resource:action" permissions with wildcard
// patterns and reports denials as ForbiddenError.
//
//	checker := permission.NewMapChecker(map[string][]string{
//	    "admin":  {"*:*"},
//	    "editor": {"order:*"},
//	})
//	if err := permission.Require(checker, []string{"editor"}, "order:delete"); err != nil {
//	    return err // 403
//	}
package permission

import (
	"strings"

	"github.com/kbukum/svcerrors/errors"
)

// Checker decides whether subject holds permission.
type Checker interface {
	HasPermission(subject string, permission string) bool
}

// CheckerFunc is an adapter to use ordinary functions as Checker.
type CheckerFunc func(subject string, permission string) bool

// HasPermission implements Checker.
func (f CheckerFunc) HasPermission(subject string, permission string) bool {
	return f(subject, permission)
}

// MapChecker is an in-memory Checker backed by subject → permission patterns.
type MapChecker struct {
	permissions map[string][]string
}

// NewMapChecker creates a Checker from a static map of subject → permission patterns.
func NewMapChecker(permissions map[string][]string) *MapChecker {
	return &MapChecker{permissions: permissions}
}

// HasPermission implements Checker.
func (c *MapChecker) HasPermission(subject string, required string) bool {
	return MatchAny(c.permissions[subject], required)
}

// Require returns nil when any subject holds required, and a ForbiddenError
// naming the permission otherwise.
func Require(c Checker, subjects []string, required string) error {
	for _, s := range subjects {
		if c.HasPermission(s, required) {
			return nil
		}
	}
	return errors.Forbidden(required + " permission required")
}

// MatchPattern checks if a permission pattern matches a required permission:
//
//   - "*:*"        matches everything
//   - "order:*"    matches "order:read", "order:write", etc.
//   - "*:read"     matches "order:read", "user:read", etc.
//   - "order:read" matches only "order:read"
func MatchPattern(pattern, required string) bool {
	if pattern == required || pattern == "*" || pattern == "*:*" {
		return true
	}

	patResource, patAction, patOK := strings.Cut(pattern, ":")
	reqResource, reqAction, reqOK := strings.Cut(required, ":")
	if !patOK || !reqOK {
		return false
	}
	return matchWildcard(patResource, reqResource) && matchWildcard(patAction, reqAction)
}

// MatchAny returns true if any of the patterns match the required permission.
func MatchAny(patterns []string, required string) bool {
	for _, p := range patterns {
		if MatchPattern(p, required) {
			return true
		}
	}
	return false
}

func matchWildcard(pattern, value string) bool {
	return pattern == "*" || pattern == value
}
