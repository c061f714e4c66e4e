// Package authz is the single authorization policy for the service. Both the
// route guard middleware and the action layer consult it, so the two
// enforcement points cannot drift apart. The action layer never assumes the
// route guard already ran: a direct service call with the wrong role is
// still rejected.
package authz

import (
	"strings"

	"github.com/ideaboard-app/go-ideaboard-backend/internal/auth/domain"
)

// CanCreateProject reports whether a role may create projects: any
// authenticated account that is not a guest.
func CanCreateProject(r domain.Role) bool {
	return r == domain.RoleAdmin || r == domain.RoleUser
}

// CanManageProjects reports whether a role may update project status or
// delete projects. Admin only.
func CanManageProjects(r domain.Role) bool {
	return r == domain.RoleAdmin
}

// CanViewSettings reports whether a role may access the administrative
// settings area. Admin only.
func CanViewSettings(r domain.Role) bool {
	return r == domain.RoleAdmin
}

// RouteDecision is the outcome of the route-level check.
type RouteDecision int

const (
	Allow RouteDecision = iota
	RedirectSignIn
	RedirectHome
)

const (
	signInPathPrefix   = "/api/v1/auth"
	creationPath       = "/api/v1/projects"
	settingsPathPrefix = "/api/v1/settings"
)

// CheckRoute applies the route-level authorization rules. actor is nil for
// an unauthenticated request.
//   - auth and health routes always pass
//   - unauthenticated on anything else redirects to sign-in
//   - GUEST on the creation route or settings routes redirects home
//   - USER on settings routes redirects home
func CheckRoute(actor *domain.Actor, method, path string) RouteDecision {
	if isAuthRoute(path) {
		return Allow
	}

	if actor == nil {
		return RedirectSignIn
	}

	isCreation := method == "POST" && path == creationPath
	isSettings := strings.HasPrefix(path, settingsPathPrefix)

	if actor.Role == domain.RoleGuest && (isCreation || isSettings) {
		return RedirectHome
	}

	if actor.Role == domain.RoleUser && isSettings {
		return RedirectHome
	}

	return Allow
}

func isAuthRoute(path string) bool {
	return strings.HasPrefix(path, signInPathPrefix) ||
		path == "/health" || path == "/healthz"
}
