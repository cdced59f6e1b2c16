package httpapi

import (
	"net/http"

	"github.com/go-chi/render"

	"github.com/dmitrijs2005/skillbridge/internal/server/auth"
	"github.com/dmitrijs2005/skillbridge/internal/server/models"
)

// fail writes {"success":false,"message":...} with the given status.
func fail(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, render.M{"success": false, "message": message})
}

// reject mirrors the platform's historic conflict semantics: the request is
// well-formed and was processed, so the status stays 200 and only the
// success flag says no.
func reject(w http.ResponseWriter, r *http.Request, message string) {
	render.JSON(w, r, render.M{"success": false, "message": message})
}

func serverError(w http.ResponseWriter, r *http.Request) {
	fail(w, r, http.StatusInternalServerError, "Server error")
}

func badRequest(w http.ResponseWriter, r *http.Request) {
	fail(w, r, http.StatusBadRequest, "Invalid request")
}

// requireRole gates a handler to one role and writes the rejection itself.
// The bool result tells the handler whether to proceed.
func (s *Server) requireRole(w http.ResponseWriter, r *http.Request, role models.Role) (*auth.Principal, bool) {
	p := principalFrom(r)
	if err := auth.RequireRole(p, role); err != nil {
		fail(w, r, http.StatusForbidden, roleMessage(role))
		return nil, false
	}
	return p, true
}

func roleMessage(role models.Role) string {
	switch role {
	case models.RoleMentor:
		return "Mentor access required"
	case models.RoleStudent:
		return "Student access required"
	case models.RoleAdmin:
		return "Admin access required"
	}
	return "Access denied"
}

// publicUser is the account shape exposed by register/login responses.
func publicUser(u *models.User) render.M {
	return render.M{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"type":  u.Role,
	}
}
