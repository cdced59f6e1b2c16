package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/dmitrijs2005/skillbridge/internal/common"
	"github.com/dmitrijs2005/skillbridge/internal/server/models"
)

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	sessions, err := s.sessions.ListFor(r.Context(), principalFrom(r))
	if err != nil {
		serverError(w, r)
		return
	}
	if sessions == nil {
		sessions = []*models.Session{}
	}
	render.JSON(w, r, render.M{"success": true, "sessions": sessions})
}

type sessionRequest struct {
	MentorID    string `json:"mentorId"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Subject     string `json:"subject"`
	Description string `json:"description"`
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	p, ok := s.requireRole(w, r, models.RoleStudent)
	if !ok {
		return
	}

	req := sessionRequest{}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r)
		return
	}

	session, err := s.sessions.Create(r.Context(), p, &models.Session{
		MentorID:    req.MentorID,
		Date:        req.Date,
		Time:        req.Time,
		Subject:     req.Subject,
		Description: req.Description,
	})
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			badRequest(w, r)
			return
		}
		serverError(w, r)
		return
	}
	render.JSON(w, r, render.M{"success": true, "session": session})
}

type sessionStatusRequest struct {
	Status models.SessionStatus `json:"status"`
}

func (s *Server) updateSession(w http.ResponseWriter, r *http.Request) {
	p, ok := s.requireRole(w, r, models.RoleMentor)
	if !ok {
		return
	}

	req := sessionStatusRequest{}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r)
		return
	}

	session, err := s.sessions.UpdateStatus(r.Context(), p, chi.URLParam(r, "id"), req.Status)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			fail(w, r, http.StatusNotFound, "Session not found")
		case errors.Is(err, common.ErrorForbidden):
			fail(w, r, http.StatusForbidden, "Can only manage your own sessions")
		case errors.Is(err, common.ErrorValidation):
			badRequest(w, r)
		default:
			serverError(w, r)
		}
		return
	}
	render.JSON(w, r, render.M{"success": true, "session": session})
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r)

	if err := s.sessions.Delete(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			fail(w, r, http.StatusNotFound, "Session not found")
		case errors.Is(err, common.ErrorForbidden):
			fail(w, r, http.StatusForbidden, "Can only delete your own sessions")
		default:
			serverError(w, r)
		}
		return
	}
	render.JSON(w, r, render.M{"success": true, "message": "Session deleted successfully"})
}
