package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/dmitrijs2005/skillbridge/internal/common"
	"github.com/dmitrijs2005/skillbridge/internal/server/models"
)

func (s *Server) listDoubts(w http.ResponseWriter, r *http.Request) {
	doubts, err := s.doubts.ListFor(r.Context(), principalFrom(r))
	if err != nil {
		serverError(w, r)
		return
	}
	if doubts == nil {
		doubts = []*models.Doubt{}
	}
	render.JSON(w, r, render.M{"success": true, "doubts": doubts})
}

type doubtRequest struct {
	Subject  string `json:"subject"`
	Question string `json:"question"`
}

func (s *Server) createDoubt(w http.ResponseWriter, r *http.Request) {
	p, ok := s.requireRole(w, r, models.RoleStudent)
	if !ok {
		return
	}

	req := doubtRequest{}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r)
		return
	}

	doubt, err := s.doubts.Create(r.Context(), p, &models.Doubt{
		Subject:  req.Subject,
		Question: req.Question,
	})
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			badRequest(w, r)
			return
		}
		serverError(w, r)
		return
	}
	render.JSON(w, r, render.M{"success": true, "doubt": doubt})
}

type replyRequest struct {
	Message string `json:"message"`
}

func (s *Server) addDoubtReply(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r)

	req := replyRequest{}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r)
		return
	}

	doubt, err := s.doubts.AddReply(r.Context(), p, chi.URLParam(r, "id"), req.Message)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			fail(w, r, http.StatusNotFound, "Doubt not found")
		case errors.Is(err, common.ErrorValidation):
			badRequest(w, r)
		default:
			serverError(w, r)
		}
		return
	}
	render.JSON(w, r, render.M{"success": true, "doubt": doubt})
}
