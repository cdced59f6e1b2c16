package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/dmitrijs2005/skillbridge/internal/common"
	"github.com/dmitrijs2005/skillbridge/internal/server/models"
	"github.com/dmitrijs2005/skillbridge/internal/server/services"
)

func (s *Server) listCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := s.courses.List(r.Context())
	if err != nil {
		serverError(w, r)
		return
	}
	if courses == nil {
		courses = []*models.Course{}
	}
	render.JSON(w, r, render.M{"success": true, "courses": courses})
}

func (s *Server) getCourse(w http.ResponseWriter, r *http.Request) {
	course, err := s.courses.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fail(w, r, http.StatusNotFound, "Course not found")
			return
		}
		serverError(w, r)
		return
	}
	render.JSON(w, r, render.M{"success": true, "course": course})
}

type courseRequest struct {
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Price       float64            `json:"price"`
	Category    string             `json:"category"`
	Level       models.CourseLevel `json:"level"`
	Duration    int                `json:"duration"`
}

func (s *Server) createCourse(w http.ResponseWriter, r *http.Request) {
	p, ok := s.requireRole(w, r, models.RoleMentor)
	if !ok {
		return
	}

	req := courseRequest{}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r)
		return
	}

	course, err := s.courses.Create(r.Context(), p, &models.Course{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Level:       req.Level,
		Duration:    req.Duration,
	})
	if err != nil {
		if errors.Is(err, common.ErrorValidation) {
			badRequest(w, r)
			return
		}
		serverError(w, r)
		return
	}
	render.JSON(w, r, render.M{"success": true, "course": course})
}

type courseUpdateRequest struct {
	Title       *string             `json:"title"`
	Description *string             `json:"description"`
	Price       *float64            `json:"price"`
	Category    *string             `json:"category"`
	Level       *models.CourseLevel `json:"level"`
	Duration    *int                `json:"duration"`
}

func (s *Server) updateCourse(w http.ResponseWriter, r *http.Request) {
	p, ok := s.requireRole(w, r, models.RoleMentor)
	if !ok {
		return
	}

	req := courseUpdateRequest{}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r)
		return
	}

	course, err := s.courses.Update(r.Context(), p, chi.URLParam(r, "id"), services.CourseUpdate{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Level:       req.Level,
		Duration:    req.Duration,
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			fail(w, r, http.StatusNotFound, "Course not found")
		case errors.Is(err, common.ErrorForbidden):
			fail(w, r, http.StatusForbidden, "Can only edit your own courses")
		case errors.Is(err, common.ErrorValidation):
			badRequest(w, r)
		default:
			serverError(w, r)
		}
		return
	}
	render.JSON(w, r, render.M{"success": true, "course": course})
}

func (s *Server) deleteCourse(w http.ResponseWriter, r *http.Request) {
	p, ok := s.requireRole(w, r, models.RoleMentor)
	if !ok {
		return
	}

	if err := s.courses.Delete(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			fail(w, r, http.StatusNotFound, "Course not found")
		case errors.Is(err, common.ErrorForbidden):
			fail(w, r, http.StatusForbidden, "Can only delete your own courses")
		default:
			serverError(w, r)
		}
		return
	}
	render.JSON(w, r, render.M{"success": true, "message": "Course deleted successfully"})
}

func (s *Server) enrollCourse(w http.ResponseWriter, r *http.Request) {
	p, ok := s.requireRole(w, r, models.RoleStudent)
	if !ok {
		return
	}

	if err := s.courses.Enroll(r.Context(), p, chi.URLParam(r, "id")); err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			fail(w, r, http.StatusNotFound, "Course not found")
		case errors.Is(err, common.ErrorAlreadyExists):
			reject(w, r, "Already enrolled in this course")
		default:
			serverError(w, r)
		}
		return
	}
	render.JSON(w, r, render.M{"success": true, "message": "Successfully enrolled in course"})
}
