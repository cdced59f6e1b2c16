package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/dmitrijs2005/skillbridge/internal/common"
	"github.com/dmitrijs2005/skillbridge/internal/server/models"
)

type registerRequest struct {
	Name     string      `json:"name"`
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Type     models.Role `json:"type"`
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	req := registerRequest{}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r)
		return
	}

	user, token, err := s.users.Register(r.Context(), req.Name, req.Email, req.Password, req.Type)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			reject(w, r, "User with this email already exists")
		case errors.Is(err, common.ErrorValidation):
			badRequest(w, r)
		default:
			s.logger.Error(r.Context(), "registration failed", "error", err)
			fail(w, r, http.StatusInternalServerError, "Server error during registration")
		}
		return
	}

	render.JSON(w, r, render.M{"success": true, "user": publicUser(user), "token": token})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	req := loginRequest{}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r)
		return
	}

	user, token, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			reject(w, r, "Invalid email or password")
			return
		}
		s.logger.Error(r.Context(), "login failed", "error", err)
		fail(w, r, http.StatusInternalServerError, "Server error during login")
		return
	}

	render.JSON(w, r, render.M{"success": true, "user": publicUser(user), "token": token})
}

func (s *Server) listUsers(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, models.RoleAdmin); !ok {
		return
	}

	users, err := s.users.List(r.Context())
	if err != nil {
		serverError(w, r)
		return
	}
	if users == nil {
		users = []*models.User{}
	}
	render.JSON(w, r, render.M{"success": true, "users": users})
}

func (s *Server) deleteUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireRole(w, r, models.RoleAdmin); !ok {
		return
	}

	if err := s.users.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fail(w, r, http.StatusNotFound, "User not found")
			return
		}
		serverError(w, r)
		return
	}
	render.JSON(w, r, render.M{"success": true, "message": "User deleted successfully"})
}

func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r)

	user, err := s.users.Profile(r.Context(), p.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			fail(w, r, http.StatusNotFound, "User not found")
			return
		}
		serverError(w, r)
		return
	}
	render.JSON(w, r, render.M{"success": true, "user": user})
}

type profileUpdateRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func (s *Server) updateProfile(w http.ResponseWriter, r *http.Request) {
	p := principalFrom(r)

	req := profileUpdateRequest{}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		badRequest(w, r)
		return
	}

	user, err := s.users.UpdateProfile(r.Context(), p.UserID, req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			fail(w, r, http.StatusNotFound, "User not found")
		case errors.Is(err, common.ErrorValidation):
			badRequest(w, r)
		default:
			serverError(w, r)
		}
		return
	}
	render.JSON(w, r, render.M{"success": true, "user": user})
}
