package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/Tyyuu55/Crave-Now/internal/apiclient"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	accounts Accounts
	session  Session
	validate *validator.Validate
	timeout  time.Duration
}

func NewAuthHandler(accounts Accounts, session Session, timeout time.Duration) *AuthHandler {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &AuthHandler{
		accounts: accounts,
		session:  session,
		validate: v,
		timeout:  timeout,
	}
}

type SignupRequestDTO struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

var fieldMessages = map[string]string{
	"name.required":            "Name is required",
	"email.required":           "Email is required",
	"password.required":        "Password is required",
	"password.min":             "Use at least 6 characters",
	"confirmPassword.required": "Confirm your password",
	"confirmPassword.eqfield":  "Passwords do not match",
}

// POST /api/auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req SignupRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if !h.validateRequest(w, req) {
		return
	}

	user, err := h.accounts.Signup(ctx, apiclient.SignupRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(w, http.StatusBadGateway, "signup_failed", apiclient.MessageOr(err, "Failed to sign up. Please try again."))
		return
	}

	respondJSON(w, http.StatusCreated, user)
}

// POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	var req LoginRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if !h.validateRequest(w, req) {
		return
	}

	user, err := h.accounts.Login(ctx, req.Email, req.Password)
	if errors.Is(err, apiclient.ErrInvalidCredentials) {
		respondError(w, http.StatusUnauthorized, "invalid_credentials", apiclient.Message(err))
		return
	}
	if err != nil {
		respondError(w, http.StatusBadGateway, "login_failed", apiclient.MessageOr(err, "Failed to login. Please try again."))
		return
	}

	if err := h.session.Login(ctx, *user); err != nil {
		respondError(w, http.StatusInternalServerError, "session_not_saved", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// POST /api/auth/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Logout(r.Context()); err != nil {
		respondError(w, http.StatusInternalServerError, "session_not_saved", err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/auth/me
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := h.session.User()
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "please sign in to continue")
		return
	}
	respondJSON(w, http.StatusOK, user)
}

// validateRequest writes a 400 with per-field messages when req is invalid.
func (h *AuthHandler) validateRequest(w http.ResponseWriter, req interface{}) bool {
	err := h.validate.Struct(req)
	if err == nil {
		return true
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return false
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Error()
		}
		fields[fe.Field()] = msg
	}
	respondJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:  "please fix the highlighted fields",
		Code:   "validation_failed",
		Fields: fields,
	})
	return false
}
