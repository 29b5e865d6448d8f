package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/beleza-studio/internal/audit"
	"github.com/BruksfildServices01/beleza-studio/internal/httperr"
	"github.com/BruksfildServices01/beleza-studio/internal/infra/repository"
	"github.com/BruksfildServices01/beleza-studio/internal/middleware"
	"github.com/BruksfildServices01/beleza-studio/internal/models"
	"github.com/BruksfildServices01/beleza-studio/internal/validators"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	users  repository.UserRepository
	secret string
	audit  *audit.Dispatcher

	// resolver nil desliga a checagem de domínio do e-mail
	resolver validators.Resolver
}

func NewAuthHandler(users repository.UserRepository, secret string, dispatcher *audit.Dispatcher) *AuthHandler {
	return &AuthHandler{users: users, secret: secret, audit: dispatcher}
}

// WithEmailDomainCheck liga a consulta de MX/IP no cadastro.
func (h *AuthHandler) WithEmailDomainCheck(r validators.Resolver) *AuthHandler {
	h.resolver = r
	return h
}

// --------- Requests ---------

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func userPayload(u *models.AdminUser) gin.H {
	return gin.H{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	}
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if h.resolver != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		ok := validators.IsEmailDomainValid(ctx, h.resolver, email)
		cancel()
		if !ok {
			httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
			return
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao processar a senha.")
		return
	}

	user := models.AdminUser{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Role:         "admin",
	}

	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		writeError(c, err)
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar a sessão.")
		return
	}

	h.audit.Dispatch(audit.Event{
		ActorID: &user.ID,
		Action:  "admin_registered",
		Entity:  "admin_user",
	})

	c.JSON(http.StatusCreated, gin.H{
		"user":  userPayload(&user),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.users.FindByEmail(c.Request.Context(), email)
	if httperr.IsBusiness(err, "user_not_found") {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou senha incorretos.")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erro ao gerar a sessão.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userPayload(user),
		"token": token,
	})
}

// Logout: o token é stateless; o cliente apenas descarta.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

// Me devolve o administrador do token.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.users.FindByID(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userPayload(user)})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.AdminUser) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": user.Role,
		"exp":  now.Add(tokenTTL).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.secret))
}
