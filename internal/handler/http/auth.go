package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/peoplehub/hr-backend-go/internal/domain/auth"
	"github.com/peoplehub/hr-backend-go/internal/handler/http/response"
	"github.com/peoplehub/hr-backend-go/internal/pkg/jwt"
	"github.com/peoplehub/hr-backend-go/internal/pkg/oauth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	LoginWithGoogle(w http.ResponseWriter, r *http.Request)
	OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService    jwt.Service
	authService   auth.AuthService
	googleService oauth.GoogleService
	frontendURL   string
}

func NewAuthHandler(jwtService jwt.Service, authService auth.AuthService, googleService oauth.GoogleService, frontendURL string) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:    jwtService,
		authService:   authService,
		googleService: googleService,
		frontendURL:   frontendURL,
	}
}

func sessionTracking(r *http.Request) auth.SessionTrackingRequest {
	return auth.SessionTrackingRequest{
		UserAgent: r.UserAgent(),
		IPAddress: r.RemoteAddr,
	}
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokens, err := h.authService.Login(r.Context(), req, sessionTracking(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))
	response.Success(w, tokens)
}

// RefreshToken implements AuthHandler.
func (h *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req auth.RefreshTokenRequest

	// Prefer the cookie, fall back to the request body.
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		req.RefreshToken = cookie.Value
	} else if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	tokens, err := h.authService.RefreshToken(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tokens)
}

// Logout implements AuthHandler.
func (h *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	var refreshToken string
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		refreshToken = cookie.Value
	}

	if err := h.authService.Logout(r.Context(), refreshToken); err != nil {
		response.HandleError(w, err)
		return
	}

	// Expire the cookie
	cookie := h.jwtService.RefreshTokenCookie("", 0)
	cookie.MaxAge = -1
	http.SetCookie(w, cookie)

	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

// LoginWithGoogle implements AuthHandler.
func (h *AuthHandlerImpl) LoginWithGoogle(w http.ResponseWriter, r *http.Request) {
	state := h.googleService.GenerateState(r.UserAgent())
	if state == "" {
		response.InternalServerError(w, "Failed to start OAuth flow")
		return
	}
	http.Redirect(w, r, h.googleService.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackGoogle implements AuthHandler.
func (h *AuthHandlerImpl) OAuthCallbackGoogle(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		response.BadRequest(w, "Missing authorization code", nil)
		return
	}

	token, err := h.googleService.VerifyToken(r.Context(), code)
	if err != nil {
		slog.Error("Google token exchange failed", "error", err)
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	info, err := h.googleService.VerifyUser(r.Context(), token)
	if err != nil {
		slog.Error("Google user verification failed", "error", err)
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	tokens, err := h.authService.LoginWithGoogle(r.Context(), info.Email, sessionTracking(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	http.SetCookie(w, h.jwtService.RefreshTokenCookie(tokens.RefreshToken, tokens.RefreshTokenExpiresIn))
	http.Redirect(w, r, h.frontendURL, http.StatusTemporaryRedirect)
}
