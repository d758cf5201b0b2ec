package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/rohits-web03/filehub/internal/api/middleware"
	"github.com/rohits-web03/filehub/internal/api/services"
	"github.com/rohits-web03/filehub/internal/auth"
	"github.com/rohits-web03/filehub/internal/utils"
)

const stateCookie = "oauth_state"

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// POST /api/v1/auth/sign-up
// RegisterUser godoc
// @Summary Create an account
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body object{email=string,password=string} true "Credentials"
// @Success 201 {object} utils.Payload
// @Failure 400 {object} utils.Payload
// @Router /api/v1/auth/sign-up [post]
func (h *Handler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var input credentials
	if !decode(w, r, &input) {
		return
	}
	if input.Email == "" || input.Password == "" {
		utils.Fail(w, http.StatusBadRequest, "Invalid input")
		return
	}

	if _, err := h.Users.Register(r.Context(), input.Email, input.Password); err != nil {
		writeError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusCreated, utils.Payload{
		Success: true,
		Message: "User registered successfully",
	})
}

// POST /api/v1/auth/login
// LoginUser godoc
// @Summary Sign in
// @Description Verifies the credentials and sets the session cookie.
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body object{email=string,password=string} true "Credentials"
// @Success 200 {object} utils.Payload
// @Failure 401 {object} utils.Payload
// @Router /api/v1/auth/login [post]
func (h *Handler) LoginUser(w http.ResponseWriter, r *http.Request) {
	var input credentials
	if !decode(w, r, &input) {
		return
	}
	if input.Email == "" || input.Password == "" {
		utils.Fail(w, http.StatusBadRequest, "Invalid input")
		return
	}

	user, err := h.Users.Authenticate(r.Context(), input.Email, input.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.startSession(w, user.ID, user.Email); err != nil {
		writeError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Login successful",
	})
}

// POST /api/v1/auth/logout
// Logout godoc
// @Summary Sign out
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.Payload
// @Router /api/v1/auth/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.setCookie(w, middleware.TokenCookie, "", -1)

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "Logged out successfully",
	})
}

// GET /api/v1/auth/me
// Me godoc
// @Summary Current user
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.Payload{data=models.User}
// @Failure 401 {object} utils.Payload
// @Router /api/v1/auth/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		utils.Fail(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	user, err := h.Users.Get(r.Context(), userID)
	if errors.Is(err, services.ErrNotFound) {
		utils.Fail(w, http.StatusUnauthorized, "Unauthorized")
		return
	} else if err != nil {
		writeError(w, r, err)
		return
	}

	utils.JSONResponse(w, http.StatusOK, utils.Payload{
		Success: true,
		Message: "User retrieved successfully",
		Data:    user,
	})
}

// GET /api/v1/auth/google/login
// HandleGoogleLogin godoc
// @Summary Start Google sign-in
// @Tags Auth
// @Param redirect query string false "login or register"
// @Success 307
// @Router /api/v1/auth/google/login [get]
func (h *Handler) HandleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	flow := r.URL.Query().Get("redirect")
	if flow != flowRegister {
		flow = flowLogin
	}

	state, err := GenerateState(map[string]string{"flow": flow})
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.setCookie(w, stateCookie, state, int((10 * time.Minute).Seconds()))

	http.Redirect(w, r, h.OAuth.AuthCodeURL(state), http.StatusTemporaryRedirect)
}

type googleUser struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
}

// GET /api/v1/auth/google/callback
// HandleGoogleCallback godoc
// @Summary Finish Google sign-in
// @Tags Auth
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 307
// @Failure 400 {object} utils.Payload
// @Router /api/v1/auth/google/callback [get]
func (h *Handler) HandleGoogleCallback(w http.ResponseWriter, r *http.Request) {
	state := r.FormValue("state")
	cookie, err := r.Cookie(stateCookie)
	if err != nil || cookie.Value == "" || cookie.Value != state {
		utils.Fail(w, http.StatusBadRequest, "Invalid OAuth state")
		return
	}
	h.setCookie(w, stateCookie, "", -1)

	stateData, err := DecodeState(state)
	if err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid OAuth state")
		return
	}
	flow := stateData["flow"]

	profile, err := h.fetchGoogleUser(r, r.FormValue("code"))
	if err != nil {
		slog.ErrorContext(r.Context(), "google sign-in failed", "error", err)
		h.redirectToFrontend(w, r, "/login", "oauth_failed")
		return
	}

	user, err := h.Users.FindByEmail(r.Context(), profile.Email)
	switch {
	case err == nil && flow == flowRegister:
		h.redirectToFrontend(w, r, "/login", "user_already_exists")
		return
	case errors.Is(err, services.ErrNotFound) && flow == flowLogin:
		h.redirectToFrontend(w, r, "/register", "user_not_found")
		return
	case errors.Is(err, services.ErrNotFound):
		if user, err = h.Users.CreateExternal(r.Context(), profile.Email); err != nil {
			writeError(w, r, err)
			return
		}
	case err != nil:
		writeError(w, r, err)
		return
	}

	if err := h.startSession(w, user.ID, user.Email); err != nil {
		writeError(w, r, err)
		return
	}
	http.Redirect(w, r, h.Cfg.FrontendURL+"/dashboard", http.StatusTemporaryRedirect)
}

func (h *Handler) fetchGoogleUser(r *http.Request, code string) (*googleUser, error) {
	ctx := r.Context()
	token, err := h.OAuth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("code exchange failed: %w", err)
	}

	resp, err := h.OAuth.Client(ctx, token).Get(h.UserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("user info returned status %d", resp.StatusCode)
	}

	var profile googleUser
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to parse user info: %w", err)
	}
	if profile.Email == "" || !profile.VerifiedEmail {
		return nil, errors.New("google account has no verified email")
	}
	return &profile, nil
}

func (h *Handler) startSession(w http.ResponseWriter, userID, email string) error {
	token, expiration, err := h.Tokens.Issue(userID, email)
	if err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}
	h.setCookie(w, middleware.TokenCookie, token, int(time.Until(expiration).Seconds()))
	return nil
}

// setCookie writes an HttpOnly cookie. A negative maxAge deletes it.
func (h *Handler) setCookie(w http.ResponseWriter, name, value string, maxAge int) {
	isProd := h.Cfg.IsProduction()

	sameSite := http.SameSiteLaxMode
	if isProd {
		sameSite = http.SameSiteNoneMode
	}

	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		Secure:   isProd,
		HttpOnly: true,
		SameSite: sameSite,
	})
}

func (h *Handler) redirectToFrontend(w http.ResponseWriter, r *http.Request, path, reason string) {
	target := h.Cfg.FrontendURL + path + "?error=" + url.QueryEscape(reason)
	http.Redirect(w, r, target, http.StatusTemporaryRedirect)
}
