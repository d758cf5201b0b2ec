package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/rohits-web03/filehub/internal/api/services"
	"github.com/rohits-web03/filehub/internal/auth"
	"github.com/rohits-web03/filehub/internal/config"
	"github.com/rohits-web03/filehub/internal/utils"
	"golang.org/x/oauth2"
)

// Handler binds the HTTP surface to the services.
type Handler struct {
	Files   *services.FileService
	Tags    *services.TagService
	Uploads *services.UploadService
	Users   *services.UserService
	Tokens  *auth.TokenIssuer
	OAuth   *oauth2.Config
	Cfg     *config.Config

	// UserInfoURL is where the Google profile is fetched after the code exchange.
	UserInfoURL string
	// Proxies are the peers allowed to report the client address in forwarding headers.
	Proxies utils.TrustedProxies
}

// writeError maps a service error onto the response envelope. Anything that is
// not one of the service error kinds is logged and reported as an internal error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var svcErr *services.Error
	message := "Internal server error"
	if errors.As(err, &svcErr) {
		message = svcErr.Message
	}

	switch {
	case errors.Is(err, services.ErrUnauthorized):
		utils.Fail(w, http.StatusUnauthorized, message)
	case errors.Is(err, services.ErrBadRequest):
		utils.Fail(w, http.StatusBadRequest, message)
	case errors.Is(err, services.ErrNotFound):
		utils.Fail(w, http.StatusNotFound, message)
	default:
		slog.ErrorContext(r.Context(), "request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		utils.Fail(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := utils.DecodeJSON(r, dst); err != nil {
		utils.Fail(w, http.StatusBadRequest, "Invalid input")
		return false
	}
	return true
}
