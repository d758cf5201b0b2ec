package api

import (
	"fmt"
	"log/slog"
	"net/http"

	_ "github.com/rohits-web03/filehub/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rohits-web03/filehub/internal/api/handlers"
	"github.com/rohits-web03/filehub/internal/api/middleware"
	"github.com/rs/cors"
)

func NewRouter(h *handlers.Handler) http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(h.Cfg.CorsOptions())
	limiter := middleware.NewRateLimiter(h.Cfg.RateLimit.RPS, h.Cfg.RateLimit.Burst)
	requireAuth := func(next http.HandlerFunc) http.Handler {
		return middleware.AuthMiddleware(h.Tokens, next)
	}

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	authMux := http.NewServeMux()
	authMux.HandleFunc("POST /sign-up", h.RegisterUser)
	authMux.HandleFunc("POST /login", h.LoginUser)
	authMux.HandleFunc("GET /google/login", h.HandleGoogleLogin)
	authMux.HandleFunc("GET /google/callback", h.HandleGoogleCallback)
	authMux.Handle("POST /logout", requireAuth(h.Logout))
	authMux.Handle("GET /me", requireAuth(h.Me))

	mainMux.Handle("/api/v1/auth/",
		limiter.Middleware(http.StripPrefix("/api/v1/auth", authMux)),
	)
	mainMux.Handle("GET /api/v1/share/{id}", limiter.Middleware(http.HandlerFunc(h.GetSharedFile)))
	mainMux.Handle("POST /api/v1/storage/presign", limiter.Middleware(http.HandlerFunc(h.PresignUpload)))

	// ---------- PROTECTED ROUTES ----------
	protectedMux := http.NewServeMux()

	protectedMux.HandleFunc("POST /files", h.CreateFile)
	protectedMux.HandleFunc("GET /files", h.ListFiles)
	protectedMux.HandleFunc("PATCH /files/{id}/position", h.UpdateFilePosition)
	protectedMux.HandleFunc("POST /files/{id}/tags", h.AddFileTags)
	protectedMux.HandleFunc("GET /files/{id}/stats", h.GetFileStats)
	protectedMux.HandleFunc("DELETE /files/{id}", h.DeleteFile)

	protectedMux.HandleFunc("GET /tags", h.ListTags)
	protectedMux.HandleFunc("GET /tags/options", h.ListTagOptions)
	protectedMux.HandleFunc("POST /tags", h.CreateTag)
	protectedMux.HandleFunc("PATCH /tags/{id}", h.UpdateTag)
	protectedMux.HandleFunc("DELETE /tags/{id}", h.DeleteTag)

	mainMux.Handle("/api/v1/",
		http.StripPrefix(
			"/api/v1",
			middleware.AuthMiddleware(h.Tokens, protectedMux),
		),
	)

	slog.Info("Router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Logger(handler)
	handler = middleware.RealIP(h.Proxies, handler)
	return handler
}
