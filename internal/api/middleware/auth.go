package middleware

import (
	"net/http"
	"strings"

	"github.com/rohits-web03/filehub/internal/auth"
	"github.com/rohits-web03/filehub/internal/utils"
)

const TokenCookie = "token"

// AuthMiddleware rejects requests without a valid session token and stores the
// caller's user id in the request context.
func AuthMiddleware(issuer *auth.TokenIssuer, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		tokenStr := tokenFromRequest(r)
		if tokenStr == "" {
			unauthorized(w)
			return
		}

		claims, err := issuer.Parse(tokenStr)
		if err != nil {
			unauthorized(w)
			return
		}

		ctx := auth.WithUserID(r.Context(), claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(TokenCookie); err == nil && c.Value != "" {
		return c.Value
	}
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

func unauthorized(w http.ResponseWriter) {
	utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
		Success: false,
		Message: "Unauthorized",
	})
}
