package middleware

import (
	"net"
	"net/http"

	"github.com/rohits-web03/filehub/internal/utils"
)

// RealIP rewrites r.RemoteAddr to the client address resolved through the trusted proxies.
func RealIP(proxies utils.TrustedProxies, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := proxies.ClientIP(r)
		if ip != utils.ClientIP(r) {
			r2 := r.Clone(r.Context())
			r2.RemoteAddr = net.JoinHostPort(ip, "0")
			r = r2
		}
		next.ServeHTTP(w, r)
	})
}
