package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/preston-bernstein/phl-league-service/internal/http/requestutil"
)

const corsMaxAgeSeconds = 86400

// CORS lets browser front ends call the API, including admin requests that
// carry X-Admin-Password. An empty origin list allows any origin.
func CORS(allowedOrigins []string, next http.Handler) http.Handler {
	origins := allowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Content-Type", "X-Admin-Password", requestutil.HeaderRequestID},
		ExposedHeaders: []string{requestutil.HeaderRequestID},
		MaxAge:         corsMaxAgeSeconds,
	})
	return c.Handler(next)
}
