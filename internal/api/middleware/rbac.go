package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/coursehub/catalog-api/internal/api/metrics"
)

// RBAC enforces role-based access control on a single action. Membership in
// allowedRoles is exact: no hierarchy, no inheritance between roles. Every
// decision, allow and deny, emits an audit entry {action, actor, outcome}.
func RBAC(log zerolog.Logger, action string, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, _ := c.Get("username").(string)
			role, _ := c.Get("role").(string)

			if _, ok := allowed[role]; !ok {
				log.Warn().
					Str("action", action).
					Str("actor", actor).
					Str("role", role).
					Str("outcome", "deny").
					Msg("authorization decision")
				metrics.AuthzDecisionsTotal.WithLabelValues(action, "deny").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}

			log.Info().
				Str("action", action).
				Str("actor", actor).
				Str("role", role).
				Str("outcome", "allow").
				Msg("authorization decision")
			metrics.AuthzDecisionsTotal.WithLabelValues(action, "allow").Inc()

			return next(c)
		}
	}
}
