package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"atende/internal/domain/admin"
	"atende/internal/shared/logger"
	"atende/internal/shared/utils"
)

// AdminMiddleware gates the /admin surface. The admin row is re-read on
// every request; the advisory flags cache feeds /admin/check only and is
// never trusted for authorization.
type AdminMiddleware struct {
	adminRepo admin.Repository
	logger    logger.Interface
}

func NewAdminMiddleware(adminRepo admin.Repository, logger logger.Interface) *AdminMiddleware {
	return &AdminMiddleware{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

// RequireAdmin must run after RequireAuth.
func (m *AdminMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := CurrentUserID(c)
		if userID == 0 {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		a, err := m.adminRepo.FindByUserID(c.Request.Context(), userID)
		if err != nil && !errors.Is(err, admin.ErrNotFound) {
			// A storage failure is not an authoritative "not admin".
			m.logger.Errorw("admin lookup failed", "user_id", userID, "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
			c.Abort()
			return
		}
		if err != nil || a == nil {
			utils.ErrorResponse(c, http.StatusForbidden, "admin privileges required")
			c.Abort()
			return
		}

		c.Set(ContextKeyIsAdmin, true)
		c.Set(ContextKeyIsOwner, a.IsOwner())

		c.Next()
	}
}

// AnnotateAdmin marks admin callers without gating the route. Ticket reads
// are shared between owners and admins, so the handler needs the flag but
// non-admins must still get through.
func (m *AdminMiddleware) AnnotateAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := CurrentUserID(c)
		if userID != 0 {
			a, err := m.adminRepo.FindByUserID(c.Request.Context(), userID)
			switch {
			case err == nil && a != nil:
				c.Set(ContextKeyIsAdmin, true)
				c.Set(ContextKeyIsOwner, a.IsOwner())
			case err != nil && !errors.Is(err, admin.ErrNotFound):
				// Annotation is advisory; the request proceeds without
				// the flag and ownership checks still apply downstream.
				m.logger.Warnw("admin annotation lookup failed", "user_id", userID, "error", err)
			}
		}
		c.Next()
	}
}

// IsAdminRequest reports whether the admin gate already vetted this request.
func IsAdminRequest(c *gin.Context) bool {
	return c.GetBool(ContextKeyIsAdmin)
}
