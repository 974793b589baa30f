package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"IrisCare/models"
	"IrisCare/services"
)

const anonymousHome = "/"

// roleHomes maps each user type to the landing page it belongs on. A user who
// hits an area outside their role is sent back to their own dashboard rather
// than shown an error page.
var roleHomes = map[string]string{
	models.UserTypePatient:      "/patient/dashboard",
	models.UserTypeProfessional: "/professional/dashboard",
	models.UserTypeAdmin:        "/admin/dashboard",
}

// RequireRole guards a route group so only users of the given type pass
// through. Expired or missing sessions redirect to the public entry page;
// valid sessions of another type redirect to that type's dashboard.
func RequireRole(auth *services.AuthService, userType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := auth.CurrentUser(c)
		if user == nil {
			c.Redirect(http.StatusFound, anonymousHome)
			c.Abort()
			return
		}
		if user.Type != userType {
			home, ok := roleHomes[user.Type]
			if !ok {
				home = anonymousHome
			}
			c.Redirect(http.StatusFound, home)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSession admits any authenticated user regardless of type.
func RequireSession(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.CurrentUser(c) == nil {
			c.Redirect(http.StatusFound, anonymousHome)
			c.Abort()
			return
		}
		c.Next()
	}
}
