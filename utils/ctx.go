package utils

import "github.com/gin-gonic/gin"

// CurrentUserID returns the authenticated staff user's id, or 0 when the
// request carries no valid token.
func CurrentUserID(c *gin.Context) uint {
	v, ok := c.Get("userId")
	if !ok {
		return 0
	}
	id, _ := v.(uint)
	return id
}

// CurrentRole returns the authenticated user's role, "staff" or "admin".
func CurrentRole(c *gin.Context) string {
	v, ok := c.Get("role")
	if !ok {
		return ""
	}
	role, _ := v.(string)
	return role
}
