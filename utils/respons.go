package utils

import (
	"github.com/gin-gonic/gin"
)

// RespondError writes the error as a {"msg": ...} body, which is the
// shape the admin SPA expects for every failure status.
func RespondError(c *gin.Context, code int, err error) {
	c.JSON(code, gin.H{"msg": err.Error()})
}

// RespondMessage writes a plain confirmation body for mutations that
// have no payload beyond an acknowledgement.
func RespondMessage(c *gin.Context, code int, msg string) {
	c.JSON(code, gin.H{"msg": msg})
}
