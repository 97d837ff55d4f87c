package handlers

import "github.com/gin-gonic/gin"

// Every endpoint answers with the same envelope: {success, data} on
// the happy path, {success, message} otherwise.

func respondData(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func respondMessage(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": true, "message": message})
}

func respondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "message": message})
}
