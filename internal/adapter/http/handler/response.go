package handler

import "github.com/gin-gonic/gin"

// The wire contract is deliberately flat: success responses carry the
// payload directly and failures carry {"error": message}, which is what
// clients render.

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}
