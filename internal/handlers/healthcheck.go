package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Media Vault API is running!"})
}
