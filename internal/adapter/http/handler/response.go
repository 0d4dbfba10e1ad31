package handler

import (
	"github.com/gin-gonic/gin"
)

// ErrorBody is the JSON body of every error response
type ErrorBody struct {
	Detail string `json:"detail"`
}

func respondJSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

func respondError(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, ErrorBody{Detail: detail})
}
