package problems

import (
	"github.com/gin-gonic/gin"
)

type Problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

func WriteProblem(c *gin.Context, p Problem) {
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.AbortWithStatusJSON(p.Status, p)
}
