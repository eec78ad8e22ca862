package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func HandleHealthcheck(c *gin.Context) {
	c.String(http.StatusOK, "OK")
}
