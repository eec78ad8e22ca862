package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RenderErr renders the generic error page. The message is fixed per
// operation; the underlying cause only ever reaches the server log.
func RenderErr(c *gin.Context, status int, message string, err error) {
	if err != nil {
		zap.L().Error(message, zap.Error(err))
	}

	c.HTML(status, "error.html", gin.H{
		"Message": message,
	})
}

// Redirect is the post-mutation redirect used by every form handler.
func Redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusSeeOther, location)
}
