package route

import (
	"github.com/gin-gonic/gin"
)

type FrameHandler interface {
	UploadFrames(c *gin.Context)
	ListFrames(c *gin.Context)
	DeleteFrames(c *gin.Context)
}

func RegisterFrameRoutes(g *gin.RouterGroup, h FrameHandler) {
	g.PUT("/", h.UploadFrames)
	g.GET("/:requestCode", h.ListFrames)
	g.DELETE("/:requestCode", h.DeleteFrames)
}
