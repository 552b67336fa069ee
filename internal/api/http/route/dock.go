package route

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const swaggerIndex = "/swagger/index.html"

// RegisterDock serves the swagger UI under the group and redirects the bare group path to it.
func RegisterDock(g *gin.RouterGroup) {
	index := strings.TrimSuffix(g.BasePath(), "/") + swaggerIndex

	g.GET("", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, index)
	})
	g.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.DocExpansion("list")))
}
