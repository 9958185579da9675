package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ShashankRaghuram1509/learnify-spotify/database/model"
	"github.com/ShashankRaghuram1509/learnify-spotify/logger"
	"github.com/ShashankRaghuram1509/learnify-spotify/web/middleware"
	"github.com/ShashankRaghuram1509/learnify-spotify/web/service"
)

// ServerController exposes operational endpoints for admins: the system
// status snapshot and the in-memory log ring buffer.
type ServerController struct {
	serverService service.ServerService
}

func NewServerController(g *gin.RouterGroup) *ServerController {
	a := &ServerController{}
	a.initRouter(g)
	return a
}

func (a *ServerController) initRouter(g *gin.RouterGroup) {
	g = g.Group("/server", middleware.AuthRequired(), middleware.RequireRole(model.RoleAdmin))

	g.GET("/status", a.status)
	g.GET("/logs/:count", a.getLogs)
}

func (a *ServerController) status(c *gin.Context) {
	c.JSON(http.StatusOK, a.serverService.GetStatus())
}

func (a *ServerController) getLogs(c *gin.Context) {
	count, err := strconv.Atoi(c.Param("count"))
	if err != nil || count < 1 {
		count = 50
	}
	level := c.DefaultQuery("level", "info")
	c.JSON(http.StatusOK, logger.GetLogs(count, level))
}
