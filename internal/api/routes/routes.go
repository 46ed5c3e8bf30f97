package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/psiconervio/agente-ia/internal/api/handlers"
	"github.com/psiconervio/agente-ia/internal/api/middleware"
)

type Deps struct {
	Ask          *handlers.AskHandler
	Audio        *handlers.AudioHandler
	Interactions *handlers.InteractionHandler
	Logger       *logrus.Logger
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.Use(cors.Default())
	r.Use(middleware.RequestLogger(d.Logger))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/ask", d.Ask.Ask)
	r.POST("/audio", d.Audio.Transcribe)
	r.GET("/interactions/:user_id", d.Interactions.ListByUser)

	// Administrative routes (JWT, admin role)
	admin := r.Group("/")
	admin.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	admin.DELETE("/interactions", d.Interactions.Wipe)
}
