package routes

import (
	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-ignis/cronjobs"
	"go-ignis/handlers"
)

func SetupRouter(firestoreClient *firestore.Client, runner *cronjobs.Runner) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "Hello, welcome to Ignis!",
		})
	})

	// api routes
	api := r.Group("/api/ignis")
	{
		api.GET("/fires", func(c *gin.Context) {
			handlers.GetFiresHandler(c, firestoreClient)
		})
		api.GET("/interestpoints", func(c *gin.Context) {
			handlers.GetInterestPointsHandler(c, firestoreClient)
		})
		api.POST("/run", func(c *gin.Context) {
			handlers.TriggerCycleHandler(c, runner)
		})
	}

	return r
}
