package handlers

import (
	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-ignis/db"
)

// GetFiresHandler returns the currently persisted fire set.
func GetFiresHandler(c *gin.Context, client *firestore.Client) {
	fires, err := db.GetFires(c.Request.Context(), client)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"count": len(fires),
		"fires": fires,
	})
}

// GetInterestPointsHandler returns every registered interest point.
func GetInterestPointsHandler(c *gin.Context, client *firestore.Client) {
	points, err := db.GetInterestPoints(c.Request.Context(), client)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	c.JSON(200, gin.H{
		"count":          len(points),
		"interestPoints": points,
	})
}
