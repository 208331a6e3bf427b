package handlers

import (
	"github.com/gin-gonic/gin"

	"go-ignis/cronjobs"
)

// TriggerCycleHandler runs a fire cycle on demand, going through the same
// guard as the scheduled runs so it cannot overlap one already in flight.
func TriggerCycleHandler(c *gin.Context, runner *cronjobs.Runner) {
	if ran := runner.TryRun(c.Request.Context()); !ran {
		c.JSON(409, gin.H{"status": "skipped", "reason": "cycle already running"})
		return
	}

	c.JSON(200, gin.H{"status": "completed"})
}
