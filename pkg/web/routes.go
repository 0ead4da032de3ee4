// Package web provides API routes for the web server.
package web

import (
	"net/http"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server) {
	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)

		api.GET("/stats", statsHandler)
		api.GET("/stats/moderator/:id", moderatorStatsHandler)
		api.GET("/config/commands", commandSettingsHandler)
		api.GET("/appeals/pending", pendingAppealsHandler)
		api.GET("/cases/:caseId", caseHandler)
		api.GET("/users/:id/cases", userCasesHandler)
	}
}

// statusHandler returns the bot and database status
func statusHandler(c *gin.Context) {
	db := database.Get()
	client := discord.Get()

	dbStatus, dbOnline := db.GetStatus()

	botOnline := false
	if client != nil {
		botOnline = client.IsReady()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"database": gin.H{
			"status":   dbStatus,
			"isOnline": dbOnline,
		},
		"bot": gin.H{
			"isOnline": botOnline,
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "PancyGuard Go is running",
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "El bot no está disponible en este momento.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"discriminator": user.Discriminator,
		"avatar":        user.Avatar,
		"guilds":        client.GuildCount(),
		"isReady":       client.IsReady(),
	})
}

// statsHandler returns the aggregated moderation statistics
func statsHandler(c *gin.Context) {
	stats, err := database.GetStatistics()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// moderatorStatsHandler returns the statistics of a single moderator
func moderatorStatsHandler(c *gin.Context) {
	stats, err := database.GetModeratorStatistics(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// commandSettingsHandler returns every persisted command policy
func commandSettingsHandler(c *gin.Context) {
	settings, err := database.GetAllCommandSettings()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"commands": settings})
}

// pendingAppealsHandler returns the appeal review queue
func pendingAppealsHandler(c *gin.Context) {
	appeals, err := database.GetAllPendingAppeals()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"appeals": appeals, "count": len(appeals)})
}

// caseHandler returns a single moderation case by its case id
func caseHandler(c *gin.Context) {
	record, err := database.GetCase(c.Param("caseId"))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	if record == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": "El caso solicitado no existe.",
		})
		return
	}
	c.JSON(http.StatusOK, record)
}

// userCasesHandler returns every case recorded against a user
func userCasesHandler(c *gin.Context) {
	cases, err := database.GetUserCases(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cases": cases, "count": len(cases)})
}
