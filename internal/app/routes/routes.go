package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/mertkaradayi/gradecore/internal/app/controllers"
	"github.com/mertkaradayi/gradecore/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	gradeController *controllers.GradeController,
	finalGradeController *controllers.FinalGradeController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// Health check endpoint (public)
	v1.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// All grade routes require a valid collaborator-issued token
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		grades := authenticated.Group("/grades")
		{
			grades.POST("/import/:groupId", gradeController.ImportGrades)
			grades.POST("/import/:groupId/csv", gradeController.ImportGradesCSV)
			grades.POST("/sync", gradeController.SyncGrades)
		}

		finalGrades := authenticated.Group("/final-grades")
		{
			finalGrades.POST("/sync", finalGradeController.SyncFinalGrade)
			finalGrades.GET("/:studentId/:courseId", finalGradeController.GetFinalGrades)
			finalGrades.DELETE("/:studentId/:courseId/extraordinary", finalGradeController.DeleteExtraordinaryGrade)
		}
	}
}
