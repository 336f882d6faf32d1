package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/campushub/sis-backend/internal/app/controllers"
	"github.com/campushub/sis-backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	collegeController *controllers.CollegeController,
	programController *controllers.ProgramController,
	studentController *controllers.StudentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public Auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// --- Authenticated Routes Group ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)

		colleges := authenticated.Group("/colleges")
		{
			colleges.GET("", collegeController.ListColleges)
			colleges.GET("/total-count", collegeController.GetTotalCount)
			colleges.GET("/identifiers", collegeController.GetIdentifiers)
			colleges.GET("/:code", collegeController.GetCollege)
			colleges.POST("", collegeController.CreateCollege)
			colleges.PUT("/:code", collegeController.UpdateCollege)
			colleges.DELETE("/:code", collegeController.DeleteCollege)
		}

		programs := authenticated.Group("/programs")
		{
			programs.GET("", programController.ListPrograms)
			programs.GET("/total-count", programController.GetTotalCount)
			programs.GET("/identifiers", programController.GetIdentifiers)
			programs.GET("/:code", programController.GetProgram)
			programs.POST("", programController.CreateProgram)
			programs.PUT("/:code", programController.UpdateProgram)
			programs.DELETE("/:code", programController.DeleteProgram)
		}

		students := authenticated.Group("/students")
		{
			students.GET("", studentController.ListStudents)
			students.GET("/total-count", studentController.GetTotalCount)
			students.GET("/year-level-demographics", studentController.GetYearLevelDemographics)
			students.GET("/gender-demographics", studentController.GetGenderDemographics)
			students.GET("/:idNumber", studentController.GetStudent)
			students.POST("", studentController.CreateStudent)
			students.PUT("/:idNumber", studentController.UpdateStudent)
			students.DELETE("/:idNumber", studentController.DeleteStudent)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
}
