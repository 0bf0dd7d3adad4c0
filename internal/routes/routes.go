package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"opsboard/internal/handlers"
)

func SetupRoutes(
	r *gin.Engine,
	boardHandler *handlers.BoardHandler,
	categoryHandler *handlers.CategoryHandler,
	personHandler *handlers.PersonHandler,
	taskHandler *handlers.TaskHandler,
	noteHandler *handlers.NoteHandler,
	snapshotHandler *handlers.SnapshotHandler,
	reportHandler *handlers.ReportHandler,
) *gin.Engine {

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		api.GET("/init", boardHandler.Init)

		// CATEGORIES
		api.POST("/categories", categoryHandler.Create)
		api.PUT("/categories/:id", categoryHandler.Update)
		api.DELETE("/categories/:id", categoryHandler.Delete)

		// PEOPLE
		api.GET("/people", personHandler.GetAll)
		api.POST("/people", personHandler.Create)
		api.PUT("/people/:id", personHandler.Update)
		api.DELETE("/people/:id", personHandler.Delete)

		// TASKS
		api.POST("/tasks", taskHandler.Create)
		api.PUT("/tasks/:id", taskHandler.Update)
		api.DELETE("/tasks/:id", taskHandler.Delete)

		// NOTES
		api.GET("/notes", noteHandler.List)
		api.POST("/notes", noteHandler.Upsert)

		// BACKUP / RESTORE
		api.GET("/backup", snapshotHandler.Backup)
		api.POST("/restore", snapshotHandler.Restore)

		// REPORTS
		api.GET("/export-pdf", reportHandler.ExportPDF)
	}

	return r
}
