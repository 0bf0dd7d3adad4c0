package app

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"

	"opsboard/internal/config"
	"opsboard/internal/handlers"
	"opsboard/internal/pdf"
	"opsboard/internal/repositories"
	"opsboard/internal/routes"
	"opsboard/internal/services"
	"opsboard/internal/storage"

	_ "opsboard/docs"
)

func Run() {
	cfg := config.LoadConfig()

	// === DB ===
	db, err := storage.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	// === Repos ===
	categoryRepo := repositories.NewCategoryRepository(db)
	personRepo := repositories.NewPersonRepository(db)
	taskRepo := repositories.NewTaskRepository(db)
	noteRepo := repositories.NewNoteRepository(db)
	snapshotRepo := repositories.NewSnapshotRepository(db, cfg.Database.Driver)

	// === Services ===
	categoryService := services.NewCategoryService(categoryRepo)
	personService := services.NewPersonService(personRepo)
	taskService := services.NewTaskService(taskRepo)
	noteService := services.NewNoteService(noteRepo)
	boardService := services.NewBoardService(categoryRepo, taskRepo, personRepo)
	snapshotService := services.NewSnapshotService(snapshotRepo)
	reportService := services.NewReportService(categoryRepo, taskRepo, personRepo, noteRepo)

	// PDF renderer for the weekly export
	reportRenderer := pdf.NewReportRenderer()

	// === Handlers ===
	boardHandler := handlers.NewBoardHandler(boardService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	personHandler := handlers.NewPersonHandler(personService)
	taskHandler := handlers.NewTaskHandler(taskService)
	noteHandler := handlers.NewNoteHandler(noteService)
	snapshotHandler := handlers.NewSnapshotHandler(snapshotService)
	reportHandler := handlers.NewReportHandler(reportService, reportRenderer)

	// === Gin ===
	router := gin.Default()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	routes.SetupRoutes(
		router,
		boardHandler,
		categoryHandler,
		personHandler,
		taskHandler,
		noteHandler,
		snapshotHandler,
		reportHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
