package routes

import (
	adminapi "codedrop-app/internal/api/admin"
	downloadapi "codedrop-app/internal/api/download"
	imagesapi "codedrop-app/internal/api/images"
	redeemapi "codedrop-app/internal/api/redeem"
	"codedrop-app/internal/app/http/middleware"
	"codedrop-app/internal/domain/activity"
	"codedrop-app/internal/domain/events"
	"codedrop-app/internal/domain/redemption"
	"codedrop-app/internal/storage"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps holds everything the handlers are wired with. The event dispatcher
// and activity logger are injected here rather than living in a
// process-wide registry.
type Deps struct {
	DB            *gorm.DB
	Store         storage.Store
	Events        *events.Dispatcher
	Activity      *activity.Logger
	SessionSecret string
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	r.Use(sessions.Sessions("codedrop_session", cookie.NewStore([]byte(deps.SessionSecret))))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	redeemHandler := &redeemapi.Handler{
		DB:       deps.DB,
		Redeemer: &redemption.Redeemer{DB: deps.DB, Events: deps.Events},
		Activity: deps.Activity,
	}
	downloadHandler := &downloadapi.Handler{
		DB:       deps.DB,
		Store:    deps.Store,
		Events:   deps.Events,
		Activity: deps.Activity,
	}
	imagesHandler := &imagesapi.Handler{DB: deps.DB, Store: deps.Store}

	// Public surface
	r.POST("/redeem", redeemHandler.ManualEntry)
	r.GET("/redeem/:code", redeemHandler.Lookup)
	r.POST("/redeem/:code", redeemHandler.Confirm)
	r.GET("/download/:file_id", downloadHandler.Download)
	r.GET("/images/:id/thumbnail", imagesHandler.Thumbnail)

	// Operator surface
	adminapi.Blobs = deps.Store

	admin := r.Group("/admin")
	admin.Use(middleware.RequireAdminKey(), middleware.SanitizeInputMiddleware())

	admin.GET("/artists", adminapi.ListArtists)
	admin.POST("/artists", adminapi.CreateArtist)
	admin.GET("/artists/:id", adminapi.GetArtist)
	admin.PUT("/artists/:id", adminapi.UpdateArtist)
	admin.DELETE("/artists/:id", adminapi.DeleteArtist)

	admin.GET("/works", adminapi.ListWorks)
	admin.POST("/works", adminapi.CreateWork)
	admin.GET("/works/:id", adminapi.GetWork)
	admin.PUT("/works/:id", adminapi.UpdateWork)
	admin.DELETE("/works/:id", adminapi.DeleteWork)
	admin.POST("/works/:id/publish", adminapi.PublishWork)
	admin.POST("/works/:id/unpublish", adminapi.UnpublishWork)
	admin.POST("/works/:id/image", adminapi.UploadWorkImage)
	admin.GET("/works/:id/files", adminapi.ListWorkFiles)
	admin.POST("/works/:id/files", adminapi.UploadFile)
	admin.DELETE("/files/:id", adminapi.DeleteFile)

	admin.GET("/batches", adminapi.ListBatches)
	admin.POST("/batches", adminapi.CreateBatch)
	admin.GET("/batches/:id", adminapi.GetBatch)
	admin.PUT("/batches/:id", adminapi.UpdateBatch)
	admin.DELETE("/batches/:id", adminapi.DeleteBatch)

	admin.GET("/codes", adminapi.ListCodes)
	admin.POST("/codes", adminapi.CreateCode)
	admin.PUT("/codes/:id", adminapi.UpdateCode)
	admin.DELETE("/codes/:id", adminapi.DeleteCode)
	admin.GET("/codes/export", adminapi.ExportCodesCSV)
}
