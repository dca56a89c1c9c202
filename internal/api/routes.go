package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	auth := app.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Get("/me", handler.AuthRequired, handler.CurrentUserInfo)

	api := app.Group("/api")

	templates := api.Group("/templates")
	templates.Get("/assets", handler.DownloadAssetsTemplate)
	templates.Get("/repairs", handler.DownloadRepairsTemplate)

	assets := api.Group("/assets", handler.AuthRequired)
	assets.Get("", handler.ListAssets)
	assets.Post("", handler.CreateAsset)
	assets.Get("/:id", handler.GetAsset)
	assets.Put("/:id", handler.UpdateAsset)
	assets.Delete("/:id", handler.DeleteAsset)

	repairs := api.Group("/repairs", handler.AuthRequired)
	repairs.Get("", handler.ListRepairs)
	repairs.Post("", handler.CreateRepair)
	repairs.Get("/:id", handler.GetRepair)
	repairs.Put("/:id", handler.UpdateRepair)
	repairs.Delete("/:id", handler.DeleteRepair)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/assets", handler.ExportAssets)
	export.Get("/repairs", handler.ExportRepairs)

	importGroup := api.Group("/import", handler.AuthRequired)
	importGroup.Post("/assets", handler.ImportAssets)
	importGroup.Post("/repairs", handler.ImportRepairs)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("", handler.GetProfile)
	profile.Put("", handler.UpdateProfile)
	profile.Post("/change-password", handler.ChangePassword)
	profile.Get("/settings", handler.GetSettings)
	profile.Put("/settings", handler.UpdateSettings)

	admin := api.Group("/admin", handler.AuthRequired, handler.AdminOnly)
	admin.Get("/users", handler.ListUsers)
}
