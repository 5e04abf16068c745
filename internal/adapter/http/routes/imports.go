package routes

import (
	"import_admin/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCars        = "/cars"
	PathClients     = "/clients"
	PathImports     = "/imports"
	PathImportForms = "/import-forms"
	PathPublic      = "/public"
)

func addCatalogRoutes(rg *gin.RouterGroup, cars *handlers.CarHandler, clients *handlers.ClientHandler) {
	c := rg.Group(PathCars)
	{
		c.GET("", cars.ListCars)
		c.POST("", cars.CreateCar)
		c.GET("/:id", cars.GetCar)
		c.PUT("/:id", cars.UpdateCar)
		c.DELETE("/:id", cars.DeleteCar)
		c.GET("/:id/imports", cars.ListCarImports)
	}

	cl := rg.Group(PathClients)
	{
		cl.GET("", clients.ListClients)
		cl.POST("", clients.CreateClient)
		cl.GET("/:id", clients.GetClient)
		cl.PUT("/:id", clients.UpdateClient)
		cl.DELETE("/:id", clients.DeleteClient)
		cl.GET("/:id/imports", clients.ListClientImports)
	}
}

func addImportRoutes(rg *gin.RouterGroup, imports *handlers.ImportHandler, shares *handlers.ShareHandler, images *handlers.ImageHandler) {
	i := rg.Group(PathImports)
	{
		i.GET("", imports.ListImports)
		i.GET("/statuses", imports.ListStatuses)
		i.GET("/:id", imports.GetImport)
		i.DELETE("/:id", imports.DeleteImport)
		i.GET("/:id/tracking", imports.GetImportTracking)
		i.GET("/:id/cost-sheet", imports.ExportCostSheet)

		i.POST("/:id/shares", shares.CreateShare)
		i.GET("/:id/shares", shares.ListShares)
		i.DELETE("/:id/shares/:token", shares.RevokeShare)

		i.POST("/:id/images", images.UploadImage)
		i.DELETE("/:id/images/:filename", images.DeleteImage)
	}
}

// Creating and editing imports both go through a server-side form.
func addImportFormRoutes(rg *gin.RouterGroup, forms *handlers.ImportFormHandler) {
	f := rg.Group(PathImportForms)
	{
		f.POST("", forms.OpenImportForm)
		f.GET("/:id", forms.GetImportForm)
		f.PATCH("/:id", forms.UpdateImportForm)
		f.DELETE("/:id", forms.DiscardImportForm)
		f.POST("/:id/entries", forms.AddCostEntry)
		f.PATCH("/:id/entries/:entry_id", forms.SetCostEntryField)
		f.DELETE("/:id/entries/:entry_id", forms.RemoveCostEntry)
		f.POST("/:id/submit", forms.SubmitImportForm)
	}
}

func addPublicRoutes(rg *gin.RouterGroup, shares *handlers.ShareHandler) {
	p := rg.Group(PathPublic)
	{
		p.GET("/shares/:token", shares.GetSharedImport)
	}
}
