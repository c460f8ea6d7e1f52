package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"garagehub-backend/config"
	"garagehub-backend/controllers"
	"garagehub-backend/services"
	"garagehub-backend/store"
)

func SetupRouter(s *store.Store, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	submitter := services.NewSubmitter(cfg.SubmitLatency)

	clients := controllers.ClientController{Store: s, Submit: submitter}
	vehicules := controllers.VehiculeController{Store: s, Submit: submitter}
	prestations := controllers.PrestationController{Store: s, Submit: submitter}
	devis := controllers.DevisController{Store: s, Submit: submitter}
	odr := controllers.ODRController{Store: s, Submit: submitter}
	factures := controllers.FactureController{Store: s, Submit: submitter}
	mailbox := controllers.MailboxController{Store: s, Submit: submitter}
	dashboard := controllers.DashboardController{Store: s}
	parametres := controllers.ParametresController{Store: s}

	api := r.Group("/api")
	{
		c := api.Group("/clients")
		{
			c.GET("", clients.List)
			c.POST("", clients.Create)
			c.GET("/:id", clients.Get)
		}

		v := api.Group("/vehicules")
		{
			v.GET("", vehicules.List)
			v.POST("", vehicules.Create)
			v.GET("/:id", vehicules.Get)
		}

		p := api.Group("/prestations")
		{
			p.GET("", prestations.List)
			p.POST("", prestations.Create)
		}

		f := api.Group("/forfaits")
		{
			f.GET("", prestations.ListForfaits)
			f.POST("", prestations.CreateForfait)
		}

		d := api.Group("/devis")
		{
			d.GET("", devis.List)
			d.POST("", devis.Create)
		}

		o := api.Group("/odr")
		{
			o.GET("", odr.List)
			o.POST("", odr.Create)
			o.GET("/:id", odr.Get)
		}

		fa := api.Group("/factures")
		{
			fa.GET("", factures.List)
			fa.POST("", factures.Create)
			fa.GET("/:id", factures.Get)
		}

		m := api.Group("/mail")
		{
			m.GET("", mailbox.List)
			m.POST("", mailbox.Compose)
		}

		api.GET("/dashboard", dashboard.Overview)

		api.GET("/parametres", parametres.Get)
		api.PUT("/parametres", parametres.Update)
	}

	return r
}
