// cmd/web/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/unclebandit/leadreach-webclient/internal/api"
	"github.com/unclebandit/leadreach-webclient/internal/controller"
	"github.com/unclebandit/leadreach-webclient/internal/db"
	"github.com/unclebandit/leadreach-webclient/internal/flash"
	"github.com/unclebandit/leadreach-webclient/internal/handler"
	"github.com/unclebandit/leadreach-webclient/internal/repository"
	"github.com/unclebandit/leadreach-webclient/internal/service"
	"github.com/unclebandit/leadreach-webclient/internal/web"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	backendURL := os.Getenv("BACKEND_URL")
	if backendURL == "" {
		log.Fatal("BACKEND_URL must be set")
	}
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	// Init session DB
	db.Init()

	apiClient := api.New(backendURL)
	authAPI := &api.AuthAPI{Client: apiClient}
	campaignAPI := &api.CampaignAPI{Client: apiClient}
	businessAPI := &api.BusinessAPI{Client: apiClient}

	sessionRepo := &repository.SessionRepository{DB: db.DB}

	authService := &service.AuthService{
		Auth:     authAPI,
		Sessions: sessionRepo,
	}
	workflowService := service.NewWorkflowService(campaignAPI, businessAPI)

	flashStore := flash.NewStore()
	views := web.NewTemplates()

	authMiddleware := &controller.AuthMiddleware{Auth: authService}
	authController := &controller.AuthController{Auth: authService, Flash: flashStore, Views: views}
	dashboardController := &controller.DashboardController{Campaigns: campaignAPI, Flash: flashStore, Views: views}
	campaignController := &controller.CampaignController{
		Campaigns:  campaignAPI,
		Businesses: businessAPI,
		Workflow:   workflowService,
		Flash:      flashStore,
		Views:      views,
	}
	wizardController := &controller.WizardController{Campaigns: campaignAPI, Flash: flashStore, Views: views}
	settingsController := &controller.SettingsController{Auth: authAPI, Flash: flashStore, Views: views}

	countsHandler := &handler.CountsHandler{Businesses: businessAPI}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Public routes
	r.Get("/login", authController.LoginPage)
	r.Post("/login", authController.LoginSubmit)
	r.Get("/register", authController.RegisterPage)
	r.Post("/register", authController.RegisterSubmit)
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/dashboard", http.StatusSeeOther)
	})

	// Protected routes
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)

		r.Post("/logout", authController.Logout)
		r.Get("/dashboard", dashboardController.Dashboard)

		r.Get("/campaigns", campaignController.List)
		r.Get("/campaigns/new", wizardController.NewPage)
		r.Post("/campaigns/new", wizardController.Step)
		r.Get("/campaigns/{id}", campaignController.Detail)
		r.Post("/campaigns/{id}/delete", campaignController.Delete)
		r.Get("/campaigns/{id}/send", campaignController.SendConfirm)
		r.Post("/campaigns/{id}/actions/{action}", campaignController.RunAction)
		r.Post("/campaigns/{id}/businesses", campaignController.AddBusiness)
		r.Get("/campaigns/{id}/counts.json", countsHandler.GetCampaignCounts)

		r.Post("/businesses/{id}/approve", campaignController.ApproveBusiness)
		r.Post("/businesses/{id}/delete", campaignController.DeleteBusiness)

		r.Get("/settings", settingsController.Page)
		r.Post("/settings", settingsController.Submit)
	})

	log.Println("🚀 Web client running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
