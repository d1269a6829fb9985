package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/mariage/internal/models"
	"github.com/terraincognita07/mariage/internal/services"
)

func (handler *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/healthz", handler.Health)
	app.Get("/lang/:lang", handler.SetLanguage)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", handler.AuthRequired, handler.Me)
	auth.Post("/password", handler.AuthRequired, handler.ChangePassword)

	protected := api.Group("", handler.AuthRequired)

	protected.Get("/subscription/status", handler.SubscriptionStatus)
	protected.Get("/dashboard/stats", handler.DashboardStats)

	protected.Get("/couple", handler.GetCouple)
	protected.Post("/couple", handler.FeatureGate(services.FeatureCoupleWrite), handler.CreateCouple)
	protected.Put("/couple", handler.FeatureGate(services.FeatureCoupleWrite), handler.UpdateCouple)
	protected.Patch("/couple", handler.FeatureGate(services.FeatureCoupleWrite), handler.UpdateCouple)

	admin := protected.Group("/admin", handler.RequireRole(models.RoleAdmin))
	admin.Get("/couples", handler.AdminListCouples)
	admin.Put("/couples/:id", handler.AdminUpdateCouple)
	admin.Patch("/couples/:id", handler.AdminUpdateCouple)
	admin.Delete("/couples/:id", handler.AdminDeleteCouple)
	admin.Get("/users", handler.AdminListUsers)
	admin.Put("/users/:id/subscription", handler.AdminUpdateSubscription)
	admin.Patch("/users/:id/subscription", handler.AdminUpdateSubscription)

	planner := protected.Group("/planner", handler.RequireRole(models.RolePlanner, models.RoleAdmin))
	planner.Get("/couples", handler.PlannerCouples)

	eventsWrite := handler.FeatureGate(services.FeatureEventsWrite)
	protected.Get("/events", handler.ListEvents)
	protected.Get("/events/:id", handler.GetEvent)
	protected.Post("/events", eventsWrite, handler.CreateEvent)
	protected.Put("/events/:id", eventsWrite, handler.UpdateEvent)
	protected.Patch("/events/:id", eventsWrite, handler.UpdateEvent)
	protected.Delete("/events/:id", eventsWrite, handler.DeleteEvent)

	attendeesWrite := handler.FeatureGate(services.FeatureAttendeesWrite)
	protected.Get("/attendees", handler.ListAttendees)
	protected.Get("/attendees/tree", handler.AttendeeTree)
	protected.Get("/attendees/export", handler.FeatureGate(services.FeatureAttendeesExport), handler.ExportAttendees)
	protected.Post("/attendees", attendeesWrite, handler.CreateAttendee)
	protected.Put("/attendees/:id", attendeesWrite, handler.UpdateAttendee)
	protected.Patch("/attendees/:id", attendeesWrite, handler.UpdateAttendee)
	protected.Delete("/attendees/:id", attendeesWrite, handler.DeleteAttendee)

	documentsWrite := handler.FeatureGate(services.FeatureDocumentsWrite)
	protected.Get("/documents", handler.ListDocuments)
	protected.Post("/documents", documentsWrite, handler.UploadDocument)
	protected.Put("/documents/:id", documentsWrite, handler.UpdateDocument)
	protected.Patch("/documents/:id", documentsWrite, handler.UpdateDocument)
	protected.Delete("/documents/:id", documentsWrite, handler.DeleteDocument)

	checklistWrite := handler.FeatureGate(services.FeatureChecklistWrite)
	protected.Get("/checklist", handler.ListChecklist)
	protected.Post("/checklist", checklistWrite, handler.CreateChecklistItem)
	protected.Put("/checklist/:id", checklistWrite, handler.UpdateChecklistItem)
	protected.Patch("/checklist/:id", checklistWrite, handler.UpdateChecklistItem)
	protected.Delete("/checklist/:id", checklistWrite, handler.DeleteChecklistItem)

	budgetWrite := handler.FeatureGate(services.FeatureBudgetWrite)
	protected.Get("/budget/items", handler.ListBudgetItems)
	protected.Post("/budget/items", budgetWrite, handler.CreateBudgetItem)
	protected.Put("/budget/items/:id", budgetWrite, handler.UpdateBudgetItem)
	protected.Patch("/budget/items/:id", budgetWrite, handler.UpdateBudgetItem)
	protected.Delete("/budget/items/:id", budgetWrite, handler.DeleteBudgetItem)
	protected.Get("/budget/total", handler.GetBudgetTotal)
	protected.Put("/budget/total", budgetWrite, handler.SetBudgetTotal)
	protected.Patch("/budget/total", budgetWrite, handler.SetBudgetTotal)
	protected.Get("/budget/summary", handler.BudgetSummary)
	protected.Get("/budget/export", handler.FeatureGate(services.FeatureBudgetExport), handler.ExportBudget)

	timelineWrite := handler.FeatureGate(services.FeatureTimelineWrite)
	protected.Get("/timeline", handler.ListTimelineTasks)
	protected.Post("/timeline", timelineWrite, handler.CreateTimelineTask)
	protected.Put("/timeline/:id", timelineWrite, handler.UpdateTimelineTask)
	protected.Patch("/timeline/:id", timelineWrite, handler.UpdateTimelineTask)
	protected.Delete("/timeline/:id", timelineWrite, handler.DeleteTimelineTask)

	trousseauWrite := handler.FeatureGate(services.FeatureTrousseauWrite)
	protected.Get("/trousseau", handler.ListTrousseauItems)
	protected.Post("/trousseau", trousseauWrite, handler.CreateTrousseauItem)
	protected.Put("/trousseau/:id", trousseauWrite, handler.UpdateTrousseauItem)
	protected.Patch("/trousseau/:id", trousseauWrite, handler.UpdateTrousseauItem)
	protected.Delete("/trousseau/:id", trousseauWrite, handler.DeleteTrousseauItem)

	weddingDaysWrite := handler.FeatureGate(services.FeatureWeddingDaysWrite)
	protected.Get("/wedding-days", handler.ListWeddingDays)
	protected.Post("/wedding-days", weddingDaysWrite, handler.CreateWeddingDay)
	protected.Put("/wedding-days/:id", weddingDaysWrite, handler.UpdateWeddingDay)
	protected.Patch("/wedding-days/:id", weddingDaysWrite, handler.UpdateWeddingDay)
	protected.Delete("/wedding-days/:id", weddingDaysWrite, handler.DeleteWeddingDay)

	app.Use(handler.NotFound)
}
