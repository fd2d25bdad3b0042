package handlers

import (
	"finguard/internal/middleware"
	"finguard/internal/models"
	"finguard/internal/repositories"
	"finguard/internal/services/auth"
	"finguard/internal/services/compliance"
	"finguard/internal/services/dashboard"
	"finguard/internal/services/fraud"
	"finguard/internal/services/report"
	"finguard/internal/services/risk"
	"finguard/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// Deps carries the constructed services the routes dispatch to.
type Deps struct {
	Auth        auth.Service
	Compliance  compliance.Service
	Risk        risk.Service
	Fraud       fraud.Service
	Dashboard   dashboard.Service
	Report      report.Service
	Assessments repositories.AssessmentRepository
}

// SetupRoutes configures all application routes. Public routes cover
// health and authentication; everything else sits behind the JWT
// middleware with per-surface permission checks.
func SetupRoutes(app *fiber.App, deps Deps) {
	authHandler := NewAuthHandler(deps.Auth)
	complianceHandler := NewComplianceHandler(deps.Compliance, deps.Assessments)
	riskHandler := NewRiskHandler(deps.Risk, deps.Assessments)
	fraudHandler := NewFraudHandler(deps.Fraud, deps.Assessments)
	dashboardHandler := NewDashboardHandler(deps.Dashboard)
	reportHandler := NewReportHandler(deps.Report)
	assessmentHandler := NewAssessmentHandler(deps.Assessments)

	// Public routes
	api := app.Group("/api")
	api.Get("/health", HealthCheck)
	api.Get("/ping", Ping)
	api.Post("/register", authHandler.Register)
	api.Post("/login", authHandler.Login)
	api.Post("/refresh", authHandler.Refresh)

	// Authenticated routes
	authenticated := app.Group("/api", middleware.AuthMiddleware(utils.ParseToken))

	authenticated.Post("/analyze-compliance",
		middleware.HasPermission(models.PermissionComplianceAnalyze), complianceHandler.AnalyzeCompliance)

	authenticated.Post("/analyze-loan-risk",
		middleware.HasPermission(models.PermissionRiskScore), riskHandler.AnalyzeLoanRisk)
	authenticated.Post("/score-loan-risk-flan",
		middleware.HasPermission(models.PermissionRiskScore), riskHandler.ScoreLoanRiskHeuristic)
	authenticated.Post("/score-loan-risk-ml",
		middleware.HasPermission(models.PermissionRiskScore), riskHandler.ScoreLoanRiskML)
	authenticated.Post("/score-loan-risk-hf",
		middleware.HasPermission(models.PermissionRiskScore), riskHandler.ScoreLoanRiskHF)

	authenticated.Post("/detect-fraud",
		middleware.HasPermission(models.PermissionFraudDetect), fraudHandler.DetectFraud)
	authenticated.Post("/detect-fraud-advanced",
		middleware.HasPermission(models.PermissionFraudDetect), fraudHandler.DetectFraudAdvanced)
	authenticated.Post("/detect-fraud-finchain",
		middleware.HasPermission(models.PermissionFraudDetect), fraudHandler.DetectFraudFinchain)

	authenticated.Get("/dashboard-summary",
		middleware.HasPermission(models.PermissionDashboardRead), dashboardHandler.GetSummary)

	authenticated.Post("/generate-report",
		middleware.HasPermission(models.PermissionReportGenerate), reportHandler.GenerateReport)
	authenticated.Post("/rbi-api",
		middleware.HasPermission(models.PermissionReportGenerate), reportHandler.SubmitRBI)

	authenticated.Get("/assessments", assessmentHandler.ListMine)

	// Admin routes
	admin := authenticated.Group("/admin", middleware.AdminAuthMiddleware)
	admin.Get("/assessments", middleware.HasPermission(models.PermissionReadAdmin), assessmentHandler.ListAll)
}
