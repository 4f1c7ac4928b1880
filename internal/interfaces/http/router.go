package http

import (
	"github.com/gofiber/fiber/v2"

	appkardex "github.com/tu-usuario/kardex-core/internal/application/kardex"
	"github.com/tu-usuario/kardex-core/internal/application/reports"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	KardexUC    *appkardex.UseCase
	ReportsUC   *reports.UseCase
	DashboardUC *reports.DashboardUseCase
	CriticalPDF CriticalPDFGenerator
	JWTSecret   string
}

// Router registra las rutas de la API. Todo el API es protegido: la
// autenticación vive fuera de este servicio, aquí solo se valida el token
// y se reenvía al remoto.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Kardex (libro de movimientos)
	kardexHandler := NewKardexHandler(deps.KardexUC)
	kardexGroup := api.Group("/kardex")
	kardexGroup.Get("/", kardexHandler.List)
	// Solo los roles operativos registran movimientos; consulta es de lectura.
	kardexGroup.Post("/", RequireRole("admin", "farmaceutico"), kardexHandler.Register)

	// Dashboard
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)

	// Reportes
	reportsHandler := NewReportsHandler(deps.ReportsUC, deps.CriticalPDF)
	reportsGroup := api.Group("/reports")
	reportsGroup.Get("/movements", reportsHandler.Movements)
	reportsGroup.Get("/sales", reportsHandler.Sales)
	reportsGroup.Get("/financial", reportsHandler.Financial)
	reportsGroup.Get("/inventory", reportsHandler.Inventory)
	reportsGroup.Get("/critical", reportsHandler.Critical)
	reportsGroup.Get("/critical/pdf", reportsHandler.CriticalPDF)

	// Alertas derivadas
	api.Get("/alerts", reportsHandler.Alerts)
}
