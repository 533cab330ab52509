package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Service name attached to structured logs
	ServiceName = "h2grid-api"

	// Currencies
	INRCurrency = "INR"
)

// Dashboard tabs
const (
	TabOverview  = "overview"
	TabProjects  = "projects"
	TabAnalytics = "analytics"
	TabResources = "resources"
	TabReports   = "reports"
)

// Resource sizing keys reported by the land optimizer
const (
	SolarPanelsRequired   = "solar_panels_required"
	WindTurbinesRequired  = "wind_turbines_required"
	ElectrolyzersRequired = "electrolyzers_required"
)

// Revenue estimation keys reported by the land optimizer
const (
	DomesticSalesRevenue = "domestic_sales_revenue"
	ExportRevenue        = "export_revenue"
	CarbonCreditRevenue  = "carbon_credit_revenue"
)
