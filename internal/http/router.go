package http

import (
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gestor-backend/internal/handlers"
)

func NewRouter(
	catalogHandler *handlers.CatalogHandler,
	clientHandler *handlers.ClientHandler,
	quoteHandler *handlers.QuoteHandler,
	receiptHandler *handlers.ReceiptHandler,
	commitmentHandler *handlers.CommitmentHandler,
	dashboardHandler *handlers.DashboardHandler,
	profileHandler *handlers.ProfileHandler,
	reportHandler *handlers.ReportHandler,
	backupHandler *handlers.BackupHandler,
	healthHandler *handlers.HealthHandler,
) *mux.Router {
	r := mux.NewRouter()

	// Health and metrics
	r.HandleFunc("/health", healthHandler.Basic).Methods("GET")
	r.HandleFunc("/health/system", healthHandler.System).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Services catalog
	servicesAPI := r.PathPrefix("/api/services").Subrouter()
	servicesAPI.HandleFunc("", catalogHandler.ListServices).Methods("GET")
	servicesAPI.HandleFunc("", catalogHandler.CreateService).Methods("POST")
	servicesAPI.HandleFunc("/improve-description", catalogHandler.ImproveServiceDescription).Methods("POST")
	servicesAPI.HandleFunc("/{id}", catalogHandler.GetService).Methods("GET")
	servicesAPI.HandleFunc("/{id}", catalogHandler.UpdateService).Methods("PUT")
	servicesAPI.HandleFunc("/{id}", catalogHandler.DeleteService).Methods("DELETE")
	servicesAPI.HandleFunc("/{id}/favorite", catalogHandler.ToggleServiceFavorite).Methods("PATCH")

	// Products catalog
	productsAPI := r.PathPrefix("/api/products").Subrouter()
	productsAPI.HandleFunc("", catalogHandler.ListProducts).Methods("GET")
	productsAPI.HandleFunc("", catalogHandler.CreateProduct).Methods("POST")
	productsAPI.HandleFunc("/{id}", catalogHandler.GetProduct).Methods("GET")
	productsAPI.HandleFunc("/{id}", catalogHandler.UpdateProduct).Methods("PUT")
	productsAPI.HandleFunc("/{id}", catalogHandler.DeleteProduct).Methods("DELETE")
	productsAPI.HandleFunc("/{id}/stock", catalogHandler.AdjustStock).Methods("PATCH")

	// Category lists for both catalogs: kind is "services" or "products"
	categoriesAPI := r.PathPrefix("/api/categories/{kind}").Subrouter()
	categoriesAPI.HandleFunc("", catalogHandler.ListCategories).Methods("GET")
	categoriesAPI.HandleFunc("", catalogHandler.AddCategory).Methods("POST")
	categoriesAPI.HandleFunc("/{name}", catalogHandler.RemoveCategory).Methods("DELETE")

	// Clients
	clientsAPI := r.PathPrefix("/api/clients").Subrouter()
	clientsAPI.HandleFunc("", clientHandler.List).Methods("GET")
	clientsAPI.HandleFunc("", clientHandler.Create).Methods("POST")
	clientsAPI.HandleFunc("/{id}", clientHandler.Get).Methods("GET")
	clientsAPI.HandleFunc("/{id}", clientHandler.Update).Methods("PUT")
	clientsAPI.HandleFunc("/{id}", clientHandler.Delete).Methods("DELETE")

	// Appointments
	appointmentsAPI := r.PathPrefix("/api/appointments").Subrouter()
	appointmentsAPI.HandleFunc("", clientHandler.ListAppointments).Methods("GET")
	appointmentsAPI.HandleFunc("", clientHandler.CreateAppointment).Methods("POST")
	appointmentsAPI.HandleFunc("/{id}", clientHandler.DeleteAppointment).Methods("DELETE")

	// Quotes
	quotesAPI := r.PathPrefix("/api/quotes").Subrouter()
	quotesAPI.HandleFunc("", quoteHandler.List).Methods("GET")
	quotesAPI.HandleFunc("", quoteHandler.Create).Methods("POST")
	quotesAPI.HandleFunc("/{id}", quoteHandler.Get).Methods("GET")
	quotesAPI.HandleFunc("/{id}", quoteHandler.Delete).Methods("DELETE")
	quotesAPI.HandleFunc("/{id}/status", quoteHandler.UpdateStatus).Methods("PATCH")
	quotesAPI.HandleFunc("/{id}/discount", quoteHandler.SetDiscount).Methods("PATCH")
	quotesAPI.HandleFunc("/{id}/notes", quoteHandler.SetNotes).Methods("PATCH")
	quotesAPI.HandleFunc("/{id}/message", quoteHandler.ComposeMessage).Methods("GET")
	quotesAPI.HandleFunc("/{id}/items", quoteHandler.AddItem).Methods("POST")
	quotesAPI.HandleFunc("/{id}/items/{index}", quoteHandler.RemoveItem).Methods("DELETE")
	quotesAPI.HandleFunc("/{id}/items/{index}/quantity", quoteHandler.SetItemQuantity).Methods("PATCH")
	quotesAPI.HandleFunc("/{id}/items/{index}/price", quoteHandler.SetItemPrice).Methods("PATCH")
	quotesAPI.HandleFunc("/{id}/items/{index}/image", quoteHandler.AttachItemImage).Methods("POST")

	// Receipts
	receiptsAPI := r.PathPrefix("/api/receipts").Subrouter()
	receiptsAPI.HandleFunc("", receiptHandler.List).Methods("GET")
	receiptsAPI.HandleFunc("", receiptHandler.Create).Methods("POST")
	receiptsAPI.HandleFunc("/{id}", receiptHandler.Get).Methods("GET")
	receiptsAPI.HandleFunc("/{id}", receiptHandler.Delete).Methods("DELETE")

	// Commitments (empenhos)
	commitmentsAPI := r.PathPrefix("/api/commitments").Subrouter()
	commitmentsAPI.HandleFunc("", commitmentHandler.List).Methods("GET")
	commitmentsAPI.HandleFunc("", commitmentHandler.Save).Methods("POST")
	commitmentsAPI.HandleFunc("/{id}", commitmentHandler.Get).Methods("GET")
	commitmentsAPI.HandleFunc("/{id}", commitmentHandler.Save).Methods("PUT")
	commitmentsAPI.HandleFunc("/{id}", commitmentHandler.Delete).Methods("DELETE")
	commitmentsAPI.HandleFunc("/{id}/status", commitmentHandler.UpdateStatus).Methods("PATCH")

	// Dashboard
	r.HandleFunc("/api/dashboard", dashboardHandler.Metrics).Methods("GET")

	// Company profile
	profileAPI := r.PathPrefix("/api/profile").Subrouter()
	profileAPI.HandleFunc("", profileHandler.Get).Methods("GET")
	profileAPI.HandleFunc("", profileHandler.Save).Methods("PUT")
	profileAPI.HandleFunc("/logo", profileHandler.UploadLogo).Methods("POST")

	// Document downloads
	reportsAPI := r.PathPrefix("/api/reports").Subrouter()
	reportsAPI.HandleFunc("/quotes/{id}/pdf", reportHandler.QuotePDF).Methods("GET")
	reportsAPI.HandleFunc("/receipts/{id}/pdf", reportHandler.ReceiptPDF).Methods("GET")
	reportsAPI.HandleFunc("/commitments/pdf", reportHandler.CommitmentLedgerPDF).Methods("GET")
	reportsAPI.HandleFunc("/commitments/csv", reportHandler.CommitmentsCSV).Methods("GET")

	// Backups
	backupAPI := r.PathPrefix("/api/backups").Subrouter()
	backupAPI.HandleFunc("", backupHandler.List).Methods("GET")
	backupAPI.HandleFunc("", backupHandler.Trigger).Methods("POST")
	backupAPI.HandleFunc("/restore", backupHandler.Restore).Methods("POST")

	return r
}
