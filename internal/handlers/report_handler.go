package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"gestor-backend/internal/metrics"
	"gestor-backend/internal/services"
	"gestor-backend/pkg/utils"
)

type ReportHandler struct {
	Service     *services.ReportService
	Commitments *services.CommitmentService
}

func NewReportHandler(s *services.ReportService, commitments *services.CommitmentService) *ReportHandler {
	return &ReportHandler{Service: s, Commitments: commitments}
}

// documentOptions reads the watermark query parameters shared by the PDF
// endpoints: ?watermark=true&position=center&opacity=0.1
func documentOptions(r *http.Request) services.DocumentOptions {
	opts := services.DocumentOptions{}
	if r.URL.Query().Get("watermark") == "true" {
		opts.Watermark = true
	}
	opts.WatermarkPosition = r.URL.Query().Get("position")
	if raw := r.URL.Query().Get("opacity"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			opts.WatermarkOpacity = v
		}
	}
	return opts
}

func servePDF(w http.ResponseWriter, kind, id string, data []byte) {
	filename := fmt.Sprintf("%s_%s_%s.pdf", kind, id, time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Write(data)
	metrics.DocumentsGenerated.WithLabelValues(kind).Inc()
}

func (h *ReportHandler) QuotePDF(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	data, err := h.Service.GenerateQuotePDF(r.Context(), id, documentOptions(r))
	if err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}
	servePDF(w, "orcamento", id, data)
}

func (h *ReportHandler) ReceiptPDF(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	data, err := h.Service.GenerateReceiptPDF(r.Context(), id, documentOptions(r))
	if err != nil {
		utils.Error(w, http.StatusNotFound, err.Error())
		return
	}
	servePDF(w, "recibo", id, data)
}

// CommitmentLedgerPDF renders the ledger for commitments matching the
// optional ?q= filter; the totals row reflects only those rows.
func (h *ReportHandler) CommitmentLedgerPDF(w http.ResponseWriter, r *http.Request) {
	commitments, err := h.Commitments.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	data, err := h.Service.GenerateCommitmentLedgerPDF(r.Context(), commitments, documentOptions(r))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	servePDF(w, "empenhos", "controle", data)
}

func (h *ReportHandler) CommitmentsCSV(w http.ResponseWriter, r *http.Request) {
	commitments, err := h.Commitments.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	data, err := h.Service.GenerateCommitmentsCSV(commitments)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	filename := fmt.Sprintf("empenhos_%s.csv", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Write(data)
}
