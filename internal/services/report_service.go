package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log"
	"time"

	"github.com/jung-kurt/gofpdf/v2"
	"github.com/shopspring/decimal"

	"gestor-backend/internal/imaging"
	"gestor-backend/internal/models"
	"gestor-backend/internal/money"
	"gestor-backend/internal/repositories"
)

// Document accent colors.
var (
	quoteBlue      = [3]int{37, 99, 235}
	receiptEmerald = [3]int{16, 185, 129}
)

// Watermark position presets.
const (
	WatermarkCenter      = "center"
	WatermarkTopLeft     = "top-left"
	WatermarkTopRight    = "top-right"
	WatermarkBottomLeft  = "bottom-left"
	WatermarkBottomRight = "bottom-right"
)

// DocumentOptions controls optional rendering features.
type DocumentOptions struct {
	// Watermark draws the company logo behind the page content.
	Watermark bool
	// WatermarkPosition is one of the position presets; unknown values
	// fall back to center.
	WatermarkPosition string
	// WatermarkOpacity in [0,1]; zero means the 10% default.
	WatermarkOpacity float64
}

func (o DocumentOptions) opacity() float64 {
	if o.WatermarkOpacity <= 0 || o.WatermarkOpacity > 1 {
		return 0.10
	}
	return o.WatermarkOpacity
}

// ReportService renders quotes, receipts and the commitment ledger as PDF
// documents, plus CSV exports.
type ReportService struct {
	quotes      *repositories.QuoteRepository
	receipts    *repositories.ReceiptRepository
	commitments *repositories.CommitmentRepository
	clients     *repositories.ClientRepository
	services    *repositories.ServiceRepository
	products    *repositories.ProductRepository
	profile     *repositories.ProfileRepository
}

func NewReportService(
	quotes *repositories.QuoteRepository,
	receipts *repositories.ReceiptRepository,
	commitments *repositories.CommitmentRepository,
	clients *repositories.ClientRepository,
	services *repositories.ServiceRepository,
	products *repositories.ProductRepository,
	profile *repositories.ProfileRepository,
) *ReportService {
	return &ReportService{
		quotes:      quotes,
		receipts:    receipts,
		commitments: commitments,
		clients:     clients,
		services:    services,
		products:    products,
		profile:     profile,
	}
}

// clientName resolves a client id, falling back to a placeholder when the
// client was deleted after the document was created.
func (s *ReportService) clientName(ctx context.Context, id string) string {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return FallbackClientName
	}
	return client.Name
}

// embedImage validates and registers a data-URI image under name. Returns
// false when the payload is unusable; the caller just skips it. Validation
// happens before registration because a bad image handed to gofpdf poisons
// the whole document via its sticky error.
func embedImage(pdf *gofpdf.Fpdf, name, dataURI string) bool {
	data, kind, err := imaging.Decode(dataURI)
	if err != nil {
		log.Printf("[Report] Skipping unusable image %s: %v", name, err)
		return false
	}
	pdf.RegisterImageOptionsReader(name, gofpdf.ImageOptions{ImageType: kind, ReadDpi: true}, bytes.NewReader(data))
	return pdf.Ok()
}

// truncate shortens s to at most max runes, ellipsized. Slicing runes
// rather than bytes keeps accented names intact.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// watermarkSize is the square edge of each watermark tile, in mm.
const watermarkSize = 80.0

// installWatermark draws the logo at the chosen position preset on every
// page, under the content, at low opacity.
func installWatermark(pdf *gofpdf.Fpdf, logoDataURI string, opts DocumentOptions) {
	if !opts.Watermark || logoDataURI == "" {
		return
	}
	if !embedImage(pdf, "watermark", logoDataURI) {
		return
	}

	w, h := pdf.GetPageSize()
	var x, y float64
	switch opts.WatermarkPosition {
	case WatermarkTopLeft:
		x, y = 20, 50
	case WatermarkTopRight:
		x, y = w-watermarkSize-20, 50
	case WatermarkBottomLeft:
		x, y = 20, h-watermarkSize-20
	case WatermarkBottomRight:
		x, y = w-watermarkSize-20, h-watermarkSize-20
	default:
		x, y = (w-watermarkSize)/2, (h-watermarkSize)/2
	}

	pdf.SetHeaderFuncMode(func() {
		pdf.SetAlpha(opts.opacity(), "Normal")
		pdf.ImageOptions("watermark", x, y, watermarkSize, watermarkSize, false,
			gofpdf.ImageOptions{ImageType: "", ReadDpi: true}, 0, "")
		pdf.SetAlpha(1, "Normal")
	}, true)
}

// companyHeader draws the colored title band (title, issuer, date) plus
// the issuer contact block.
func companyHeader(pdf *gofpdf.Fpdf, tr func(string) string, profile *models.CompanyProfile, title, date string, color [3]int) {
	pdf.SetFillColor(color[0], color[1], color[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, tr(title), "", 1, "C", true, 0, "")
	pdf.SetFont("Arial", "", 9)
	pdf.CellFormat(190, 6, tr(profile.Name+" - "+date), "", 1, "C", true, 0, "")
	pdf.SetTextColor(0, 0, 0)
	pdf.Ln(3)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 6, tr(profile.Name), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	if profile.Document != "" {
		pdf.CellFormat(190, 5, tr("CNPJ/CPF: "+profile.Document), "", 1, "L", false, 0, "")
	}
	if profile.Phone != "" || profile.Email != "" {
		pdf.CellFormat(190, 5, tr(profile.Phone+"  "+profile.Email), "", 1, "L", false, 0, "")
	}
	if profile.Address != "" {
		pdf.CellFormat(190, 5, tr(profile.Address), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}

// GenerateQuotePDF renders one quote as a client-facing proposal.
func (s *ReportService) GenerateQuotePDF(ctx context.Context, quoteID string, opts DocumentOptions) ([]byte, error) {
	quote, err := s.quotes.GetByID(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profile.Get(ctx)
	if err != nil {
		return nil, err
	}
	svcs, err := s.services.List(ctx)
	if err != nil {
		return nil, err
	}
	prods, err := s.products.List(ctx)
	if err != nil {
		return nil, err
	}
	catalog := NewCatalog(svcs, prods)

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 10, 10)
	installWatermark(pdf, profile.Logo, opts)
	pdf.AddPage()

	companyHeader(pdf, tr, profile, fmt.Sprintf("Orçamento #%s", quote.ID), money.FormatDate(quote.Date), quoteBlue)

	// Client and validity block
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(190, 7, tr("Dados do Orçamento"), "1", 1, "L", true, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 6, tr("Cliente: "+s.clientName(ctx, quote.ClientID)), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, tr("Data: "+money.FormatDate(quote.Date)), "RB", 1, "L", false, 0, "")
	pdf.CellFormat(95, 6, tr("Status: "+string(quote.Status)), "LB", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, tr("Válido até: "+money.FormatDate(quote.ValidUntil)), "RB", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Items table
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(quoteBlue[0], quoteBlue[1], quoteBlue[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(20, 7, tr("Tipo"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(70, 7, tr("Item"), "1", 0, "L", true, 0, "")
	pdf.CellFormat(15, 7, tr("Qtd"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(40, 7, tr("Preço Unit."), "1", 0, "R", true, 0, "")
	pdf.CellFormat(45, 7, tr("Subtotal"), "1", 1, "R", true, 0, "")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Arial", "", 10)
	for i, item := range quote.Items {
		line := catalog.ResolveLine(item)
		tag := "Serviço"
		if item.Type == models.ItemProduct {
			tag = "Produto"
		}
		name := truncate(line.Name, 38)
		pdf.CellFormat(20, 6, tr(tag), "1", 0, "C", false, 0, "")
		pdf.CellFormat(70, 6, tr(name), "1", 0, "L", false, 0, "")
		pdf.CellFormat(15, 6, fmt.Sprintf("%d", item.Quantity), "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 6, tr(money.FormatBRL(line.UnitPrice)), "1", 0, "R", false, 0, "")
		pdf.CellFormat(45, 6, tr(money.FormatBRL(line.Subtotal)), "1", 1, "R", false, 0, "")

		if item.Image != "" {
			imgName := fmt.Sprintf("quote_item_%d", i)
			if embedImage(pdf, imgName, item.Image) {
				x := pdf.GetX()
				y := pdf.GetY()
				pdf.ImageOptions(imgName, 12, y+1, 30, 0, false,
					gofpdf.ImageOptions{ImageType: "", ReadDpi: true}, 0, "")
				pdf.SetXY(x, y+26)
			}
		}
	}
	pdf.Ln(3)

	// Totals
	if quote.Discount.IsPositive() {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(145, 7, tr("Desconto"), "", 0, "R", false, 0, "")
		pdf.CellFormat(45, 7, tr("- "+money.FormatBRL(quote.Discount)), "1", 1, "R", false, 0, "")
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(145, 9, tr("Total"), "", 0, "R", false, 0, "")
	pdf.CellFormat(45, 9, tr(money.FormatBRL(quote.Total)), "1", 1, "R", true, 0, "")

	if quote.Notes != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(190, 5, tr("Observações: "+quote.Notes), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateReceiptPDF renders one receipt with the standard legal wording.
func (s *ReportService) GenerateReceiptPDF(ctx context.Context, receiptID string, opts DocumentOptions) ([]byte, error) {
	receipt, err := s.receipts.GetByID(ctx, receiptID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profile.Get(ctx)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 10, 10)
	installWatermark(pdf, profile.Logo, opts)
	pdf.AddPage()

	// Page border
	pdf.SetDrawColor(receiptEmerald[0], receiptEmerald[1], receiptEmerald[2])
	pdf.SetLineWidth(0.6)
	pdf.Rect(5, 5, 200, 287, "D")
	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(0, 0, 0)

	companyHeader(pdf, tr, profile, fmt.Sprintf("Recibo #%s", receipt.ID), money.FormatDate(receipt.Date), receiptEmerald)

	description := receipt.Description
	if description == "" {
		description = "serviços prestados"
	}
	statement := fmt.Sprintf("Recebemos de %s, a importância de %s, referente a %s.",
		s.clientName(ctx, receipt.ClientID), money.FormatBRL(receipt.Amount), description)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(190, 8, tr(statement), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(95, 6, tr("Data: "+money.FormatDate(receipt.Date)), "", 0, "L", false, 0, "")
	pdf.CellFormat(95, 6, tr("Forma de pagamento: "+receipt.PaymentMethod), "", 1, "L", false, 0, "")
	pdf.Ln(30)

	// Issuer and payer signatures, side by side
	issuer := profile.OwnerName
	if issuer == "" {
		issuer = profile.Name
	}
	pdf.CellFormat(85, 0, "", "T", 0, "C", false, 0, "")
	pdf.CellFormat(20, 0, "", "", 0, "C", false, 0, "")
	pdf.CellFormat(85, 0, "", "T", 1, "C", false, 0, "")
	pdf.CellFormat(85, 6, tr(issuer), "", 0, "C", false, 0, "")
	pdf.CellFormat(20, 6, "", "", 0, "C", false, 0, "")
	pdf.CellFormat(85, 6, tr(s.clientName(ctx, receipt.ClientID)), "", 1, "C", false, 0, "")

	pdf.SetY(-25)
	pdf.SetFont("Arial", "I", 8)
	pdf.CellFormat(190, 5, tr("Emitido em "+money.FormatDate(receipt.Date)), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateCommitmentLedgerPDF renders the commitments matching query as a
// ledger. The totals row sums only the filtered rows.
func (s *ReportService) GenerateCommitmentLedgerPDF(ctx context.Context, commitments []*models.Commitment, opts DocumentOptions) ([]byte, error) {
	profile, err := s.profile.Get(ctx)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Issuer branding on the left, report metadata on the right
	left := 138.0
	if profile.Logo != "" && embedImage(pdf, "ledger_header_logo", profile.Logo) {
		pdf.ImageOptions("ledger_header_logo", 10, 10, 0, 12, false,
			gofpdf.ImageOptions{ImageType: "", ReadDpi: true}, 0, "")
		pdf.SetX(26)
		left = 122.0
	}
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(left, 12, tr(profile.Name), "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	meta := fmt.Sprintf("Controle de Empenhos - %s - %d registros", money.FormatDate(time.Now()), len(commitments))
	pdf.CellFormat(139, 12, tr(meta), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(20, 7, tr("Logo"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(60, 7, tr("Prefeitura"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, tr("Empenho"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(35, 7, tr("Processo"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, tr("Data"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(30, 7, tr("Valor"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(25, 7, tr("Status"), "1", 0, "C", true, 0, "")
	pdf.CellFormat(47, 7, tr("Descrição"), "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 9)
	total := decimal.Zero
	for i, c := range commitments {
		if i%2 == 0 {
			pdf.SetFillColor(255, 255, 255)
		} else {
			pdf.SetFillColor(245, 245, 245)
		}

		y := pdf.GetY()
		pdf.CellFormat(20, 10, "", "1", 0, "C", true, 0, "")
		if c.AuthorityLogo != "" {
			imgName := fmt.Sprintf("ledger_logo_%d", i)
			if embedImage(pdf, imgName, c.AuthorityLogo) {
				pdf.ImageOptions(imgName, 11, y+1, 0, 8, false,
					gofpdf.ImageOptions{ImageType: "", ReadDpi: true}, 0, "")
			}
		}

		authority := truncate(c.Authority, 30)
		description := truncate(c.Description, 25)

		pdf.CellFormat(60, 10, tr(authority), "1", 0, "L", true, 0, "")
		pdf.CellFormat(35, 10, tr(c.CommitmentNumber), "1", 0, "C", true, 0, "")
		pdf.CellFormat(35, 10, tr(c.ProcessNumber), "1", 0, "C", true, 0, "")
		pdf.CellFormat(25, 10, tr(money.FormatDate(c.Date)), "1", 0, "C", true, 0, "")
		pdf.CellFormat(30, 10, tr(money.FormatBRL(c.Value)), "1", 0, "R", true, 0, "")
		pdf.CellFormat(25, 10, tr(string(c.Status)), "1", 0, "C", true, 0, "")
		pdf.CellFormat(47, 10, tr(description), "1", 1, "L", true, 0, "")

		total = total.Add(c.Value)
	}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	pdf.CellFormat(175, 8, tr(fmt.Sprintf("Total (%d empenhos)", len(commitments))), "1", 0, "R", true, 0, "")
	pdf.CellFormat(30, 8, tr(money.FormatBRL(total)), "1", 0, "R", true, 0, "")
	pdf.CellFormat(72, 8, "", "1", 1, "L", true, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GenerateCommitmentsCSV exports the given commitments as CSV.
func (s *ReportService) GenerateCommitmentsCSV(commitments []*models.Commitment) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"#", "Prefeitura", "Empenho", "Processo", "Data", "Valor", "Status", "Descrição"})
	for i, c := range commitments {
		w.Write([]string{
			fmt.Sprintf("%d", i+1),
			c.Authority,
			c.CommitmentNumber,
			c.ProcessNumber,
			money.FormatDate(c.Date),
			c.Value.StringFixed(2),
			string(c.Status),
			c.Description,
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
