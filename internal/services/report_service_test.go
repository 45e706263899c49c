package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"gestor-backend/internal/imaging"
	"gestor-backend/internal/models"
)

func testLogoDataURI(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.Set(2, 2, color.RGBA{B: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	uri, err := imaging.EncodeUpload(buf.Bytes())
	require.NoError(t, err)
	return uri
}

func TestTruncateKeepsRunesIntact(t *testing.T) {
	long := strings.Repeat("Instalação elétrica ", 5)
	out := truncate(long, 38)
	require.True(t, utf8.ValidString(out))
	require.Equal(t, 38, utf8.RuneCountInString(out))
	require.True(t, strings.HasSuffix(out, "..."))

	require.Equal(t, "Poda", truncate("Poda", 38))
}

func requirePDF(t *testing.T, data []byte) {
	t.Helper()
	require.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "output is not a PDF")
	require.Greater(t, len(data), 500)
}

func TestGenerateQuotePDF(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.mustClient(t, "Dona Maria")
	service := env.mustService(t, "Instalação elétrica", "250.50", "Elétrica")

	quote, err := env.quotes.Create(ctx, CreateQuoteInput{
		ClientID: client.ID,
		Items:    []models.QuoteItem{{ItemID: service.ID, Type: models.ItemService, Quantity: 2}},
		Discount: dec("1"),
		Notes:    "Material incluso",
	})
	require.NoError(t, err)

	data, err := env.reports.GenerateQuotePDF(ctx, quote.ID, DocumentOptions{})
	require.NoError(t, err)
	requirePDF(t, data)
}

func TestGenerateQuotePDFWithWatermark(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	profile, err := env.reports.profile.Get(ctx)
	require.NoError(t, err)
	profile.Logo = testLogoDataURI(t)
	require.NoError(t, env.reports.profile.Save(ctx, profile))

	client := env.mustClient(t, "Cliente")
	service := env.mustService(t, "Reforma", "500", "Geral")
	quote, err := env.quotes.Create(ctx, CreateQuoteInput{
		ClientID: client.ID,
		Items:    []models.QuoteItem{{ItemID: service.ID, Type: models.ItemService, Quantity: 1}},
	})
	require.NoError(t, err)

	for _, position := range []string{WatermarkCenter, WatermarkTopRight, WatermarkBottomLeft} {
		data, err := env.reports.GenerateQuotePDF(ctx, quote.ID, DocumentOptions{
			Watermark:         true,
			WatermarkPosition: position,
			WatermarkOpacity:  0.2,
		})
		require.NoError(t, err)
		requirePDF(t, data)
	}
}

func TestGenerateQuotePDFSkipsCorruptItemImage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.mustClient(t, "Cliente")
	service := env.mustService(t, "Reparo", "100", "Geral")

	quote, err := env.quotes.Create(ctx, CreateQuoteInput{
		ClientID: client.ID,
		Items:    []models.QuoteItem{{ItemID: service.ID, Type: models.ItemService, Quantity: 1}},
	})
	require.NoError(t, err)

	// Attach bytes that are not a real PNG; the renderer must skip them.
	corrupt := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("not a png"))
	quote, err = env.quotes.AttachItemImage(ctx, quote.ID, 0, corrupt)
	require.NoError(t, err)

	data, err := env.reports.GenerateQuotePDF(ctx, quote.ID, DocumentOptions{})
	require.NoError(t, err)
	requirePDF(t, data)
}

func TestGenerateQuotePDFDanglingReference(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.mustClient(t, "Cliente")
	service := env.mustService(t, "Poda", "80", "Geral")

	quote, err := env.quotes.Create(ctx, CreateQuoteInput{
		ClientID: client.ID,
		Items:    []models.QuoteItem{{ItemID: service.ID, Type: models.ItemService, Quantity: 1}},
	})
	require.NoError(t, err)

	// Delete both the catalog entry and the client; the render still works.
	require.NoError(t, env.catalog.DeleteService(ctx, service.ID))
	require.NoError(t, env.clients.Delete(ctx, client.ID))

	data, err := env.reports.GenerateQuotePDF(ctx, quote.ID, DocumentOptions{})
	require.NoError(t, err)
	requirePDF(t, data)
}

func TestGenerateReceiptPDF(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	client := env.mustClient(t, "Seu José")
	receipt, err := env.receipts.Create(ctx, CreateReceiptInput{
		ClientID:    client.ID,
		Amount:      dec("350"),
		Description: "instalação de chuveiro",
	})
	require.NoError(t, err)

	data, err := env.reports.GenerateReceiptPDF(ctx, receipt.ID, DocumentOptions{})
	require.NoError(t, err)
	requirePDF(t, data)
}

func TestGenerateCommitmentLedgerPDF(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.commitments.Save(ctx, SaveCommitmentInput{
		Authority: "Prefeitura de Cotia", CommitmentNumber: "NE100", Value: "1000",
		AuthorityLogo: testLogoDataURI(t),
	})
	require.NoError(t, err)
	_, err = env.commitments.Save(ctx, SaveCommitmentInput{
		Authority: "Prefeitura de Itapevi", CommitmentNumber: "NE200", Value: "2000",
	})
	require.NoError(t, err)

	filtered, err := env.commitments.Search(ctx, "cotia")
	require.NoError(t, err)
	require.Len(t, filtered, 1)

	data, err := env.reports.GenerateCommitmentLedgerPDF(ctx, filtered, DocumentOptions{})
	require.NoError(t, err)
	requirePDF(t, data)
}

func TestGenerateCommitmentsCSV(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.commitments.Save(ctx, SaveCommitmentInput{
		Authority: "Prefeitura de Cotia", CommitmentNumber: "NE100", Value: "1000",
	})
	require.NoError(t, err)

	all, err := env.commitments.List(ctx)
	require.NoError(t, err)

	data, err := env.reports.GenerateCommitmentsCSV(all)
	require.NoError(t, err)

	out := string(data)
	require.True(t, strings.Contains(out, "Prefeitura de Cotia"))
	require.True(t, strings.Contains(out, "NE100"))
	require.True(t, strings.Contains(out, "1000.00"))
}
