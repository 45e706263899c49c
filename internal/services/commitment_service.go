package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"gestor-backend/internal/models"
	"gestor-backend/internal/repositories"
)

// CommitmentService manages public-authority commitments (empenhos).
type CommitmentService struct {
	commitments *repositories.CommitmentRepository
}

func NewCommitmentService(commitments *repositories.CommitmentRepository) *CommitmentService {
	return &CommitmentService{commitments: commitments}
}

// SaveCommitmentInput converges creation and edit: a blank ID means a new
// record. Value arrives as free text from a form and is coerced.
type SaveCommitmentInput struct {
	ID               string   `json:"id"`
	Authority        string   `json:"prefeitura"`
	AuthorityLogo    string   `json:"prefeituraLogo"`
	CommitmentNumber string   `json:"commitmentNumber"`
	ProcessNumber    string   `json:"processNumber"`
	Date             string   `json:"date"`
	Value            string   `json:"value"`
	Description      string   `json:"description"`
	Status           string   `json:"status"`
	Images           []string `json:"images"`
}

// coerceValue turns free-form input into a non-negative decimal. Anything
// unparseable or negative becomes zero rather than an error, so a typo in
// the value field never loses the rest of the record.
func coerceValue(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	// Accept "1.234,56" style input as well as plain "1234.56".
	if strings.Contains(raw, ",") {
		raw = strings.ReplaceAll(raw, ".", "")
		raw = strings.ReplaceAll(raw, ",", ".")
	}
	v, err := decimal.NewFromString(raw)
	if err != nil || v.IsNegative() {
		return decimal.Zero
	}
	return v
}

func (s *CommitmentService) Save(ctx context.Context, input SaveCommitmentInput) (*models.Commitment, error) {
	if strings.TrimSpace(input.Authority) == "" {
		return nil, fmt.Errorf("authority is required")
	}
	if strings.TrimSpace(input.CommitmentNumber) == "" {
		return nil, fmt.Errorf("commitment number is required")
	}

	status := models.CommitmentStatus(input.Status)
	if input.Status == "" {
		status = models.CommitmentCommitted
	}
	if !status.Valid() {
		return nil, fmt.Errorf("invalid commitment status %q", input.Status)
	}

	date := time.Now()
	if input.Date != "" {
		parsed, err := time.Parse("2006-01-02", input.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q: %w", input.Date, err)
		}
		date = parsed
	}

	commitment := &models.Commitment{
		ID:               input.ID,
		Authority:        input.Authority,
		AuthorityLogo:    input.AuthorityLogo,
		CommitmentNumber: input.CommitmentNumber,
		ProcessNumber:    input.ProcessNumber,
		Date:             date,
		Value:            coerceValue(input.Value),
		Description:      input.Description,
		Status:           status,
		Images:           input.Images,
	}
	if commitment.ID == "" {
		commitment.ID = models.NewID()
	}
	if commitment.Images == nil {
		commitment.Images = []string{}
	}

	if err := s.commitments.Upsert(ctx, commitment); err != nil {
		return nil, err
	}
	return commitment, nil
}

func (s *CommitmentService) List(ctx context.Context) ([]*models.Commitment, error) {
	return s.commitments.List(ctx)
}

func (s *CommitmentService) Get(ctx context.Context, id string) (*models.Commitment, error) {
	return s.commitments.GetByID(ctx, id)
}

// Search filters by authority, commitment number or process number,
// case-insensitively. An empty query returns everything.
func (s *CommitmentService) Search(ctx context.Context, query string) ([]*models.Commitment, error) {
	commitments, err := s.commitments.List(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return commitments, nil
	}
	matched := []*models.Commitment{}
	for _, c := range commitments {
		if strings.Contains(strings.ToLower(c.Authority), query) ||
			strings.Contains(strings.ToLower(c.CommitmentNumber), query) ||
			strings.Contains(strings.ToLower(c.ProcessNumber), query) {
			matched = append(matched, c)
		}
	}
	return matched, nil
}

func (s *CommitmentService) UpdateStatus(ctx context.Context, id string, status models.CommitmentStatus) (*models.Commitment, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid commitment status %q", status)
	}
	commitment, err := s.commitments.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	commitment.Status = status
	if err := s.commitments.Upsert(ctx, commitment); err != nil {
		return nil, err
	}
	return commitment, nil
}

func (s *CommitmentService) Delete(ctx context.Context, id string) error {
	if _, err := s.commitments.GetByID(ctx, id); err != nil {
		return err
	}
	return s.commitments.Delete(ctx, id)
}
