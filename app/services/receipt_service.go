package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dwisetyadi/warungpos/app/models"
	"github.com/dwisetyadi/warungpos/app/repositories"
	"github.com/dwisetyadi/warungpos/pkg/apperr"
	"github.com/dwisetyadi/warungpos/pkg/metrics"
	"github.com/dwisetyadi/warungpos/pkg/storage"
)

// ReceiptService owns the immutable receipt archive. Receipts snapshot the
// submitted lines as-is; later item edits never touch an archived receipt.
type ReceiptService struct {
	receipts repositories.ReceiptRepository
}

func NewReceiptService(receipts repositories.ReceiptRepository) *ReceiptService {
	return &ReceiptService{receipts: receipts}
}

// coerceString tolerates absent or non-string values, yielding "".
func coerceString(v interface{}) string {
	s, _ := v.(string)
	return strings.TrimSpace(s)
}

// coerceNumber tolerates absent, malformed or non-numeric values, yielding 0.
func coerceNumber(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// Create archives a sale. Lines arrive as loose JSON values and are
// normalized leniently: missing names become "", malformed numbers become 0,
// and a line that is not an object at all collapses to an empty line.
// Only a receipt with no lines at all is rejected.
func (s *ReceiptService) Create(ctx context.Context, rawLines []interface{}) (models.Receipt, error) {
	if len(rawLines) == 0 {
		return models.Receipt{}, apperr.Invalidf("receipt must contain at least one line")
	}

	lines := make([]models.ReceiptLine, 0, len(rawLines))
	for _, raw := range rawLines {
		fields, _ := raw.(map[string]interface{})
		lines = append(lines, models.ReceiptLine{
			Name:     coerceString(fields["name"]),
			Price:    coerceNumber(fields["price"]),
			Quantity: int(coerceNumber(fields["quantity"])),
		})
	}

	receipt := models.Receipt{Lines: lines, CreatedAt: time.Now().UTC()}
	id, err := s.receipts.Insert(ctx, receipt)
	if err != nil {
		return models.Receipt{}, err
	}
	receipt.ID = id

	metrics.ReceiptsCreated.Inc()
	return receipt, nil
}

// Get fetches one archived receipt.
func (s *ReceiptService) Get(ctx context.Context, idHex string) (models.Receipt, error) {
	id, err := parseObjectID(idHex, "receipt")
	if err != nil {
		return models.Receipt{}, err
	}

	receipt, found, err := s.receipts.FindByID(ctx, id)
	if err != nil {
		return models.Receipt{}, err
	}
	if !found {
		return models.Receipt{}, apperr.NotFoundf("receipt %s not found", idHex)
	}
	return receipt, nil
}

// List returns the archive newest-first.
func (s *ReceiptService) List(ctx context.Context) ([]models.Receipt, error) {
	return s.receipts.AllNewestFirst(ctx)
}

// Delete removes one receipt from the archive.
func (s *ReceiptService) Delete(ctx context.Context, idHex string) error {
	id, err := parseObjectID(idHex, "receipt")
	if err != nil {
		return err
	}

	deleted, err := s.receipts.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFoundf("receipt %s not found", idHex)
	}
	return nil
}

// Export renders the receipt as a plain-text nota, writes it to the default
// storage disk and returns its public URL.
func (s *ReceiptService) Export(ctx context.Context, idHex string) (string, error) {
	receipt, err := s.Get(ctx, idHex)
	if err != nil {
		return "", err
	}

	path := fmt.Sprintf("exports/nota-%s.txt", receipt.ID.Hex())
	if err := storage.Put(path, []byte(renderNota(receipt))); err != nil {
		return "", fmt.Errorf("export receipt %s: %w", idHex, err)
	}
	return storage.URL(path), nil
}

func renderNota(receipt models.Receipt) string {
	var b strings.Builder
	fmt.Fprintf(&b, "NOTA %s\n", receipt.ID.Hex())
	fmt.Fprintf(&b, "%s\n", receipt.CreatedAt.Format("2006-01-02 15:04:05"))
	b.WriteString(strings.Repeat("-", 32) + "\n")
	for _, line := range receipt.Lines {
		fmt.Fprintf(&b, "%-16s %3d x %8.0f = %10.0f\n", line.Name, line.Quantity, line.Price, line.Price*float64(line.Quantity))
	}
	b.WriteString(strings.Repeat("-", 32) + "\n")
	fmt.Fprintf(&b, "TOTAL %26.0f\n", receipt.Total())
	return b.String()
}
