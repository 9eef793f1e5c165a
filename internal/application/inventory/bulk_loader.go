package inventory

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/candicorner/inventory/internal/domain/inventory"
	"github.com/candicorner/inventory/internal/domain/shared"
)

// loadFieldCount is the number of comma-separated values per input line
const loadFieldCount = 5

// warningFields maps validation error codes to the input field they
// refer to, for warning attribution
var warningFields = map[string]string{
	"INVALID_ID":          "id",
	"INVALID_DESCRIPTION": "description",
	"INVALID_QUANTITY":    "quantity",
	"INVALID_PRICE":       "price",
	"INVALID_STATUS":      "status",
}

// BulkLoader ingests catalog records from delimited text in the
// id,description,quantity,price,status line format. Lines are split
// naively on commas: the format carries no escaping, so an embedded
// comma shifts the field count and the line is skipped with a warning.
type BulkLoader struct {
	repo inventory.BraceletRepository
}

// NewBulkLoader creates a new BulkLoader
func NewBulkLoader(repo inventory.BraceletRepository) *BulkLoader {
	return &BulkLoader{repo: repo}
}

// LoadFile reads the file at path and loads its lines. A missing or
// unreadable file fails the whole call.
func (l *BulkLoader) LoadFile(ctx context.Context, path string) (*LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open data file: %w", err)
	}
	defer f.Close()
	return l.LoadReader(ctx, f)
}

// LoadReader splits r into lines and loads them
func (l *BulkLoader) LoadReader(ctx context.Context, r io.Reader) (*LoadReport, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read data: %w", err)
	}
	return l.LoadLines(ctx, lines)
}

// LoadLines validates and inserts one record per well-formed line.
// Line numbers start at 1 and count blank lines, though blank lines are
// otherwise ignored silently. A bad line is skipped with a warning and
// never aborts the batch; only a storage fault does, returning the
// partial report alongside the error. Ids are checked case-insensitively
// against both the already-accepted batch and pre-existing storage.
func (l *BulkLoader) LoadLines(ctx context.Context, lines []string) (*LoadReport, error) {
	report := &LoadReport{TotalLines: len(lines)}
	seen := make(map[string]struct{})

	for i, raw := range lines {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		lineNum := i + 1
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) != loadFieldCount {
			report.addWarning(LineWarning{
				Line:    lineNum,
				Code:    "MALFORMED_LINE",
				Message: fmt.Sprintf("expected %d comma-separated values, got %d", loadFieldCount, len(parts)),
			})
			continue
		}

		id, err := inventory.ParseID(parts[0])
		if err != nil {
			report.addWarning(fieldWarning(lineNum, err))
			continue
		}

		key := strings.ToLower(id)
		if _, dup := seen[key]; dup {
			report.addWarning(duplicateWarning(lineNum, id))
			continue
		}
		exists, err := l.repo.ExistsByID(ctx, id)
		if err != nil {
			return report, err
		}
		if exists {
			report.addWarning(duplicateWarning(lineNum, id))
			continue
		}

		bracelet, err := inventory.NewBraceletWithStatus(parts[0], parts[1], parts[2], parts[3], parts[4])
		if err != nil {
			report.addWarning(fieldWarning(lineNum, err))
			continue
		}

		if err := l.repo.Insert(ctx, bracelet); err != nil {
			if shared.IsConflict(err) {
				report.addWarning(duplicateWarning(lineNum, id))
				continue
			}
			return report, err
		}
		seen[key] = struct{}{}
		report.Loaded++
	}

	return report, nil
}

// fieldWarning builds a warning from a validation error, attributing it
// to the field its code names
func fieldWarning(line int, err error) LineWarning {
	var de *shared.DomainError
	if errors.As(err, &de) {
		return LineWarning{Line: line, Field: warningFields[de.Code], Code: de.Code, Message: de.Message}
	}
	return LineWarning{Line: line, Code: shared.CodeInvalidInput, Message: err.Error()}
}

func duplicateWarning(line int, id string) LineWarning {
	return LineWarning{
		Line:    line,
		Field:   "id",
		Code:    "DUPLICATE_ID",
		Message: fmt.Sprintf("a bracelet with ID %q already exists", id),
	}
}
