package inventory

import (
	"fmt"

	"github.com/candicorner/inventory/internal/domain/inventory"
)

// LineWarning explains why one input line was skipped during a bulk load
type LineWarning struct {
	Line    int    `json:"line"`
	Field   string `json:"field,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// String renders the warning for operator display
func (w LineWarning) String() string {
	if w.Field != "" {
		return fmt.Sprintf("line %d, field '%s': %s", w.Line, w.Field, w.Message)
	}
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}

// LoadReport summarizes the outcome of a bulk load. TotalLines counts
// every input line including blanks; Skipped counts only lines dropped
// with a warning, so TotalLines is not necessarily Loaded + Skipped.
type LoadReport struct {
	TotalLines int           `json:"total_lines"`
	Loaded     int           `json:"loaded"`
	Skipped    int           `json:"skipped"`
	Warnings   []LineWarning `json:"warnings,omitempty"`
}

func (r *LoadReport) addWarning(w LineWarning) {
	r.Warnings = append(r.Warnings, w)
	r.Skipped++
}

// RemoveResult carries feedback about a removed record
type RemoveResult struct {
	ID          string `json:"id"`
	Description string `json:"description"`
}

// UpdateResult describes the outcome of a single field update. Changed is
// false when the supplied value matched the stored one and nothing was
// persisted; StatusFlipped reports an automatic stock-status transition
// caused by a quantity update.
type UpdateResult struct {
	Bracelet      *inventory.Bracelet `json:"bracelet"`
	Field         string              `json:"field"`
	Changed       bool                `json:"changed"`
	StatusFlipped bool                `json:"status_flipped"`
}
