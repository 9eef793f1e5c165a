package cli

import (
	"fmt"
	"io"

	invapp "github.com/candicorner/inventory/internal/application/inventory"
	"github.com/candicorner/inventory/internal/domain/inventory"
)

// braceletPayload is the JSON shape of one catalog record in CLI
// output. Price is a decimal string so values survive the trip
// untouched.
type braceletPayload struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	Status      string `json:"status"`
}

func newBraceletPayload(b *inventory.Bracelet) braceletPayload {
	return braceletPayload{
		ID:          b.ID,
		Description: b.Description,
		Quantity:    b.Quantity,
		Price:       b.Price.String(),
		Status:      string(b.Status),
	}
}

func newBraceletPayloads(items []inventory.Bracelet) []braceletPayload {
	out := make([]braceletPayload, 0, len(items))
	for i := range items {
		out = append(out, newBraceletPayload(&items[i]))
	}
	return out
}

// FormatBracelet renders one record in the operator display shape,
// with the price padded to two decimal places.
func FormatBracelet(b *inventory.Bracelet) string {
	return fmt.Sprintf("ID: %s, Description: %s, Quantity: %d, Price: $%s, Status: %s",
		b.ID, b.Description, b.Quantity, b.Price.StringFixed(2), b.Status)
}

// RenderInventory writes the full catalog listing.
func RenderInventory(w io.Writer, items []inventory.Bracelet) {
	if len(items) == 0 {
		fmt.Fprintln(w, "Inventory is empty. No data to display.")
		return
	}

	fmt.Fprintln(w, "--- Current Bracelet Inventory ---")
	for i := range items {
		fmt.Fprintln(w, FormatBracelet(&items[i]))
	}
	fmt.Fprintln(w, "----------------------------------")
}

// RenderLowStock writes the low-stock report for the given threshold.
// Items arrive sorted by ascending quantity.
func RenderLowStock(w io.Writer, items []inventory.Bracelet, threshold string) {
	if len(items) == 0 {
		fmt.Fprintf(w, "No bracelets currently below the specified stock threshold of %s.\n", threshold)
		return
	}

	fmt.Fprintf(w, "--- Bracelets Below Stock Threshold (%s) ---\n", threshold)
	for i := range items {
		b := &items[i]
		fmt.Fprintf(w, "ID: %s, Description: %s, Current Quantity: %d\n", b.ID, b.Description, b.Quantity)
	}
	fmt.Fprintln(w, "-------------------------------------------------------")
}

// RenderLoadReport writes per-line warnings followed by the load
// summary.
func RenderLoadReport(w io.Writer, report *invapp.LoadReport, path string) {
	for _, warn := range report.Warnings {
		fmt.Fprintf(w, "Warning: %s. Skipping bracelet.\n", warn)
	}
	if report.Loaded > 0 {
		fmt.Fprintf(w, "Successfully loaded %d bracelets from '%s'.\n", report.Loaded, path)
	} else {
		fmt.Fprintf(w, "No valid bracelets found or loaded from '%s'.\n", path)
	}
}

// fieldLabels maps the engine's field names to their display casing.
var fieldLabels = map[string]string{
	"quantity": "Quantity",
	"price":    "Price",
	"status":   "Status",
}

// updateMessage describes an update outcome, including the automatic
// status flip a quantity change can cause.
func updateMessage(res *invapp.UpdateResult) string {
	label := fieldLabels[res.Field]
	if !res.Changed {
		return fmt.Sprintf("%s unchanged; the stored value already matches.", label)
	}
	if res.StatusFlipped {
		if res.Bracelet.IsOutOfStock() {
			return fmt.Sprintf("%s updated. Status automatically updated to 'Out of Stock' due to zero quantity.", label)
		}
		return fmt.Sprintf("%s updated. Status automatically updated to 'In Stock' due to positive quantity.", label)
	}
	return fmt.Sprintf("%s updated.", label)
}
