package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTestConfig creates a config file selecting a textfile backend
// rooted in the test's temp dir, so state survives across command
// invocations the way separate process runs would.
func writeTestConfig(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	dataPath := filepath.Join(dir, "inventory.txt")
	cfgPath := filepath.Join(dir, "config.toml")

	content := fmt.Sprintf("[storage]\nbackend = \"textfile\"\n\n[storage.textfile]\npath = %q\n", dataPath)
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0644))
	return cfgPath
}

func execCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestAddAndGet(t *testing.T) {
	opts := &RootOptions{ConfigPath: writeTestConfig(t), Format: "text"}

	out, _, err := execCommand(t, NewAddCommand(opts), "B001", "Silver charm bracelet", "12", "24.99")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully added: ID: B001, Description: Silver charm bracelet, Quantity: 12, Price: $24.99, Status: In Stock")

	// Lookup ignores ID casing and reports the stored form.
	out, _, err = execCommand(t, NewGetCommand(opts), "b001")
	require.NoError(t, err)
	assert.Contains(t, out, "ID: B001")
}

func TestAddDuplicateID(t *testing.T) {
	opts := &RootOptions{ConfigPath: writeTestConfig(t), Format: "text"}

	_, _, err := execCommand(t, NewAddCommand(opts), "B001", "Silver charm bracelet", "12", "24.99")
	require.NoError(t, err)

	out, _, err := execCommand(t, NewAddCommand(opts), "b001", "Copycat bangle", "1", "2.00")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [ALREADY_EXISTS]")
	assert.Contains(t, out, `"b001"`)
}

func TestAddInvalidQuantity(t *testing.T) {
	opts := &RootOptions{ConfigPath: writeTestConfig(t), Format: "text"}

	out, _, err := execCommand(t, NewAddCommand(opts), "B001", "Silver charm bracelet", "-3", "24.99")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [INVALID_QUANTITY]")
}

func TestGetNotFound(t *testing.T) {
	opts := &RootOptions{ConfigPath: writeTestConfig(t), Format: "text"}

	out, _, err := execCommand(t, NewGetCommand(opts), "B404")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [NOT_FOUND]")
	assert.Contains(t, out, `No bracelet found with ID "B404"`)
}

func TestGetJSON(t *testing.T) {
	opts := &RootOptions{ConfigPath: writeTestConfig(t), Format: "json"}

	_, _, err := execCommand(t, NewAddCommand(opts), "B001", "Silver charm bracelet", "12", "24.99")
	require.NoError(t, err)

	out, _, err := execCommand(t, NewGetCommand(opts), "B001")
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "B001", data["id"])
	assert.Equal(t, float64(12), data["quantity"])
	assert.Equal(t, "24.99", data["price"], "price must stay a decimal string")
	assert.Equal(t, "In Stock", data["status"])
}

func TestListEmpty(t *testing.T) {
	opts := &RootOptions{ConfigPath: writeTestConfig(t), Format: "text"}

	out, _, err := execCommand(t, NewListCommand(opts))
	require.NoError(t, err)
	assert.Contains(t, out, "Inventory is empty. No data to display.")
}

func TestListKeepsStorageOrder(t *testing.T) {
	opts := &RootOptions{ConfigPath: writeTestConfig(t), Format: "text"}

	_, _, err := execCommand(t, NewAddCommand(opts), "B002", "Gold bangle", "2", "149.50")
	require.NoError(t, err)
	_, _, err = execCommand(t, NewAddCommand(opts), "B001", "Silver charm bracelet", "12", "24.99")
	require.NoError(t, err)

	out, _, err := execCommand(t, NewListCommand(opts))
	require.NoError(t, err)
	assert.Contains(t, out, "--- Current Bracelet Inventory ---")
	assert.Less(t, strings.Index(out, "ID: B002"), strings.Index(out, "ID: B001"),
		"records must list in insertion order, not sorted by ID")
}

func TestRemove(t *testing.T) {
	opts := &RootOptions{ConfigPath: writeTestConfig(t), Format: "text"}

	_, _, err := execCommand(t, NewAddCommand(opts), "B001", "Silver charm bracelet", "12", "24.99")
	require.NoError(t, err)

	out, _, err := execCommand(t, NewRemoveCommand(opts), "b001")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully removed: ID: B001, Description: Silver charm bracelet")

	_, _, err = execCommand(t, NewGetCommand(opts), "B001")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestRemoveNotFound(t *testing.T) {
	opts := &RootOptions{ConfigPath: writeTestConfig(t), Format: "text"}

	out, _, err := execCommand(t, NewRemoveCommand(opts), "B404")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [NOT_FOUND]")
}

func TestUpdateQuantityFlipsStatus(t *testing.T) {
	opts := &RootOptions{ConfigPath: writeTestConfig(t), Format: "text"}

	_, _, err := execCommand(t, NewAddCommand(opts), "B001", "Silver charm bracelet", "12", "24.99")
	require.NoError(t, err)

	out, _, err := execCommand(t, NewUpdateCommand(opts), "B001", "quantity", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "Quantity updated. Status automatically updated to 'Out of Stock' due to zero quantity.")
	assert.Contains(t, out, "Quantity: 0")
	assert.Contains(t, out, "Status: Out of Stock")

	out, _, err = execCommand(t, NewUpdateCommand(opts), "B001", "quantity", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Quantity updated. Status automatically updated to 'In Stock' due to positive quantity.")
}

func TestUpdatePriceNoOp(t *testing.T) {
	opts := &RootOptions{ConfigPath: writeTestConfig(t), Format: "text"}

	_, _, err := execCommand(t, NewAddCommand(opts), "B001", "Silver charm bracelet", "12", "24.99")
	require.NoError(t, err)

	out, _, err := execCommand(t, NewUpdateCommand(opts), "B001", "price", "24.99")
	require.NoError(t, err)
	assert.Contains(t, out, "Price unchanged; the stored value already matches.")
}

func TestUpdateUnknownField(t *testing.T) {
	opts := &RootOptions{ConfigPath: writeTestConfig(t), Format: "text"}

	_, _, err := execCommand(t, NewAddCommand(opts), "B001", "Silver charm bracelet", "12", "24.99")
	require.NoError(t, err)

	out, _, err := execCommand(t, NewUpdateCommand(opts), "B001", "color", "red")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [INVALID_FIELD]")
}

func TestReportSortsByQuantity(t *testing.T) {
	opts := &RootOptions{ConfigPath: writeTestConfig(t), Format: "text"}

	_, _, err := execCommand(t, NewAddCommand(opts), "B001", "Silver charm bracelet", "12", "24.99")
	require.NoError(t, err)
	_, _, err = execCommand(t, NewAddCommand(opts), "B002", "Gold bangle", "5", "149.50")
	require.NoError(t, err)
	_, _, err = execCommand(t, NewAddCommand(opts), "B003", "Beaded friendship bracelet", "2", "5.00")
	require.NoError(t, err)

	out, _, err := execCommand(t, NewReportCommand(opts), "6")
	require.NoError(t, err)
	assert.Contains(t, out, "--- Bracelets Below Stock Threshold (6) ---")
	assert.NotContains(t, out, "B001")
	assert.Less(t, strings.Index(out, "ID: B003"), strings.Index(out, "ID: B002"),
		"report must sort ascending by quantity")
}

func TestReportEmptyResult(t *testing.T) {
	opts := &RootOptions{ConfigPath: writeTestConfig(t), Format: "text"}

	_, _, err := execCommand(t, NewAddCommand(opts), "B001", "Silver charm bracelet", "12", "24.99")
	require.NoError(t, err)

	out, _, err := execCommand(t, NewReportCommand(opts), "0")
	require.NoError(t, err, "an empty report is a success, not a failure")
	assert.Contains(t, out, "No bracelets currently below the specified stock threshold of 0.")
}

func TestReportInvalidThreshold(t *testing.T) {
	opts := &RootOptions{ConfigPath: writeTestConfig(t), Format: "text"}

	for _, threshold := range []string{"abc", "-2"} {
		out, _, err := execCommand(t, NewReportCommand(opts), threshold)
		require.Error(t, err)
		assert.Equal(t, ExitFailure, GetExitCode(err))
		assert.Contains(t, out, "Error [INVALID_THRESHOLD]")
	}
}

func TestVerboseDiagnosticsGoToStderr(t *testing.T) {
	opts := &RootOptions{ConfigPath: writeTestConfig(t), Format: "text", Verbose: true}

	out, errOut, err := execCommand(t, NewListCommand(opts))
	require.NoError(t, err)
	assert.Contains(t, errOut, "using textfile storage backend")
	assert.NotContains(t, out, "storage backend")
}

func TestBadConfigPathExitsTwo(t *testing.T) {
	opts := &RootOptions{ConfigPath: filepath.Join(t.TempDir(), "missing.toml"), Format: "text"}

	out, _, err := execCommand(t, NewListCommand(opts))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "Error [COMMAND_ERROR]")
}

func TestRootCommandWiresFlags(t *testing.T) {
	cfgPath := writeTestConfig(t)

	cmd := NewRootCommand()
	out, _, err := execCommand(t, cmd, "--config", cfgPath, "add", "B100", "Test bangle", "3", "9.99")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully added: ID: B100")
}
