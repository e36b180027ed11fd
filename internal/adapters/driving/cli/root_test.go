package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/maude-cli/internal/adapters/driven/output"
)

var testStartedAt = time.Date(2024, 8, 7, 10, 0, 0, 0, time.UTC)

// executeCommand runs the root command with args and returns its combined
// output. Package-level flag state is reset first.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	configPath = ""
	verbose = false
	originalNow := now
	now = func() time.Time { return testStartedAt }
	defer func() { now = originalNow }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// fakeOpenFDA serves two reports for every query and records the raw
// query strings it receives.
type fakeOpenFDA struct {
	mu      sync.Mutex
	queries []string
	status  int
}

func (f *fakeOpenFDA) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.queries = append(f.queries, r.URL.RawQuery)
	status := f.status
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if status != 0 && status != http.StatusOK {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"error":{"code":"SERVER_ERROR","message":"boom"}}`))
		return
	}

	body := map[string]any{
		"meta": map[string]any{"results": map[string]any{"total": 2}},
		"results": []any{
			map[string]any{
				"report_number":      "3001-2024-00002",
				"adverse_event_flag": "Y",
				"date_of_event":      "20240101",
				"product_problems":   []any{"Patient Data Problem"},
				"mdr_text": []any{
					map[string]any{
						"text_type_code": "Description of Event or Problem",
						"text":           "The ALGORITHM miscalculated the dose.",
					},
				},
			},
			map[string]any{
				"report_number":      "3001-2024-00001",
				"adverse_event_flag": "N",
			},
		},
	}
	_ = json.NewEncoder(w).Encode(body)
}

func (f *fakeOpenFDA) received() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.queries...)
}

// setupRun starts a fake API and writes a config file pointing at it.
// It returns the config path, the output root and the fake.
func setupRun(t *testing.T, extra string) (string, string, *fakeOpenFDA) {
	t.Helper()

	fake := &fakeOpenFDA{}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	dir := t.TempDir()
	root := filepath.Join(dir, "results")
	cfgPath := filepath.Join(dir, "maude.toml")
	content := fmt.Sprintf(`
[api]
base_url = %q
page_delay_seconds = 0

[output]
root = %q
%s
`, server.URL+"/device/event.json", root, extra)
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	return cfgPath, root, fake
}

func runDir(root string) string {
	return filepath.Join(root, output.DirName(testStartedAt))
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "maude", rootCmd.Use)
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
}

func TestRootCmd_RunsAllThemes(t *testing.T) {
	cfgPath, root, fake := setupRun(t, "")

	out, err := executeCommand(t, "--config", cfgPath)
	require.NoError(t, err)

	dir := runDir(root)
	for _, name := range []string{
		"audit_trail.log",
		"results.db",
		"open_fda_ml_results.html",
		"open_fda_ml_results.xlsx",
		"open_fda_algorithms_results.html",
		"open_fda_algorithms_results.xlsx",
		"open_fda_algorithms_diagnostic_results.html",
		"open_fda_algorithms_diagnostic_results.xlsx",
	} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	queries := fake.received()
	require.Len(t, queries, 3)
	assert.True(t, strings.HasPrefix(queries[0], "search=%22artificial+intelligence"), queries[0])
	assert.True(t, strings.HasPrefix(queries[1], "search=algorithm*&limit=500"), queries[1])
	assert.Contains(t, queries[2], "diagnostic")

	assert.Contains(t, out, "Investigation summary")
	assert.Contains(t, out, "Completed 3 theme(s)")
}

func TestRootCmd_ReportContents(t *testing.T) {
	cfgPath, root, _ := setupRun(t, "")

	_, err := executeCommand(t, "--config", cfgPath)
	require.NoError(t, err)

	html, err := os.ReadFile(filepath.Join(runDir(root), "open_fda_algorithms_results.html"))
	require.NoError(t, err)

	// Only the suspect-device report survives; labels follow the filters.
	assert.Contains(t, string(html), `<h3 id="ALG-1">Result ALG-1</h3>`)
	assert.NotContains(t, string(html), "ALG-2")
	assert.Contains(t, string(html), `the <b style="color:red;">algorithm</b> miscalculated the dose.`)
	assert.Contains(t, string(html), "<b>Has Relevant Problem Type</b>: true")

	audit, err := os.ReadFile(filepath.Join(runDir(root), "audit_trail.log"))
	require.NoError(t, err)
	assert.Contains(t, string(audit), "Executing query")
	assert.Contains(t, string(audit), "run_id")
}

func TestRootCmd_APIKeyStaysOutOfOutputs(t *testing.T) {
	cfgPath, root, fake := setupRun(t, "")
	t.Setenv("MAUDE_API_KEY", "s3cret")

	_, err := executeCommand(t, "--config", cfgPath)
	require.NoError(t, err)

	for _, q := range fake.received() {
		assert.Contains(t, q, "api_key=s3cret")
	}
	for _, name := range []string{"audit_trail.log", "open_fda_ml_results.html"} {
		data, err := os.ReadFile(filepath.Join(runDir(root), name))
		require.NoError(t, err)
		assert.NotContains(t, string(data), "s3cret", name)
	}
}

func TestRootCmd_APIFailure(t *testing.T) {
	cfgPath, root, fake := setupRun(t, "")
	fake.status = http.StatusInternalServerError

	out, err := executeCommand(t, "--config", cfgPath)
	require.Error(t, err)
	assert.Contains(t, out, "Run failed")

	// The directory and archive exist even though no report was written.
	assert.FileExists(t, filepath.Join(runDir(root), "results.db"))
	assert.NoFileExists(t, filepath.Join(runDir(root), "open_fda_ml_results.html"))
}

func TestRootCmd_RejectsArgs(t *testing.T) {
	_, err := executeCommand(t, "algorithm")
	assert.Error(t, err)
}

func TestRootCmd_BadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "maude.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api\n"), 0o600))

	_, err := executeCommand(t, "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config")
}

func TestSetVersion(t *testing.T) {
	originalVersion := version
	defer func() { version = originalVersion }()

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)

	SetVersion("")
	assert.Equal(t, "1.2.3", version)
}
