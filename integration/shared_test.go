//go:build basic || database

package integration

import (
	"database/sql"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/huangsam/repulse/internal/store"
	"github.com/huangsam/repulse/schema"
	"github.com/stretchr/testify/require"
)

var (
	// sharedRepulsePath holds the path to a shared repulse binary built once for all tests.
	sharedRepulsePath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

// TestMain handles setup and cleanup for all integration tests.
func TestMain(m *testing.M) {
	// Run all tests
	code := m.Run()

	// Cleanup the shared binary after all tests
	if tempDir != "" {
		_ = os.RemoveAll(tempDir)
	}

	os.Exit(code)
}

// getRepulseBinary returns the path to the repulse binary, building it once if needed.
func getRepulseBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "repulse-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		repulsePath := filepath.Join(tempDir, "repulse")
		buildCmd := exec.Command("go", "build", "-o", repulsePath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		if err := buildCmd.Run(); err != nil {
			panic(fmt.Sprintf("failed to build repulse: %v", err))
		}

		sharedRepulsePath = repulsePath
	})

	return sharedRepulsePath
}

// runRepulseCommand runs the binary inside dir with extra environment variables.
func runRepulseCommand(t *testing.T, dir string, env []string, args ...string) (string, error) {
	t.Helper()
	cmd := exec.Command(getRepulseBinary(), args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), env...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
	}
	return string(output), err
}

// startMonday is the first day of the seeded traffic table.
var startMonday = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// seedTraffic migrates the traffic table and inserts six weeks of rows
// the way the collector writes them.
func seedTraffic(t *testing.T, backend schema.DatabaseBackend, connStr string) {
	t.Helper()
	require.NoError(t, store.Migrate(backend, connStr, -1))

	db, err := store.Open(backend, connStr)
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	insert := "INSERT INTO traffic (timestamp, clones, views, total_downloads, total_stars) VALUES (?, ?, ?, ?, ?)"
	if backend == schema.PostgreSQLBackend {
		insert = "INSERT INTO traffic (timestamp, clones, views, total_downloads, total_stars) VALUES ($1, $2, $3, $4, $5)"
	}
	for i := range 42 {
		day := startMonday.AddDate(0, 0, i)
		_, err := db.Exec(insert, day.Format(time.RFC3339), 1, 2, 10*(i+1), i/7)
		require.NoError(t, err)
	}
}

// requireRows fails unless the traffic table holds n rows.
func requireRows(t *testing.T, db *sql.DB, n int) {
	t.Helper()
	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM traffic").Scan(&count))
	require.Equal(t, n, count)
}
