//go:build basic || database

package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	// sharedFipulsePath holds the path to a shared fipulse binary built once for all tests.
	sharedFipulsePath string

	// buildOnce ensures we only build the binary once.
	buildOnce sync.Once

	// buildMutex protects the shared binary path.
	buildMutex sync.Mutex

	// tempDir holds the temp directory for cleanup.
	tempDir string
)

const fixtureDataCSV = `record_id,record_type,pillar,indicator,indicator_code,gender,unit,value_type,confidence,fiscal_year,value_numeric
r1,historical,access,Account Ownership Rate,acct_own,all,percent,percentage,high,2011,22.0
r2,historical,access,Account Ownership Rate,acct_own,all,percent,percentage,high,2014,26.0
r3,historical,access,Account Ownership Rate,acct_own,all,percent,percentage,high,2017,35.0
r4,historical,access,Account Ownership Rate,acct_own,all,percent,percentage,high,2021,46.0
r5,historical,access,Account Ownership Rate,acct_own,all,percent,percentage,high,2024,49.0
r6,historical,usage,Mobile Money Activity Rate,mm_active,all,percent,percentage,medium,2021,4.0
r7,historical,usage,Mobile Money Activity Rate,mm_active,all,percent,percentage,medium,2024,9.0
`

const fixtureImpactsCSV = `event,acct_own,mm_active
digital_id_rollout,1.5,2.0
telecom_expansion,0.0,1.0
`

const fixtureScheduleCSV = `event,year
digital_id_rollout,2026
digital_id_rollout,2027
telecom_expansion,2026
`

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

// getFipulseBinary returns the path to the fipulse binary, building it once if needed.
func getFipulseBinary() string {
	buildMutex.Lock()
	defer buildMutex.Unlock()

	buildOnce.Do(func() {
		// Create a temp directory for the binary
		var err error
		tempDir, err = os.MkdirTemp("", "fipulse-integration-*")
		if err != nil {
			panic(fmt.Sprintf("failed to create temp dir: %v", err))
		}

		fipulsePath := filepath.Join(tempDir, "fipulse")
		buildCmd := exec.Command("go", "build", "-o", fipulsePath, ".")
		buildCmd.Dir = ".." // Build from parent directory (project root)
		err = buildCmd.Run()
		if err != nil {
			panic(fmt.Sprintf("failed to build fipulse: %v", err))
		}

		sharedFipulsePath = fipulsePath
	})

	return sharedFipulsePath
}

// writeFixtureFiles lays out the dataset and event CSVs in a fresh directory.
func writeFixtureFiles(t *testing.T) (dataFile, impactsFile, scheduleFile string) {
	t.Helper()
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write fixture %s: %v", name, err)
		}
		return path
	}

	return write("data.csv", fixtureDataCSV),
		write("impacts.csv", fixtureImpactsCSV),
		write("schedule.csv", fixtureScheduleCSV)
}

func runFipulseCommand(t *testing.T, args ...string) error {
	fipulsePath := getFipulseBinary()
	cmd := exec.Command(fipulsePath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
