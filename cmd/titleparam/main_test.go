package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testManifest = `version: "1"
index: pages.json
params:
  page:
    type: title
    aliases: [p]
  see:
    type: title
    islist: true
    mustExist: false
    default: Main Page
`

func TestRun(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		expectedExit int
	}{
		{name: "Success", args: []string{"resolve", "p=Main_Page"}, expectedExit: exitOK},
		{name: "Missing page", args: []string{"resolve", "page=Nowhere"}, expectedExit: exitRejected},
		{name: "Missing required", args: []string{"resolve"}, expectedExit: exitRejected},
		{name: "Unknown flag", args: []string{"resolve", "--bogus"}, expectedExit: exitFailure},
		{name: "Missing config", args: []string{"resolve", "-c", "nope.yaml", "page=Main_Page"}, expectedExit: exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "titleparam.yaml"), []byte(testManifest), 0o600))
			require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "pages.json"), []byte(`["Main Page"]`), 0o600))

			t.Chdir(tmpDir)

			assert.Equal(t, tt.expectedExit, run(tt.args))
		})
	}
}
