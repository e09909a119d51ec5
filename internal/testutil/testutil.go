// Package testutil holds helpers shared by tests
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/ayoisaiah/mastery/internal/osutil"
)

// GoldenTest produces the output of a test case along with the name of the
// golden file it is checked against. A nil output asserts that no golden
// file exists.
type GoldenTest interface {
	Output() ([]byte, string)
}

// CompareGoldenFile checks the output of tc against testdata/<name>.golden.
// Run the tests with -update to rewrite the files.
func CompareGoldenFile(t *testing.T, tc GoldenTest) {
	t.Helper()

	if runtime.GOOS == osutil.Windows {
		t.Skip("golden files use LF line endings")
	}

	output, name := tc.Output()

	if output == nil {
		f := filepath.Join("testdata", name+".golden")
		if _, err := os.Stat(f); err == nil {
			t.Fatalf("expected no output, but golden file exists: %s", f)
		}

		return
	}

	g := goldie.New(t, goldie.WithFixtureDir("testdata"))
	g.Assert(t, name, output)
}
