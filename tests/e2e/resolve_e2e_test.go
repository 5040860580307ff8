package e2e

import (
	"os"
	"os/exec"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"pom-version-checker/tests/testutil"
)

func TestResolveCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)

	cmd := exec.Command("go", "run", "./cmd/pom-version-checker", "resolve",
		"--log-level", "error",
		testutil.Fixture(t, "sample-project"),
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.Output()
	require.NoError(t, err, string(out))

	want := "project com.acme:orders:1.0.0\n" +
		"standalone:\n" +
		"  org.slf4j:slf4j-api 2.0.9 -> ? ok\n" +
		"  com.fasterxml.jackson.core:jackson-databind 2.15.2 -> ? ok\n" +
		"  com.acme:orders-core 1.0.0 -> ? ok [orders-api]\n" +
		"  org.apache.kafka:kafka-clients UNRESOLVED -> ? ok [orders-worker]\n" +
		"inherited from com.acme:orders:1.0.0:\n" +
		"  com.fasterxml.jackson.core:jackson-databind 2.15.2 -> ? ok [orders-api]\n" +
		"0 outdated\n"
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestMissingProjectExitCodeE2E(t *testing.T) {
	root := testutil.RepoRoot(t)

	cmd := exec.Command("go", "run", "./cmd/pom-version-checker", "com.acme", "fixtures/does-not-exist")
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	err := cmd.Run()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.NotZero(t, exitErr.ExitCode())
}
