package cmd

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout redirects os.Stdout for the duration of fn and returns
// everything written to it. runRoot prints each domain's result line via
// fmt.Println directly to os.Stdout, so this is the only way to observe
// it from outside the process.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func writeProgram(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prog.while")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

// resetFlags restores the package-level flag variables to their default
// values before each test: pflag only assigns a variable when its flag is
// present in the parsed args, so a value set by one SetArgs/Execute call
// would otherwise leak into the next test that omits that flag.
func resetFlags(t *testing.T) {
	t.Helper()
	cfgFile, astPath, domainFlag, modulus, verbose = "", "", nil, 3, false
}

func TestRootCommandRunsNamedDomain(t *testing.T) {
	resetFlags(t)
	path := writeProgram(t, "x := 5; y := x + 3")
	rootCmd.SetArgs([]string{"--domain", "sign", path})

	out := captureStdout(t, func() {
		require.NoError(t, rootCmd.Execute())
	})
	assert.Contains(t, out, "sign domain: [x -> +, y -> +]")
}

func TestRootCommandDefaultsToAllDomains(t *testing.T) {
	resetFlags(t)
	path := writeProgram(t, "x := 5")
	rootCmd.SetArgs([]string{path})

	out := captureStdout(t, func() {
		require.NoError(t, rootCmd.Execute())
	})
	assert.Contains(t, out, "sign domain:")
	assert.Contains(t, out, "interval domain:")
	assert.Contains(t, out, "concrete: [x -> 5]")
}

func TestRootCommandReadsFromStdinByDefault(t *testing.T) {
	resetFlags(t)
	oldStdin := os.Stdin
	r, w, err := os.Pipe()
	require.NoError(t, err)
	_, err = w.WriteString("x := 1")
	require.NoError(t, err)
	require.NoError(t, w.Close())
	os.Stdin = r
	defer func() { os.Stdin = oldStdin }()

	rootCmd.SetArgs([]string{"--domain", "sign"})
	out := captureStdout(t, func() {
		require.NoError(t, rootCmd.Execute())
	})
	assert.Contains(t, out, "sign domain: [x -> +]")
}

func TestRootCommandSurfacesParseErrors(t *testing.T) {
	resetFlags(t)
	path := writeProgram(t, "x := ")
	rootCmd.SetArgs([]string{"--domain", "sign", path})
	err := rootCmd.Execute()
	assert.Error(t, err)
}

func TestRootCommandWritesASTFile(t *testing.T) {
	resetFlags(t)
	prog := writeProgram(t, "x := 1")
	astPath := filepath.Join(t.TempDir(), "out.dot")
	rootCmd.SetArgs([]string{"--domain", "sign", "--ast", astPath, prog})

	captureStdout(t, func() {
		require.NoError(t, rootCmd.Execute())
	})
	contents, err := os.ReadFile(astPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(contents), "strict digraph AST {"))
}

func TestRootCommandDivisionByZeroUnderConcreteErrors(t *testing.T) {
	resetFlags(t)
	path := writeProgram(t, "x := 10; y := x / 0")
	rootCmd.SetArgs([]string{"--domain", "concrete", path})
	err := rootCmd.Execute()
	assert.Error(t, err)
}
