package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnolang/asciimath/check"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// run executes the command line with args and returns its standard output.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	// a missing configuration file means defaults
	args = append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...)

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRender(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		stdin    string
		args     []string
		expected string
	}{
		{
			name:     "arguments",
			args:     []string{"render", "root", "3", "16"},
			expected: "<mrow><mroot><mn>16</mn><mn>3</mn></mroot></mrow>\n",
		},
		{
			name:     "root command renders",
			args:     []string{"x^2"},
			expected: "<mrow><msup><mi>x</mi><mn>2</mn></msup></mrow>\n",
		},
		{
			name:     "standard input",
			stdin:    "x\n\ny\n",
			args:     []string{"render"},
			expected: "<mrow><mi>x</mi></mrow>\n<mrow><mi>y</mi></mrow>\n",
		},
		{
			name:     "block display",
			args:     []string{"render", "--display", "block", "x"},
			expected: `<math xmlns="http://www.w3.org/1998/Math/MathML" display="block"><mrow><mi>x</mi></mrow></math>` + "\n",
		},
		{
			name:     "wrapped",
			args:     []string{"render", "--wrap", "x"},
			expected: `<math xmlns="http://www.w3.org/1998/Math/MathML"><mrow><mi>x</mi></mrow></math>` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := run(t, tt.stdin, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestRenderInvalidDisplay(t *testing.T) {
	t.Parallel()
	_, err := run(t, "", "render", "--display", "sideways", "x")
	assert.Error(t, err)
}

func TestTokensAndTree(t *testing.T) {
	t.Parallel()
	out, err := run(t, "", "tokens", "x^2")
	require.NoError(t, err)
	assert.Contains(t, out, `Misc(Pow)`)
	assert.Equal(t, 3, strings.Count(out, "\n"))

	out, err = run(t, "", "tree", "x^2")
	require.NoError(t, err)
	assert.Equal(t, "Expression\n└── Pow\n    ├── base: Symbol(\"x\")\n    └── exp: Number(\"2\")\n", out)
}

func TestCheck(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.am")
	good := filepath.Join(dir, "good.am")
	require.NoError(t, os.WriteFile(bad, []byte("x^2\nb^"), 0o644))
	require.NoError(t, os.WriteFile(good, []byte("x^2"), 0o644))

	out, err := run(t, "", "check", dir)
	assert.ErrorIs(t, err, ErrIssuesFound)
	assert.Contains(t, out, "error: missing-operand")
	assert.Contains(t, out, bad+":2:2")
	assert.NotContains(t, out, "good.am")

	out, err = run(t, "", "check", good)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = run(t, "", "check")
	assert.Error(t, err)
}

func TestCheckJSON(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.am")
	require.NoError(t, os.WriteFile(bad, []byte("(a"), 0o644))

	out, err := run(t, "", "check", "--json", bad)
	assert.ErrorIs(t, err, ErrIssuesFound)

	var issues map[string][]check.Issue
	require.NoError(t, json.Unmarshal([]byte(out), &issues))
	require.Len(t, issues[bad], 1)
	assert.Equal(t, "unbalanced-delimiter", issues[bad][0].Rule)

	jsonPath := filepath.Join(dir, "issues.json")
	_, err = run(t, "", "check", "--json", "-o", jsonPath, bad)
	assert.ErrorIs(t, err, ErrIssuesFound)
	assert.FileExists(t, jsonPath)
}

func TestConvert(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	src := filepath.Join(dir, "a.am")
	outDir := filepath.Join(dir, "out")
	require.NoError(t, os.WriteFile(src, []byte("x^2\nsqrt y\n"), 0o644))

	out, err := run(t, "", "convert", "--format", "html", "--output-dir", outDir, dir)
	require.NoError(t, err)
	assert.Contains(t, out, src+" -> "+filepath.Join(outDir, "a.html")+" (2 formulas, 0 issues)")

	page, err := os.ReadFile(filepath.Join(outDir, "a.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "<msqrt><mi>y</mi></msqrt>")

	_, err = run(t, "", "convert", "--format", "pdf", dir)
	assert.Error(t, err)
}

func TestInit(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), ".asciimath.yaml")

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--config", path, "init"})
	require.NoError(t, root.Execute())
	assert.FileExists(t, path)

	root = NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--config", path, "init"})
	assert.Error(t, root.Execute())

	root = NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"--config", path, "init", "--force"})
	assert.NoError(t, root.Execute())
}

func TestConfigFileIsUsed(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "asciimath.toml")
	require.NoError(t, os.WriteFile(path, []byte("display = \"block\"\n"), 0o644))

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--config", path, "render", "x"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), `display="block"`)
}

func TestConvertNoCache(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	src := filepath.Join(dir, "a.am")
	cfg := filepath.Join(dir, "asciimath.toml")
	require.NoError(t, os.WriteFile(src, []byte("x^2\n"), 0o644))
	require.NoError(t, os.WriteFile(cfg,
		[]byte("cache_dir = \""+filepath.ToSlash(filepath.Join(dir, ".cache"))+"\"\n"), 0o644))

	convert := func(args ...string) string {
		root := NewRootCmd()
		var out bytes.Buffer
		root.SetOut(&out)
		root.SetErr(&bytes.Buffer{})
		root.SetArgs(append([]string{"--config", cfg, "convert"}, args...))
		require.NoError(t, root.Execute())
		return out.String()
	}

	assert.NotContains(t, convert(src), "unchanged")
	assert.Contains(t, convert(src), "unchanged")
	assert.NotContains(t, convert("--no-cache", src), "unchanged")
	assert.Contains(t, convert(src), "unchanged")
}
