package suite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"digital.vasic.matchers/pkg/contain"
)

func writeBankFile(
	t *testing.T, dir, name, content string,
) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t,
		os.WriteFile(path, []byte(content), 0o644))
	return path
}

const jsonBank = `{
  "version": "1",
  "checks": [
    {
      "kind": "all_of",
      "target": "numbers",
      "expected": [1, 2],
      "message": "core numbers present"
    },
    {
      "kind": "none_of",
      "target": "numbers",
      "expected": [9]
    }
  ]
}`

const yamlBank = `version: "1"
checks:
  - kind: in_order
    target: numbers
    expected: [1, 3]
  - kind: same_elements
    target: letters
    expected: [b, a]
`

func TestLoadBankFromFile_JSON(t *testing.T) {
	path := writeBankFile(
		t, t.TempDir(), "bank.json", jsonBank,
	)

	bank, err := LoadBankFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "1", bank.Version)
	require.Len(t, bank.Checks, 2)
	assert.Equal(t,
		contain.KindAllOf, bank.Checks[0].Kind)
	assert.Equal(t, "numbers", bank.Checks[0].Target)
	assert.Equal(t,
		"core numbers present", bank.Checks[0].Message)
	assert.Equal(t,
		contain.KindNoneOf, bank.Checks[1].Kind)
}

func TestLoadBankFromFile_YAML(t *testing.T) {
	path := writeBankFile(
		t, t.TempDir(), "bank.yaml", yamlBank,
	)

	bank, err := LoadBankFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "1", bank.Version)
	require.Len(t, bank.Checks, 2)
	assert.Equal(t,
		contain.KindInOrder, bank.Checks[0].Kind)
	assert.Equal(t,
		[]any{"b", "a"}, bank.Checks[1].Expected)
}

func TestLoadBankFromFile_UnsupportedExtension(t *testing.T) {
	path := writeBankFile(
		t, t.TempDir(), "bank.txt", jsonBank,
	)

	_, err := LoadBankFromFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(),
		"unsupported bank file extension")
}

func TestLoadBankFromFile_MissingFile(t *testing.T) {
	_, err := LoadBankFromFile(
		filepath.Join(t.TempDir(), "nope.json"),
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")
}

func TestLoadBankFromFile_MalformedJSON(t *testing.T) {
	path := writeBankFile(
		t, t.TempDir(), "bad.json", "{not json",
	)

	_, err := LoadBankFromFile(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoadBankFromDir_MergesAndSkips(t *testing.T) {
	dir := t.TempDir()
	writeBankFile(t, dir, "a.json", jsonBank)
	writeBankFile(t, dir, "b.yaml", yamlBank)
	writeBankFile(t, dir, "notes.txt", "ignore me")
	require.NoError(t,
		os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	bank, err := LoadBankFromDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "1", bank.Version)
	assert.Len(t, bank.Checks, 4)
}

// Loaded definitions evaluate end to end against Go values.
func TestLoadBankFromFile_EvaluatesAgainstValues(t *testing.T) {
	path := writeBankFile(
		t, t.TempDir(), "bank.json", jsonBank,
	)
	bank, err := LoadBankFromFile(path)
	require.NoError(t, err)

	results := NewEngine().EvaluateAll(
		bank.Checks,
		map[string][]any{"numbers": {1, 2, 3}},
	)

	require.Len(t, results, 2)
	for _, r := range results {
		assert.True(t, r.Passed(), r.Outcome.FailureMessage)
	}
}
