package export

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pi-reader/pkg/types"
)

func sampleProps() []types.Proposition {
	return []types.Proposition{
		{Number: "1", Text: "\"Cum ipsi (majores homines)\" -- § 1 <b>", Section: "Part I"},
		{Number: "2", Text: "", Section: "Part I"},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    types.OutputFormat
		wantErr bool
	}{
		{in: "", want: types.OutputJSON},
		{in: "json", want: types.OutputJSON},
		{in: "yaml", want: types.OutputYAML},
		{in: "xml", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleProps(), types.OutputJSON))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "[\n  {\n    \"number\": \"1\","), out)
	assert.Contains(t, out, "§ 1 <b>", "non-ASCII and HTML stay literal")
	assert.Contains(t, out, `"explanation": ""`)

	var decoded []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, map[string]string{
		"number":      "2",
		"text":        "",
		"explanation": "",
		"section":     "Part I",
	}, decoded[1])
}

func TestWrite_EmptyIsArray(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, nil, types.OutputJSON))
	assert.Equal(t, "[]\n", buf.String())
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, sampleProps(), types.OutputYAML))

	var decoded []types.Proposition
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, sampleProps(), decoded)
}

func TestWrite_UnknownFormat(t *testing.T) {
	assert.Error(t, Write(&bytes.Buffer{}, sampleProps(), "toml"))
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "propositions.json")
	require.NoError(t, WriteFile(path, sampleProps(), types.OutputJSON))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded []types.Proposition
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, sampleProps(), decoded)
}
