package blueprint

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	backer "github.com/ejjonny/backer-sub000"
)

func TestLoad_Formats(t *testing.T) {
	want := []Drawn{
		{Label: "sidebar", Rect: backer.NewRect(0, 0, 20, 100)},
		{Label: "header", Rect: backer.NewRect(30, 0, 70, 10)},
		{Label: "body", Rect: backer.NewRect(35, 15, 60, 80)},
	}

	for _, name := range []string{"sidebar.yaml", "sidebar.toml"} {
		t.Run(name, func(t *testing.T) {
			bp, err := Load(filepath.Join("testdata", name))
			require.NoError(t, err)
			assert.Equal(t, []string{"sidebar", "header", "body", "hidden"}, bp.Labels())
			assert.Equal(t, want, draw(bp).Drawn)
		})
	}
}

func TestFormatFromPath(t *testing.T) {
	type tc struct {
		path    string
		want    Format
		wantErr bool
	}

	tests := map[string]tc{
		"yaml":   {path: "a.yaml", want: FormatYAML},
		"yml":    {path: "dir/a.YML", want: FormatYAML},
		"toml":   {path: "a.toml", want: FormatTOML},
		"json":   {path: "a.json", wantErr: true},
		"no ext": {path: "layout", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	type tc struct {
		data      string
		format    Format
		wantParse bool
		wantLine  int
		wantMsg   string
	}

	tests := map[string]tc{
		"yaml syntax": {
			data:      "kind: [row",
			format:    FormatYAML,
			wantParse: true,
		},
		"yaml unknown field": {
			data:      "kind: row\ncolour: red\n",
			format:    FormatYAML,
			wantParse: true,
		},
		"toml syntax": {
			data:      "kind = \"row\"\nspacing = = 1\n",
			format:    FormatTOML,
			wantParse: true,
			wantLine:  2,
		},
		"toml unknown field": {
			data:      "kind = \"row\"\ncolour = \"red\"\n",
			format:    FormatTOML,
			wantParse: true,
		},
		"invalid tree": {
			data:    "kind: draw\nexpand: z\n",
			format:  FormatYAML,
			wantMsg: `invalid blueprint: root: unknown expand "z"`,
		},
		"group root": {
			data:    "kind: group\nchildren:\n  - kind: draw\n    label: a\n",
			format:  FormatYAML,
			wantMsg: "invalid blueprint: root: group must be inside a container",
		},
		"unknown format": {
			data:    "",
			format:  "json",
			wantMsg: `unknown blueprint format "json"`,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			require.Error(t, err)

			var perr *ParseError
			assert.Equal(t, tt.wantParse, errors.As(err, &perr))
			if tt.wantParse {
				assert.Equal(t, "<input>", perr.Path)
				assert.NotNil(t, perr.Unwrap())
			}
			if tt.wantLine > 0 {
				assert.Equal(t, tt.wantLine, perr.Line)
			}
			if tt.wantMsg != "" {
				assert.EqualError(t, err, tt.wantMsg)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(filepath.Join(dir, "layout.json"))
	assert.ErrorContains(t, err, "unsupported blueprint extension")

	path := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(path, []byte("kind = \"grid\"\n"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, `root: unknown kind "grid"`)
}

func TestMarshal_RoundTrip(t *testing.T) {
	bp, err := Load(filepath.Join("testdata", "sidebar.yaml"))
	require.NoError(t, err)

	for _, format := range []Format{FormatYAML, FormatTOML} {
		t.Run(string(format), func(t *testing.T) {
			data, err := Marshal(bp, format)
			require.NoError(t, err)

			back, err := Parse(data, format)
			require.NoError(t, err)
			assert.Equal(t, draw(bp).Drawn, draw(back).Drawn)
		})
	}
}
