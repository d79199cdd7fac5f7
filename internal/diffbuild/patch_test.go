// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package diffbuild

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureBibliography(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantPatched bool
		wantContent string
	}{
		{
			name: "inserts directive after style line",
			content: "\\section{Results}\n" +
				"\\bibliographystyle{plain}\n" +
				"\\end{document}\n",
			wantPatched: true,
			wantContent: "\\section{Results}\n" +
				"\\bibliographystyle{plain}\n" +
				"\\bibliography{references}\n" +
				"\\end{document}\n",
		},
		{
			name: "no-op when directive already present",
			content: "\\bibliographystyle{plain}\n" +
				"\\bibliography{references}\n",
			wantPatched: false,
		},
		{
			name:        "no-op when neither directive exists",
			content:     "\\section{Intro}\nplain text\n",
			wantPatched: false,
		},
		{
			name: "inserts exactly once after first style line",
			content: "\\bibliographystyle{plain}\n" +
				"\\bibliographystyle{alpha}\n",
			wantPatched: true,
			wantContent: "\\bibliographystyle{plain}\n" +
				"\\bibliography{references}\n" +
				"\\bibliographystyle{alpha}\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "root-diff.tex")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			patched, err := EnsureBibliography(path, "references")
			require.NoError(t, err)
			assert.Equal(t, tt.wantPatched, patched)

			got, err := os.ReadFile(path)
			require.NoError(t, err)
			if tt.wantPatched {
				assert.Equal(t, tt.wantContent, string(got))
				assert.Equal(t, 1, strings.Count(string(got), "\\bibliography{references}"))
			} else {
				assert.Equal(t, tt.content, string(got), "unpatched file must be unchanged")
			}
		})
	}
}

func TestEnsureBibliographyMissingFile(t *testing.T) {
	_, err := EnsureBibliography(filepath.Join(t.TempDir(), "absent.tex"), "references")
	require.Error(t, err)
}
