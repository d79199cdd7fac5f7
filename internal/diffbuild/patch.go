// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package diffbuild

import (
	"fmt"
	"os"
	"strings"
)

// EnsureBibliography patches a known latexdiff limitation: flatten mode
// strips the \bibliography directive from the merged document. When the
// file lacks one, the directive is inserted immediately after the
// \bibliographystyle line, naming the given bibliography resource. When
// neither directive exists the document has no bibliography and the file
// is left untouched.
//
// It returns whether the file was modified.
func EnsureBibliography(path, resource string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	content := string(data)

	if strings.Contains(content, `\bibliography{`) {
		return false, nil
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if !strings.Contains(line, `\bibliographystyle{`) {
			continue
		}
		directive := fmt.Sprintf(`\bibliography{%s}`, resource)
		patched := make([]string, 0, len(lines)+1)
		patched = append(patched, lines[:i+1]...)
		patched = append(patched, directive)
		patched = append(patched, lines[i+1:]...)
		if err := os.WriteFile(path, []byte(strings.Join(patched, "\n")), 0o644); err != nil {
			return false, fmt.Errorf("writing %s: %w", path, err)
		}
		return true, nil
	}

	return false, nil
}
