package splitter

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/specweld/specweld/internal/fileutil"
	"github.com/specweld/specweld/internal/nodeutil"
)

// WriteResult writes the planned fragments under
// <specDir>/<version>/<category>/, creating directories as needed. Files
// are written with restrictive permissions (owner read/write only).
func WriteResult(result *Result, specDir string) error {
	if result == nil || result.Set == nil {
		return fmt.Errorf("splitter: result has no fragments to write")
	}

	versionDir := filepath.Join(specDir, result.Set.Version)
	for _, frag := range result.Set.Fragments() {
		data, err := nodeutil.EncodeYAML(frag.Doc)
		if err != nil {
			return fmt.Errorf("encoding fragment %s: %w", frag.RelPath, err)
		}
		target := filepath.Join(versionDir, filepath.FromSlash(frag.RelPath))
		if err := os.MkdirAll(filepath.Dir(target), fileutil.OwnerReadWriteExec); err != nil {
			return fmt.Errorf("creating fragment directory: %w", err)
		}
		if err := os.WriteFile(target, data, fileutil.OwnerReadWrite); err != nil {
			return fmt.Errorf("writing fragment %s: %w", frag.RelPath, err)
		}
	}
	return nil
}
