package merger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/specweld/specweld/fragment"
	"github.com/specweld/specweld/internal/fileutil"
	"github.com/specweld/specweld/internal/nodeutil"
)

// WriteResult writes a merged specification to outputPath, creating parent
// directories as needed. A .json extension switches the encoding to JSON;
// anything else is written as YAML. The file is written with restrictive
// permissions (owner read/write only).
func WriteResult(result *Result, outputPath string) error {
	if result == nil || result.Spec == nil {
		return fmt.Errorf("merger: result has no spec to write")
	}

	var (
		data []byte
		err  error
	)
	if fragment.FormatForPath(outputPath) == fragment.FormatJSON {
		data, err = nodeutil.EncodeJSON(result.Spec.Doc)
	} else {
		data, err = nodeutil.EncodeYAML(result.Spec.Doc)
	}
	if err != nil {
		return fmt.Errorf("encoding full spec: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), fileutil.OwnerReadWriteExec); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(outputPath, data, fileutil.OwnerReadWrite); err != nil {
		return fmt.Errorf("writing full spec: %w", err)
	}
	return nil
}

// EncodeResult returns the merged specification bytes without writing them,
// in YAML or JSON per format.
func EncodeResult(result *Result, format fragment.Format) ([]byte, error) {
	if result == nil || result.Spec == nil {
		return nil, fmt.Errorf("merger: result has no spec to encode")
	}
	if format == fragment.FormatJSON {
		return nodeutil.EncodeJSON(result.Spec.Doc)
	}
	return nodeutil.EncodeYAML(result.Spec.Doc)
}
