// Package fileutil holds shared filesystem constants for output writing.
package fileutil

import "os"

// OwnerReadWrite is the file permission mode for spec output files
// containing potentially sensitive API data (owner read/write only).
const OwnerReadWrite os.FileMode = 0o600

// OwnerReadWriteExec is the directory permission mode for generated
// fragment trees (owner full access, group read/execute).
const OwnerReadWriteExec os.FileMode = 0o750
