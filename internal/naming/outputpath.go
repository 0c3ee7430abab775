package naming

import "path/filepath"

// TargetPath returns where source ends up when renamed to name. Renames
// never move a file to another directory.
func TargetPath(source, name string) string {
	return filepath.Join(filepath.Dir(source), name)
}
