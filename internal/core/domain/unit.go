package domain

// CompilationUnit is one translation unit compiled into one object file.
type CompilationUnit struct {
	// SourcePath is the absolute path of the source file.
	SourcePath string
	// RelativePath is the source path relative to the project root, used in diagnostics.
	RelativePath string
	// TreePath is the source path relative to the source directory, mirrored beneath the object root.
	TreePath string
}

// ObjectPath returns the unit's object file beneath objRoot.
func (u CompilationUnit) ObjectPath(objRoot string) string {
	return ObjectPath(objRoot, u.TreePath)
}

// Verdict is the staleness decision for one unit together with its derived paths.
type Verdict struct {
	Unit        CompilationUnit
	ObjectPath  string
	DepfilePath string
	Stale       bool
	// Reason explains a stale verdict. Empty when fresh.
	Reason string
}
