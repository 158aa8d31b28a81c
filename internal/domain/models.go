package domain

// EntryKind is the Type= tag of a desktop descriptor
type EntryKind string

const (
	KindApplication EntryKind = "Application"
	KindLink        EntryKind = "Link"
	KindDirectory   EntryKind = "Directory"
	KindUnknown     EntryKind = "Unknown"
)

// Descriptor is one parsed .desktop file as handed to the entry store.
// Only application-kind descriptors with a non-empty Exec are launchable;
// everything else is dropped at store construction.
type Descriptor struct {
	Kind       EntryKind
	Name       string
	Exec       string
	Keywords   []string
	Categories []string
	Comment    string
	Path       string // source file, kept for inspection
	Hidden     bool   // NoDisplay=true or Hidden=true
	Terminal   bool
}

// ScanProgress represents the current scanning state
type ScanProgress struct {
	IsScanning   bool
	EntriesFound int
	CurrentPath  string
}
