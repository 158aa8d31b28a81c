package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventEntryDiscovered EventType = "EntryDiscovered"
	EventError           EventType = "Error"
	EventScanStarted     EventType = "ScanStarted"
	EventScanCompleted   EventType = "ScanCompleted"
	EventScanRequested   EventType = "ScanRequested"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventEntryLaunched   EventType = "EntryLaunched"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// EntryDiscoveredEvent is emitted for every well-formed descriptor found
type EntryDiscoveredEvent struct {
	Descriptor Descriptor
}

func (e EntryDiscoveredEvent) Type() EventType { return EventEntryDiscovered }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ScanStartedEvent is emitted when descriptor discovery begins
type ScanStartedEvent struct {
	Paths []string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// ScanCompletedEvent is emitted when discovery has visited every directory
type ScanCompletedEvent struct {
	EntriesFound int
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// ScanRequestedEvent asks the discovery service to start a scan
type ScanRequestedEvent struct {
	Paths []string
}

func (e ScanRequestedEvent) Type() EventType { return EventScanRequested }

// ConfigLoadedEvent is emitted when configuration has been loaded
type ConfigLoadedEvent struct {
	Directories []string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// EntryLaunchedEvent is emitted after an application has been started
type EntryLaunchedEvent struct {
	Name string
	Exec string
}

func (e EntryLaunchedEvent) Type() EventType { return EventEntryLaunched }
