package ports

// ServiceController manages an OS-level background service.
type ServiceController interface {
	// IsActive reports whether the named unit is currently running.
	IsActive(unit string) (bool, error)
	Restart(unit string) error
}
