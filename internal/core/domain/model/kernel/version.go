package kernel

// Versioned carries the optimistic-lock version of an aggregate.
// Repositories read it before an update and store the incremented value after.
type Versioned struct {
	version int64
}

// Version returns the last persisted version. Zero means never persisted.
func (v *Versioned) Version() int64 {
	return v.version
}

// SetVersion is called by repositories after a successful write or when restoring.
func (v *Versioned) SetVersion(version int64) {
	v.version = version
}
