package domain

import "fmt"

// RootHandle identifies a stats root owned by the host arena.
// A handle is only valid while its generation matches the arena slot's generation,
// so a freed and reused slot never aliases an older handle.
type RootHandle struct {
	Slot       uint32
	Generation uint32
}

// IsZero reports whether h is the zero handle. The arena never issues generation 0.
func (h RootHandle) IsZero() bool {
	return h.Generation == 0
}

func (h RootHandle) String() string {
	return fmt.Sprintf("root#%d.%d", h.Slot, h.Generation)
}
