package ports

import "time"

// Clock supplies the current time to command handlers. Injecting it
// keeps milestone timestamps and archival day boundaries deterministic
// in tests.
type Clock interface {
	Now() time.Time
}
