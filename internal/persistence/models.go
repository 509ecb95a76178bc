package persistence

import "time"

// Record is a raw key/value row as stored by the durable backend. The
// envelope bytes are opaque at this layer; integrity checking happens in
// the store package.
type Record struct {
	Key       string
	Envelope  []byte
	UpdatedAt time.Time
}
