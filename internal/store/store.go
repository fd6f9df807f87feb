package store

// Store is a string-keyed snapshot store. Each key holds one serialized
// collection; writes replace the whole snapshot. Get reports false when the
// key has never been written.
type Store interface {
	Get(key string, value any) (bool, error)
	Put(key string, value any) error
	Delete(key string) error
}
