// Package port defines the interfaces (ports) the service layer depends on,
// decoupling it from concrete implementations.
package port

// Cache provides generic caching with TTL.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
}
