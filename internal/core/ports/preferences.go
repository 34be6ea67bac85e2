package ports

// PreferenceStore is a persisted key-value store for user preferences.
//
//go:generate go run go.uber.org/mock/mockgen -source=preferences.go -destination=mocks/mock_preferences.go -package=mocks
type PreferenceStore interface {
	// GetInt returns the value stored under key, or def if none is stored.
	GetInt(key string, def int) int

	// SetInt stores value under key and persists it.
	SetInt(key string, value int) error
}
