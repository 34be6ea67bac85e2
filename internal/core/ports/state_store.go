package ports

import "go.trai.ch/projsync/internal/core/domain"

// StateStore persists the project generation state across process restarts.
//
//go:generate go run go.uber.org/mock/mockgen -source=state_store.go -destination=mocks/mock_state_store.go -package=mocks
type StateStore interface {
	// Get returns the stored state, or the zero state if none was stored yet.
	Get() (domain.ProjectState, error)

	// Put replaces the stored state.
	Put(state domain.ProjectState) error
}
