package cleanup

import "github.com/crafted-tech/logonapp/installer"

//go:generate mockgen -source=strategy.go -destination=mocks/strategy.go -package=mocks

// Strategy is one named unit of cleanup work.
//
// Execute reports whether every target ended up removed or was already
// absent. It logs its own progress and never panics on filesystem or
// registry errors.
type Strategy interface {
	Name() string
	Execute(log *installer.Logger) bool
}
