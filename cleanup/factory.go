package cleanup

import (
	"errors"
	"fmt"
	"strings"

	"github.com/crafted-tech/logonapp/installer"
	"github.com/crafted-tech/logonapp/platform"
)

// Plan names a predefined set of strategies.
type Plan string

const (
	PlanLegacyFiles       Plan = "legacy-files"
	PlanDirectories       Plan = "directories"
	PlanRegistry          Plan = "registry"
	PlanAuthPointRegistry Plan = "authpoint-registry"
	PlanFull              Plan = "full"
	PlanUninstall         Plan = "uninstall"
)

// Strategy names as they appear in the logs.
const (
	NameLegacyFiles       = "V3 Files Cleanup Strategy"
	NameDirectories       = "V4 Files Cleanup Strategy"
	NameRegistry          = "Registry Entries Cleanup Strategy"
	NameAuthPointRegistry = "AuthPoint Registry Cleanup Strategy"
	NameSingleFile        = "Single File Cleanup Strategy"
)

// ErrUnknownPlan is returned by Build and ParsePlan for unrecognised plans.
var ErrUnknownPlan = errors.New("unknown cleanup plan")

var plans = []Plan{
	PlanLegacyFiles,
	PlanDirectories,
	PlanRegistry,
	PlanAuthPointRegistry,
	PlanFull,
	PlanUninstall,
}

// Plans returns every known plan.
func Plans() []Plan {
	return append([]Plan(nil), plans...)
}

// ParsePlan maps a plan name to a Plan.
func ParsePlan(name string) (Plan, error) {
	for _, p := range plans {
		if strings.EqualFold(string(p), strings.TrimSpace(name)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPlan, name)
}

// Factory builds strategies and managers from a fixed set of targets.
type Factory struct {
	targets  Targets
	registry platform.Registry
}

// NewFactory returns a factory over targets and reg.
func NewFactory(targets Targets, reg platform.Registry) *Factory {
	return &Factory{targets: targets, registry: reg}
}

// Build returns a manager holding the strategies of plan.
func (f *Factory) Build(plan Plan, log *installer.Logger) (*Manager, error) {
	var strategies []Strategy
	switch plan {
	case PlanLegacyFiles:
		strategies = []Strategy{f.LegacyFiles()}
	case PlanDirectories:
		strategies = []Strategy{f.Directories()}
	case PlanRegistry:
		strategies = []Strategy{f.RegistryKeys()}
	case PlanAuthPointRegistry:
		strategies = []Strategy{f.AuthPointRegistry()}
	case PlanFull:
		strategies = []Strategy{f.LegacyFiles(), f.Directories(), f.RegistryKeys()}
	case PlanUninstall:
		strategies = []Strategy{f.LegacyFiles(), f.Directories(), f.RegistryKeys(), f.AuthPointRegistry()}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPlan, plan)
	}

	m := NewManager(log)
	for _, s := range strategies {
		m.Add(s)
	}
	return m, nil
}

// LegacyFiles returns the v3 file cleanup strategy.
func (f *Factory) LegacyFiles() *FileStrategy {
	return NewFileStrategy(NameLegacyFiles, "V3 Files", f.targets.LegacyFiles...)
}

// LegacyConfig returns a strategy deleting only the legacy config file.
func (f *Factory) LegacyConfig() *FileStrategy {
	return NewFileStrategy(NameSingleFile, "", f.targets.LegacyConfig)
}

// Directories returns the v4 folder cleanup strategy.
func (f *Factory) Directories() *DirectoryStrategy {
	return NewDirectoryStrategy(NameDirectories, "V4 Files", f.targets.Directories...)
}

// RegistryKeys returns the credential provider registry cleanup strategy.
func (f *Factory) RegistryKeys() *RegistryKeysStrategy {
	return NewRegistryKeysStrategy(NameRegistry, f.registry, f.targets.RegistryKeys...)
}

// AuthPointRegistry returns the registry search strategy.
func (f *Factory) AuthPointRegistry() *RegistrySearchStrategy {
	return NewRegistrySearchStrategy(NameAuthPointRegistry, f.registry, f.targets.Search)
}
