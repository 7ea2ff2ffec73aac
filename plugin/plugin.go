// Package plugin registers the collection plugin with the analyzer.
package plugin

import (
	"github.com/fp4php/functional-collection/analyzer/hook"
	"github.com/fp4php/functional-collection/internal/log"
	"github.com/fp4php/functional-collection/plugin/config"
	"github.com/fp4php/functional-collection/plugin/refine"
	"github.com/fp4php/functional-collection/plugin/suppress"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

var logger = log.Section("refine.plugin")

// Register installs the filter refinement provider and the unused call
// suppressor into registry, failing if the analyzer's plugin API is not
// one cfg supports
func Register(registry *hook.Registry, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid plugin config")
	}
	constraint, err := cfg.HostConstraint()
	if err != nil {
		return err
	}
	if ok, errs := constraint.Validate(registry.APIVersion()); !ok {
		return errors.Wrapf(multierror.Append(nil, errs...), "unsupported analyzer plugin API %s", registry.APIVersion())
	}

	families, err := enabledFamilies(cfg.Refine.Families)
	if err != nil {
		return err
	}
	registry.RegisterMethodReturnTypeProvider(families, refine.FilterProvider{})
	registry.RegisterBeforeAddIssueHandler(suppress.New(cfg.Suppress.Methods))
	logger.Info("registered collection plugin", "api", registry.APIVersion().String(), "families", len(families))
	return nil
}

func enabledFamilies(names []string) ([]string, error) {
	if len(names) == 0 {
		return refine.FamilyNames(), nil
	}
	var result *multierror.Error
	for _, name := range names {
		if _, ok := refine.KindOf(name); !ok {
			result = multierror.Append(result, errors.Errorf("unknown collection family %q", name))
		}
	}
	return names, result.ErrorOrNil()
}
