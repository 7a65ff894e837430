package data

import (
	"github.com/pkg/errors"

	"github.com/backmassage/phonesub/internal/rules"
)

// Logger is the subset of the CLI logger used while building the catalog.
type Logger interface {
	Warn(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// LoadCatalog loads the data set from dir and builds the rule catalog.
//
// Outside strict mode, a malformed file or invalid rule data is logged and
// an empty catalog is returned instead, so every query yields
// [rules.NoReplacements]. In strict mode the error is returned. Known kinds
// missing from a valid catalog are logged as warnings in both modes.
func LoadCatalog(dir string, strict, verbose bool, log Logger) (*Dataset, *rules.Catalog, error) {
	ds, err := Load(dir)
	if err != nil {
		if strict {
			return nil, nil, err
		}
		log.Warn("Cannot load data: %v", err)
		log.Warn("Continuing with no phonemes or rules")
		return &Dataset{}, rules.NewEmpty(), nil
	}

	cat, err := rules.Build(ds.Rules)
	if err != nil {
		err = errors.Wrapf(err, "invalid rules in %s", sourceName(ds.RulesSource))
		if strict {
			return nil, nil, err
		}
		log.Warn("%v", err)
		log.Warn("Continuing with no rules")
		return ds, rules.NewEmpty(), nil
	}

	log.Debug(verbose, "Phonemes: %d from %s", len(ds.Phonemes), sourceName(ds.PhonemesSource))
	log.Debug(verbose, "Rules: %d from %s", cat.Len(), sourceName(ds.RulesSource))
	for _, r := range cat.Rules() {
		log.Debug(verbose, "  %s: %d pair(s)", r.Name, r.Mapping.Len())
	}
	for _, k := range cat.Missing() {
		log.Warn("%s not defined; %s suggestions disabled", k.RuleName(), k)
	}
	return ds, cat, nil
}

func sourceName(path string) string {
	if path == "" {
		return "(not found)"
	}
	return path
}
