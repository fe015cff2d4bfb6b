// Package presets holds the built-in dimension tables: per package kind, a
// set of well known parts by name. Tables are filled at init and never
// modified afterwards, so lookups need no locking.
package presets

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jinzhu/copier"

	"github.com/OpenTraceLab/OpenTraceFPW/pkg/catalog"
	"github.com/OpenTraceLab/OpenTraceFPW/pkg/params"
)

// QueryPrefix marks a footprint name as a request to look up its
// dimensions.
const QueryPrefix = "?"

// ErrPresetNotFound is returned when a kind has no preset of the requested
// name.
var ErrPresetNotFound = errors.New("presets: preset not found")

var library = map[catalog.PackageKind]map[string]params.Parameters{}

func add(p params.Parameters) {
	table, ok := library[p.Type]
	if !ok {
		table = map[string]params.Parameters{}
		library[p.Type] = table
	}
	if _, dup := table[p.FootprintName]; dup {
		panic(fmt.Sprintf("presets: duplicate %s preset %q", p.Type, p.FootprintName))
	}
	table[p.FootprintName] = p
}

// IsQuery reports whether name asks for a preset lookup.
func IsQuery(name string) bool {
	return strings.HasPrefix(name, QueryPrefix)
}

// Lookup returns the preset called name for kind. A leading query prefix
// is ignored.
func Lookup(kind catalog.PackageKind, name string) (params.Parameters, error) {
	name = strings.TrimPrefix(name, QueryPrefix)
	if p, ok := library[kind][name]; ok {
		return p, nil
	}
	return params.Parameters{}, fmt.Errorf("%w: %s %q", ErrPresetNotFound, kind, name)
}

// callerFields are the Parameters fields a preset never overrides when the
// caller has set them. Fields are matched to Parameters by name.
type callerFields struct {
	FootprintFilename string
	Author            string
	DistLicense       string
	UseLicense        string
	Status            catalog.Status
}

// Apply overwrites the dimensions, counts and flags of dst with the preset
// called name. The caller's output filename, author, licenses and status
// win over the preset's when they are set. The stored footprint name never
// carries the query prefix. When the lookup fails dst keeps its values and
// the error is returned for the caller to report.
func Apply(dst *params.Parameters, name string) error {
	name = strings.TrimPrefix(name, QueryPrefix)
	preset, err := Lookup(dst.Type, name)
	if err != nil {
		dst.FootprintName = name
		return err
	}

	var kept callerFields
	if err := copier.Copy(&kept, dst); err != nil {
		dst.FootprintName = name
		return fmt.Errorf("presets: apply %q: %w", name, err)
	}
	merged := preset
	if err := copier.CopyWithOption(&merged, &kept, copier.Option{IgnoreEmpty: true}); err != nil {
		dst.FootprintName = name
		return fmt.Errorf("presets: apply %q: %w", name, err)
	}
	if merged.FootprintFilename == "" {
		merged.FootprintFilename = name + ".fp"
	}
	*dst = merged
	return nil
}

// Names returns the sorted preset names of kind.
func Names(kind catalog.PackageKind) []string {
	table := library[kind]
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Count returns the total number of presets.
func Count() int {
	n := 0
	for _, table := range library {
		n += len(table)
	}
	return n
}
