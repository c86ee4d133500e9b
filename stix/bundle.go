package stix

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// Bundle is the envelope for exchanging a set of STIX objects.
type Bundle struct {
	BundleType string   `json:"type"`
	Identifier string   `json:"id"`
	Objects    []Object `json:"objects"`
}

// NewBundle builds a bundle over the given objects with a fresh
// "bundle--<v4>" identifier.
func NewBundle(objects ...Object) *Bundle {
	return &Bundle{
		BundleType: TypeBundle,
		Identifier: NewID(TypeBundle),
		Objects:    objects,
	}
}

// ID returns the bundle identifier.
func (b *Bundle) ID() string { return b.Identifier }

// Add appends an object to the bundle.
func (b *Bundle) Add(obj Object) {
	b.Objects = append(b.Objects, obj)
}

// Get returns the object with the given identifier, or false when no object
// matches. Observables match on their content-derived identifier.
func (b *Bundle) Get(id string) (Object, bool) {
	for _, obj := range b.Objects {
		if obj.ID() == id {
			return obj, true
		}
	}
	return Object{}, false
}

// Len returns the number of objects in the bundle.
func (b *Bundle) Len() int { return len(b.Objects) }

// IsEmpty reports whether the bundle contains no objects.
func (b *Bundle) IsEmpty() bool { return len(b.Objects) == 0 }

// FilterByType returns the objects whose discriminant matches objectType.
func (b *Bundle) FilterByType(objectType string) []Object {
	var matched []Object
	for _, obj := range b.Objects {
		if obj.Type() == objectType {
			matched = append(matched, obj)
		}
	}
	return matched
}

// CountByType returns the number of objects of the given type.
func (b *Bundle) CountByType(objectType string) int {
	count := 0
	for _, obj := range b.Objects {
		if obj.Type() == objectType {
			count++
		}
	}
	return count
}

// ObjectTypes returns the sorted set of distinct object types in the bundle.
func (b *Bundle) ObjectTypes() []string {
	seen := make(map[string]struct{})
	for _, obj := range b.Objects {
		seen[obj.Type()] = struct{}{}
	}
	types := make([]string, 0, len(seen))
	for t := range seen {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Identities returns every Identity object in the bundle.
func (b *Bundle) Identities() []*Identity {
	var out []*Identity
	for _, obj := range b.Objects {
		if v, ok := obj.AsIdentity(); ok {
			out = append(out, v)
		}
	}
	return out
}

// Malware returns every Malware object in the bundle.
func (b *Bundle) Malware() []*Malware {
	var out []*Malware
	for _, obj := range b.Objects {
		if v, ok := obj.AsMalware(); ok {
			out = append(out, v)
		}
	}
	return out
}

// Indicators returns every Indicator object in the bundle.
func (b *Bundle) Indicators() []*Indicator {
	var out []*Indicator
	for _, obj := range b.Objects {
		if v, ok := obj.AsIndicator(); ok {
			out = append(out, v)
		}
	}
	return out
}

// ThreatActors returns every ThreatActor object in the bundle.
func (b *Bundle) ThreatActors() []*ThreatActor {
	var out []*ThreatActor
	for _, obj := range b.Objects {
		if v, ok := obj.Value().(*ThreatActor); ok {
			out = append(out, v)
		}
	}
	return out
}

// AttackPatterns returns every AttackPattern object in the bundle.
func (b *Bundle) AttackPatterns() []*AttackPattern {
	var out []*AttackPattern
	for _, obj := range b.Objects {
		if v, ok := obj.Value().(*AttackPattern); ok {
			out = append(out, v)
		}
	}
	return out
}

// Campaigns returns every Campaign object in the bundle.
func (b *Bundle) Campaigns() []*Campaign {
	var out []*Campaign
	for _, obj := range b.Objects {
		if v, ok := obj.Value().(*Campaign); ok {
			out = append(out, v)
		}
	}
	return out
}

// Relationships returns every Relationship object in the bundle.
func (b *Bundle) Relationships() []*Relationship {
	var out []*Relationship
	for _, obj := range b.Objects {
		if v, ok := obj.AsRelationship(); ok {
			out = append(out, v)
		}
	}
	return out
}

// FindReferencesTo returns the objects that point at targetID: relationships
// whose source or target matches, and sightings of the object.
func (b *Bundle) FindReferencesTo(targetID string) []Object {
	var matched []Object
	for _, obj := range b.Objects {
		switch v := obj.Value().(type) {
		case *Relationship:
			if v.SourceRef == targetID || v.TargetRef == targetID {
				matched = append(matched, obj)
			}
		case *Sighting:
			if v.SightingOfRef == targetID {
				matched = append(matched, obj)
			}
		}
	}
	return matched
}

// UnmarshalJSON decodes each object independently: a bad object never aborts
// its siblings. All per-object failures are joined into the returned error,
// with the surviving objects kept on the bundle.
func (b *Bundle) UnmarshalJSON(data []byte) error {
	var raw struct {
		BundleType string            `json:"type"`
		Identifier string            `json:"id"`
		Objects    []json.RawMessage `json:"objects"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	b.BundleType = raw.BundleType
	b.Identifier = raw.Identifier
	b.Objects = b.Objects[:0]

	var decodeErrs []error
	for i, rawObj := range raw.Objects {
		var obj Object
		if err := json.Unmarshal(rawObj, &obj); err != nil {
			decodeErrs = append(decodeErrs, fmt.Errorf("object %d: %w", i, err))
			continue
		}
		b.Objects = append(b.Objects, obj)
	}
	return errors.Join(decodeErrs...)
}

// ParseBundle is the lenient loader for bundles from the wild: objects that
// fail to decode are skipped with a warning instead of surfacing an error.
// Pass zap.NewNop().Sugar() to silence it.
func ParseBundle(data []byte, logger *zap.SugaredLogger) (*Bundle, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	var raw struct {
		BundleType string            `json:"type"`
		Identifier string            `json:"id"`
		Objects    []json.RawMessage `json:"objects"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal bundle: %w", err)
	}
	if raw.BundleType != TypeBundle {
		return nil, fmt.Errorf("expected bundle, got type: %s", raw.BundleType)
	}

	logger.Infof("Parsing %d objects from bundle %s", len(raw.Objects), raw.Identifier)

	bundle := &Bundle{
		BundleType: raw.BundleType,
		Identifier: raw.Identifier,
	}

	stats := make(map[string]int)
	skipped := 0
	for i, rawObj := range raw.Objects {
		var obj Object
		if err := json.Unmarshal(rawObj, &obj); err != nil {
			logger.Warnf("Skipping object %d: %v", i, err)
			skipped++
			continue
		}
		stats[obj.Type()]++
		bundle.Objects = append(bundle.Objects, obj)
	}

	logger.Infof("Parsed %d objects (%d skipped): %v", bundle.Len(), skipped, stats)
	return bundle, nil
}
