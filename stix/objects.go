package stix

import (
	"encoding/json"
	"time"

	"stixkit/pattern"
)

// Core domain objects: Identity, Malware, Indicator, Sighting. Each embeds
// CommonProperties so its common block flattens into the object on the wire,
// and carries a thin MarshalJSON/UnmarshalJSON pair to round-trip custom
// properties through the helpers in json.go.

// unmarshalWithCommon collects custom wire keys for an object whose typed
// fields (common block included) already consume the envelope discriminant.
func unmarshalWithCommon(data []byte, v any) (map[string]any, error) {
	return decodeExtras(data, v)
}

// Identity represents an individual, group, system or organization.
type Identity struct {
	CommonProperties
	Name          string        `json:"name"`
	IdentityClass IdentityClass `json:"identity_class,omitempty"`
	Sectors       []string      `json:"sectors,omitempty"`
}

// NewIdentityBuilder starts a fluent Identity builder.
func NewIdentityBuilder() *IdentityBuilder { return &IdentityBuilder{} }

// IdentityBuilder accumulates Identity fields; Build stamps the common block.
type IdentityBuilder struct {
	name          string
	identityClass IdentityClass
	sectors       []string
	createdByRef  string
	custom        map[string]any
}

func (b *IdentityBuilder) Name(name string) *IdentityBuilder {
	b.name = name
	return b
}

func (b *IdentityBuilder) IdentityClass(class IdentityClass) *IdentityBuilder {
	b.identityClass = class
	return b
}

func (b *IdentityBuilder) Sectors(sectors ...string) *IdentityBuilder {
	b.sectors = sectors
	return b
}

func (b *IdentityBuilder) CreatedByRef(ref string) *IdentityBuilder {
	b.createdByRef = ref
	return b
}

// Property records a custom property (e.g. "x_vendor_tag") to emit alongside
// the named fields.
func (b *IdentityBuilder) Property(key string, value any) *IdentityBuilder {
	if b.custom == nil {
		b.custom = make(map[string]any)
	}
	b.custom[key] = value
	return b
}

// Build assembles the Identity, assigning a fresh v4 identifier and
// timestamps. Name is required.
func (b *IdentityBuilder) Build() (*Identity, error) {
	if b.name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	common := NewCommonProperties(TypeIdentity, b.createdByRef)
	common.Custom = b.custom
	return &Identity{
		CommonProperties: common,
		Name:             b.name,
		IdentityClass:    b.identityClass,
		Sectors:          b.sectors,
	}, nil
}

func (i Identity) MarshalJSON() ([]byte, error) {
	type plain Identity
	return encodeWithExtras(plain(i), i.Custom)
}

func (i *Identity) UnmarshalJSON(data []byte) error {
	type plain Identity
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*i = Identity(p)
	return nil
}

// Malware describes a malware instance or family.
type Malware struct {
	CommonProperties
	Name                      string           `json:"name"`
	Description               string           `json:"description,omitempty"`
	MalwareTypes              []string         `json:"malware_types,omitempty"`
	IsFamily                  bool             `json:"is_family"`
	Aliases                   []string         `json:"aliases,omitempty"`
	KillChainPhases           []KillChainPhase `json:"kill_chain_phases,omitempty"`
	FirstSeen                 *time.Time       `json:"first_seen,omitempty"`
	LastSeen                  *time.Time       `json:"last_seen,omitempty"`
	OperatingSystemRefs       []string         `json:"operating_system_refs,omitempty"`
	ArchitectureExecutionEnvs []string         `json:"architecture_execution_envs,omitempty"`
	ImplementationLanguages   []string         `json:"implementation_languages,omitempty"`
	Capabilities              []string         `json:"capabilities,omitempty"`
	SampleRefs                []string         `json:"sample_refs,omitempty"`
}

// NewMalwareBuilder starts a fluent Malware builder.
func NewMalwareBuilder() *MalwareBuilder { return &MalwareBuilder{} }

type MalwareBuilder struct {
	name            string
	description     string
	malwareTypes    []string
	isFamily        bool
	aliases         []string
	killChainPhases []KillChainPhase
	firstSeen       *time.Time
	lastSeen        *time.Time
	sampleRefs      []string
	createdByRef    string
}

func (b *MalwareBuilder) Name(name string) *MalwareBuilder {
	b.name = name
	return b
}

func (b *MalwareBuilder) Description(description string) *MalwareBuilder {
	b.description = description
	return b
}

func (b *MalwareBuilder) MalwareTypes(types ...string) *MalwareBuilder {
	b.malwareTypes = types
	return b
}

func (b *MalwareBuilder) IsFamily(isFamily bool) *MalwareBuilder {
	b.isFamily = isFamily
	return b
}

func (b *MalwareBuilder) Aliases(aliases ...string) *MalwareBuilder {
	b.aliases = aliases
	return b
}

func (b *MalwareBuilder) KillChainPhases(phases ...KillChainPhase) *MalwareBuilder {
	b.killChainPhases = phases
	return b
}

func (b *MalwareBuilder) FirstSeen(t time.Time) *MalwareBuilder {
	b.firstSeen = &t
	return b
}

func (b *MalwareBuilder) LastSeen(t time.Time) *MalwareBuilder {
	b.lastSeen = &t
	return b
}

func (b *MalwareBuilder) SampleRefs(refs ...string) *MalwareBuilder {
	b.sampleRefs = refs
	return b
}

func (b *MalwareBuilder) CreatedByRef(ref string) *MalwareBuilder {
	b.createdByRef = ref
	return b
}

// Build assembles the Malware object. Name is required; is_family defaults
// to false and malware_types to empty.
func (b *MalwareBuilder) Build() (*Malware, error) {
	if b.name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	return &Malware{
		CommonProperties: NewCommonProperties(TypeMalware, b.createdByRef),
		Name:             b.name,
		Description:      b.description,
		MalwareTypes:     b.malwareTypes,
		IsFamily:         b.isFamily,
		Aliases:          b.aliases,
		KillChainPhases:  b.killChainPhases,
		FirstSeen:        b.firstSeen,
		LastSeen:         b.lastSeen,
		SampleRefs:       b.sampleRefs,
	}, nil
}

func (m Malware) MarshalJSON() ([]byte, error) {
	type plain Malware
	return encodeWithExtras(plain(m), m.Custom)
}

func (m *Malware) UnmarshalJSON(data []byte) error {
	type plain Malware
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*m = Malware(p)
	return nil
}

// Indicator carries a detection pattern in one of several dialects.
type Indicator struct {
	CommonProperties
	Name            string           `json:"name,omitempty"`
	Description     string           `json:"description,omitempty"`
	IndicatorTypes  []string         `json:"indicator_types,omitempty"`
	Pattern         string           `json:"pattern"`
	PatternType     PatternType      `json:"pattern_type"`
	PatternVersion  string           `json:"pattern_version,omitempty"`
	ValidFrom       time.Time        `json:"valid_from"`
	ValidUntil      *time.Time       `json:"valid_until,omitempty"`
	KillChainPhases []KillChainPhase `json:"kill_chain_phases,omitempty"`
}

// ValidatePattern checks the pattern syntax. Only the "stix" dialect has a
// validator; every other dialect passes unchecked.
func (i *Indicator) ValidatePattern() error {
	if i.PatternType != PatternTypeSTIX {
		return nil
	}
	return pattern.Validate(i.Pattern)
}

// NewIndicatorBuilder starts a fluent Indicator builder.
func NewIndicatorBuilder() *IndicatorBuilder { return &IndicatorBuilder{} }

type IndicatorBuilder struct {
	name            string
	description     string
	indicatorTypes  []string
	pattern         string
	patternType     PatternType
	patternVersion  string
	validFrom       *time.Time
	validUntil      *time.Time
	killChainPhases []KillChainPhase
	createdByRef    string
	validatePattern bool
}

func (b *IndicatorBuilder) Name(name string) *IndicatorBuilder {
	b.name = name
	return b
}

func (b *IndicatorBuilder) Description(description string) *IndicatorBuilder {
	b.description = description
	return b
}

func (b *IndicatorBuilder) IndicatorTypes(types ...string) *IndicatorBuilder {
	b.indicatorTypes = types
	return b
}

func (b *IndicatorBuilder) Pattern(p string) *IndicatorBuilder {
	b.pattern = p
	return b
}

func (b *IndicatorBuilder) PatternType(pt PatternType) *IndicatorBuilder {
	b.patternType = pt
	return b
}

func (b *IndicatorBuilder) PatternVersion(version string) *IndicatorBuilder {
	b.patternVersion = version
	return b
}

func (b *IndicatorBuilder) ValidFrom(t time.Time) *IndicatorBuilder {
	b.validFrom = &t
	return b
}

func (b *IndicatorBuilder) ValidUntil(t time.Time) *IndicatorBuilder {
	b.validUntil = &t
	return b
}

func (b *IndicatorBuilder) KillChainPhases(phases ...KillChainPhase) *IndicatorBuilder {
	b.killChainPhases = phases
	return b
}

func (b *IndicatorBuilder) CreatedByRef(ref string) *IndicatorBuilder {
	b.createdByRef = ref
	return b
}

// ValidatePattern enables build-time pattern validation (off by default).
// Only applies to the "stix" dialect.
func (b *IndicatorBuilder) ValidatePattern(validate bool) *IndicatorBuilder {
	b.validatePattern = validate
	return b
}

// Build assembles the Indicator. Pattern, pattern type and valid_from are
// required.
func (b *IndicatorBuilder) Build() (*Indicator, error) {
	if b.pattern == "" {
		return nil, &MissingFieldError{Field: "pattern"}
	}
	if b.patternType == "" {
		return nil, &MissingFieldError{Field: "pattern_type"}
	}
	if b.validFrom == nil {
		return nil, &MissingFieldError{Field: "valid_from"}
	}

	if b.validatePattern && b.patternType == PatternTypeSTIX {
		if err := pattern.Validate(b.pattern); err != nil {
			return nil, err
		}
	}

	return &Indicator{
		CommonProperties: NewCommonProperties(TypeIndicator, b.createdByRef),
		Name:             b.name,
		Description:      b.description,
		IndicatorTypes:   b.indicatorTypes,
		Pattern:          b.pattern,
		PatternType:      b.patternType,
		PatternVersion:   b.patternVersion,
		ValidFrom:        *b.validFrom,
		ValidUntil:       b.validUntil,
		KillChainPhases:  b.killChainPhases,
	}, nil
}

func (i Indicator) MarshalJSON() ([]byte, error) {
	type plain Indicator
	return encodeWithExtras(plain(i), i.Custom)
}

func (i *Indicator) UnmarshalJSON(data []byte) error {
	type plain Indicator
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	// Wire objects may omit the dialect; "stix" is the assumed default.
	if p.PatternType == "" {
		p.PatternType = PatternTypeSTIX
	}
	p.Custom = extras
	*i = Indicator(p)
	return nil
}

// Sighting records that an object (usually an indicator) was seen.
type Sighting struct {
	CommonProperties
	Count            uint32   `json:"count"`
	SightingOfRef    string   `json:"sighting_of_ref"`
	WhereSightedRefs []string `json:"where_sighted_refs"`
}

// NewSightingBuilder starts a fluent Sighting builder.
func NewSightingBuilder() *SightingBuilder { return &SightingBuilder{} }

type SightingBuilder struct {
	count            *uint32
	sightingOfRef    string
	whereSightedRefs []string
	createdByRef     string
}

func (b *SightingBuilder) Count(count uint32) *SightingBuilder {
	b.count = &count
	return b
}

func (b *SightingBuilder) SightingOfRef(ref string) *SightingBuilder {
	b.sightingOfRef = ref
	return b
}

func (b *SightingBuilder) WhereSightedRefs(refs ...string) *SightingBuilder {
	b.whereSightedRefs = refs
	return b
}

func (b *SightingBuilder) CreatedByRef(ref string) *SightingBuilder {
	b.createdByRef = ref
	return b
}

// Build assembles the Sighting. Count, sighting_of_ref and where_sighted_refs
// are all required.
func (b *SightingBuilder) Build() (*Sighting, error) {
	if b.count == nil {
		return nil, &MissingFieldError{Field: "count"}
	}
	if b.sightingOfRef == "" {
		return nil, &MissingFieldError{Field: "sighting_of_ref"}
	}
	if b.whereSightedRefs == nil {
		return nil, &MissingFieldError{Field: "where_sighted_refs"}
	}
	return &Sighting{
		CommonProperties: NewCommonProperties(TypeSighting, b.createdByRef),
		Count:            *b.count,
		SightingOfRef:    b.sightingOfRef,
		WhereSightedRefs: b.whereSightedRefs,
	}, nil
}

func (s Sighting) MarshalJSON() ([]byte, error) {
	type plain Sighting
	return encodeWithExtras(plain(s), s.Custom)
}

func (s *Sighting) UnmarshalJSON(data []byte) error {
	type plain Sighting
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*s = Sighting(p)
	return nil
}
