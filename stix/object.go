package stix

import (
	"encoding/json"
	"reflect"
	"strings"
	"time"
)

// Object is the polymorphic wrapper for any STIX object. It decodes based on
// the wire "type" discriminant and dispatches to the concrete struct; types
// with the "x-" vendor prefix fall back to the Custom case with their raw
// bytes preserved.
//
// Decoding is two-phase: the value is first parsed generically to read the
// discriminant, then the entire original value is decoded again into the
// concrete type. Unknown discriminants without the custom prefix fail with
// *UnknownTypeError.
type Object struct {
	v any
}

// Custom holds a vendor-extension object ("x-" prefixed type). The original
// bytes are kept verbatim so re-encoding is lossless.
type Custom struct {
	Type string
	Raw  json.RawMessage
}

// ID extracts the "id" property from the raw value, or "" when absent.
func (c *Custom) ID() string {
	var probe struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(c.Raw, &probe); err != nil {
		return ""
	}
	return probe.ID
}

// decodeTable maps each known discriminant to a factory for its concrete
// type. Lookup is exact and case-sensitive: "Malware" or "MALWARE" is not a
// known type.
var decodeTable = map[string]func() any{
	TypeAttackPattern:       func() any { return new(AttackPattern) },
	TypeCampaign:            func() any { return new(Campaign) },
	TypeCourseOfAction:      func() any { return new(CourseOfAction) },
	TypeExtensionDefinition: func() any { return new(ExtensionDefinition) },
	TypeGrouping:            func() any { return new(Grouping) },
	TypeIdentity:            func() any { return new(Identity) },
	TypeIncident:            func() any { return new(Incident) },
	TypeIndicator:           func() any { return new(Indicator) },
	TypeInfrastructure:      func() any { return new(Infrastructure) },
	TypeIntrusionSet:        func() any { return new(IntrusionSet) },
	TypeLanguageContent:     func() any { return new(LanguageContent) },
	TypeLocation:            func() any { return new(Location) },
	TypeMalware:             func() any { return new(Malware) },
	TypeMalwareAnalysis:     func() any { return new(MalwareAnalysis) },
	TypeMarkingDefinition:   func() any { return new(MarkingDefinition) },
	TypeNote:                func() any { return new(Note) },
	TypeObservedData:        func() any { return new(ObservedData) },
	TypeOpinion:             func() any { return new(Opinion) },
	TypeRelationship:        func() any { return new(Relationship) },
	TypeReport:              func() any { return new(Report) },
	TypeSighting:            func() any { return new(Sighting) },
	TypeThreatActor:         func() any { return new(ThreatActor) },
	TypeTool:                func() any { return new(Tool) },
	TypeVulnerability:       func() any { return new(Vulnerability) },

	TypeArtifact:           func() any { return new(Artifact) },
	TypeAutonomousSystem:   func() any { return new(AutonomousSystem) },
	TypeDirectory:          func() any { return new(Directory) },
	TypeDomainName:         func() any { return new(DomainName) },
	TypeEmailAddr:          func() any { return new(EmailAddr) },
	TypeEmailMessage:       func() any { return new(EmailMessage) },
	TypeFile:               func() any { return new(File) },
	TypeIPv4Addr:           func() any { return new(IPv4Addr) },
	TypeIPv6Addr:           func() any { return new(IPv6Addr) },
	TypeMacAddr:            func() any { return new(MacAddr) },
	TypeMutex:              func() any { return new(Mutex) },
	TypeNetworkTraffic:     func() any { return new(NetworkTraffic) },
	TypeProcess:            func() any { return new(Process) },
	TypeSocketAddr:         func() any { return new(SocketAddr) },
	TypeSoftware:           func() any { return new(Software) },
	TypeSoftwarePackage:    func() any { return new(SoftwarePackage) },
	TypeURL:                func() any { return new(URL) },
	TypeUserAccount:        func() any { return new(UserAccount) },
	TypeWindowsRegistryKey: func() any { return new(WindowsRegistryKey) },
	TypeX509Certificate:    func() any { return new(X509Certificate) },
}

// NewObject wraps a concrete STIX value for inclusion in a bundle. The value
// should be a pointer to one of the object types in this package, or a
// *Custom.
func NewObject(v any) Object {
	return Object{v: v}
}

// Value returns the wrapped concrete value.
func (o Object) Value() any { return o.v }

func (o *Object) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	objectType, ok := raw["type"].(string)
	if !ok {
		return ErrMissingType
	}

	if factory, known := decodeTable[objectType]; known {
		target := factory()
		if err := json.Unmarshal(data, target); err != nil {
			return err
		}
		o.v = target
		return nil
	}

	if strings.HasPrefix(objectType, CustomTypePrefix) {
		o.v = &Custom{
			Type: objectType,
			Raw:  append(json.RawMessage(nil), data...),
		}
		return nil
	}

	return &UnknownTypeError{Type: objectType}
}

func (o Object) MarshalJSON() ([]byte, error) {
	switch v := o.v.(type) {
	case *Custom:
		return v.Raw, nil
	case Observable:
		// Observables carry no type field of their own; the envelope
		// discriminant is injected here.
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		var merged map[string]json.RawMessage
		if err := json.Unmarshal(encoded, &merged); err != nil {
			return nil, err
		}
		typeTag, err := json.Marshal(v.Type())
		if err != nil {
			return nil, err
		}
		merged["type"] = typeTag
		return json.Marshal(merged)
	default:
		return json.Marshal(o.v)
	}
}

// ID returns the object's identifier. For observables the identifier is
// always derived from content, regardless of any id carried on the wire.
func (o Object) ID() string {
	switch v := o.v.(type) {
	case Observable:
		return ObservableID(v)
	case StixObject:
		return v.ID()
	case *Custom:
		return v.ID()
	default:
		return ""
	}
}

// Type returns the wire discriminant of the wrapped object.
func (o Object) Type() string {
	switch v := o.v.(type) {
	case Observable:
		return v.Type()
	case StixObject:
		return v.Type()
	case *Custom:
		return v.Type
	default:
		return ""
	}
}

// Name returns the object's name for name-bearing kinds. The second return
// is false for kinds without a name, or when the name is empty.
func (o Object) Name() (string, bool) {
	rv := reflect.ValueOf(o.v)
	for rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return "", false
	}
	field := rv.FieldByName("Name")
	if !field.IsValid() || field.Kind() != reflect.String || field.String() == "" {
		return "", false
	}
	return field.String(), true
}

// Created returns the creation timestamp for objects that carry a common
// block. Observables and custom objects have none.
func (o Object) Created() (time.Time, bool) {
	if v, ok := o.v.(StixObject); ok {
		return v.Created(), true
	}
	return time.Time{}, false
}

// Labels returns the common-block labels, or false for kinds without a
// common block.
func (o Object) Labels() ([]string, bool) {
	if v, ok := o.v.(interface{ Common() *CommonProperties }); ok {
		return v.Common().Labels, true
	}
	return nil, false
}

// AsIndicator returns the wrapped Indicator, if that is what this object is.
func (o Object) AsIndicator() (*Indicator, bool) {
	v, ok := o.v.(*Indicator)
	return v, ok
}

// AsMalware returns the wrapped Malware, if that is what this object is.
func (o Object) AsMalware() (*Malware, bool) {
	v, ok := o.v.(*Malware)
	return v, ok
}

// AsIdentity returns the wrapped Identity, if that is what this object is.
func (o Object) AsIdentity() (*Identity, bool) {
	v, ok := o.v.(*Identity)
	return v, ok
}

// AsRelationship returns the wrapped Relationship, if that is what this
// object is.
func (o Object) AsRelationship() (*Relationship, bool) {
	v, ok := o.v.(*Relationship)
	return v, ok
}

// AsFile returns the wrapped File observable, if that is what this object is.
func (o Object) AsFile() (*File, bool) {
	v, ok := o.v.(*File)
	return v, ok
}

// AsObservable returns the wrapped value as an Observable, if the kind is an
// observable.
func (o Object) AsObservable() (Observable, bool) {
	v, ok := o.v.(Observable)
	return v, ok
}

// AsCustom returns the wrapped Custom value, if this object is a vendor
// extension.
func (o Object) AsCustom() (*Custom, bool) {
	v, ok := o.v.(*Custom)
	return v, ok
}
