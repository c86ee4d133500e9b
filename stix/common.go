// Package stix implements a typed object model for STIX 2.1, the JSON-based
// cyber threat intelligence exchange format. It covers the SDO, SRO and SCO
// object families, bundle handling, and deterministic identifier derivation
// for cyber observables.
package stix

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MIME type constants for STIX and TAXII content negotiation.
const (
	// MediaTypeSTIX is the STIX 2.1 JSON media type for HTTP Content-Type headers
	MediaTypeSTIX = "application/stix+json;version=2.1"

	// MediaTypeTAXII is the TAXII 2.1 JSON media type for HTTP Content-Type headers
	MediaTypeTAXII = "application/taxii+json;version=2.1"

	// MediaTypeSTIXGeneric is the STIX JSON media type without a version parameter
	MediaTypeSTIXGeneric = "application/stix+json"

	// MediaTypeTAXIIGeneric is the TAXII JSON media type without a version parameter
	MediaTypeTAXIIGeneric = "application/taxii+json"
)

// SpecVersion is the STIX specification version stamped onto objects built by
// this package.
const SpecVersion = "2.1"

// StixObject is the minimal accessor set shared by all objects that carry
// common properties.
type StixObject interface {
	ID() string
	Type() string
	Created() time.Time
}

// ExternalReference links an object to an external source (CVE entries,
// ATT&CK technique pages, vendor reports).
type ExternalReference struct {
	SourceName  string            `json:"source-name"`
	Description string            `json:"description,omitempty"`
	URL         string            `json:"url,omitempty"`
	ExternalID  string            `json:"external-id,omitempty"`
	Hashes      map[string]string `json:"hashes,omitempty"`
}

// GranularMarking applies a marking definition to selected portions of an
// object rather than the whole object.
type GranularMarking struct {
	MarkingRef string   `json:"marking-ref,omitempty"`
	Selectors  []string `json:"selectors"`
	Lang       string   `json:"lang,omitempty"`
}

// KillChainPhase names a phase within a kill chain (used by Malware and
// Indicator objects).
type KillChainPhase struct {
	Name      string `json:"kill_chain_name"`
	PhaseName string `json:"phase_name"`
}

// CommonProperties is the property block shared by all STIX domain and
// relationship objects. On the wire it is flattened into the object itself:
// the discriminant appears both as the envelope tag and here.
//
// Custom holds wire properties that do not map to any named field. They are
// merged back verbatim on encode so a decode→encode cycle loses nothing.
type CommonProperties struct {
	ObjectType         string              `json:"type"`
	Identifier         string              `json:"id"`
	SpecVersion        string              `json:"spec_version,omitempty"`
	CreatedAt          time.Time           `json:"created"`
	Modified           time.Time           `json:"modified"`
	CreatedByRef       string              `json:"created-by-ref,omitempty"`
	Revoked            *bool               `json:"revoked,omitempty"`
	Labels             []string            `json:"labels,omitempty"`
	Confidence         *uint8              `json:"confidence,omitempty"`
	Lang               string              `json:"lang,omitempty"`
	ExternalReferences []ExternalReference `json:"external-references,omitempty"`
	ObjectMarkingRefs  []string            `json:"object-marking-refs,omitempty"`
	GranularMarkings   []GranularMarking   `json:"granular-markings,omitempty"`
	Extensions         map[string]any      `json:"extensions,omitempty"`
	Custom             map[string]any      `json:"-"`
}

// NewCommonProperties stamps a fresh common block for the given object type:
// random v4 identifier, current created/modified timestamps, spec version 2.1.
func NewCommonProperties(objectType, createdByRef string) CommonProperties {
	now := time.Now().UTC()
	return CommonProperties{
		ObjectType:   objectType,
		Identifier:   NewID(objectType),
		SpecVersion:  SpecVersion,
		CreatedAt:    now,
		Modified:     now,
		CreatedByRef: createdByRef,
	}
}

// Common exposes the embedded common block, which lets callers reach it
// through an interface without knowing the concrete object type.
func (c *CommonProperties) Common() *CommonProperties { return c }

// ID returns the object identifier.
func (c *CommonProperties) ID() string { return c.Identifier }

// Type returns the object type discriminant.
func (c *CommonProperties) Type() string { return c.ObjectType }

// Created returns the creation timestamp.
func (c *CommonProperties) Created() time.Time { return c.CreatedAt }

// NewVersion marks the object as a new version by advancing the modified
// timestamp. The id, created timestamp and type never change across versions.
func (c *CommonProperties) NewVersion() {
	c.Modified = time.Now().UTC()
}

// SetCustom records a custom property that will be emitted alongside the
// named fields on encode.
func (c *CommonProperties) SetCustom(key string, value any) {
	if c.Custom == nil {
		c.Custom = make(map[string]any)
	}
	c.Custom[key] = value
}

// NewID generates a STIX identifier with a random v4 UUID, e.g.
// "malware--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f".
func NewID(objectType string) string {
	return objectType + "--" + uuid.NewString()
}

// IsValidID reports whether id has the form "object-type--<uuid>".
func IsValidID(id string) bool {
	objType, rest, ok := strings.Cut(id, "--")
	if !ok || objType == "" {
		return false
	}
	_, err := uuid.Parse(rest)
	return err == nil
}

// TypeFromID extracts the object type segment from a STIX identifier. It
// returns "" when the identifier is malformed.
func TypeFromID(id string) string {
	objType, rest, ok := strings.Cut(id, "--")
	if !ok {
		return ""
	}
	if _, err := uuid.Parse(rest); err != nil {
		return ""
	}
	return objType
}

// IsValidRefForType reports whether id is a well-formed identifier whose type
// segment matches expectedType.
func IsValidRefForType(id, expectedType string) bool {
	return TypeFromID(id) == expectedType
}
