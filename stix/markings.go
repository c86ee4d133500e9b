package stix

import (
	"encoding/json"
	"strings"
	"time"
)

// Meta objects: data markings, translations, and extension definitions. All
// three use kebab-case for their own multiword fields.

// MarkingDefinition represents a data marking such as a TLP level or a
// copyright statement.
type MarkingDefinition struct {
	CommonProperties
	DefinitionType string `json:"definition-type"`
	Definition     any    `json:"definition"`
	Name           string `json:"name,omitempty"`
}

// NewMarkingDefinition builds a marking definition of the given type with an
// arbitrary definition payload.
func NewMarkingDefinition(definitionType string, definition any) *MarkingDefinition {
	return &MarkingDefinition{
		CommonProperties: NewCommonProperties(TypeMarkingDefinition, ""),
		DefinitionType:   definitionType,
		Definition:       definition,
	}
}

// NewTLPMarking builds a Traffic Light Protocol marking for the given level
// ("white", "green", "amber", "red"). The name is normalized to "TLP:LEVEL".
func NewTLPMarking(level string) *MarkingDefinition {
	m := NewMarkingDefinition("tlp", map[string]any{
		"tlp": strings.ToLower(level),
	})
	m.Name = "TLP:" + strings.ToUpper(level)
	return m
}

// NewMarkingDefinitionBuilder starts a fluent MarkingDefinition builder.
func NewMarkingDefinitionBuilder() *MarkingDefinitionBuilder { return &MarkingDefinitionBuilder{} }

type MarkingDefinitionBuilder struct {
	definitionType string
	definition     any
	name           string
	createdByRef   string
}

func (b *MarkingDefinitionBuilder) DefinitionType(dt string) *MarkingDefinitionBuilder {
	b.definitionType = dt
	return b
}

func (b *MarkingDefinitionBuilder) Definition(def any) *MarkingDefinitionBuilder {
	b.definition = def
	return b
}

func (b *MarkingDefinitionBuilder) Name(name string) *MarkingDefinitionBuilder {
	b.name = name
	return b
}

func (b *MarkingDefinitionBuilder) CreatedByRef(ref string) *MarkingDefinitionBuilder {
	b.createdByRef = ref
	return b
}

func (b *MarkingDefinitionBuilder) Build() (*MarkingDefinition, error) {
	if b.definitionType == "" {
		return nil, &MissingFieldError{Field: "definition_type"}
	}
	if b.definition == nil {
		return nil, &MissingFieldError{Field: "definition"}
	}
	return &MarkingDefinition{
		CommonProperties: NewCommonProperties(TypeMarkingDefinition, b.createdByRef),
		DefinitionType:   b.definitionType,
		Definition:       b.definition,
		Name:             b.name,
	}, nil
}

func (m MarkingDefinition) MarshalJSON() ([]byte, error) {
	type plain MarkingDefinition
	return encodeWithExtras(plain(m), m.Custom)
}

func (m *MarkingDefinition) UnmarshalJSON(data []byte) error {
	type plain MarkingDefinition
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*m = MarkingDefinition(p)
	return nil
}

// LanguageContent carries translations of another object's text properties.
// Contents maps language tag to property name to translated text.
type LanguageContent struct {
	CommonProperties
	ObjectRef      string                       `json:"object-ref"`
	ObjectModified time.Time                    `json:"object-modified"`
	Contents       map[string]map[string]string `json:"contents"`
}

// NewLanguageContentBuilder starts a fluent LanguageContent builder.
func NewLanguageContentBuilder() *LanguageContentBuilder { return &LanguageContentBuilder{} }

type LanguageContentBuilder struct {
	objectRef      string
	objectModified *time.Time
	contents       map[string]map[string]string
	createdByRef   string
}

func (b *LanguageContentBuilder) ObjectRef(ref string) *LanguageContentBuilder {
	b.objectRef = ref
	return b
}

func (b *LanguageContentBuilder) ObjectModified(t time.Time) *LanguageContentBuilder {
	b.objectModified = &t
	return b
}

func (b *LanguageContentBuilder) Contents(c map[string]map[string]string) *LanguageContentBuilder {
	b.contents = c
	return b
}

func (b *LanguageContentBuilder) CreatedByRef(ref string) *LanguageContentBuilder {
	b.createdByRef = ref
	return b
}

func (b *LanguageContentBuilder) Build() (*LanguageContent, error) {
	if b.objectRef == "" {
		return nil, &MissingFieldError{Field: "object_ref"}
	}
	if b.objectModified == nil {
		return nil, &MissingFieldError{Field: "object_modified"}
	}
	if b.contents == nil {
		return nil, &MissingFieldError{Field: "contents"}
	}
	return &LanguageContent{
		CommonProperties: NewCommonProperties(TypeLanguageContent, b.createdByRef),
		ObjectRef:        b.objectRef,
		ObjectModified:   *b.objectModified,
		Contents:         b.contents,
	}, nil
}

func (l LanguageContent) MarshalJSON() ([]byte, error) {
	type plain LanguageContent
	return encodeWithExtras(plain(l), l.Custom)
}

func (l *LanguageContent) UnmarshalJSON(data []byte) error {
	type plain LanguageContent
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*l = LanguageContent(p)
	return nil
}

// ExtensionDefinition registers a custom STIX extension schema.
type ExtensionDefinition struct {
	CommonProperties
	Name           string   `json:"name"`
	Description    string   `json:"description,omitempty"`
	Schema         string   `json:"schema"`
	Version        string   `json:"version"`
	ExtensionTypes []string `json:"extension-types"`
}

// NewExtensionDefinitionBuilder starts a fluent ExtensionDefinition builder.
func NewExtensionDefinitionBuilder() *ExtensionDefinitionBuilder {
	return &ExtensionDefinitionBuilder{}
}

type ExtensionDefinitionBuilder struct {
	name           string
	description    string
	schema         string
	version        string
	extensionTypes []string
	createdByRef   string
}

func (b *ExtensionDefinitionBuilder) Name(name string) *ExtensionDefinitionBuilder {
	b.name = name
	return b
}

func (b *ExtensionDefinitionBuilder) Description(description string) *ExtensionDefinitionBuilder {
	b.description = description
	return b
}

func (b *ExtensionDefinitionBuilder) Schema(schema string) *ExtensionDefinitionBuilder {
	b.schema = schema
	return b
}

func (b *ExtensionDefinitionBuilder) Version(version string) *ExtensionDefinitionBuilder {
	b.version = version
	return b
}

func (b *ExtensionDefinitionBuilder) ExtensionTypes(types ...string) *ExtensionDefinitionBuilder {
	b.extensionTypes = types
	return b
}

func (b *ExtensionDefinitionBuilder) CreatedByRef(ref string) *ExtensionDefinitionBuilder {
	b.createdByRef = ref
	return b
}

func (b *ExtensionDefinitionBuilder) Build() (*ExtensionDefinition, error) {
	if b.name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	if b.schema == "" {
		return nil, &MissingFieldError{Field: "schema"}
	}
	if b.version == "" {
		return nil, &MissingFieldError{Field: "version"}
	}
	if b.extensionTypes == nil {
		return nil, &MissingFieldError{Field: "extension_types"}
	}
	return &ExtensionDefinition{
		CommonProperties: NewCommonProperties(TypeExtensionDefinition, b.createdByRef),
		Name:             b.name,
		Description:      b.description,
		Schema:           b.schema,
		Version:          b.version,
		ExtensionTypes:   b.extensionTypes,
	}, nil
}

func (e ExtensionDefinition) MarshalJSON() ([]byte, error) {
	type plain ExtensionDefinition
	return encodeWithExtras(plain(e), e.Custom)
}

func (e *ExtensionDefinition) UnmarshalJSON(data []byte) error {
	type plain ExtensionDefinition
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*e = ExtensionDefinition(p)
	return nil
}
