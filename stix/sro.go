package stix

import "encoding/json"

// Relationship links two objects with a typed edge, e.g. indicator
// "indicates" malware.
type Relationship struct {
	CommonProperties
	SourceRef        string `json:"source_ref"`
	TargetRef        string `json:"target_ref"`
	RelationshipType string `json:"relationship_type"`
}

// NewRelationship builds a relationship of the given type between the source
// and target identifiers. A fresh v4 identifier and timestamps are assigned.
func NewRelationship(sourceRef, targetRef string, relationshipType RelationshipType) *Relationship {
	return &Relationship{
		CommonProperties: NewCommonProperties(TypeRelationship, ""),
		SourceRef:        sourceRef,
		TargetRef:        targetRef,
		RelationshipType: string(relationshipType),
	}
}

func (r Relationship) MarshalJSON() ([]byte, error) {
	type plain Relationship
	return encodeWithExtras(plain(r), r.Custom)
}

func (r *Relationship) UnmarshalJSON(data []byte) error {
	type plain Relationship
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*r = Relationship(p)
	return nil
}
