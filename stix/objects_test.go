package stix

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stixkit/pattern"
)

func TestIdentityBuilder(t *testing.T) {
	identity, err := NewIdentityBuilder().
		Name("ACME Corp").
		IdentityClass(IdentityClassOrganization).
		Sectors("technology").
		Property("x_internal_id", "acme-1").
		Build()
	require.NoError(t, err)

	assert.Equal(t, TypeIdentity, identity.Type())
	assert.True(t, IsValidRefForType(identity.ID(), TypeIdentity))
	assert.Equal(t, "ACME Corp", identity.Name)
	assert.Equal(t, IdentityClassOrganization, identity.IdentityClass)
	assert.Equal(t, "acme-1", identity.Custom["x_internal_id"])

	encoded, err := json.Marshal(identity)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"identity_class":"organization"`)
	assert.Contains(t, string(encoded), `"x_internal_id":"acme-1"`)
}

func TestIdentityBuilder_RequiresName(t *testing.T) {
	_, err := NewIdentityBuilder().IdentityClass(IdentityClassSystem).Build()
	assert.ErrorIs(t, err, &MissingFieldError{Field: "name"})
}

func TestIdentity_RoundTripWithCustomProperties(t *testing.T) {
	original, err := NewIdentityBuilder().
		Name("ACME").
		Property("x_tag", "v").
		Build()
	require.NoError(t, err)

	encoded, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Identity
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, original.ID(), decoded.ID())
	assert.Equal(t, original.Name, decoded.Name)
	assert.Equal(t, "v", decoded.Custom["x_tag"])
}

func TestMalwareBuilder(t *testing.T) {
	malware, err := NewMalwareBuilder().
		Name("BadWare").
		MalwareTypes("trojan").
		IsFamily(true).
		Aliases("BW").
		KillChainPhases(KillChainPhase{Name: "lockheed-martin-cyber-kill-chain", PhaseName: "delivery"}).
		Build()
	require.NoError(t, err)

	assert.Equal(t, TypeMalware, malware.Type())
	assert.True(t, malware.IsFamily)

	encoded, err := json.Marshal(malware)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"malware_types":["trojan"]`)
	assert.Contains(t, string(encoded), `"kill_chain_name":"lockheed-martin-cyber-kill-chain"`)
	assert.Contains(t, string(encoded), `"phase_name":"delivery"`)
}

func TestIndicatorBuilder(t *testing.T) {
	validFrom := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	indicator, err := NewIndicatorBuilder().
		Name("Evil domain").
		Pattern("[domain-name:value = 'evil.com']").
		PatternType(PatternTypeSTIX).
		ValidFrom(validFrom).
		IndicatorTypes(string(IndicatorMaliciousActivity)).
		Build()
	require.NoError(t, err)

	assert.Equal(t, TypeIndicator, indicator.Type())
	assert.Equal(t, validFrom, indicator.ValidFrom)
	assert.NoError(t, indicator.ValidatePattern())
}

func TestIndicatorBuilder_RequiredFields(t *testing.T) {
	_, err := NewIndicatorBuilder().Build()
	assert.ErrorIs(t, err, &MissingFieldError{Field: "pattern"})

	_, err = NewIndicatorBuilder().Pattern("[file:name = 'x']").Build()
	assert.ErrorIs(t, err, &MissingFieldError{Field: "pattern_type"})

	_, err = NewIndicatorBuilder().
		Pattern("[file:name = 'x']").
		PatternType(PatternTypeSTIX).
		Build()
	assert.ErrorIs(t, err, &MissingFieldError{Field: "valid_from"})
}

func TestIndicatorBuilder_OptInValidation(t *testing.T) {
	bad := "not a pattern"

	// Validation is off by default; garbage builds fine.
	indicator, err := NewIndicatorBuilder().
		Pattern(bad).
		PatternType(PatternTypeSTIX).
		ValidFrom(time.Now().UTC()).
		Build()
	require.NoError(t, err)
	assert.ErrorIs(t, indicator.ValidatePattern(), pattern.ErrMissingBrackets)

	// Opting in rejects the same pattern at build time.
	_, err = NewIndicatorBuilder().
		Pattern(bad).
		PatternType(PatternTypeSTIX).
		ValidFrom(time.Now().UTC()).
		ValidatePattern(true).
		Build()
	assert.ErrorIs(t, err, pattern.ErrMissingBrackets)

	// Non-stix dialects are never validated.
	indicator, err = NewIndicatorBuilder().
		Pattern(`alert tcp any any -> any 443`).
		PatternType(PatternTypeSnort).
		ValidFrom(time.Now().UTC()).
		ValidatePattern(true).
		Build()
	require.NoError(t, err)
	assert.NoError(t, indicator.ValidatePattern())
}

func TestIndicator_DecodeDefaultsPatternType(t *testing.T) {
	raw := `{"type":"indicator","id":"indicator--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f","created":"2024-01-01T00:00:00Z","modified":"2024-01-01T00:00:00Z","pattern":"[file:name = 'x']","valid_from":"2024-01-01T00:00:00Z"}`

	var indicator Indicator
	require.NoError(t, json.Unmarshal([]byte(raw), &indicator))
	assert.Equal(t, PatternTypeSTIX, indicator.PatternType)
}

func TestSightingBuilder(t *testing.T) {
	sighting, err := NewSightingBuilder().
		Count(3).
		SightingOfRef("indicator--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f").
		WhereSightedRefs("identity--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f").
		Build()
	require.NoError(t, err)

	assert.Equal(t, TypeSighting, sighting.Type())
	assert.Equal(t, uint32(3), sighting.Count)

	encoded, err := json.Marshal(sighting)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"sighting_of_ref"`)
	assert.Contains(t, string(encoded), `"where_sighted_refs"`)
}

func TestSightingBuilder_RequiredFields(t *testing.T) {
	_, err := NewSightingBuilder().Build()
	assert.ErrorIs(t, err, &MissingFieldError{Field: "count"})

	// A zero count is still a supplied count.
	_, err = NewSightingBuilder().Count(0).Build()
	assert.ErrorIs(t, err, &MissingFieldError{Field: "sighting_of_ref"})

	_, err = NewSightingBuilder().Count(0).SightingOfRef("x").Build()
	assert.ErrorIs(t, err, &MissingFieldError{Field: "where_sighted_refs"})
}

func TestNewRelationship(t *testing.T) {
	rel := NewRelationship("indicator--a", "malware--b", RelationshipIndicates)

	assert.Equal(t, TypeRelationship, rel.Type())
	assert.True(t, IsValidRefForType(rel.ID(), TypeRelationship))
	assert.Equal(t, "indicator--a", rel.SourceRef)
	assert.Equal(t, "malware--b", rel.TargetRef)
	assert.Equal(t, "indicates", rel.RelationshipType)
}

func TestCommonBlockWireCasing(t *testing.T) {
	identity, err := NewIdentityBuilder().
		Name("ACME").
		CreatedByRef("identity--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f").
		Build()
	require.NoError(t, err)
	identity.ObjectMarkingRefs = []string{"marking-definition--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f"}
	identity.ExternalReferences = []ExternalReference{{SourceName: "cve", ExternalID: "CVE-2024-0001"}}

	encoded, err := json.Marshal(identity)
	require.NoError(t, err)
	s := string(encoded)

	assert.Contains(t, s, `"spec_version":"2.1"`)
	assert.Contains(t, s, `"created-by-ref"`)
	assert.Contains(t, s, `"object-marking-refs"`)
	assert.Contains(t, s, `"external-references"`)
	assert.Contains(t, s, `"source-name":"cve"`)
	assert.Contains(t, s, `"external-id":"CVE-2024-0001"`)
}
