package stix

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameRequiredBuilders(t *testing.T) {
	tests := []struct {
		name  string
		build func() (StixObject, error)
	}{
		{"attack pattern", func() (StixObject, error) { return NewAttackPatternBuilder().Build() }},
		{"campaign", func() (StixObject, error) { return NewCampaignBuilder().Build() }},
		{"course of action", func() (StixObject, error) { return NewCourseOfActionBuilder().Build() }},
		{"incident", func() (StixObject, error) { return NewIncidentBuilder().Build() }},
		{"infrastructure", func() (StixObject, error) { return NewInfrastructureBuilder().Build() }},
		{"intrusion set", func() (StixObject, error) { return NewIntrusionSetBuilder().Build() }},
		{"report", func() (StixObject, error) { return NewReportBuilder().Build() }},
		{"threat actor", func() (StixObject, error) { return NewThreatActorBuilder().Build() }},
		{"tool", func() (StixObject, error) { return NewToolBuilder().Build() }},
		{"vulnerability", func() (StixObject, error) { return NewVulnerabilityBuilder().Build() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.build()
			assert.ErrorIs(t, err, &MissingFieldError{Field: "name"})
		})
	}
}

func TestAttackPatternBuilder(t *testing.T) {
	ap, err := NewAttackPatternBuilder().
		Name("Spearphishing Attachment").
		Description("Adversaries send malicious attachments.").
		Build()
	require.NoError(t, err)

	assert.Equal(t, TypeAttackPattern, ap.Type())
	assert.True(t, IsValidRefForType(ap.ID(), TypeAttackPattern))
}

func TestCampaignBuilder_Timestamps(t *testing.T) {
	first := time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	campaign, err := NewCampaignBuilder().
		Name("Operation X").
		FirstSeen(first).
		LastSeen(last).
		Build()
	require.NoError(t, err)

	encoded, err := json.Marshal(campaign)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"first_seen":"2023-06-01T00:00:00Z"`)
	assert.Contains(t, string(encoded), `"last_seen":"2024-01-01T00:00:00Z"`)
}

func TestGroupingBuilder_RequiredFields(t *testing.T) {
	_, err := NewGroupingBuilder().Build()
	assert.ErrorIs(t, err, &MissingFieldError{Field: "context"})

	_, err = NewGroupingBuilder().Context("suspicious-activity").Build()
	assert.ErrorIs(t, err, &MissingFieldError{Field: "object_refs"})

	grouping, err := NewGroupingBuilder().
		Context("suspicious-activity").
		ObjectRefs("indicator--a").
		Build()
	require.NoError(t, err)
	assert.Equal(t, TypeGrouping, grouping.Type())
}

func TestLocationBuilder_RequiresPlacement(t *testing.T) {
	_, err := NewLocationBuilder().Name("nowhere").Build()
	assert.ErrorIs(t, err, &MissingFieldError{})

	// Latitude alone is not placement; the pair is required.
	_, err = NewLocationBuilder().Latitude(48.85).Build()
	assert.Error(t, err)

	byCountry, err := NewLocationBuilder().Country("FR").Build()
	require.NoError(t, err)
	assert.Equal(t, TypeLocation, byCountry.Type())

	byRegion, err := NewLocationBuilder().Region("western-europe").Build()
	require.NoError(t, err)
	assert.Equal(t, "western-europe", byRegion.Region)

	byCoords, err := NewLocationBuilder().Latitude(48.85).Longitude(2.35).Build()
	require.NoError(t, err)
	require.NotNil(t, byCoords.Latitude)
	assert.Equal(t, 48.85, *byCoords.Latitude)
}

func TestLocation_KebabWireCasing(t *testing.T) {
	location, err := NewLocationBuilder().
		Country("FR").
		AdministrativeArea("Ile-de-France").
		City("Paris").
		StreetAddress("1 Rue X").
		PostalCode("75001").
		Build()
	require.NoError(t, err)

	encoded, err := json.Marshal(location)
	require.NoError(t, err)
	s := string(encoded)
	assert.Contains(t, s, `"administrative-area"`)
	assert.Contains(t, s, `"street-address"`)
	assert.Contains(t, s, `"postal-code"`)
}

func TestMalwareAnalysisBuilder(t *testing.T) {
	_, err := NewMalwareAnalysisBuilder().Build()
	assert.ErrorIs(t, err, &MissingFieldError{Field: "product"})

	analysis, err := NewMalwareAnalysisBuilder().
		Product("sandbox-x").
		Result("malicious").
		Build()
	require.NoError(t, err)
	assert.Equal(t, TypeMalwareAnalysis, analysis.Type())
}

func TestNote_AbstractWireKey(t *testing.T) {
	note, err := NewNoteBuilder().
		Abstract("triage summary").
		Content("Looks like commodity malware.").
		Build()
	require.NoError(t, err)

	encoded, err := json.Marshal(note)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"abstract":"triage summary"`)

	var decoded Note
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, "triage summary", decoded.Abstract)
}

func TestObservedDataBuilder_RequiredFields(t *testing.T) {
	now := time.Now().UTC()

	_, err := NewObservedDataBuilder().Build()
	assert.ErrorIs(t, err, &MissingFieldError{Field: "first_observed"})

	od, err := NewObservedDataBuilder().
		FirstObserved(now).
		LastObserved(now).
		NumberObserved(1).
		ObjectRefs(DeriveID(TypeDomainName, "evil.com")).
		Build()
	require.NoError(t, err)
	assert.Equal(t, uint32(1), od.NumberObserved)
}

func TestOpinionBuilder_RequiredFields(t *testing.T) {
	_, err := NewOpinionBuilder().Opinion("agree").Build()
	assert.ErrorIs(t, err, &MissingFieldError{Field: "object_refs"})

	_, err = NewOpinionBuilder().ObjectRefs("indicator--a").Build()
	assert.ErrorIs(t, err, &MissingFieldError{Field: "opinion"})

	opinion, err := NewOpinionBuilder().
		ObjectRefs("indicator--a").
		Opinion("strongly-agree").
		Authors("analyst@example.com").
		Build()
	require.NoError(t, err)
	assert.Equal(t, "strongly-agree", opinion.Opinion)
}

func TestTool_KebabToolTypes(t *testing.T) {
	tool, err := NewToolBuilder().
		Name("mimikatz").
		ToolTypes("credential-exploitation").
		Build()
	require.NoError(t, err)

	encoded, err := json.Marshal(tool)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"tool-types":["credential-exploitation"]`)
}

func TestThreatActor_SnakeTypes(t *testing.T) {
	actor, err := NewThreatActorBuilder().
		Name("APT-X").
		ThreatActorTypes("nation-state").
		Build()
	require.NoError(t, err)

	encoded, err := json.Marshal(actor)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"threat_actor_types":["nation-state"]`)
}

func TestMarkingDefinition_TLP(t *testing.T) {
	marking := NewTLPMarking("Amber")

	assert.Equal(t, TypeMarkingDefinition, marking.Type())
	assert.Equal(t, "tlp", marking.DefinitionType)
	assert.Equal(t, "TLP:AMBER", marking.Name)

	encoded, err := json.Marshal(marking)
	require.NoError(t, err)
	s := string(encoded)
	assert.Contains(t, s, `"definition-type":"tlp"`)
	assert.Contains(t, s, `"tlp":"amber"`)
}

func TestLanguageContentBuilder(t *testing.T) {
	_, err := NewLanguageContentBuilder().Build()
	assert.ErrorIs(t, err, &MissingFieldError{Field: "object_ref"})

	lc, err := NewLanguageContentBuilder().
		ObjectRef("campaign--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f").
		ObjectModified(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)).
		Contents(map[string]map[string]string{
			"de": {"name": "Operation X (de)"},
		}).
		Build()
	require.NoError(t, err)

	encoded, err := json.Marshal(lc)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"object-ref"`)
	assert.Contains(t, string(encoded), `"object-modified"`)
}

func TestExtensionDefinitionBuilder(t *testing.T) {
	_, err := NewExtensionDefinitionBuilder().Name("x").Schema("https://example.com/s").Version("1.0").Build()
	assert.ErrorIs(t, err, &MissingFieldError{Field: "extension_types"})

	ext, err := NewExtensionDefinitionBuilder().
		Name("acme extension").
		Schema("https://example.com/schema.json").
		Version("1.2.1").
		ExtensionTypes("property-extension").
		Build()
	require.NoError(t, err)

	encoded, err := json.Marshal(ext)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"extension-types":["property-extension"]`)
}

func TestVocabularies(t *testing.T) {
	assert.True(t, IdentityClassOrganization.IsValid())
	assert.False(t, IdentityClass("corp").IsValid())
	assert.Len(t, AllIdentityClasses, 6)

	assert.True(t, PatternTypeSTIX.IsValid())
	assert.True(t, PatternTypeYARA.IsValid())
	assert.False(t, PatternType("regex").IsValid())
	assert.Len(t, AllPatternTypes, 5)
}
