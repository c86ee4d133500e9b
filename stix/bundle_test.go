package stix

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func buildTestBundle(t *testing.T) *Bundle {
	t.Helper()

	identity, err := NewIdentityBuilder().Name("ACME").IdentityClass(IdentityClassOrganization).Build()
	require.NoError(t, err)

	malware, err := NewMalwareBuilder().Name("BadWare").MalwareTypes("trojan").Build()
	require.NoError(t, err)

	indicator, err := NewIndicatorBuilder().
		Pattern("[domain-name:value = 'evil.com']").
		PatternType(PatternTypeSTIX).
		ValidFrom(time.Now().UTC()).
		Build()
	require.NoError(t, err)

	rel := NewRelationship(indicator.ID(), malware.ID(), RelationshipIndicates)

	return NewBundle(
		NewObject(identity),
		NewObject(malware),
		NewObject(indicator),
		NewObject(rel),
		NewObject(NewDomainName("evil.com")),
	)
}

func TestNewBundle(t *testing.T) {
	bundle := buildTestBundle(t)

	assert.Equal(t, TypeBundle, bundle.BundleType)
	assert.True(t, IsValidRefForType(bundle.ID(), TypeBundle))
	assert.Equal(t, 5, bundle.Len())
	assert.False(t, bundle.IsEmpty())
}

func TestBundle_GetByID(t *testing.T) {
	bundle := buildTestBundle(t)
	malware := bundle.Malware()[0]

	found, ok := bundle.Get(malware.ID())
	require.True(t, ok)
	assert.Equal(t, TypeMalware, found.Type())

	// Observables are found by their derived id.
	domainID := DeriveID(TypeDomainName, "evil.com")
	found, ok = bundle.Get(domainID)
	require.True(t, ok)
	assert.Equal(t, TypeDomainName, found.Type())

	_, ok = bundle.Get("nonexistent--id")
	assert.False(t, ok)
}

func TestBundle_FiltersAndCounts(t *testing.T) {
	bundle := buildTestBundle(t)

	assert.Len(t, bundle.FilterByType(TypeMalware), 1)
	assert.Empty(t, bundle.FilterByType(TypeCampaign))
	assert.Equal(t, 1, bundle.CountByType(TypeIndicator))
	assert.Equal(t, 0, bundle.CountByType(TypeTool))

	assert.Len(t, bundle.Identities(), 1)
	assert.Len(t, bundle.Malware(), 1)
	assert.Len(t, bundle.Indicators(), 1)
	assert.Len(t, bundle.Relationships(), 1)
	assert.Empty(t, bundle.ThreatActors())

	assert.Equal(t,
		[]string{TypeDomainName, TypeIdentity, TypeIndicator, TypeMalware, TypeRelationship},
		bundle.ObjectTypes())
}

func TestBundle_FindReferencesTo(t *testing.T) {
	bundle := buildTestBundle(t)
	indicator := bundle.Indicators()[0]
	malware := bundle.Malware()[0]

	refs := bundle.FindReferencesTo(indicator.ID())
	require.Len(t, refs, 1)
	assert.Equal(t, TypeRelationship, refs[0].Type())

	assert.Len(t, bundle.FindReferencesTo(malware.ID()), 1)
	assert.Empty(t, bundle.FindReferencesTo("identity--nope"))

	sighting, err := NewSightingBuilder().
		Count(1).
		SightingOfRef(indicator.ID()).
		WhereSightedRefs("identity--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f").
		Build()
	require.NoError(t, err)
	bundle.Add(NewObject(sighting))

	assert.Len(t, bundle.FindReferencesTo(indicator.ID()), 2)
}

func TestBundle_RoundTrip(t *testing.T) {
	original := buildTestBundle(t)

	encoded, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Bundle
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	assert.Equal(t, original.ID(), decoded.ID())
	assert.Equal(t, original.Len(), decoded.Len())
	assert.Equal(t, original.ObjectTypes(), decoded.ObjectTypes())
}

// One undecodable object must not take its siblings down with it.
func TestBundle_BadObjectKeepsSiblings(t *testing.T) {
	raw := `{
		"type": "bundle",
		"id": "bundle--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f",
		"objects": [
			{"type": "domain-name", "value": "evil.com"},
			{"type": "totally-unknown", "value": "?"},
			{"value": "no type at all"},
			{"type": "x-acme-widget", "weight": 3}
		]
	}`

	var bundle Bundle
	err := json.Unmarshal([]byte(raw), &bundle)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingType)
	assert.ErrorIs(t, err, &UnknownTypeError{Type: "totally-unknown"})

	// The two decodable objects survive.
	assert.Equal(t, 2, bundle.Len())
	assert.Equal(t, []string{TypeDomainName, "x-acme-widget"}, bundle.ObjectTypes())
}

func TestParseBundle_SkipsBadObjects(t *testing.T) {
	raw := `{
		"type": "bundle",
		"id": "bundle--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f",
		"objects": [
			{"type": "ipv4-addr", "value": "10.0.0.1"},
			{"type": "not-a-thing"},
			{"type": "mutex", "name": "Global\\lock"}
		]
	}`

	bundle, err := ParseBundle([]byte(raw), zap.NewNop().Sugar())
	require.NoError(t, err)
	assert.Equal(t, 2, bundle.Len())

	// A nil logger is replaced, not dereferenced.
	bundle, err = ParseBundle([]byte(raw), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, bundle.Len())
}

func TestParseBundle_RejectsNonBundle(t *testing.T) {
	_, err := ParseBundle([]byte(`{"type":"malware","name":"x"}`), nil)
	assert.Error(t, err)

	_, err = ParseBundle([]byte(`not json`), nil)
	assert.Error(t, err)
}
