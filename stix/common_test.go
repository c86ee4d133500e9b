package stix

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	id := NewID(TypeMalware)
	assert.True(t, IsValidID(id))
	assert.Equal(t, TypeMalware, TypeFromID(id))

	// Random policy: two ids never collide.
	assert.NotEqual(t, id, NewID(TypeMalware))
}

func TestIsValidID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "valid", id: "malware--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f", want: true},
		{name: "no separator", id: "malware-8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f", want: false},
		{name: "empty type", id: "--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f", want: false},
		{name: "bad uuid", id: "malware--not-a-uuid", want: false},
		{name: "empty", id: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidID(tt.id))
		})
	}
}

func TestTypeFromID(t *testing.T) {
	assert.Equal(t, "indicator", TypeFromID("indicator--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f"))
	assert.Equal(t, "", TypeFromID("indicator--junk"))
	assert.Equal(t, "", TypeFromID("no-separator"))
}

func TestIsValidRefForType(t *testing.T) {
	id := NewID(TypeIdentity)
	assert.True(t, IsValidRefForType(id, TypeIdentity))
	assert.False(t, IsValidRefForType(id, TypeMalware))
	assert.False(t, IsValidRefForType("garbage", TypeIdentity))
}

func TestNewCommonProperties(t *testing.T) {
	common := NewCommonProperties(TypeIdentity, "identity--8e2e2d2b-17d4-4cbf-938f-98ee46b3cd3f")

	assert.Equal(t, TypeIdentity, common.Type())
	assert.Equal(t, TypeIdentity, TypeFromID(common.ID()))
	assert.Equal(t, SpecVersion, common.SpecVersion)
	assert.Equal(t, common.CreatedAt, common.Modified)
	assert.NotEmpty(t, common.CreatedByRef)
}

func TestNewVersion(t *testing.T) {
	common := NewCommonProperties(TypeMalware, "")
	id := common.ID()
	created := common.Created()
	before := common.Modified

	time.Sleep(2 * time.Millisecond)
	common.NewVersion()

	// Only the modified timestamp moves.
	assert.Equal(t, id, common.ID())
	assert.Equal(t, created, common.Created())
	assert.True(t, common.Modified.After(before))
}

func TestSetCustom(t *testing.T) {
	common := NewCommonProperties(TypeIdentity, "")
	common.SetCustom("x_vendor_tag", "v1")
	common.SetCustom("x_score", 42)

	require.NotNil(t, common.Custom)
	assert.Equal(t, "v1", common.Custom["x_vendor_tag"])
	assert.Equal(t, 42, common.Custom["x_score"])
}
