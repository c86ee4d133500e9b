package stix

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFile_RoundTrip(t *testing.T) {
	original := File{
		Hashes:   map[string]string{string(HashSHA256): "aaa"},
		Name:     "dropper.exe",
		Size:     2048,
		MimeType: "application/x-dosexec",
	}

	encoded, err := json.Marshal(original)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"hashes":{"SHA-256":"aaa"},"name":"dropper.exe","size":2048,"mime_type":"application/x-dosexec"}`,
		string(encoded))

	var decoded File
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, original, decoded)
}

func TestObservable_CustomPropertiesRoundTrip(t *testing.T) {
	raw := `{"value":"evil.com","x_first_seen":"2024-01-01","x_score":99}`

	var d DomainName
	require.NoError(t, json.Unmarshal([]byte(raw), &d))
	assert.Equal(t, "evil.com", d.Value)
	assert.Equal(t, "2024-01-01", d.Custom["x_first_seen"])
	assert.Equal(t, float64(99), d.Custom["x_score"])

	encoded, err := json.Marshal(d)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(encoded))
}

// The envelope discriminant is consumed by Object, not kept as a custom
// property on the observable.
func TestObservable_TypeKeyNotRetained(t *testing.T) {
	var f File
	require.NoError(t, json.Unmarshal([]byte(`{"type":"file","name":"a.exe"}`), &f))
	assert.Nil(t, f.Custom)
}

// Wire casing differs per kind and must not be normalized.
func TestObservable_WireCasing(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		wantJSON string
	}{
		{
			name:     "process is kebab",
			value:    Process{Name: "cmd.exe", PID: 42, CommandLine: "cmd.exe /c whoami"},
			wantJSON: `{"name":"cmd.exe","pid":42,"command-line":"cmd.exe /c whoami"}`,
		},
		{
			name:     "user account is snake",
			value:    UserAccount{UserID: "S-1-5-21-1", AccountLogin: "admin", DisplayName: "Admin"},
			wantJSON: `{"user_id":"S-1-5-21-1","account_login":"admin","display_name":"Admin"}`,
		},
		{
			name:     "network traffic is snake",
			value:    NetworkTraffic{SrcRef: "a", DstRef: "b", SrcPort: 1024, DstPort: 443},
			wantJSON: `{"src_ref":"a","dst_ref":"b","src_port":1024,"dst_port":443}`,
		},
		{
			name:     "url extras are kebab",
			value:    URL{Value: "http://evil.com", URLScheme: "http"},
			wantJSON: `{"value":"http://evil.com","url-scheme":"http"}`,
		},
		{
			name:     "directory path-enc is kebab",
			value:    Directory{Path: "/tmp", PathEnc: "utf-8"},
			wantJSON: `{"path":"/tmp","path-enc":"utf-8"}`,
		},
		{
			name:     "domain resolves_to_refs is snake",
			value:    DomainName{Value: "evil.com", ResolvesToRefs: []string{"ipv4-addr--x"}},
			wantJSON: `{"value":"evil.com","resolves_to_refs":["ipv4-addr--x"]}`,
		},
		{
			name:     "software package created is snake",
			value:    SoftwarePackage{Name: "openssl", Version: "3.0.1", CPE: "cpe:x"},
			wantJSON: `{"name":"openssl","version":"3.0.1","cpe":"cpe:x"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := json.Marshal(tt.value)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantJSON, string(encoded))
		})
	}
}

func TestMutex_CurrentlyOwnedPointer(t *testing.T) {
	owned := true
	m := Mutex{Name: "Global\\lock", CurrentlyOwned: &owned}

	encoded, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Global\\lock","currently-owned":true}`, string(encoded))

	// Absent and false are distinct states.
	encoded, err = json.Marshal(Mutex{Name: "x"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"x"}`, string(encoded))
}

func TestObservableConstructors(t *testing.T) {
	assert.Equal(t, "evil.com", NewDomainName("evil.com").Value)
	assert.Equal(t, "10.0.0.1", NewIPv4Addr("10.0.0.1").Value)
	assert.Equal(t, "::1", NewIPv6Addr("::1").Value)
	assert.Equal(t, "a@b.com", NewEmailAddr("a@b.com").Value)
	assert.Equal(t, "http://x", NewURL("http://x").Value)
	assert.Equal(t, "00:11:22:33:44:55", NewMacAddr("00:11:22:33:44:55").Value)
}

func TestObservableID_Methods(t *testing.T) {
	d := NewDomainName("evil.com")
	assert.Equal(t, ObservableID(d), d.ObservableID())

	f := &File{Name: "a.exe"}
	assert.Equal(t, DeriveID(TypeFile, "a.exe"), f.ObservableID())
}
