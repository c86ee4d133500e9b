package stix

import (
	"github.com/google/uuid"
)

// ObservableNamespace is the fixed UUID namespace for deterministic
// (content-addressed) observable identifiers, per STIX 2.1 section 2.9.
var ObservableNamespace = uuid.MustParse("00abedb4-aa42-466c-9c01-fed23315a9b7")

// observableIDFallback is the identity key used when an observable carries
// none of the fields designated for identity derivation. All such instances
// of a kind share one identifier; see the package documentation on id
// collisions before changing this.
const observableIDFallback = "unknown"

// Observable is implemented by every cyber observable type. Observables have
// no independent created/modified lifecycle; their identifier is a pure
// function of the identity key.
type Observable interface {
	// Type returns the fixed wire discriminant for the kind.
	Type() string
	// identityKey returns the byte string that the deterministic identifier
	// is derived from.
	identityKey() string
}

// DeriveID computes the deterministic identifier for (objectType, key):
// a v5 (SHA-1, name-based) UUID in ObservableNamespace. Identical inputs
// always produce identical identifiers, which is what lets bundles
// deduplicate observables by content.
func DeriveID(objectType, key string) string {
	return objectType + "--" + uuid.NewSHA1(ObservableNamespace, []byte(key)).String()
}

// ObservableID returns the content-addressed identifier for an observable.
func ObservableID(o Observable) string {
	return DeriveID(o.Type(), o.identityKey())
}
