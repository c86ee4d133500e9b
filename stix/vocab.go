package stix

// Object type discriminants for every kind this package decodes. The values
// are the canonical lowercase-kebab vocabulary used on the wire; dispatch is
// exact, case-sensitive string matching against these.
const (
	TypeAttackPattern       = "attack-pattern"
	TypeBundle              = "bundle"
	TypeCampaign            = "campaign"
	TypeCourseOfAction      = "course-of-action"
	TypeExtensionDefinition = "extension-definition"
	TypeGrouping            = "grouping"
	TypeIdentity            = "identity"
	TypeIncident            = "incident"
	TypeIndicator           = "indicator"
	TypeInfrastructure      = "infrastructure"
	TypeIntrusionSet        = "intrusion-set"
	TypeLanguageContent     = "language-content"
	TypeLocation            = "location"
	TypeMalware             = "malware"
	TypeMalwareAnalysis     = "malware-analysis"
	TypeMarkingDefinition   = "marking-definition"
	TypeNote                = "note"
	TypeObservedData        = "observed-data"
	TypeOpinion             = "opinion"
	TypeRelationship        = "relationship"
	TypeReport              = "report"
	TypeSighting            = "sighting"
	TypeThreatActor         = "threat-actor"
	TypeTool                = "tool"
	TypeVulnerability       = "vulnerability"

	TypeArtifact           = "artifact"
	TypeAutonomousSystem   = "autonomous-system"
	TypeDirectory          = "directory"
	TypeDomainName         = "domain-name"
	TypeEmailAddr          = "email-addr"
	TypeEmailMessage       = "email-message"
	TypeFile               = "file"
	TypeIPv4Addr           = "ipv4-addr"
	TypeIPv6Addr           = "ipv6-addr"
	TypeMacAddr            = "mac-addr"
	TypeMutex              = "mutex"
	TypeNetworkTraffic     = "network-traffic"
	TypeProcess            = "process"
	TypeSocketAddr         = "socket-addr"
	TypeSoftware           = "software"
	TypeSoftwarePackage    = "software-package"
	TypeURL                = "url"
	TypeUserAccount        = "user-account"
	TypeWindowsRegistryKey = "windows-registry-key"
	TypeX509Certificate    = "x509-certificate"
)

// CustomTypePrefix is the reserved prefix for vendor-extension object types.
// Objects whose discriminant starts with it decode into the Custom case.
const CustomTypePrefix = "x-"

// IdentityClass describes what kind of entity an Identity object represents.
type IdentityClass string

const (
	IdentityClassIndividual   IdentityClass = "individual"
	IdentityClassGroup        IdentityClass = "group"
	IdentityClassSystem       IdentityClass = "system"
	IdentityClassOrganization IdentityClass = "organization"
	IdentityClassClass        IdentityClass = "class"
	IdentityClassUnspecified  IdentityClass = "unspecified"
)

// AllIdentityClasses lists the valid identity classes for validation.
var AllIdentityClasses = []IdentityClass{
	IdentityClassIndividual, IdentityClassGroup, IdentityClassSystem,
	IdentityClassOrganization, IdentityClassClass, IdentityClassUnspecified,
}

// IsValid checks if the identity class is a vocabulary member.
func (c IdentityClass) IsValid() bool {
	for _, valid := range AllIdentityClasses {
		if c == valid {
			return true
		}
	}
	return false
}

// PatternType identifies the matching language an Indicator pattern is
// written in. Only PatternTypeSTIX patterns are validated by this package.
type PatternType string

const (
	PatternTypeSTIX     PatternType = "stix"
	PatternTypePCRE     PatternType = "pcre"
	PatternTypeSnort    PatternType = "snort"
	PatternTypeSuricata PatternType = "suricata"
	PatternTypeYARA     PatternType = "yara"
)

// AllPatternTypes lists the valid pattern dialects.
var AllPatternTypes = []PatternType{
	PatternTypeSTIX, PatternTypePCRE, PatternTypeSnort,
	PatternTypeSuricata, PatternTypeYARA,
}

// IsValid checks if the pattern type is a vocabulary member.
func (p PatternType) IsValid() bool {
	for _, valid := range AllPatternTypes {
		if p == valid {
			return true
		}
	}
	return false
}

// HashAlgorithm names the hash algorithms used in hashes maps. The constants
// double as the map keys on the wire.
type HashAlgorithm string

const (
	HashMD5    HashAlgorithm = "MD5"
	HashSHA1   HashAlgorithm = "SHA-1"
	HashSHA256 HashAlgorithm = "SHA-256"
	HashSHA512 HashAlgorithm = "SHA-512"
)

// RelationshipType is the open vocabulary of relationship kinds between
// domain objects.
type RelationshipType string

const (
	RelationshipTargets      RelationshipType = "targets"
	RelationshipUses         RelationshipType = "uses"
	RelationshipLocatedAt    RelationshipType = "located-at"
	RelationshipAttributedTo RelationshipType = "attributed-to"
	RelationshipIndicates    RelationshipType = "indicates"
	RelationshipVariantOf    RelationshipType = "variant-of"
	RelationshipRelatedTo    RelationshipType = "related-to"
	RelationshipMitigates    RelationshipType = "mitigates"
)

// IndicatorType is the open vocabulary for indicator classification labels.
type IndicatorType string

const (
	IndicatorAnomalousActivity IndicatorType = "anomalous-activity"
	IndicatorAnonymization     IndicatorType = "anonymization"
	IndicatorBenign            IndicatorType = "benign"
	IndicatorCompromised       IndicatorType = "compromised"
	IndicatorMaliciousActivity IndicatorType = "malicious-activity"
	IndicatorAttribution       IndicatorType = "attribution"
	IndicatorUnknown           IndicatorType = "unknown"
)
