package stix

import (
	"encoding/json"
	"time"
)

// Remaining STIX domain objects. These follow the same shape as the objects
// in objects.go: embedded common block, fluent builder that stamps a fresh
// common block on Build, and an extras-aware codec pair.
//
// Note the casing splits: course-of-action, incident, location and tool use
// kebab-case for their own multiword fields while the rest use snake_case.

// AttackPattern describes an adversary technique (e.g. an ATT&CK entry).
type AttackPattern struct {
	CommonProperties
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func NewAttackPatternBuilder() *AttackPatternBuilder { return &AttackPatternBuilder{} }

type AttackPatternBuilder struct {
	name         string
	description  string
	createdByRef string
}

func (b *AttackPatternBuilder) Name(name string) *AttackPatternBuilder {
	b.name = name
	return b
}

func (b *AttackPatternBuilder) Description(description string) *AttackPatternBuilder {
	b.description = description
	return b
}

func (b *AttackPatternBuilder) CreatedByRef(ref string) *AttackPatternBuilder {
	b.createdByRef = ref
	return b
}

func (b *AttackPatternBuilder) Build() (*AttackPattern, error) {
	if b.name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	return &AttackPattern{
		CommonProperties: NewCommonProperties(TypeAttackPattern, b.createdByRef),
		Name:             b.name,
		Description:      b.description,
	}, nil
}

func (a AttackPattern) MarshalJSON() ([]byte, error) {
	type plain AttackPattern
	return encodeWithExtras(plain(a), a.Custom)
}

func (a *AttackPattern) UnmarshalJSON(data []byte) error {
	type plain AttackPattern
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*a = AttackPattern(p)
	return nil
}

// Campaign groups adversary activity over a period of time.
type Campaign struct {
	CommonProperties
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	FirstSeen   *time.Time `json:"first_seen,omitempty"`
	LastSeen    *time.Time `json:"last_seen,omitempty"`
}

func NewCampaignBuilder() *CampaignBuilder { return &CampaignBuilder{} }

type CampaignBuilder struct {
	name         string
	description  string
	firstSeen    *time.Time
	lastSeen     *time.Time
	createdByRef string
}

func (b *CampaignBuilder) Name(name string) *CampaignBuilder {
	b.name = name
	return b
}

func (b *CampaignBuilder) Description(description string) *CampaignBuilder {
	b.description = description
	return b
}

func (b *CampaignBuilder) FirstSeen(t time.Time) *CampaignBuilder {
	b.firstSeen = &t
	return b
}

func (b *CampaignBuilder) LastSeen(t time.Time) *CampaignBuilder {
	b.lastSeen = &t
	return b
}

func (b *CampaignBuilder) CreatedByRef(ref string) *CampaignBuilder {
	b.createdByRef = ref
	return b
}

func (b *CampaignBuilder) Build() (*Campaign, error) {
	if b.name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	return &Campaign{
		CommonProperties: NewCommonProperties(TypeCampaign, b.createdByRef),
		Name:             b.name,
		Description:      b.description,
		FirstSeen:        b.firstSeen,
		LastSeen:         b.lastSeen,
	}, nil
}

func (c Campaign) MarshalJSON() ([]byte, error) {
	type plain Campaign
	return encodeWithExtras(plain(c), c.Custom)
}

func (c *Campaign) UnmarshalJSON(data []byte) error {
	type plain Campaign
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*c = Campaign(p)
	return nil
}

// CourseOfAction is a recommendation or mitigation action.
type CourseOfAction struct {
	CommonProperties
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func NewCourseOfActionBuilder() *CourseOfActionBuilder { return &CourseOfActionBuilder{} }

type CourseOfActionBuilder struct {
	name         string
	description  string
	createdByRef string
}

func (b *CourseOfActionBuilder) Name(name string) *CourseOfActionBuilder {
	b.name = name
	return b
}

func (b *CourseOfActionBuilder) Description(description string) *CourseOfActionBuilder {
	b.description = description
	return b
}

func (b *CourseOfActionBuilder) CreatedByRef(ref string) *CourseOfActionBuilder {
	b.createdByRef = ref
	return b
}

func (b *CourseOfActionBuilder) Build() (*CourseOfAction, error) {
	if b.name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	return &CourseOfAction{
		CommonProperties: NewCommonProperties(TypeCourseOfAction, b.createdByRef),
		Name:             b.name,
		Description:      b.description,
	}, nil
}

func (c CourseOfAction) MarshalJSON() ([]byte, error) {
	type plain CourseOfAction
	return encodeWithExtras(plain(c), c.Custom)
}

func (c *CourseOfAction) UnmarshalJSON(data []byte) error {
	type plain CourseOfAction
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*c = CourseOfAction(p)
	return nil
}

// Grouping asserts that a set of objects share a context.
type Grouping struct {
	CommonProperties
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Context     string   `json:"context"`
	ObjectRefs  []string `json:"object_refs"`
}

func NewGroupingBuilder() *GroupingBuilder { return &GroupingBuilder{} }

type GroupingBuilder struct {
	name         string
	description  string
	context      string
	objectRefs   []string
	createdByRef string
}

func (b *GroupingBuilder) Name(name string) *GroupingBuilder {
	b.name = name
	return b
}

func (b *GroupingBuilder) Description(description string) *GroupingBuilder {
	b.description = description
	return b
}

func (b *GroupingBuilder) Context(context string) *GroupingBuilder {
	b.context = context
	return b
}

func (b *GroupingBuilder) ObjectRefs(refs ...string) *GroupingBuilder {
	b.objectRefs = refs
	return b
}

func (b *GroupingBuilder) CreatedByRef(ref string) *GroupingBuilder {
	b.createdByRef = ref
	return b
}

func (b *GroupingBuilder) Build() (*Grouping, error) {
	if b.context == "" {
		return nil, &MissingFieldError{Field: "context"}
	}
	if b.objectRefs == nil {
		return nil, &MissingFieldError{Field: "object_refs"}
	}
	return &Grouping{
		CommonProperties: NewCommonProperties(TypeGrouping, b.createdByRef),
		Name:             b.name,
		Description:      b.description,
		Context:          b.context,
		ObjectRefs:       b.objectRefs,
	}, nil
}

func (g Grouping) MarshalJSON() ([]byte, error) {
	type plain Grouping
	return encodeWithExtras(plain(g), g.Custom)
}

func (g *Grouping) UnmarshalJSON(data []byte) error {
	type plain Grouping
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*g = Grouping(p)
	return nil
}

// Incident is a stub object for security incidents.
type Incident struct {
	CommonProperties
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func NewIncidentBuilder() *IncidentBuilder { return &IncidentBuilder{} }

type IncidentBuilder struct {
	name         string
	description  string
	createdByRef string
}

func (b *IncidentBuilder) Name(name string) *IncidentBuilder {
	b.name = name
	return b
}

func (b *IncidentBuilder) Description(description string) *IncidentBuilder {
	b.description = description
	return b
}

func (b *IncidentBuilder) CreatedByRef(ref string) *IncidentBuilder {
	b.createdByRef = ref
	return b
}

func (b *IncidentBuilder) Build() (*Incident, error) {
	if b.name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	return &Incident{
		CommonProperties: NewCommonProperties(TypeIncident, b.createdByRef),
		Name:             b.name,
		Description:      b.description,
	}, nil
}

func (i Incident) MarshalJSON() ([]byte, error) {
	type plain Incident
	return encodeWithExtras(plain(i), i.Custom)
}

func (i *Incident) UnmarshalJSON(data []byte) error {
	type plain Incident
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*i = Incident(p)
	return nil
}

// Infrastructure describes systems and services used by adversaries or
// defenders.
type Infrastructure struct {
	CommonProperties
	Name                string   `json:"name"`
	Description         string   `json:"description,omitempty"`
	InfrastructureTypes []string `json:"infrastructure_types,omitempty"`
}

func NewInfrastructureBuilder() *InfrastructureBuilder { return &InfrastructureBuilder{} }

type InfrastructureBuilder struct {
	name                string
	description         string
	infrastructureTypes []string
	createdByRef        string
}

func (b *InfrastructureBuilder) Name(name string) *InfrastructureBuilder {
	b.name = name
	return b
}

func (b *InfrastructureBuilder) Description(description string) *InfrastructureBuilder {
	b.description = description
	return b
}

func (b *InfrastructureBuilder) InfrastructureTypes(types ...string) *InfrastructureBuilder {
	b.infrastructureTypes = types
	return b
}

func (b *InfrastructureBuilder) CreatedByRef(ref string) *InfrastructureBuilder {
	b.createdByRef = ref
	return b
}

func (b *InfrastructureBuilder) Build() (*Infrastructure, error) {
	if b.name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	return &Infrastructure{
		CommonProperties:    NewCommonProperties(TypeInfrastructure, b.createdByRef),
		Name:                b.name,
		Description:         b.description,
		InfrastructureTypes: b.infrastructureTypes,
	}, nil
}

func (i Infrastructure) MarshalJSON() ([]byte, error) {
	type plain Infrastructure
	return encodeWithExtras(plain(i), i.Custom)
}

func (i *Infrastructure) UnmarshalJSON(data []byte) error {
	type plain Infrastructure
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*i = Infrastructure(p)
	return nil
}

// IntrusionSet groups adversary behaviour believed to share common
// properties.
type IntrusionSet struct {
	CommonProperties
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func NewIntrusionSetBuilder() *IntrusionSetBuilder { return &IntrusionSetBuilder{} }

type IntrusionSetBuilder struct {
	name         string
	description  string
	createdByRef string
}

func (b *IntrusionSetBuilder) Name(name string) *IntrusionSetBuilder {
	b.name = name
	return b
}

func (b *IntrusionSetBuilder) Description(description string) *IntrusionSetBuilder {
	b.description = description
	return b
}

func (b *IntrusionSetBuilder) CreatedByRef(ref string) *IntrusionSetBuilder {
	b.createdByRef = ref
	return b
}

func (b *IntrusionSetBuilder) Build() (*IntrusionSet, error) {
	if b.name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	return &IntrusionSet{
		CommonProperties: NewCommonProperties(TypeIntrusionSet, b.createdByRef),
		Name:             b.name,
		Description:      b.description,
	}, nil
}

func (i IntrusionSet) MarshalJSON() ([]byte, error) {
	type plain IntrusionSet
	return encodeWithExtras(plain(i), i.Custom)
}

func (i *IntrusionSet) UnmarshalJSON(data []byte) error {
	type plain IntrusionSet
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*i = IntrusionSet(p)
	return nil
}

// Location is a geographic location at any granularity.
type Location struct {
	CommonProperties
	Name               string   `json:"name,omitempty"`
	Description        string   `json:"description,omitempty"`
	Latitude           *float64 `json:"latitude,omitempty"`
	Longitude          *float64 `json:"longitude,omitempty"`
	Precision          *float64 `json:"precision,omitempty"`
	Region             string   `json:"region,omitempty"`
	Country            string   `json:"country,omitempty"`
	AdministrativeArea string   `json:"administrative-area,omitempty"`
	City               string   `json:"city,omitempty"`
	StreetAddress      string   `json:"street-address,omitempty"`
	PostalCode         string   `json:"postal-code,omitempty"`
}

func NewLocationBuilder() *LocationBuilder { return &LocationBuilder{} }

type LocationBuilder struct {
	name               string
	description        string
	latitude           *float64
	longitude          *float64
	precision          *float64
	region             string
	country            string
	administrativeArea string
	city               string
	streetAddress      string
	postalCode         string
	createdByRef       string
}

func (b *LocationBuilder) Name(name string) *LocationBuilder {
	b.name = name
	return b
}

func (b *LocationBuilder) Description(description string) *LocationBuilder {
	b.description = description
	return b
}

func (b *LocationBuilder) Latitude(lat float64) *LocationBuilder {
	b.latitude = &lat
	return b
}

func (b *LocationBuilder) Longitude(lon float64) *LocationBuilder {
	b.longitude = &lon
	return b
}

func (b *LocationBuilder) Precision(p float64) *LocationBuilder {
	b.precision = &p
	return b
}

func (b *LocationBuilder) Region(region string) *LocationBuilder {
	b.region = region
	return b
}

func (b *LocationBuilder) Country(country string) *LocationBuilder {
	b.country = country
	return b
}

func (b *LocationBuilder) AdministrativeArea(area string) *LocationBuilder {
	b.administrativeArea = area
	return b
}

func (b *LocationBuilder) City(city string) *LocationBuilder {
	b.city = city
	return b
}

func (b *LocationBuilder) StreetAddress(addr string) *LocationBuilder {
	b.streetAddress = addr
	return b
}

func (b *LocationBuilder) PostalCode(code string) *LocationBuilder {
	b.postalCode = code
	return b
}

func (b *LocationBuilder) CreatedByRef(ref string) *LocationBuilder {
	b.createdByRef = ref
	return b
}

// Build assembles the Location. At least one of region, country, or the
// latitude+longitude pair must be set.
func (b *LocationBuilder) Build() (*Location, error) {
	if b.region == "" && b.country == "" && !(b.latitude != nil && b.longitude != nil) {
		return nil, &MissingFieldError{Field: "one of region|country|(latitude+longitude)"}
	}
	return &Location{
		CommonProperties:   NewCommonProperties(TypeLocation, b.createdByRef),
		Name:               b.name,
		Description:        b.description,
		Latitude:           b.latitude,
		Longitude:          b.longitude,
		Precision:          b.precision,
		Region:             b.region,
		Country:            b.country,
		AdministrativeArea: b.administrativeArea,
		City:               b.city,
		StreetAddress:      b.streetAddress,
		PostalCode:         b.postalCode,
	}, nil
}

func (l Location) MarshalJSON() ([]byte, error) {
	type plain Location
	return encodeWithExtras(plain(l), l.Custom)
}

func (l *Location) UnmarshalJSON(data []byte) error {
	type plain Location
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*l = Location(p)
	return nil
}

// MalwareAnalysis captures the results of running an analysis tool over a
// malware sample.
type MalwareAnalysis struct {
	CommonProperties
	Product         string     `json:"product"`
	Version         string     `json:"version,omitempty"`
	Result          string     `json:"result,omitempty"`
	AnalysisStarted *time.Time `json:"analysis_started,omitempty"`
	AnalysisEnded   *time.Time `json:"analysis_ended,omitempty"`
	SampleRef       string     `json:"sample_ref,omitempty"`
}

func NewMalwareAnalysisBuilder() *MalwareAnalysisBuilder { return &MalwareAnalysisBuilder{} }

type MalwareAnalysisBuilder struct {
	product         string
	version         string
	result          string
	analysisStarted *time.Time
	analysisEnded   *time.Time
	sampleRef       string
	createdByRef    string
}

func (b *MalwareAnalysisBuilder) Product(product string) *MalwareAnalysisBuilder {
	b.product = product
	return b
}

func (b *MalwareAnalysisBuilder) Version(version string) *MalwareAnalysisBuilder {
	b.version = version
	return b
}

func (b *MalwareAnalysisBuilder) Result(result string) *MalwareAnalysisBuilder {
	b.result = result
	return b
}

func (b *MalwareAnalysisBuilder) AnalysisStarted(t time.Time) *MalwareAnalysisBuilder {
	b.analysisStarted = &t
	return b
}

func (b *MalwareAnalysisBuilder) AnalysisEnded(t time.Time) *MalwareAnalysisBuilder {
	b.analysisEnded = &t
	return b
}

func (b *MalwareAnalysisBuilder) SampleRef(ref string) *MalwareAnalysisBuilder {
	b.sampleRef = ref
	return b
}

func (b *MalwareAnalysisBuilder) CreatedByRef(ref string) *MalwareAnalysisBuilder {
	b.createdByRef = ref
	return b
}

func (b *MalwareAnalysisBuilder) Build() (*MalwareAnalysis, error) {
	if b.product == "" {
		return nil, &MissingFieldError{Field: "product"}
	}
	return &MalwareAnalysis{
		CommonProperties: NewCommonProperties(TypeMalwareAnalysis, b.createdByRef),
		Product:          b.product,
		Version:          b.version,
		Result:           b.result,
		AnalysisStarted:  b.analysisStarted,
		AnalysisEnded:    b.analysisEnded,
		SampleRef:        b.sampleRef,
	}, nil
}

func (m MalwareAnalysis) MarshalJSON() ([]byte, error) {
	type plain MalwareAnalysis
	return encodeWithExtras(plain(m), m.Custom)
}

func (m *MalwareAnalysis) UnmarshalJSON(data []byte) error {
	type plain MalwareAnalysis
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*m = MalwareAnalysis(p)
	return nil
}

// Note is analyst commentary attached to other objects.
type Note struct {
	CommonProperties
	Abstract string `json:"abstract,omitempty"`
	Content  string `json:"content,omitempty"`
}

func NewNoteBuilder() *NoteBuilder { return &NoteBuilder{} }

type NoteBuilder struct {
	abstract     string
	content      string
	createdByRef string
}

func (b *NoteBuilder) Abstract(abstract string) *NoteBuilder {
	b.abstract = abstract
	return b
}

func (b *NoteBuilder) Content(content string) *NoteBuilder {
	b.content = content
	return b
}

func (b *NoteBuilder) CreatedByRef(ref string) *NoteBuilder {
	b.createdByRef = ref
	return b
}

func (b *NoteBuilder) Build() (*Note, error) {
	return &Note{
		CommonProperties: NewCommonProperties(TypeNote, b.createdByRef),
		Abstract:         b.abstract,
		Content:          b.content,
	}, nil
}

func (n Note) MarshalJSON() ([]byte, error) {
	type plain Note
	return encodeWithExtras(plain(n), n.Custom)
}

func (n *Note) UnmarshalJSON(data []byte) error {
	type plain Note
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*n = Note(p)
	return nil
}

// ObservedData links a window of observation to a set of observables.
type ObservedData struct {
	CommonProperties
	FirstObserved  time.Time `json:"first_observed"`
	LastObserved   time.Time `json:"last_observed"`
	NumberObserved uint32    `json:"number_observed"`
	ObjectRefs     []string  `json:"object_refs"`
}

func NewObservedDataBuilder() *ObservedDataBuilder { return &ObservedDataBuilder{} }

type ObservedDataBuilder struct {
	firstObserved  *time.Time
	lastObserved   *time.Time
	numberObserved *uint32
	objectRefs     []string
	createdByRef   string
}

func (b *ObservedDataBuilder) FirstObserved(t time.Time) *ObservedDataBuilder {
	b.firstObserved = &t
	return b
}

func (b *ObservedDataBuilder) LastObserved(t time.Time) *ObservedDataBuilder {
	b.lastObserved = &t
	return b
}

func (b *ObservedDataBuilder) NumberObserved(n uint32) *ObservedDataBuilder {
	b.numberObserved = &n
	return b
}

func (b *ObservedDataBuilder) ObjectRefs(refs ...string) *ObservedDataBuilder {
	b.objectRefs = refs
	return b
}

func (b *ObservedDataBuilder) CreatedByRef(ref string) *ObservedDataBuilder {
	b.createdByRef = ref
	return b
}

func (b *ObservedDataBuilder) Build() (*ObservedData, error) {
	if b.firstObserved == nil {
		return nil, &MissingFieldError{Field: "first_observed"}
	}
	if b.lastObserved == nil {
		return nil, &MissingFieldError{Field: "last_observed"}
	}
	if b.numberObserved == nil {
		return nil, &MissingFieldError{Field: "number_observed"}
	}
	if b.objectRefs == nil {
		return nil, &MissingFieldError{Field: "object_refs"}
	}
	return &ObservedData{
		CommonProperties: NewCommonProperties(TypeObservedData, b.createdByRef),
		FirstObserved:    *b.firstObserved,
		LastObserved:     *b.lastObserved,
		NumberObserved:   *b.numberObserved,
		ObjectRefs:       b.objectRefs,
	}, nil
}

func (o ObservedData) MarshalJSON() ([]byte, error) {
	type plain ObservedData
	return encodeWithExtras(plain(o), o.Custom)
}

func (o *ObservedData) UnmarshalJSON(data []byte) error {
	type plain ObservedData
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*o = ObservedData(p)
	return nil
}

// Opinion records an analyst's agreement or disagreement with other objects.
type Opinion struct {
	CommonProperties
	Explanation string   `json:"explanation,omitempty"`
	Authors     []string `json:"authors,omitempty"`
	ObjectRefs  []string `json:"object_refs"`
	Opinion     string   `json:"opinion"`
}

func NewOpinionBuilder() *OpinionBuilder { return &OpinionBuilder{} }

type OpinionBuilder struct {
	explanation  string
	authors      []string
	objectRefs   []string
	opinion      string
	createdByRef string
}

func (b *OpinionBuilder) Explanation(explanation string) *OpinionBuilder {
	b.explanation = explanation
	return b
}

func (b *OpinionBuilder) Authors(authors ...string) *OpinionBuilder {
	b.authors = authors
	return b
}

func (b *OpinionBuilder) ObjectRefs(refs ...string) *OpinionBuilder {
	b.objectRefs = refs
	return b
}

func (b *OpinionBuilder) Opinion(opinion string) *OpinionBuilder {
	b.opinion = opinion
	return b
}

func (b *OpinionBuilder) CreatedByRef(ref string) *OpinionBuilder {
	b.createdByRef = ref
	return b
}

func (b *OpinionBuilder) Build() (*Opinion, error) {
	if b.objectRefs == nil {
		return nil, &MissingFieldError{Field: "object_refs"}
	}
	if b.opinion == "" {
		return nil, &MissingFieldError{Field: "opinion"}
	}
	return &Opinion{
		CommonProperties: NewCommonProperties(TypeOpinion, b.createdByRef),
		Explanation:      b.explanation,
		Authors:          b.authors,
		ObjectRefs:       b.objectRefs,
		Opinion:          b.opinion,
	}, nil
}

func (o Opinion) MarshalJSON() ([]byte, error) {
	type plain Opinion
	return encodeWithExtras(plain(o), o.Custom)
}

func (o *Opinion) UnmarshalJSON(data []byte) error {
	type plain Opinion
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*o = Opinion(p)
	return nil
}

// Report collects threat intelligence into a publishable product.
type Report struct {
	CommonProperties
	Name        string     `json:"name"`
	Published   *time.Time `json:"published,omitempty"`
	ReportTypes []string   `json:"report_types,omitempty"`
	ObjectRefs  []string   `json:"object_refs,omitempty"`
}

func NewReportBuilder() *ReportBuilder { return &ReportBuilder{} }

type ReportBuilder struct {
	name         string
	published    *time.Time
	reportTypes  []string
	objectRefs   []string
	createdByRef string
}

func (b *ReportBuilder) Name(name string) *ReportBuilder {
	b.name = name
	return b
}

func (b *ReportBuilder) Published(t time.Time) *ReportBuilder {
	b.published = &t
	return b
}

func (b *ReportBuilder) ReportTypes(types ...string) *ReportBuilder {
	b.reportTypes = types
	return b
}

func (b *ReportBuilder) ObjectRefs(refs ...string) *ReportBuilder {
	b.objectRefs = refs
	return b
}

func (b *ReportBuilder) CreatedByRef(ref string) *ReportBuilder {
	b.createdByRef = ref
	return b
}

func (b *ReportBuilder) Build() (*Report, error) {
	if b.name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	return &Report{
		CommonProperties: NewCommonProperties(TypeReport, b.createdByRef),
		Name:             b.name,
		Published:        b.published,
		ReportTypes:      b.reportTypes,
		ObjectRefs:       b.objectRefs,
	}, nil
}

func (r Report) MarshalJSON() ([]byte, error) {
	type plain Report
	return encodeWithExtras(plain(r), r.Custom)
}

func (r *Report) UnmarshalJSON(data []byte) error {
	type plain Report
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*r = Report(p)
	return nil
}

// ThreatActor is an individual or group believed to operate with malicious
// intent.
type ThreatActor struct {
	CommonProperties
	Name             string   `json:"name"`
	Description      string   `json:"description,omitempty"`
	ThreatActorTypes []string `json:"threat_actor_types,omitempty"`
}

func NewThreatActorBuilder() *ThreatActorBuilder { return &ThreatActorBuilder{} }

type ThreatActorBuilder struct {
	name             string
	description      string
	threatActorTypes []string
	createdByRef     string
}

func (b *ThreatActorBuilder) Name(name string) *ThreatActorBuilder {
	b.name = name
	return b
}

func (b *ThreatActorBuilder) Description(description string) *ThreatActorBuilder {
	b.description = description
	return b
}

func (b *ThreatActorBuilder) ThreatActorTypes(types ...string) *ThreatActorBuilder {
	b.threatActorTypes = types
	return b
}

func (b *ThreatActorBuilder) CreatedByRef(ref string) *ThreatActorBuilder {
	b.createdByRef = ref
	return b
}

func (b *ThreatActorBuilder) Build() (*ThreatActor, error) {
	if b.name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	return &ThreatActor{
		CommonProperties: NewCommonProperties(TypeThreatActor, b.createdByRef),
		Name:             b.name,
		Description:      b.description,
		ThreatActorTypes: b.threatActorTypes,
	}, nil
}

func (t ThreatActor) MarshalJSON() ([]byte, error) {
	type plain ThreatActor
	return encodeWithExtras(plain(t), t.Custom)
}

func (t *ThreatActor) UnmarshalJSON(data []byte) error {
	type plain ThreatActor
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*t = ThreatActor(p)
	return nil
}

// Tool is legitimate software that can be used by threat actors.
type Tool struct {
	CommonProperties
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	ToolTypes   []string `json:"tool-types,omitempty"`
}

func NewToolBuilder() *ToolBuilder { return &ToolBuilder{} }

type ToolBuilder struct {
	name         string
	description  string
	toolTypes    []string
	createdByRef string
}

func (b *ToolBuilder) Name(name string) *ToolBuilder {
	b.name = name
	return b
}

func (b *ToolBuilder) Description(description string) *ToolBuilder {
	b.description = description
	return b
}

func (b *ToolBuilder) ToolTypes(types ...string) *ToolBuilder {
	b.toolTypes = types
	return b
}

func (b *ToolBuilder) CreatedByRef(ref string) *ToolBuilder {
	b.createdByRef = ref
	return b
}

func (b *ToolBuilder) Build() (*Tool, error) {
	if b.name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	return &Tool{
		CommonProperties: NewCommonProperties(TypeTool, b.createdByRef),
		Name:             b.name,
		Description:      b.description,
		ToolTypes:        b.toolTypes,
	}, nil
}

func (t Tool) MarshalJSON() ([]byte, error) {
	type plain Tool
	return encodeWithExtras(plain(t), t.Custom)
}

func (t *Tool) UnmarshalJSON(data []byte) error {
	type plain Tool
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*t = Tool(p)
	return nil
}

// Vulnerability is a weakness that can be exploited, usually a CVE entry
// carried in external references.
type Vulnerability struct {
	CommonProperties
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

func NewVulnerabilityBuilder() *VulnerabilityBuilder { return &VulnerabilityBuilder{} }

type VulnerabilityBuilder struct {
	name         string
	description  string
	createdByRef string
}

func (b *VulnerabilityBuilder) Name(name string) *VulnerabilityBuilder {
	b.name = name
	return b
}

func (b *VulnerabilityBuilder) Description(description string) *VulnerabilityBuilder {
	b.description = description
	return b
}

func (b *VulnerabilityBuilder) CreatedByRef(ref string) *VulnerabilityBuilder {
	b.createdByRef = ref
	return b
}

func (b *VulnerabilityBuilder) Build() (*Vulnerability, error) {
	if b.name == "" {
		return nil, &MissingFieldError{Field: "name"}
	}
	return &Vulnerability{
		CommonProperties: NewCommonProperties(TypeVulnerability, b.createdByRef),
		Name:             b.name,
		Description:      b.description,
	}, nil
}

func (v Vulnerability) MarshalJSON() ([]byte, error) {
	type plain Vulnerability
	return encodeWithExtras(plain(v), v.Custom)
}

func (v *Vulnerability) UnmarshalJSON(data []byte) error {
	type plain Vulnerability
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalWithCommon(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*v = Vulnerability(p)
	return nil
}
