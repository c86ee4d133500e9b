package stix

import (
	"encoding/json"
	"strconv"
	"time"
)

// Cyber observable objects (SCOs). Observables carry no common property
// block: no created/modified lifecycle, no created-by-ref. Their identifier
// is derived from content (see ids.go), so two observables describing the
// same artifact deduplicate to the same id.
//
// Field-name casing is not uniform across kinds on the wire; the json tags
// below reproduce each kind's contract exactly and must not be "normalized".

// unmarshalObservable collects the wire keys of data not consumed by the
// typed fields of v. The envelope discriminant is dropped rather than kept
// as a custom property; it is re-injected by Object on encode.
func unmarshalObservable(data []byte, v any) (map[string]any, error) {
	extras, err := decodeExtras(data, v)
	if err != nil {
		return nil, err
	}
	delete(extras, "type")
	if len(extras) == 0 {
		return nil, nil
	}
	return extras, nil
}

// File describes a file, identified by its best available hash.
type File struct {
	Hashes             map[string]string `json:"hashes,omitempty"`
	Name               string            `json:"name,omitempty"`
	Size               int64             `json:"size,omitempty"`
	MimeType           string            `json:"mime_type,omitempty"`
	ParentDirectoryRef string            `json:"parent_directory_ref,omitempty"`
	ContentRef         string            `json:"content_ref,omitempty"`
	Custom             map[string]any    `json:"-"`
}

// Type returns the fixed wire discriminant.
func (f *File) Type() string { return TypeFile }

// identityKey prefers SHA-256, then MD5, then the file name. A file with no
// hash and no name falls back to the shared sentinel key.
func (f *File) identityKey() string {
	if h, ok := f.Hashes[string(HashSHA256)]; ok && h != "" {
		return h
	}
	if h, ok := f.Hashes[string(HashMD5)]; ok && h != "" {
		return h
	}
	if f.Name != "" {
		return f.Name
	}
	return observableIDFallback
}

// ObservableID returns the content-addressed identifier.
func (f *File) ObservableID() string { return ObservableID(f) }

func (f File) MarshalJSON() ([]byte, error) {
	type plain File
	return encodeWithExtras(plain(f), f.Custom)
}

func (f *File) UnmarshalJSON(data []byte) error {
	type plain File
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalObservable(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*f = File(p)
	return nil
}

// DomainName is a fully qualified domain name observable.
type DomainName struct {
	Value          string         `json:"value"`
	ResolvesToRefs []string       `json:"resolves_to_refs,omitempty"`
	Custom         map[string]any `json:"-"`
}

// NewDomainName builds a DomainName for the given value.
func NewDomainName(value string) *DomainName { return &DomainName{Value: value} }

func (d *DomainName) Type() string        { return TypeDomainName }
func (d *DomainName) identityKey() string { return d.Value }

// ObservableID returns the content-addressed identifier.
func (d *DomainName) ObservableID() string { return ObservableID(d) }

func (d DomainName) MarshalJSON() ([]byte, error) {
	type plain DomainName
	return encodeWithExtras(plain(d), d.Custom)
}

func (d *DomainName) UnmarshalJSON(data []byte) error {
	type plain DomainName
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalObservable(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*d = DomainName(p)
	return nil
}

// IPv4Addr is an IPv4 address or CIDR block observable.
type IPv4Addr struct {
	Value          string         `json:"value"`
	ResolvesToRefs []string       `json:"resolves_to_refs,omitempty"`
	Custom         map[string]any `json:"-"`
}

// NewIPv4Addr builds an IPv4Addr for the given value.
func NewIPv4Addr(value string) *IPv4Addr { return &IPv4Addr{Value: value} }

func (a *IPv4Addr) Type() string        { return TypeIPv4Addr }
func (a *IPv4Addr) identityKey() string { return a.Value }

// ObservableID returns the content-addressed identifier.
func (a *IPv4Addr) ObservableID() string { return ObservableID(a) }

func (a IPv4Addr) MarshalJSON() ([]byte, error) {
	type plain IPv4Addr
	return encodeWithExtras(plain(a), a.Custom)
}

func (a *IPv4Addr) UnmarshalJSON(data []byte) error {
	type plain IPv4Addr
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalObservable(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*a = IPv4Addr(p)
	return nil
}

// IPv6Addr is an IPv6 address or CIDR block observable.
type IPv6Addr struct {
	Value  string         `json:"value"`
	Custom map[string]any `json:"-"`
}

// NewIPv6Addr builds an IPv6Addr for the given value.
func NewIPv6Addr(value string) *IPv6Addr { return &IPv6Addr{Value: value} }

func (a *IPv6Addr) Type() string        { return TypeIPv6Addr }
func (a *IPv6Addr) identityKey() string { return a.Value }

// ObservableID returns the content-addressed identifier.
func (a *IPv6Addr) ObservableID() string { return ObservableID(a) }

func (a IPv6Addr) MarshalJSON() ([]byte, error) {
	type plain IPv6Addr
	return encodeWithExtras(plain(a), a.Custom)
}

func (a *IPv6Addr) UnmarshalJSON(data []byte) error {
	type plain IPv6Addr
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalObservable(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*a = IPv6Addr(p)
	return nil
}

// MacAddr is a MAC-48 address observable.
type MacAddr struct {
	Value  string         `json:"value"`
	Custom map[string]any `json:"-"`
}

// NewMacAddr builds a MacAddr for the given value.
func NewMacAddr(value string) *MacAddr { return &MacAddr{Value: value} }

func (a *MacAddr) Type() string        { return TypeMacAddr }
func (a *MacAddr) identityKey() string { return a.Value }

// ObservableID returns the content-addressed identifier.
func (a *MacAddr) ObservableID() string { return ObservableID(a) }

func (a MacAddr) MarshalJSON() ([]byte, error) {
	type plain MacAddr
	return encodeWithExtras(plain(a), a.Custom)
}

func (a *MacAddr) UnmarshalJSON(data []byte) error {
	type plain MacAddr
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalObservable(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*a = MacAddr(p)
	return nil
}

// EmailAddr is an email address observable.
type EmailAddr struct {
	Value  string         `json:"value"`
	Custom map[string]any `json:"-"`
}

// NewEmailAddr builds an EmailAddr for the given value.
func NewEmailAddr(value string) *EmailAddr { return &EmailAddr{Value: value} }

func (a *EmailAddr) Type() string        { return TypeEmailAddr }
func (a *EmailAddr) identityKey() string { return a.Value }

// ObservableID returns the content-addressed identifier.
func (a *EmailAddr) ObservableID() string { return ObservableID(a) }

func (a EmailAddr) MarshalJSON() ([]byte, error) {
	type plain EmailAddr
	return encodeWithExtras(plain(a), a.Custom)
}

func (a *EmailAddr) UnmarshalJSON(data []byte) error {
	type plain EmailAddr
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalObservable(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*a = EmailAddr(p)
	return nil
}

// URL is a uniform resource locator observable.
type URL struct {
	Value     string         `json:"value"`
	URLScheme string         `json:"url-scheme,omitempty"`
	Host      string         `json:"host,omitempty"`
	Port      uint16         `json:"port,omitempty"`
	Path      string         `json:"path,omitempty"`
	Custom    map[string]any `json:"-"`
}

// NewURL builds a URL observable for the given value.
func NewURL(value string) *URL { return &URL{Value: value} }

func (u *URL) Type() string        { return TypeURL }
func (u *URL) identityKey() string { return u.Value }

// ObservableID returns the content-addressed identifier.
func (u *URL) ObservableID() string { return ObservableID(u) }

func (u URL) MarshalJSON() ([]byte, error) {
	type plain URL
	return encodeWithExtras(plain(u), u.Custom)
}

func (u *URL) UnmarshalJSON(data []byte) error {
	type plain URL
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalObservable(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*u = URL(p)
	return nil
}

// Software describes an installed software product.
type Software struct {
	Name   string         `json:"name,omitempty"`
	CPE    string         `json:"cpe,omitempty"`
	Lang   string         `json:"lang,omitempty"`
	Custom map[string]any `json:"-"`
}

func (s *Software) Type() string { return TypeSoftware }

func (s *Software) identityKey() string {
	if s.Name != "" {
		return s.Name
	}
	return observableIDFallback
}

// ObservableID returns the content-addressed identifier.
func (s *Software) ObservableID() string { return ObservableID(s) }

func (s Software) MarshalJSON() ([]byte, error) {
	type plain Software
	return encodeWithExtras(plain(s), s.Custom)
}

func (s *Software) UnmarshalJSON(data []byte) error {
	type plain Software
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalObservable(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*s = Software(p)
	return nil
}

// Mutex is a mutual-exclusion object observable.
type Mutex struct {
	Name           string         `json:"name,omitempty"`
	CurrentlyOwned *bool          `json:"currently-owned,omitempty"`
	Custom         map[string]any `json:"-"`
}

func (m *Mutex) Type() string { return TypeMutex }

func (m *Mutex) identityKey() string {
	if m.Name != "" {
		return m.Name
	}
	return observableIDFallback
}

// ObservableID returns the content-addressed identifier.
func (m *Mutex) ObservableID() string { return ObservableID(m) }

func (m Mutex) MarshalJSON() ([]byte, error) {
	type plain Mutex
	return encodeWithExtras(plain(m), m.Custom)
}

func (m *Mutex) UnmarshalJSON(data []byte) error {
	type plain Mutex
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalObservable(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*m = Mutex(p)
	return nil
}

// Directory is a file-system directory observable.
type Directory struct {
	Path    string         `json:"path,omitempty"`
	PathEnc string         `json:"path-enc,omitempty"`
	Custom  map[string]any `json:"-"`
}

func (d *Directory) Type() string { return TypeDirectory }

func (d *Directory) identityKey() string {
	if d.Path != "" {
		return d.Path
	}
	return observableIDFallback
}

// ObservableID returns the content-addressed identifier.
func (d *Directory) ObservableID() string { return ObservableID(d) }

func (d Directory) MarshalJSON() ([]byte, error) {
	type plain Directory
	return encodeWithExtras(plain(d), d.Custom)
}

func (d *Directory) UnmarshalJSON(data []byte) error {
	type plain Directory
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalObservable(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*d = Directory(p)
	return nil
}

// WindowsRegistryKey is a Windows registry key observable.
type WindowsRegistryKey struct {
	Key    string            `json:"key,omitempty"`
	Values map[string]string `json:"values,omitempty"`
	Custom map[string]any    `json:"-"`
}

func (k *WindowsRegistryKey) Type() string { return TypeWindowsRegistryKey }

func (k *WindowsRegistryKey) identityKey() string {
	if k.Key != "" {
		return k.Key
	}
	return observableIDFallback
}

// ObservableID returns the content-addressed identifier.
func (k *WindowsRegistryKey) ObservableID() string { return ObservableID(k) }

func (k WindowsRegistryKey) MarshalJSON() ([]byte, error) {
	type plain WindowsRegistryKey
	return encodeWithExtras(plain(k), k.Custom)
}

func (k *WindowsRegistryKey) UnmarshalJSON(data []byte) error {
	type plain WindowsRegistryKey
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalObservable(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*k = WindowsRegistryKey(p)
	return nil
}

// AutonomousSystem is a BGP autonomous system observable.
type AutonomousSystem struct {
	Number uint32         `json:"number,omitempty"`
	Name   string         `json:"name,omitempty"`
	Custom map[string]any `json:"-"`
}

func (a *AutonomousSystem) Type() string { return TypeAutonomousSystem }

func (a *AutonomousSystem) identityKey() string {
	if a.Number != 0 {
		return strconv.FormatUint(uint64(a.Number), 10)
	}
	return observableIDFallback
}

// ObservableID returns the content-addressed identifier.
func (a *AutonomousSystem) ObservableID() string { return ObservableID(a) }

func (a AutonomousSystem) MarshalJSON() ([]byte, error) {
	type plain AutonomousSystem
	return encodeWithExtras(plain(a), a.Custom)
}

func (a *AutonomousSystem) UnmarshalJSON(data []byte) error {
	type plain AutonomousSystem
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalObservable(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*a = AutonomousSystem(p)
	return nil
}

// UserAccount is a user account observable.
type UserAccount struct {
	UserID       string         `json:"user_id,omitempty"`
	AccountLogin string         `json:"account_login,omitempty"`
	DisplayName  string         `json:"display_name,omitempty"`
	Custom       map[string]any `json:"-"`
}

func (u *UserAccount) Type() string { return TypeUserAccount }

func (u *UserAccount) identityKey() string {
	if u.UserID != "" {
		return u.UserID
	}
	return observableIDFallback
}

// ObservableID returns the content-addressed identifier.
func (u *UserAccount) ObservableID() string { return ObservableID(u) }

func (u UserAccount) MarshalJSON() ([]byte, error) {
	type plain UserAccount
	return encodeWithExtras(plain(u), u.Custom)
}

func (u *UserAccount) UnmarshalJSON(data []byte) error {
	type plain UserAccount
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalObservable(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*u = UserAccount(p)
	return nil
}

// Process is a running (or historic) process observable.
//
// No identity field is designated for processes yet, so every Process
// derives the same identifier; see the fallback note in ids.go.
type Process struct {
	Name        string         `json:"name,omitempty"`
	PID         uint32         `json:"pid,omitempty"`
	CommandLine string         `json:"command-line,omitempty"`
	CreatedTime *time.Time     `json:"created,omitempty"`
	Custom      map[string]any `json:"-"`
}

func (p *Process) Type() string        { return TypeProcess }
func (p *Process) identityKey() string { return observableIDFallback }

// ObservableID returns the content-addressed identifier.
func (p *Process) ObservableID() string { return ObservableID(p) }

func (p Process) MarshalJSON() ([]byte, error) {
	type plain Process
	return encodeWithExtras(plain(p), p.Custom)
}

func (p *Process) UnmarshalJSON(data []byte) error {
	type plain Process
	var pl plain
	if err := json.Unmarshal(data, &pl); err != nil {
		return err
	}
	extras, err := unmarshalObservable(data, pl)
	if err != nil {
		return err
	}
	pl.Custom = extras
	*p = Process(pl)
	return nil
}

// Artifact carries raw content, either inline or by reference.
type Artifact struct {
	Value  string         `json:"value,omitempty"`
	Custom map[string]any `json:"-"`
}

func (a *Artifact) Type() string        { return TypeArtifact }
func (a *Artifact) identityKey() string { return observableIDFallback }

// ObservableID returns the content-addressed identifier.
func (a *Artifact) ObservableID() string { return ObservableID(a) }

func (a Artifact) MarshalJSON() ([]byte, error) {
	type plain Artifact
	return encodeWithExtras(plain(a), a.Custom)
}

func (a *Artifact) UnmarshalJSON(data []byte) error {
	type plain Artifact
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalObservable(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*a = Artifact(p)
	return nil
}

// NetworkTraffic describes a network flow between two endpoints.
type NetworkTraffic struct {
	Start     *time.Time     `json:"start,omitempty"`
	End       *time.Time     `json:"end,omitempty"`
	Protocols []string       `json:"protocols,omitempty"`
	SrcRef    string         `json:"src_ref,omitempty"`
	DstRef    string         `json:"dst_ref,omitempty"`
	SrcPort   uint16         `json:"src_port,omitempty"`
	DstPort   uint16         `json:"dst_port,omitempty"`
	Custom    map[string]any `json:"-"`
}

func (n *NetworkTraffic) Type() string        { return TypeNetworkTraffic }
func (n *NetworkTraffic) identityKey() string { return observableIDFallback }

// ObservableID returns the content-addressed identifier.
func (n *NetworkTraffic) ObservableID() string { return ObservableID(n) }

func (n NetworkTraffic) MarshalJSON() ([]byte, error) {
	type plain NetworkTraffic
	return encodeWithExtras(plain(n), n.Custom)
}

func (n *NetworkTraffic) UnmarshalJSON(data []byte) error {
	type plain NetworkTraffic
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalObservable(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*n = NetworkTraffic(p)
	return nil
}

// EmailMessage is an email message observable.
type EmailMessage struct {
	Subject string         `json:"subject,omitempty"`
	Body    string         `json:"body,omitempty"`
	From    string         `json:"from,omitempty"`
	To      []string       `json:"to,omitempty"`
	Date    *time.Time     `json:"date,omitempty"`
	Custom  map[string]any `json:"-"`
}

func (e *EmailMessage) Type() string        { return TypeEmailMessage }
func (e *EmailMessage) identityKey() string { return observableIDFallback }

// ObservableID returns the content-addressed identifier.
func (e *EmailMessage) ObservableID() string { return ObservableID(e) }

func (e EmailMessage) MarshalJSON() ([]byte, error) {
	type plain EmailMessage
	return encodeWithExtras(plain(e), e.Custom)
}

func (e *EmailMessage) UnmarshalJSON(data []byte) error {
	type plain EmailMessage
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalObservable(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*e = EmailMessage(p)
	return nil
}

// SocketAddr is a socket address observable.
type SocketAddr struct {
	Value  string         `json:"value,omitempty"`
	Custom map[string]any `json:"-"`
}

func (s *SocketAddr) Type() string        { return TypeSocketAddr }
func (s *SocketAddr) identityKey() string { return observableIDFallback }

// ObservableID returns the content-addressed identifier.
func (s *SocketAddr) ObservableID() string { return ObservableID(s) }

func (s SocketAddr) MarshalJSON() ([]byte, error) {
	type plain SocketAddr
	return encodeWithExtras(plain(s), s.Custom)
}

func (s *SocketAddr) UnmarshalJSON(data []byte) error {
	type plain SocketAddr
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalObservable(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*s = SocketAddr(p)
	return nil
}

// SoftwarePackage is an installed software package observable.
type SoftwarePackage struct {
	Name        string         `json:"name,omitempty"`
	Version     string         `json:"version,omitempty"`
	CPE         string         `json:"cpe,omitempty"`
	CreatedTime *time.Time     `json:"created,omitempty"`
	Custom      map[string]any `json:"-"`
}

func (s *SoftwarePackage) Type() string        { return TypeSoftwarePackage }
func (s *SoftwarePackage) identityKey() string { return observableIDFallback }

// ObservableID returns the content-addressed identifier.
func (s *SoftwarePackage) ObservableID() string { return ObservableID(s) }

func (s SoftwarePackage) MarshalJSON() ([]byte, error) {
	type plain SoftwarePackage
	return encodeWithExtras(plain(s), s.Custom)
}

func (s *SoftwarePackage) UnmarshalJSON(data []byte) error {
	type plain SoftwarePackage
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalObservable(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*s = SoftwarePackage(p)
	return nil
}

// X509Certificate is an X.509 certificate observable.
type X509Certificate struct {
	Subject    string         `json:"subject,omitempty"`
	Issuer     string         `json:"issuer,omitempty"`
	ValidFrom  *time.Time     `json:"valid_from,omitempty"`
	ValidUntil *time.Time     `json:"valid_until,omitempty"`
	Custom     map[string]any `json:"-"`
}

func (c *X509Certificate) Type() string        { return TypeX509Certificate }
func (c *X509Certificate) identityKey() string { return observableIDFallback }

// ObservableID returns the content-addressed identifier.
func (c *X509Certificate) ObservableID() string { return ObservableID(c) }

func (c X509Certificate) MarshalJSON() ([]byte, error) {
	type plain X509Certificate
	return encodeWithExtras(plain(c), c.Custom)
}

func (c *X509Certificate) UnmarshalJSON(data []byte) error {
	type plain X509Certificate
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extras, err := unmarshalObservable(data, p)
	if err != nil {
		return err
	}
	p.Custom = extras
	*c = X509Certificate(p)
	return nil
}
