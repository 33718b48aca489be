package dcbor

import "sync"

// Tag is a semantic tag number with an optional human-readable name.
// The registry indexes tags by Number alone. Tag is a plain struct, so Go's
// == and its use as a map key compare both Number and Name.
type Tag struct {
	Number uint64
	Name   string
}

// NewTag constructs a Tag. name may be empty for an anonymous tag.
func NewTag(number uint64, name string) Tag {
	return Tag{Number: number, Name: name}
}

// Summarizer turns the untagged content of a tagged value into a short
// human-readable string for diagnostic output (spec.md §4.10).
type Summarizer func(content Value) (string, error)

// registry is the process-wide tag registry of spec.md §5 and §6: a
// shared/exclusive-locked dictionary with last-write-wins semantics on the
// numeric key. The global instance is built once, when the package is
// initialized, not on first access.
type registry struct {
	mu          sync.RWMutex
	byNumber    map[uint64]Tag
	byName      map[string]Tag
	summarizers map[uint64]Summarizer
}

var globalRegistry = newRegistry()

func newRegistry() *registry {
	r := &registry{
		byNumber:    make(map[uint64]Tag),
		byName:      make(map[string]Tag),
		summarizers: make(map[uint64]Summarizer),
	}
	for _, t := range knownTags {
		r.register(t)
	}
	return r
}

func (r *registry) register(t Tag) {
	r.byNumber[t.Number] = t
	if t.Name != "" {
		r.byName[t.Name] = t
	}
}

func (r *registry) lookupByNumber(n uint64) (Tag, bool) {
	t, ok := r.byNumber[n]
	return t, ok
}

func (r *registry) lookupByName(name string) (Tag, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// WithTags runs f with a shared (read) lock held on the global tag
// registry, per spec.md §6's with_tags scoped accessor. The lock is
// guaranteed to release on every exit path, including a panic in f.
func WithTags(f func(Tags)) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	f(Tags{r: globalRegistry})
}

// WithTagsMut runs f with an exclusive (write) lock held on the global
// tag registry, per spec.md §6's with_tags_mut scoped accessor.
func WithTagsMut(f func(TagsMut)) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	f(TagsMut{r: globalRegistry})
}

// Tags is the read-only view of the tag registry exposed inside WithTags.
type Tags struct{ r *registry }

// LookupByNumber returns the Tag registered under n, if any.
func (t Tags) LookupByNumber(n uint64) (Tag, bool) { return t.r.lookupByNumber(n) }

// LookupByName returns the Tag registered under name, if any.
func (t Tags) LookupByName(name string) (Tag, bool) { return t.r.lookupByName(name) }

// Summarize applies the summarizer registered for tagNum to content, if
// one is registered. The summarizer runs while the shared lock from
// WithTags is held, so per spec.md §5 it must not call WithTagsMut.
func (t Tags) Summarize(tagNum uint64, content Value) (string, bool, error) {
	fn, ok := t.r.summarizers[tagNum]
	if !ok {
		return "", false, nil
	}
	s, err := fn(content)
	return s, true, err
}

// TagsMut is the read-write view of the tag registry exposed inside
// WithTagsMut.
type TagsMut struct{ r *registry }

// Register inserts t into the registry. Registering the same tag number
// twice overwrites the prior entry (last write wins); this is defined
// behavior, not an error, per spec.md §5.
func (t TagsMut) Register(tag Tag) { t.r.register(tag) }

// SetSummarizer registers fn as the summarizer for tagNum, overwriting
// any previous summarizer for that number.
func (t TagsMut) SetSummarizer(tagNum uint64, fn Summarizer) {
	t.r.summarizers[tagNum] = fn
}

// LookupByNumber returns the Tag registered under n, if any.
func (t TagsMut) LookupByNumber(n uint64) (Tag, bool) { return t.r.lookupByNumber(n) }

// LookupByName returns the Tag registered under name, if any.
func (t TagsMut) LookupByName(name string) (Tag, bool) { return t.r.lookupByName(name) }

// Well-known tag numbers, pre-registered at init per the supplemented
// known_tags feature (SPEC_FULL.md §3.1). Naming-only: the core performs
// no semantic validation of tagged content for any of these (spec.md
// §4.7) beyond what an explicitly-registered Summarizer chooses to do.
const (
	TagDate              uint64 = 0
	TagUnixTime          uint64 = 1
	TagUnsignedBignum    uint64 = 2
	TagNegativeBignum    uint64 = 3
	TagDecimalFraction   uint64 = 4
	TagBigFloat          uint64 = 5
	TagExpectedBase64URL uint64 = 21
	TagExpectedBase64    uint64 = 22
	TagExpectedBase16    uint64 = 23
	TagEncodedCBOR       uint64 = 24
	TagURI               uint64 = 32
	TagBase64URL         uint64 = 33
	TagBase64            uint64 = 34
	TagRegularExpression uint64 = 35
	TagMIMEMessage       uint64 = 36
	TagSelfDescribedCBOR uint64 = 55799
)

var knownTags = []Tag{
	{Number: TagDate, Name: "date"},
	{Number: TagUnixTime, Name: "unixTime"},
	{Number: TagUnsignedBignum, Name: "bignum"},
	{Number: TagNegativeBignum, Name: "negBignum"},
	{Number: TagDecimalFraction, Name: "decimalFraction"},
	{Number: TagBigFloat, Name: "bigFloat"},
	{Number: TagExpectedBase64URL, Name: "expectedBase64url"},
	{Number: TagExpectedBase64, Name: "expectedBase64"},
	{Number: TagExpectedBase16, Name: "expectedBase16"},
	{Number: TagEncodedCBOR, Name: "encodedCbor"},
	{Number: TagURI, Name: "uri"},
	{Number: TagBase64URL, Name: "base64url"},
	{Number: TagBase64, Name: "base64"},
	{Number: TagRegularExpression, Name: "regex"},
	{Number: TagMIMEMessage, Name: "mime"},
	{Number: TagSelfDescribedCBOR, Name: "selfDescribedCbor"},
}
