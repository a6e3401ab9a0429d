package entity

// MaxPhraseLength is the upper bound on a submitted phrase, counted in
// characters on the raw (untrimmed) value.
const MaxPhraseLength = 5000

// UnknownMeta is the placeholder used when a request attribute is unavailable.
const UnknownMeta = "Unknown"

// Submission is a phrase accepted for relay. It lives only for the duration
// of the request that carried it; nothing is persisted.
type Submission struct {
	Phrase string
}

// RequestMeta carries caller attributes embedded into the outbound email.
type RequestMeta struct {
	IP        string
	UserAgent string
}

// OrUnknown returns meta with empty attributes replaced by the placeholder.
func (m RequestMeta) OrUnknown() RequestMeta {
	if m.IP == "" {
		m.IP = UnknownMeta
	}
	if m.UserAgent == "" {
		m.UserAgent = UnknownMeta
	}
	return m
}

// DispatchResult reports a successful relay.
type DispatchResult struct {
	// MessageID is the identifier stamped on the outgoing email.
	MessageID string
}
