package email

// Message is a single outbound email
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// Gateway abstracts the transactional email provider so handlers can
// be tested against a stub.
type Gateway interface {
	// Send delivers msg. The returned error carries provider detail
	// for logging; callers must not surface it to HTTP clients.
	Send(msg Message) (string, error)

	// Name returns a human-readable gateway name
	Name() string
}
