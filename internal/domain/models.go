package domain

import "fmt"

// Fixed user-facing messages. Diagnostics never reach the caller.
const (
	MessageAPIKeyNotConfigured = "API key not configured. Please add GEMINI_API_KEY to your .env file."
	MessageTransportFailed     = "Connection to the cosmic realm failed."
	MessagePayloadFailed       = "The spirits are silent today."
	MessageEmptyResult         = "The cookie crumbled before revealing its wisdom..."
)

// OutcomeKind identifies which variant an Outcome holds.
type OutcomeKind int

const (
	OutcomeEmptyResult OutcomeKind = iota
	OutcomeSuccess
	OutcomeTransportError
	OutcomePayloadError
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeEmptyResult:
		return "empty_result"
	case OutcomeSuccess:
		return "success"
	case OutcomeTransportError:
		return "transport_error"
	case OutcomePayloadError:
		return "payload_error"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the classified result of a single upstream call.
// The zero value is an empty result. Build outcomes with the constructors
// below; a success always carries non-empty text.
type Outcome struct {
	kind OutcomeKind
	text string
	err  error
}

// Success returns a successful outcome carrying text. Empty text is not a
// success and classifies as an empty result.
func Success(text string) Outcome {
	if text == "" {
		return EmptyResult()
	}
	return Outcome{kind: OutcomeSuccess, text: text}
}

// TransportFailure wraps err under ErrUpstreamTransport.
func TransportFailure(err error) Outcome {
	return Outcome{kind: OutcomeTransportError, err: fmt.Errorf("%w: %w", ErrUpstreamTransport, err)}
}

// PayloadFailure wraps err under ErrUpstreamPayload.
func PayloadFailure(err error) Outcome {
	return Outcome{kind: OutcomePayloadError, err: fmt.Errorf("%w: %w", ErrUpstreamPayload, err)}
}

func EmptyResult() Outcome {
	return Outcome{kind: OutcomeEmptyResult, err: ErrEmptyResult}
}

func (o Outcome) Kind() OutcomeKind { return o.kind }

func (o Outcome) OK() bool { return o.kind == OutcomeSuccess }

// Text returns the generated text and true only for a success.
func (o Outcome) Text() (string, bool) {
	if o.kind != OutcomeSuccess {
		return "", false
	}
	return o.text, true
}

// Err is nil for a success and wraps one of the upstream sentinels otherwise.
func (o Outcome) Err() error {
	if o.kind == OutcomeSuccess {
		return nil
	}
	if o.err == nil {
		return ErrEmptyResult
	}
	return o.err
}

// Fortune is the text shown to the user: the generated advice on success,
// the variant's fixed fallback otherwise.
func (o Outcome) Fortune() string {
	switch o.kind {
	case OutcomeSuccess:
		return o.text
	case OutcomeTransportError:
		return MessageTransportFailed
	case OutcomePayloadError:
		return MessagePayloadFailed
	default:
		return MessageEmptyResult
	}
}
