package parse

// Shape is the structure the caller expects the model to have produced.
type Shape int

const (
	// ShapeObject expects a single JSON object.
	ShapeObject Shape = iota
	// ShapeArrayOfObjects expects a JSON array of objects. A bare object or a
	// separator-less run of objects is tolerated.
	ShapeArrayOfObjects
)

// String returns a readable shape name.
func (s Shape) String() string {
	if s == ShapeArrayOfObjects {
		return "array"
	}
	return "object"
}

// Option configures Extract, ExtractAs and Decode.
type Option func(*options)

type options struct {
	lenient bool
	// onAttempt, when set, receives the name of the attempt that decoded.
	onAttempt func(name string)
}

// WithLenientRepair appends a general-purpose jsonrepair attempt after the
// fixed repair rules. It widens what is accepted (unquoted keys, single
// quotes, truncated values), so it is off by default.
func WithLenientRepair() Option {
	return func(o *options) {
		o.lenient = true
	}
}

// WithAttemptObserver registers fn to receive the name of the attempt that
// produced the decoded value (AttemptRaw, AttemptCleaned, ...).
func WithAttemptObserver(fn func(name string)) Option {
	return func(o *options) {
		o.onAttempt = fn
	}
}

func applyOptions(opts ...Option) *options {
	cfg := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// Normalizer coerces a decoded Value into a record of type T. It reports
// structural problems with an error wrapping ErrShapeMismatch.
type Normalizer[T any] func(Value) (T, error)

// Extract runs candidate extraction and decoding over raw model output.
// Failures are returned as *ExtractionError carrying raw.
//
// Example:
//
//	v, err := parse.Extract("Sure! ```json\n{\"a\": 1,}\n```", parse.ShapeObject)
//	// v is an *Object with a = 1
func Extract(raw string, shape Shape, opts ...Option) (Value, error) {
	cfg := applyOptions(opts...)

	span, text, err := FindCandidate(raw)
	if err != nil {
		return nil, newExtractionError(NoCandidateFound, raw, nil)
	}

	v, attempt, cause := decodeAttempts(text[span.Start:span.End], shape, cfg)
	if cause != nil {
		return nil, newExtractionError(AllDecodeAttemptsFailed, raw, cause)
	}
	if cfg.onAttempt != nil {
		cfg.onAttempt(attempt)
	}
	return v, nil
}

// ExtractAs runs Extract and then normalize. Normalizer failures become an
// *ExtractionError of kind ShapeMismatch carrying raw.
func ExtractAs[T any](raw string, shape Shape, normalize Normalizer[T], opts ...Option) (T, error) {
	var zero T

	v, err := Extract(raw, shape, opts...)
	if err != nil {
		return zero, err
	}

	out, err := normalize(v)
	if err != nil {
		return zero, newExtractionError(ShapeMismatch, raw, err)
	}
	return out, nil
}
