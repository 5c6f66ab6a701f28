package parse

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// Decode strictly parses span text, trying the attempts returned by Repairs in
// order and returning the first that is valid JSON. With WithLenientRepair a
// final jsonrepair attempt is added. When every attempt fails the error wraps
// ErrAllDecodeAttemptsFailed and the last decode error.
func Decode(text string, shape Shape, opts ...Option) (Value, error) {
	v, _, cause := decodeAttempts(text, shape, applyOptions(opts...))
	if cause != nil {
		return nil, fmt.Errorf("%w: %w", ErrAllDecodeAttemptsFailed, cause)
	}
	return v, nil
}

// decodeAttempts returns the first decoded value with the name of the attempt
// that produced it, or the error of the last attempt when none decodes.
func decodeAttempts(text string, shape Shape, cfg *options) (Value, string, error) {
	attempts := Repairs(text, shape)

	var lastErr error
	for _, attempt := range attempts {
		v, err := decodeStrict(attempt.Text)
		if err == nil {
			return v, attempt.Name, nil
		}
		lastErr = fmt.Errorf("%s attempt: %w", attempt.Name, err)
	}

	if cfg.lenient {
		v, err := decodeRepaired(text)
		if err == nil {
			return v, AttemptJSONRepair, nil
		}
		lastErr = fmt.Errorf("%s attempt: %w", AttemptJSONRepair, err)
	}

	return nil, "", lastErr
}

func decodeRepaired(text string) (Value, error) {
	repaired, err := jsonrepair.JSONRepair(text)
	if err != nil {
		return nil, err
	}
	return decodeStrict(repaired)
}

// decodeStrict accepts exactly one syntactically valid JSON value (surrounding
// whitespace allowed) and converts it into the Value variant.
func decodeStrict(text string) (Value, error) {
	if !json.Valid([]byte(text)) {
		// Unmarshal again only to obtain a positioned syntax error.
		var discard any
		if err := json.Unmarshal([]byte(text), &discard); err != nil {
			return nil, err
		}
		return nil, errors.New("invalid JSON")
	}

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	v, err := readValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after top-level value")
	}
	return v, nil
}

func readValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '{':
			return readObject(dec)
		case '[':
			return readList(dec)
		}
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}

func readObject(dec *json.Decoder) (Value, error) {
	obj := NewObject()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is %T, not string", tok)
		}
		v, err := readValue(dec)
		if err != nil {
			return nil, err
		}
		obj.Set(key, v)
	}
	// consume '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func readList(dec *json.Decoder) (Value, error) {
	list := List{}
	for dec.More() {
		v, err := readValue(dec)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	// consume ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return list, nil
}
