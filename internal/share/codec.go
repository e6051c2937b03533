// Package share encodes comparison item identifiers into URL-safe tokens and
// decodes them back.
//
// A token is the base64url (unpadded) form of a JSON payload {"items": [...]}.
// Tokens carry no signature, expiry or version and decode the same way
// everywhere.
package share

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// MaxTokenLength bounds the token size accepted by Decode.
const MaxTokenLength = 8192

// ErrInvalidToken is matched by every error returned from Decode.
var ErrInvalidToken = errors.New("invalid share token")

// DecodeError describes why a token could not be decoded.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid share token: %s: %v", e.Reason, e.Err)
	}
	return "invalid share token: " + e.Reason
}

// Unwrap returns the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidToken.
func (e *DecodeError) Is(target error) bool {
	return target == ErrInvalidToken
}

type payload struct {
	Items []string `json:"items"`
}

type rawPayload struct {
	Items *[]json.RawMessage `json:"items"`
}

// Tried in order. Browser btoa output is padded standard base64, so the
// standard alphabets stay accepted.
var encodings = []*base64.Encoding{
	base64.RawURLEncoding,
	base64.URLEncoding,
	base64.StdEncoding,
	base64.RawStdEncoding,
}

// Encode serialises ids into a token. Order and duplicates are preserved and
// ids are not validated.
func Encode(ids []string) string {
	if ids == nil {
		ids = []string{}
	}

	// Marshalling a string slice cannot fail.
	data, _ := json.Marshal(payload{Items: ids})

	return base64.RawURLEncoding.EncodeToString(data)
}

// Decode reverses Encode and returns the identifiers in token order.
// Array entries that are not strings are skipped.
func Decode(token string) ([]string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, &DecodeError{Reason: "empty token"}
	}
	if len(token) > MaxTokenLength {
		return nil, &DecodeError{Reason: fmt.Sprintf("token exceeds %d bytes", MaxTokenLength)}
	}

	data, err := decodeBase64(token)
	if err != nil {
		return nil, &DecodeError{Reason: "malformed encoding", Err: err}
	}

	var raw rawPayload
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &DecodeError{Reason: "malformed payload", Err: err}
	}
	if raw.Items == nil {
		return nil, &DecodeError{Reason: "payload has no items"}
	}

	ids := make([]string, 0, len(*raw.Items))
	for _, entry := range *raw.Items {
		// null unmarshals into a string without error
		if bytes.Equal(bytes.TrimSpace(entry), []byte("null")) {
			continue
		}
		var id string
		if err := json.Unmarshal(entry, &id); err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func decodeBase64(token string) ([]byte, error) {
	var firstErr error
	for _, enc := range encodings {
		data, err := enc.DecodeString(token)
		if err == nil {
			return data, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return nil, firstErr
}
