package geminiapi

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"

	"github.com/pkg/errors"
)

const (
	PayloadKeyRequest = "request"
	PayloadKeyNonce   = "nonce"
)

// Payload is the set of parameters of one api call.
// Values must be JSON primitives (strings, numbers, booleans) or slices of them.
type Payload map[string]interface{}

// withRequest returns a copy of the payload with the request path and the nonce injected.
func (p Payload) withRequest(path string, nonce int64) Payload {
	merged := make(Payload, len(p)+2)
	for k, v := range p {
		merged[k] = v
	}

	merged[PayloadKeyRequest] = path
	merged[PayloadKeyNonce] = nonce
	return merged
}

// Encode returns the base64 text of the JSON encoded payload.
// Keys are encoded in sorted order so the same payload always yields the same text.
func (p Payload) Encode() (string, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return "", errors.Wrap(err, "unable to encode payload")
	}

	return base64.StdEncoding.EncodeToString(data), nil
}

// DecodePayload reverses Encode, numbers are decoded as json.Number.
func DecodePayload(encoded string) (Payload, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "invalid base64 payload")
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var p Payload
	if err := decoder.Decode(&p); err != nil {
		return nil, errors.Wrap(err, "invalid json payload")
	}

	return p, nil
}

// Sign returns the lowercase hex HMAC-SHA384 of the encoded payload keyed by the api secret.
func Sign(encodedPayload, secret string) string {
	sig := hmac.New(sha512.New384, []byte(secret))
	_, _ = sig.Write([]byte(encodedPayload))
	return hex.EncodeToString(sig.Sum(nil))
}

func toPayload(payload interface{}) (Payload, error) {
	switch v := payload.(type) {
	case nil:
		return Payload{}, nil
	case Payload:
		return v, nil
	case map[string]interface{}:
		return Payload(v), nil
	}

	return nil, errors.Errorf("unsupported payload type: %T", payload)
}

func castPayload(payload interface{}) ([]byte, error) {
	if payload == nil {
		return nil, nil
	}

	switch v := payload.(type) {
	case string:
		return []byte(v), nil

	case []byte:
		return v, nil

	}

	return json.Marshal(payload)
}
