package youtube

import "net/url"

// APIKey is an opaque YouTube Data API credential.
// It is sent as the "key" query parameter and is never validated locally.
type APIKey string

// NewAPIKey wraps a raw API key
func NewAPIKey(key string) APIKey {
	return APIKey(key)
}

// Value returns the raw key
func (k APIKey) Value() string {
	return string(k)
}

// String returns a redacted form of the key so it is safe to print or log
func (k APIKey) String() string {
	if len(k) <= 8 {
		return "****"
	}
	return "****" + string(k[len(k)-4:])
}

// EncodeValues writes the raw key into the query values
func (k APIKey) EncodeValues(key string, v *url.Values) error {
	v.Set(key, string(k))
	return nil
}
