package tusproto

import (
	"encoding/base64"
	"strings"
)

// ParseMetadata decodes a tus Upload-Metadata header: comma-separated
// "key base64value" pairs, value optional. Pairs with malformed base64 are
// dropped rather than failing the upload.
func ParseMetadata(header string) map[string]string {
	meta := make(map[string]string)
	for _, pair := range strings.Split(header, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, encoded, _ := strings.Cut(pair, " ")
		if key == "" {
			continue
		}
		if encoded == "" {
			meta[key] = ""
			continue
		}
		value, err := base64.StdEncoding.DecodeString(encoded)
		if err != nil {
			continue
		}
		meta[key] = string(value)
	}
	return meta
}
