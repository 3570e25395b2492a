package cache

import "strings"

// KeyPrefix namespaces every key this service writes.
const KeyPrefix = "dsatutor"

// GenerateCacheKey joins the prefix, owner, object type and identifier with ":".
func GenerateCacheKey(owner, objectType, identifier string) string {
	return strings.Join([]string{KeyPrefix, owner, objectType, identifier}, ":")
}
