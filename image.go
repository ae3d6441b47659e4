package clamp

import "regexp"

// base64ImagePattern matches a markdown image whose destination is an inline
// base64 data URI: ![alt](data:image/<subtype>;base64,<payload>).
var base64ImagePattern = regexp.MustCompile(`!\[[^\]]*\]\(data:image/[a-zA-Z0-9.+-]+;base64,[A-Za-z0-9+/=]+\)`)

// HasBase64Image reports whether the flattened text of the node tree
// contains a markdown image with an embedded base64 payload. Such content is
// exempt from truncation: slicing into the payload would destroy the image.
func HasBase64Image(n Node) bool {
	return base64ImagePattern.MatchString(Flatten(n))
}
