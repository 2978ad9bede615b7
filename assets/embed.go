// Package assets holds files embedded into the codeora binary.
package assets

import _ "embed"

// LogoSVG is the application icon installed by `codeora desktop install`.
//
//go:embed logo.svg
var LogoSVG []byte
