// Package langdetect classifies candidate files before they are handed to
// the Swift tools. It uses go-enry, the linguist port, so extension,
// shebang and vendored-path rules match what code hosts apply.
package langdetect

import (
	"github.com/go-enry/go-enry/v2"
)

// LanguageSwift is the linguist name for Swift.
const LanguageSwift = "Swift"

// IsSwift reports whether path names a Swift source file.
// The extension decides when it is unambiguous; otherwise a shebang in
// content (if provided) is consulted.
func IsSwift(path string, content []byte) bool {
	if lang, safe := enry.GetLanguageByExtension(path); safe {
		return lang == LanguageSwift
	}

	if len(content) == 0 {
		return false
	}

	lang, safe := enry.GetLanguageByShebang(content)
	return safe && lang == LanguageSwift
}

// IsVendored reports whether path lies in third-party code
// (vendor/, Carthage/, Pods/, node_modules/ and similar).
func IsVendored(path string) bool {
	return enry.IsVendor(path)
}

// IsHidden reports whether path names a dotfile.
func IsHidden(path string) bool {
	return enry.IsDotFile(path)
}

// ShouldLint reports whether a file matched by a glob should be passed to
// the tools: a Swift source that is neither vendored nor hidden.
func ShouldLint(path string) bool {
	return IsSwift(path, nil) && !IsVendored(path) && !IsHidden(path)
}
