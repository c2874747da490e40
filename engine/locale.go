package engine

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/language"
)

// HostLocale returns the host's user locale as a canonical BCP-47 tag,
// read from LC_ALL, LC_CTYPE or LANG in that order. Encoding suffixes and
// modifiers ("en_US.UTF-8@euro") are stripped; an unset, "C" or "POSIX"
// locale maps to "en-US".
//
// A locale that is set but cannot be parsed panics: fallback mapping keyed
// on a corrupt locale would silently pick wrong fonts, so a broken
// environment is treated as a configuration error.
func HostLocale() string {
	var raw string
	for _, key := range []string{"LC_ALL", "LC_CTYPE", "LANG"} {
		if v := os.Getenv(key); v != "" {
			raw = v
			break
		}
	}

	name := raw
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	if i := strings.IndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}
	if name == "" || name == "C" || name == "POSIX" {
		return "en-US"
	}

	tag, err := language.Parse(name)
	if err != nil {
		panic(fmt.Sprintf("engine: unsupported host locale %q: %v", raw, err))
	}
	return tag.String()
}
