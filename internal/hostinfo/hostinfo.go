// Package hostinfo implements the small OS-facade contract spec §6 names:
// computer/user name lookup, an itoa that never panics on a bad base, and
// the debug-output path anonymization rule the source project applies to
// .pex header fields before they leave the build machine.
package hostinfo

import (
	"os"
	"os/user"
	"strconv"
	"strings"
)

// anonymizedUsername is substituted for the real user segment of an
// anonymized path, and for the computer/user name fields when anonymizing
// output (spec §6 "Debug-output anonymization").
const anonymizedUsername = "<USERNAME>"

// GetComputerName returns the local machine's hostname, falling back to
// anonymizedUsername if it can't be determined (never returns an error:
// this only ever feeds an informational .pex header field).
func GetComputerName() string {
	name, err := os.Hostname()
	if err != nil || name == "" {
		return anonymizedUsername
	}
	return name
}

// GetUserName returns the current user's username, with the same
// never-fails contract as GetComputerName.
func GetUserName() string {
	u, err := user.Current()
	if err != nil || u.Username == "" {
		return anonymizedUsername
	}
	return u.Username
}

// SafeItoa formats value in the given base (2-36), falling back to base 10
// for anything out of that range rather than panicking, matching the
// defensive itoa helper the original OS facade provides for code paths that
// accept an externally-configured base.
func SafeItoa(value int64, base int) string {
	if base < 2 || base > 36 {
		base = 10
	}
	return strconv.FormatInt(value, base)
}

// usernameLikeRoots are the first-path-component names
// papyrus/PapyrusScript.cpp's buildPex checks before collapsing the
// user-specific portion of an absolute path.
var usernameLikeRoots = map[string]bool{
	"users": true,
	"home":  true,
}

// AnonymizePath replaces the single user-folder segment immediately after
// an absolute path's "Users"/"home" root with the literal "<USERNAME>",
// leaving every other component - the root and everything between the user
// folder and the file itself - untouched. Paths that don't start with one
// of those roots are returned unchanged (spec §9 supplemented feature,
// grounded in papyrus/PapyrusScript.cpp's buildPex).
func AnonymizePath(path string) string {
	sep := "/"
	if strings.Contains(path, "\\") {
		sep = "\\"
	}

	parts := strings.Split(path, sep)
	// A leading empty element means the path started with the separator
	// (an absolute POSIX path, or the second backslash of a UNC path); a
	// bare drive letter ("C:") is likewise a root marker, not a path
	// component of its own. The "first component" to test is the first
	// element past either of those.
	firstIdx := 0
	for firstIdx < len(parts) && (parts[firstIdx] == "" || isDriveLetter(parts[firstIdx])) {
		firstIdx++
	}
	if firstIdx >= len(parts) || len(parts)-firstIdx < 2 {
		return path
	}
	if !usernameLikeRoots[strings.ToLower(parts[firstIdx])] {
		return path
	}

	out := make([]string, 0, len(parts)-1)
	out = append(out, parts[:firstIdx+1]...)
	out = append(out, anonymizedUsername)
	out = append(out, parts[firstIdx+2:]...)
	return strings.Join(out, sep)
}

// isDriveLetter reports whether component is a bare Windows drive letter
// ("C:").
func isDriveLetter(component string) bool {
	return len(component) == 2 && component[1] == ':'
}
