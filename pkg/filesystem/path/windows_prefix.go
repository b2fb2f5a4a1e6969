package path

import (
	"strings"
)

// PrefixKind classifies the leading part of a Windows path that
// precedes its root separator.
type PrefixKind int

const (
	// PrefixKindNone indicates that the path has no prefix.
	PrefixKindNone PrefixKind = iota
	// PrefixKindDisk is a drive letter, e.g. "C:".
	PrefixKindDisk
	// PrefixKindUNC is a network share, e.g. "\\server\share".
	PrefixKindUNC
	// PrefixKindDeviceNS is a device namespace, e.g. "\\.\COM1".
	PrefixKindDeviceNS
	// PrefixKindVerbatimDisk is a verbatim drive letter, e.g. "\\?\C:".
	PrefixKindVerbatimDisk
	// PrefixKindVerbatimUNC is a verbatim network share, e.g.
	// "\\?\UNC\server\share".
	PrefixKindVerbatimUNC
	// PrefixKindVerbatim is any other verbatim prefix, e.g.
	// "\\?\pictures".
	PrefixKindVerbatim
)

func (k PrefixKind) String() string {
	switch k {
	case PrefixKindNone:
		return "None"
	case PrefixKindDisk:
		return "Disk"
	case PrefixKindUNC:
		return "UNC"
	case PrefixKindDeviceNS:
		return "DeviceNS"
	case PrefixKindVerbatimDisk:
		return "VerbatimDisk"
	case PrefixKindVerbatimUNC:
		return "VerbatimUNC"
	case PrefixKindVerbatim:
		return "Verbatim"
	default:
		return "Invalid"
	}
}

// IsVerbatim returns whether the prefix starts with "\\?\".
func (k PrefixKind) IsVerbatim() bool {
	return k == PrefixKindVerbatimDisk || k == PrefixKindVerbatimUNC || k == PrefixKindVerbatim
}

// Prefix of a Windows path, as recognized by MatchWindowsPrefix().
//
// Only the fields relevant to Kind are set. DriveLetter is always
// upper case. Server, Share and Name are stored as written.
type Prefix struct {
	Kind PrefixKind
	// Text of the path that makes up the prefix, as written.
	Text        string
	DriveLetter byte
	Server      string
	Share       string
	Name        string
}

func isDriveLetter(c byte) bool {
	upper := c &^ 0x20
	return upper >= 'A' && upper <= 'Z'
}

// nextWindowsSeparator returns the index of the first separator in p,
// or len(p) if p contains no separators.
func nextWindowsSeparator(p string) int {
	if i := strings.IndexAny(p, "\\/"); i >= 0 {
		return i
	}
	return len(p)
}

// MatchWindowsPrefix classifies the leading prefix of a Windows path.
// The prefix never includes the root separator that may follow it.
//
// Paths that start with two separators are required to form a complete
// UNC, device namespace or verbatim prefix. If they don't, an error of
// kind ErrorKindMalformedPrefix is returned, instead of classifying the
// path as having no prefix. Only "\\.\" selects the device namespace,
// so "\\.host\share" is a UNC path.
func MatchWindowsPrefix(p string) (Prefix, error) {
	if len(p) >= 2 && isWindowsSeparator(p[0]) && isWindowsSeparator(p[1]) {
		if len(p) >= 3 && p[2] == '?' {
			if len(p) == 3 || !isWindowsSeparator(p[3]) {
				return Prefix{}, newMalformedPrefixError(p, min(len(p), 4), "Expected a separator after \"\\\\?\"")
			}
			return matchVerbatimPrefix(p)
		}
		if len(p) >= 4 && p[2] == '.' && isWindowsSeparator(p[3]) {
			return matchDeviceNSPrefix(p)
		}
		server, share, end, err := matchServerShare(p, 2)
		if err != nil {
			return Prefix{}, err
		}
		return Prefix{
			Kind:   PrefixKindUNC,
			Text:   p[:end],
			Server: server,
			Share:  share,
		}, nil
	}

	if len(p) >= 2 && isDriveLetter(p[0]) && p[1] == ':' {
		return Prefix{
			Kind:        PrefixKindDisk,
			Text:        p[:2],
			DriveLetter: p[0] &^ 0x20,
		}, nil
	}
	return Prefix{Kind: PrefixKindNone}, nil
}

// matchVerbatimPrefix handles paths starting with "\\?\".
func matchVerbatimPrefix(p string) (Prefix, error) {
	const start = 4
	rest := p[start:]

	if len(rest) >= 3 && strings.EqualFold(rest[:3], "UNC") && (len(rest) == 3 || isWindowsSeparator(rest[3])) {
		if len(rest) == 3 {
			return Prefix{}, newMalformedPrefixError(p, len(p), "Verbatim UNC path lacks a server and share name")
		}
		server, share, end, err := matchServerShare(p, start+4)
		if err != nil {
			return Prefix{}, err
		}
		return Prefix{
			Kind:   PrefixKindVerbatimUNC,
			Text:   p[:end],
			Server: server,
			Share:  share,
		}, nil
	}

	if len(rest) >= 2 && isDriveLetter(rest[0]) && rest[1] == ':' && (len(rest) == 2 || isWindowsSeparator(rest[2])) {
		return Prefix{
			Kind:        PrefixKindVerbatimDisk,
			Text:        p[:start+2],
			DriveLetter: rest[0] &^ 0x20,
		}, nil
	}

	nameLen := nextWindowsSeparator(rest)
	if nameLen == 0 {
		return Prefix{}, newMalformedPrefixError(p, start, "Verbatim path lacks a name")
	}
	return Prefix{
		Kind: PrefixKindVerbatim,
		Text: p[:start+nameLen],
		Name: rest[:nameLen],
	}, nil
}

// matchDeviceNSPrefix handles paths starting with "\\.\".
func matchDeviceNSPrefix(p string) (Prefix, error) {
	const start = 4
	nameLen := nextWindowsSeparator(p[start:])
	if nameLen == 0 {
		return Prefix{}, newMalformedPrefixError(p, start, "Device namespace path lacks a device name")
	}
	return Prefix{
		Kind: PrefixKindDeviceNS,
		Text: p[:start+nameLen],
		Name: p[start : start+nameLen],
	}, nil
}

// matchServerShare parses the "server\share" part of a UNC path,
// starting at a given offset. It returns the offset at which the share
// name ends.
func matchServerShare(p string, start int) (server, share string, end int, err error) {
	serverLen := nextWindowsSeparator(p[start:])
	if serverLen == 0 {
		return "", "", 0, newMalformedPrefixError(p, start, "UNC path lacks a server name")
	}
	serverEnd := start + serverLen
	if serverEnd == len(p) {
		return "", "", 0, newMalformedPrefixError(p, serverEnd, "UNC path lacks a share name")
	}
	shareStart := serverEnd + 1
	shareLen := nextWindowsSeparator(p[shareStart:])
	if shareLen == 0 {
		return "", "", 0, newMalformedPrefixError(p, shareStart, "UNC path lacks a share name")
	}
	end = shareStart + shareLen
	return p[start:serverEnd], p[shareStart:end], end, nil
}
