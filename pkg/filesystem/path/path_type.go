package path

// UNIXPathType is the shape of a Unix path.
type UNIXPathType int

const (
	// UNIXPathTypeRelative is a path that does not start with '/'.
	UNIXPathTypeRelative UNIXPathType = iota
	// UNIXPathTypeAbsolute is a path that starts with '/'.
	UNIXPathTypeAbsolute
)

func (t UNIXPathType) String() string {
	if t == UNIXPathTypeAbsolute {
		return "Absolute"
	}
	return "Relative"
}

func getUNIXPathType(hasRoot bool) UNIXPathType {
	if hasRoot {
		return UNIXPathTypeAbsolute
	}
	return UNIXPathTypeRelative
}

// WindowsPathKind is the shape of a Windows path.
type WindowsPathKind int

const (
	// WindowsPathKindRelative is a path without prefix and root, e.g.
	// "foo\bar".
	WindowsPathKindRelative WindowsPathKind = iota
	// WindowsPathKindRooted is a path without a prefix that starts with
	// a separator, e.g. "\foo". It is relative to the root of the
	// current drive.
	WindowsPathKindRooted
	// WindowsPathKindDisk is a drive letter followed by a root, e.g.
	// "C:\foo".
	WindowsPathKindDisk
	// WindowsPathKindDiskRelative is a drive letter that is not
	// followed by a root, e.g. "C:foo". It is relative to the current
	// directory of that drive.
	WindowsPathKindDiskRelative
	// WindowsPathKindUNC is a path on a network share.
	WindowsPathKindUNC
	// WindowsPathKindDeviceNS is a path in the device namespace.
	WindowsPathKindDeviceNS
	// WindowsPathKindVerbatimDisk is a verbatim path on a drive.
	WindowsPathKindVerbatimDisk
	// WindowsPathKindVerbatimUNC is a verbatim path on a network
	// share.
	WindowsPathKindVerbatimUNC
	// WindowsPathKindVerbatim is any other verbatim path.
	WindowsPathKindVerbatim
)

func (k WindowsPathKind) String() string {
	switch k {
	case WindowsPathKindRelative:
		return "Relative"
	case WindowsPathKindRooted:
		return "Rooted"
	case WindowsPathKindDisk:
		return "Disk"
	case WindowsPathKindDiskRelative:
		return "DiskRelative"
	case WindowsPathKindUNC:
		return "UNC"
	case WindowsPathKindDeviceNS:
		return "DeviceNS"
	case WindowsPathKindVerbatimDisk:
		return "VerbatimDisk"
	case WindowsPathKindVerbatimUNC:
		return "VerbatimUNC"
	case WindowsPathKindVerbatim:
		return "Verbatim"
	default:
		return "Invalid"
	}
}

// WindowsPathType is the shape of a Windows path, together with the
// prefix from which it was derived.
type WindowsPathType struct {
	Kind   WindowsPathKind
	Prefix Prefix
}

// IsAbsolute returns whether the path does not depend on the current
// drive or the current directory. Paths on drives need to be followed
// by a root to be absolute. Shares, devices and verbatim paths are
// always absolute.
func (t WindowsPathType) IsAbsolute() bool {
	switch t.Kind {
	case WindowsPathKindRelative, WindowsPathKindRooted, WindowsPathKindDiskRelative:
		return false
	default:
		return true
	}
}

func getWindowsPathType(prefix Prefix, hasRoot bool) WindowsPathType {
	t := WindowsPathType{Prefix: prefix}
	switch prefix.Kind {
	case PrefixKindNone:
		if hasRoot {
			t.Kind = WindowsPathKindRooted
		} else {
			t.Kind = WindowsPathKindRelative
		}
	case PrefixKindDisk:
		if hasRoot {
			t.Kind = WindowsPathKindDisk
		} else {
			t.Kind = WindowsPathKindDiskRelative
		}
	case PrefixKindUNC:
		t.Kind = WindowsPathKindUNC
	case PrefixKindDeviceNS:
		t.Kind = WindowsPathKindDeviceNS
	case PrefixKindVerbatimDisk:
		t.Kind = WindowsPathKindVerbatimDisk
	case PrefixKindVerbatimUNC:
		t.Kind = WindowsPathKindVerbatimUNC
	case PrefixKindVerbatim:
		t.Kind = WindowsPathKindVerbatim
	default:
		panic("Unknown prefix kind")
	}
	return t
}
