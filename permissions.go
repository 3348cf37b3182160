package human

import (
	"io/fs"
	"strings"
)

// Permissions formats a file mode's classified permission bits, either as
// the ten-character symbolic Unix string or as a descriptive sentence per
// principal.
type Permissions struct {
	bits PermissionBits
}

// NewPermissions creates a permission formatter for mode using the standard
// fs.FileMode classification.
func NewPermissions(mode fs.FileMode) Permissions {
	return NewPermissionsWith(fsClassifier{}, mode)
}

// NewPermissionsWith creates a permission formatter for mode, classified
// by c.
func NewPermissionsWith(c ModeClassifier, mode fs.FileMode) Permissions {
	return Permissions{bits: c.Classify(mode)}
}

// Symbolic renders the ten-character Unix permission string, such as
// "drwxr-xr-x".
func (p Permissions) Symbolic() string {
	var b [10]byte
	b[0] = byte(p.bits.Type)
	writeTriplet(b[1:4], p.bits.Owner)
	writeTriplet(b[4:7], p.bits.Group)
	writeTriplet(b[7:10], p.bits.Other)
	return string(b[:])
}

// Describe renders one clause per principal listing the permissions that
// are set: "User: Read, Write; Group: Read; Other: None".
func (p Permissions) Describe() string {
	return "User: " + describeTriplet(p.bits.Owner) +
		"; Group: " + describeTriplet(p.bits.Group) +
		"; Other: " + describeTriplet(p.bits.Other)
}

func writeTriplet(dst []byte, t Triplet) {
	dst[0], dst[1], dst[2] = '-', '-', '-'
	if t.Read {
		dst[0] = 'r'
	}
	if t.Write {
		dst[1] = 'w'
	}
	if t.Execute {
		dst[2] = 'x'
	}
}

func describeTriplet(t Triplet) string {
	names := make([]string, 0, 3)
	if t.Read {
		names = append(names, "Read")
	}
	if t.Write {
		names = append(names, "Write")
	}
	if t.Execute {
		names = append(names, "Execute")
	}
	if len(names) == 0 {
		return "None"
	}
	return strings.Join(names, ", ")
}
