package human

import "io/fs"

// Triplet holds the read/write/execute bits for one principal.
type Triplet struct {
	Read    bool
	Write   bool
	Execute bool
}

// FileType tags the kind of file a mode describes, using its symbolic
// character: '-' regular, 'd' directory, 'l' symlink, and so on.
type FileType byte

// File type tags.
const (
	TypeRegular     FileType = '-'
	TypeDirectory   FileType = 'd'
	TypeSymlink     FileType = 'l'
	TypeNamedPipe   FileType = 'p'
	TypeSocket      FileType = 's'
	TypeBlockDevice FileType = 'b'
	TypeCharDevice  FileType = 'c'
)

// PermissionBits is the classified form of a file mode: its type tag plus
// the read/write/execute triplets for the owner, group and other
// principals.
type PermissionBits struct {
	Type  FileType
	Owner Triplet
	Group Triplet
	Other Triplet
}

// ModeClassifier maps a raw file mode to its classified permission bits.
// The permission formatter consumes this as an opaque capability and never
// inspects the mode's bit layout itself.
type ModeClassifier interface {
	Classify(mode fs.FileMode) PermissionBits
}

// fsClassifier classifies modes following the fs.FileMode conventions.
type fsClassifier struct{}

func (fsClassifier) Classify(mode fs.FileMode) PermissionBits {
	return PermissionBits{
		Type:  fileTypeOf(mode),
		Owner: tripletOf(mode, 6),
		Group: tripletOf(mode, 3),
		Other: tripletOf(mode, 0),
	}
}

func fileTypeOf(mode fs.FileMode) FileType {
	switch {
	case mode.IsDir():
		return TypeDirectory
	case mode&fs.ModeSymlink != 0:
		return TypeSymlink
	case mode&fs.ModeNamedPipe != 0:
		return TypeNamedPipe
	case mode&fs.ModeSocket != 0:
		return TypeSocket
	case mode&fs.ModeCharDevice != 0:
		return TypeCharDevice
	case mode&fs.ModeDevice != 0:
		return TypeBlockDevice
	default:
		return TypeRegular
	}
}

func tripletOf(mode fs.FileMode, shift uint) Triplet {
	bits := mode.Perm() >> shift
	return Triplet{
		Read:    bits&0b100 != 0,
		Write:   bits&0b010 != 0,
		Execute: bits&0b001 != 0,
	}
}
