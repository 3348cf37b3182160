package human

import (
	"io/fs"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fakeClassifier returns a fixed classification regardless of the mode.
type fakeClassifier struct {
	bits PermissionBits
}

func (f fakeClassifier) Classify(_ fs.FileMode) PermissionBits {
	return f.bits
}

func TestPermissions_Symbolic(t *testing.T) {
	tests := []struct {
		name     string
		mode     fs.FileMode
		expected string
	}{
		{
			name:     "directory",
			mode:     fs.ModeDir | 0o755,
			expected: "drwxr-xr-x",
		},
		{
			name:     "regular file",
			mode:     0o644,
			expected: "-rw-r--r--",
		},
		{
			name:     "symlink",
			mode:     fs.ModeSymlink | 0o777,
			expected: "lrwxrwxrwx",
		},
		{
			name:     "no permissions",
			mode:     0,
			expected: "----------",
		},
		{
			name:     "named pipe",
			mode:     fs.ModeNamedPipe | 0o600,
			expected: "prw-------",
		},
		{
			name:     "socket",
			mode:     fs.ModeSocket | 0o660,
			expected: "srw-rw----",
		},
		{
			name:     "block device",
			mode:     fs.ModeDevice | 0o660,
			expected: "brw-rw----",
		},
		{
			name:     "char device",
			mode:     fs.ModeDevice | fs.ModeCharDevice | 0o666,
			expected: "crw-rw-rw-",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewPermissions(tt.mode).Symbolic())
		})
	}
}

func TestPermissions_Describe(t *testing.T) {
	tests := []struct {
		name     string
		mode     fs.FileMode
		expected string
	}{
		{
			name:     "mixed principals with an empty triplet",
			mode:     0o640,
			expected: "User: Read, Write; Group: Read; Other: None",
		},
		{
			name:     "all bits everywhere",
			mode:     0o777,
			expected: "User: Read, Write, Execute; Group: Read, Write, Execute; Other: Read, Write, Execute",
		},
		{
			name:     "no bits anywhere",
			mode:     0,
			expected: "User: None; Group: None; Other: None",
		},
		{
			name:     "execute only",
			mode:     0o111,
			expected: "User: Execute; Group: Execute; Other: Execute",
		},
		{
			name:     "read and execute",
			mode:     0o755,
			expected: "User: Read, Write, Execute; Group: Read, Execute; Other: Read, Execute",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewPermissions(tt.mode).Describe())
		})
	}
}

func TestPermissions_InjectedClassifier(t *testing.T) {
	bits := PermissionBits{
		Type:  TypeDirectory,
		Owner: Triplet{Read: true, Write: true, Execute: true},
		Group: Triplet{Read: true},
		Other: Triplet{},
	}
	p := NewPermissionsWith(fakeClassifier{bits: bits}, 0)

	assert.Equal(t, "drwxr-----", p.Symbolic())
	assert.Equal(t, "User: Read, Write, Execute; Group: Read; Other: None", p.Describe())
}

func TestPermissions_StringPlatformDefault(t *testing.T) {
	p := NewPermissions(fs.ModeDir | 0o755)
	if runtime.GOOS == "windows" {
		assert.Equal(t, p.Describe(), p.String())
	} else {
		assert.Equal(t, p.Symbolic(), p.String())
	}
}

func TestPermissions_Idempotent(t *testing.T) {
	p := NewPermissions(fs.ModeDir | 0o755)
	assert.Equal(t, p.Symbolic(), p.Symbolic())
	assert.Equal(t, p.Describe(), p.Describe())
}
