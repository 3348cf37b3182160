//go:build windows

package human

// String renders the descriptive per-principal form used on platforms
// without symbolic permission strings.
func (p Permissions) String() string {
	return p.Describe()
}
