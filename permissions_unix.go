//go:build !windows

package human

// String renders the symbolic Unix form.
func (p Permissions) String() string {
	return p.Symbolic()
}
