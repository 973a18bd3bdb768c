//go:build !linux && !darwin

package stat

// Lstat is not available on this platform.
func Lstat(path string) (Stat, error) {
	return Stat{Path: path}, ErrUnsupported
}
