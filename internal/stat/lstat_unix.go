//go:build linux || darwin

package stat

import (
	"time"

	"golang.org/x/sys/unix"
)

// Lstat reads path's metadata without following a final symlink.
func Lstat(path string) (Stat, error) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return Stat{Path: path}, err
	}

	atime, mtime, ctime := statTimes(&st)
	return Stat{
		Path:  path,
		Mode:  uint32(st.Mode),
		Nlink: uint64(st.Nlink),
		UID:   st.Uid,
		GID:   st.Gid,
		Size:  st.Size,
		Atime: atime,
		Mtime: mtime,
		Ctime: ctime,
	}, nil
}

func timespec(ts unix.Timespec) time.Time {
	return time.Unix(ts.Unix())
}
