// Package stat reports file metadata in an ls -l like format.
package stat

import (
	"errors"
	"fmt"
	"io"
	"os/user"
	"strconv"
	"strings"
	"time"
)

// POSIX file type bits, independent of the host's syscall package.
const (
	modeTypeMask = 0o170000
	modeFIFO     = 0o010000
	modeChar     = 0o020000
	modeDir      = 0o040000
	modeBlock    = 0o060000
	modeRegular  = 0o100000
	modeSymlink  = 0o120000
	modeSocket   = 0o140000
)

// ErrUnsupported is returned by Lstat on platforms without lstat(2).
var ErrUnsupported = errors.New("stat is not supported on this platform")

// Stat is the subset of lstat(2) burrow prints.
type Stat struct {
	Path  string
	Mode  uint32
	Nlink uint64
	UID   uint32
	GID   uint32
	Size  int64
	Atime time.Time
	Mtime time.Time
	Ctime time.Time
}

// FormatMode renders mode like "drwxr-xr-x".
func FormatMode(mode uint32) string {
	var buf strings.Builder

	switch mode & modeTypeMask {
	case modeDir:
		buf.WriteByte('d')
	case modeRegular:
		buf.WriteByte('-')
	case modeSymlink:
		buf.WriteByte('l')
	case modeFIFO:
		buf.WriteByte('p')
	case modeSocket:
		buf.WriteByte('s')
	case modeChar:
		buf.WriteByte('c')
	case modeBlock:
		buf.WriteByte('b')
	default:
		buf.WriteByte('?')
	}

	const perms = "rwx"
	for i := 0; i < 9; i++ {
		if mode&(1<<(8-i)) != 0 {
			buf.WriteByte(perms[i%3])
		} else {
			buf.WriteByte('-')
		}
	}
	return buf.String()
}

// FormatTime uses the year instead of the clock for times more than six
// months away from now, like ls.
func FormatTime(t, now time.Time) string {
	if t.Before(now.AddDate(0, -6, 0)) || t.After(now.AddDate(0, 6, 0)) {
		return t.Format("Jan _2  2006")
	}
	return t.Format("Jan _2 15:04")
}

// Owner resolves numeric ids to names, falling back to the number.
type Owner func(uid, gid uint32) (string, string)

// LookupOwner resolves ids through os/user.
func LookupOwner(uid, gid uint32) (string, string) {
	username := strconv.FormatUint(uint64(uid), 10)
	if u, err := user.LookupId(username); err == nil {
		username = u.Username
	}
	groupname := strconv.FormatUint(uint64(gid), 10)
	if g, err := user.LookupGroupId(groupname); err == nil {
		groupname = g.Name
	}
	return username, groupname
}

// Line formats st as a single ls -l style line without the trailing newline.
func Line(st Stat, now time.Time, owner Owner) string {
	if owner == nil {
		owner = LookupOwner
	}
	username, groupname := owner(st.UID, st.GID)
	return fmt.Sprintf("%s %d %s %s %d %s %s",
		FormatMode(st.Mode), st.Nlink, username, groupname, st.Size, FormatTime(st.Mtime, now), st.Path,
	)
}

// Print writes one line per path to out. A path that cannot be read is
// reported to errOut and skipped. The returned error is a write failure.
func Print(out, errOut io.Writer, paths []string, now time.Time) error {
	for _, path := range paths {
		st, err := Lstat(path)
		if err != nil {
			if _, werr := fmt.Fprintf(errOut, "Error reading %s: %v\n", path, err); werr != nil {
				return werr
			}
			continue
		}
		if _, err := fmt.Fprintln(out, Line(st, now, nil)); err != nil {
			return err
		}
	}
	return nil
}
