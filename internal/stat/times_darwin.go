package stat

import (
	"time"

	"golang.org/x/sys/unix"
)

func statTimes(st *unix.Stat_t) (time.Time, time.Time, time.Time) {
	return timespec(st.Atimespec), timespec(st.Mtimespec), timespec(st.Ctimespec)
}
