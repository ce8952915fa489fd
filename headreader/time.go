package headreader

import (
	"time"

	"github.com/newacorn/goutils/unsafefn"
)

func absoluteNano() int64 {
	return unsafefn.NanoTime()
}

func since(start int64) time.Duration {
	return time.Duration(absoluteNano() - start)
}
