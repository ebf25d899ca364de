package hal

import (
	"fmt"
	"runtime/debug"
	"strings"
)

func logPanic(l Logger, v any) {
	if l == nil {
		return
	}
	l.WriteLineString(fmt.Sprintf("M3U Panic: %v", v))
	for _, line := range strings.Split(string(debug.Stack()), "\n") {
		if line == "" {
			continue
		}
		l.WriteLineString(line)
	}
}
