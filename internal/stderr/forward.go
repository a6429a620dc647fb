// Package stderr captures output that C libraries (ALSA, the AAC decoder
// runtime) write straight to file descriptor 2, bypassing os.Stderr, and
// forwards it to the log instead of the terminal.
package stderr

import (
	"bufio"
	"io"
	"strings"

	"go.uber.org/zap"
)

// forward logs every non-blank line read from r until r is exhausted.
func forward(r io.Reader, log *zap.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			log.Warn(line)
		}
	}
}
