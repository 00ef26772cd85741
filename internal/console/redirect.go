package console

import (
	"bufio"
	"errors"
	"os"
	"path/filepath"

	"github.com/muesli/termenv"

	"github.com/giantswarm/shellkit/pkg/logging"
)

// openRedirect creates path, and its parent directories, and returns a plain
// text writer on it plus the function that flushes and closes it.
func openRedirect(path string, parent *Writer) (*Writer, func() error, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, WrapError(KindIO, err, "failed to create directory %s", dir)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, nil, WrapError(KindIO, err, "failed to open %s", path)
	}
	logging.Debug("Console", "redirecting output to %s", path)

	buf := bufio.NewWriter(f)
	w := NewWriter(buf, parent.Renderer().WithProfile(termenv.Ascii), false).WithWidth(parent.Width)

	closeFn := func() error {
		return errors.Join(buf.Flush(), f.Close())
	}
	return w, closeFn, nil
}
