package surface

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tuckbox/tuckbox/internal/dieline"
)

// replaceFile fills a temporary file next to path and renames it into
// place, so a failed write never leaves a partial drawing at path.
func replaceFile(path string, fill func(f *os.File) error) (err error) {
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, ".tuckbox-*"+filepath.Ext(path))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	if err = fill(f); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	if err = f.Chmod(0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrWrite, path, err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("%w: %v", ErrWrite, err)
	}

	if st, serr := os.Stat(path); serr == nil {
		dieline.Logger().Info("saved", slog.String("path", path), slog.Int64("bytes", st.Size()))
	}
	return nil
}
