package page

import (
	"bytes"
	_ "embed"
	"io"
	"os"

	shelferrors "github.com/conneroisu/shelfpage/internal/errors"
)

//go:embed host.html
var defaultHost []byte

// DefaultHost returns the stock landing page with empty containers.
func DefaultHost() io.Reader {
	return bytes.NewReader(defaultHost)
}

// OpenHost opens the host page at path, or the built-in page when path is
// empty. The caller closes the result.
func OpenHost(path string) (io.ReadCloser, error) {
	if path == "" {
		return io.NopCloser(DefaultHost()), nil
	}

	f, err := os.Open(path)
	if err != nil {
		code := shelferrors.ErrCodeParseFailed
		if os.IsNotExist(err) {
			code = shelferrors.ErrCodeFileNotFound
		}
		return nil, shelferrors.WrapIO(err, code, "cannot open host page", path)
	}
	return f, nil
}
