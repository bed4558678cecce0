package picker

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/dpetrovs/brewclub/internal/client/models"
)

// FilePicker reads a photo path from the interactive session. An empty line
// cancels the selection. The file content is sniffed so only images pass.
type FilePicker struct {
	reader *bufio.Reader
	out    io.Writer
}

var _ Picker = (*FilePicker)(nil)

func NewFilePicker(reader *bufio.Reader, out io.Writer) *FilePicker {
	return &FilePicker{reader: reader, out: out}
}

func (p *FilePicker) PickPhoto(ctx context.Context) (*models.PickedImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if _, err := fmt.Fprint(p.out, "Path to photo (empty line to cancel)\n> "); err != nil {
		return nil, err
	}

	line, err := p.reader.ReadString('\n')
	if err != nil && !(err == io.EOF && len(line) > 0) {
		return nil, ErrCancelled
	}

	path := strings.TrimSpace(line)
	if path == "" {
		return nil, ErrCancelled
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read photo: %w", err)
	}

	mimeType := http.DetectContentType(data)
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, fmt.Errorf("%w: %s", ErrNotAnImage, mimeType)
	}

	return &models.PickedImage{
		Path:     path,
		FileName: filepath.Base(path),
		MIMEType: mimeType,
		Data:     data,
	}, nil
}
