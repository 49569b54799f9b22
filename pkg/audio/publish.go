package audio

import (
	"io"
	"os"
	"path"

	"golang.org/x/exp/slog"
)

// Publisher copies audio files from the synthesis dir into the renderer's
// public dir. A file already present in the public dir is never copied
// again, even if the source file with the same name changed since.
type Publisher struct {
	SrcDir string
	DstDir string
}

// Publish materializes filename in the public dir if needed. It reports
// whether the file is available there afterwards.
func (p *Publisher) Publish(filename string) bool {
	src := path.Join(p.SrcDir, filename)
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return false
	}
	dst := path.Join(p.DstDir, filename)
	if _, err := os.Stat(dst); err == nil {
		return true
	}

	srcFile, err := os.Open(src)
	if err != nil {
		slog.Error("open audio file", "err", err)
		return false
	}
	defer srcFile.Close()

	if err := os.MkdirAll(p.DstDir, os.ModePerm); err != nil {
		slog.Error("create public audio dir", "err", err)
		return false
	}

	dstFile, err := os.Create(dst)
	if err != nil {
		slog.Error("create public audio file", "err", err)
		return false
	}
	defer dstFile.Close()

	if _, err := io.Copy(dstFile, srcFile); err != nil {
		slog.Error("copy audio file to public dir", "err", err)
		return false
	}
	return true
}
