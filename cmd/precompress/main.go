// Command precompress walks an asset tree and writes the .gz and .br
// sibling files that the send pipeline serves to clients accepting
// compressed encodings. Already-compressed media (images, video,
// fonts in woff) are skipped, as are siblings newer than their source.
//
//	precompress -root ./public
package main

import (
	"flag"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"

	"github.com/dmitrymomot/sendkit/core/logger"
)

// compressibleExts lists extensions where compression pays off.
// Media formats with built-in compression are deliberately absent.
var compressibleExts = map[string]bool{
	".html": true,
	".htm":  true,
	".css":  true,
	".js":   true,
	".mjs":  true,
	".json": true,
	".xml":  true,
	".txt":  true,
	".md":   true,
	".csv":  true,
	".svg":  true,
	".wasm": true,
	".map":  true,
	".ttf":  true,
	".otf":  true,
	".ico":  true,
}

// variants are the sibling encodings to produce, matching the send
// pipeline's negotiation table.
var variants = []struct {
	ext       string
	newWriter func(w io.Writer) io.WriteCloser
}{
	{".gz", func(w io.Writer) io.WriteCloser {
		zw, _ := gzip.NewWriterLevel(w, gzip.BestCompression)
		return zw
	}},
	{".br", func(w io.Writer) io.WriteCloser {
		return brotli.NewWriterLevel(w, brotli.BestCompression)
	}},
}

func main() {
	root := flag.String("root", ".", "asset directory to walk")
	force := flag.Bool("force", false, "rewrite siblings even when up to date")
	minSize := flag.Int64("min-size", 1024, "skip files smaller than this many bytes")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(*root, *force, *minSize, log); err != nil {
		log.Error("precompress failed", logger.Error(err))
		os.Exit(1)
	}
}

func run(root string, force bool, minSize int64, log *slog.Logger) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// Hidden directories are never served, so their contents
			// need no siblings.
			if path != root && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if !compressibleExts[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.Size() < minSize {
			return nil
		}

		for _, v := range variants {
			sibling := path + v.ext
			if !force && upToDate(info, sibling) {
				continue
			}
			if err := compressFile(path, sibling, v.newWriter); err != nil {
				return err
			}
			log.Info("wrote sibling", slog.String("file", sibling))
		}
		return nil
	})
}

// upToDate reports whether sibling exists and is at least as new as src.
func upToDate(src fs.FileInfo, sibling string) bool {
	info, err := os.Stat(sibling)
	return err == nil && !info.ModTime().Before(src.ModTime())
}

func compressFile(src, dst string, newWriter func(w io.Writer) io.WriteCloser) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}

	cw := newWriter(out)
	_, err = io.Copy(cw, in)
	if cerr := cw.Close(); err == nil {
		err = cerr
	}
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// A partial sibling would be served; remove it.
		_ = os.Remove(dst)
		return err
	}
	return nil
}
