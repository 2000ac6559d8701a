package web

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"betu_homestay/internal/domain"
)

//go:embed all:static
var staticFiles embed.FS

// StaticFS is the embedded client bundle rooted at static/.
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err) // embedded path is fixed at build time
	}
	return sub
}

// StaticHandler serves the embedded bundle under /static/.
func StaticHandler() http.Handler {
	return http.StripPrefix("/static", http.FileServer(http.FS(StaticFS())))
}

// Export writes index.html and the client bundle under dir for hosting the
// page without the server. The exported page still expects the session
// API at the same origin for interactivity.
func Export(dir string, site domain.SiteView, rooms []domain.Room) error {
	if err := os.MkdirAll(filepath.Join(dir, "static"), 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	index := filepath.Join(dir, "index.html")
	if err := os.WriteFile(index, []byte(RenderPage(site, rooms)), 0o644); err != nil {
		return fmt.Errorf("export index: %w", err)
	}

	err := fs.WalkDir(StaticFS(), ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		b, err := fs.ReadFile(StaticFS(), path)
		if err != nil {
			return err
		}
		dst := filepath.Join(dir, "static", filepath.FromSlash(path))
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return err
		}
		return os.WriteFile(dst, b, 0o644)
	})
	if err != nil {
		return fmt.Errorf("export static: %w", err)
	}
	log.Info().Str("dir", dir).Int("rooms", len(rooms)).Msg("site exported")
	return nil
}
