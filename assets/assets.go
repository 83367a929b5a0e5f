package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

//go:embed all:images
var imageFS embed.FS

// Image paths inside the embedded filesystem.
const (
	BackgroundImage = "images/background.png"
	GroundImage     = "images/ground.png"
	FighterImage    = "images/fighter.png"
)

// ArenaImages is every image the arena scene draws. The background gates the
// start of the match; the others only affect drawing.
var ArenaImages = []string{BackgroundImage, GroundImage, FighterImage}

// Result is the outcome of one asynchronous image load.
type Result struct {
	Path  string
	Image *ebiten.Image
	Err   error
}

// Loader decodes images on background goroutines. Results are collected on
// the update goroutine with Poll so no game state is touched concurrently.
type Loader struct {
	fsys    fs.FS
	logger  *log.Logger
	results chan Result
}

func NewLoader(logger *log.Logger) *Loader {
	return NewLoaderFS(imageFS, logger)
}

// NewLoaderFS reads images from fsys instead of the embedded set.
func NewLoaderFS(fsys fs.FS, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{
		fsys:    fsys,
		logger:  logger.WithPrefix("assets"),
		results: make(chan Result, 16),
	}
}

// Load starts one goroutine per path.
func (l *Loader) Load(paths ...string) {
	for _, p := range paths {
		go func(path string) {
			img, err := LoadImage(l.fsys, path)
			l.results <- Result{Path: path, Image: img, Err: err}
		}(p)
	}
}

// Poll returns a finished load if one is ready. It never blocks.
func (l *Loader) Poll() (Result, bool) {
	select {
	case r := <-l.results:
		if r.Err != nil {
			l.logger.Error("image load failed", "path", r.Path, "err", r.Err)
		} else {
			l.logger.Debug("image loaded", "path", r.Path)
		}
		return r, true
	default:
		return Result{}, false
	}
}

// LoadImage reads and decodes one image from fsys.
func LoadImage(fsys fs.FS, path string) (*ebiten.Image, error) {
	imgBytes, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", path, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	return img, nil
}
