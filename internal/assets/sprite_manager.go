package assets

import (
	"fmt"
	_ "image/png" // декодер для NewImageFromFile
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

const (
	EnemySpriteFile = "tank.png"
	// Спрайты башен: tower_push_42.png для 1-го уровня, 43 и 44 дальше.
	towerSpriteBase = 42
)

// SpriteManager загружает и кэширует спрайты и шрифты. Любой
// отсутствующий файл даёт nil, и рендер рисует примитивы.
type SpriteManager struct {
	dir      string
	enemy    *ebiten.Image
	towers   map[int]*ebiten.Image
	fontData *opentype.Font
	faces    map[float64]font.Face
}

// NewSpriteManager creates an empty manager rooted at dir.
func NewSpriteManager(dir string) *SpriteManager {
	return &SpriteManager{
		dir:    dir,
		towers: make(map[int]*ebiten.Image),
		faces:  make(map[float64]font.Face),
	}
}

// TowerSpriteFile returns the sprite file name for a tower level.
func TowerSpriteFile(level int) string {
	return fmt.Sprintf("tower_push_%d.png", towerSpriteBase+level-1)
}

// LoadAll loads the enemy sprite and one tower sprite per level.
func (m *SpriteManager) LoadAll(maxLevel int) {
	m.enemy = m.loadImage(EnemySpriteFile)
	for level := 1; level <= maxLevel; level++ {
		if img := m.loadImage(TowerSpriteFile(level)); img != nil {
			m.towers[level] = img
		}
	}
}

func (m *SpriteManager) loadImage(name string) *ebiten.Image {
	path := filepath.Join(m.dir, name)
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		log.Printf("Sprite %s unavailable, drawing shapes instead: %v", path, err)
		return nil
	}
	log.Printf("Loaded sprite %s", path)
	return img
}

// Enemy returns the enemy sprite or nil.
func (m *SpriteManager) Enemy() *ebiten.Image {
	return m.enemy
}

// Tower returns the sprite for the level or nil.
func (m *SpriteManager) Tower(level int) *ebiten.Image {
	return m.towers[level]
}

// LoadFont parses a TTF file for sized faces. On failure Face falls back to
// the built-in bitmap font.
func (m *SpriteManager) LoadFont(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Font %s unavailable, using basic font: %v", path, err)
		return
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		log.Printf("Font %s is not a valid TTF, using basic font: %v", path, err)
		return
	}
	m.fontData = tt
}

// Face returns a face of the given size, cached per size.
func (m *SpriteManager) Face(size float64) font.Face {
	if m.fontData == nil {
		return basicfont.Face7x13
	}
	if face, ok := m.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(m.fontData, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("Failed to create font face of size %v: %v", size, err)
		return basicfont.Face7x13
	}
	m.faces[size] = face
	return face
}
