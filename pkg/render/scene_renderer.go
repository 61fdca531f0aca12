package render

import (
	"math"

	"go-path-defense/internal/app"
	"go-path-defense/internal/assets"
	"go-path-defense/internal/config"
	"go-path-defense/internal/types"
	"go-path-defense/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SceneRenderer рисует поле и сущности по снимку симуляции.
// Фон (трава, дорога, ворота, кусты, деревья) рисуется один раз.
type SceneRenderer struct {
	screenWidth  int
	screenHeight int
	sprites      *assets.SpriteManager
	scene        SceneColors
	entities     EntityColors
	rng          *utils.PRNGService
	mapImage     *ebiten.Image // предрендеренный фон
}

func NewSceneRenderer(screenWidth, screenHeight int, sprites *assets.SpriteManager, seed int64) *SceneRenderer {
	return &SceneRenderer{
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
		sprites:      sprites,
		scene: SceneColors{
			Grass:        config.GrassColor,
			GrassSpeckle: config.GrassSpeckleColor,
			Ground:       config.GroundColor,
			Bush:         config.BushColor,
			Tree:         config.TreeColor,
			Gate:         config.GateColor,
			GateArch:     config.GateArchColor,
		},
		entities: EntityColors{
			Enemy:        config.EnemyColor,
			HealthBack:   config.HealthBackColor,
			HealthFill:   config.HealthFillColor,
			Tower:        config.TowerColor,
			Selection:    config.SelectionColor,
			UpgradeFlash: config.UpgradeFlashColor,
			Range:        config.RangeColor,
			Bullet:       config.BulletColor,
		},
		rng: utils.NewPRNGService(seed),
	}
}

// RenderMapImage pre-renders the background for the given path.
func (r *SceneRenderer) RenderMapImage(path []types.Point) {
	img := ebiten.NewImage(r.screenWidth, r.screenHeight)
	r.drawGrass(img)
	r.drawPath(img, path)
	if len(path) > 0 {
		r.drawGate(img, path[0])
		r.drawGate(img, path[len(path)-1])
	}
	r.drawBushes(img)
	r.drawTrees(img)
	r.mapImage = img
}

// DrawBackground draws the scenery only. The menu draws its title over it.
func (r *SceneRenderer) DrawBackground(screen *ebiten.Image) {
	if r.mapImage != nil {
		screen.DrawImage(r.mapImage, nil)
	} else {
		screen.Fill(r.scene.Grass)
	}
}

// Draw renders one frame of the snapshot.
func (r *SceneRenderer) Draw(screen *ebiten.Image, snap app.Snapshot) {
	r.DrawBackground(screen)
	for _, e := range snap.Enemies {
		r.drawEnemy(screen, e)
	}
	for _, t := range snap.Towers {
		r.drawTower(screen, t)
	}
	for _, b := range snap.Bullets {
		vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), r.entities.Bullet, true)
	}
}

func (r *SceneRenderer) drawGrass(img *ebiten.Image) {
	img.Fill(r.scene.Grass)
	for i := 0; i < config.GrassSpeckleCount; i++ {
		x := float32(r.rng.IntRange(0, r.screenWidth))
		y := float32(r.rng.IntRange(0, r.screenHeight))
		vector.DrawFilledCircle(img, x, y, 1, r.scene.GrassSpeckle, false)
	}
}

func (r *SceneRenderer) drawPath(img *ebiten.Image, path []types.Point) {
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i], path[i+1]
		vector.StrokeLine(img, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), config.PathWidth, r.scene.Ground, true)
	}
}

func (r *SceneRenderer) drawGate(img *ebiten.Image, at types.Point) {
	vector.DrawFilledRect(img,
		float32(at.X-config.GateWidth/2), float32(at.Y-config.GateHeight/2),
		config.GateWidth, config.GateHeight, r.scene.Gate, false)

	// Арка — нижняя половина окружности над воротами.
	pts := utils.ArcPoints(at.X, at.Y-config.GateHeight/2, config.GateArcRadius, 0, math.Pi, 16)
	for i := 0; i+1 < len(pts); i++ {
		vector.StrokeLine(img,
			float32(pts[i][0]), float32(pts[i][1]), float32(pts[i+1][0]), float32(pts[i+1][1]),
			config.GateThickness, r.scene.GateArch, true)
	}
}

func (r *SceneRenderer) drawBushes(img *ebiten.Image) {
	for _, pos := range config.BushPositions {
		vector.DrawFilledCircle(img, float32(pos[0]), float32(pos[1]), 15, r.scene.Bush, true)
	}
}

func (r *SceneRenderer) drawTrees(img *ebiten.Image) {
	shade := DarkenColor(r.scene.Tree)
	shade.G += 30
	for _, pos := range config.TreePositions {
		crown := float32(r.rng.IntRange(25, 40))
		vector.DrawFilledCircle(img, float32(pos[0]), float32(pos[1]), crown, r.scene.Tree, true)
		vector.DrawFilledCircle(img, float32(pos[0]-5), float32(pos[1]-5), crown-5, shade, true)
	}
}

func (r *SceneRenderer) drawEnemy(screen *ebiten.Image, e app.EnemyView) {
	if sprite := r.sprites.Enemy(); sprite != nil {
		drawCentered(screen, sprite, e.Pos, config.EnemySpriteSize)
	} else {
		vector.DrawFilledCircle(screen, float32(e.Pos.X), float32(e.Pos.Y), float32(e.Radius), r.entities.Enemy, true)
	}

	x := float32(e.Pos.X - config.HealthBarLength/2)
	y := float32(e.Pos.Y - config.HealthBarOffsetY)
	vector.DrawFilledRect(screen, x, y, config.HealthBarLength, config.HealthBarHeight, r.entities.HealthBack, false)
	fill := float32(e.HealthFraction()) * config.HealthBarLength
	if fill > 0 {
		vector.DrawFilledRect(screen, x, y, fill, config.HealthBarHeight, r.entities.HealthFill, false)
	}
}

func (r *SceneRenderer) drawTower(screen *ebiten.Image, t app.TowerView) {
	cx, cy := float32(t.Pos.X), float32(t.Pos.Y)
	half := float32(t.Size / 2)

	if sprite := r.sprites.Tower(t.Level); sprite != nil {
		drawCentered(screen, sprite, t.Pos, t.Size)
	} else {
		vector.DrawFilledRect(screen, cx-half, cy-half, half*2, half*2, r.entities.Tower, false)
	}

	if t.Selected {
		vector.StrokeRect(screen, cx-half, cy-half, half*2, half*2, config.StrokeWidth, r.entities.Selection, false)
		vector.StrokeCircle(screen, cx, cy, float32(t.Range), 1, r.entities.Range, true)
	}
	if t.UpgradeFlash > 0 {
		flash := WithAlpha(r.entities.UpgradeFlash, t.UpgradeFlash)
		vector.StrokeCircle(screen, cx, cy, float32(t.Range), 4, flash, true)
	}
}

// drawCentered draws img scaled to a size x size square centered on at.
func drawCentered(screen, img *ebiten.Image, at types.Point, size float64) {
	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/float64(bounds.Dx()), size/float64(bounds.Dy()))
	op.GeoM.Translate(at.X-size/2, at.Y-size/2)
	screen.DrawImage(img, op)
}
