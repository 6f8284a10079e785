package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"

	"deskpet/config"
	"deskpet/internal/behavior"
	"deskpet/internal/desktop"
	"deskpet/internal/entity"
	"deskpet/internal/sprite"
)

// Manager 实现 ebiten.Game。窗口相关的操作交给内嵌的 desktop.Window，
// 行为逻辑交给 behavior.Controller，这里只负责输入、时钟和画图
type Manager struct {
	*desktop.Window

	cfg     *config.Config
	log     *zap.Logger
	sprites *sprite.Set
	ctrl    *behavior.Controller
	started bool

	// 当前要画的帧，由 controller 通过 Show 设置
	anim  entity.Animation
	frame int
}

func NewManager(cfg *config.Config, sprites *sprite.Set, rng behavior.Rand, log *zap.Logger) *Manager {
	m := &Manager{
		Window:  &desktop.Window{},
		cfg:     cfg,
		log:     log,
		sprites: sprites,
		anim:    entity.AnimIdle,
	}
	m.ctrl = behavior.NewController(cfg, m, sprites, rng, log)
	return m
}

// Show 记下 controller 选中的帧，下一次 Draw 时画出来
func (m *Manager) Show(anim entity.Animation, frame int) {
	m.anim = anim
	m.frame = frame
}

func (m *Manager) Update() error {
	// 1. 第一次 Update 时窗口已经创建好，这时再查询屏幕大小
	if !m.started {
		w, h := desktop.ScreenSize()
		m.ctrl.Start(w, h)
		m.started = true
		return nil
	}

	// 2. 左键只记录，右键/中键退出，ESC 也退出
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		m.log.Info("left click", zap.Int("x", x), zap.Int("y", y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) ||
		ebiten.IsKeyPressed(ebiten.KeyEscape) {
		m.ctrl.Stop()
		m.log.Info("bye")
		return ebiten.Termination
	}

	// 3. TPS 和 delay 对应，每次 Update 正好推进一个 tick
	m.ctrl.Advance(m.cfg.Behavior.Delay)
	return nil
}

func (m *Manager) Draw(screen *ebiten.Image) {
	if m.sprites == nil {
		return
	}
	if img := m.sprites.Frame(m.anim, m.frame); img != nil {
		screen.DrawImage(img, nil)
	}
}

func (m *Manager) Layout(outsideWidth, outsideHeight int) (int, int) {
	// 画布大小就是窗口大小
	return m.cfg.Window.Width, m.cfg.Window.Height
}
