package behavior

import (
	"time"

	"go.uber.org/zap"

	"deskpet/config"
	"deskpet/internal/entity"
)

// Window 控制器对外界的全部依赖：窗口、鼠标和画面
type Window interface {
	RaiseToTop()                           // 重新置顶
	MoveTo(x, y int)                       // 移动窗口
	Cursor() (x, y int)                    // 鼠标的屏幕坐标
	Show(anim entity.Animation, frame int) // 显示某个动画的第 frame 帧
}

// Frames 查询每个动画有多少帧
type Frames interface {
	FrameCount(anim entity.Animation) int
}

// Rand 随机数来源，测试时可以换成固定序列。*math/rand/v2.Rand 满足这个接口
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Bounds 行走范围
type Bounds struct {
	MinX, MaxX int
	WalkY      int
}

// Controller 行为状态机。所有状态都在这个结构体里，只在 tick 和定时回调中修改
type Controller struct {
	cfg    *config.Config
	win    Window
	frames Frames
	rng    Rand
	log    *zap.Logger

	sched  *Scheduler
	pet    entity.Pet
	bounds Bounds
	dwell  Token // 当前 idle/sleep 停留计时器
	tick   Token
}

func NewController(cfg *config.Config, win Window, frames Frames, rng Rand, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{
		cfg:    cfg,
		win:    win,
		frames: frames,
		rng:    rng,
		log:    log,
		sched:  NewScheduler(),
	}
}

// Start 根据屏幕大小算出活动范围和初始位置，然后排第一个 tick
func (c *Controller) Start(screenW, screenH int) {
	c.bounds = Bounds{
		MinX:  c.cfg.Movement.MinX,
		MaxX:  screenW - c.cfg.Movement.RightMargin,
		WalkY: c.cfg.Movement.WalkY,
	}

	c.pet = entity.Pet{
		X:         screenW - c.cfg.Window.PixelsFromRight,
		Y:         screenH - c.cfg.Window.PixelsFromBottom,
		MoveSpeed: c.cfg.Movement.NormalSpeed,
		Direction: entity.Direction(c.rng.IntN(2)),
		Animation: entity.AnimIdle,
	}
	c.setState(entity.Idle)
	c.win.MoveTo(c.pet.X, c.pet.Y)

	c.log.Info("pet started",
		zap.Int("x", c.pet.X),
		zap.Int("y", c.pet.Y),
		zap.Int("min_x", c.bounds.MinX),
		zap.Int("max_x", c.bounds.MaxX),
		zap.Stringer("direction", c.pet.Direction),
	)

	c.tick = c.sched.After(c.cfg.Behavior.Delay, c.onTick)
}

// Advance 推进时钟，执行期间到期的 tick 和计时器
func (c *Controller) Advance(d time.Duration) {
	c.sched.Advance(d)
}

// Stop 取消所有还没执行的 tick 和计时器
func (c *Controller) Stop() {
	c.sched.Cancel(c.tick)
	c.sched.Cancel(c.dwell)
	c.tick, c.dwell = 0, 0
}

// Pet 返回当前状态的快照
func (c *Controller) Pet() entity.Pet { return c.pet }

// Bounds 行走范围
func (c *Controller) Bounds() Bounds { return c.bounds }

// Now 控制器的虚拟时间
func (c *Controller) Now() time.Duration { return c.sched.Now() }

// FrameIndex 当前动画实际显示的帧下标
func (c *Controller) FrameIndex() int {
	n := c.frames.FrameCount(c.pet.Animation)
	if n <= 0 {
		return 0
	}
	return c.pet.Tick % n
}

func (c *Controller) onTick() {
	p := &c.pet

	// 1. 置顶 + 显示当前帧
	c.win.RaiseToTop()
	c.win.Show(p.Animation, c.FrameIndex())

	// 2. 小概率开始追鼠标
	if !p.FollowMouse && c.rng.Float64() < c.cfg.Behavior.FollowMouseChance {
		c.startFollow()
	}

	// 3. 追鼠标优先，否则按状态行动
	if p.FollowMouse {
		if c.followCursor() {
			c.stopFollow()
		}
	} else {
		switch p.State {
		case entity.Idle, entity.Sleep:
			c.ensureDwell()
		case entity.Walk:
			c.moveAroundScreen()
		}
	}

	// 4. 根据状态和方向选下一轮的动画
	p.Animation = entity.AnimationFor(p.State, p.Direction)

	p.Tick++
	c.tick = c.sched.After(c.cfg.Behavior.Delay, c.onTick)
}

// setState 切换状态。旧的停留计时器一律作废，进入 idle/sleep 时重新计时
func (c *Controller) setState(s entity.State) {
	c.sched.Cancel(c.dwell)
	c.dwell = 0

	if c.pet.State != s {
		c.log.Debug("state change",
			zap.Stringer("from", c.pet.State),
			zap.Stringer("to", s),
			zap.Duration("at", c.sched.Now()),
		)
	}
	c.pet.State = s
	c.ensureDwell()
}

// ensureDwell 在 idle/sleep 状态下保证有且只有一个停留计时器
func (c *Controller) ensureDwell() {
	if c.sched.Pending(c.dwell) {
		return
	}

	var d time.Duration
	switch c.pet.State {
	case entity.Idle:
		d = c.cfg.Behavior.IdleDuration
	case entity.Sleep:
		d = c.cfg.Behavior.SleepDuration
	default:
		return
	}
	c.dwell = c.sched.After(d, c.onDwellTimeout)
}

func (c *Controller) onDwellTimeout() {
	c.dwell = 0
	c.setState(entity.Walk)
}

func (c *Controller) startFollow() {
	c.sched.Cancel(c.dwell)
	c.dwell = 0

	c.pet.FollowMouse = true
	c.pet.MoveSpeed = c.cfg.Movement.FollowSpeed
	c.log.Debug("follow mouse", zap.Int("x", c.pet.X), zap.Stringer("state", c.pet.State))
}

func (c *Controller) stopFollow() {
	c.pet.FollowMouse = false
	c.pet.MoveSpeed = c.cfg.Movement.NormalSpeed
	c.setState(entity.Idle)
}

// moveAroundScreen 左右来回走，撞到边界就掉头，走完再掷骰子决定要不要停下
func (c *Controller) moveAroundScreen() {
	p := &c.pet
	if p.State != entity.Walk {
		return
	}

	switch p.Direction {
	case entity.Left:
		if p.X > c.bounds.MinX {
			p.X -= p.MoveSpeed
		} else {
			p.Direction = entity.Right
		}
	case entity.Right:
		if p.X < c.bounds.MaxX {
			p.X += p.MoveSpeed
		} else {
			p.Direction = entity.Left
		}
	}
	p.Y = c.bounds.WalkY

	// 两次独立的掷骰
	if c.rng.Float64() < c.cfg.Behavior.IdleChance {
		c.setState(entity.Idle)
	} else if c.rng.Float64() < c.cfg.Behavior.SleepChance {
		c.setState(entity.Sleep)
	}

	c.win.MoveTo(p.X, p.Y)
}

// followCursor 朝鼠标的 X 走一步。已经够近时返回 true，不移动
func (c *Controller) followCursor() bool {
	p := &c.pet
	cx, _ := c.win.Cursor()

	delta := cx - p.X
	if abs(delta) <= p.MoveSpeed {
		return true
	}

	if delta > 0 {
		p.X += p.MoveSpeed
		p.Direction = entity.Right
	} else {
		p.X -= p.MoveSpeed
		p.Direction = entity.Left
	}
	p.Y = c.bounds.WalkY

	c.win.MoveTo(p.X, p.Y)
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
