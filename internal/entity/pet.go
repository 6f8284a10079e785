package entity

// State 宠物当前的行为状态
type State int

const (
	Idle State = iota
	Sleep
	Walk
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Sleep:
		return "sleep"
	case Walk:
		return "walk"
	}
	return "unknown"
}

// Direction 朝向，决定行走动画和往哪边屏幕走
type Direction int

const (
	Left Direction = iota
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Opposite 反方向
func (d Direction) Opposite() Direction {
	if d == Left {
		return Right
	}
	return Left
}

// Animation 动画名，对应素材里的一组帧
type Animation string

const (
	AnimIdle      Animation = "idle"
	AnimSleep     Animation = "sleep"
	AnimWalkLeft  Animation = "walk_left"
	AnimWalkRight Animation = "walk_right"
)

// Animations 全部动画，加载素材时按这个顺序
var Animations = []Animation{AnimIdle, AnimSleep, AnimWalkLeft, AnimWalkRight}

// WalkAnimation 某个方向的行走动画
func WalkAnimation(d Direction) Animation {
	if d == Left {
		return AnimWalkLeft
	}
	return AnimWalkRight
}

// AnimationFor 由状态和方向推出应该播放的动画
func AnimationFor(s State, d Direction) Animation {
	switch s {
	case Walk:
		return WalkAnimation(d)
	case Sleep:
		return AnimSleep
	}
	return AnimIdle
}

type Pet struct {
	State     State
	Direction Direction

	X int // 窗口左上角的屏幕坐标
	Y int

	MoveSpeed   int  // 当前速度，追鼠标时会变快
	FollowMouse bool // 是否正在追鼠标

	Animation Animation // 当前播放的动画
	Tick      int       // 累计 tick 数，取帧时对动画长度取模
}
