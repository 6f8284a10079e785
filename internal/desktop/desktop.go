package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Window 对 ebiten 窗口函数的一层薄封装：位置、置顶、全局鼠标坐标
// 只能在 ebiten 的 Update 里调用
type Window struct {
	x, y  int
	moved bool
}

// ScreenSize 当前显示器的分辨率
func ScreenSize() (int, int) {
	return ebiten.Monitor().Size()
}

// RaiseToTop 重新声明置顶 (有些窗口管理器会在切换焦点后把它丢下去)
func (w *Window) RaiseToTop() {
	ebiten.SetWindowFloating(true)
}

// MoveTo 移动窗口，位置没变时不重复调用
func (w *Window) MoveTo(x, y int) {
	if w.moved && w.x == x && w.y == y {
		return
	}
	w.x, w.y, w.moved = x, y, true
	ebiten.SetWindowPosition(x, y)
}

// Cursor 鼠标在屏幕上的绝对位置
// Ebiten 只给相对窗口的坐标，所以要加上窗口自己的位置
func (w *Window) Cursor() (int, int) {
	wx, wy := ebiten.WindowPosition()
	mx, my := ebiten.CursorPosition()
	return wx + mx, wy + my
}
