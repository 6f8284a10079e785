package behavior

import (
	"container/heap"
	"time"
)

// Token 定时任务的句柄，用来取消。零值表示"没有任务"
type Token uint64

type task struct {
	due time.Duration
	seq uint64
	id  Token
	fn  func()
}

// taskQueue 按 (到期时间, 插入顺序) 排序的小顶堆
type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }
func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}
func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *taskQueue) Push(x any)   { *q = append(*q, x.(*task)) }
func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

// Scheduler 单线程的定时任务循环，时钟是虚拟的，只由 Advance 推进。
// 任务一个接一个执行，不会重叠。
type Scheduler struct {
	now     time.Duration
	seq     uint64
	queue   taskQueue
	pending map[Token]struct{}
}

func NewScheduler() *Scheduler {
	return &Scheduler{pending: make(map[Token]struct{})}
}

// Now 当前虚拟时间
func (s *Scheduler) Now() time.Duration { return s.now }

// After 在 d 之后执行 fn，返回可用于取消的 Token
func (s *Scheduler) After(d time.Duration, fn func()) Token {
	if d < 0 {
		d = 0
	}
	s.seq++
	id := Token(s.seq)
	heap.Push(&s.queue, &task{due: s.now + d, seq: s.seq, id: id, fn: fn})
	s.pending[id] = struct{}{}
	return id
}

// Cancel 取消一个还没执行的任务。任务已执行或已取消时返回 false
func (s *Scheduler) Cancel(id Token) bool {
	if _, ok := s.pending[id]; !ok {
		return false
	}
	delete(s.pending, id)
	return true
}

// Pending 任务是否还在等待执行
func (s *Scheduler) Pending(id Token) bool {
	_, ok := s.pending[id]
	return ok
}

// Len 等待中的任务数
func (s *Scheduler) Len() int { return len(s.pending) }

// Advance 把时钟往前推 d，按顺序执行期间到期的所有任务
// (包括执行过程中新排进来、且在窗口内到期的任务)。返回执行的任务数
func (s *Scheduler) Advance(d time.Duration) int {
	target := s.now + d
	ran := 0
	for s.queue.Len() > 0 && s.queue[0].due <= target {
		t := heap.Pop(&s.queue).(*task)
		if _, ok := s.pending[t.id]; !ok {
			continue // 已取消
		}
		delete(s.pending, t.id)
		s.now = t.due
		t.fn()
		ran++
	}
	s.now = target
	return ran
}
