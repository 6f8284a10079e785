package behavior

import (
	"testing"

	"deskpet/internal/entity"
)

func TestNextAnimation(t *testing.T) {
	tests := []struct {
		name string
		cur  entity.Animation
		dir  entity.Direction
		pick int
		want entity.Animation
	}{
		{"idle stays idle", entity.AnimIdle, entity.Left, 0, entity.AnimIdle},
		{"idle to walk left", entity.AnimIdle, entity.Right, 1, entity.AnimWalkLeft},
		{"idle to walk right", entity.AnimIdle, entity.Left, 2, entity.AnimWalkRight},
		{"sleep wakes", entity.AnimSleep, entity.Left, 0, entity.AnimIdle},
		{"sleep continues", entity.AnimSleep, entity.Left, 1, entity.AnimSleep},
		{"walk left matches", entity.AnimWalkLeft, entity.Left, 0, entity.AnimWalkLeft},
		{"walk left turns", entity.AnimWalkLeft, entity.Right, 0, entity.AnimWalkRight},
		{"walk right matches", entity.AnimWalkRight, entity.Right, 0, entity.AnimWalkRight},
		{"walk right turns", entity.AnimWalkRight, entity.Left, 0, entity.AnimWalkLeft},
		{"unknown passes through", entity.Animation("dance"), entity.Left, 0, entity.Animation("dance")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextAnimation(tt.cur, tt.dir, &scriptedRand{ints: []int{tt.pick}})
			if got != tt.want {
				t.Errorf("NextAnimation(%s, %s) = %s, want %s", tt.cur, tt.dir, got, tt.want)
			}
		})
	}
}

func TestNextAnimationIdleIsUniform(t *testing.T) {
	// 依次取 0,1,2，三个候选都应出现
	seen := map[entity.Animation]bool{}
	rng := &scriptedRand{ints: []int{0, 1, 2}}
	for i := 0; i < 3; i++ {
		seen[NextAnimation(entity.AnimIdle, entity.Left, rng)] = true
	}
	if len(seen) != 3 {
		t.Errorf("Expected 3 distinct animations, got %v", seen)
	}
}
