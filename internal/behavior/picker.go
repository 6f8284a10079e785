package behavior

import "deskpet/internal/entity"

// NextAnimation 按权重随机挑下一个动画：
// idle 在 idle/左走/右走 中均匀选；sleep 在 idle/sleep 中选；
// 行走动画和当前朝向一致就保持，否则换成另一边。
func NextAnimation(cur entity.Animation, dir entity.Direction, rng Rand) entity.Animation {
	switch cur {
	case entity.AnimIdle:
		choices := []entity.Animation{entity.AnimIdle, entity.AnimWalkLeft, entity.AnimWalkRight}
		return choices[rng.IntN(len(choices))]
	case entity.AnimSleep:
		choices := []entity.Animation{entity.AnimIdle, entity.AnimSleep}
		return choices[rng.IntN(len(choices))]
	case entity.AnimWalkLeft, entity.AnimWalkRight:
		return entity.WalkAnimation(dir)
	}
	return cur
}
