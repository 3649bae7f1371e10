package components

import "github.com/gonewx/molewhack/pkg/types"

// EnemyState 敌人生命周期状态
// 状态循环：Inactive → Active → Dying → Inactive
type EnemyState int

const (
	// EnemyInactive 在对象池中待命，不渲染、不可点击
	EnemyInactive EnemyState = iota
	// EnemyActive 已生成到网格上，可被点击造成伤害
	EnemyActive
	// EnemyDying 正在播放死亡动画，不可点击
	EnemyDying
)

// String 返回状态的字符串表示（用于日志）
func (s EnemyState) String() string {
	switch s {
	case EnemyInactive:
		return "inactive"
	case EnemyActive:
		return "active"
	case EnemyDying:
		return "dying"
	default:
		return "unknown"
	}
}

// EnemyComponent 标识对象池中的敌人实体
//
// 体型和变体在池构建时决定一次，之后不再改变；
// State、Col、Row 随生成/死亡循环复用
type EnemyComponent struct {
	BodyType types.BodyType        // 体型（决定最大生命值、半径、分数）
	Variant  types.BehaviorVariant // 行为变体（Plain / Colored）
	State    EnemyState            // 当前生命周期状态
	Col      int                   // 当前占用的网格列（仅 Active/Dying 期间有效）
	Row      int                   // 当前占用的网格行
}
