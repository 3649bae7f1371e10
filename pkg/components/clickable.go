package components

// ClickableComponent 标识可被鼠标/触摸点击命中的实体
//
// Enabled 在敌人激活时打开，进入死亡状态的瞬间关闭
// （死亡动画期间的敌人不再是攻击目标）
type ClickableComponent struct {
	Radius  float64 // 点击判定半径（像素，以实体位置为圆心）
	Enabled bool    // 是否响应点击
}
