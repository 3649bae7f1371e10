package components

// TintComponent 存储实体当前的显示颜色（RGB 各分量 0.0~1.0）
//
// 普通变体在激活时写入体型基础色后不再改变；
// 变色变体每次受击后按生命比例从渐变中重算
type TintComponent struct {
	R float64
	G float64
	B float64
}
