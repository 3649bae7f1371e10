// Package types 定义共享的基础类型
package types

// BodyType 定义敌人的体型等级
// 数值即等级：体型越大，最大生命值越高
type BodyType int

const (
	// BodyUnknown 未知体型
	BodyUnknown BodyType = 0

	// BodySmall 小型敌人
	BodySmall BodyType = 1
	// BodyMedium 中型敌人
	BodyMedium BodyType = 2
	// BodyLarge 大型敌人
	BodyLarge BodyType = 3
)

// healthPerBodyLevel 每级体型对应的生命值倍数
const healthPerBodyLevel = 3

// bodyTypeStringMap 体型到配置字符串的映射
var bodyTypeStringMap = map[BodyType]string{
	BodySmall:  "small",
	BodyMedium: "medium",
	BodyLarge:  "large",
}

// stringToBodyTypeMap 配置字符串到体型的反向映射
var stringToBodyTypeMap map[string]BodyType

func init() {
	stringToBodyTypeMap = make(map[string]BodyType)
	for bt, s := range bodyTypeStringMap {
		stringToBodyTypeMap[s] = bt
	}
}

// String 返回体型的配置字符串表示（用于配置文件匹配）
func (b BodyType) String() string {
	if s, ok := bodyTypeStringMap[b]; ok {
		return s
	}
	return "unknown"
}

// MaxHealth 返回该体型的最大生命值（体型等级 × 3）
func (b BodyType) MaxHealth() int {
	return int(b) * healthPerBodyLevel
}

// Points 返回击杀该体型敌人获得的分数
func (b BodyType) Points() int {
	return int(b) * 10
}

// Radius 返回该体型的渲染半径（像素）
// 渲染与点击判定共用此半径
func (b BodyType) Radius() float64 {
	switch b {
	case BodySmall:
		return 22
	case BodyMedium:
		return 30
	case BodyLarge:
		return 38
	default:
		return 0
	}
}

// IsValid 检查体型是否为已定义的三种之一
func (b BodyType) IsValid() bool {
	_, ok := bodyTypeStringMap[b]
	return ok
}

// BodyTypeFromString 将配置字符串转换为 BodyType
func BodyTypeFromString(s string) BodyType {
	if bt, ok := stringToBodyTypeMap[s]; ok {
		return bt
	}
	return BodyUnknown
}

// BehaviorVariant 定义敌人的行为变体
// 变体在对象池构建时随机决定一次，之后不再改变
type BehaviorVariant int

const (
	// VariantPlain 普通变体：受击只扣生命值
	VariantPlain BehaviorVariant = iota
	// VariantColored 变色变体：受击时额外按生命比例重算显示颜色
	VariantColored
)

// String 返回变体的字符串表示
func (v BehaviorVariant) String() string {
	switch v {
	case VariantPlain:
		return "plain"
	case VariantColored:
		return "colored"
	default:
		return "unknown"
	}
}
