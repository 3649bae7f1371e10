//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// go:embed 只能嵌入当前包目录下的文件，构建移动端包前
// 需要先把项目根目录的 assets/ 复制到本目录：
//
//	cp -r assets mobile/assets
package mobile

import "embed"

//go:embed all:assets
var assetsFS embed.FS
