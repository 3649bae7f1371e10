// verify_gameplay 无头玩法验证工具
//
// 不开窗口，用固定种子把核心玩法跑一段模拟时间：
// 生成调度、受击伤害、死亡归池、格子释放全部走真实系统，
// 结束后打印统计结果。用于快速验证玩法数值和核心逻辑。
//
// 用法:
//
//	go run ./cmd/verify_gameplay -seed 42 -duration 60
//	go run ./cmd/verify_gameplay -config assets/config/game.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"github.com/gonewx/molewhack/pkg/components"
	"github.com/gonewx/molewhack/pkg/config"
	"github.com/gonewx/molewhack/pkg/ecs"
	"github.com/gonewx/molewhack/pkg/game"
	"github.com/gonewx/molewhack/pkg/systems"
	"github.com/gonewx/molewhack/pkg/utils"
)

const simStep = 1.0 / 60.0 // 模拟步长（秒），与游戏 TPS 一致

func main() {
	seed := flag.Int64("seed", 1, "随机种子")
	duration := flag.Float64("duration", 60, "模拟时长（秒）")
	configPath := flag.String("config", "", "配置文件路径（为空使用内置默认配置）")
	verbose := flag.Bool("verbose", false, "打印系统日志")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultGameConfig()
	if *configPath != "" {
		loaded, err := config.LoadGameConfigFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config error: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	gradient, err := config.NewHealthGradient(cfg.Gradient)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gradient error: %v\n", err)
		os.Exit(1)
	}

	// 世界装配（与 GameScene 相同，但不挂渲染和输入）
	rng := rand.New(rand.NewSource(*seed))
	em := ecs.NewEntityManager()
	gameState := game.NewGameState()
	layout := utils.NewGridLayout(cfg.GridSize)

	gridEntity := em.CreateEntity()
	em.AddComponent(gridEntity, components.NewSpawnGridComponent(cfg.GridSize))

	gridSystem := systems.NewSpawnGridSystem(em, rng)
	poolSystem := systems.NewEnemyPoolSystem(em, rng)
	poolIDs := poolSystem.BuildPool(cfg.Pools)

	damageSystem := systems.NewDamageSystem(em, rng, gradient, cfg, gameState, nil)
	scheduler := systems.NewSpawnSchedulerSystem(em, gridSystem, poolSystem, gridEntity, cfg, gradient, layout, gameState)
	spawnAnim := systems.NewSpawnAnimationSystem(em)
	punchAnim := systems.NewPunchAnimationSystem(em)
	flash := systems.NewFlashEffectSystem(em)
	death := systems.NewDeathSystem(em, gridSystem, gridEntity)

	// 模拟"玩家"：每 0.4 秒对一个随机在场敌人点一下，70% 轻击 30% 重击
	const clickInterval = 0.4
	clickTimer := 0.0
	spawns, lightHits, heavyHits := 0, 0, 0

	for t := 0.0; t < *duration; t += simStep {
		before := poolSystem.ActiveCount()
		scheduler.Update(simStep)
		if after := poolSystem.ActiveCount(); after > before {
			spawns += after - before
		}

		clickTimer += simStep
		if clickTimer >= clickInterval {
			clickTimer -= clickInterval
			if id, ok := randomActiveEnemy(em, rng); ok {
				if rng.Float64() < 0.7 {
					damageSystem.ApplyLightHit(id, cfg.LightDamage)
					lightHits++
				} else {
					damageSystem.ApplyHeavyHit(id, cfg.HeavyDamage, rng.Float64())
					heavyHits++
				}
			}
		}

		spawnAnim.Update(simStep)
		punchAnim.Update(simStep)
		flash.Update(simStep)
		death.Update(simStep)
	}

	fmt.Printf("simulated %.0fs with seed %d\n", *duration, *seed)
	fmt.Printf("  pool size:        %d\n", len(poolIDs))
	fmt.Printf("  spawns:           %d\n", spawns)
	fmt.Printf("  light hits:       %d\n", lightHits)
	fmt.Printf("  heavy hits:       %d\n", heavyHits)
	fmt.Printf("  score:            %d\n", gameState.Score)
	fmt.Printf("  active enemies:   %d\n", poolSystem.ActiveCount())
	fmt.Printf("  free cells:       %d/%d\n", gridSystem.FreeCellCount(gridEntity), cfg.GridSize*cfg.GridSize)

	// 不变量：在场敌人数必须等于被占用的格子数
	occupied := cfg.GridSize*cfg.GridSize - gridSystem.FreeCellCount(gridEntity)
	if occupied != poolSystem.ActiveCount() {
		fmt.Fprintf(os.Stderr, "INVARIANT VIOLATION: %d occupied cells but %d enemies on board\n",
			occupied, poolSystem.ActiveCount())
		os.Exit(1)
	}
	fmt.Println("  invariants:       OK")
}

// randomActiveEnemy 随机挑一个在场（Active）敌人
func randomActiveEnemy(em *ecs.EntityManager, rng *rand.Rand) (ecs.EntityID, bool) {
	candidates := make([]ecs.EntityID, 0)
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](em) {
		enemy, ok := ecs.GetComponent[*components.EnemyComponent](em, id)
		if ok && enemy.State == components.EnemyActive {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return 0, false
	}
	return candidates[rng.Intn(len(candidates))], true
}
