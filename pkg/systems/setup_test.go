package systems

import (
	"math/rand"
	"testing"

	"github.com/gonewx/molewhack/pkg/components"
	"github.com/gonewx/molewhack/pkg/config"
	"github.com/gonewx/molewhack/pkg/ecs"
	"github.com/gonewx/molewhack/pkg/game"
	"github.com/gonewx/molewhack/pkg/utils"
)

// testWorld 测试用的完整游戏世界（不含渲染和输入）
type testWorld struct {
	em        *ecs.EntityManager
	cfg       *config.GameConfig
	gradient  *config.HealthGradient
	rng       *rand.Rand
	gameState *game.GameState

	gridEntity ecs.EntityID
	poolIDs    []ecs.EntityID

	grid      *SpawnGridSystem
	pool      *EnemyPoolSystem
	damage    *DamageSystem
	scheduler *SpawnSchedulerSystem
	spawnAnim *SpawnAnimationSystem
	punch     *PunchAnimationSystem
	flash     *FlashEffectSystem
	death     *DeathSystem
}

// newTestWorld 用固定种子装配测试世界
// mutate 可选，用于在装配前调整配置（网格大小、池构成等）
func newTestWorld(t *testing.T, seed int64, mutate func(*config.GameConfig)) *testWorld {
	t.Helper()

	cfg := config.DefaultGameConfig()
	if mutate != nil {
		mutate(cfg)
	}

	gradient, err := config.NewHealthGradient(cfg.Gradient)
	if err != nil {
		t.Fatalf("Failed to build gradient: %v", err)
	}

	rng := rand.New(rand.NewSource(seed))
	em := ecs.NewEntityManager()
	gameState := game.NewGameState()
	layout := utils.NewGridLayout(cfg.GridSize)

	gridEntity := em.CreateEntity()
	em.AddComponent(gridEntity, components.NewSpawnGridComponent(cfg.GridSize))

	grid := NewSpawnGridSystem(em, rng)
	pool := NewEnemyPoolSystem(em, rng)
	poolIDs := pool.BuildPool(cfg.Pools)

	damage := NewDamageSystem(em, rng, gradient, cfg, gameState, nil)

	return &testWorld{
		em:         em,
		cfg:        cfg,
		gradient:   gradient,
		rng:        rng,
		gameState:  gameState,
		gridEntity: gridEntity,
		poolIDs:    poolIDs,
		grid:       grid,
		pool:       pool,
		damage:     damage,
		scheduler:  NewSpawnSchedulerSystem(em, grid, pool, gridEntity, cfg, gradient, layout, gameState),
		spawnAnim:  NewSpawnAnimationSystem(em),
		punch:      NewPunchAnimationSystem(em),
		flash:      NewFlashEffectSystem(em),
		death:      NewDeathSystem(em, grid, gridEntity),
	}
}

// smallOnly 把池配置改为只有 count 个小型敌人
func smallOnly(count int) func(*config.GameConfig) {
	return func(cfg *config.GameConfig) {
		cfg.Pools = []config.PoolEntry{{BodyType: "small", Count: count}}
	}
}

// enemy 读取敌人组件，不存在时直接失败
func (w *testWorld) enemy(t *testing.T, id ecs.EntityID) *components.EnemyComponent {
	t.Helper()
	enemy, ok := ecs.GetComponent[*components.EnemyComponent](w.em, id)
	if !ok {
		t.Fatalf("Entity %d has no EnemyComponent", id)
	}
	return enemy
}

// health 读取生命组件，不存在时直接失败
func (w *testWorld) health(t *testing.T, id ecs.EntityID) *components.HealthComponent {
	t.Helper()
	health, ok := ecs.GetComponent[*components.HealthComponent](w.em, id)
	if !ok {
		t.Fatalf("Entity %d has no HealthComponent", id)
	}
	return health
}

// mustSpawn 执行一次调度并要求必须生成成功
func (w *testWorld) mustSpawn(t *testing.T) ecs.EntityID {
	t.Helper()
	id := w.scheduler.Tick()
	if id == 0 {
		t.Fatal("Expected a spawn, got none")
	}
	return id
}

// killAndBury 把敌人打死并推进完死亡动画（归还对象池）
func (w *testWorld) killAndBury(t *testing.T, id ecs.EntityID) {
	t.Helper()
	health := w.health(t, id)
	w.damage.ApplyLightHit(id, health.Current+1)

	if w.enemy(t, id).State != components.EnemyDying {
		t.Fatalf("Expected entity %d to be dying", id)
	}
	w.death.Update(w.cfg.DeathAnimDuration + 0.01)
	if w.enemy(t, id).State != components.EnemyInactive {
		t.Fatalf("Expected entity %d to be back in pool", id)
	}
}
