package ecs

import "testing"

type posComp struct{ X, Y float64 }
type tagComp struct{ Name string }

// TestCreateEntity 测试实体ID从1开始且递增唯一
func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()

	first := em.CreateEntity()
	second := em.CreateEntity()

	if first != 1 {
		t.Errorf("Expected first entity ID 1, got %d", first)
	}
	if second != 2 {
		t.Errorf("Expected second entity ID 2, got %d", second)
	}
	if !em.HasEntity(first) || !em.HasEntity(second) {
		t.Error("Expected both entities to exist")
	}
}

// TestAddAndGetComponent 测试组件挂载与泛型读取
func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &posComp{X: 3, Y: 4})

	pos, ok := GetComponent[*posComp](em, id)
	if !ok {
		t.Fatal("Expected to find posComp")
	}
	if pos.X != 3 || pos.Y != 4 {
		t.Errorf("Expected (3, 4), got (%v, %v)", pos.X, pos.Y)
	}

	// 未挂载的组件类型查不到
	if _, ok := GetComponent[*tagComp](em, id); ok {
		t.Error("Expected tagComp to be absent")
	}

	// 不存在的实体查不到
	if _, ok := GetComponent[*posComp](em, 999); ok {
		t.Error("Expected lookup on missing entity to fail")
	}
}

// TestGetComponentReturnsPointer 测试组件读取返回共享指针（修改可见）
func TestGetComponentReturnsPointer(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &posComp{X: 1})

	pos, _ := GetComponent[*posComp](em, id)
	pos.X = 42

	again, _ := GetComponent[*posComp](em, id)
	if again.X != 42 {
		t.Errorf("Expected mutation to be visible, got X=%v", again.X)
	}
}

// TestGetEntitiesWith 测试组件组合查询
func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	both := em.CreateEntity()
	em.AddComponent(both, &posComp{})
	em.AddComponent(both, &tagComp{})

	posOnly := em.CreateEntity()
	em.AddComponent(posOnly, &posComp{})

	withPos := GetEntitiesWith1[*posComp](em)
	if len(withPos) != 2 {
		t.Errorf("Expected 2 entities with posComp, got %d", len(withPos))
	}

	withBoth := GetEntitiesWith2[*posComp, *tagComp](em)
	if len(withBoth) != 1 {
		t.Fatalf("Expected 1 entity with both components, got %d", len(withBoth))
	}
	if withBoth[0] != both {
		t.Errorf("Expected entity %d, got %d", both, withBoth[0])
	}
}

// TestDestroyEntity 测试延迟删除语义
func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &posComp{})

	em.DestroyEntity(id)

	// 标记后、清理前实体仍然存在
	if !em.HasEntity(id) {
		t.Error("Expected entity to exist before RemoveMarkedEntities")
	}

	em.RemoveMarkedEntities()

	if em.HasEntity(id) {
		t.Error("Expected entity to be gone after RemoveMarkedEntities")
	}
	if _, ok := GetComponent[*posComp](em, id); ok {
		t.Error("Expected components to be gone after RemoveMarkedEntities")
	}
}
