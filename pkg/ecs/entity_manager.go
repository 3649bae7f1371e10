// Package ecs 提供一个极简的实体-组件管理器
//
// 实体只是一个数字 ID，组件是任意结构体指针。
// 系统通过泛型辅助函数查询拥有特定组件组合的实体。
package ecs

import "reflect"

// EntityID 是实体的唯一标识符
// 0 保留为无效 ID（网格占用表用 0 表示空格子）
type EntityID uint64

// EntityManager 管理所有实体和组件
type EntityManager struct {
	nextID uint64
	// 实体-组件映射: EntityID -> 组件类型 -> 组件实例
	components map[EntityID]map[reflect.Type]interface{}
	// 待删除的实体ID列表
	entitiesToDestroy []EntityID
}

// NewEntityManager 创建一个新的 EntityManager 实例
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:            1, // ID从1开始，0保留为无效ID
		components:        make(map[EntityID]map[reflect.Type]interface{}),
		entitiesToDestroy: make([]EntityID, 0),
	}
}

// CreateEntity 创建新实体并返回唯一ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity 标记实体待删除（不立即删除）
// 实际删除发生在 RemoveMarkedEntities 调用时
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.entitiesToDestroy = append(em.entitiesToDestroy, id)
}

// AddComponent 为实体添加组件（按组件的动态类型索引）
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	if compMap, exists := em.components[id]; exists {
		compMap[reflect.TypeOf(component)] = component
	}
}

// RemoveComponent 从实体移除指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if compMap, exists := em.components[id]; exists {
		delete(compMap, componentType)
	}
}

// HasEntity 检查实体是否存在
func (em *EntityManager) HasEntity(id EntityID) bool {
	_, exists := em.components[id]
	return exists
}

// RemoveMarkedEntities 清理所有标记删除的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.entitiesToDestroy {
		delete(em.components, id)
	}
	em.entitiesToDestroy = em.entitiesToDestroy[:0]
}

// GetComponent 获取实体的指定类型组件
// T 必须是指针类型，如 *components.HealthComponent
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	compMap, exists := em.components[id]
	if !exists {
		return zero, false
	}
	comp, found := compMap[reflect.TypeFor[T]()]
	if !found {
		return zero, false
	}
	return comp.(T), true
}

// HasComponent 检查实体是否拥有指定类型组件
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	_, ok := GetComponent[T](em, id)
	return ok
}

// GetEntitiesWith1 查询拥有指定组件类型的所有实体
func GetEntitiesWith1[T any](em *EntityManager) []EntityID {
	t := reflect.TypeFor[T]()
	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		if _, found := compMap[t]; found {
			result = append(result, id)
		}
	}
	return result
}

// GetEntitiesWith2 查询同时拥有两种组件类型的所有实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	t1 := reflect.TypeFor[T1]()
	t2 := reflect.TypeFor[T2]()
	result := make([]EntityID, 0)
	for id, compMap := range em.components {
		if _, found := compMap[t1]; !found {
			continue
		}
		if _, found := compMap[t2]; !found {
			continue
		}
		result = append(result, id)
	}
	return result
}
