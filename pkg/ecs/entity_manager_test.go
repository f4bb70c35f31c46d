package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 != 1 || id2 != 2 {
		t.Errorf("entity IDs = %d, %d, want 1, 2", id1, id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	pos := &testPositionComponent{X: 100, Y: 200}
	em.AddComponent(id, pos)

	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}
	if comp.(*testPositionComponent) != pos {
		t.Error("GetComponent returned a different instance")
	}

	if _, found := em.GetComponent(id, reflect.TypeOf(&testVelocityComponent{})); found {
		t.Error("missing component type should not be found")
	}
}

func TestAddComponentUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	em.AddComponent(42, &testPositionComponent{})

	if _, found := em.GetComponent(42, reflect.TypeOf(&testPositionComponent{})); found {
		t.Error("component added to an unknown entity should be ignored")
	}
}

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	vel := &testVelocityComponent{VX: 1}
	em.AddComponent(id, vel)

	got, ok := GetComponent[*testVelocityComponent](em, id)
	if !ok || got != vel {
		t.Errorf("GetComponent[*testVelocityComponent] = %v, %v", got, ok)
	}
	if got, ok := GetComponent[*testPositionComponent](em, id); ok || got != nil {
		t.Errorf("GetComponent[*testPositionComponent] = %v, %v, want nil, false", got, ok)
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	moving := em.CreateEntity()
	em.AddComponent(moving, &testPositionComponent{})
	em.AddComponent(moving, &testVelocityComponent{})

	static := em.CreateEntity()
	em.AddComponent(static, &testPositionComponent{})

	em.CreateEntity()

	tests := []struct {
		name  string
		types []reflect.Type
		want  []EntityID
	}{
		{"单个组件", []reflect.Type{reflect.TypeOf(&testPositionComponent{})}, []EntityID{moving, static}},
		{"组件组合", []reflect.Type{reflect.TypeOf(&testPositionComponent{}), reflect.TypeOf(&testVelocityComponent{})}, []EntityID{moving}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := em.GetEntitiesWith(tt.types...)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("GetEntitiesWith() = %v, want %v", got, tt.want)
			}
		})
	}

	if got := GetEntitiesWith1[*testVelocityComponent](em); !reflect.DeepEqual(got, []EntityID{moving}) {
		t.Errorf("GetEntitiesWith1 = %v, want [%d]", got, moving)
	}
}
