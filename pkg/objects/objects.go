package objects

import (
	"github.com/cbodonnell/ldengine/pkg/engine"
)

// GameObject is a node in a scene's object tree.
type GameObject interface {
	// Game flow methods
	Init(ctx *engine.Context) error
	Destroy(ctx *engine.Context) error
	Update(ctx *engine.Context) error
	Draw(ctx *engine.Context)

	// Tree methods
	GetID() string
	GetZIndex() int
	GetParent() GameObject
	SetParent(parent GameObject)
	GetChildren() []GameObject
	AddChild(id string, child GameObject) error
	RemoveChild(id string) error
}

// InitTree initializes an object and all of its descendants.
func InitTree(ctx *engine.Context, obj GameObject) error {
	if err := obj.Init(ctx); err != nil {
		return err
	}
	for _, child := range obj.GetChildren() {
		if err := InitTree(ctx, child); err != nil {
			return err
		}
	}
	return nil
}

// DestroyTree destroys an object's descendants, then the object itself.
func DestroyTree(ctx *engine.Context, obj GameObject) error {
	for _, child := range obj.GetChildren() {
		if err := DestroyTree(ctx, child); err != nil {
			return err
		}
	}
	return obj.Destroy(ctx)
}

// UpdateTree updates an object and all of its descendants.
func UpdateTree(ctx *engine.Context, obj GameObject) error {
	if err := obj.Update(ctx); err != nil {
		return err
	}
	for _, child := range obj.GetChildren() {
		if err := UpdateTree(ctx, child); err != nil {
			return err
		}
	}
	return nil
}

// DrawTree draws an object, then its children in their container order.
func DrawTree(ctx *engine.Context, obj GameObject) {
	obj.Draw(ctx)
	for _, child := range obj.GetChildren() {
		DrawTree(ctx, child)
	}
}
