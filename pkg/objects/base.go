package objects

import (
	"fmt"

	"github.com/cbodonnell/ldengine/pkg/engine"
	"github.com/google/uuid"
)

// children keeps child objects indexed by id in insertion order.
type children struct {
	order []string
	byID  map[string]GameObject
}

func newChildren() *children {
	return &children{byID: make(map[string]GameObject)}
}

func (c *children) Get(id string) GameObject {
	return c.byID[id]
}

func (c *children) Add(id string, child GameObject) {
	c.byID[id] = child
	c.order = append(c.order, id)
}

func (c *children) Remove(id string) {
	delete(c.byID, id)
	for i, cid := range c.order {
		if cid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}

func (c *children) All() []GameObject {
	objs := make([]GameObject, 0, len(c.order))
	for _, id := range c.order {
		objs = append(objs, c.byID[id])
	}
	return objs
}

// BaseObject implements the tree bookkeeping of GameObject with no-op
// lifecycle methods, for embedding.
type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children *children
}

type NewBaseObjectOpts struct {
	// ZIndex orders siblings inside a SortedZIndexObject.
	ZIndex int
}

// NewBaseObject creates a base object. An empty id gets a generated one.
func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	if id == "" {
		id = uuid.NewString()
	}
	zIndex := 0
	if opts != nil {
		zIndex = opts.ZIndex
	}
	return &BaseObject{
		id:       id,
		zIndex:   zIndex,
		children: newChildren(),
	}
}

func (o *BaseObject) Init(ctx *engine.Context) error {
	return nil
}

func (o *BaseObject) Destroy(ctx *engine.Context) error {
	return nil
}

func (o *BaseObject) Update(ctx *engine.Context) error {
	return nil
}

func (o *BaseObject) Draw(ctx *engine.Context) {}

func (o *BaseObject) GetID() string {
	return o.id
}

func (o *BaseObject) GetZIndex() int {
	return o.zIndex
}

func (o *BaseObject) GetParent() GameObject {
	return o.parent
}

func (o *BaseObject) SetParent(parent GameObject) {
	o.parent = parent
}

func (o *BaseObject) GetChildren() []GameObject {
	return o.children.All()
}

func (o *BaseObject) AddChild(id string, child GameObject) error {
	if _, ok := o.children.byID[id]; ok {
		return fmt.Errorf("child object with id %q already exists", id)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	return nil
}

func (o *BaseObject) RemoveChild(id string) error {
	if o.children.Get(id) == nil {
		return fmt.Errorf("child object with id %q does not exist", id)
	}
	o.children.Remove(id)
	return nil
}

// RemoveFromParent detaches the object from its parent, if any.
func (o *BaseObject) RemoveFromParent() error {
	if o.parent == nil {
		return nil
	}
	return o.parent.RemoveChild(o.id)
}
