package cell

import (
	"cmp"
	"fmt"
)

// Kind 单元的种类，数据单元或者哨兵
type Kind uint8

const (
	Data           Kind = iota //普通数据单元
	TopSentinel                //头哨兵，整个链表的入口
	BottomSentinel             //尾哨兵，只出现在带哨兵的双向链表
)

func (k Kind) String() string {
	switch k {
	case Data:
		return "data"
	case TopSentinel:
		return "top-sentinel"
	case BottomSentinel:
		return "bottom-sentinel"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Linkage 单元的链接方式，构造时确定，之后不可修改
type Linkage uint8

const (
	SinglyLinked Linkage = iota
	DoublyLinked
)

func (l Linkage) String() string {
	if l == DoublyLinked {
		return "doubly-linked"
	}
	return "singly-linked"
}

// Cell 链表单元
//next是唯一的所有权链，prev只是反向引用，只有双向链表的单元才会使用
type Cell[T any] struct {
	Value   T
	next    *Cell[T]
	prev    *Cell[T]
	bottom  *Cell[T] //只有双向链表的头哨兵使用，缓存尾哨兵
	kind    Kind
	linkage Linkage
}

// New 创建一个数据单元
func New[T any](value T, linkage Linkage) *Cell[T] {
	return &Cell[T]{
		Value:   value,
		kind:    Data,
		linkage: linkage,
	}
}

// NewTopSentinel 创建头哨兵，值为T的零值
func NewTopSentinel[T any](linkage Linkage) *Cell[T] {
	return &Cell[T]{kind: TopSentinel, linkage: linkage}
}

// NewBottomSentinel 创建尾哨兵，尾哨兵总是双向链接的
func NewBottomSentinel[T any]() *Cell[T] {
	return &Cell[T]{kind: BottomSentinel, linkage: DoublyLinked}
}

func (c *Cell[T]) Kind() Kind {
	return c.kind
}

func (c *Cell[T]) Linkage() Linkage {
	return c.linkage
}

func (c *Cell[T]) IsDoublyLinked() bool {
	return c.linkage == DoublyLinked
}

func (c *Cell[T]) IsSentinel() bool {
	return c.kind != Data
}

// Next 返回下一个单元，没有则为nil
func (c *Cell[T]) Next() *Cell[T] {
	return c.next
}

// Prev 返回上一个单元，单向链表的单元总是nil
func (c *Cell[T]) Prev() *Cell[T] {
	return c.prev
}

// Bottom 返回头哨兵缓存的尾哨兵
func (c *Cell[T]) Bottom() *Cell[T] {
	return c.bottom
}

func (c *Cell[T]) SetNext(next *Cell[T]) {
	c.next = next
}

// SetPrev 设置反向引用，单向链表的单元没有prev，调用即是程序错误
func (c *Cell[T]) SetPrev(prev *Cell[T]) {
	if c.linkage != DoublyLinked {
		panic("cell: SetPrev on a singly-linked cell")
	}
	c.prev = prev
}

// SetBottom 设置尾哨兵缓存，只允许双向链表的头哨兵
func (c *Cell[T]) SetBottom(bottom *Cell[T]) {
	if c.kind != TopSentinel || c.linkage != DoublyLinked {
		panic("cell: SetBottom on a cell that is not a doubly-linked top sentinel")
	}
	if bottom != nil && bottom.kind != BottomSentinel {
		panic("cell: SetBottom with a cell that is not a bottom sentinel")
	}
	c.bottom = bottom
}

// Unlink 断开单元所有的链接，被删除的单元不再引用链表
func (c *Cell[T]) Unlink() {
	c.next = nil
	c.prev = nil
}

func (c *Cell[T]) String() string {
	switch c.kind {
	case TopSentinel:
		return "<top>"
	case BottomSentinel:
		return "<bottom>"
	default:
		return fmt.Sprint(c.Value)
	}
}

// Less 单元的顺序只由值决定
func Less[T cmp.Ordered](a, b *Cell[T]) bool {
	return cmp.Less(a.Value, b.Value)
}

// Compare 返回-1、0、1，用于sort之类需要三路比较的场合
func Compare[T cmp.Ordered](a, b *Cell[T]) int {
	return cmp.Compare(a.Value, b.Value)
}
