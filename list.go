package linkedlists

import (
	"iter"
	"slices"
	"strings"

	"linkedlists/cell"
)

// MakeList 根据给定的值创建链表，默认是带哨兵的单向链表
//带哨兵时返回头哨兵，不带哨兵时返回第一个数据单元
func MakeList[T any](values []T, opts ...Option) (*cell.Cell[T], error) {
	if len(values) == 0 {
		return nil, reject("MakeList", ErrEmptyInput, "")
	}
	o := buildOptions(opts)

	top := cell.NewTopSentinel[T](o.Linkage())
	last := appendValues(top, slices.Values(values))

	if !o.UseSentinel {
		//不带哨兵，临时的头哨兵直接丢弃
		first := top.Next()
		if first.IsDoublyLinked() {
			first.SetPrev(nil)
		}
		return first, nil
	}
	if o.DoublyLinked {
		closeWithBottom(top, last)
	}
	return top, nil
}

// NewList 创建一个空的带哨兵链表，双向链表会同时创建尾哨兵
func NewList[T any](linkage cell.Linkage) *cell.Cell[T] {
	top := cell.NewTopSentinel[T](linkage)
	if linkage == cell.DoublyLinked {
		closeWithBottom(top, top)
	}
	return top
}

// Iterate 按顺序遍历数据单元，哨兵不会被返回
//在尾哨兵之前或者next为nil时结束
func Iterate[T any](head *cell.Cell[T]) iter.Seq[*cell.Cell[T]] {
	return func(yield func(*cell.Cell[T]) bool) {
		if head == nil {
			return
		}
		current := head
		if head.Kind() == cell.TopSentinel {
			current = head.Next()
		}
		for current != nil && current.Kind() == cell.Data {
			if !yield(current) {
				return
			}
			current = current.Next()
		}
	}
}

// Values 返回链表中所有的值
func Values[T any](head *cell.Cell[T]) []T {
	var values []T
	for c := range Iterate(head) {
		values = append(values, c.Value)
	}
	return values
}

// Len 返回数据单元的数目，O(N)
func Len[T any](head *cell.Cell[T]) int {
	n := 0
	for range Iterate(head) {
		n++
	}
	return n
}

// Format 以[1 2 3]的形式输出链表
func Format[T any](head *cell.Cell[T]) string {
	var b strings.Builder
	b.WriteByte('[')
	sep := ""
	for c := range Iterate(head) {
		b.WriteString(sep)
		b.WriteString(c.String())
		sep = " "
	}
	b.WriteByte(']')
	return b.String()
}

// AddAtEnd 在链表尾部添加单元
//双向链表通过尾哨兵的prev直接找到最后一个单元，O(1)；单向链表需要遍历，O(N)
func AddAtEnd[T any](head, newCell *cell.Cell[T]) error {
	const op = "AddAtEnd"
	if err := requireTop(op, head); err != nil {
		return err
	}
	if err := checkNewCell(op, head, newCell); err != nil {
		return err
	}
	insertAfter(lastCell(head), newCell)
	return nil
}

// AddAtBeginning 在头哨兵之后添加单元，O(1)
func AddAtBeginning[T any](head, newCell *cell.Cell[T]) error {
	const op = "AddAtBeginning"
	if err := requireTop(op, head); err != nil {
		return err
	}
	if err := checkNewCell(op, head, newCell); err != nil {
		return err
	}
	insertAfter(head, newCell)
	return nil
}

// InsertCell 把单元插入到after之后，O(1)
func InsertCell[T any](after, newCell *cell.Cell[T]) error {
	const op = "InsertCell"
	if after == nil {
		return reject(op, ErrInvalidOperand, "after is nil")
	}
	if after.Kind() == cell.BottomSentinel {
		return reject(op, ErrInvalidOperand, "cannot insert after the bottom sentinel")
	}
	if err := checkNewCell(op, after, newCell); err != nil {
		return err
	}
	insertAfter(after, newCell)
	return nil
}

// DeleteCell 删除after之后的单元并返回它，O(1)
//被删除单元的链接会被清空
func DeleteCell[T any](after *cell.Cell[T]) (*cell.Cell[T], error) {
	const op = "DeleteCell"
	if after == nil {
		return nil, reject(op, ErrInvalidOperand, "after is nil")
	}
	if after.Kind() == cell.BottomSentinel {
		return nil, reject(op, ErrInvalidOperand, "nothing follows the bottom sentinel")
	}
	target := after.Next()
	if target == nil || target.Kind() != cell.Data {
		return nil, reject(op, ErrInvalidOperand, "no cell to delete after %s", after)
	}

	next := target.Next()
	after.SetNext(next)
	if next != nil && next.IsDoublyLinked() {
		next.SetPrev(after)
	}
	target.Unlink()
	return target, nil
}

//把values依次挂在last之后，返回最后一个单元
func appendValues[T any](last *cell.Cell[T], values iter.Seq[T]) *cell.Cell[T] {
	linkage := last.Linkage()
	for v := range values {
		c := cell.New(v, linkage)
		link(last, c)
		last = c
	}
	return last
}

//在last之后挂上尾哨兵，并在头哨兵中缓存
func closeWithBottom[T any](top, last *cell.Cell[T]) {
	bottom := cell.NewBottomSentinel[T]()
	link(last, bottom)
	top.SetBottom(bottom)
}

//b紧跟在a之后
func link[T any](a, b *cell.Cell[T]) {
	a.SetNext(b)
	if b.IsDoublyLinked() {
		b.SetPrev(a)
	}
}

//把c插入after和它原来的next之间
func insertAfter[T any](after, c *cell.Cell[T]) {
	next := after.Next()
	c.SetNext(next)
	after.SetNext(c)
	if c.IsDoublyLinked() {
		c.SetPrev(after)
		if next != nil {
			next.SetPrev(c)
		}
	}
}

//找到最后一个数据单元，空链表返回头哨兵本身
func lastCell[T any](head *cell.Cell[T]) *cell.Cell[T] {
	if bottom := head.Bottom(); bottom != nil && bottom.Prev() != nil {
		return bottom.Prev()
	}
	last := head
	for next := last.Next(); next != nil && next.Kind() != cell.BottomSentinel; next = last.Next() {
		last = next
	}
	return last
}

func requireTop[T any](op string, head *cell.Cell[T]) error {
	if head == nil {
		return reject(op, ErrRequiresSentinel, "head is nil")
	}
	if head.Kind() != cell.TopSentinel {
		return reject(op, ErrRequiresSentinel, "head is a %s cell", head.Kind())
	}
	return nil
}

//新单元必须是数据单元，并且链接方式和链表一致
func checkNewCell[T any](op string, list, newCell *cell.Cell[T]) error {
	if newCell == nil {
		return reject(op, ErrInvalidOperand, "new cell is nil")
	}
	if newCell.IsSentinel() {
		return reject(op, ErrInvalidOperand, "new cell is a %s", newCell.Kind())
	}
	if newCell.Linkage() != list.Linkage() {
		return reject(op, ErrConfigurationMismatch, "%s cell in a %s list", newCell.Linkage(), list.Linkage())
	}
	return nil
}
