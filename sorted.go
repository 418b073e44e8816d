package linkedlists

import (
	"cmp"

	"linkedlists/cell"
)

// InsertIntoSorted 把单元插入到有序链表的正确位置，O(N)
//跳过所有小于等于新值的单元，相等的值插在已有值之后
func InsertIntoSorted[T cmp.Ordered](head, newCell *cell.Cell[T]) error {
	const op = "InsertIntoSorted"
	if err := requireTop(op, head); err != nil {
		return err
	}
	if err := checkNewCell(op, head, newCell); err != nil {
		return err
	}
	insertSorted(head, newCell)
	return nil
}

// InsertionSort 插入排序，只支持带哨兵的单向链表
//输入链表的单元被逐个摘下插入到新的有序链表，返回新链表的头哨兵，输入的头哨兵最后为空
//输入从大到小有序时每次都插在最前面，O(N)；从小到大有序时每次都要扫描整个输出，O(N^2)
func InsertionSort[T cmp.Ordered](head *cell.Cell[T]) (*cell.Cell[T], error) {
	const op = "InsertionSort"
	if err := requireTop(op, head); err != nil {
		return nil, err
	}
	if head.IsDoublyLinked() {
		return nil, reject(op, ErrUnsupportedConfiguration, "cannot sort a %s list", head.Linkage())
	}

	sorted := cell.NewTopSentinel[T](cell.SinglyLinked)
	for head.Next() != nil {
		c := head.Next()
		head.SetNext(c.Next())
		c.SetNext(nil)
		insertSorted(sorted, c)
	}
	return sorted, nil
}

func insertSorted[T cmp.Ordered](head, newCell *cell.Cell[T]) {
	after := head
	for next := after.Next(); next != nil && next.Kind() == cell.Data && !cell.Less(newCell, next); next = after.Next() {
		after = next
	}
	insertAfter(after, newCell)
}
