package linkedlists

import (
	"linkedlists/cell"
)

// CopyList 复制带哨兵的链表，返回新链表的头哨兵
//所有数据单元和哨兵都是新分配的，原链表不受影响
func CopyList[T any](head *cell.Cell[T]) (*cell.Cell[T], error) {
	if err := requireTop("CopyList", head); err != nil {
		return nil, err
	}

	top := cell.NewTopSentinel[T](head.Linkage())
	last := appendValues(top, func(yield func(T) bool) {
		for c := range Iterate(head) {
			if !yield(c.Value) {
				return
			}
		}
	})
	if top.IsDoublyLinked() {
		closeWithBottom(top, last)
	}
	return top, nil
}
