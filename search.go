package linkedlists

import "linkedlists/cell"

// FindCell 返回第一个值相等的数据单元，找不到返回nil
func FindCell[T comparable](head *cell.Cell[T], value T) *cell.Cell[T] {
	for c := range Iterate(head) {
		if c.Value == value {
			return c
		}
	}
	return nil
}

// FindCellBeforeSentinel 返回值相等的单元的前一个单元
//目标是第一个数据单元时返回头哨兵本身，找不到返回nil
func FindCellBeforeSentinel[T comparable](head *cell.Cell[T], value T) (*cell.Cell[T], error) {
	if err := requireTop("FindCellBeforeSentinel", head); err != nil {
		return nil, err
	}
	return findBefore(head, value), nil
}

// FindCellBeforeNoSentinel 不带哨兵的版本
//链表为空、目标就是第一个单元、找不到这三种情况都返回nil，调用方无法区分
func FindCellBeforeNoSentinel[T comparable](head *cell.Cell[T], value T) (*cell.Cell[T], error) {
	if head == nil {
		return nil, nil
	}
	if head.IsSentinel() {
		return nil, reject("FindCellBeforeNoSentinel", ErrInvalidOperand, "head is a %s", head.Kind())
	}
	return findBefore(head, value), nil
}

func findBefore[T comparable](head *cell.Cell[T], value T) *cell.Cell[T] {
	for before := head; before.Next() != nil && before.Next().Kind() == cell.Data; before = before.Next() {
		if before.Next().Value == value {
			return before
		}
	}
	return nil
}
