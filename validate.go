package linkedlists

import "linkedlists/cell"

// Validate 检查从head开始的整条链的结构
//链接方式一致、双向链表的prev能指回来、哨兵只出现在两端、头哨兵缓存的尾哨兵正确、没有环
func Validate[T any](head *cell.Cell[T]) error {
	const op = "Validate"
	if head == nil {
		return nil
	}
	if head.Kind() == cell.BottomSentinel {
		return reject(op, ErrCorruptList, "list starts at the bottom sentinel")
	}
	if head.Kind() == cell.Data && head.Prev() != nil {
		return reject(op, ErrCorruptList, "raw head has a previous cell")
	}

	linkage := head.Linkage()
	seen := make(map[*cell.Cell[T]]struct{})
	var bottom *cell.Cell[T]
	i := 0
	for current := head; current != nil; current = current.Next() {
		if _, ok := seen[current]; ok {
			return reject(op, ErrCorruptList, "cell %d: cycle back to an earlier cell", i)
		}
		seen[current] = struct{}{}

		if current.Linkage() != linkage {
			return reject(op, ErrCorruptList, "cell %d: %s cell in a %s list", i, current.Linkage(), linkage)
		}
		switch current.Kind() {
		case cell.TopSentinel:
			if i > 0 {
				return reject(op, ErrCorruptList, "cell %d: top sentinel after the head", i)
			}
		case cell.BottomSentinel:
			if head.Kind() != cell.TopSentinel {
				return reject(op, ErrCorruptList, "cell %d: bottom sentinel without a top sentinel", i)
			}
			if current.Next() != nil {
				return reject(op, ErrCorruptList, "cell %d: bottom sentinel has a next cell", i)
			}
			bottom = current
		}
		if next := current.Next(); next != nil && linkage == cell.DoublyLinked && next.Prev() != current {
			return reject(op, ErrCorruptList, "cell %d: prev does not point back", i+1)
		}
		i++
	}

	if head.Kind() == cell.TopSentinel && head.Bottom() != bottom {
		return reject(op, ErrCorruptList, "top sentinel caches a different bottom sentinel")
	}
	return nil
}
