package linkedlists_test

import (
	"fmt"

	"linkedlists"
	"linkedlists/cell"
)

func Example() {
	top, err := linkedlists.MakeList([]int{1, 3, 4}, linkedlists.WithDoublyLinked(true))
	if err != nil {
		panic(err)
	}
	two := cell.New(2, cell.DoublyLinked)
	if err := linkedlists.InsertIntoSorted(top, two); err != nil {
		panic(err)
	}
	for c := range linkedlists.Iterate(top) {
		fmt.Println(c)
	}
	fmt.Println("before 2:", two.Prev())

	// Output:
	// 1
	// 2
	// 3
	// 4
	// before 2: 1
}

func ExampleDeleteCell() {
	top, _ := linkedlists.MakeList([]int{1, 2, 3})
	for {
		fmt.Println(linkedlists.Format(top))
		if _, err := linkedlists.DeleteCell(top); err != nil {
			fmt.Println(err)
			break
		}
	}

	// Output:
	// [1 2 3]
	// [2 3]
	// [3]
	// []
	// DeleteCell: no cell to delete after <top>: invalid operand
}

func ExampleInsertionSort() {
	top, _ := linkedlists.MakeList([]string{"pear", "apple", "fig"})
	sorted, _ := linkedlists.InsertionSort(top)
	fmt.Println(linkedlists.Format(sorted))
	fmt.Println(linkedlists.Format(top))

	// Output:
	// [apple fig pear]
	// []
}

func ExampleFindCellBeforeNoSentinel() {
	head, _ := linkedlists.MakeList([]int{1, 2, 3}, linkedlists.WithSentinel(false))

	before, _ := linkedlists.FindCellBeforeNoSentinel(head, 3)
	fmt.Println(before)

	// the head has no cell before it, just like a value that is missing
	before, _ = linkedlists.FindCellBeforeNoSentinel(head, 1)
	fmt.Println(before == nil)
	before, _ = linkedlists.FindCellBeforeNoSentinel(head, 9)
	fmt.Println(before == nil)

	// Output:
	// 2
	// true
	// true
}

func ExampleCopyList() {
	original, _ := linkedlists.MakeList([]int{1, 2}, linkedlists.WithDoublyLinked(true))
	copied, _ := linkedlists.CopyList(original)
	_ = linkedlists.AddAtBeginning(copied, cell.New(0, cell.DoublyLinked))

	fmt.Println(linkedlists.Format(original), linkedlists.Format(copied))

	// Output:
	// [1 2] [0 1 2]
}
