package linkedlists

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/tychoish/fun/assert/check"

	"linkedlists/cell"
)

func TestRejectedCallsAreLogged(t *testing.T) {
	hook := test.NewGlobal()
	level := logrus.GetLevel()
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetOutput(io.Discard)
	defer func() {
		logrus.SetLevel(level)
		logrus.SetOutput(os.Stderr)
	}()

	t.Run("Rejected", func(t *testing.T) {
		hook.Reset()
		raw := mustMake(t, []int{1}, WithSentinel(false))
		err := AddAtEnd(raw, cell.New(2, cell.SinglyLinked))
		checkErr(t, err, ErrRequiresSentinel)

		entry := hook.LastEntry()
		if entry == nil {
			t.Fatal("no log entry for a rejected call")
		}
		check.Equal(t, logrus.DebugLevel, entry.Level)
		check.True(t, entry.Data["op"] == "AddAtEnd")
		check.True(t, errors.Is(entry.Data["error"].(error), ErrRequiresSentinel))
	})

	t.Run("Accepted", func(t *testing.T) {
		hook.Reset()
		top := mustMake(t, []int{1})
		check.True(t, AddAtBeginning(top, cell.New(0, cell.SinglyLinked)) == nil)
		check.Equal(t, 0, len(hook.AllEntries()))
	})

	t.Run("QuietAboveDebug", func(t *testing.T) {
		hook.Reset()
		logrus.SetLevel(logrus.InfoLevel)
		defer logrus.SetLevel(logrus.DebugLevel)

		_, err := MakeList([]int{})
		checkErr(t, err, ErrEmptyInput)
		check.Equal(t, 0, len(hook.AllEntries()))
	})
}

func TestErrorMessages(t *testing.T) {
	_, err := DeleteCell(cell.NewBottomSentinel[int]())
	check.True(t, strings.HasPrefix(err.Error(), "DeleteCell: "))
	check.True(t, strings.HasSuffix(err.Error(), ErrInvalidOperand.Error()))

	err = AddAtEnd(mustMake(t, []int{1}), cell.New(2, cell.DoublyLinked))
	check.Equal(t, "AddAtEnd: doubly-linked cell in a singly-linked list: cell linkage does not match the list", err.Error())

	_, err = MakeList([]string{})
	check.Equal(t, "MakeList: no values to build a list from", err.Error())
}
