package linkedlists

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

//错误类型，全部是调用方违反前置条件，不会重试也不会部分生效

//新单元的链接方式和链表不一致
var ErrConfigurationMismatch = errors.New("cell linkage does not match the list")

//操作只支持以头哨兵访问的链表
var ErrRequiresSentinel = errors.New("operation requires a top sentinel")

//插入或删除的目标结构上不合法
var ErrInvalidOperand = errors.New("invalid operand")

//不能用空序列创建链表
var ErrEmptyInput = errors.New("no values to build a list from")

//操作不支持这种链表配置
var ErrUnsupportedConfiguration = errors.New("unsupported list configuration")

//链表结构被破坏，Validate返回
var ErrCorruptList = errors.New("corrupt list")

//记录被拒绝的调用并包装错误
func reject(op string, err error, reason string, args ...any) error {
	if reason != "" {
		err = fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(reason, args...), err)
	} else {
		err = fmt.Errorf("%s: %w", op, err)
	}
	logrus.WithFields(logrus.Fields{
		"op":    op,
		"error": err,
	}).Debug("linked list operation rejected")
	return err
}
