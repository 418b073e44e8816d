package linkedlists

import "linkedlists/cell"

// Options 创建链表的配置，四种组合之一，创建后不可更改
type Options struct {
	UseSentinel  bool //是否使用头哨兵（双向链表同时使用尾哨兵）
	DoublyLinked bool //是否是双向链表
}

// NewOptions 返回默认配置：带哨兵的单向链表
func NewOptions() Options {
	return Options{
		UseSentinel:  true,
		DoublyLinked: false,
	}
}

// Linkage 配置对应的单元链接方式
func (o Options) Linkage() cell.Linkage {
	if o.DoublyLinked {
		return cell.DoublyLinked
	}
	return cell.SinglyLinked
}

//配置选项
type Option func(*Options)

// WithSentinel 设置是否使用哨兵
func WithSentinel(use bool) Option {
	return func(o *Options) {
		o.UseSentinel = use
	}
}

// WithDoublyLinked 设置是否是双向链表
func WithDoublyLinked(doubly bool) Option {
	return func(o *Options) {
		o.DoublyLinked = doubly
	}
}

// WithOptions 整体替换配置
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}

func buildOptions(opts []Option) Options {
	o := NewOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
