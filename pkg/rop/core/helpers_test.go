package core

import (
	"errors"
	"strconv"

	"github.com/ib-77/railflow/pkg/rop"
)

func addInt(n int) ForwardFunc {
	return func(v any) (any, error) { return v.(int) + n, nil }
}

func mulInt(n int) ForwardFunc {
	return func(v any) (any, error) { return v.(int) * n, nil }
}

func itoa(v any) (any, error) {
	return strconv.Itoa(v.(int)), nil
}

func raise(msg string) ForwardFunc {
	return func(any) (any, error) { return nil, errors.New(msg) }
}

func recoverWith(v any) RecoverFunc {
	return func(error) rop.Result[any] { return rop.Success(v) }
}

func recoverMessage(err error) rop.Result[any] {
	return rop.Success[any](err.Error())
}

func reraise(msg string) RecoverFunc {
	return func(error) rop.Result[any] { return rop.Fail[any](errors.New(msg)) }
}

func kinds(n *Node) []Kind {
	var out []Kind
	for _, s := range n.Describe() {
		out = append(out, s.Kind)
	}
	return out
}
