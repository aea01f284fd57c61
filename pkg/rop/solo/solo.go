package solo

import (
	"github.com/ib-77/railflow/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Fail[T any](err error) rop.Result[T] {
	return rop.Fail[T](err)
}

// Map transforms the successful value; failures pass through.
func Map[In any, Out any](input rop.Result[In], onSuccess func(r In) Out) rop.Result[Out] {
	if input.IsSuccess() {
		return Try(input, func(r In) (Out, error) {
			return onSuccess(r), nil
		})
	}
	return rop.FailFrom[In, Out](input)
}

// Try calls onTryExecute with the successful value. A returned error or a
// panic becomes the failure of the new result.
func Try[In any, Out any](input rop.Result[In], onTryExecute func(r In) (Out, error)) (res rop.Result[Out]) {
	if !input.IsSuccess() {
		return rop.FailFrom[In, Out](input)
	}

	defer catch(&res)

	out, err := onTryExecute(input.Result())
	if err != nil {
		return rop.Fail[Out](err)
	}
	return rop.Success(out)
}

// Rescue calls onError with the failure of input. Successful input is
// returned unchanged and onError is not called.
func Rescue[T any](input rop.Result[T], onError func(err error) (T, error)) (res rop.Result[T]) {
	if input.IsSuccess() {
		return input
	}

	defer catch(&res)

	out, err := onError(input.Err())
	if err != nil {
		return rop.Fail[T](err)
	}
	return rop.Success(out)
}

// Escalate fuses two recovery functions. The first one's success is final and
// next is never called; its failure is handed to next.
func Escalate[T any](first, next func(err error) rop.Result[T]) func(err error) rop.Result[T] {
	return func(err error) rop.Result[T] {
		res := first(err)
		if res.IsSuccess() {
			return res
		}
		return next(res.Err())
	}
}

func Finally[In, Out any](input rop.Result[In],
	onSuccess func(r In) Out,
	onError func(err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Result())
	}
	return onError(input.Err())
}

func catch[T any](res *rop.Result[T]) {
	if r := recover(); r != nil {
		*res = rop.Fail[T](&rop.PanicError{Value: r})
	}
}
