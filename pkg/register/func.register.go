package register

import "sync"

type funcRegister struct {
	handlers map[any][]any
	locker   sync.Mutex
}

var fr *funcRegister

func init() {
	fr = &funcRegister{
		handlers: make(map[any][]any),
	}
}

func RegisterFunc[T any](key any, handler func(T)) {
	fr.locker.Lock()
	fr.handlers[key] = append(fr.handlers[key], handler)
	fr.locker.Unlock()
}

func ResolveFuncHandlers[T any](key any) []func(T) {
	fr.locker.Lock()
	defer fr.locker.Unlock()

	var res []func(T)
	for _, h := range fr.handlers[key] {
		if f, ok := h.(func(T)); ok {
			res = append(res, f)
		}
	}
	return res
}
