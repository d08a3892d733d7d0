// Package eventbus is the in-process pub/sub channel that outbox dispatch
// feeds. Subscribers are plain functions; a published argument list matches
// a subscriber when every argument is assignable to the corresponding
// parameter.
package eventbus

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"

	"github.com/talentgrid-io/talentgrid/pkg/serrors"
)

type EventBus interface {
	Subscribe(handler any)
	Publish(args ...any)
	SubscribersCount() int
}

// EventBusWithError extends EventBus with a publish that surfaces handler
// errors to the caller. The outbox relay requires it so a failed dispatch
// can be nacked and retried.
type EventBusWithError interface {
	EventBus
	PublishE(args ...any) error
}

var (
	ErrNoSubscribers        = serrors.NewError("EVENTBUS_NO_SUBSCRIBERS", "no matching subscribers", "")
	ErrInvalidHandlerReturn = serrors.NewError("EVENTBUS_INVALID_HANDLER_RETURN", "invalid handler return signature", "")
)

func NewEventPublisher(log *logrus.Logger) EventBus {
	return &publisherImpl{log: log}
}

type publisherImpl struct {
	log      *logrus.Logger
	handlers []any
}

func (p *publisherImpl) Subscribe(handler any) {
	if reflect.TypeOf(handler).Kind() != reflect.Func {
		panic("handler must be a function")
	}
	p.handlers = append(p.handlers, handler)
}

func (p *publisherImpl) SubscribersCount() int {
	return len(p.handlers)
}

// MatchSignature reports whether args are assignable to the handler's
// parameter list. Interface parameters accept any implementation; a nil
// argument matches any pointer or interface parameter.
func MatchSignature(handler any, args []any) bool {
	t := reflect.TypeOf(handler)
	if t.Kind() != reflect.Func || t.NumIn() != len(args) {
		return false
	}
	for i, arg := range args {
		param := t.In(i)
		if arg == nil {
			if param.Kind() != reflect.Interface && param.Kind() != reflect.Ptr {
				return false
			}
			continue
		}
		at := reflect.TypeOf(arg)
		if param.Kind() == reflect.Interface {
			if !at.Implements(param) {
				return false
			}
			continue
		}
		if !at.AssignableTo(param) {
			return false
		}
	}
	return true
}

func (p *publisherImpl) Publish(args ...any) {
	in := reflectArgs(args)
	handled := false
	for _, handler := range p.handlers {
		if !MatchSignature(handler, args) {
			continue
		}
		if err := invoke(handler, in); err != nil {
			if p.log != nil {
				p.log.WithError(err).Errorf("eventbus: handler failed for args %v", args)
			}
			continue
		}
		handled = true
	}
	if !handled && p.log != nil {
		p.log.Warnf("eventbus: no matching subscribers for args %v", args)
	}
}

func (p *publisherImpl) PublishE(args ...any) error {
	in := reflectArgs(args)
	handled := false
	var errs []error
	for _, handler := range p.handlers {
		if !MatchSignature(handler, args) {
			continue
		}
		handled = true
		if err := invoke(handler, in); err != nil {
			errs = append(errs, err)
		}
	}
	if !handled {
		return ErrNoSubscribers
	}
	return errors.Join(errs...)
}

// invoke calls one handler with panic recovery and interprets an optional
// single error return.
func invoke(handler any, in []reflect.Value) (err error) {
	v := reflect.ValueOf(handler)
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("eventbus: handler %s panicked: %v", v.Type().String(), r)
		}
	}()

	out := v.Call(in)
	switch len(out) {
	case 0:
		return nil
	case 1:
		ret := out[0]
		if ret.Type() != reflect.TypeOf((*error)(nil)).Elem() {
			return fmt.Errorf("%w: handler %s return type is %s", ErrInvalidHandlerReturn, v.Type().String(), ret.Type().String())
		}
		if ret.IsNil() {
			return nil
		}
		return ret.Interface().(error)
	default:
		return fmt.Errorf("%w: handler %s returned %d values", ErrInvalidHandlerReturn, v.Type().String(), len(out))
	}
}

func reflectArgs(args []any) []reflect.Value {
	in := make([]reflect.Value, len(args))
	for i, arg := range args {
		in[i] = reflect.ValueOf(arg)
	}
	return in
}
