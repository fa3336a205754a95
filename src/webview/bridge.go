package webview

import (
	"context"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	"byoa-assistant/src/logutil"
)

var contextType = reflect.TypeOf((*context.Context)(nil)).Elem()

// Table holds the native functions bound by name. It is the Binder windows
// register into; scripts reach it only through Bridge.Invoke.
type Table struct {
	mu  sync.RWMutex
	fns map[string]reflect.Value
}

func NewTable() *Table {
	return &Table{fns: map[string]reflect.Value{}}
}

// Bind exposes fn under name. fn takes an optional leading context.Context
// followed by string parameters and returns at most one value.
func (t *Table) Bind(name string, fn any) error {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		return fmt.Errorf("binding %q: not a function", name)
	}
	ft := v.Type()
	if ft.NumOut() > 1 {
		return fmt.Errorf("binding %q: more than one result", name)
	}
	for i := 0; i < ft.NumIn(); i++ {
		in := ft.In(i)
		if i == 0 && in == contextType {
			continue
		}
		if in.Kind() != reflect.String {
			return fmt.Errorf("binding %q: parameter %d is %s, want string", name, i, in)
		}
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.fns[name] = v
	return nil
}

// Names lists the bound function names.
func (t *Table) Names() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, 0, len(t.fns))
	for n := range t.fns {
		out = append(out, n)
	}
	return out
}

func (t *Table) lookup(name string) (reflect.Value, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	fn, ok := t.fns[name]
	return fn, ok
}

// Bridge is the service through which page scripts reach native functions.
// Every exported method is callable from the page: the typed methods cover the
// known bindings and Invoke(name, args) reaches any of them by name.
// Calls arrive on the runtime's call goroutines, never on the UI thread,
// and resolve a promise on the script side.
type Bridge struct {
	table *Table
	log   *slog.Logger
}

func NewBridge(table *Table, logger *slog.Logger) *Bridge {
	if table == nil {
		table = NewTable()
	}
	return &Bridge{table: table, log: logutil.Component(logger, "bridge")}
}

func (b *Bridge) ServiceName() string { return "bridge" }

// Invoke calls the function bound under name with JSON-decoded args.
func (b *Bridge) Invoke(ctx context.Context, name string, args []any) (any, error) {
	fn, ok := b.table.lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown native function %q", name)
	}

	t := fn.Type()
	in := make([]reflect.Value, 0, t.NumIn())
	argi := 0
	for i := 0; i < t.NumIn(); i++ {
		if i == 0 && t.In(i) == contextType {
			if ctx == nil {
				ctx = context.Background()
			}
			in = append(in, reflect.ValueOf(ctx))
			continue
		}
		s := ""
		if argi < len(args) {
			switch a := args[argi].(type) {
			case string:
				s = a
			case nil:
			default:
				return nil, fmt.Errorf("%s: argument %d must be a string, got %T", name, argi, a)
			}
		}
		argi++
		in = append(in, reflect.ValueOf(s).Convert(t.In(i)))
	}

	out := fn.Call(in)
	if len(out) == 0 {
		return nil, nil
	}
	return out[0].Interface(), nil
}

func call[T any](b *Bridge, ctx context.Context, name string, zero T, args ...any) T {
	out, err := b.Invoke(ctx, name, args)
	if err != nil {
		b.log.Error("bridge call failed", "name", name, "error", err)
		return zero
	}
	v, ok := out.(T)
	if !ok {
		return zero
	}
	return v
}

func (b *Bridge) ClipboardReadText(ctx context.Context) string {
	return call(b, ctx, ClipboardReadText, "")
}

func (b *Bridge) ClipboardWriteText(ctx context.Context, text string) bool {
	return call(b, ctx, ClipboardWriteText, false, text)
}

func (b *Bridge) ClipboardClear(ctx context.Context) bool {
	return call(b, ctx, ClipboardClear, false)
}

// VaultGetData returns "" when the key has no secret.
func (b *Bridge) VaultGetData(ctx context.Context, key string) string {
	return call(b, ctx, VaultGetData, "", key)
}

func (b *Bridge) VaultSetData(ctx context.Context, key, value string) bool {
	return call(b, ctx, VaultSetData, false, key, value)
}

func (b *Bridge) VaultDeleteData(ctx context.Context, key string) bool {
	return call(b, ctx, VaultDeleteData, false, key)
}

func (b *Bridge) VaultHasData(ctx context.Context, key string) bool {
	return call(b, ctx, VaultHasData, false, key)
}

// NetworkFetch returns the response envelope JSON.
func (b *Bridge) NetworkFetch(ctx context.Context, url, options string) string {
	return call(b, ctx, NetworkFetch, "", url, options)
}

func (b *Bridge) AppPasteContent(ctx context.Context, kind, data string) bool {
	return call(b, ctx, AppPasteContent, false, kind, data)
}
