package placeholder

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"sync"

	"github.com/prism-cli/prism/constant"
	"github.com/prism-cli/prism/filesystem"
	"github.com/prism-cli/prism/internal/script"
	"github.com/prism-cli/prism/log"
	"github.com/prism-cli/prism/stringify"
	"github.com/prism-cli/prism/util"
	"github.com/samber/mo"
	lua "github.com/yuin/gopher-lua"
)

// luaPlaceholder evaluates the Resolve function of a loaded script.
// An LState is not safe for concurrent use, so every call holds mu.
type luaPlaceholder struct {
	mu    sync.Mutex
	name  string
	state *lua.LState
}

// LoadScript loads a single Lua placeholder script. The identifier is the file stem.
func LoadScript(path string) (*Placeholder, error) {
	state := script.NewState()
	if err := script.Load(state, path); err != nil {
		state.Close()
		return nil, err
	}

	name := util.FileStem(path)
	if state.GetGlobal(constant.ResolveFn).Type() != lua.LTFunction {
		state.Close()
		return nil, fmt.Errorf("function %s is required but not defined in %s", constant.ResolveFn, name)
	}

	lp := &luaPlaceholder{name: name, state: state}

	p := &Placeholder{
		Identifier: name,
		Value:      lp.value,
		release:    lp.close,
	}

	if desc, ok := state.GetGlobal(constant.DescriptionGlobal).(lua.LString); ok {
		p.Description = string(desc)
	}

	if requires, ok := state.GetGlobal(constant.RequiresContextGlobal).(lua.LBool); ok {
		p.RequiresContext = bool(requires)
	}

	return p, nil
}

// LoadScripts loads every Lua script in dir. Scripts that fail to load are skipped
// and reported in the returned error.
func LoadScripts(dir string) ([]*Placeholder, error) {
	entries, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read placeholders directory: %w", err)
	}

	var (
		placeholders []*Placeholder
		errs         []error
	)

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), constant.PlaceholderExtension) {
			continue
		}

		p, err := LoadScript(filepath.Join(dir, entry.Name()))
		if err != nil {
			errs = append(errs, err)
			continue
		}

		placeholders = append(placeholders, p)
	}

	return placeholders, errors.Join(errs...)
}

func (l *luaPlaceholder) value(ctx mo.Option[Entity], _ string) stringify.Value {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state == nil {
		return stringify.Text("")
	}

	arg := lua.LValue(lua.LNil)
	if entity, ok := ctx.Get(); ok {
		arg = entityToTable(l.state, entity)
	}

	err := l.state.CallByParam(lua.P{
		Fn:      l.state.GetGlobal(constant.ResolveFn),
		NRet:    1,
		Protect: true,
	}, arg)
	if err != nil {
		log.Warnf("placeholder %s: %v", l.name, err)
		return stringify.Text("")
	}

	ret := l.state.Get(-1)
	l.state.Pop(1)

	return fromLua(ret)
}

func (l *luaPlaceholder) close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state != nil {
		l.state.Close()
		l.state = nil
	}
}

func entityToTable(L *lua.LState, entity Entity) *lua.LTable {
	attributes := L.NewTable()
	for k, v := range entity.Attributes {
		attributes.RawSetString(k, toLua(v))
	}

	table := L.NewTable()
	table.RawSetString("name", lua.LString(entity.Name))
	table.RawSetString("attributes", attributes)
	return table
}

func toLua(v any) lua.LValue {
	if b, ok := v.(bool); ok {
		return lua.LBool(b)
	}

	switch v := stringify.Of(v).(type) {
	case stringify.Int:
		return lua.LNumber(v)
	case stringify.Float:
		return lua.LNumber(v)
	default:
		return lua.LString(stringify.String(v))
	}
}

// fromLua classifies a returned Lua value; integral numbers become integers and
// array tables become lists.
func fromLua(v lua.LValue) stringify.Value {
	switch v := v.(type) {
	case lua.LNumber:
		f := float64(v)
		if f == math.Trunc(f) && math.Abs(f) < math.MaxInt64 {
			return stringify.Int(int64(f))
		}
		return stringify.Float(f)
	case lua.LString:
		return stringify.Text(v)
	case *lua.LTable:
		list := make(stringify.List, 0, v.Len())
		for i := 1; i <= v.Len(); i++ {
			list = append(list, fromLua(v.RawGetInt(i)))
		}
		return list
	case *lua.LNilType:
		return stringify.Text("")
	default:
		return stringify.Other(v.String())
	}
}
