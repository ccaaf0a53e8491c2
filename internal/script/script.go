// Package script compiles and runs Lua scripts, reusing compiled bytecode across states.
package script

import (
	"bytes"
	"fmt"
	"sync"

	libs "github.com/metafates/mangal-lua-libs"
	"github.com/prism-cli/prism/filesystem"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

var bytecodeCache sync.Map

// NewState returns a Lua state with the standard extension libraries preloaded.
func NewState() *lua.LState {
	state := lua.NewState()
	libs.Preload(state)
	return state
}

// Load executes the script at path within L. Compiled prototypes are cached by path.
func Load(L *lua.LState, path string) error {
	if cached, ok := bytecodeCache.Load(path); ok {
		return run(L, cached.(*lua.FunctionProto))
	}

	contents, err := filesystem.API().ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	proto, err := Compile(contents, path)
	if err != nil {
		return err
	}

	bytecodeCache.Store(path, proto)
	return run(L, proto)
}

// Compile parses and compiles Lua source into a reusable prototype.
func Compile(source []byte, name string) (*lua.FunctionProto, error) {
	chunk, err := parse.Parse(bytes.NewReader(source), name)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	proto, err := lua.Compile(chunk, name)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", name, err)
	}

	return proto, nil
}

// Forget drops the cached prototype for path so the next Load recompiles it.
func Forget(path string) {
	bytecodeCache.Delete(path)
}

func run(L *lua.LState, proto *lua.FunctionProto) error {
	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}
