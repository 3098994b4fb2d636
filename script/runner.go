package script

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/laserpy/unicon/filesystem"
	"github.com/laserpy/unicon/key"
	"github.com/laserpy/unicon/log"
	"github.com/laserpy/unicon/util"
	libs "github.com/metafates/mangal-lua-libs"
	"github.com/spf13/viper"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

// bytecodeCache holds compiled prototypes keyed by script path.
var bytecodeCache sync.Map

// Options configures a Lua state created by NewState.
type Options struct {
	// PreloadLibs makes the extended library set (strings, json, regexp, ...) available to require.
	PreloadLibs bool
	// Stdout receives the output of the print function. Defaults to os.Stdout.
	Stdout io.Writer
}

// DefaultOptions derives Options from the active configuration.
func DefaultOptions() Options {
	return Options{
		PreloadLibs: viper.GetBool(key.ScriptPreloadLibs),
		Stdout:      os.Stdout,
	}
}

// NewState returns a Lua state with the constants bound. The caller must Close it.
func NewState(opts Options) *lua.LState {
	L := lua.NewState()
	if opts.PreloadLibs {
		libs.Preload(L)
	}

	if opts.Stdout != nil {
		out := opts.Stdout
		L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
			parts := make([]string, 0, L.GetTop())
			for i := 1; i <= L.GetTop(); i++ {
				parts = append(parts, L.ToStringMeta(L.Get(i)).String())
			}
			_, _ = fmt.Fprintln(out, strings.Join(parts, "\t"))
			return 0
		}))
	}

	Bind(L)
	return L
}

// compile parses and compiles the script at path, consulting the bytecode cache first.
func compile(path string) (*lua.FunctionProto, error) {
	if cached, ok := bytecodeCache.Load(path); ok {
		return cached.(*lua.FunctionProto), nil
	}

	file, err := filesystem.API().Open(path)
	if err != nil {
		return nil, err
	}
	defer util.Ignore(file.Close)

	chunk, err := parse.Parse(file, path)
	if err != nil {
		return nil, err
	}

	proto, err := lua.Compile(chunk, path)
	if err != nil {
		return nil, err
	}

	bytecodeCache.Store(path, proto)
	return proto, nil
}

// Forget drops the cached bytecode of path so the next Run recompiles it.
func Forget(path string) {
	bytecodeCache.Delete(path)
}

// Run executes the Lua script at path with args exposed as the global arg table.
func Run(ctx context.Context, path string, args []string, opts Options) error {
	name := util.FileStem(path)
	logger := log.With(log.Fields{"script": name, "path": path})

	proto, err := compile(path)
	if err != nil {
		return fmt.Errorf("load script %s: %w", name, err)
	}

	L := NewState(opts)
	defer L.Close()
	L.SetContext(ctx)

	argTable := L.NewTable()
	argTable.RawSetInt(0, lua.LString(path))
	for _, a := range args {
		argTable.Append(lua.LString(a))
	}
	L.SetGlobal("arg", argTable)

	logger.Debug("running script")
	L.Push(L.NewFunctionFromProto(proto))
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		logger.WithError(err).Error("script failed")
		return fmt.Errorf("run script %s: %w", name, err)
	}

	return nil
}

// Eval executes a Lua chunk and returns its results converted to strings with tostring semantics.
func Eval(ctx context.Context, source string, opts Options) ([]string, error) {
	L := NewState(opts)
	defer L.Close()
	L.SetContext(ctx)

	fn, err := L.LoadString(source)
	if err != nil {
		return nil, fmt.Errorf("compile chunk: %w", err)
	}

	top := L.GetTop()
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		return nil, fmt.Errorf("eval chunk: %w", err)
	}

	results := make([]string, 0, L.GetTop()-top)
	for i := top + 1; i <= L.GetTop(); i++ {
		results = append(results, L.ToStringMeta(L.Get(i)).String())
	}
	return results, nil
}
