// Package script embeds a Lua runtime and exposes the universal physical constants to it.
package script

import (
	"github.com/laserpy/unicon/constant"
	"github.com/laserpy/unicon/universal"
	lua "github.com/yuin/gopher-lua"
)

// typeName is the metatable name registered for constant userdata.
const typeName = "PhysicalConstant"

var methods = map[string]lua.LGFunction{
	"value":  luaValue,
	"name":   luaName,
	"unit":   luaUnit,
	"symbol": luaSymbol,
}

// Bind registers the constant metatable and the global constants table in L.
//
//	PhysicalConstant.SpeedOfLight:value()      --> 299792458
//	tostring(PhysicalConstant.PlanckConstant)  --> <PhysicalConstant.PlanckConstant = 6.62607015e-34>
//	PhysicalConstant.lookup("k_B") == PhysicalConstant.BoltzmannConstant  --> true
//	PhysicalConstant.SpeedOfLight < PhysicalConstant.PlanckConstant        --> error
func Bind(L *lua.LState) {
	mt := L.NewTypeMetatable(typeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), methods))
	L.SetField(mt, "__tostring", L.NewFunction(luaToString))
	L.SetField(mt, "__eq", L.NewFunction(luaEq))
	L.SetField(mt, "__lt", L.NewFunction(luaNotComparable))
	L.SetField(mt, "__le", L.NewFunction(luaNotComparable))

	global := L.NewTable()
	for _, c := range universal.All() {
		global.RawSetString(c.Name(), Push(L, c))
	}
	global.RawSetString("all", L.NewFunction(luaAll))
	global.RawSetString("lookup", L.NewFunction(luaLookup))

	L.SetGlobal(constant.PhysicalConstantGlobal, global)
}

// Push wraps c in a userdata carrying the constant metatable. The userdata is not pushed onto the stack.
func Push(L *lua.LState, c universal.Constant) *lua.LUserData {
	ud := L.NewUserData()
	ud.Value = c
	L.SetMetatable(ud, L.GetTypeMetatable(typeName))
	return ud
}

// Check returns the constant at stack position n, raising an argument error otherwise.
func Check(L *lua.LState, n int) universal.Constant {
	ud := L.CheckUserData(n)
	if c, ok := ud.Value.(universal.Constant); ok {
		return c
	}
	L.ArgError(n, "PhysicalConstant expected")
	return 0
}

func luaValue(L *lua.LState) int {
	L.Push(lua.LNumber(Check(L, 1).Value()))
	return 1
}

func luaName(L *lua.LState) int {
	L.Push(lua.LString(Check(L, 1).Name()))
	return 1
}

func luaUnit(L *lua.LState) int {
	L.Push(lua.LString(Check(L, 1).Unit()))
	return 1
}

func luaSymbol(L *lua.LState) int {
	L.Push(lua.LString(Check(L, 1).Symbol()))
	return 1
}

func luaToString(L *lua.LState) int {
	L.Push(lua.LString(Check(L, 1).Display()))
	return 1
}

func luaEq(L *lua.LState) int {
	L.Push(lua.LBool(Check(L, 1).Equal(Check(L, 2))))
	return 1
}

func luaNotComparable(L *lua.LState) int {
	a, b := Check(L, 1), Check(L, 2)
	L.RaiseError("%s and %s: %s", a.Name(), b.Name(), universal.ErrNotComparable)
	return 0
}

func luaAll(L *lua.LState) int {
	list := L.NewTable()
	for _, c := range universal.All() {
		list.Append(Push(L, c))
	}
	L.Push(list)
	return 1
}

func luaLookup(L *lua.LState) int {
	c, err := universal.Parse(L.CheckString(1))
	if err != nil {
		L.RaiseError("%s", err.Error())
		return 0
	}
	L.Push(Push(L, c))
	return 1
}
