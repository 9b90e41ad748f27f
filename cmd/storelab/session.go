package main

import (
	"fmt"
	"strconv"
	"strings"

	wasmvm "github.com/wippyai/wasm-vm"
	"github.com/wippyai/wasm-vm/engine"
	"github.com/wippyai/wasm-vm/store"
)

// session holds one live store plus the handles created through it, so
// commands can refer to resources by their creation order.
type session struct {
	store    *store.Store
	pool     *engine.ConstPool
	tables   []store.Table
	memories []store.Memory
	globals  []store.Global
	funcs    []store.Func
}

func newSession() *session {
	return &session{
		store: store.New(nil),
		pool:  engine.NewConstPool(),
	}
}

// exec runs one command line and returns its output.
func (s *session) exec(line string) (string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	switch fields[0] {
	case "table":
		return s.execTable(fields[1:])
	case "memory":
		return s.execMemory(fields[1:])
	case "global":
		return s.execGlobal(fields[1:])
	case "func":
		return s.execFunc(fields[1:])
	case "const":
		return s.execConst(fields[1:])
	case "state":
		return s.state(), nil
	case "help":
		return usageText, nil
	}
	return "", fmt.Errorf("unknown command %q (try help)", fields[0])
}

const usageText = `commands:
  table new <initial> [max]          create a table
  table grow <t> <n>                 append n null slots
  table get <t> <offset>             read a slot
  table set <t> <offset> <f|null>    write a slot
  memory new <pages> [max]           create a linear memory
  memory grow <m> <pages>            append zeroed pages
  memory write <m> <offset> <text>   write bytes
  memory read <m> <offset> <len>     read bytes
  global new <type> <value> [mut]    create a global (i32|i64|f32|f64)
  global get <g>                     read a global
  global set <g> <value>             write a global
  func new                           create a no-op host function
  const <value>                      allocate a pool constant
  state                              dump the store`

func (s *session) execTable(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("table: missing subcommand")
	}
	switch args[0] {
	case "new":
		limits, err := parseLimits(args[1:])
		if err != nil {
			return "", err
		}
		tab := store.NewTable(s.store, limits)
		s.tables = append(s.tables, tab)
		return fmt.Sprintf("table[%d] created %s", len(s.tables)-1, limits), nil

	case "grow":
		tab, rest, err := s.pickTable(args[1:])
		if err != nil {
			return "", err
		}
		n, err := parseU32(rest, 0, "amount")
		if err != nil {
			return "", err
		}
		if err := tab.Grow(s.store, n); err != nil {
			return "", err
		}
		return fmt.Sprintf("len = %d", tab.Len(s.store)), nil

	case "get":
		tab, rest, err := s.pickTable(args[1:])
		if err != nil {
			return "", err
		}
		off, err := parseU32(rest, 0, "offset")
		if err != nil {
			return "", err
		}
		ref, err := tab.Get(s.store, off)
		if err != nil {
			return "", err
		}
		if ref.IsNull() {
			return "null", nil
		}
		fn, _ := ref.Func()
		return fmt.Sprintf("func %s", fn.Type(s.store)), nil

	case "set":
		tab, rest, err := s.pickTable(args[1:])
		if err != nil {
			return "", err
		}
		if len(rest) < 2 {
			return "", fmt.Errorf("table set: need offset and value")
		}
		off, err := parseU32(rest, 0, "offset")
		if err != nil {
			return "", err
		}
		ref := store.FuncRef{}
		if rest[1] != "null" {
			fidx, err := parseU32(rest, 1, "func index")
			if err != nil {
				return "", err
			}
			if int(fidx) >= len(s.funcs) {
				return "", fmt.Errorf("no func[%d] in this session", fidx)
			}
			ref = store.NewFuncRef(s.funcs[fidx])
		}
		if err := tab.Set(s.store, off, ref); err != nil {
			return "", err
		}
		return "ok", nil
	}
	return "", fmt.Errorf("table: unknown subcommand %q", args[0])
}

func (s *session) execMemory(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("memory: missing subcommand")
	}
	switch args[0] {
	case "new":
		limits, err := parseLimits(args[1:])
		if err != nil {
			return "", err
		}
		if err := wasmvm.ValidateMemoryLimits(limits); err != nil {
			return "", err
		}
		mem := store.NewMemory(s.store, limits)
		s.memories = append(s.memories, mem)
		return fmt.Sprintf("memory[%d] created %s", len(s.memories)-1, limits), nil

	case "grow":
		mem, rest, err := s.pickMemory(args[1:])
		if err != nil {
			return "", err
		}
		n, err := parseU32(rest, 0, "pages")
		if err != nil {
			return "", err
		}
		if err := mem.Grow(s.store, n); err != nil {
			return "", err
		}
		return fmt.Sprintf("size = %d pages", mem.Size(s.store)), nil

	case "write":
		mem, rest, err := s.pickMemory(args[1:])
		if err != nil {
			return "", err
		}
		if len(rest) < 2 {
			return "", fmt.Errorf("memory write: need offset and text")
		}
		off, err := parseU32(rest, 0, "offset")
		if err != nil {
			return "", err
		}
		data := []byte(strings.Join(rest[1:], " "))
		if err := mem.Write(s.store, off, data); err != nil {
			return "", err
		}
		return fmt.Sprintf("wrote %d bytes", len(data)), nil

	case "read":
		mem, rest, err := s.pickMemory(args[1:])
		if err != nil {
			return "", err
		}
		off, err := parseU32(rest, 0, "offset")
		if err != nil {
			return "", err
		}
		n, err := parseU32(rest, 1, "length")
		if err != nil {
			return "", err
		}
		buf := make([]byte, n)
		if err := mem.Read(s.store, off, buf); err != nil {
			return "", err
		}
		return fmt.Sprintf("%q", buf), nil
	}
	return "", fmt.Errorf("memory: unknown subcommand %q", args[0])
}

func (s *session) execGlobal(args []string) (string, error) {
	if len(args) == 0 {
		return "", fmt.Errorf("global: missing subcommand")
	}
	switch args[0] {
	case "new":
		if len(args) < 3 {
			return "", fmt.Errorf("global new: need type and value")
		}
		value, err := parseValue(args[1], args[2])
		if err != nil {
			return "", err
		}
		mutable := len(args) > 3 && args[3] == "mut"
		g := store.NewGlobal(s.store, value, mutable)
		s.globals = append(s.globals, g)
		return fmt.Sprintf("global[%d] created %v", len(s.globals)-1, value), nil

	case "get":
		g, _, err := s.pickGlobal(args[1:])
		if err != nil {
			return "", err
		}
		return g.Get(s.store).String(), nil

	case "set":
		g, rest, err := s.pickGlobal(args[1:])
		if err != nil {
			return "", err
		}
		if len(rest) < 1 {
			return "", fmt.Errorf("global set: need a value")
		}
		value, err := parseValue(g.Type(s.store).ValType.String(), rest[0])
		if err != nil {
			return "", err
		}
		if err := g.Set(s.store, value); err != nil {
			return "", err
		}
		return "ok", nil
	}
	return "", fmt.Errorf("global: unknown subcommand %q", args[0])
}

func (s *session) execFunc(args []string) (string, error) {
	if len(args) == 0 || args[0] != "new" {
		return "", fmt.Errorf("func: only 'func new' is supported")
	}
	fn := store.NewFunc(s.store, wasmvm.FuncType{}, func(ctx store.ContextMut, args []wasmvm.Value) ([]wasmvm.Value, error) {
		return nil, nil
	})
	s.funcs = append(s.funcs, fn)
	return fmt.Sprintf("func[%d] created", len(s.funcs)-1), nil
}

func (s *session) execConst(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("const: need exactly one value")
	}
	var ref engine.ConstRef
	if i, err := strconv.ParseInt(args[0], 10, 64); err == nil {
		ref = s.pool.AllocConst(wasmvm.UntypedFromI64(i))
	} else if f, err := strconv.ParseFloat(args[0], 64); err == nil {
		ref = s.pool.AllocConst(wasmvm.UntypedFromF64(f))
	} else {
		return "", fmt.Errorf("const: cannot parse %q", args[0])
	}
	return fmt.Sprintf("const ref %d (pool size %d)", ref.U32(), s.pool.Len()), nil
}

// state renders a dump of everything the session created.
func (s *session) state() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tables: %d\n", len(s.tables))
	for i, tab := range s.tables {
		fmt.Fprintf(&b, "  table[%d] len=%d limits=%s\n", i, tab.Len(s.store), tab.Limits(s.store))
	}
	fmt.Fprintf(&b, "memories: %d\n", len(s.memories))
	for i, mem := range s.memories {
		fmt.Fprintf(&b, "  memory[%d] pages=%d limits=%s\n", i, mem.Size(s.store), mem.Limits(s.store))
	}
	fmt.Fprintf(&b, "globals: %d\n", len(s.globals))
	for i, g := range s.globals {
		ty := g.Type(s.store)
		mut := ""
		if ty.Mutable {
			mut = " mut"
		}
		fmt.Fprintf(&b, "  global[%d]%s %v\n", i, mut, g.Get(s.store))
	}
	fmt.Fprintf(&b, "funcs: %d\n", len(s.funcs))
	fmt.Fprintf(&b, "consts: %d", s.pool.Len())
	return b.String()
}

func (s *session) pickTable(args []string) (store.Table, []string, error) {
	idx, err := parseU32(args, 0, "table index")
	if err != nil {
		return store.Table{}, nil, err
	}
	if int(idx) >= len(s.tables) {
		return store.Table{}, nil, fmt.Errorf("no table[%d] in this session", idx)
	}
	return s.tables[idx], args[1:], nil
}

func (s *session) pickMemory(args []string) (store.Memory, []string, error) {
	idx, err := parseU32(args, 0, "memory index")
	if err != nil {
		return store.Memory{}, nil, err
	}
	if int(idx) >= len(s.memories) {
		return store.Memory{}, nil, fmt.Errorf("no memory[%d] in this session", idx)
	}
	return s.memories[idx], args[1:], nil
}

func (s *session) pickGlobal(args []string) (store.Global, []string, error) {
	idx, err := parseU32(args, 0, "global index")
	if err != nil {
		return store.Global{}, nil, err
	}
	if int(idx) >= len(s.globals) {
		return store.Global{}, nil, fmt.Errorf("no global[%d] in this session", idx)
	}
	return s.globals[idx], args[1:], nil
}

func parseU32(args []string, pos int, what string) (uint32, error) {
	if pos >= len(args) {
		return 0, fmt.Errorf("missing %s", what)
	}
	v, err := strconv.ParseUint(args[pos], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q", what, args[pos])
	}
	return uint32(v), nil
}

func parseLimits(args []string) (wasmvm.Limits, error) {
	initial, err := parseU32(args, 0, "initial size")
	if err != nil {
		return wasmvm.Limits{}, err
	}
	limits := wasmvm.Limits{Min: uint64(initial)}
	if len(args) > 1 {
		max, err := parseU32(args, 1, "maximum size")
		if err != nil {
			return wasmvm.Limits{}, err
		}
		limits.Max = wasmvm.Max(uint64(max))
	}
	if err := wasmvm.ValidateLimits(limits); err != nil {
		return wasmvm.Limits{}, err
	}
	return limits, nil
}

func parseValue(ty, text string) (wasmvm.Value, error) {
	switch ty {
	case "i32":
		v, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return wasmvm.Value{}, fmt.Errorf("bad i32 %q", text)
		}
		return wasmvm.I32(int32(v)), nil
	case "i64":
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return wasmvm.Value{}, fmt.Errorf("bad i64 %q", text)
		}
		return wasmvm.I64(v), nil
	case "f32":
		v, err := strconv.ParseFloat(text, 32)
		if err != nil {
			return wasmvm.Value{}, fmt.Errorf("bad f32 %q", text)
		}
		return wasmvm.F32(float32(v)), nil
	case "f64":
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return wasmvm.Value{}, fmt.Errorf("bad f64 %q", text)
		}
		return wasmvm.F64(v), nil
	}
	return wasmvm.Value{}, fmt.Errorf("unknown value type %q", ty)
}
