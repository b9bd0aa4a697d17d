package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

const generatedHeader = "// Code generated by smath gen. DO NOT EDIT.\n\n"

var laneWords = map[int]string{2: "two", 3: "three", 4: "four"}

type generator struct {
	cfg Config
}

// shape is a vector type being emitted.
type shape struct {
	lanes   int
	aligned bool
}

func (s shape) name() string {
	if s.aligned {
		return fmt.Sprintf("Vec%d", s.lanes)
	}
	return fmt.Sprintf("Vec%dP", s.lanes)
}

func (s shape) typ() string { return s.name() + "[T]" }

func (s shape) sibling(m int) shape { return shape{lanes: m, aligned: s.aligned} }

// storage is the array length backing the shape.
func (s shape) storage() int {
	if s.aligned && s.lanes == 3 {
		return 4
	}
	return s.lanes
}

func (s shape) kind() string {
	if s.aligned {
		return "aligned"
	}
	return "packed"
}

// lane returns the expression for lane i of recv.
func (s shape) lane(recv string, i any) string {
	if s.aligned {
		return fmt.Sprintf("%s.lanes[%v]", recv, i)
	}
	return fmt.Sprintf("%s[%v]", recv, i)
}

func (s shape) lanesOf(recv string) string {
	if s.aligned {
		return recv + ".lanes"
	}
	return recv
}

func (s shape) kernels() string { return fmt.Sprintf("backendOf[T]().V%d", s.lanes) }

// wrap builds an aligned value of element type elem from a storage
// expression, clearing the padding lane of three-lane vectors.
func (s shape) wrap(expr, elem string) string {
	if s.lanes == 3 {
		expr = "pad3(" + expr + ")"
	}
	return fmt.Sprintf("%s[%s]{lanes: %s}", s.name(), elem, expr)
}

func (s shape) literal(vals []string) string {
	if s.aligned {
		return fmt.Sprintf("%s{lanes: [%d]T{%s}}", s.typ(), s.storage(), strings.Join(vals, ", "))
	}
	return fmt.Sprintf("%s{%s}", s.typ(), strings.Join(vals, ", "))
}

func (s shape) laneList(recv string, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = s.lane(recv, i)
	}
	return strings.Join(parts, ", ")
}

func indexParams(m int) string {
	parts := make([]string, m)
	for i := range parts {
		parts[i] = fmt.Sprintf("i%d", i)
	}
	return strings.Join(parts, ", ")
}

func (g *generator) shapes() []shape {
	out := make([]shape, len(g.cfg.Shapes))
	for i, s := range g.cfg.Shapes {
		out[i] = shape{lanes: s.Lanes, aligned: s.Aligned}
	}
	return out
}

func (g *generator) upper(i int) string { return strings.ToUpper(g.cfg.Axes[i]) }

func (g *generator) emitVectorFile(buf *bytes.Buffer) {
	buf.WriteString(generatedHeader)
	fmt.Fprintf(buf, "package %s\n\n", g.cfg.Package)
	fmt.Fprintf(buf, "import \"fmt\"\n\n")
	for _, s := range g.shapes() {
		g.emitVector(buf, s)
	}
}

func (g *generator) emitSwizzleFile(buf *bytes.Buffer) {
	buf.WriteString(generatedHeader)
	fmt.Fprintf(buf, "package %s\n\n", g.cfg.Package)
	for _, s := range g.shapes() {
		g.emitSwizzle(buf, s)
	}
}

func (g *generator) emitVector(buf *bytes.Buffer, s shape) {
	n, name, typ := s.lanes, s.name(), s.typ()
	axes := g.cfg.Axes[:n]
	fmt.Fprintf(buf, "// -------- %s --------\n\n", name)

	// Constructors
	fmt.Fprintf(buf, "// New%s returns the %s %s-lane vector (%s).\n", name, s.kind(), laneWords[n], strings.Join(axes, ", "))
	fmt.Fprintf(buf, "func New%s[T Element](%s T) %s {\n", name, strings.Join(axes, ", "), typ)
	fmt.Fprintf(buf, "\treturn %s\n}\n\n", s.literal(axes))

	fmt.Fprintf(buf, "// %sFromArray returns the %s vector holding the lanes of a.\n", name, s.kind())
	fmt.Fprintf(buf, "func %sFromArray[T Element](a [%d]T) %s {\n", name, n, typ)
	if s.aligned {
		elems := make([]string, n)
		for i := range elems {
			elems[i] = fmt.Sprintf("a[%d]", i)
		}
		fmt.Fprintf(buf, "\treturn %s\n", s.literal(elems))
	} else {
		fmt.Fprintf(buf, "\treturn %s(a)\n", typ)
	}
	fmt.Fprintf(buf, "}\n\n")

	fmt.Fprintf(buf, "// %sSplat returns the %s vector with every lane set to x.\n", name, s.kind())
	fmt.Fprintf(buf, "func %sSplat[T Element](x T) %s {\n", name, typ)
	if s.aligned {
		fmt.Fprintf(buf, "\treturn %s\n", s.wrap(s.kernels()+".Splat(x)", "T"))
	} else {
		xs := make([]string, n)
		for i := range xs {
			xs[i] = "x"
		}
		fmt.Fprintf(buf, "\treturn %s\n", s.literal(xs))
	}
	fmt.Fprintf(buf, "}\n\n")

	fmt.Fprintf(buf, "// %sFromFn returns the vector whose lane i is f(i). f is called in lane order.\n", name)
	fmt.Fprintf(buf, "func %sFromFn[T Element](f func(i int) T) %s {\n", name, typ)
	fmt.Fprintf(buf, "\tvar a [%d]T\n\tfor i := range a {\n\t\ta[i] = f(i)\n\t}\n", n)
	fmt.Fprintf(buf, "\treturn %sFromArray(a)\n}\n\n", name)

	converted := make([]string, n)
	for i := range converted {
		converted[i] = "U(" + s.lane("v", i) + ")"
	}
	fmt.Fprintf(buf, "// Convert%s converts every lane of v to U.\n", name)
	fmt.Fprintf(buf, "func Convert%s[U, T Number](v %s) %s[U] {\n", name, typ, name)
	fmt.Fprintf(buf, "\treturn New%s(%s)\n}\n\n", name, strings.Join(converted, ", "))

	// Layout
	fmt.Fprintf(buf, "// Len returns %d.\n", n)
	fmt.Fprintf(buf, "func (%s) Len() int { return %d }\n\n", typ, n)
	fmt.Fprintf(buf, "// IsAligned returns %t.\n", s.aligned)
	fmt.Fprintf(buf, "func (%s) IsAligned() bool { return %t }\n\n", typ, s.aligned)

	fmt.Fprintf(buf, "// ToArray returns the lanes of v.\n")
	switch {
	case s.aligned && n == 3:
		fmt.Fprintf(buf, "func (v %s) ToArray() [3]T { return [3]T(v.lanes[:3]) }\n\n", typ)
	case s.aligned:
		fmt.Fprintf(buf, "func (v %s) ToArray() [%d]T { return v.lanes }\n\n", typ, n)
	default:
		fmt.Fprintf(buf, "func (v %s) ToArray() [%d]T { return [%d]T(v) }\n\n", typ, n, n)
	}

	fmt.Fprintf(buf, "// AsArray returns v viewed as an array. Writes through it are visible in v.\n")
	switch {
	case s.aligned && n == 3:
		fmt.Fprintf(buf, "func (v *%s) AsArray() *[3]T { return (*[3]T)(v.lanes[:3]) }\n\n", typ)
	case s.aligned:
		fmt.Fprintf(buf, "func (v *%s) AsArray() *[%d]T { return &v.lanes }\n\n", typ, n)
	default:
		fmt.Fprintf(buf, "func (v *%s) AsArray() *[%d]T { return (*[%d]T)(v) }\n\n", typ, n, n)
	}

	al, pk := shape{lanes: n, aligned: true}, shape{lanes: n}
	fmt.Fprintf(buf, "// ToAligned returns v in SIMD storage.\n")
	if s.aligned {
		fmt.Fprintf(buf, "func (v %s) ToAligned() %s { return v }\n\n", typ, typ)
	} else {
		fmt.Fprintf(buf, "func (v %s) ToAligned() %s { return %sFromArray([%d]T(v)) }\n\n", typ, al.typ(), al.name(), n)
	}
	fmt.Fprintf(buf, "// ToPacked returns v laid out as [%d]T.\n", n)
	if s.aligned {
		fmt.Fprintf(buf, "func (v %s) ToPacked() %s { return %s(v.ToArray()) }\n\n", typ, pk.typ(), pk.typ())
	} else {
		fmt.Fprintf(buf, "func (v %s) ToPacked() %s { return v }\n\n", typ, typ)
	}

	// Indexing
	fmt.Fprintf(buf, "// Get returns lane i, or false if i is out of range.\n")
	fmt.Fprintf(buf, "func (v %s) Get(i int) (T, bool) {\n", typ)
	fmt.Fprintf(buf, "\tif uint(i) >= %d {\n\t\tvar zero T\n\t\treturn zero, false\n\t}\n", n)
	fmt.Fprintf(buf, "\treturn %s, true\n}\n\n", s.lane("v", "i"))

	fmt.Fprintf(buf, "// Index returns lane i. It panics with an *IndexError if i is out of range.\n")
	fmt.Fprintf(buf, "func (v %s) Index(i int) T {\n", typ)
	fmt.Fprintf(buf, "\tcheckIndex(i, %d)\n\treturn %s\n}\n\n", n, s.lane("v", "i"))

	fmt.Fprintf(buf, "// IndexUnchecked returns lane i. The result is undefined if i is out of range.\n")
	fmt.Fprintf(buf, "func (v %s) IndexUnchecked(i int) T { return *laneAt(&%s, i) }\n\n", typ, s.lane("v", 0))

	fmt.Fprintf(buf, "// GetRef returns a pointer to lane i, or nil if i is out of range.\n")
	fmt.Fprintf(buf, "func (v *%s) GetRef(i int) *T {\n", typ)
	fmt.Fprintf(buf, "\tif uint(i) >= %d {\n\t\treturn nil\n\t}\n", n)
	fmt.Fprintf(buf, "\treturn &%s\n}\n\n", s.lane("v", "i"))

	fmt.Fprintf(buf, "// Set stores x in lane i. It panics with an *IndexError if i is out of range.\n")
	fmt.Fprintf(buf, "func (v *%s) Set(i int, x T) {\n", typ)
	fmt.Fprintf(buf, "\tcheckIndex(i, %d)\n\t%s = x\n}\n\n", n, s.lane("v", "i"))

	fmt.Fprintf(buf, "// SetUnchecked stores x in lane i. The behavior is undefined if i is out of range.\n")
	fmt.Fprintf(buf, "func (v *%s) SetUnchecked(i int, x T) { *laneAt(&%s, i) = x }\n\n", typ, s.lane("v", 0))

	for m := 2; m <= n; m++ {
		sub := shape{lanes: m}
		fmt.Fprintf(buf, "// Vec%dRef returns a packed view of lanes i..i+%d, or nil unless i+%d <= %d.\n", m, m-1, m, n)
		fmt.Fprintf(buf, "func (v *%s) Vec%dRef(i int) *%s {\n", typ, m, sub.typ())
		fmt.Fprintf(buf, "\tif i < 0 || i+%d > %d {\n\t\treturn nil\n\t}\n", m, n)
		fmt.Fprintf(buf, "\treturn (*%s)(%s[i : i+%d])\n}\n\n", sub.typ(), s.lanesOf("v"), m)
	}

	// Equality
	fmt.Fprintf(buf, "// Equal reports whether the lanes of v and w are equal.\n")
	if s.aligned {
		fmt.Fprintf(buf, "func (v %s) Equal(w %s) bool { return %s.Eq(v.lanes, w.lanes) }\n\n", typ, typ, s.kernels())
	} else {
		fmt.Fprintf(buf, "func (v %s) Equal(w %s) bool { return v == w }\n\n", typ, typ)
	}
	fmt.Fprintf(buf, "// NotEqual reports whether any lane of v differs from w.\n")
	if s.aligned {
		fmt.Fprintf(buf, "func (v %s) NotEqual(w %s) bool { return %s.Ne(v.lanes, w.lanes) }\n\n", typ, typ, s.kernels())
	} else {
		fmt.Fprintf(buf, "func (v %s) NotEqual(w %s) bool { return v != w }\n\n", typ, typ)
	}

	mask := name + "[bool]"
	for _, c := range []struct{ op, sym, cmp string }{
		{"Eq", "==", "cmpEq"}, {"Ne", "!=", "cmpNe"}, {"Lt", "<", "cmpLt"},
		{"Gt", ">", "cmpGt"}, {"Le", "<=", "cmpLe"}, {"Ge", ">=", "cmpGe"},
	} {
		fmt.Fprintf(buf, "// %sMask returns the lane-wise v %s w.\n", c.op, c.sym)
		if s.aligned {
			fmt.Fprintf(buf, "func (v %s) %sMask(w %s) %s {\n", typ, c.op, typ, mask)
			fmt.Fprintf(buf, "\treturn %s\n}\n\n", s.wrap(fmt.Sprintf("%s.%sMask(v.lanes, w.lanes)", s.kernels(), c.op), "bool"))
		} else {
			fmt.Fprintf(buf, "func (v %s) %sMask(w %s) (m %s) {\n", typ, c.op, typ, mask)
			fmt.Fprintf(buf, "\tpackedCompare(backendOf[T]().lanes.compare(%s), v[:], w[:], m[:])\n", c.cmp)
			fmt.Fprintf(buf, "\treturn m\n}\n\n")
		}
	}

	fmt.Fprintf(buf, "// IsNaNMask reports which lanes are NaN.\n")
	fmt.Fprintf(buf, "func (v %s) IsNaNMask() %s { return predicate[%s, %s](v, isNaN[T]) }\n\n", typ, mask, typ, mask)
	fmt.Fprintf(buf, "// IsFiniteMask reports which lanes are neither infinite nor NaN.\n")
	fmt.Fprintf(buf, "func (v %s) IsFiniteMask() %s { return predicate[%s, %s](v, isFinite[T]) }\n\n", typ, mask, typ, mask)

	// Map and String
	mapped := make([]string, n)
	for i := range mapped {
		mapped[i] = "f(" + s.lane("v", i) + ")"
	}
	fmt.Fprintf(buf, "// Map returns the vector of f applied to each lane. f is called in lane order.\n")
	fmt.Fprintf(buf, "func (v %s) Map(f func(T) T) %s {\n", typ, typ)
	fmt.Fprintf(buf, "\treturn New%s(%s)\n}\n\n", name, strings.Join(mapped, ", "))

	verbs := strings.TrimSuffix(strings.Repeat("%v, ", n), ", ")
	fmt.Fprintf(buf, "// String formats v as (x, y, ...).\n")
	fmt.Fprintf(buf, "func (v %s) String() string {\n", typ)
	fmt.Fprintf(buf, "\treturn fmt.Sprintf(%q, %s)\n}\n\n", "("+verbs+")", s.laneList("v", n))

	// Shuffles
	for m := 2; m <= 4; m++ {
		out, ps := s.sibling(m), indexParams(m)
		fmt.Fprintf(buf, "// Shuffle%d returns the vector of lanes %s of v. It panics with an\n// *IndexError if an index is out of range.\n", m, ps)
		fmt.Fprintf(buf, "func (v %s) Shuffle%d(%s int) %s {\n", typ, m, ps, out.typ())
		for i := 0; i < m; i++ {
			fmt.Fprintf(buf, "\tcheckIndex(i%d, %d)\n", i, n)
		}
		fmt.Fprintf(buf, "\treturn v.shuffle%d(%s)\n}\n\n", m, ps)
		fmt.Fprintf(buf, "func (v %s) shuffle%d(%s int) %s {\n", typ, m, ps, out.typ())
		if s.aligned {
			fmt.Fprintf(buf, "\treturn %s\n", out.wrap(fmt.Sprintf("%s.Shuffle%d(v.lanes, %s)", s.kernels(), m, ps), "T"))
		} else {
			picks := make([]string, m)
			for i := range picks {
				picks[i] = fmt.Sprintf("v[i%d]", i)
			}
			fmt.Fprintf(buf, "\treturn %s\n", out.literal(picks))
		}
		fmt.Fprintf(buf, "}\n\n")
	}

	for m := 2; m <= n; m++ {
		src, ps := s.sibling(m), indexParams(m)
		fmt.Fprintf(buf, "// WithShuffle%d returns v with lanes %s replaced by the lanes of u. It\n// panics if an index is out of range or repeated.\n", m, ps)
		fmt.Fprintf(buf, "func (v %s) WithShuffle%d(u %s, %s int) %s {\n", typ, m, src.typ(), ps, typ)
		for i := 0; i < m; i++ {
			fmt.Fprintf(buf, "\tcheckIndex(i%d, %d)\n", i, n)
		}
		fmt.Fprintf(buf, "\tcheckDistinct(%s)\n", ps)
		fmt.Fprintf(buf, "\treturn v.withShuffle%d(u, %s)\n}\n\n", m, ps)
		fmt.Fprintf(buf, "func (v %s) withShuffle%d(u %s, %s int) %s {\n", typ, m, src.typ(), ps, typ)
		if s.aligned {
			fmt.Fprintf(buf, "\treturn %s\n", s.wrap(fmt.Sprintf("%s.WithShuffle%d(v.lanes, u.lanes, %s)", s.kernels(), m, ps), "T"))
		} else {
			dst, from := make([]string, m), make([]string, m)
			for i := range dst {
				dst[i] = fmt.Sprintf("v[i%d]", i)
				from[i] = fmt.Sprintf("u[%d]", i)
			}
			fmt.Fprintf(buf, "\t%s = %s\n\treturn v\n", strings.Join(dst, ", "), strings.Join(from, ", "))
		}
		fmt.Fprintf(buf, "}\n\n")
	}

	// Extend and Truncate
	if n < 4 && n < len(g.cfg.Axes) {
		next, extra := s.sibling(n+1), g.cfg.Axes[n]
		fmt.Fprintf(buf, "// Extend returns v with %s appended.\n", extra)
		fmt.Fprintf(buf, "func (v %s) Extend(%s T) %s {\n", typ, extra, next.typ())
		fmt.Fprintf(buf, "\treturn New%s(%s, %s)\n}\n\n", next.name(), s.laneList("v", n), extra)
	}
	if n > 2 {
		prev := s.sibling(n - 1)
		fmt.Fprintf(buf, "// Truncate returns v without its last lane.\n")
		fmt.Fprintf(buf, "func (v %s) Truncate() %s {\n", typ, prev.typ())
		fmt.Fprintf(buf, "\treturn New%s(%s)\n}\n\n", prev.name(), s.laneList("v", n-1))
	}
}

func (g *generator) emitSwizzle(buf *bytes.Buffer, s shape) {
	n, typ := s.lanes, s.typ()
	fmt.Fprintf(buf, "// -------- %s --------\n\n", s.name())

	for i := 0; i < n; i++ {
		fmt.Fprintf(buf, "func (v %s) %s() T { return %s }\n", typ, g.upper(i), s.lane("v", i))
	}
	buf.WriteString("\n")

	// Read swizzles: every index tuple of length 2..4, repetition allowed.
	for m := 2; m <= 4; m++ {
		out := s.sibling(m)
		forEachTuple(n, m, func(idx []int) {
			fmt.Fprintf(buf, "func (v %s) %s() %s { return v.shuffle%d(%s) }\n", typ, g.axisName(idx), out.typ(), m, joinInts(idx))
		})
		buf.WriteString("\n")
	}

	// Writers: every ordered selection of distinct axes.
	for k := 1; k <= n; k++ {
		forEachPermutation(n, k, func(idx []int) {
			name := g.axisName(idx)
			if k == 1 {
				a := g.cfg.Axes[idx[0]]
				fmt.Fprintf(buf, "func (v %s) With%s(%s T) %s {\n\t%s = %s\n\treturn v\n}\n\n", typ, name, a, typ, s.lane("v", idx[0]), a)
				fmt.Fprintf(buf, "func (v *%s) Set%s(%s T) { %s = %s }\n\n", typ, name, a, s.lane("v", idx[0]), a)
				return
			}
			src := s.sibling(k)
			fmt.Fprintf(buf, "func (v %s) With%s(u %s) %s { return v.withShuffle%d(u, %s) }\n", typ, name, src.typ(), typ, k, joinInts(idx))
			fmt.Fprintf(buf, "func (v *%s) Set%s(u %s) { *v = v.withShuffle%d(u, %s) }\n", typ, name, src.typ(), k, joinInts(idx))
		})
		buf.WriteString("\n")
	}

	// Contiguous ascending sub-vector pointers shorter than the vector.
	wrote := false
	for m := 2; m < n; m++ {
		for start := 0; start+m <= n; start++ {
			idx := make([]int, m)
			for i := range idx {
				idx[i] = start + i
			}
			sub := shape{lanes: m}
			fmt.Fprintf(buf, "func (v *%s) %sPtr() *%s { return (*%s)(%s[%d:%d]) }\n",
				typ, g.axisName(idx), sub.typ(), sub.typ(), s.lanesOf("v"), start, start+m)
			wrote = true
		}
	}
	if wrote {
		buf.WriteString("\n")
	}
}

func (g *generator) axisName(idx []int) string {
	var sb strings.Builder
	for _, i := range idx {
		sb.WriteString(g.upper(i))
	}
	return sb.String()
}

func joinInts(idx []int) string {
	parts := make([]string, len(idx))
	for i, x := range idx {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, ", ")
}

// forEachTuple calls f with every m-tuple over [0, n) in lexicographic order.
func forEachTuple(n, m int, f func(idx []int)) {
	idx := make([]int, m)
	for {
		f(idx)
		i := m - 1
		for i >= 0 && idx[i] == n-1 {
			idx[i] = 0
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
	}
}

// forEachPermutation calls f with every ordered selection of k distinct
// values from [0, n), in lexicographic order.
func forEachPermutation(n, k int, f func(idx []int)) {
	idx := make([]int, 0, k)
	used := make([]bool, n)
	var rec func()
	rec = func() {
		if len(idx) == k {
			f(idx)
			return
		}
		for i := 0; i < n; i++ {
			if used[i] {
				continue
			}
			used[i] = true
			idx = append(idx, i)
			rec()
			idx = idx[:len(idx)-1]
			used[i] = false
		}
	}
	rec()
}
