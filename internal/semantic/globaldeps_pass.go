package semantic

import (
	"github.com/cwbudde/semc/internal/ast"
	"github.com/cwbudde/semc/internal/diag"
	"github.com/cwbudde/semc/internal/symtab"
)

// GlobalDependencyPass builds a directed dependency graph whose nodes are
// global VariableDeclaration AST nodes — an edge from A to B means A's
// initializer (or array-size expression) references global B, so B must be
// typed before A — and topologically sorts it with a hand-rolled Kahn's
// algorithm, breaking ties by declaration order for reproducible
// diagnostics (Go's standard library has no topological-sort equivalent).
// A cycle is reported once, at the first not-yet-ordered node in
// declaration order, and leaves ctx.TopoOrder nil so global inference
// skips its work entirely.
type GlobalDependencyPass struct{}

func (p *GlobalDependencyPass) Name() string { return "globaldeps" }

func (p *GlobalDependencyPass) Run(unit *ast.TranslationUnit, ctx *PassContext) error {
	var globals []*ast.VariableDeclaration
	index := map[*ast.VariableDeclaration]int{}
	for _, d := range unit.Decls {
		if v, ok := d.(*ast.VariableDeclaration); ok && v.Global {
			index[v] = len(globals)
			globals = append(globals, v)
		}
	}

	deps := make([][]int, len(globals))
	for i, g := range globals {
		seen := map[int]bool{}
		if arr, ok := g.TypeSpec.(*ast.ArrayType); ok && arr.SizeExpr != nil {
			p.collectEdges(i, arr.SizeExpr, index, deps, seen)
			arr.DepList = arr.SizeExpr.DepList
		}
		p.collectEdges(i, g.Init, index, deps, seen)
	}

	order, cycleAt := kahnSort(len(globals), deps)
	if cycleAt >= 0 {
		ctx.Diags.Reportf(diag.Error, p.Name(), globals[cycleAt].Pos(), "circular name definition: %s", globals[cycleAt].DeclName())
		ctx.TopoOrder = nil
		return nil
	}

	ordered := make([]*ast.VariableDeclaration, len(order))
	for i, idx := range order {
		ordered[i] = globals[idx]
	}
	ctx.TopoOrder = ordered
	return nil
}

// collectEdges records, in root's own DepList and in deps[i], every global
// variable root's expression tree references.
func (p *GlobalDependencyPass) collectEdges(i int, root *ast.ExpressionRoot, index map[*ast.VariableDeclaration]int, deps [][]int, seen map[int]bool) {
	if root == nil {
		return
	}
	for _, name := range collectNames(root.Child) {
		if name.Symbol == nil || name.Symbol.Kind != symtab.VariableSymbolKind {
			continue
		}
		vd, ok := name.Symbol.Decl.(*ast.VariableDeclaration)
		if !ok {
			continue
		}
		j, ok := index[vd]
		if !ok || j == i {
			continue
		}
		root.DepList = append(root.DepList, vd)
		if !seen[j] {
			seen[j] = true
			deps[i] = append(deps[i], j)
		}
	}
}

// kahnSort topologically sorts n nodes given deps[i] = prerequisites of i
// (edges that must come before i in the result). Ties are broken by seeding
// the ready queue, and re-feeding it, in ascending node-index order — i.e.
// declaration order — for reproducible output. Returns (order, -1) on
// success, or (nil, firstUnorderedIndex) if a cycle remains.
func kahnSort(n int, deps [][]int) ([]int, int) {
	inDegree := make([]int, n)
	dependents := make([][]int, n)
	for i, ds := range deps {
		inDegree[i] = len(ds)
		for _, j := range ds {
			dependents[j] = append(dependents[j], i)
		}
	}

	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if inDegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	order := make([]int, 0, n)
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)
		for _, dep := range dependents[node] {
			inDegree[dep]--
			if inDegree[dep] == 0 {
				queue = append(queue, dep)
			}
		}
	}

	if len(order) != n {
		processed := make([]bool, n)
		for _, idx := range order {
			processed[idx] = true
		}
		for i := 0; i < n; i++ {
			if !processed[i] {
				return nil, i
			}
		}
	}
	return order, -1
}
