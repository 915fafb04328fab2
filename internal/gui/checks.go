package gui

import (
	"fmt"

	"overcheck/pkg/alloccheck"
	"overcheck/pkg/check"
	"overcheck/pkg/diskcheck"
	"overcheck/pkg/memcheck"
	"overcheck/pkg/numcheck"
	"overcheck/pkg/sizecheck"
	"overcheck/pkg/textcheck"
)

// The bound methods below are the frontend's whole API surface: one
// method per check, each returning the rendered Result.

func (a *App) CheckChar(value string) Result {
	return a.render((&textcheck.Char{Value: value}).Run())
}

func (a *App) CheckString(value string, maxLen int) Result {
	if maxLen == 0 {
		maxLen = a.limits.MaxStringLen
	}
	return a.render((&textcheck.String{Value: value, MaxLen: maxLen}).Run())
}

func (a *App) CheckNumber(raw string, isFloat bool) Result {
	kind := numcheck.Integer
	if isFloat {
		kind = numcheck.Float
	}
	return a.render((&numcheck.Check{Raw: raw, Kind: kind}).Run())
}

// CheckCollection checks an array, list, or stack size. Unknown kinds
// are reported as a fault, not an error return; the frontend has one
// rendering path.
func (a *App) CheckCollection(kind string, size, max int) Result {
	k := sizecheck.Kind(kind)
	switch k {
	case sizecheck.KindArray, sizecheck.KindList, sizecheck.KindStack:
	default:
		r := check.Result{Name: kind}
		return a.render(r.Failf("unknown collection kind: %q", kind))
	}
	return a.render((&sizecheck.Check{Size: size, Max: max, Kind: k}).Run())
}

// CheckCollectionJSON counts a JSON array payload instead of taking a size.
func (a *App) CheckCollectionJSON(kind, payload string, max int) Result {
	size, err := sizecheck.CountJSON(payload)
	if err != nil {
		r := check.Result{Name: kind}
		return a.render(r.Fail(fmt.Sprintf("invalid JSON payload: %v", err), err))
	}
	return a.CheckCollection(kind, size, max)
}

func (a *App) CheckMatrix(rows, cols, maxRows, maxCols int) Result {
	widths := make([]int, rows)
	for i := range widths {
		widths[i] = cols
	}
	return a.render((&sizecheck.Matrix{Widths: widths, MaxRows: maxRows, MaxCols: maxCols}).Run())
}

func (a *App) CheckMatrixJSON(payload string, maxRows, maxCols int) Result {
	widths, err := sizecheck.WidthsJSON(payload)
	if err != nil {
		r := check.Result{Name: "matrix"}
		return a.render(r.Fail(fmt.Sprintf("invalid JSON payload: %v", err), err))
	}
	return a.render((&sizecheck.Matrix{Widths: widths, MaxRows: maxRows, MaxCols: maxCols}).Run())
}

func (a *App) CheckMemory() Result {
	return a.render((&memcheck.Check{Threshold: a.limits.MemoryPct, Mem: a.mem}).Run())
}

func (a *App) CheckDisk(path string) Result {
	return a.render((&diskcheck.Check{Path: path, Threshold: a.limits.DiskPct, Disk: a.disk}).Run())
}

func (a *App) CheckDrives() Result {
	return a.render((&diskcheck.Sweep{Threshold: a.limits.DiskPct, Disk: a.disk}).Run())
}

func (a *App) Simulate(elements int) Result {
	return a.render((&alloccheck.Check{Elements: int64(elements)}).Run())
}
