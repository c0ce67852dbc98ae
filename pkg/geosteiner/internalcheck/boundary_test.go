package internalcheck

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const (
	modulePath  = "github.com/geosteiner-go/geosteiner"
	backendPath = modulePath + "/pkg/geosteiner/internal/backend"
)

// TestUnsafeConfinedToBackend checks that only the backend package touches
// "C" or "unsafe", so native memory cannot be referenced anywhere else.
func TestUnsafeConfinedToBackend(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports,
	}

	pkgs, err := packages.Load(cfg, modulePath+"/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}
	if packages.PrintErrors(pkgs) > 0 {
		t.Fatalf("packages contain errors")
	}

	var findings []string
	for _, pkg := range pkgs {
		if pkg.PkgPath == backendPath {
			continue
		}
		for path := range pkg.Imports {
			if path == "C" || path == "unsafe" {
				findings = append(findings, fmt.Sprintf("%s imports %q", pkg.PkgPath, path))
			}
		}
	}
	sort.Strings(findings)

	if len(findings) > 0 {
		t.Fatalf("unsafe boundary policy violation:\n%s", strings.Join(findings, "\n"))
	}
}

// TestBackendNotPublic checks that the public API does not hand out raw
// records: no exported declaration in pkg/geosteiner mentions RawRecord.
func TestBackendNotPublic(t *testing.T) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
	}

	pkgs, err := packages.Load(cfg, modulePath+"/pkg/geosteiner")
	if err != nil {
		t.Fatalf("load package: %v", err)
	}

	var findings []string
	for _, pkg := range pkgs {
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			obj := scope.Lookup(name)
			if !obj.Exported() {
				continue
			}
			if strings.Contains(obj.Type().String(), "RawRecord") {
				findings = append(findings, fmt.Sprintf("%s.%s exposes %s", pkg.PkgPath, name, obj.Type()))
			}
		}
	}

	if len(findings) > 0 {
		t.Fatalf("raw record leaked into public API:\n%s", strings.Join(findings, "\n"))
	}
}
