// Package fixture defines the diagnostic fixture programs installed by the
// packaging pipeline under test. Each [Variant] prints one line per check
// in the form "<namespace>.<check> = <0|1>"; a harness judges the values.
package fixture

import (
	"io"

	"github.com/slashdevops/distprobe"
	"github.com/slashdevops/distprobe/internal/deps/hello"
	"github.com/slashdevops/distprobe/internal/deps/one"
	"github.com/slashdevops/distprobe/internal/deps/two"
	"github.com/slashdevops/distprobe/internal/deps/zero"
	"github.com/slashdevops/distprobe/internal/gen"
	"github.com/slashdevops/distprobe/internal/private"
)

// Namespace prefixes every key printed by the dist fixtures.
const Namespace = "e2e.dist"

// Check names, relative to the namespace.
const (
	CheckExeInstallToBin        = "exe-install-to-bin"
	CheckPackagesGeneratedSrc   = "packages-generated-src"
	CheckIncludesPrivate        = "includes.includes-private"
	CheckCopiesPrivate          = "includes.copies-private"
	CheckImplicitCMakeName      = "findPackage-implicit-cmake-name"
	CheckExplicitCMakeName      = "findPackage-explicit-cmake-name"
	CheckExplicitCMakeTarget    = "findPackage-explicit-cmake-target"
	CheckExplicitCMakeComponent = "findPackage-explicit-cmake-component"
)

// Check is a single verification point.
type Check struct {
	Name   string
	Passes func() bool
}

// Variant is a fixture program: an ordered set of checks under a namespace.
type Variant struct {
	Name      string
	Namespace string
	Checks    []Check
}

// Keys returns the fully qualified keys the variant emits, in order.
func (v Variant) Keys() []string {
	keys := make([]string, 0, len(v.Checks))
	for _, c := range v.Checks {
		keys = append(keys, v.key(c))
	}

	return keys
}

// Report evaluates every check in order.
func (v Variant) Report() *distprobe.Report {
	var r distprobe.Report
	for _, c := range v.Checks {
		r.Add(v.key(c), c.Passes())
	}

	return &r
}

// Run evaluates every check and writes one line per check to w.
func (v Variant) Run(w io.Writer) error {
	_, err := v.Report().WriteTo(w)

	return err
}

func (v Variant) key(c Check) string {
	if v.Namespace == "" {
		return c.Name
	}

	return v.Namespace + "." + c.Name
}

// Being able to run at all proves the executable was installed.
var exeInstalled = Check{
	Name:   CheckExeInstallToBin,
	Passes: func() bool { return true },
}

var generatedSrc = Check{
	Name:   CheckPackagesGeneratedSrc,
	Passes: func() bool { return gen.Gen12() == 12 },
}

// GeneratedOnly checks installation and the generated source only.
var GeneratedOnly = Variant{
	Name:      "e0",
	Namespace: Namespace,
	Checks:    []Check{exeInstalled, generatedSrc},
}

// Dist additionally checks private definitions and every way a dependency
// package can be resolved.
var Dist = Variant{
	Name:      "e1",
	Namespace: Namespace,
	Checks: []Check{
		exeInstalled,
		generatedSrc,
		{Name: CheckIncludesPrivate, Passes: func() bool { return private.SecretFound }},
		{Name: CheckCopiesPrivate, Passes: func() bool { return private.SecretFound }},
		{Name: CheckImplicitCMakeName, Passes: func() bool { return zero.Zero == 0 }},
		{Name: CheckExplicitCMakeName, Passes: func() bool { return one.One() == 1 }},
		{Name: CheckExplicitCMakeTarget, Passes: func() bool { return two.Two() == 2 }},
		{Name: CheckExplicitCMakeComponent, Passes: func() bool { return hello.Hello() == "hello" }},
	},
}

// Variants lists every fixture program by name.
var Variants = []Variant{GeneratedOnly, Dist}

// Lookup returns the variant with the given name.
func Lookup(name string) (Variant, bool) {
	for _, v := range Variants {
		if v.Name == name {
			return v, true
		}
	}

	return Variant{}, false
}
