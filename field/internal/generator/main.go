package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/consensys/bavard"
)

const copyrightHolder = "Consensys Software Inc."

//go:generate go run main.go
func main() {
	bgen := bavard.NewBatchGenerator(copyrightHolder, 2025, "plookup")

	curves := []curveSpec{
		{Dir: "bn254", Package: "bn254", FrPackage: "github.com/consensys/gnark-crypto/ecc/bn254/fr"},
		{Dir: "bls12-377", Package: "bls12_377", FrPackage: "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"},
		{Dir: "bls12-381", Package: "bls12_381", FrPackage: "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"},
	}

	for _, spec := range curves {
		assertNoError(bgen.Generate(spec, spec.Package, "templates",
			bavard.Entry{
				File:      fmt.Sprintf("../../%s/element.go", spec.Dir),
				Templates: []string{"element.go.tmpl"},
			},
			bavard.Entry{
				File:      fmt.Sprintf("../../%s/element_test.go", spec.Dir),
				Templates: []string{"element.test.go.tmpl"},
			},
		), "for curve \"%s\"", spec.Dir)
	}

	// run gofmt on whole directory
	runCmd("gofmt", "-w", "../../")

	// run goimports on whole directory
	runCmd("goimports", "-w", "../../")
}

type curveSpec struct {
	Dir       string
	Package   string
	FrPackage string
}

func runCmd(name string, arg ...string) {
	fmt.Println(name, strings.Join(arg, " "))
	cmd := exec.Command(name, arg...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	assertNoError(cmd.Run(), "")
}

func assertNoError(err error, format string, args ...any) {
	if err == nil {
		return
	}
	if format != "" {
		fmt.Fprintf(os.Stderr, format+": ", args...)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
