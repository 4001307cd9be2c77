package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/vic/golambda/pkg/lambda"
)

type TestCase struct {
	Name   string
	Input  string
	Output string
}

const testTemplate = `package gentests

import _ "embed"
import "testing"
import "github.com/vic/golambda/cmd/gentests/helper"

//go:embed input.lc
var input string

//go:embed output.lc
var output string

func Test_%s_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "%s", input, output)
}
`

func main() {
	tests := []TestCase{
		// Identity
		{"001_id", `\x.x`, `\y.y`},
		{"002_id_id", `(\x.x) (\y.y)`, `\z.z`},

		// K Combinator
		{"003_k_1", `(\x.\y.x) a b`, "a"},
		{"004_k_2", `(\x.\y.y) a b`, "b"},
		{"005_erase_complex", `(\x.\y.x) a ((\z.z) b)`, "a"},

		// S Combinator
		{"006_s_1", `(\x.\y.\z.x z (y z)) (\a.\b.a) (\c.\d.c) e`, "e"},
		{"007_s_2", `(\x.\y.\z.x z (y z)) (\a.\b.b) (\c.\d.c) e`, `\d.e`},

		// Church Numerals
		{"010_zero", `(\f.\x.x) f x`, "x"},
		{"011_one", `(\f.\x.f x) f x`, "f x"},
		{"012_two", `(\f.\x.f (f x)) f x`, "f (f x)"},
		{"013_succ_0", `(\n.\f.\x.f (n f x)) (\f.\x.x) f x`, "f x"},
		{"014_succ_1", `(\n.\f.\x.f (n f x)) (\f.\x.f x) f x`, "f (f x)"},
		{"015_add_1_1", `(\m.\n.\f.\x.m f (n f x)) (\f.\x.f x) (\f.\x.f x) f x`, "f (f x)"},
		{"016_mul_2_2", `(\m.\n.\f.m (n f)) (\f.\x.f (f x)) (\f.\x.f (f x)) f x`, "f (f (f (f x)))"},

		// Logic
		{"022_not_true", `(\b.b (\x.\y.y) (\x.\y.x)) (\x.\y.x) a b`, "b"},
		{"023_not_false", `(\b.b (\x.\y.y) (\x.\y.x)) (\x.\y.y) a b`, "a"},
		{"024_and_true_true", `(\p.\q.p q p) (\x.\y.x) (\x.\y.x) a b`, "a"},
		{"025_and_true_false", `(\p.\q.p q p) (\x.\y.x) (\x.\y.y) a b`, "b"},

		// Pairs
		{"030_pair_fst", `(\p.p (\x.\y.x)) ((\x.\y.\f.f x y) a b)`, "a"},
		{"031_pair_snd", `(\p.p (\x.\y.y)) ((\x.\y.\f.f x y) a b)`, "b"},

		// Reduction under binders
		{"050_two_identity", `(\f.\x.f (f x)) (\y.y)`, `\x.x`},
		{"051_share_app", `(\f.f (f x)) (\y.y)`, "x"},
		{"070_share_complex", `(\x.x (x a)) (\y.y)`, "a"},

		// Nested Lambdas
		{"080_nested_1", `\x.\y.\z.x y z`, `\a.\b.\c.a b c`},
		{"081_nested_app", `(\x.\y.x y) a b`, "a b"},

		// Free variables
		{"090_free_1", "x", "x"},
		{"091_free_app", "x y", "x y"},
		{"092_free_abs", `\y.x y`, `\z.x z`},

		// Mixed
		{"100_mixed_1", `(\x.x) ((\y.y) a)`, "a"},
	}

	baseDir := "cmd/gentests/generated"
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", baseDir, err)
		os.Exit(1)
	}

	generated, failed := 0, 0
	for _, tc := range tests {
		if err := writeCase(baseDir, tc); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating %s: %v\n", tc.Name, err)
			failed++
			continue
		}
		generated++
	}

	fmt.Printf("Generated %d tests\n", generated)
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "%d tests failed to generate\n", failed)
		os.Exit(1)
	}
}

// writeCase writes the input, expected output and test file of tc into
// its own directory under baseDir. Terms are written in canonical form.
func writeCase(baseDir string, tc TestCase) error {
	inTerm, err := lambda.Parse(tc.Input)
	if err != nil {
		return errors.Wrap(err, "parsing input")
	}
	outTerm, err := lambda.Parse(tc.Output)
	if err != nil {
		return errors.Wrap(err, "parsing output")
	}

	dir := filepath.Join(baseDir, tc.Name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(err, "creating %s", dir)
	}

	files := []struct{ name, content string }{
		{"input.lc", inTerm.String()},
		{"output.lc", outTerm.String()},
		{"reduction_test.go", fmt.Sprintf(testTemplate, tc.Name, tc.Name)},
	}
	for _, f := range files {
		if err := os.WriteFile(filepath.Join(dir, f.name), []byte(f.content), 0644); err != nil {
			return errors.Wrapf(err, "writing %s", f.name)
		}
	}
	return nil
}
