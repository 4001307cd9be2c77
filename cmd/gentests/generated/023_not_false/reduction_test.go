package gentests

import _ "embed"
import "testing"
import "github.com/vic/golambda/cmd/gentests/helper"

//go:embed input.lc
var input string

//go:embed output.lc
var output string

func Test_023_not_false_Reduction(t *testing.T) {
	gentests.CheckLambdaReduction(t, "023_not_false", input, output)
}
