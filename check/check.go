package check

import (
	"log"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"

	"github.com/vseledkin/enorm"
	"github.com/vseledkin/enorm/machine"
)

var CheckCommand *cobra.Command

var input *string
var rtol *float64

func init() {

	CheckCommand = &cobra.Command{
		Use:   "check",
		Short: "verifies euclidean norms against a yaml suite of reference cases",
		Long:  "loads a yaml suite of vectors with expected norms, recomputes every norm and reports the cases outside tolerance",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print()
			log.Println("Check:")
			log.Printf("\tSuite: %s\n", *input)
			log.Printf("\tDefault rtol: %e\n", *rtol)

			if e := Check(*input, *rtol); e != nil {
				log.Fatal(e)
			}
		},
	}

	input = CheckCommand.Flags().StringP("input", "i", "", "yaml suite file path")
	rtol = CheckCommand.Flags().Float64P("rtol", "t", DefaultRtol, "relative tolerance for cases without their own")
}

//DefaultRtol a few ulps of slack for the reference values
var DefaultRtol = 16 * machine.Precision

//Case one reference vector with its expected norm
type Case struct {
	X    []float64 `yaml:"x"`
	Want float64   `yaml:"want"`
	Rtol float64   `yaml:"rtol,omitempty"`
}

//Suite a set of reference cases
type Suite struct {
	Cases []Case `yaml:"cases"`
}

//LoadSuite reads a yaml suite file
func LoadSuite(path string) (*Suite, error) {
	f, e := os.Open(path)
	if e != nil {
		return nil, errors.Wrap(e, "cannot open suite")
	}
	defer f.Close()
	var s Suite
	if e = yaml.NewDecoder(f).Decode(&s); e != nil {
		return nil, errors.Wrapf(e, "cannot parse suite %s", path)
	}
	return &s, nil
}

//Check recomputes every norm in the suite, returns an error if any case
//misses its tolerance
func Check(path string, rtol float64) error {
	s, e := LoadSuite(path)
	if e != nil {
		return e
	}
	failed := 0
	for i, c := range s.Cases {
		tol := c.Rtol
		if tol == 0 {
			tol = rtol
		}
		got := enorm.Norm(c.X)
		if !within(got, c.Want, tol) {
			failed++
			log.Printf("case %d: want %e got %e rtol %e\n", i, c.Want, got, tol)
		}
	}
	log.Println(len(s.Cases), "cases,", failed, "failed")
	if failed > 0 {
		return errors.Errorf("%d of %d cases failed", failed, len(s.Cases))
	}
	return nil
}

func within(got, want, rtol float64) bool {
	if got == want {
		return true
	}
	return math.Abs(got-want) <= rtol*math.Abs(want)
}
