package norm

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vseledkin/enorm"
)

var NormCommand *cobra.Command

func init() {

	NormCommand = &cobra.Command{
		Use:   "norm",
		Short: "reads whitespace separated vectors from stdin, outputs their euclidean norms to stdout",
		Long:  "reads one whitespace separated vector per line from stdin, outputs the euclidean norm of each line to stdout",
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Print()
			log.Println("Norm:")
			log.Printf("\tInput: %s\n", "stdin")
			log.Printf("\tOutput: %s\n", "stdout")
			if count, e := Process(os.Stdin, os.Stdout); e != nil {
				log.Fatal(e)
			} else {
				log.Println(count, "vectors processed")
			}
		},
	}
}

//Process computes the euclidean norm of every line of whitespace separated
//numbers read from r, writing one result per line to w.
func Process(r io.Reader, w io.Writer) (lineCount int, e error) {
	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		lineCount++
		fields := strings.Fields(line)
		x := make([]float64, len(fields))
		for i, field := range fields {
			if x[i], e = strconv.ParseFloat(field, 64); e != nil {
				return lineCount, errors.Wrapf(e, "line %d field %d", lineCount, i+1)
			}
		}
		if _, e = fmt.Fprintf(w, "%g\n", enorm.Norm(x)); e != nil {
			return lineCount, e
		}
	}
	return lineCount, nil
}
