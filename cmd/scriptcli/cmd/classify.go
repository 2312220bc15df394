package cmd

import (
	"bufio"
	"os"
	"strings"
	"sync"

	"github.com/panjf2000/ants"
	"github.com/spf13/cobra"

	apierr "massnet.org/scriptkit/errors"
	"massnet.org/scriptkit/logging"
	"massnet.org/scriptkit/txscript"
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <script>",
	Short: "Classify a hex encoded scriptPubKey",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := decodeHex("script", args[0])
		if err != nil {
			return err
		}
		if _, err := txscript.GetScriptClass(script); err != nil {
			return apierr.New(apierr.ErrAPIExtractPKScript, err)
		}
		printJSON(newScriptResult(script))
		return nil
	},
}

// disasmCmd represents the disasm command
var disasmCmd = &cobra.Command{
	Use:   "disasm <script>",
	Short: "Disassemble a hex encoded script",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		script, err := decodeHex("script", args[0])
		if err != nil {
			return err
		}
		printJSON(map[string]string{"asm": txscript.DisasmString(script)})
		return nil
	},
}

type classifyLineResult struct {
	Line      int    `json:"line"`
	Class     string `json:"class,omitempty"`
	CSVBlocks uint32 `json:"csv_blocks,omitempty"`
	Error     string `json:"error,omitempty"`
}

func classifyLine(n int, line string) *classifyLineResult {
	res := &classifyLineResult{Line: n}
	script, err := decodeHex("script", line)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	class, err := txscript.GetScriptClass(script)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Class = class.String()
	if class == txscript.CSV2of2Then1Ty || class == txscript.CSV2of2Then1OptTy {
		res.CSVBlocks, _ = txscript.ExtractCSVBlocks(script)
	}
	return res
}

// classifyLines classifies each line on a pool of workers and returns the
// results in input order.
func classifyLines(lines []string, workers int) ([]*classifyLineResult, error) {
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	results := make([]*classifyLineResult, len(lines))
	var wg sync.WaitGroup
	for i, line := range lines {
		i, line := i, line
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			results[i] = classifyLine(i+1, line)
		}); err != nil {
			wg.Done()
			return nil, err
		}
	}
	wg.Wait()
	return results, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSpace(scanner.Text()))
	}
	return lines, scanner.Err()
}

// classifyFileCmd represents the classify-file command
var classifyFileCmd = &cobra.Command{
	Use:   "classify-file <path>",
	Short: "Classify one hex encoded script per line of a file",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := readLines(args[0])
		if err != nil {
			return apierr.New(apierr.ErrAPIClassifyFile, err)
		}
		logging.VPrint(logging.INFO, "classify-file called", logging.LogFormat{
			"path":    args[0],
			"lines":   len(lines),
			"workers": cfg.Workers,
		})

		var nonBlank []string
		var lineNums []int
		for i, line := range lines {
			if line == "" {
				continue
			}
			nonBlank = append(nonBlank, line)
			lineNums = append(lineNums, i+1)
		}
		results, err := classifyLines(nonBlank, cfg.Workers)
		if err != nil {
			return apierr.New(apierr.ErrAPIClassifyFile, err)
		}
		for i, res := range results {
			res.Line = lineNums[i]
		}
		printJSON(results)
		return nil
	},
}
