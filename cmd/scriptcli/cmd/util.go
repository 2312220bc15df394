package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	apierr "massnet.org/scriptkit/errors"
	"massnet.org/scriptkit/logging"
	"massnet.org/scriptkit/txscript"
)

type errorResult struct {
	Code    uint32 `json:"code"`
	Message string `json:"message"`
}

// scriptResult describes a built or parsed script.
type scriptResult struct {
	Script    string `json:"script"`
	Size      int    `json:"size"`
	Class     string `json:"class"`
	Asm       string `json:"asm"`
	CSVBlocks uint32 `json:"csv_blocks,omitempty"`
}

func newScriptResult(script []byte) *scriptResult {
	res := &scriptResult{
		Script: hex.EncodeToString(script),
		Size:   len(script),
		Asm:    txscript.DisasmString(script),
	}
	class, err := txscript.GetScriptClass(script)
	if err != nil {
		class = txscript.NonStandardTy
	}
	res.Class = class.String()
	if blocks, err := txscript.ExtractCSVBlocks(script); err == nil {
		res.CSVBlocks = blocks
	}
	return res
}

func printJSON(data interface{}) {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		logging.CPrint(logging.ERROR, "fail to marshal json", logging.LogFormat{"err": err})
		b, _ = json.Marshal(&errorResult{Code: apierr.ErrAPIEncode, Message: err.Error()})
	}
	fmt.Fprintln(stdout, string(b))
}

// exactArgs is cobra.ExactArgs reporting a coded error.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return apierr.Errorf(apierr.ErrAPIInvalidParameter,
				"%s accepts %d arg(s), received %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}

// minimumArgs is cobra.MinimumNArgs reporting a coded error.
func minimumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return apierr.Errorf(apierr.ErrAPIInvalidParameter,
				"%s requires at least %d arg(s), received %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}

func decodeHex(name, s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, apierr.New(apierr.ErrAPIDecodeHexString, fmt.Errorf("%s: %v", name, err))
	}
	return b, nil
}

func parseUint(name, s string, bitSize int) (uint64, error) {
	v, err := strconv.ParseUint(s, 10, bitSize)
	if err != nil {
		return 0, apierr.Errorf(apierr.ErrAPIInvalidParameter, "%s: %v", name, err)
	}
	return v, nil
}

// scriptFlags assembles builder flags from the shared hash flags.
func scriptFlags(hash160, sha256 bool) txscript.ScriptFlags {
	var flags txscript.ScriptFlags
	if hash160 {
		flags |= txscript.ScriptHash160
	}
	if sha256 {
		flags |= txscript.ScriptSha256
	}
	return flags
}

// buildAndPrint runs a builder through AllocScript and prints the script.
func buildAndPrint(code uint32, fill func(buf []byte) (int, error)) error {
	script, err := txscript.AllocScript(fill)
	if err != nil {
		return apierr.New(code, err)
	}
	printJSON(newScriptResult(script))
	return nil
}
