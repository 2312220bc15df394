package cmd

import (
	"encoding/hex"
	"strconv"

	"github.com/spf13/cobra"

	"massnet.org/scriptkit/config"
	apierr "massnet.org/scriptkit/errors"
	"massnet.org/scriptkit/txscript"
	"massnet.org/scriptkit/wire"
)

type encodingResult struct {
	Hex  string `json:"hex"`
	Size int    `json:"size"`
}

// varIntCmd represents the varint command
var varIntCmd = &cobra.Command{
	Use:   "varint <n>",
	Short: "Encode an unsigned integer as a Bitcoin varint",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := parseUint("n", args[0], 64)
		if err != nil {
			return err
		}
		buf := make([]byte, wire.MaxVarIntPayload)
		n, err := wire.WriteVarInt(buf, v)
		if err != nil {
			return apierr.New(apierr.ErrAPIEncodeVarInt, err)
		}
		printJSON(&encodingResult{Hex: hex.EncodeToString(buf[:n]), Size: n})
		return nil
	},
}

// scriptIntCmd represents the scriptint command
var scriptIntCmd = &cobra.Command{
	Use:   "scriptint <n>",
	Short: "Encode a signed integer as a minimal script number",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return apierr.Errorf(apierr.ErrAPIInvalidParameter, "n: %v", err)
		}
		buf := make([]byte, txscript.ScriptIntSerializeSize(v))
		n := txscript.PutScriptInt(buf, v)
		if n != len(buf) {
			return apierr.Errorf(apierr.ErrAPIEncodeScriptInt, "wrote %d of %d bytes", n, len(buf))
		}
		printJSON(&encodingResult{Hex: hex.EncodeToString(buf), Size: n})
		return nil
	},
}

// netsCmd represents the nets command
var netsCmd = &cobra.Command{
	Use:   "nets",
	Short: "List the networks accepted by --net",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		type netResult struct {
			Name              string `json:"name"`
			Elements          bool   `json:"elements"`
			ParentGenesisHash string `json:"parent_genesis_hash"`
		}
		var nets []netResult
		for _, name := range config.Nets() {
			p, err := config.ParamsForNet(name)
			if err != nil {
				return apierr.New(apierr.ErrAPINet, err)
			}
			nets = append(nets, netResult{
				Name:              p.Name,
				Elements:          p.Elements,
				ParentGenesisHash: p.ParentGenesisHash.String(),
			})
		}
		printJSON(nets)
		return nil
	},
}
