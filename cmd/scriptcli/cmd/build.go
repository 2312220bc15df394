package cmd

import (
	"github.com/spf13/cobra"

	apierr "massnet.org/scriptkit/errors"
	"massnet.org/scriptkit/txscript"
)

var (
	buildFlagHash160   bool
	buildFlagSha256    bool
	buildFlagAsPush    bool
	buildFlagSorted    bool
	buildFlagElements  bool
	buildFlagThreshold int
	buildFlagBlocks    uint32
	buildFlagVersion   uint32
)

// buildCmd groups the scriptPubKey builders
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a standard scriptPubKey",
}

var buildP2PKHCmd = &cobra.Command{
	Use:   "p2pkh <hash|pubkey>",
	Short: "Build a pay-to-pubkey-hash script from a key hash, or a key with --hash160",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := decodeHex("data", args[0])
		if err != nil {
			return err
		}
		flags := scriptFlags(buildFlagHash160, false)
		return buildAndPrint(apierr.ErrAPICreatePkScript, func(buf []byte) (int, error) {
			return txscript.PayToPubKeyHashScript(data, flags, buf)
		})
	},
}

var buildP2SHCmd = &cobra.Command{
	Use:   "p2sh <hash|script>",
	Short: "Build a pay-to-script-hash script from a script hash, or a script with --hash160",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := decodeHex("data", args[0])
		if err != nil {
			return err
		}
		flags := scriptFlags(buildFlagHash160, false)
		return buildAndPrint(apierr.ErrAPICreatePkScript, func(buf []byte) (int, error) {
			return txscript.PayToScriptHashScript(data, flags, buf)
		})
	},
}

var buildMultiSigCmd = &cobra.Command{
	Use:   "multisig <pubkey>...",
	Short: "Build a bare m-of-n multisig script",
	Args:  minimumArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := make([][]byte, len(args))
		for i, arg := range args {
			key, err := decodeHex("pubkey", arg)
			if err != nil {
				return err
			}
			keys[i] = key
		}
		var flags txscript.ScriptFlags
		if buildFlagSorted {
			flags |= txscript.ScriptMultisigSorted
		}
		return buildAndPrint(apierr.ErrAPICreatePkScript, func(buf []byte) (int, error) {
			return txscript.MultiSigScript(keys, buildFlagThreshold, flags, buf)
		})
	},
}

type csvBuilder func(mainKey, recoveryKey []byte, blocks uint32, flags txscript.ScriptFlags, buf []byte) (int, error)

func runCSV(build csvBuilder, args []string) error {
	if buildFlagBlocks < params.MinCSVBlocks || buildFlagBlocks > params.MaxCSVBlocks {
		return apierr.Errorf(apierr.ErrAPIInvalidParameter,
			"blocks %d outside [%d, %d] on %s", buildFlagBlocks,
			params.MinCSVBlocks, params.MaxCSVBlocks, params.Name)
	}
	mainKey, err := decodeHex("main key", args[0])
	if err != nil {
		return err
	}
	recoveryKey, err := decodeHex("recovery key", args[1])
	if err != nil {
		return err
	}
	return buildAndPrint(apierr.ErrAPICreatePkScript, func(buf []byte) (int, error) {
		return build(mainKey, recoveryKey, buildFlagBlocks, 0, buf)
	})
}

var buildCSVCmd = &cobra.Command{
	Use:   "csv <main pubkey> <recovery pubkey>",
	Short: "Build a 2-of-2 script spendable by the recovery key alone after --blocks",
	Args:  exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCSV(txscript.CSV2of2Then1Script, args)
	},
}

var buildCSVOptCmd = &cobra.Command{
	Use:   "csv-opt <main pubkey> <recovery pubkey>",
	Short: "Build the optimised form of the csv script",
	Args:  exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCSV(txscript.CSV2of2Then1OptScript, args)
	},
}

var buildWitnessCmd = &cobra.Command{
	Use:   "witness <program>",
	Short: "Build a segwit output script of --version",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		program, err := decodeHex("program", args[0])
		if err != nil {
			return err
		}
		flags := scriptFlags(buildFlagHash160, buildFlagSha256)
		if buildFlagAsPush {
			flags |= txscript.ScriptAsPush
		}
		return buildAndPrint(apierr.ErrAPICreatePkScript, func(buf []byte) (int, error) {
			return txscript.WitnessProgramScript(program, buildFlagVersion, flags, buf)
		})
	},
}

var buildP2TRCmd = &cobra.Command{
	Use:   "p2tr <pubkey>",
	Short: "Build a taproot output from an x-only output key or a compressed internal key",
	Args:  exactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, err := decodeHex("pubkey", args[0])
		if err != nil {
			return err
		}
		var flags txscript.ScriptFlags
		if buildFlagElements || params.Elements {
			flags |= txscript.ScriptTaprootElements
		}
		return buildAndPrint(apierr.ErrAPICreatePkScript, func(buf []byte) (int, error) {
			return txscript.PayToTaprootScript(key, flags, buf)
		})
	},
}

var buildOpReturnCmd = &cobra.Command{
	Use:   "opreturn [data]",
	Short: "Build an unspendable OP_RETURN script carrying data",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			return apierr.Errorf(apierr.ErrAPIInvalidParameter,
				"%s accepts at most 1 arg, received %d", cmd.Name(), len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		if len(args) == 1 {
			var err error
			if data, err = decodeHex("data", args[0]); err != nil {
				return err
			}
		}
		return buildAndPrint(apierr.ErrAPICreatePkScript, func(buf []byte) (int, error) {
			return txscript.NullDataScript(data, 0, buf)
		})
	},
}

func init() {
	buildP2PKHCmd.Flags().BoolVar(&buildFlagHash160, "hash160", false, "hash the argument with HASH160 first")
	buildP2SHCmd.Flags().BoolVar(&buildFlagHash160, "hash160", false, "hash the argument with HASH160 first")

	buildMultiSigCmd.Flags().IntVarP(&buildFlagThreshold, "threshold", "m", 1, "signatures required")
	buildMultiSigCmd.Flags().BoolVar(&buildFlagSorted, "sorted", false, "sort keys as in BIP67")

	buildCSVCmd.Flags().Uint32Var(&buildFlagBlocks, "blocks", 144, "relative delay in blocks")
	buildCSVOptCmd.Flags().Uint32Var(&buildFlagBlocks, "blocks", 144, "relative delay in blocks")

	buildWitnessCmd.Flags().Uint32Var(&buildFlagVersion, "version", 0, "witness version")
	buildWitnessCmd.Flags().BoolVar(&buildFlagHash160, "hash160", false, "use HASH160 of the program")
	buildWitnessCmd.Flags().BoolVar(&buildFlagSha256, "sha256", false, "use SHA256 of the program")
	buildWitnessCmd.Flags().BoolVar(&buildFlagAsPush, "as-push", false, "prefix the script with its push length")

	buildP2TRCmd.Flags().BoolVar(&buildFlagElements, "elements", false, "use the Elements tweak tag regardless of --net")

	buildCmd.AddCommand(buildP2PKHCmd)
	buildCmd.AddCommand(buildP2SHCmd)
	buildCmd.AddCommand(buildMultiSigCmd)
	buildCmd.AddCommand(buildCSVCmd)
	buildCmd.AddCommand(buildCSVOptCmd)
	buildCmd.AddCommand(buildWitnessCmd)
	buildCmd.AddCommand(buildP2TRCmd)
	buildCmd.AddCommand(buildOpReturnCmd)
}
