package cmd

import (
	"github.com/spf13/cobra"

	apierr "massnet.org/scriptkit/errors"
	"massnet.org/scriptkit/txscript"
)

var pegoutFlagGenesis string

func requireElements(cmd *cobra.Command) error {
	if !params.Elements {
		return apierr.Errorf(apierr.ErrAPINet, "%s needs an Elements network, %s is not one",
			cmd.Name(), params.Name)
	}
	return nil
}

// pegoutCmd represents the pegout command
var pegoutCmd = &cobra.Command{
	Use:   "pegout <mainchain script> <pubkey> <whitelist proof>",
	Short: "Build an Elements peg-out script to the parent chain",
	Args:  exactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireElements(cmd); err != nil {
			return err
		}
		genesis := params.ParentGenesisHash[:]
		if pegoutFlagGenesis != "" {
			var err error
			if genesis, err = decodeHex("genesis", pegoutFlagGenesis); err != nil {
				return err
			}
		}
		fields := make([][]byte, len(args))
		for i, name := range []string{"mainchain script", "pubkey", "whitelist proof"} {
			b, err := decodeHex(name, args[i])
			if err != nil {
				return err
			}
			fields[i] = b
		}
		return buildAndPrint(apierr.ErrAPICreatePegScript, func(buf []byte) (int, error) {
			return txscript.PegoutScript(genesis, fields[0], fields[1], fields[2], 0, buf)
		})
	},
}

// peginCmd represents the pegin command
var peginCmd = &cobra.Command{
	Use:   "pegin <redeem script> <contract>",
	Short: "Tweak the keys of a federation redeem script for a peg-in claim",
	Args:  exactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireElements(cmd); err != nil {
			return err
		}
		redeem, err := decodeHex("redeem script", args[0])
		if err != nil {
			return err
		}
		contract, err := decodeHex("contract", args[1])
		if err != nil {
			return err
		}
		return buildAndPrint(apierr.ErrAPICreatePegScript, func(buf []byte) (int, error) {
			return txscript.PeginContractScript(nil, redeem, contract, 0, buf)
		})
	},
}

func init() {
	pegoutCmd.Flags().StringVar(&pegoutFlagGenesis, "genesis", "",
		"parent genesis hash in internal byte order (default from --net)")
}
