package cmd

import (
	"bytes"
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierr "massnet.org/scriptkit/errors"
)

const (
	hexKeyG  = "0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	hexKey2G = "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"
	hexKey3G = "02f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9"

	hexP2PKH = "76a914751e76e8199196d454941c45d1b3a323f1433bd688ac"

	// internal byte order of the Bitcoin main network genesis hash
	hexMainGenesis = "6fe28c0ab6f1b372c1a6a246ae63f74f931e8365e15a089c68d6190000000000"
)

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// execute runs the CLI with logging sent to stderr and returns the exit
// code and output.
func execute(t *testing.T, args ...string) (int, string) {
	t.Helper()
	resetFlags(RootCmd)
	var out bytes.Buffer
	code := Run(append([]string{"--log_dir="}, args...), &out)
	return code, out.String()
}

func executeOK(t *testing.T, result interface{}, args ...string) {
	t.Helper()
	code, out := execute(t, args...)
	require.Equal(t, 0, code, out)
	require.NoError(t, json.Unmarshal([]byte(out), result), out)
}

func executeErr(t *testing.T, want uint32, args ...string) string {
	t.Helper()
	code, out := execute(t, args...)
	require.Equal(t, 1, code, out)
	var res errorResult
	require.NoError(t, json.Unmarshal([]byte(out), &res), out)
	assert.Equal(t, want, res.Code, res.Message)
	return res.Message
}

func TestClassify(t *testing.T) {
	var res scriptResult
	executeOK(t, &res, "classify", hexP2PKH)
	assert.Equal(t, "pubkeyhash", res.Class)
	assert.Equal(t, 25, res.Size)
	assert.Equal(t, "OP_DUP OP_HASH160 751e76e8199196d454941c45d1b3a323f1433bd6 OP_EQUALVERIFY OP_CHECKSIG", res.Asm)

	executeOK(t, &res, "classify", "deadbeef")
	assert.Equal(t, "nonstandard", res.Class)

	executeErr(t, apierr.ErrAPIDecodeHexString, "classify", "zz")
	executeErr(t, apierr.ErrAPIExtractPKScript, "classify", "")
	executeErr(t, apierr.ErrAPIInvalidParameter, "classify")
	executeErr(t, apierr.ErrAPIInvalidParameter, "classify", hexP2PKH, hexP2PKH)
}

func TestDisasm(t *testing.T) {
	var res map[string]string
	executeOK(t, &res, "disasm", "6a0401020304")
	assert.Equal(t, "OP_RETURN 01020304", res["asm"])

	executeOK(t, &res, "disasm", "7605aa")
	assert.Equal(t, "OP_DUP [error]", res["asm"])
}

func TestBuild(t *testing.T) {
	var res scriptResult

	executeOK(t, &res, "build", "p2pkh", hexKeyG, "--hash160")
	assert.Equal(t, hexP2PKH, res.Script)

	executeOK(t, &res, "build", "p2sh", "751e76e8199196d454941c45d1b3a323f1433bd6")
	assert.Equal(t, "a914751e76e8199196d454941c45d1b3a323f1433bd687", res.Script)
	assert.Equal(t, "scripthash", res.Class)

	executeOK(t, &res, "build", "multisig", "-m", "2", hexKey3G, hexKey2G, hexKeyG, "--sorted")
	assert.Equal(t, "52"+"21"+hexKeyG+"21"+hexKey2G+"21"+hexKey3G+"53ae", res.Script)
	assert.Equal(t, "multisig", res.Class)

	executeOK(t, &res, "build", "csv", hexKeyG, hexKey2G, "--blocks", "144")
	assert.Equal(t, "csv_2of2_then_1", res.Class)
	assert.Equal(t, uint32(144), res.CSVBlocks)
	assert.Equal(t, 80, res.Size)

	executeOK(t, &res, "build", "csv-opt", hexKeyG, hexKey2G)
	assert.Equal(t, "csv_2of2_then_1_opt", res.Class)
	assert.Equal(t, uint32(144), res.CSVBlocks)

	executeOK(t, &res, "build", "witness", hexKeyG, "--hash160")
	assert.Equal(t, "0014751e76e8199196d454941c45d1b3a323f1433bd6", res.Script)
	assert.Equal(t, "witness_v0_keyhash", res.Class)

	executeOK(t, &res, "build", "witness", hexKeyG, "--sha256", "--as-push")
	assert.Equal(t, 35, res.Size)
	assert.True(t, strings.HasPrefix(res.Script, "220020"), res.Script)

	executeOK(t, &res, "build", "opreturn")
	assert.Equal(t, "6a00", res.Script)
	executeOK(t, &res, "build", "opreturn", "cafe")
	assert.Equal(t, "6a02cafe", res.Script)
	assert.Equal(t, "nulldata", res.Class)

	executeErr(t, apierr.ErrAPICreatePkScript, "build", "p2pkh", hexKeyG)
	executeErr(t, apierr.ErrAPICreatePkScript, "build", "multisig", "-m", "3", hexKeyG, hexKey2G)
	executeErr(t, apierr.ErrAPIInvalidParameter, "build", "csv", hexKeyG, hexKey2G, "--blocks", "16")
	executeErr(t, apierr.ErrAPICreatePkScript, "build", "witness", hexKeyG, "--hash160", "--sha256")
	executeErr(t, apierr.ErrAPIDecodeHexString, "build", "multisig", hexKeyG, "nothex")
	executeErr(t, apierr.ErrAPIInvalidParameter, "build", "opreturn", "aa", "bb")
}

func TestBuildTaproot(t *testing.T) {
	const internal = "02d6889cb081036e0faefa3a35157ad71086b123b2b144b649798b494c300a961d"
	const output = "5120" + "53a1f6e454df1aa2776a2814a721372d6258050de330b3c6d10ee8f4e0dda343"

	var res scriptResult
	executeOK(t, &res, "build", "p2tr", internal)
	assert.Equal(t, output, res.Script)
	assert.Equal(t, "witness_v1_taproot", res.Class)

	var liquid, forced scriptResult
	executeOK(t, &liquid, "build", "p2tr", internal, "--net", "liquidv1")
	executeOK(t, &forced, "build", "p2tr", internal, "--elements")
	assert.NotEqual(t, output, liquid.Script)
	assert.Equal(t, liquid.Script, forced.Script)
}

func TestPegScripts(t *testing.T) {
	executeErr(t, apierr.ErrAPINet, "pegout", hexP2PKH, hexKeyG, "00")
	executeErr(t, apierr.ErrAPINet, "pegin", "21"+hexKeyG+"ac", "00")

	var res scriptResult
	executeOK(t, &res, "pegout", hexP2PKH, hexKeyG, "0102", "--net", "liquidv1")
	assert.Equal(t, "6a20"+hexMainGenesis+"19"+hexP2PKH+"21"+hexKeyG+"020102", res.Script)
	assert.Equal(t, "nulldata", res.Class)

	genesis := strings.Repeat("ab", 32)
	executeOK(t, &res, "pegout", hexP2PKH, hexKeyG, "0102", "--net", "liquidv1", "--genesis", genesis)
	assert.True(t, strings.HasPrefix(res.Script, "6a20"+genesis), res.Script)

	executeErr(t, apierr.ErrAPICreatePegScript, "pegout", hexP2PKH, hexKeyG, "", "--net", "liquidv1")

	redeem := "51" + "21" + hexKeyG + "51ae"
	executeOK(t, &res, "pegin", redeem, "00", "--net", "elementsregtest")
	assert.Equal(t, len(redeem)/2, res.Size)
	assert.NotEqual(t, redeem, res.Script)
	assert.Equal(t, "multisig", res.Class)

	executeErr(t, apierr.ErrAPICreatePegScript, "pegin", "21"+strings.Repeat("05", 33), "00", "--net", "liquidv1")
}

func TestEncodings(t *testing.T) {
	var res encodingResult
	executeOK(t, &res, "varint", "253")
	assert.Equal(t, encodingResult{Hex: "fdfd00", Size: 3}, res)

	executeOK(t, &res, "varint", "18446744073709551615")
	assert.Equal(t, encodingResult{Hex: "ffffffffffffffffff", Size: 9}, res)

	executeOK(t, &res, "scriptint", "--", "-1")
	assert.Equal(t, encodingResult{Hex: "81", Size: 1}, res)

	executeOK(t, &res, "scriptint", "0")
	assert.Equal(t, encodingResult{Hex: "", Size: 0}, res)

	executeErr(t, apierr.ErrAPIInvalidParameter, "varint", "--", "-1")
	executeErr(t, apierr.ErrAPIInvalidParameter, "scriptint", "x")
}

func TestClassifyFile(t *testing.T) {
	dir, err := ioutil.TempDir("", "scriptcli")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	csv := "74" + "8c" + "63" + "21" + hexKeyG + "ad" + "67" + "029000" + "b2" + "75" + "68" + "21" + hexKey2G + "ac"
	lines := []string{hexP2PKH, "", "  6a00  ", "zz", csv, "0014751e76e8199196d454941c45d1b3a323f1433bd6"}
	path := filepath.Join(dir, "scripts.txt")
	require.NoError(t, ioutil.WriteFile(path, []byte(strings.Join(lines, "\n")), 0600))

	var res []classifyLineResult
	executeOK(t, &res, "classify-file", path, "--workers", "2")
	require.Len(t, res, 5)
	assert.Equal(t, classifyLineResult{Line: 1, Class: "pubkeyhash"}, res[0])
	assert.Equal(t, classifyLineResult{Line: 3, Class: "nulldata"}, res[1])
	assert.Equal(t, 4, res[2].Line)
	assert.NotEmpty(t, res[2].Error)
	assert.Equal(t, classifyLineResult{Line: 5, Class: "csv_2of2_then_1", CSVBlocks: 144}, res[3])
	assert.Equal(t, classifyLineResult{Line: 6, Class: "witness_v0_keyhash"}, res[4])

	executeErr(t, apierr.ErrAPIClassifyFile, "classify-file", filepath.Join(dir, "missing.txt"))
	executeErr(t, apierr.ErrAPIConfig, "classify-file", path, "--workers", "0")
}

func TestClassifyLinesOrder(t *testing.T) {
	lines := make([]string, 200)
	for i := range lines {
		if i%2 == 0 {
			lines[i] = hexP2PKH
		} else {
			lines[i] = "6a"
		}
	}
	results, err := classifyLines(lines, 8)
	require.NoError(t, err)
	require.Len(t, results, len(lines))
	for i, res := range results {
		assert.Equal(t, i+1, res.Line)
		if i%2 == 0 {
			assert.Equal(t, "pubkeyhash", res.Class)
		} else {
			assert.Equal(t, "nulldata", res.Class)
		}
	}
}

func TestConfig(t *testing.T) {
	executeErr(t, apierr.ErrAPINet, "nets", "--net", "simnet")
	executeErr(t, apierr.ErrAPIConfig, "nets", "--log_level", "loud")

	dir, err := ioutil.TempDir("", "scriptcli")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	cfgPath := filepath.Join(dir, "scriptcli.json")
	require.NoError(t, ioutil.WriteFile(cfgPath, []byte(`{"net": "liquidv1", "workers": 3}`), 0600))

	var res scriptResult
	executeOK(t, &res, "pegout", hexP2PKH, hexKeyG, "0102", "--config", cfgPath)
	assert.Equal(t, "nulldata", res.Class)
	assert.Equal(t, 3, cfg.Workers)

	// Flags override the file.
	executeErr(t, apierr.ErrAPINet, "pegout", hexP2PKH, hexKeyG, "0102", "--config", cfgPath, "--net", "mainnet")

	executeErr(t, apierr.ErrAPIConfig, "nets", "--config", filepath.Join(dir, "missing.json"))

	// Logging to a directory.
	logDir := filepath.Join(dir, "logs")
	resetFlags(RootCmd)
	var out bytes.Buffer
	require.Equal(t, 0, Run([]string{"nets", "--log_dir", logDir, "--log_level", "debug"}, &out), out.String())
	_, err = os.Stat(logDir)
	assert.NoError(t, err)
}

func TestNets(t *testing.T) {
	var res []struct {
		Name     string `json:"name"`
		Elements bool   `json:"elements"`
	}
	executeOK(t, &res, "nets")
	require.Len(t, res, 5)
	assert.Equal(t, "elementsregtest", res[0].Name)
	assert.True(t, res[0].Elements)
	assert.Equal(t, "mainnet", res[2].Name)
	assert.False(t, res[2].Elements)
}
