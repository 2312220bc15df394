package config

import (
	"sort"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/pkg/errors"
)

var (
	// ErrUnknownNet describes an error where the requested network is not
	// registered.
	ErrUnknownNet = errors.New("unknown network")

	// ErrDuplicateNet describes an error where a network with the same name
	// is already registered.
	ErrDuplicateNet = errors.New("duplicate network")
)

// Params describes a chain by the parameters the script tools need.
type Params struct {
	Name string

	// Elements is set for Elements sidechains, which use the Elements
	// taproot tag and support peg scripts.
	Elements bool

	// ParentGenesisHash is the genesis hash of the chain pegged out to.
	// For a Bitcoin network it is the network's own genesis hash.
	ParentGenesisHash chainhash.Hash

	// MinCSVBlocks and MaxCSVBlocks bound the delay accepted by the CSV
	// recovery builders.
	MinCSVBlocks uint32
	MaxCSVBlocks uint32
}

// MainNetParams defines the parameters for the Bitcoin main network.
var MainNetParams = Params{
	Name:              "mainnet",
	ParentGenesisHash: mustDecodeHash("000000000019d6689c085ae165831e934ff763ae46a2a6c172b3f1b60a8ce26f"),
	MinCSVBlocks:      17,
	MaxCSVBlocks:      0xffff,
}

// TestNet3Params defines the parameters for the Bitcoin test network
// (version 3).
var TestNet3Params = Params{
	Name:              "testnet3",
	ParentGenesisHash: mustDecodeHash("000000000933ea01ad0ee984209779baaec3ced90fa3f408719526f8d77f4943"),
	MinCSVBlocks:      17,
	MaxCSVBlocks:      0xffff,
}

// RegressionNetParams defines the parameters for the Bitcoin regression
// test network.
var RegressionNetParams = Params{
	Name:              "regtest",
	ParentGenesisHash: mustDecodeHash("0f9188f13cb7b2c71f2a335e3a4fc328bf5beb436012afca590b1a11466e2206"),
	MinCSVBlocks:      17,
	MaxCSVBlocks:      0xffff,
}

// LiquidV1Params defines the parameters for the Liquid sidechain, which
// pegs to the Bitcoin main network.
var LiquidV1Params = Params{
	Name:              "liquidv1",
	Elements:          true,
	ParentGenesisHash: MainNetParams.ParentGenesisHash,
	MinCSVBlocks:      17,
	MaxCSVBlocks:      0xffff,
}

// ElementsRegtestParams defines the parameters for a local Elements chain
// pegged to Bitcoin regtest.
var ElementsRegtestParams = Params{
	Name:              "elementsregtest",
	Elements:          true,
	ParentGenesisHash: RegressionNetParams.ParentGenesisHash,
	MinCSVBlocks:      17,
	MaxCSVBlocks:      0xffff,
}

var registeredNets = make(map[string]*Params)

// Register makes params available through ParamsForNet.
func Register(params *Params) error {
	if _, ok := registeredNets[params.Name]; ok {
		return errors.Wrap(ErrDuplicateNet, params.Name)
	}
	registeredNets[params.Name] = params
	return nil
}

// ParamsForNet returns the registered parameters for the named network.
func ParamsForNet(name string) (*Params, error) {
	params, ok := registeredNets[name]
	if !ok {
		return nil, errors.Wrap(ErrUnknownNet, name)
	}
	return params, nil
}

// Nets returns the names of all registered networks, sorted.
func Nets() []string {
	names := make([]string, 0, len(registeredNets))
	for name := range registeredNets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mustDecodeHash(str string) chainhash.Hash {
	h, err := chainhash.NewHashFromStr(str)
	if err != nil {
		panic(err)
	}
	return *h
}

func mustRegister(params *Params) {
	if err := Register(params); err != nil {
		panic("failed to register network: " + err.Error())
	}
}

func init() {
	mustRegister(&MainNetParams)
	mustRegister(&TestNet3Params)
	mustRegister(&RegressionNetParams)
	mustRegister(&LiquidV1Params)
	mustRegister(&ElementsRegtestParams)
}
