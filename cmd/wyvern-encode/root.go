package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MetaFam/wyvern-schemas/pkg/bitmask"
	"github.com/MetaFam/wyvern-schemas/pkg/types"
	"github.com/MetaFam/wyvern-schemas/schema"
)

// GlobalFlags 全局标志
type GlobalFlags struct {
	Verbose bool // 详细模式
}

var (
	globalFlags GlobalFlags
	logger      *zap.Logger
)

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "wyvern-encode",
	Short: "Wyvern 订单调用编码工具",
	Long: `wyvern-encode - 离线的订单调用编码工具

把资产 Schema 的转移函数编码为撮合合约可比较的调用字节:
- sell: 卖方侧 calldata + 买方地址槽位的替换掩码
- buy:  买方侧 calldata + 所有者槽位的替换掩码

纯离线工具,不连网络、不签名。`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// 初始化日志
		var err error
		if globalFlags.Verbose {
			logger, err = zap.NewDevelopment()
		} else {
			logger, err = zap.NewProduction()
		}
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		return nil
	},
}

// Execute 执行根命令
func Execute() {
	err := rootCmd.Execute()
	if logger != nil {
		_ = logger.Sync()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&globalFlags.Verbose, "verbose", "v", false, "详细输出")

	rootCmd.AddCommand(sellCmd)
	rootCmd.AddCommand(buyCmd)
}

// resolveSchema 构建内置 Schema
func resolveSchema(name, token string) (*types.Schema, error) {
	ctor, ok := schema.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown schema %q (available: %s)", name, strings.Join(schema.Names(), ", "))
	}
	addr, err := parseAddress(token)
	if err != nil {
		return nil, fmt.Errorf("invalid token address: %w", err)
	}
	return ctor(addr), nil
}

// parseAddress 解析 20 字节十六进制地址
func parseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%q is not a 20-byte hex address", s)
	}
	return common.HexToAddress(s), nil
}

// buildAsset 把十进制值绑定到转移函数的全部 Asset 槽位
func buildAsset(s *types.Schema, value string) (types.Asset, error) {
	fn, err := s.TransferFunction()
	if err != nil {
		return nil, err
	}
	amount, err := uint256.FromDecimal(value)
	if err != nil {
		return nil, fmt.Errorf("invalid asset value %q: %w", value, err)
	}
	asset := types.Asset{}
	for _, in := range fn.Inputs {
		if in.Kind == types.KindAsset {
			asset[in.Name] = amount.ToBig()
		}
	}
	return asset, nil
}

// encodeOutput CLI 输出的 CallSpec,可选附带紧凑掩码
type encodeOutput struct {
	Target             common.Address `json:"target"`
	Calldata           hexutil.Bytes  `json:"calldata"`
	ReplacementPattern hexutil.Bytes  `json:"replacementPattern"`
	CompactPattern     hexutil.Bytes  `json:"compactPattern,omitempty"`
}

// printSpec 输出 CallSpec JSON
func printSpec(spec *types.CallSpec, compact bool) error {
	out := encodeOutput{
		Target:             spec.Target,
		Calldata:           spec.Calldata,
		ReplacementPattern: spec.ReplacementPattern,
	}
	if compact {
		out.CompactPattern = bitmask.FromExpanded(spec.ReplacementPattern).Packed()
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal call spec: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
