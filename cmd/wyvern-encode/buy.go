package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MetaFam/wyvern-schemas/encoding"
)

var (
	// buy 标志
	buySchema  string
	buyToken   string
	buyAddress string
	buyAmount  string
	buyCompact bool
)

// buyCmd 买方侧编码
var buyCmd = &cobra.Command{
	Use:   "buy",
	Short: "编码买方侧调用",
	Long: `编码买方侧的转移调用。

--address 指定的买方地址填入唯一的可替换槽位,
所有者槽位填占位值并在替换掩码里放开(没有所有者槽位时掩码为 0x)。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if buySchema == "" || buyToken == "" || buyAddress == "" || buyAmount == "" {
			return fmt.Errorf("必须指定 --schema, --token, --address 和 --amount")
		}

		s, err := resolveSchema(buySchema, buyToken)
		if err != nil {
			return err
		}
		asset, err := buildAsset(s, buyAmount)
		if err != nil {
			return err
		}
		buyer, err := parseAddress(buyAddress)
		if err != nil {
			return fmt.Errorf("invalid buyer address: %w", err)
		}

		logger.Debug("encoding buy side",
			zap.String("schema", s.Name),
			zap.String("token", buyToken),
			zap.String("buyer", buyer.Hex()),
		)

		spec, err := encoding.EncodeBuy(s, asset, buyer)
		if err != nil {
			return err
		}
		return printSpec(spec, buyCompact)
	},
}

func init() {
	buyCmd.Flags().StringVar(&buySchema, "schema", "", "资产 Schema 名称 (erc20|erc721|erc1155|legacy-transfer)")
	buyCmd.Flags().StringVar(&buyToken, "token", "", "资产合约地址")
	buyCmd.Flags().StringVar(&buyAddress, "address", "", "买方地址 (填入可替换槽位)")
	buyCmd.Flags().StringVar(&buyAmount, "amount", "", "资产值 (代币数量或 token ID, 十进制)")
	buyCmd.Flags().BoolVar(&buyCompact, "compact-pattern", false, "同时输出位打包的紧凑掩码")
}
