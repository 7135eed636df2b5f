package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MetaFam/wyvern-schemas/encoding"
)

var (
	// sell 标志
	sellSchema  string
	sellToken   string
	sellAddress string
	sellAmount  string
	sellCompact bool
)

// sellCmd 卖方侧编码
var sellCmd = &cobra.Command{
	Use:   "sell",
	Short: "编码卖方侧调用",
	Long: `编码卖方侧的转移调用。

买方地址槽位填占位值并在替换掩码里放开,
所有者槽位填 --address 指定的卖方地址。`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if sellSchema == "" || sellToken == "" || sellAddress == "" || sellAmount == "" {
			return fmt.Errorf("必须指定 --schema, --token, --address 和 --amount")
		}

		s, err := resolveSchema(sellSchema, sellToken)
		if err != nil {
			return err
		}
		asset, err := buildAsset(s, sellAmount)
		if err != nil {
			return err
		}
		seller, err := parseAddress(sellAddress)
		if err != nil {
			return fmt.Errorf("invalid seller address: %w", err)
		}

		logger.Debug("encoding sell side",
			zap.String("schema", s.Name),
			zap.String("token", sellToken),
			zap.String("seller", seller.Hex()),
		)

		spec, err := encoding.EncodeSell(s, asset, seller)
		if err != nil {
			return err
		}
		return printSpec(spec, sellCompact)
	},
}

func init() {
	sellCmd.Flags().StringVar(&sellSchema, "schema", "", "资产 Schema 名称 (erc20|erc721|erc1155|legacy-transfer)")
	sellCmd.Flags().StringVar(&sellToken, "token", "", "资产合约地址")
	sellCmd.Flags().StringVar(&sellAddress, "address", "", "卖方地址 (填入所有者槽位)")
	sellCmd.Flags().StringVar(&sellAmount, "amount", "", "资产值 (代币数量或 token ID, 十进制)")
	sellCmd.Flags().BoolVar(&sellCompact, "compact-pattern", false, "同时输出位打包的紧凑掩码")
}
